// Package facebook resolves Facebook user access tokens to customer profiles
// through the Graph API.
package facebook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/shandysiswandi/storefront/internal/customer/entity"
	"github.com/shandysiswandi/storefront/internal/pkg/instrument"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/oauth2"
	fb "golang.org/x/oauth2/facebook"
)

const DefaultGraphURL = "https://graph.facebook.com/v19.0"

var ErrInvalidToken = errors.New("facebook: token rejected")

type Config struct {
	ClientID     string
	ClientSecret string
	GraphURL     string
	// HTTPClient is the transport used underneath the oauth2 client.
	HTTPClient *http.Client
}

type Facebook struct {
	oauth    *oauth2.Config
	graphURL string
	base     *http.Client
	ins      instrument.Instrumentation
}

func New(cfg Config, ins instrument.Instrumentation) *Facebook {
	graphURL := strings.TrimRight(cfg.GraphURL, "/")
	if graphURL == "" {
		graphURL = DefaultGraphURL
	}

	return &Facebook{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     fb.Endpoint,
			Scopes:       []string{"email", "public_profile"},
		},
		graphURL: graphURL,
		base:     cfg.HTTPClient,
		ins:      ins,
	}
}

type meResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Profile calls /me with the user's own token.
func (f *Facebook) Profile(ctx context.Context, accessToken string) (_ *entity.SocialProfile, err error) {
	ctx, span := f.ins.Tracer("customer.outbound.facebook").Start(ctx, "Profile")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if f.base != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, f.base)
	}
	client := f.oauth.Client(ctx, &oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"})

	q := url.Values{"fields": {"id,name,email"}}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.graphURL+"/me?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var me meResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&me); err != nil {
		return nil, fmt.Errorf("facebook: decode /me: %w", err)
	}

	if resp.StatusCode != http.StatusOK || me.Error != nil || me.ID == "" {
		if me.Error != nil {
			return nil, fmt.Errorf("%w: %s (%s)", ErrInvalidToken, me.Error.Message, me.Error.Type)
		}
		return nil, fmt.Errorf("%w: status %d", ErrInvalidToken, resp.StatusCode)
	}

	return &entity.SocialProfile{
		Provider: entity.ProviderFacebook,
		ID:       me.ID,
		Name:     me.Name,
		Email:    me.Email,
	}, nil
}
