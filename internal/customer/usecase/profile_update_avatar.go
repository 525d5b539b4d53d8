package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shandysiswandi/storefront/internal/customer/entity"
	"github.com/shandysiswandi/storefront/internal/pkg/goerror"
	"github.com/shandysiswandi/storefront/internal/pkg/storage"
)

type ProfileUpdateAvatarInput struct {
	File io.Reader
}

func (s *Usecase) ProfileUpdateAvatar(ctx context.Context, in ProfileUpdateAvatarInput) (*entity.Customer, error) {
	ctx, span := s.startSpan(ctx, "ProfileUpdateAvatar")
	defer span.End()

	clm, err := s.authenticated(ctx)
	if err != nil {
		return nil, err
	}

	if in.File == nil {
		return nil, goerror.NewInvalidInput(nil, "avatar", "The avatar file is required")
	}

	c, err := s.customer(ctx, clm.CustomerID)
	if err != nil {
		return nil, err
	}

	contentType, ext, body, err := storage.SniffImage(in.File)
	if errors.Is(err, storage.ErrUnsupportedFormat) {
		return nil, goerror.NewInvalidInput(nil, "avatar", "The avatar must be a jpeg, png, gif or webp image")
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to read avatar", "customer_id", c.ID, "error", err)
		return nil, goerror.NewInvalidFormat()
	}

	bucket := strings.TrimSpace(s.cfg.GetString("modules.customer.avatar_bucket"))
	baseURL := strings.TrimSpace(s.cfg.GetString("modules.customer.avatar_base_url"))
	key := storage.ObjectKey("avatars/"+strconv.FormatInt(c.ID, 10), s.uuid.Generate(), ext)

	_, err = s.storage.Put(ctx, bucket, key,
		storage.LimitReader(body, s.cfg.GetInt64("modules.customer.avatar_max_size_bytes")),
		storage.PutOptions{
			Size:        -1,
			ContentType: contentType,
			Metadata:    map[string]string{"customer_id": strconv.FormatInt(c.ID, 10)},
		})
	if errors.Is(err, storage.ErrTooLarge) {
		return nil, goerror.NewInvalidInput(nil, "avatar", "The avatar is too large")
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to upload customer avatar", "customer_id", c.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	avatarURL := storage.PublicURL(baseURL, bucket, key)
	if err := s.repoDB.UpdateAvatar(ctx, c.ID, avatarURL); err != nil {
		slog.ErrorContext(ctx, "failed to repo update customer avatar", "customer_id", c.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if oldKey, ok := storage.KeyFromURL(baseURL, bucket, c.AvatarURL); ok {
		if err := s.storage.Delete(ctx, bucket, oldKey); err != nil {
			slog.WarnContext(ctx, "failed to delete previous avatar", "customer_id", c.ID, "key", oldKey, "error", err)
		}
	}

	c.AvatarURL = avatarURL
	return c, nil
}
