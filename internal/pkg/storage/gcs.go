package storage

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	gcs "cloud.google.com/go/storage"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
)

type GCSOptions struct {
	// CredentialsJSON is a service account key; application default
	// credentials are used when empty.
	CredentialsJSON []byte
	Endpoint        string
	WithoutAuth     bool

	// SignerAccessID and SignerPrivateKey enable SignedURL.
	SignerAccessID   string
	SignerPrivateKey []byte
}

type GCS struct {
	client   *gcs.Client
	accessID string
	key      []byte
}

func NewGCS(ctx context.Context, opts GCSOptions) (*GCS, error) {
	var clientOpts []option.ClientOption
	if opts.WithoutAuth {
		clientOpts = append(clientOpts, option.WithoutAuthentication())
	} else if len(opts.CredentialsJSON) > 0 {
		creds, err := google.CredentialsFromJSON(ctx, opts.CredentialsJSON, gcs.ScopeReadWrite)
		if err != nil {
			return nil, err
		}
		clientOpts = append(clientOpts, option.WithCredentials(creds))
	}
	if opts.Endpoint != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(opts.Endpoint))
	}

	client, err := gcs.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, err
	}
	return &GCS{client: client, accessID: opts.SignerAccessID, key: opts.SignerPrivateKey}, nil
}

func (g *GCS) Put(ctx context.Context, bucket, key string, r io.Reader, opts PutOptions) (Object, error) {
	w := g.client.Bucket(bucket).Object(key).NewWriter(ctx)
	w.ContentType = opts.ContentType
	w.Metadata = opts.Metadata

	if _, err := io.Copy(w, r); err != nil {
		return Object{}, errors.Join(err, w.Close())
	}
	if err := w.Close(); err != nil {
		return Object{}, err
	}
	return gcsObject(w.Attrs()), nil
}

func (g *GCS) Stat(ctx context.Context, bucket, key string) (Object, error) {
	attrs, err := g.client.Bucket(bucket).Object(key).Attrs(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return Object{}, ErrObjectNotFound
	}
	if err != nil {
		return Object{}, err
	}
	return gcsObject(attrs), nil
}

func (g *GCS) Delete(ctx context.Context, bucket, key string) error {
	err := g.client.Bucket(bucket).Object(key).Delete(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return nil
	}
	return err
}

func (g *GCS) SignedURL(_ context.Context, bucket, key string, expiry time.Duration) (string, error) {
	if g.accessID == "" || len(g.key) == 0 {
		return "", ErrMissingSigner
	}
	return gcs.SignedURL(bucket, key, &gcs.SignedURLOptions{
		Scheme:         gcs.SigningSchemeV4,
		Method:         http.MethodGet,
		Expires:        time.Now().Add(expiry),
		GoogleAccessID: g.accessID,
		PrivateKey:     g.key,
	})
}

func (g *GCS) Close() error {
	return g.client.Close()
}

func gcsObject(attrs *gcs.ObjectAttrs) Object {
	if attrs == nil {
		return Object{}
	}
	return Object{
		Bucket:      attrs.Bucket,
		Key:         attrs.Name,
		Size:        attrs.Size,
		ETag:        attrs.Etag,
		ContentType: attrs.ContentType,
		UpdatedAt:   attrs.Updated,
	}
}
