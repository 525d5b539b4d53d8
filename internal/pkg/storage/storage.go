// Package storage keeps uploaded files (customer avatars, product images) in
// an object store: AWS S3, Google Cloud Storage or MinIO.
package storage

import (
	"context"
	"errors"
	"io"
	"net/url"
	"strings"
	"time"
)

var (
	ErrObjectNotFound = errors.New("storage: object not found")
	ErrMissingSigner  = errors.New("storage: signed url signer not configured")
)

// Storage is the object store used by the modules.
type Storage interface {
	io.Closer

	Put(ctx context.Context, bucket, key string, r io.Reader, opts PutOptions) (Object, error)
	Stat(ctx context.Context, bucket, key string) (Object, error)
	// Delete succeeds when the object is already gone.
	Delete(ctx context.Context, bucket, key string) error
	SignedURL(ctx context.Context, bucket, key string, expiry time.Duration) (string, error)
}

type PutOptions struct {
	// Size is -1 when unknown.
	Size        int64
	ContentType string
	Metadata    map[string]string
}

type Object struct {
	Bucket      string
	Key         string
	Size        int64
	ETag        string
	ContentType string
	UpdatedAt   time.Time
}

// PublicURL joins a public base URL (CDN or bucket website) with bucket and key.
// An empty base gives "/<bucket>/<key>".
func PublicURL(base, bucket, key string) string {
	u, err := url.JoinPath(strings.TrimRight(base, "/")+"/", bucket, key)
	if err != nil {
		return "/" + bucket + "/" + key
	}
	return u
}

// KeyFromURL is the inverse of PublicURL. ok is false when rawURL does not
// point into bucket under base.
func KeyFromURL(base, bucket, rawURL string) (string, bool) {
	prefix := PublicURL(base, bucket, "")
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	key, ok := strings.CutPrefix(rawURL, prefix)
	if !ok || key == "" {
		return "", false
	}
	return key, true
}
