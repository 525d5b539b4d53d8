// Package cache keeps the rarely changing catalog lists in redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/storefront/internal/catalog/entity"
	"github.com/shandysiswandi/storefront/internal/pkg/goerror"
	"github.com/shandysiswandi/storefront/internal/pkg/instrument"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	keyDepartments = "catalog:departments"
	keyCategories  = "catalog:categories"

	DefaultTTL = 10 * time.Minute
)

type Cache struct {
	client redis.UniversalClient
	ttl    time.Duration
	ins    instrument.Instrumentation
}

func NewCache(client redis.UniversalClient, ttl time.Duration, ins instrument.Instrumentation) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{client: client, ttl: ttl, ins: ins}
}

func (c *Cache) GetDepartments(ctx context.Context) ([]entity.Department, error) {
	return get[entity.Department](ctx, c, "GetDepartments", keyDepartments)
}

func (c *Cache) SetDepartments(ctx context.Context, items []entity.Department) error {
	return set(ctx, c, "SetDepartments", keyDepartments, items)
}

func (c *Cache) GetCategories(ctx context.Context) ([]entity.Category, error) {
	return get[entity.Category](ctx, c, "GetCategories", keyCategories)
}

func (c *Cache) SetCategories(ctx context.Context, items []entity.Category) error {
	return set(ctx, c, "SetCategories", keyCategories, items)
}

func get[T any](ctx context.Context, c *Cache, name, key string) (_ []T, err error) {
	ctx, span := c.startSpan(ctx, name)
	defer func() { c.endSpan(span, err) }()

	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, goerror.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func set[T any](ctx context.Context, c *Cache, name, key string, items []T) (err error) {
	ctx, span := c.startSpan(ctx, name)
	defer func() { c.endSpan(span, err) }()

	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, raw, c.ttl).Err()
}

func (c *Cache) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return c.ins.Tracer("catalog.outbound.cache").Start(ctx, name)
}

func (c *Cache) endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, goerror.ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
