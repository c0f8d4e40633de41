package noopcache

import (
	"context"
	cacherepo "docvault/internal/repositories/cache"
	"time"
)

// Client satisfies the cache interface when no Redis is configured. Gets
// always miss, writes are discarded. Keeps degraded mode working without
// nil checks at every call site.
type Client struct{}

type noopResponse[T any] struct{}

func (noopResponse[T]) Err() error { return nil }

func (noopResponse[T]) Result() (T, error) {
	var zero T
	return zero, nil
}

func New() *Client {
	return &Client{}
}

func (*Client) Get(ctx context.Context, key string) cacherepo.CacheResponse[string] {
	return noopResponse[string]{}
}

func (*Client) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) cacherepo.CacheResponse[string] {
	return noopResponse[string]{}
}

func (*Client) Del(ctx context.Context, keys ...string) cacherepo.CacheResponse[int64] {
	return noopResponse[int64]{}
}

func (*Client) Ping(ctx context.Context) error { return nil }
