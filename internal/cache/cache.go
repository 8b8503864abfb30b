package cache

import (
	"context"
	"strings"
	"time"
)

// Cache holds query results keyed by a namespace plus its parameters.
// DeletePrefix clears a whole namespace, which is how mutations invalidate
// the read queries that depend on them.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeletePrefix(ctx context.Context, prefix string) error
}

const keySep = "|"

// Key builds a cache key from a namespace and its query parameters.
func Key(namespace string, params ...string) string {
	if len(params) == 0 {
		return namespace
	}
	return namespace + keySep + strings.Join(params, keySep)
}

// Prefix is the invalidation prefix covering every key in a namespace,
// including the bare namespace key itself.
func Prefix(namespace string) string {
	return namespace
}

type NoopCache struct{}

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

func (n *NoopCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (n *NoopCache) Delete(ctx context.Context, key string) error {
	return nil
}

func (n *NoopCache) DeletePrefix(ctx context.Context, prefix string) error {
	return nil
}
