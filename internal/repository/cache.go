// Package repository holds the comparison-result cache. The engine is pure
// and recomputed on every input change; caching identical requests is the
// calling layer's optimization, so it lives here rather than in the engine.
package repository

import (
	"context"
	"time"
)

// ResultCache stores serialized comparison results keyed by request hash.
// Implementations must treat misses and backend failures identically: a
// false second return, never an error surfaced to the request path.
type ResultCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}
