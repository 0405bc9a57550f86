// Package cache declares the result cache seam used by the detail service.
package cache

import (
	"context"
	"time"
)

// Interface is the result cache. Add has add-if-absent semantics: a live
// entry under the same key is never overwritten, so a concurrently written
// value cannot be clobbered by a slower writer.
type Interface interface {
	// Get returns the stored value and whether a live entry exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Add stores val under key for ttl and reports whether the write won.
	Add(ctx context.Context, key string, val []byte, ttl time.Duration) (bool, error)
}
