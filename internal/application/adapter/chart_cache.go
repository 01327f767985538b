// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"errors"
)

// ErrCacheMiss is returned by ChartCache.Get when no entry exists for the key.
var ErrCacheMiss = errors.New("cache miss")

// ChartCache memoizes computed chart series. Keys are structural hashes of
// the aggregation inputs, so a hit can never return a series that
// recomputation would not produce. Any failure is treated as a miss by
// callers; correctness never depends on the cache.
type ChartCache interface {
	// Get retrieves a cached series payload, or ErrCacheMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a series payload under the given key.
	Set(ctx context.Context, key string, payload []byte) error
}
