package mandel

import "errors"

var (
	// ErrUnknownCache indicates a cache kind that is not one of the Cache* constants.
	ErrUnknownCache = errors.New("mandel: unknown cache kind")

	// ErrCacheSize indicates a bounded cache configured with a non-positive size.
	ErrCacheSize = errors.New("mandel: cache size must be positive")
)
