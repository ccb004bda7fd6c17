package mandel

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Key is a coordinate pair compared bit for bit.
type Key struct {
	X, Y uint64
}

func KeyOf(x0, y0 float64) Key {
	return Key{X: math.Float64bits(x0), Y: math.Float64bits(y0)}
}

func (k Key) Coords() (x0, y0 float64) {
	return math.Float64frombits(k.X), math.Float64frombits(k.Y)
}

type Cache interface {
	Get(k Key) (inside bool, ok bool)
	Put(k Key, inside bool)
	Len() int
	Purge()
}

// Cache kinds accepted by NewCache.
const (
	CacheNone      = "none"
	CacheUnbounded = "unbounded"
	CacheLRU       = "lru"
)

// NewCache builds a cache by kind. CacheNone yields a nil Cache, which
// callers treat as "evaluate directly".
func NewCache(kind string, size int) (Cache, error) {
	switch kind {
	case CacheNone:
		return nil, nil
	case CacheUnbounded, "":
		return NewShardedCache(0), nil
	case CacheLRU:
		c, err := NewLRUCache(size)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCache, kind)
	}
}

// Lookup returns the membership of (x0, y0), consulting c first and
// filling it on a miss.
func Lookup(c Cache, x0, y0 float64, threshold int) (inside, hit bool) {
	k := KeyOf(x0, y0)
	if v, ok := c.Get(k); ok {
		return v, true
	}
	v := InSet(x0, y0, threshold)
	c.Put(k, v)
	return v, false
}

const defaultShards = 64

type shard struct {
	mu sync.RWMutex
	m  map[Key]bool
}

// ShardedCache is an unbounded lock-striped map. It never evicts.
type ShardedCache struct {
	shards []shard
	mask   uint64
}

// NewShardedCache rounds n up to a power of two; n <= 0 selects the default.
func NewShardedCache(n int) *ShardedCache {
	if n <= 0 {
		n = defaultShards
	}
	size := 1
	for size < n {
		size <<= 1
	}
	c := &ShardedCache{shards: make([]shard, size), mask: uint64(size - 1)}
	for i := range c.shards {
		c.shards[i].m = make(map[Key]bool)
	}
	return c
}

func (c *ShardedCache) shard(k Key) *shard {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], k.X)
	binary.LittleEndian.PutUint64(buf[8:], k.Y)
	return &c.shards[xxhash.Sum64(buf[:])&c.mask]
}

func (c *ShardedCache) Get(k Key) (bool, bool) {
	s := c.shard(k)
	s.mu.RLock()
	v, ok := s.m[k]
	s.mu.RUnlock()
	return v, ok
}

func (c *ShardedCache) Put(k Key, inside bool) {
	s := c.shard(k)
	s.mu.Lock()
	s.m[k] = inside
	s.mu.Unlock()
}

func (c *ShardedCache) Len() int {
	n := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.RLock()
		n += len(s.m)
		s.mu.RUnlock()
	}
	return n
}

func (c *ShardedCache) Purge() {
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		s.m = make(map[Key]bool)
		s.mu.Unlock()
	}
}

// LRUCache keeps at most a fixed number of entries, evicting the least
// recently used.
type LRUCache struct {
	c *lru.Cache[Key, bool]
}

func NewLRUCache(size int) (*LRUCache, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrCacheSize, size)
	}
	c, err := lru.New[Key, bool](size)
	if err != nil {
		return nil, err
	}
	return &LRUCache{c: c}, nil
}

func (c *LRUCache) Get(k Key) (bool, bool) { return c.c.Get(k) }
func (c *LRUCache) Put(k Key, inside bool) { c.c.Add(k, inside) }
func (c *LRUCache) Len() int               { return c.c.Len() }
func (c *LRUCache) Purge()                 { c.c.Purge() }
