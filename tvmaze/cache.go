package tvmaze

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/epibrowse/epibrowse/filesystem"
	"github.com/epibrowse/epibrowse/source"
	"github.com/epibrowse/epibrowse/where"
	"github.com/metafates/gache"
	"github.com/samber/mo"
)

type cacheData[K comparable, T any] struct {
	Entries map[K]T `json:"entries"`
}

// cacher is a keyed view over a single gache file.
type cacher[K comparable, T any] struct {
	internal *gache.Cache[*cacheData[K, T]]
	mu       sync.RWMutex
}

func newCacher[K comparable, T any](name string, lifetime time.Duration) *cacher[K, T] {
	return &cacher[K, T]{
		internal: gache.New[*cacheData[K, T]](&gache.Options{
			Path:       filepath.Join(where.API(), name),
			Lifetime:   lifetime,
			FileSystem: &filesystem.GacheFs{},
		}),
	}
}

func (c *cacher[K, T]) Get(key K) mo.Option[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, expired, err := c.internal.Get()
	if err != nil || expired || data == nil {
		return mo.None[T]()
	}

	value, ok := data.Entries[key]
	if !ok {
		return mo.None[T]()
	}

	return mo.Some(value)
}

func (c *cacher[K, T]) Set(key K, value T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.internal.Get()
	if err != nil {
		return err
	}

	if expired || data == nil {
		data = &cacheData[K, T]{Entries: make(map[K]T)}
	}

	data.Entries[key] = value
	return c.internal.Set(data)
}

type responseCache struct {
	shows    *cacher[string, []*source.Show]
	episodes *cacher[int, []*source.Episode]
}

func newResponseCache(lifetime time.Duration) *responseCache {
	return &responseCache{
		shows:    newCacher[string, []*source.Show]("shows.json", lifetime),
		episodes: newCacher[int, []*source.Episode]("episodes.json", lifetime),
	}
}
