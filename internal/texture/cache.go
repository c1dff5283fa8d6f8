package texture

import (
	"image"
	"os"
	"sync"
)

// Resolver resolves a texture reference to a decoded image, or nil when the
// texture cannot be found or decoded.
type Resolver interface {
	Resolve(ref string) *image.NRGBA
}

// Cache is a concurrency-safe texture cache. References are tried as file
// paths first and then looked up by stem in the index.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*image.NRGBA
	index *Index
}

// NewCache creates a texture cache. index may be nil.
func NewCache(index *Index) *Cache {
	return &Cache{
		items: make(map[string]*image.NRGBA),
		index: index,
	}
}

// Resolve loads and caches a texture. Failed loads are cached as nil.
func (c *Cache) Resolve(ref string) *image.NRGBA {
	if ref == "" {
		return nil
	}
	path := ref
	if _, err := os.Stat(path); err != nil {
		if c.index == nil {
			return nil
		}
		var ok bool
		if path, ok = c.index.ResolvePath(ref); !ok {
			return nil
		}
	}

	// Fast path: read lock
	c.mu.RLock()
	if img, exists := c.items[path]; exists {
		c.mu.RUnlock()
		return img
	}
	c.mu.RUnlock()

	// Slow path: load from disk
	img, _ := LoadTexture(path)

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, exists := c.items[path]; exists {
		return cached
	}
	c.items[path] = img
	return img
}

// Len returns the number of cached paths, including failed loads.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
