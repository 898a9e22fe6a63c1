package twmerge

import (
	"container/list"
	"sync"
)

type cacheEntry struct {
	key   string
	value string
}

// lruCache is a fixed-size least-recently-used cache of merge results.
type lruCache struct {
	mu    sync.Mutex
	size  int
	ll    *list.List
	items map[string]*list.Element
}

func newLRUCache(size int) *lruCache {
	return &lruCache{
		size:  size,
		ll:    list.New(),
		items: make(map[string]*list.Element, size),
	}
}

func (c *lruCache) get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return "", false
	}
	c.ll.MoveToFront(el)
	return el.Value.(*cacheEntry).value, true
}

func (c *lruCache) put(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		el.Value.(*cacheEntry).value = value
		c.ll.MoveToFront(el)
		return
	}

	c.items[key] = c.ll.PushFront(&cacheEntry{key: key, value: value})

	if c.ll.Len() > c.size {
		oldest := c.ll.Back()
		c.ll.Remove(oldest)
		delete(c.items, oldest.Value.(*cacheEntry).key)
	}
}

func (c *lruCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}
