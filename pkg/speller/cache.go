package speller

import (
	"sync"

	"github.com/charmbracelet/log"
)

// maxCachedWordLen bounds the length of words admitted to the cache.
// Longer words are rare enough that caching them is not worth the memory.
const maxCachedWordLen = 10

// Cache remembers spell results for frequently checked words. Only
// accepting results (ResultOk and ResultCapitalizeFirst) are stored;
// negative results would be invalidated by user dictionary changes.
type Cache struct {
	results     map[string]Result
	accessTime  map[string]int64
	accessCount int64
	maxWords    int
	mu          sync.RWMutex
}

// NewCache creates a cache holding at most maxWords entries. The oldest
// entry by access time is evicted when the cache is full.
func NewCache(maxWords int) *Cache {
	return &Cache{
		results:    make(map[string]Result, maxWords),
		accessTime: make(map[string]int64, maxWords),
		maxWords:   maxWords,
	}
}

// Get looks up a previously cached result and refreshes its access time.
func (c *Cache) Get(word string) (Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	result, ok := c.results[word]
	if ok {
		c.accessTime[word] = c.nextAccessTime()
	}
	return result, ok
}

// Put stores an accepting result for word. Failed and capitalization
// error results, and overlong words, are not cached.
func (c *Cache) Put(word string, result Result) {
	if result != ResultOk && result != ResultCapitalizeFirst {
		return
	}
	if len([]rune(word)) > maxCachedWordLen {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.results[word]; !ok && len(c.results) >= c.maxWords {
		c.evictOldest()
	}
	c.results[word] = result
	c.accessTime[word] = c.nextAccessTime()
}

// Len reports the number of cached words.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.results)
}

// Clear drops every cached result.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results = make(map[string]Result, c.maxWords)
	c.accessTime = make(map[string]int64, c.maxWords)
}

func (c *Cache) nextAccessTime() int64 {
	c.accessCount++
	return c.accessCount
}

func (c *Cache) evictOldest() {
	var oldestWord string
	var oldestTime int64 = 9223372036854775807

	for word, accessTime := range c.accessTime {
		if accessTime < oldestTime {
			oldestTime = accessTime
			oldestWord = word
		}
	}

	if oldestWord != "" {
		delete(c.results, oldestWord)
		delete(c.accessTime, oldestWord)
		log.Debugf("Evicted word %q from spell cache", oldestWord)
	}
}
