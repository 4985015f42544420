package mppp

import (
	"sync"
)

const (
	// cacheMaxSize is the largest limb count with a recycling bucket.
	cacheMaxSize = 10
	// cacheMaxEntries is the number of buffers retained per bucket.
	cacheMaxEntries = 16
)

// allocCache recycles dynamic magnitude buffers so that storage transitions
// don't pay for an allocation every time. Buffers are bucketed by exact limb
// count; each bucket holds at most cacheMaxEntries entries and anything that
// doesn't fit goes straight back to the allocator. The cache is purely a
// recycling pool: it never holds the buffer of a live value.
//
// The zero value is ready to use and falls through to the heap on a miss.
// The process-wide instance is shared by every goroutine, so the (tiny)
// bucket bookkeeping is guarded by a mutex.
type allocCache struct {
	mu      sync.Mutex
	next    allocator // miss/overflow path; nil means the heap
	buckets [cacheMaxSize][cacheMaxEntries][]Word
	sizes   [cacheMaxSize]int
}

// intCache backs all dynamic Int storage in the process.
var intCache allocCache

// FreeCaches drains the process-wide allocation caches, returning every
// parked buffer to the allocator. Long-lived programs never need to call it;
// it exists for controlled shutdown and for tests, and may be called any
// number of times.
func FreeCaches() {
	intCache.clear()
}

func (c *allocCache) fallback() allocator {
	if c.next != nil {
		return c.next
	}
	return heapAllocator{}
}

// acquire returns a buffer of exactly nlimbs limbs, reusing a parked buffer
// when the matching bucket has one. The contents of a reused buffer are
// unspecified.
func (c *allocCache) acquire(nlimbs int) []Word {
	if nlimbs >= 1 && nlimbs <= cacheMaxSize {
		c.mu.Lock()
		if n := c.sizes[nlimbs-1]; n > 0 {
			if n > cacheMaxEntries {
				c.mu.Unlock()
				panic("mppp: alloc cache bucket overflow")
			}
			buf := c.buckets[nlimbs-1][n-1]
			c.buckets[nlimbs-1][n-1] = nil
			c.sizes[nlimbs-1] = n - 1
			c.mu.Unlock()
			return buf
		}
		c.mu.Unlock()
	}
	return c.fallback().alloc(nlimbs)
}

// release parks buf in its size bucket, or hands it back to the allocator
// when the bucket is full or the buffer is outside the bucketed range.
func (c *allocCache) release(buf []Word) {
	n := cap(buf)
	if n >= 1 && n <= cacheMaxSize {
		c.mu.Lock()
		if sz := c.sizes[n-1]; sz < cacheMaxEntries {
			c.buckets[n-1][sz] = buf[:n]
			c.sizes[n-1] = sz + 1
			c.mu.Unlock()
			return
		}
		c.mu.Unlock()
	}
	c.fallback().free(buf)
}

// clear drains every bucket.
func (c *allocCache) clear() {
	c.mu.Lock()
	free := c.fallback()
	for i := range c.buckets {
		for j := 0; j < c.sizes[i]; j++ {
			free.free(c.buckets[i][j])
			c.buckets[i][j] = nil
		}
		c.sizes[i] = 0
	}
	c.mu.Unlock()
}

// cachedLimbs reports the total number of limbs currently parked.
func (c *allocCache) cachedLimbs() int {
	c.mu.Lock()
	total := 0
	for i, n := range c.sizes {
		total += (i + 1) * n
	}
	c.mu.Unlock()
	return total
}

// bucketLen reports the entry count of the bucket for nlimbs-limb buffers.
func (c *allocCache) bucketLen(nlimbs int) int {
	c.mu.Lock()
	n := c.sizes[nlimbs-1]
	c.mu.Unlock()
	return n
}
