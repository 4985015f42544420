package mppp

import (
	"math/big"
)

// allocator is the boundary to the external allocator that backs dynamic
// magnitude buffers. The allocation cache sits in front of one of these and
// only falls through to it on a miss; tests substitute their own to observe
// allocation traffic.
type allocator interface {
	alloc(nlimbs int) []Word
	free(buf []Word)
}

// heapAllocator obtains buffers from the Go runtime. There is nothing to do
// on free: dropping the last reference hands the buffer to the collector,
// which plays the role of the kernel's free function. Allocation failure is
// a runtime panic; no recovery path exists at this layer.
type heapAllocator struct{}

func (heapAllocator) alloc(nlimbs int) []Word { return make([]Word, nlimbs) }

func (heapAllocator) free(buf []Word) {}

// bigFromMag returns a big.Int view of a sign/magnitude pair. The result
// shares mag's storage and must be treated as read-only.
func bigFromMag(neg bool, mag []Word) *big.Int {
	b := new(big.Int).SetBits(mag)
	if neg {
		b.Neg(b)
	}
	return b
}
