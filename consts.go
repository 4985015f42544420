package mppp

import (
	"math/bits"
)

const (
	// limbBits is the width of one limb: the native register width.
	limbBits = bits.UintSize

	// staticLimbs is the number of limbs an Int holds inline before its
	// magnitude spills to the heap. Two limbs keeps anything up to a 128-bit
	// magnitude allocation-free on 64-bit platforms.
	staticLimbs = 2

	// staticAlloc is the value of Int.alloc while the inline buffer is
	// active. The sign of the alloc field discriminates the storage: it is
	// negative for inline storage and holds the (positive) limb capacity of
	// the heap buffer otherwise. The zero value of Int has alloc == 0 and
	// counts as inline; see Int.IsDynamic.
	staticAlloc = -staticLimbs

	maxInt64  = 1<<63 - 1
	maxUint64 = 1<<64 - 1
)

const (
	// MinPrec is the smallest precision, in bits, a Float may carry.
	// Precision zero never occurs on an initialized Float.
	MinPrec = 2

	// MaxPrec is the implementation ceiling on Float precision.
	MaxPrec = 1 << 24

	// staticFloatLimbs is the size of the inline mantissa of a Float.
	staticFloatLimbs = 2

	// staticFloatPrec is the largest precision whose mantissa still fits
	// the inline limb array. It is at least MinPrec by construction.
	staticFloatPrec = staticFloatLimbs * limbBits
)
