package mppp

import (
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
)

// Int is an arbitrary-precision signed integer. Magnitudes of up to
// staticLimbs limbs are stored inline; anything larger lives in a heap
// buffer obtained through the allocation cache. Exactly one of the two
// representations is active at a time.
//
// The zero value is ready to use and represents 0 with inline storage.
// An Int must not be copied by assignment after first use; use Set, or Move
// to transfer storage.
type Int struct {
	// alloc discriminates the active storage through its sign: negative
	// while the inline buffer is active (the zero value's 0 counts as
	// inline), and the limb capacity of the heap buffer otherwise. Read it
	// only through IsStatic/IsDynamic.
	alloc int32

	// size is the number of significant limbs in use; its sign is the sign
	// of the number. size == 0 means the value is zero.
	size int32

	st [staticLimbs]Word
	dy []Word // heap magnitude; nil while the inline buffer is active
}

// NewInt allocates and returns a new Int set to v.
func NewInt(v int64) *Int { return new(Int).SetInt64(v) }

// IsDynamic reports whether z currently uses heap storage.
func (z *Int) IsDynamic() bool { return z.alloc > 0 }

// IsStatic reports whether z currently uses inline storage.
func (z *Int) IsStatic() bool { return z.alloc <= 0 }

// IsZero reports whether z is 0.
func (z *Int) IsZero() bool { return z.size == 0 }

// Sign returns -1, 0 or +1 depending on the sign of z.
func (z *Int) Sign() int {
	if z.size < 0 {
		return -1
	} else if z.size > 0 {
		return 1
	}
	return 0
}

// NumLimbs returns the number of significant limbs of z's magnitude.
func (z *Int) NumLimbs() int {
	if z.size < 0 {
		return int(-z.size)
	}
	return int(z.size)
}

// BitLen returns the length of z's magnitude in bits; the bit length of 0
// is 0.
func (z *Int) BitLen() int {
	mag := z.mag()
	if len(mag) == 0 {
		return 0
	}
	return (len(mag)-1)*limbBits + bits.Len(uint(mag[len(mag)-1]))
}

// Odd reports whether z is odd.
func (z *Int) Odd() bool {
	mag := z.mag()
	return len(mag) > 0 && mag[0]&1 == 1
}

// Even reports whether z is even.
func (z *Int) Even() bool { return !z.Odd() }

// mag returns the active magnitude, least significant limb first. The
// result shares z's storage.
func (z *Int) mag() []Word {
	n := z.NumLimbs()
	if z.IsDynamic() {
		return z.dy[:n]
	}
	return z.st[:n]
}

// static2 reads out the inline representation as sign plus two zero-padded
// limbs. Only valid while z is static.
func (z *Int) static2() (neg bool, n int, w0, w1 Word) {
	n = int(z.size)
	if n < 0 {
		neg, n = true, -n
	}
	if n > 0 {
		w0 = z.st[0]
	}
	if n > 1 {
		w1 = z.st[1]
	}
	return neg, n, w0, w1
}

// setMag sets z to the value with the given sign and magnitude, which may
// carry leading zero limbs. The current storage class is kept unless the
// magnitude doesn't fit inline, in which case z promotes; a dynamic z never
// self-demotes. mag may not overlap z's heap buffer at an offset.
func (z *Int) setMag(neg bool, mag []Word) *Int {
	n := normLen(mag)
	switch {
	case z.IsDynamic():
		if n > int(z.alloc) {
			buf := intCache.acquire(n)
			copy(buf, mag[:n])
			intCache.release(z.dy)
			z.dy = buf
			z.alloc = int32(n)
		} else {
			copy(z.dy[:n], mag[:n])
		}
	case n <= staticLimbs:
		copy(z.st[:n], mag[:n])
		z.alloc = staticAlloc
	default:
		buf := intCache.acquire(n)
		copy(buf, mag[:n])
		z.dy = buf
		z.alloc = int32(n)
	}
	if neg {
		z.size = -int32(n)
	} else {
		z.size = int32(n)
	}
	return z
}

// Promote moves z to heap storage, reporting whether a transition happened.
// Promoting an already-dynamic value is a no-op returning false. The value
// is unchanged either way.
func (z *Int) Promote() bool {
	if z.IsDynamic() {
		return false
	}
	n := z.NumLimbs()
	nalloc := n
	if nalloc == 0 {
		nalloc = 1
	}
	buf := intCache.acquire(nalloc)
	copy(buf[:n], z.st[:n])
	z.dy = buf
	z.alloc = int32(nalloc)
	return true
}

// Demote moves z back to inline storage if its magnitude fits, reporting
// whether a transition happened. Demoting an already-static value, or a
// value wider than the inline capacity, is a no-op returning false; the
// value is unchanged either way.
func (z *Int) Demote() bool {
	if z.IsStatic() {
		return false
	}
	n := z.NumLimbs()
	if n > staticLimbs {
		return false
	}
	copy(z.st[:n], z.dy[:n])
	intCache.release(z.dy)
	z.dy = nil
	z.alloc = staticAlloc
	return true
}

// Clear releases z's heap storage, if any, into the allocation cache and
// resets z to inline zero. Calling it is never required: an unreleased
// buffer is simply reclaimed by the collector instead of being recycled.
func (z *Int) Clear() {
	if z.IsDynamic() {
		intCache.release(z.dy)
	}
	*z = Int{alloc: staticAlloc}
}

// Set sets z to x and returns z. The copy mirrors x's storage class: copying
// a dynamic value yields a dynamic copy even when it would fit inline, and
// copying a static value into a dynamic z releases z's heap buffer.
func (z *Int) Set(x *Int) *Int {
	if z == x {
		return z
	}
	if x.IsDynamic() {
		n := x.NumLimbs()
		if !z.IsDynamic() {
			nalloc := n
			if nalloc == 0 {
				nalloc = 1
			}
			z.dy = intCache.acquire(nalloc)
			z.alloc = int32(nalloc)
		} else if n > int(z.alloc) {
			intCache.release(z.dy)
			z.dy = intCache.acquire(n)
			z.alloc = int32(n)
		}
		copy(z.dy[:n], x.dy[:n])
		z.size = x.size
		return z
	}
	if z.IsDynamic() {
		intCache.release(z.dy)
	}
	*z = Int{alloc: staticAlloc, size: x.size, st: x.st}
	return z
}

// Move sets z to x, stealing x's storage, and returns z. x is reset to
// inline zero: a guaranteed, fully usable state, not merely a valid one.
func (z *Int) Move(x *Int) *Int {
	if z == x {
		return z
	}
	if z.IsDynamic() {
		intCache.release(z.dy)
	}
	*z = *x
	*x = Int{alloc: staticAlloc}
	return z
}

// SetUint64 sets z to v and returns z.
func (z *Int) SetUint64(v uint64) *Int {
	var mag [staticLimbs]Word
	if limbBits == 64 {
		mag[0] = Word(v)
	} else {
		mag[0] = Word(v & 0xFFFFFFFF)
		mag[1] = Word(v >> 32)
	}
	return z.setMag(false, mag[:])
}

// SetInt64 sets z to v and returns z.
func (z *Int) SetInt64(v int64) *Int {
	neg := v < 0
	u := uint64(v)
	if neg {
		u = -u
	}
	z.SetUint64(u)
	if neg {
		z.size = -z.size
	}
	return z
}

// SetString sets z to the value of s, interpreted in the given base as
// accepted by big.Int.SetString, and returns z and a boolean indicating
// success. On failure z is unchanged.
func (z *Int) SetString(s string, base int) (*Int, bool) {
	b, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, false
	}
	return z.SetBig(b), true
}

// SetBig sets z to the value of b and returns z.
func (z *Int) SetBig(b *big.Int) *Int {
	return z.setMag(b.Sign() < 0, b.Bits())
}

// IntoBig sets b to z's value, reusing b's storage if it is large enough.
func (z *Int) IntoBig(b *big.Int) {
	mag := z.mag()
	words := b.Bits()
	if cap(words) < len(mag) {
		words = make([]big.Word, len(mag))
	} else {
		words = words[:len(mag)]
	}
	copy(words, mag)
	b.SetBits(words)
	if z.size < 0 {
		b.Neg(b)
	}
}

// bigView returns a big.Int sharing z's storage, for read-only use as a
// kernel operand. It saves the magnitude copy that Big would make; the
// view must not outlive the next mutation of z.
func (z *Int) bigView() *big.Int {
	return bigFromMag(z.size < 0, z.mag())
}

// Big returns z's value as a freshly allocated big.Int.
func (z *Int) Big() *big.Int {
	var b big.Int
	z.IntoBig(&b)
	return &b
}

// low64 returns the low 64 bits of z's magnitude.
func (z *Int) low64() uint64 {
	mag := z.mag()
	if len(mag) == 0 {
		return 0
	}
	if limbBits == 64 {
		return uint64(mag[0])
	}
	v := uint64(mag[0])
	if len(mag) > 1 {
		v |= uint64(mag[1]) << 32
	}
	return v
}

// IsUint64 reports whether z can be represented as a uint64.
func (z *Int) IsUint64() bool { return z.size >= 0 && z.BitLen() <= 64 }

// Uint64 returns the low 64 bits of z's magnitude. See IsUint64 to check
// whether the conversion is exact.
func (z *Int) Uint64() uint64 { return z.low64() }

// IsInt64 reports whether z can be represented as an int64.
func (z *Int) IsInt64() bool {
	if z.BitLen() > 64 {
		return false
	}
	v := z.low64()
	if z.size < 0 {
		return v <= 1<<63
	}
	return v <= maxInt64
}

// Int64 returns z truncated to an int64. See IsInt64 to check whether the
// conversion is exact.
func (z *Int) Int64() int64 {
	v := z.low64()
	if z.size < 0 {
		return -int64(v)
	}
	return int64(v)
}

func (z *Int) String() string {
	if z.size == 0 {
		return "0"
	}
	if z.BitLen() <= 64 {
		if z.size < 0 {
			return "-" + strconv.FormatUint(z.low64(), 10)
		}
		return strconv.FormatUint(z.low64(), 10)
	}
	return z.Big().String()
}

func (z *Int) Format(s fmt.State, c rune) {
	z.Big().Format(s, c)
}

func (z *Int) MarshalText() ([]byte, error) {
	return []byte(z.String()), nil
}

func (z *Int) UnmarshalText(bts []byte) error {
	if _, ok := z.SetString(string(bts), 10); !ok {
		return fmt.Errorf("mppp: int string %q invalid", string(bts))
	}
	return nil
}

func (z *Int) MarshalJSON() ([]byte, error) {
	return []byte(`"` + z.String() + `"`), nil
}

func (z *Int) UnmarshalJSON(bts []byte) error {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if bts[ln-1] != '"' {
			return fmt.Errorf("mppp: int invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return z.UnmarshalText(bts)
}
