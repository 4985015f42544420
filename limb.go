package mppp

import (
	"math/big"
	"math/bits"
)

// Word is one limb of a magnitude: a machine-word-sized digit, base
// 2**limbBits. Magnitudes are limb slices ordered least significant first
// with no leading zero limbs; the zero value is the empty magnitude. Word
// aliases big.Word so limbs flow into math/big without conversion.
type Word = big.Word

// normLen returns the number of significant limbs in mag, ignoring leading
// zero limbs.
func normLen(mag []Word) int {
	n := len(mag)
	for n > 0 && mag[n-1] == 0 {
		n--
	}
	return n
}

// magCmp compares two normalized magnitudes.
func magCmp(a, b []Word) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// add2 adds two two-limb magnitudes, producing a possible third carry limb.
func add2(x0, x1, y0, y1 Word) (z0, z1, z2 Word) {
	s0, c := bits.Add(uint(x0), uint(y0), 0)
	s1, c := bits.Add(uint(x1), uint(y1), c)
	return Word(s0), Word(s1), Word(c)
}

// sub2 subtracts y from x for two-limb magnitudes with x >= y.
func sub2(x0, x1, y0, y1 Word) (z0, z1 Word) {
	d0, b := bits.Sub(uint(x0), uint(y0), 0)
	d1, _ := bits.Sub(uint(x1), uint(y1), b)
	return Word(d0), Word(d1)
}

// cmp2 compares two two-limb magnitudes.
func cmp2(x0, x1, y0, y1 Word) int {
	if x1 != y1 {
		if x1 < y1 {
			return -1
		}
		return 1
	}
	if x0 != y0 {
		if x0 < y0 {
			return -1
		}
		return 1
	}
	return 0
}

// mul2 computes the full four-limb product of two two-limb magnitudes.
// Schoolbook with bits.Mul doing the limb-by-limb work; the top limb cannot
// overflow because the product of two 2n-bit numbers fits in 4n bits.
func mul2(x0, x1, y0, y1 Word) (z0, z1, z2, z3 Word) {
	hi00, lo00 := bits.Mul(uint(x0), uint(y0))
	hi01, lo01 := bits.Mul(uint(x0), uint(y1))
	hi10, lo10 := bits.Mul(uint(x1), uint(y0))
	hi11, lo11 := bits.Mul(uint(x1), uint(y1))

	z0 = Word(lo00)

	t1, c1 := bits.Add(hi00, lo01, 0)
	t1, c2 := bits.Add(t1, lo10, 0)
	z1 = Word(t1)

	t2, c3 := bits.Add(hi01, hi10, c1)
	t2, c4 := bits.Add(t2, lo11, c2)
	z2 = Word(t2)

	z3 = Word(hi11 + c3 + c4)
	return z0, z1, z2, z3
}
