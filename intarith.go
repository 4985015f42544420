package mppp

import (
	"math/big"
)

// Cmp compares z and y, returning -1, 0 or +1.
func (z *Int) Cmp(y *Int) int {
	zs, ys := z.Sign(), y.Sign()
	if zs != ys {
		if zs < ys {
			return -1
		}
		return 1
	}
	c := magCmp(z.mag(), y.mag())
	if zs < 0 {
		return -c
	}
	return c
}

// CmpAbs compares the magnitudes of z and y, returning -1, 0 or +1.
func (z *Int) CmpAbs(y *Int) int {
	return magCmp(z.mag(), y.mag())
}

// Equal reports whether z and y are numerically equal, regardless of their
// storage class.
func (z *Int) Equal(y *Int) bool { return z.Cmp(y) == 0 }

// Neg sets z to -x and returns z.
func (z *Int) Neg(x *Int) *Int {
	if z != x {
		z.Set(x)
	}
	z.size = -z.size
	return z
}

// Abs sets z to |x| and returns z.
func (z *Int) Abs(x *Int) *Int {
	if z != x {
		z.Set(x)
	}
	if z.size < 0 {
		z.size = -z.size
	}
	return z
}

// Add sets z = x + y and returns z. When both operands are static the sum is
// computed inline; a result too wide for the inline buffer promotes z. A
// dynamic z never self-demotes, even when the result is small. Any aliasing
// of z, x and y is allowed.
func (z *Int) Add(x, y *Int) *Int {
	if x.IsStatic() && y.IsStatic() {
		xneg, _, x0, x1 := x.static2()
		yneg, _, y0, y1 := y.static2()
		return z.addStatic(xneg, x0, x1, yneg, y0, y1)
	}
	r := new(big.Int).Add(x.bigView(), y.bigView())
	return z.setMag(r.Sign() < 0, r.Bits())
}

// Sub sets z = x - y and returns z, with the same storage behaviour as Add.
func (z *Int) Sub(x, y *Int) *Int {
	if x.IsStatic() && y.IsStatic() {
		xneg, _, x0, x1 := x.static2()
		yneg, _, y0, y1 := y.static2()
		return z.addStatic(xneg, x0, x1, !yneg, y0, y1)
	}
	r := new(big.Int).Sub(x.bigView(), y.bigView())
	return z.setMag(r.Sign() < 0, r.Bits())
}

// addStatic is the inline sign-magnitude add of two two-limb operands. The
// operands arrive as plain words, so the write to z can never clobber a
// still-unread input.
func (z *Int) addStatic(xneg bool, x0, x1 Word, yneg bool, y0, y1 Word) *Int {
	if xneg == yneg {
		s0, s1, s2 := add2(x0, x1, y0, y1)
		out := [staticLimbs + 1]Word{s0, s1, s2}
		return z.setMag(xneg, out[:])
	}
	switch cmp2(x0, x1, y0, y1) {
	case 0:
		return z.setMag(false, nil)
	case -1:
		x0, x1, y0, y1 = y0, y1, x0, x1
		xneg = yneg
	}
	d0, d1 := sub2(x0, x1, y0, y1)
	out := [staticLimbs]Word{d0, d1}
	return z.setMag(xneg, out[:])
}

// Mul sets z = x * y and returns z. The static-by-static product is computed
// inline as a full four-limb result, promoting z only when it doesn't fit.
func (z *Int) Mul(x, y *Int) *Int {
	if x.IsStatic() && y.IsStatic() {
		xneg, _, x0, x1 := x.static2()
		yneg, _, y0, y1 := y.static2()
		p0, p1, p2, p3 := mul2(x0, x1, y0, y1)
		out := [2 * staticLimbs]Word{p0, p1, p2, p3}
		return z.setMag(xneg != yneg, out[:])
	}
	r := new(big.Int).Mul(x.bigView(), y.bigView())
	return z.setMag(r.Sign() < 0, r.Bits())
}

// Quo sets z = x / y and returns z, truncating towards zero (like Go).
// Panics on a zero divisor. Single-limb operands divide inline; anything
// wider goes through the kernel.
func (z *Int) Quo(x, y *Int) *Int {
	if y.IsZero() {
		panic("mppp: division by zero")
	}
	if x.IsStatic() && y.IsStatic() {
		xneg, xn, x0, _ := x.static2()
		yneg, yn, y0, _ := y.static2()
		if xn <= 1 && yn <= 1 {
			out := [1]Word{Word(uint(x0) / uint(y0))}
			return z.setMag(xneg != yneg, out[:])
		}
	}
	r := new(big.Int).Quo(x.bigView(), y.bigView())
	return z.setMag(r.Sign() < 0, r.Bits())
}

// Rem sets z = x % y and returns z, implementing truncated modulus (like
// Go): the result takes the sign of x. Panics on a zero divisor.
func (z *Int) Rem(x, y *Int) *Int {
	if y.IsZero() {
		panic("mppp: division by zero")
	}
	if x.IsStatic() && y.IsStatic() {
		xneg, xn, x0, _ := x.static2()
		_, yn, y0, _ := y.static2()
		if xn <= 1 && yn <= 1 {
			out := [1]Word{Word(uint(x0) % uint(y0))}
			return z.setMag(xneg, out[:])
		}
	}
	r := new(big.Int).Rem(x.bigView(), y.bigView())
	return z.setMag(r.Sign() < 0, r.Bits())
}

// QuoRem sets z = x / y and r = x % y and returns (z, r). Both results are
// computed before either destination is written, so z, r, x and y may alias
// freely except that z and r must not be the same object.
func (z *Int) QuoRem(x, y, r *Int) (*Int, *Int) {
	if y.IsZero() {
		panic("mppp: division by zero")
	}
	if z == r {
		panic("mppp: QuoRem quotient and remainder alias")
	}
	q, m := new(big.Int).QuoRem(x.bigView(), y.bigView(), new(big.Int))
	z.setMag(q.Sign() < 0, q.Bits())
	r.setMag(m.Sign() < 0, m.Bits())
	return z, r
}
