package mppp

import (
	"fmt"
	"math/big"
)

// Rat is a rational number represented as a pair of Ints, numerator and
// denominator, kept in canonical form: coprime, with a positive
// denominator. Each component has its own hybrid storage and can be
// promoted or demoted independently through the accessors.
//
// The zero value represents 0/1 and is ready to use (a zero denominator on
// a never-touched value stands for 1).
type Rat struct {
	num Int
	den Int
}

// NewRat returns a new Rat set to a/b in canonical form. Panics if b is 0.
func NewRat(a, b int64) *Rat {
	z := new(Rat)
	if err := z.SetFrac(NewInt(a), NewInt(b)); err != nil {
		panic(err.Error())
	}
	return z
}

func (z *Rat) initDen() {
	if z.den.IsZero() {
		z.den.SetInt64(1)
	}
}

// Num returns the numerator of z. The result is a reference to z's own
// component, not a copy.
func (z *Rat) Num() *Int { return &z.num }

// Den returns the denominator of z; it is always positive. The result is a
// reference to z's own component, not a copy.
func (z *Rat) Den() *Int {
	z.initDen()
	return &z.den
}

// Sign returns -1, 0 or +1 depending on the sign of z.
func (z *Rat) Sign() int { return z.num.Sign() }

// IsZero reports whether z is 0.
func (z *Rat) IsZero() bool { return z.num.IsZero() }

// SetFrac sets z to a/b reduced to canonical form. A zero b is reported as
// an error and leaves z unchanged.
func (z *Rat) SetFrac(a, b *Int) error {
	if b.IsZero() {
		return fmt.Errorf("mppp: zero denominator in rational")
	}
	ab, bb := a.Big(), b.Big()
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(ab), new(big.Int).Abs(bb))
	n := new(big.Int).Quo(ab, g)
	d := new(big.Int).Quo(bb, g)
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	z.num.SetBig(n)
	z.den.SetBig(d)
	return nil
}

// SetInt sets z to x/1.
func (z *Rat) SetInt(x *Int) *Rat {
	z.num.Set(x)
	z.den.SetInt64(1)
	return z
}

func (z *Rat) bigRat() *big.Rat {
	return new(big.Rat).SetFrac(z.num.Big(), z.Den().Big())
}

func (z *Rat) setBigRat(r *big.Rat) *Rat {
	z.num.SetBig(r.Num())
	z.den.SetBig(r.Denom())
	return z
}

// Add sets z = x + y in canonical form and returns z.
func (z *Rat) Add(x, y *Rat) *Rat {
	return z.setBigRat(new(big.Rat).Add(x.bigRat(), y.bigRat()))
}

// Sub sets z = x - y in canonical form and returns z.
func (z *Rat) Sub(x, y *Rat) *Rat {
	return z.setBigRat(new(big.Rat).Sub(x.bigRat(), y.bigRat()))
}

// Mul sets z = x * y in canonical form and returns z.
func (z *Rat) Mul(x, y *Rat) *Rat {
	return z.setBigRat(new(big.Rat).Mul(x.bigRat(), y.bigRat()))
}

// Neg sets z = -x and returns z.
func (z *Rat) Neg(x *Rat) *Rat {
	if z != x {
		z.Set(x)
	}
	z.num.Neg(&z.num)
	return z
}

// Inv sets z to 1/x. A zero x is reported as an error and leaves z
// unchanged.
func (z *Rat) Inv(x *Rat) error {
	if x.IsZero() {
		return fmt.Errorf("mppp: zero denominator in rational")
	}
	if z != x {
		z.Set(x)
	}
	z.initDen()
	var tmp Int
	tmp.Move(&z.num)
	z.num.Move(&z.den)
	z.den.Move(&tmp)
	if z.den.Sign() < 0 {
		z.den.Neg(&z.den)
		z.num.Neg(&z.num)
	}
	return nil
}

// Cmp compares z and y, returning -1, 0 or +1.
func (z *Rat) Cmp(y *Rat) int { return z.bigRat().Cmp(y.bigRat()) }

// Equal reports whether z and y are numerically equal.
func (z *Rat) Equal(y *Rat) bool { return z.Cmp(y) == 0 }

// Set sets z to x and returns z. Each component copy mirrors the source
// component's storage class.
func (z *Rat) Set(x *Rat) *Rat {
	if z == x {
		return z
	}
	z.num.Set(&x.num)
	z.den.Set(x.Den())
	return z
}

// Move sets z to x, stealing the storage of both components, and returns z.
// x is reset to 0/1: its components end up as moved-from Ints, which are
// guaranteed to be zero, and a zero denominator reads as 1.
func (z *Rat) Move(x *Rat) *Rat {
	if z == x {
		return z
	}
	x.initDen()
	z.num.Move(&x.num)
	z.den.Move(&x.den)
	return z
}

// Clear releases the heap storage of both components and resets z to 0/1.
func (z *Rat) Clear() {
	z.num.Clear()
	z.den.Clear()
}

func (z *Rat) String() string {
	return z.num.String() + "/" + z.Den().String()
}
