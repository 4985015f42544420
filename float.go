package mppp

import (
	"fmt"
	"math/big"
)

// Forms of the inline float representation.
const (
	formZero   = iota // ±0
	formFinite        // ±mant × 2**exp
	formInf           // ±Inf
)

// Float is an arbitrary-precision floating-point number. Values whose
// precision fits the inline mantissa are stored inline; higher precisions
// use a kernel handle (big.Float) that carries its own precision. The
// effective precision is always in [MinPrec, MaxPrec].
//
// The zero value represents 0 at MinPrec with inline storage and is ready
// to use.
type Float struct {
	// prec discriminates the active storage through its sign: negative
	// while the inline representation is active, positive while the kernel
	// handle is. The effective precision is |prec|; zero only occurs on a
	// never-touched zero value and is repaired on first use. Read it only
	// through Prec/IsStatic/IsDynamic.
	prec int32

	form int8
	neg  bool
	exp  int32
	mant [staticFloatLimbs]Word

	dy *big.Float // kernel handle; nil while the inline form is active
}

// NewFloat returns a new Float set to 0 with the given precision, or an
// error if the precision is outside [MinPrec, MaxPrec].
func NewFloat(prec int) (*Float, error) {
	if err := checkPrec(prec); err != nil {
		return nil, err
	}
	z := new(Float)
	if prec <= staticFloatPrec {
		z.prec = -int32(prec)
	} else {
		z.prec = int32(prec)
		z.dy = new(big.Float).SetPrec(uint(prec))
	}
	return z, nil
}

func checkPrec(prec int) error {
	if prec < MinPrec || prec > MaxPrec {
		return fmt.Errorf("mppp: precision %d out of range [%d, %d]", prec, MinPrec, MaxPrec)
	}
	return nil
}

// init repairs the zero value into its inline-zero-at-MinPrec state.
func (z *Float) init() {
	if z.prec == 0 {
		z.prec = -MinPrec
	}
}

// Prec returns the effective precision of z in bits.
func (z *Float) Prec() int {
	z.init()
	if z.prec < 0 {
		return int(-z.prec)
	}
	return int(z.prec)
}

// IsStatic reports whether z currently uses the inline representation.
func (z *Float) IsStatic() bool {
	z.init()
	return z.prec < 0
}

// IsDynamic reports whether z currently uses a kernel handle.
func (z *Float) IsDynamic() bool { return !z.IsStatic() }

// Sign returns -1, 0 or +1 depending on the sign of z.
func (z *Float) Sign() int {
	z.init()
	if z.IsDynamic() {
		return z.dy.Sign()
	}
	if z.form == formZero {
		return 0
	}
	if z.neg {
		return -1
	}
	return 1
}

// IsZero reports whether z is ±0.
func (z *Float) IsZero() bool { return z.Sign() == 0 }

// IsInf reports whether z is ±Inf.
func (z *Float) IsInf() bool {
	z.init()
	if z.IsDynamic() {
		return z.dy.IsInf()
	}
	return z.form == formInf
}

// bigFloat returns z's value in a fresh kernel handle at z's effective
// precision.
func (z *Float) bigFloat() *big.Float {
	z.init()
	if z.IsDynamic() {
		return new(big.Float).Copy(z.dy)
	}
	f := new(big.Float).SetPrec(uint(z.Prec()))
	switch z.form {
	case formInf:
		f.SetInf(z.neg)
	case formFinite:
		var m big.Int
		m.SetBits(append([]Word(nil), z.mant[:]...))
		f.SetInt(&m)
		f.SetMantExp(f, f.MantExp(nil)+int(z.exp))
		if z.neg {
			f.Neg(f)
		}
	default:
		if z.neg {
			f.Neg(f) // -0
		}
	}
	return f
}

// storeStatic activates the inline representation with the value and
// precision of f. f's precision must fit the inline mantissa.
func (z *Float) storeStatic(f *big.Float) {
	prec := int(f.Prec())
	z.dy = nil
	z.prec = -int32(prec)
	z.exp = 0
	z.mant = [staticFloatLimbs]Word{}
	z.neg = f.Signbit()
	switch {
	case f.Sign() == 0:
		z.form = formZero
	case f.IsInf():
		z.form = formInf
	default:
		z.form = formFinite
		mant := new(big.Float)
		e := f.MantExp(mant)
		// mant is in [0.5, 1) with prec significant bits; scaling by
		// 2**prec makes it an exact integer of at most prec bits.
		mi, _ := mant.SetMantExp(mant, prec).Int(nil)
		copy(z.mant[:], mi.Bits())
		z.exp = int32(e - prec)
	}
}

// storeDynamic takes ownership of f as z's kernel handle.
func (z *Float) storeDynamic(f *big.Float) {
	z.dy = f
	z.prec = int32(f.Prec())
	z.form, z.neg, z.exp = formZero, false, 0
	z.mant = [staticFloatLimbs]Word{}
}

// SetPrec changes z's precision to prec, rounding the value to the nearest
// representable one, and switches storage so that precisions up to the
// inline capacity stay inline. Requesting the current precision returns
// immediately with no rounding pass. A precision outside
// [MinPrec, MaxPrec] is reported as an error and leaves z untouched.
func (z *Float) SetPrec(prec int) error {
	z.init()
	if err := checkPrec(prec); err != nil {
		return err
	}
	if prec == z.Prec() {
		return nil
	}
	toStatic := prec <= staticFloatPrec
	switch {
	case z.IsStatic() && toStatic:
		f := z.bigFloat()
		f.SetPrec(uint(prec))
		z.storeStatic(f)
	case z.IsStatic():
		f := z.bigFloat()
		f.SetPrec(uint(prec))
		z.storeDynamic(f)
	case !toStatic:
		// Resize the existing handle in place.
		z.dy.SetPrec(uint(prec))
		z.prec = int32(prec)
	default:
		f := z.dy
		f.SetPrec(uint(prec))
		z.storeStatic(f)
	}
	return nil
}

// setKernel stores f, already rounded to z's effective precision, into z's
// active storage.
func (z *Float) setKernel(f *big.Float) *Float {
	if z.IsDynamic() {
		z.dy.Set(f)
	} else {
		z.storeStatic(f)
	}
	return z
}

// SetFloat64 sets z to v, rounded to z's precision, keeping z's storage
// class. Panics if v is NaN.
func (z *Float) SetFloat64(v float64) *Float {
	z.init()
	if z.IsDynamic() {
		z.dy.SetFloat64(v)
		return z
	}
	z.storeStatic(new(big.Float).SetPrec(uint(z.Prec())).SetFloat64(v))
	return z
}

// SetInt64 sets z to v, rounded to z's precision.
func (z *Float) SetInt64(v int64) *Float {
	z.init()
	return z.setKernel(new(big.Float).SetPrec(uint(z.Prec())).SetInt64(v))
}

// SetInt sets z to x, rounded to z's precision.
func (z *Float) SetInt(x *Int) *Float {
	z.init()
	return z.setKernel(new(big.Float).SetPrec(uint(z.Prec())).SetInt(x.Big()))
}

// SetInf sets z to +Inf or -Inf, keeping z's precision and storage class.
func (z *Float) SetInf(neg bool) *Float {
	z.init()
	f := new(big.Float).SetPrec(uint(z.Prec()))
	f.SetInf(neg)
	return z.setKernel(f)
}

// SetString sets z to the value of s, rounded to z's precision, and reports
// whether s parsed. On failure z is unchanged.
func (z *Float) SetString(s string) (*Float, bool) {
	z.init()
	f, ok := new(big.Float).SetPrec(uint(z.Prec())).SetString(s)
	if !ok {
		return nil, false
	}
	return z.setKernel(f), true
}

// Float64 returns z's value rounded to a float64.
func (z *Float) Float64() float64 {
	f, _ := z.bigFloat().Float64()
	return f
}

// Cmp compares z and y, returning -1, 0 or +1. Storage class and precision
// play no part in the comparison.
func (z *Float) Cmp(y *Float) int {
	return z.bigFloat().Cmp(y.bigFloat())
}

// Neg sets z to x with its sign flipped, keeping x's precision, and
// returns z.
func (z *Float) Neg(x *Float) *Float {
	if z != x {
		z.Set(x)
	}
	if z.IsDynamic() {
		z.dy.Neg(z.dy)
	} else {
		z.neg = !z.neg
	}
	return z
}

// Set sets z to x, mirroring x's storage class and precision, and returns
// z. A dynamic copy gets its own kernel handle.
func (z *Float) Set(x *Float) *Float {
	if z == x {
		return z
	}
	x.init()
	if x.IsDynamic() {
		*z = Float{prec: x.prec, dy: new(big.Float).Copy(x.dy)}
		return z
	}
	*z = *x
	return z
}

// Move sets z to x, stealing x's storage, and returns z. x is reset to
// inline zero at MinPrec.
func (z *Float) Move(x *Float) *Float {
	if z == x {
		return z
	}
	x.init()
	*z = *x
	*x = Float{prec: -MinPrec}
	return z
}

// Clear drops z's kernel handle, if any, and resets z to inline zero at
// MinPrec.
func (z *Float) Clear() {
	*z = Float{prec: -MinPrec}
}

func (z *Float) String() string {
	return z.bigFloat().Text('g', -1)
}

func (z *Float) Format(s fmt.State, c rune) {
	z.bigFloat().Format(s, c)
}

func (z *Float) MarshalText() ([]byte, error) {
	return []byte(z.String()), nil
}

func (z *Float) UnmarshalText(bts []byte) error {
	if _, ok := z.SetString(string(bts)); !ok {
		return fmt.Errorf("mppp: float string %q invalid", string(bts))
	}
	return nil
}

func (z *Float) MarshalJSON() ([]byte, error) {
	return []byte(`"` + z.String() + `"`), nil
}

func (z *Float) UnmarshalJSON(bts []byte) error {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if bts[ln-1] != '"' {
			return fmt.Errorf("mppp: float invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return z.UnmarshalText(bts)
}
