package mppp

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestRatZeroValue(t *testing.T) {
	tt := assert.WrapTB(t)

	var r Rat
	tt.MustAssert(r.IsZero())
	tt.MustEqual(0, r.Sign())
	tt.MustEqual("0/1", r.String())
	tt.MustEqual("1", r.Den().String())
}

func TestRatCanonical(t *testing.T) {
	for idx, tc := range []struct {
		a, b int64
		want string
	}{
		{1, 2, "1/2"},
		{2, 4, "1/2"},
		{1, -2, "-1/2"},
		{-4, -6, "2/3"},
		{0, 5, "0/1"},
		{0, -5, "0/1"},
		{-7, 1, "-7/1"},
		{6, 3, "2/1"},
	} {
		t.Run(fmt.Sprintf("%d/%d,%d", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)

			r := NewRat(tc.a, tc.b)
			tt.MustEqual(tc.want, r.String())
			tt.MustAssert(r.Den().Sign() > 0)
		})
	}
}

func TestRatZeroDenominator(t *testing.T) {
	tt := assert.WrapTB(t)

	r := NewRat(3, 4)
	tt.MustAssert(r.SetFrac(NewInt(1), NewInt(0)) != nil)
	tt.MustEqual("3/4", r.String()) // error leaves r unchanged

	defer func() {
		tt.MustAssert(recover() != nil)
	}()
	NewRat(1, 0)
}

func TestRatArith(t *testing.T) {
	tt := assert.WrapTB(t)

	var z Rat
	z.Add(NewRat(1, 2), NewRat(1, 3))
	tt.MustEqual("5/6", z.String())

	z.Sub(NewRat(1, 2), NewRat(1, 2))
	tt.MustEqual("0/1", z.String())

	z.Mul(NewRat(2, 3), NewRat(3, 4))
	tt.MustEqual("1/2", z.String())

	z.Neg(NewRat(1, 2))
	tt.MustEqual("-1/2", z.String())
	z.Neg(&z)
	tt.MustEqual("1/2", z.String())
}

func TestRatInv(t *testing.T) {
	tt := assert.WrapTB(t)

	var z Rat
	tt.MustOK(z.Inv(NewRat(2, 3)))
	tt.MustEqual("3/2", z.String())

	// Inverting flips the sign back onto the numerator:
	tt.MustOK(z.Inv(NewRat(-2, 3)))
	tt.MustEqual("-3/2", z.String())

	// Aliased:
	z.SetInt(NewInt(4))
	tt.MustOK(z.Inv(&z))
	tt.MustEqual("1/4", z.String())

	// A never-touched denominator reads as 1 and survives inversion:
	var w Rat
	w.Num().SetInt64(5)
	tt.MustOK(w.Inv(&w))
	tt.MustEqual("1/5", w.String())

	tt.MustAssert(new(Rat).Inv(new(Rat)) != nil)
}

func TestRatCmp(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual(0, NewRat(1, 2).Cmp(NewRat(2, 4)))
	tt.MustEqual(-1, NewRat(1, 3).Cmp(NewRat(1, 2)))
	tt.MustEqual(1, NewRat(-1, 3).Cmp(NewRat(-1, 2)))
	tt.MustAssert(NewRat(7, 7).Equal(NewRat(1, 1)))
}

func TestRatSetMove(t *testing.T) {
	tt := assert.WrapTB(t)

	src := NewRat(3, 7)
	src.Num().Promote()

	var cp Rat
	cp.Set(src)
	tt.MustEqual("3/7", cp.String())
	tt.MustAssert(cp.Num().IsDynamic()) // component copies mirror storage
	tt.MustAssert(cp.Den().IsStatic())

	cp.Num().SetInt64(9)
	tt.MustEqual("3/7", src.String()) // the copy owns its components

	var mv Rat
	mv.Move(src)
	tt.MustEqual("3/7", mv.String())
	tt.MustAssert(src.IsZero())
	tt.MustEqual("0/1", src.String())
	tt.MustAssert(src.Num().IsStatic())
}

func TestRatComponentPromotion(t *testing.T) {
	tt := assert.WrapTB(t)

	r := NewRat(5, 9)
	tt.MustAssert(r.Num().Promote())
	tt.MustAssert(r.Num().IsDynamic())
	tt.MustAssert(r.Den().IsStatic()) // components promote independently
	tt.MustEqual("5/9", r.String())

	tt.MustAssert(r.Num().Demote())
	tt.MustEqual("5/9", r.String())

	r.Clear()
	tt.MustEqual("0/1", r.String())
}

func TestRatWideComponents(t *testing.T) {
	tt := assert.WrapTB(t)

	num := new(Int).SetBig(overStaticBig())
	den := NewInt(3) // coprime with the numerator, so nothing reduces away

	var r Rat
	tt.MustOK(r.SetFrac(num, den))
	tt.MustAssert(r.Num().IsDynamic())

	want := new(big.Rat).SetFrac(overStaticBig(), new(big.Int).SetInt64(3))
	tt.MustEqual(want.Num().String(), r.Num().String())
	tt.MustEqual(want.Denom().String(), r.Den().String())
}

func TestRatArithRandom(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := globalRNG

	var z Rat
	for i := 0; i < fuzzIterations/10; i++ {
		an, bn := randBigIntN(rng, staticLimbs+1), randBigIntN(rng, staticLimbs+1)
		ad, bd := randBigIntN(rng, staticLimbs), randBigIntN(rng, staticLimbs)
		if ad.Sign() == 0 || bd.Sign() == 0 {
			continue
		}

		var a, b Rat
		tt.MustOK(a.SetFrac(new(Int).SetBig(an), new(Int).SetBig(ad)))
		tt.MustOK(b.SetFrac(new(Int).SetBig(bn), new(Int).SetBig(bd)))

		want := new(big.Rat)
		ar := new(big.Rat).SetFrac(an, ad)
		br := new(big.Rat).SetFrac(bn, bd)
		switch rng.Intn(3) {
		case 0:
			z.Add(&a, &b)
			want.Add(ar, br)
		case 1:
			z.Sub(&a, &b)
			want.Sub(ar, br)
		default:
			z.Mul(&a, &b)
			want.Mul(ar, br)
		}
		tt.MustEqual(want.Num().String(), z.Num().String(), "failed at iteration %d", i)
		tt.MustEqual(want.Denom().String(), z.Den().String(), "failed at iteration %d", i)
	}
}
