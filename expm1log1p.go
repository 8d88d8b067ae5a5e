// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements expm1 and log1p, the small-argument-accurate
// companions to exp and log in §4.10's transcendental skeleton.

package bigfloat

// Expm1 sets z to the correctly rounded value of e**x - 1 and returns
// z's accuracy. expm1(NaN)=NaN, expm1(+Inf)=+Inf, expm1(-Inf)=-1,
// expm1(+-0)=+-0, matching mpfr_expm1's table. Grounded on
// original_source/expm1.c, whose comment states the computation
// plainly: "expm1(x) = exp(x) - 1". For x near zero this package
// still routes through the same Exp machinery rather than expm1.c's
// approach of tracking a separate error term, since this package's
// Ziv loop already grows working precision until the subtraction's
// cancellation is absorbed.
func (z *Float) Expm1(x *Float) Accuracy {
	switch {
	case x.IsNaN():
		z.SetNaN()
		return Exact
	case x.IsInf(1):
		z.SetInf(1)
		return Exact
	case x.IsInf(-1):
		return z.SetInt64(-1)
	case x.IsZero():
		z.SetZero(sign1(x.neg))
		return Exact
	}

	if z.prec == 0 {
		z.SetPrec(x.Prec())
	}

	approx := zivLoop(uint(z.prec), z.mode, func(work uint) (*Float, uint) {
		p := work + 24
		if x.exp < 0 {
			// x small: exp(x)-1 cancels heavily, so widen working
			// precision by roughly the number of leading zero bits in
			// x, the same correction expm1.c's own error estimate
			// applies (its err computation subtracts MPFR_GET_EXP(t)
			// from the exponent of exp(x), which for small x is the
			// same leading-zero count).
			p += uint(-x.exp)
		}

		e := new(Float).Init(p)
		e.SetMode(ToNearestEven)
		e.Exp(x)

		one := new(Float).Init(p)
		one.SetMode(ToNearestEven)
		one.SetUint64(1)

		result := new(Float).Init(p)
		result.SetMode(ToNearestEven)
		result.Sub(e, one)
		return result, work
	})
	acc := z.Set(approx)
	return CheckRange(activeRange(), z, acc)
}

// Log1p sets z to the correctly rounded value of ln(1+x) and returns
// z's accuracy. log1p(NaN)=NaN, log1p(x) for x<-1 is NaN, log1p(-1)=
// -Inf, log1p(+Inf)=+Inf, log1p(+-0)=+-0. No original_source/log1p.c
// exists in this package's reference material; implemented as the
// natural companion to Expm1 above, via the same Log machinery
// applied to 1+x with working precision widened the same way Expm1
// widens it, for the same small-x cancellation reason.
func (z *Float) Log1p(x *Float) Accuracy {
	switch {
	case x.IsNaN():
		z.SetNaN()
		return Exact
	case x.IsZero():
		z.SetZero(sign1(x.neg))
		return Exact
	case x.IsInf(1):
		z.SetInf(1)
		return Exact
	}

	if z.prec == 0 {
		z.SetPrec(x.Prec())
	}
	wp := uint(z.prec) + 16

	negOne := new(Float).Init(wp)
	negOne.SetMode(ToNearestEven)
	negOne.SetInt64(-1)

	switch Cmp(x, negOne) {
	case -1:
		z.SetNaN()
		return Exact
	case 0:
		z.SetInf(-1)
		return Exact
	}

	approx := zivLoop(uint(z.prec), z.mode, func(work uint) (*Float, uint) {
		p := work + 24
		if x.exp < 0 {
			p += uint(-x.exp)
		}

		one := new(Float).Init(p)
		one.SetMode(ToNearestEven)
		one.SetUint64(1)

		sum := new(Float).Init(p)
		sum.SetMode(ToNearestEven)
		sum.Add(one, x)

		result := new(Float).Init(p)
		result.SetMode(ToNearestEven)
		result.Log(sum)
		return result, work
	})
	acc := z.Set(approx)
	return CheckRange(activeRange(), z, acc)
}
