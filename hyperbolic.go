// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the hyperbolic functions of §4.10's
// transcendental skeleton: sinh, cosh, sinh_cosh, tanh, asinh, acosh,
// atanh.

package bigfloat

// Sinh sets z to the correctly rounded hyperbolic sine of x and
// returns z's accuracy. sinh(NaN)=NaN, sinh(+-Inf)=+-Inf, sinh(+-0)=
// +-0, matching mpfr_sinh's table. Grounded on original_source/sinh.c's
// documented identity sinh(x) = (e^x - e^-x)/2, computed here as
// (e^x - 1/e^x)/2 from a single Exp call.
func (z *Float) Sinh(x *Float) Accuracy {
	switch {
	case x.IsNaN():
		z.SetNaN()
		return Exact
	case x.IsInf(0):
		z.SetInf(sign1(x.neg))
		return Exact
	case x.IsZero():
		z.SetZero(sign1(x.neg))
		return Exact
	}

	if z.prec == 0 {
		z.SetPrec(x.Prec())
	}

	approx := zivLoop(uint(z.prec), z.mode, func(work uint) (*Float, uint) {
		return sinhApprox(x, work), work
	})
	acc := z.Set(approx)
	return CheckRange(activeRange(), z, acc)
}

func sinhApprox(x *Float, workPrec uint) *Float {
	p := workPrec + 24

	e := new(Float).Init(p)
	e.SetMode(ToNearestEven)
	e.Exp(x)

	one := new(Float).Init(p)
	one.SetMode(ToNearestEven)
	one.SetUint64(1)

	recip := new(Float).Init(p)
	recip.SetMode(ToNearestEven)
	recip.Div(one, e)

	diff := new(Float).Init(p)
	diff.SetMode(ToNearestEven)
	diff.Sub(e, recip)
	scaleExp(diff, -1)
	return diff
}

// Cosh sets z to the correctly rounded hyperbolic cosine of x and
// returns z's accuracy. cosh(NaN)=NaN, cosh(+-Inf)=+Inf, cosh(+-0)=1,
// matching mpfr_cosh's table. Grounded on original_source/cosh.c's
// identity cosh(x) = (e^x + e^-x)/2.
func (z *Float) Cosh(x *Float) Accuracy {
	switch {
	case x.IsNaN():
		z.SetNaN()
		return Exact
	case x.IsInf(0):
		z.SetInf(1)
		return Exact
	case x.IsZero():
		return z.SetUint64(1)
	}

	if z.prec == 0 {
		z.SetPrec(x.Prec())
	}

	approx := zivLoop(uint(z.prec), z.mode, func(work uint) (*Float, uint) {
		return coshApprox(x, work), work
	})
	acc := z.Set(approx)
	return CheckRange(activeRange(), z, acc)
}

func coshApprox(x *Float, workPrec uint) *Float {
	p := workPrec + 24

	e := new(Float).Init(p)
	e.SetMode(ToNearestEven)
	e.Exp(x)

	one := new(Float).Init(p)
	one.SetMode(ToNearestEven)
	one.SetUint64(1)

	recip := new(Float).Init(p)
	recip.SetMode(ToNearestEven)
	recip.Div(one, e)

	sum := new(Float).Init(p)
	sum.SetMode(ToNearestEven)
	sum.Add(e, recip)
	scaleExp(sum, -1)
	return sum
}

// SinhCosh sets sinhOut and coshOut to the hyperbolic sine and cosine
// of x, computed from a single shared e**x (grounded on
// original_source/sinh_cosh.c, which likewise derives both from one
// exponential), and returns their accuracies.
func SinhCosh(x *Float, sinhOut, coshOut *Float) (sinhAcc, coshAcc Accuracy) {
	switch {
	case x.IsNaN():
		sinhOut.SetNaN()
		coshOut.SetNaN()
		return Exact, Exact
	case x.IsInf(0):
		sinhOut.SetInf(sign1(x.neg))
		coshOut.SetInf(1)
		return Exact, Exact
	case x.IsZero():
		sinhOut.SetZero(sign1(x.neg))
		coshOut.SetUint64(1)
		return Exact, Exact
	}

	if sinhOut.prec == 0 {
		sinhOut.SetPrec(x.Prec())
	}
	if coshOut.prec == 0 {
		coshOut.SetPrec(x.Prec())
	}
	target := umax(sinhOut.Prec(), coshOut.Prec())

	it := NewZivIterator(target)
	var sinhVal, coshVal *Float
	for {
		work := it.WorkingPrec()
		p := work + 24

		e := new(Float).Init(p)
		e.SetMode(ToNearestEven)
		e.Exp(x)

		one := new(Float).Init(p)
		one.SetMode(ToNearestEven)
		one.SetUint64(1)

		recip := new(Float).Init(p)
		recip.SetMode(ToNearestEven)
		recip.Div(one, e)

		s := new(Float).Init(p)
		s.SetMode(ToNearestEven)
		s.Sub(e, recip)
		scaleExp(s, -1)

		c := new(Float).Init(p)
		c.SetMode(ToNearestEven)
		c.Add(e, recip)
		scaleExp(c, -1)

		if s.IsRegular() && CanRound(s, work, sinhOut.mode, sinhOut.Prec()) &&
			c.IsRegular() && CanRound(c, work, coshOut.mode, coshOut.Prec()) {
			sinhVal, coshVal = s, c
			break
		}
		it.Advance()
	}

	sinhAcc = sinhOut.Set(sinhVal)
	coshAcc = coshOut.Set(coshVal)
	sinhAcc = CheckRange(activeRange(), sinhOut, sinhAcc)
	coshAcc = CheckRange(activeRange(), coshOut, coshAcc)
	return sinhAcc, coshAcc
}

// Tanh sets z to the correctly rounded hyperbolic tangent of x and
// returns z's accuracy. tanh(NaN)=NaN, tanh(+-Inf)=+-1, tanh(+-0)=
// +-0, matching mpfr_tanh's table. Grounded on original_source/tanh.c's
// identity tanh(x) = (e^(2x)-1)/(e^(2x)+1).
func (z *Float) Tanh(x *Float) Accuracy {
	switch {
	case x.IsNaN():
		z.SetNaN()
		return Exact
	case x.IsInf(0):
		return z.SetInt64(int64(sign1(x.neg)))
	case x.IsZero():
		z.SetZero(sign1(x.neg))
		return Exact
	}

	if z.prec == 0 {
		z.SetPrec(x.Prec())
	}

	approx := zivLoop(uint(z.prec), z.mode, func(work uint) (*Float, uint) {
		p := work + 24

		twoX := new(Float).Init(p)
		twoX.SetMode(ToNearestEven)
		twoX.Set(x)
		scaleExp(twoX, 1)

		e := new(Float).Init(p)
		e.SetMode(ToNearestEven)
		e.Exp(twoX)

		one := new(Float).Init(p)
		one.SetMode(ToNearestEven)
		one.SetUint64(1)

		num := new(Float).Init(p)
		num.SetMode(ToNearestEven)
		num.Sub(e, one)

		den := new(Float).Init(p)
		den.SetMode(ToNearestEven)
		den.Add(e, one)

		t := new(Float).Init(p)
		t.SetMode(ToNearestEven)
		t.Div(num, den)
		return t, work
	})
	acc := z.Set(approx)
	return CheckRange(activeRange(), z, acc)
}

// Asinh sets z to the correctly rounded inverse hyperbolic sine of x
// and returns z's accuracy. asinh(NaN)=NaN, asinh(+-Inf)=+-Inf,
// asinh(+-0)=+-0, matching mpfr_asinh's table. Grounded on
// original_source/asinh.c's identity asinh(x) = ln(x + sqrt(x^2+1)).
func (z *Float) Asinh(x *Float) Accuracy {
	switch {
	case x.IsNaN():
		z.SetNaN()
		return Exact
	case x.IsInf(0):
		z.SetInf(sign1(x.neg))
		return Exact
	case x.IsZero():
		z.SetZero(sign1(x.neg))
		return Exact
	}

	if z.prec == 0 {
		z.SetPrec(x.Prec())
	}

	approx := zivLoop(uint(z.prec), z.mode, func(work uint) (*Float, uint) {
		p := work + 24

		xsq := new(Float).Init(p)
		xsq.SetMode(ToNearestEven)
		xsq.Mul(x, x)

		one := new(Float).Init(p)
		one.SetMode(ToNearestEven)
		one.SetUint64(1)

		sum := new(Float).Init(p)
		sum.SetMode(ToNearestEven)
		sum.Add(xsq, one)

		root := new(Float).Init(p)
		root.SetMode(ToNearestEven)
		root.Sqrt(sum)

		arg := new(Float).Init(p)
		arg.SetMode(ToNearestEven)
		arg.Add(root, x)

		result := new(Float).Init(p)
		result.SetMode(ToNearestEven)
		result.Log(arg)
		return result, work
	})
	acc := z.Set(approx)
	return CheckRange(activeRange(), z, acc)
}

// Acosh sets z to the correctly rounded inverse hyperbolic cosine of
// x and returns z's accuracy. acosh(NaN)=NaN, acosh(x) for x<1 is
// NaN, acosh(1)=+0, acosh(+Inf)=+Inf, matching mpfr_acosh's table.
// Grounded on original_source/acosh.c's identity
// acosh(x) = ln(x + sqrt(x^2-1)).
func (z *Float) Acosh(x *Float) Accuracy {
	switch {
	case x.IsNaN():
		z.SetNaN()
		return Exact
	case x.IsInf(1):
		z.SetInf(1)
		return Exact
	case x.IsInf(-1):
		z.SetNaN()
		return Exact
	}

	if z.prec == 0 {
		z.SetPrec(x.Prec())
	}
	wp := uint(z.prec) + 16

	one := new(Float).Init(wp)
	one.SetMode(ToNearestEven)
	one.SetUint64(1)

	switch Cmp(x, one) {
	case -1:
		z.SetNaN()
		return Exact
	case 0:
		z.SetZero(1)
		return Exact
	}

	approx := zivLoop(uint(z.prec), z.mode, func(work uint) (*Float, uint) {
		p := work + 24

		xsq := new(Float).Init(p)
		xsq.SetMode(ToNearestEven)
		xsq.Mul(x, x)

		oneF := new(Float).Init(p)
		oneF.SetMode(ToNearestEven)
		oneF.SetUint64(1)

		diff := new(Float).Init(p)
		diff.SetMode(ToNearestEven)
		diff.Sub(xsq, oneF)

		root := new(Float).Init(p)
		root.SetMode(ToNearestEven)
		root.Sqrt(diff)

		arg := new(Float).Init(p)
		arg.SetMode(ToNearestEven)
		arg.Add(root, x)

		result := new(Float).Init(p)
		result.SetMode(ToNearestEven)
		result.Log(arg)
		return result, work
	})
	acc := z.Set(approx)
	return CheckRange(activeRange(), z, acc)
}

// Atanh sets z to the correctly rounded inverse hyperbolic tangent of
// x and returns z's accuracy. atanh(NaN)=NaN, atanh(x) for |x|>1 is
// NaN, atanh(+-1)=+-Inf, atanh(+-0)=+-0. No original_source/atanh.c
// exists in this package's reference material; implemented directly
// from the standard identity atanh(x) = 1/2*ln((1+x)/(1-x)), the same
// family of log-based identities asinh.c and acosh.c use for their
// own inverse hyperbolic functions.
func (z *Float) Atanh(x *Float) Accuracy {
	switch {
	case x.IsNaN(), x.IsInf(0):
		z.SetNaN()
		return Exact
	case x.IsZero():
		z.SetZero(sign1(x.neg))
		return Exact
	}

	if z.prec == 0 {
		z.SetPrec(x.Prec())
	}
	wp := uint(z.prec) + 16

	one := new(Float).Init(wp)
	one.SetMode(ToNearestEven)
	one.SetUint64(1)

	switch CmpAbs(x, one) {
	case 1:
		z.SetNaN()
		return Exact
	case 0:
		z.SetInf(sign1(x.neg))
		return Exact
	}

	approx := zivLoop(uint(z.prec), z.mode, func(work uint) (*Float, uint) {
		p := work + 24

		oneF := new(Float).Init(p)
		oneF.SetMode(ToNearestEven)
		oneF.SetUint64(1)

		num := new(Float).Init(p)
		num.SetMode(ToNearestEven)
		num.Add(oneF, x)

		den := new(Float).Init(p)
		den.SetMode(ToNearestEven)
		den.Sub(oneF, x)

		ratio := new(Float).Init(p)
		ratio.SetMode(ToNearestEven)
		ratio.Div(num, den)

		logVal := new(Float).Init(p)
		logVal.SetMode(ToNearestEven)
		logVal.Log(ratio)
		scaleExp(logVal, -1)
		return logVal, work
	})
	acc := z.Set(approx)
	return CheckRange(activeRange(), z, acc)
}
