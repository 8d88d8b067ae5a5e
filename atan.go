// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the inverse circular trigonometric functions of
// §4.10's transcendental skeleton: atan, atan2, asin, acos.

package bigfloat

// Atan sets z to the correctly rounded arc-tangent of x and returns
// z's accuracy. atan(NaN)=NaN, atan(+-Inf)=+-pi/2, atan(+-0)=+-0,
// atan(+-1)=+-pi/4, matching mpfr_atan's singular-value table.
func (z *Float) Atan(x *Float) Accuracy {
	switch {
	case x.IsNaN():
		z.SetNaN()
		return Exact
	case x.IsZero():
		z.SetZero(sign1(x.neg))
		return Exact
	case x.IsInf(0):
		if z.prec == 0 {
			z.SetPrec(x.Prec())
		}
		acc := z.Set(Pi(uint(z.prec) + 8))
		scaleExp(z, -1)
		if x.neg {
			z.neg = !z.neg
		}
		return CheckRange(activeRange(), z, acc)
	}

	if z.prec == 0 {
		z.SetPrec(x.Prec())
	}

	approx := zivLoop(uint(z.prec), z.mode, func(work uint) (*Float, uint) {
		return atanApprox(x, work), work
	})
	acc := z.Set(approx)
	return CheckRange(activeRange(), z, acc)
}

// atanApprox computes atan(x) good to at least workPrec bits.
// original_source/atan.c reduces its argument to sk = min(|x|,1/|x|)
// and then repeatedly halves it via the tangent half-angle identity,
// summing a divide-and-conquer series on mpz tables at each stage.
// This package instead applies the same well-known half-angle
// reduction, atan(t) = 2*atan(t/(1+sqrt(1+t^2))), directly in Float
// arithmetic until the residual argument is small, then sums the
// plain arctangent Taylor series atan(t) = t - t^3/3 + t^5/5 - ...,
// which converges in a handful of terms once t is small. |x|>1 is
// handled first via atan(x) = sign(x)*pi/2 - atan(1/x), the same
// reciprocal step atan.c's sk construction performs.
func atanApprox(x *Float, workPrec uint) *Float {
	p := workPrec + 32

	xr := new(Float).Init(p)
	xr.SetMode(ToNearestEven)
	xr.Round(x, p, ToNearestEven)

	neg := xr.neg
	xr.neg = false

	big := xr.exp > 0

	var t *Float
	if big {
		one := new(Float).Init(p)
		one.SetMode(ToNearestEven)
		one.SetUint64(1)
		t = new(Float).Init(p)
		t.SetMode(ToNearestEven)
		t.Div(one, xr)
	} else {
		t = xr
	}

	const halvings = 6
	for i := 0; i < halvings; i++ {
		tsq := new(Float).Init(p)
		tsq.SetMode(ToNearestEven)
		tsq.Mul(t, t)

		one := new(Float).Init(p)
		one.SetMode(ToNearestEven)
		one.SetUint64(1)

		sum := new(Float).Init(p)
		sum.SetMode(ToNearestEven)
		sum.Add(one, tsq)

		root := new(Float).Init(p)
		root.SetMode(ToNearestEven)
		root.Sqrt(sum)

		denom := new(Float).Init(p)
		denom.SetMode(ToNearestEven)
		denom.Add(one, root)

		next := new(Float).Init(p)
		next.SetMode(ToNearestEven)
		next.Div(t, denom)
		t = next
	}

	tsq := new(Float).Init(p)
	tsq.SetMode(ToNearestEven)
	tsq.Mul(t, t)
	if !tsq.IsZero() {
		tsq.neg = true
	}

	sum := new(Float).Init(p)
	sum.SetMode(ToNearestEven)
	sum.Set(t)

	term := new(Float).Init(p)
	term.SetMode(ToNearestEven)
	term.Set(t)

	threshold := -int64(p)
	maxTerms := 4*int(p) + 64
	for l := 1; l <= maxTerms; l++ {
		next := new(Float).Init(p)
		next.SetMode(ToNearestEven)
		next.Mul(term, tsq)
		term = next

		denom := new(Float).Init(p)
		denom.SetMode(ToNearestEven)
		denom.SetInt64(int64(2*l + 1))

		frac := new(Float).Init(p)
		frac.SetMode(ToNearestEven)
		frac.Div(term, denom)

		sNext := new(Float).Init(p)
		sNext.SetMode(ToNearestEven)
		sNext.Add(sum, frac)
		sum = sNext

		if frac.IsZero() || frac.exp < threshold {
			break
		}
	}

	for i := 0; i < halvings; i++ {
		scaleExp(sum, 1)
	}

	if big {
		halfPi := new(Float).Init(p)
		halfPi.SetMode(ToNearestEven)
		halfPi.Set(Pi(p))
		scaleExp(halfPi, -1)

		diff := new(Float).Init(p)
		diff.SetMode(ToNearestEven)
		diff.Sub(halfPi, sum)
		sum = diff
	}

	if neg {
		sum.neg = !sum.neg
	}
	return sum
}

// Atan2 sets z to the correctly rounded arc-tangent of y/x, using the
// signs of both arguments to determine the quadrant of the result,
// and returns z's accuracy. Follows original_source/atan2.c's table
// of singular cases (zero/infinite arguments resolve to multiples of
// pi and pi/2 without ever dividing), and otherwise computes
// atan(y/x) with a quadrant correction of +-pi when x is negative.
func Atan2(z, y, x *Float) Accuracy {
	prec := z.Prec()
	if prec == 0 {
		prec = umax(x.Prec(), y.Prec())
		z.SetPrec(prec)
	}
	wp := prec + 16

	if x.IsNaN() || y.IsNaN() {
		z.SetNaN()
		return Exact
	}

	ysign := sign1(y.neg)

	switch {
	case y.IsZero():
		if x.neg {
			acc := z.Set(Pi(wp))
			if y.neg {
				z.neg = !z.neg
			}
			return CheckRange(activeRange(), z, acc)
		}
		z.SetZero(ysign)
		return Exact
	case x.IsZero():
		acc := z.Set(Pi(wp))
		scaleExp(z, -1)
		if y.neg {
			z.neg = !z.neg
		}
		return CheckRange(activeRange(), z, acc)
	case y.IsInf(0) && x.IsInf(0):
		// |x|=|y|=Inf: +-pi/4 when x>0, +-3pi/4 when x<0.
		pi := Pi(wp)
		acc := z.Set(pi)
		scaleExp(z, -2)
		if x.neg {
			threeQuarter := new(Float).Init(wp)
			threeQuarter.SetMode(ToNearestEven)
			threeQuarter.SetUint64(3)
			threeQuarter.Mul(threeQuarter, z)
			acc = z.Set(threeQuarter)
		}
		if y.neg {
			z.neg = !z.neg
		}
		return CheckRange(activeRange(), z, acc)
	case y.IsInf(0):
		acc := z.Set(Pi(wp))
		scaleExp(z, -1)
		if y.neg {
			z.neg = !z.neg
		}
		return CheckRange(activeRange(), z, acc)
	case x.IsInf(0):
		if x.neg {
			acc := z.Set(Pi(wp))
			if y.neg {
				z.neg = !z.neg
			}
			return CheckRange(activeRange(), z, acc)
		}
		z.SetZero(ysign)
		return Exact
	}

	approx := zivLoop(uint(prec), z.mode, func(work uint) (*Float, uint) {
		p := work + 16
		ratio := new(Float).Init(p)
		ratio.SetMode(ToNearestEven)
		ratio.Div(y, x)

		r := atanApprox(ratio, work)
		if x.neg {
			pi := new(Float).Init(p)
			pi.SetMode(ToNearestEven)
			pi.Set(Pi(p))
			if y.neg {
				pi.neg = true
			}
			sum := new(Float).Init(p)
			sum.SetMode(ToNearestEven)
			sum.Add(r, pi)
			r = sum
		}
		return r, work
	})
	acc := z.Set(approx)
	return CheckRange(activeRange(), z, acc)
}

// Asin sets z to the correctly rounded arc-sine of x and returns z's
// accuracy. asin(NaN)=NaN, asin(x) for |x|>1 is NaN, asin(+-1)=+-pi/2,
// asin(+-0)=+-0, matching mpfr_asin's table. Uses the same identity
// asin.c documents directly in its final loop: asin(x) =
// atan(x/sqrt(1-x^2)).
func (z *Float) Asin(x *Float) Accuracy {
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
		acc := z.Set(Pi(uint(z.prec) + 8))
		scaleExp(z, -1)
		if x.neg {
			z.neg = !z.neg
		}
		return CheckRange(activeRange(), z, acc)
	}

	approx := zivLoop(uint(z.prec), z.mode, func(work uint) (*Float, uint) {
		p := work + 16
		xsq := new(Float).Init(p)
		xsq.SetMode(ToNearestEven)
		xsq.Mul(x, x)

		oneF := new(Float).Init(p)
		oneF.SetMode(ToNearestEven)
		oneF.SetUint64(1)

		diff := new(Float).Init(p)
		diff.SetMode(ToNearestEven)
		diff.Sub(oneF, xsq)

		root := new(Float).Init(p)
		root.SetMode(ToNearestEven)
		root.Sqrt(diff)

		ratio := new(Float).Init(p)
		ratio.SetMode(ToNearestEven)
		ratio.Div(x, root)

		return atanApprox(ratio, work), work
	})
	acc := z.Set(approx)
	return CheckRange(activeRange(), z, acc)
}

// Acos sets z to the correctly rounded arc-cosine of x and returns
// z's accuracy. acos(NaN)=NaN, acos(x) for |x|>1 is NaN, acos(+1)=+0,
// acos(-1)=pi, acos(+-0)=pi/2, matching mpfr_acos's table. Uses the
// identity acos.c computes explicitly in its loop: acos(x) =
// pi/2 - asin(x) = pi/2 - atan(x/sqrt(1-x^2)).
func (z *Float) Acos(x *Float) Accuracy {
	switch {
	case x.IsNaN(), x.IsInf(0):
		z.SetNaN()
		return Exact
	case x.IsZero():
		acc := z.Set(Pi(uint(z.Prec()) + 8))
		scaleExp(z, -1)
		return CheckRange(activeRange(), z, acc)
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
		if x.neg {
			acc := z.Set(Pi(uint(z.prec) + 8))
			return CheckRange(activeRange(), z, acc)
		}
		z.SetZero(1)
		return Exact
	}

	approx := zivLoop(uint(z.prec), z.mode, func(work uint) (*Float, uint) {
		p := work + 16
		xsq := new(Float).Init(p)
		xsq.SetMode(ToNearestEven)
		xsq.Mul(x, x)

		oneF := new(Float).Init(p)
		oneF.SetMode(ToNearestEven)
		oneF.SetUint64(1)

		diff := new(Float).Init(p)
		diff.SetMode(ToNearestEven)
		diff.Sub(oneF, xsq)

		root := new(Float).Init(p)
		root.SetMode(ToNearestEven)
		root.Sqrt(diff)

		ratio := new(Float).Init(p)
		ratio.SetMode(ToNearestEven)
		ratio.Div(x, root)

		asinVal := atanApprox(ratio, work)

		halfPi := new(Float).Init(p)
		halfPi.SetMode(ToNearestEven)
		halfPi.Set(Pi(p))
		scaleExp(halfPi, -1)

		result := new(Float).Init(p)
		result.SetMode(ToNearestEven)
		result.Sub(halfPi, asinVal)
		return result, work
	})
	acc := z.Set(approx)
	return CheckRange(activeRange(), z, acc)
}
