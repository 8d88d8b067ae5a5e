// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the circular trigonometric functions of
// §4.10's transcendental skeleton: sin, cos, sin_cos, tan.

package bigfloat

import "math"

// Cos sets z to the correctly rounded cosine of x and returns z's
// accuracy. cos(NaN)=NaN, cos(Inf)=NaN, cos(+-0)=1 exactly, matching
// mpfr_cos's table.
func (z *Float) Cos(x *Float) Accuracy {
	switch {
	case x.IsNaN(), x.IsInf(0):
		z.SetNaN()
		return Exact
	case x.IsZero():
		return z.SetUint64(1)
	}

	if z.prec == 0 {
		z.SetPrec(x.Prec())
	}

	approx := zivLoop(uint(z.prec), z.mode, func(work uint) (*Float, uint) {
		xr := reduceAngle(x, work)
		return cosFromReduced(xr, work), work
	})
	acc := z.Set(approx)
	return CheckRange(activeRange(), z, acc)
}

// Sin sets z to the correctly rounded sine of x and returns z's
// accuracy. sin(NaN)=NaN, sin(Inf)=NaN, sin(+-0)=+-0 exactly, matching
// mpfr_sin's table. Derived, like original_source/sin.c and sin_cos.c
// both do, from cos by sin(x) = sign(x)*sqrt(1-cos(x)^2): this package
// finds the sign from the reduced angle's own sign (xr in (-pi,pi],
// where sign(sin(xr))=sign(xr)) rather than sin.c's more elaborate
// parity-of-k bookkeeping, since that machinery exists there to avoid
// a second argument reduction at full precision, a concern this
// simpler Float-based implementation doesn't share.
func (z *Float) Sin(x *Float) Accuracy {
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

	approx := zivLoop(uint(z.prec), z.mode, func(work uint) (*Float, uint) {
		return sinApprox(x, work), work
	})
	acc := z.Set(approx)
	return CheckRange(activeRange(), z, acc)
}

// SinCos sets sinOut and cosOut to the sine and cosine of x, sharing
// a single angle reduction and a single Ziv iterator between them
// (ziv.go's ZivIterator exists for exactly this), and returns their
// accuracies. Grounded on original_source/sin_cos.c, which computes
// cos(x) directly and derives sin(x) from it by the same
// sign(x)*sqrt(1-cos^2(x)) identity Sin uses on its own.
func SinCos(x *Float, sinOut, cosOut *Float) (sinAcc, cosAcc Accuracy) {
	switch {
	case x.IsNaN(), x.IsInf(0):
		sinOut.SetNaN()
		cosOut.SetNaN()
		return Exact, Exact
	case x.IsZero():
		sinOut.SetZero(sign1(x.neg))
		cosOut.SetUint64(1)
		return Exact, Exact
	}

	if sinOut.prec == 0 {
		sinOut.SetPrec(x.Prec())
	}
	if cosOut.prec == 0 {
		cosOut.SetPrec(x.Prec())
	}
	target := umax(sinOut.Prec(), cosOut.Prec())

	it := NewZivIterator(target)
	var cosApproxVal, sinApproxVal *Float
	for {
		work := it.WorkingPrec()
		xr := reduceAngle(x, work)
		c := cosFromReduced(xr, work)
		s := sinFromCos(xr, c, work)

		if c.IsRegular() && !c.IsZero() && CanRound(c, work, cosOut.mode, cosOut.Prec()) &&
			s.IsRegular() && CanRound(s, work, sinOut.mode, sinOut.Prec()) {
			cosApproxVal, sinApproxVal = c, s
			break
		}
		it.Advance()
	}

	cosAcc = cosOut.Set(cosApproxVal)
	sinAcc = sinOut.Set(sinApproxVal)
	cosAcc = CheckRange(activeRange(), cosOut, cosAcc)
	sinAcc = CheckRange(activeRange(), sinOut, sinAcc)
	return sinAcc, cosAcc
}

// Tan sets z to the correctly rounded tangent of x and returns z's
// accuracy. tan(NaN)=NaN, tan(Inf)=NaN, tan(+-0)=+-0 exactly.
// Grounded on original_source/tan.c's own formula, stated directly in
// its header comment: "computes tan(x) = sign(x)*sqrt(1/cos(x)^2-1)".
// The sign applied here is that of sin(x)*cos(x), taken from the
// reduced angle and the cosine, which equals sign(x) for |x| < pi/2.
func (z *Float) Tan(x *Float) Accuracy {
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

	approx := zivLoop(uint(z.prec), z.mode, func(work uint) (*Float, uint) {
		p := work + 16
		xr := reduceAngle(x, p)
		c := cosFromReduced(xr, p)

		one := new(Float).Init(p)
		one.SetMode(ToNearestEven)
		one.SetUint64(1)

		cc := new(Float).Init(p)
		cc.SetMode(ToNearestEven)
		cc.Mul(c, c)

		recip := new(Float).Init(p)
		recip.SetMode(ToNearestEven)
		recip.Div(one, cc)

		diff := new(Float).Init(p)
		diff.SetMode(ToNearestEven)
		diff.Sub(recip, one)

		t := new(Float).Init(p)
		t.SetMode(ToNearestEven)
		t.Sqrt(diff)
		if xr.neg != c.neg {
			t.neg = !t.neg
		}
		return t, work
	})
	acc := z.Set(approx)
	return CheckRange(activeRange(), z, acc)
}

// reduceAngle returns x reduced modulo 2*pi into (-pi, pi], computed
// at workPrec+guard bits. Grounded on original_source/cos.c's range
// reduction step: find the nearest integer k to x/(2*pi), then
// xr = x - k*(2*pi).
func reduceAngle(x *Float, workPrec uint) *Float {
	p := workPrec + 32

	xr := new(Float).Init(p)
	xr.SetMode(ToNearestEven)
	xr.Round(x, p, ToNearestEven)

	if x.exp < 2 {
		// |x| < 2, well inside (-pi,pi]; no reduction needed, and
		// reducing anyway would just add rounding noise.
		return xr
	}

	twoPi := new(Float).Init(p)
	twoPi.SetMode(ToNearestEven)
	twoPi.Set(Pi(p))
	scaleExp(twoPi, 1)

	ratio := new(Float).Init(p)
	ratio.SetMode(ToNearestEven)
	ratio.Div(xr, twoPi)

	kf, _ := ratio.Float64()
	k := int64(math.Round(kf))

	kF := new(Float).Init(p)
	kF.SetMode(ToNearestEven)
	kF.SetInt64(k)

	shift := new(Float).Init(p)
	shift.SetMode(ToNearestEven)
	shift.Mul(kF, twoPi)

	result := new(Float).Init(p)
	result.SetMode(ToNearestEven)
	result.Sub(xr, shift)
	return result
}

// cosFromReduced computes cos(xr) for an angle already reduced near
// [-2pi,2pi], by halving xr down to a small t via repeated
// application of cos(2t)=2cos^2(t)-1 and summing the Taylor series
// cos(t) = sum (-1)^l t^(2l)/(2l)! on the halved angle. Grounded on
// original_source/cos.c's structure (reduce, halve by K so the
// residual satisfies the Taylor series' fast-convergence precondition,
// sum the series, then re-double K times), evaluated directly in
// Float arithmetic rather than cos.c's integer (mpz) bookkeeping.
func cosFromReduced(xr *Float, workPrec uint) *Float {
	p := workPrec + 16

	k := uint(0)
	if xr.IsRegular() && !xr.IsZero() && xr.exp > 0 {
		k = uint(xr.exp) + 2
	}

	t := new(Float).Init(p)
	t.SetMode(ToNearestEven)
	t.Set(xr)
	scaleExp(t, -int64(k))

	tsq := new(Float).Init(p)
	tsq.SetMode(ToNearestEven)
	tsq.Mul(t, t)
	if !tsq.IsZero() {
		tsq.neg = true // -(t^2), the per-term ratio
	}

	sum := new(Float).Init(p)
	sum.SetMode(ToNearestEven)
	sum.SetUint64(1)

	term := new(Float).Init(p)
	term.SetMode(ToNearestEven)
	term.SetUint64(1)

	threshold := -int64(p)
	maxTerms := 4*int(p) + 64
	for l := 1; l <= maxTerms; l++ {
		denom := new(Float).Init(p)
		denom.SetMode(ToNearestEven)
		denom.SetUint64(uint64(2*l-1) * uint64(2*l))

		next := new(Float).Init(p)
		next.SetMode(ToNearestEven)
		next.Mul(term, tsq)
		next.Div(next, denom)
		term = next

		sNext := new(Float).Init(p)
		sNext.SetMode(ToNearestEven)
		sNext.Add(sum, term)
		sum = sNext

		if term.IsZero() || term.exp < threshold {
			break
		}
	}

	one := new(Float).Init(p)
	one.SetMode(ToNearestEven)
	one.SetUint64(1)

	for i := uint(0); i < k; i++ {
		sq := new(Float).Init(p)
		sq.SetMode(ToNearestEven)
		sq.Mul(sum, sum)
		scaleExp(sq, 1)
		next := new(Float).Init(p)
		next.SetMode(ToNearestEven)
		next.Sub(sq, one)
		sum = next
	}

	return sum
}

// sinFromCos derives sin(xr) from cos(xr) via sign(xr)*sqrt(1-cos(xr)^2),
// the identity original_source/sin.c and sin_cos.c both use. xr must
// already be reduced into (-pi,pi], where sign(sin(xr)) == sign(xr).
func sinFromCos(xr, cosVal *Float, workPrec uint) *Float {
	p := workPrec + 16

	one := new(Float).Init(p)
	one.SetMode(ToNearestEven)
	one.SetUint64(1)

	cc := new(Float).Init(p)
	cc.SetMode(ToNearestEven)
	cc.Mul(cosVal, cosVal)

	diff := new(Float).Init(p)
	diff.SetMode(ToNearestEven)
	diff.Sub(one, cc)

	s := new(Float).Init(p)
	s.SetMode(ToNearestEven)
	s.Sqrt(diff)
	if xr.neg {
		s.neg = !s.neg
	}
	return s
}

// sinApprox is Sin's Ziv-loop body: reduce, derive cos, then sin.
func sinApprox(x *Float, workPrec uint) *Float {
	p := workPrec + 16
	xr := reduceAngle(x, p)
	c := cosFromReduced(xr, p)
	return sinFromCos(xr, c, p)
}
