// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the exp half of §4.10's transcendental
// skeleton.

package bigfloat

import "math"

// Exp sets z to the correctly rounded value of e**x and returns z's
// accuracy. exp(NaN)=NaN, exp(+Inf)=+Inf, exp(-Inf)=+0, exp(+-0)=1
// exactly, matching mpfr_exp's singular-value table.
func (z *Float) Exp(x *Float) Accuracy {
	switch {
	case x.IsNaN():
		z.SetNaN()
		return Exact
	case x.IsInf(1):
		z.SetInf(1)
		return Exact
	case x.IsInf(-1):
		z.SetZero(1)
		return Exact
	case x.IsZero():
		acc := z.SetUint64(1)
		return acc
	}

	if z.prec == 0 {
		z.SetPrec(x.Prec())
	}

	approx := zivLoop(uint(z.prec), z.mode, func(work uint) (*Float, uint) {
		return expApprox(x, work)
	})
	acc := z.Set(approx)
	return CheckRange(activeRange(), z, acc)
}

// expApprox computes e**x good to at least workPrec bits, following
// the range-reduce-then-Taylor-series plan original_source/exp.c
// documents in its own header comment: "use Brent's formula exp(x) =
// (1+r+r^2/2!+r^3/3!+...)^(2^K)*2^n where x = n*log(2)+(2^K)*r". n is
// the nearest integer to x/log(2), found via a float64 seed (the same
// native-estimate pattern sqrt.go uses) then corrected to an exact
// integer; r is reduced further by 2^K so the Taylor series converges
// in O(workPrec/K) terms, and the K squarings that follow cost O(K),
// balancing total work near O(sqrt(workPrec)) per exp.c's comment.
func expApprox(x *Float, workPrec uint) (*Float, uint) {
	p := workPrec + 32

	log2 := Log2(p)

	xr := new(Float).Init(p)
	xr.SetMode(ToNearestEven)
	xr.Round(x, p, ToNearestEven)

	ratio := new(Float).Init(p)
	ratio.SetMode(ToNearestEven)
	ratio.Div(xr, log2)

	rf, _ := ratio.Float64()
	n := int64(math.Round(rf))

	nF := new(Float).Init(p)
	nF.SetMode(ToNearestEven)
	nF.SetInt64(n)

	nLog2 := new(Float).Init(p)
	nLog2.SetMode(ToNearestEven)
	nLog2.Mul(nF, log2)

	r0 := new(Float).Init(p)
	r0.SetMode(ToNearestEven)
	r0.Sub(xr, nLog2)

	k := uint(math.Sqrt(float64(p)))
	if k < 4 {
		k = 4
	}

	r := new(Float).Init(p)
	r.SetMode(ToNearestEven)
	r.Set(r0)
	scaleExp(r, -int64(k))

	sum := new(Float).Init(p)
	sum.SetMode(ToNearestEven)
	sum.SetUint64(1)

	term := new(Float).Init(p)
	term.SetMode(ToNearestEven)
	term.SetUint64(1)

	threshold := -int64(p)
	maxTerms := 4*int(p) + 64
	for i := 1; i <= maxTerms; i++ {
		iF := new(Float).Init(p)
		iF.SetMode(ToNearestEven)
		iF.SetInt64(int64(i))

		next := new(Float).Init(p)
		next.SetMode(ToNearestEven)
		next.Mul(term, r)
		next.Div(next, iF)
		term = next

		sNext := new(Float).Init(p)
		sNext.SetMode(ToNearestEven)
		sNext.Add(sum, term)
		sum = sNext

		if term.IsZero() || term.exp < threshold {
			break
		}
	}

	for i := uint(0); i < k; i++ {
		sq := new(Float).Init(p)
		sq.SetMode(ToNearestEven)
		sq.Mul(sum, sum)
		sum = sq
	}

	scaleExp(sum, n)
	return sum, workPrec
}
