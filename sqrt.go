// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements square root, the remaining §6.3 minimum
// operation not already covered by the arithmetic core. Like every
// transcendental in this package, it drives the shared Ziv loop (§4.8)
// around a Newton iteration rather than a bit-by-bit digit extraction.

package bigfloat

import "math"

// Sqrt sets z to the correctly rounded square root of x and returns
// z's accuracy. Negative x (other than -0) is a domain error and
// produces NaN; sqrt(-0) is -0, matching IEEE 754 and mpfr_sqrt.
func (z *Float) Sqrt(x *Float) Accuracy {
	switch {
	case x.IsNaN():
		z.SetNaN()
		return Exact
	case x.IsZero():
		z.SetZero(sign1(x.neg))
		return Exact
	case x.neg:
		z.SetNaN()
		return Exact
	case x.IsInf(1):
		z.SetInf(1)
		return Exact
	}

	if z.prec == 0 {
		z.SetPrec(x.Prec())
	}

	approx := zivLoop(uint(z.prec), z.mode, func(work uint) (*Float, uint) {
		return sqrtApprox(x, work)
	})
	acc := z.Set(approx)
	return CheckRange(activeRange(), z, acc)
}

// sqrtApprox computes an approximation of sqrt(x) good to at least
// workPrec bits, via Newton's method seeded from the native float64
// estimate (already correctly rounded to 53 bits by the hardware/
// runtime sqrt) and refined by the standard t_{n+1} = (t_n + x/t_n)/2
// iteration, which doubles the number of correct bits every step once
// started close enough to the root. Each step is carried out at
// workPrec+16 bits of guard precision to keep the doubling from being
// eaten by the step's own rounding error.
func sqrtApprox(x *Float, workPrec uint) (*Float, uint) {
	const guard = 16
	iterPrec := workPrec + guard

	// Seed from x scaled by an even power of two into [1/4, 2), so the
	// float64 conversion can neither overflow nor underflow.
	e := x.exp &^ 1
	xs := new(Float).Init(x.Prec())
	xs.Set(x)
	scaleExp(xs, -e)
	f, _ := xs.Float64()
	t := new(Float).Init(umax(iterPrec, 64))
	t.SetMode(ToNearestEven)
	t.SetFloat64(math.Sqrt(f))
	scaleExp(t, e/2)

	// float64 Sqrt is correctly rounded to 53 bits; take a few bits off
	// for safety since the seed went through two lossy native
	// conversions (x to float64, then back).
	correct := uint(48)
	if correct > iterPrec {
		correct = iterPrec
	}

	for correct < iterPrec {
		t = sqrtNewtonStep(x, t, iterPrec)
		// quadratic convergence roughly doubles the correct bit count;
		// the -4 covers rounding error accumulated by this step's own
		// two roundings (the division and the sum).
		next := 2*correct - 4
		if next <= correct {
			next = iterPrec // guard against stalling at tiny precisions
		}
		correct = next
	}

	// t is accurate to at least workPrec bits: the loop above drove the
	// tracked correct-bit count to iterPrec = workPrec+guard, and the
	// error bound reported to the Ziv loop must scale with workPrec
	// (not be a fixed constant) or CanRound can never succeed once the
	// caller asks for more than a few dozen bits.
	return t, workPrec
}

// sqrtNewtonStep computes one refinement (t + x/t)/2 at the given
// working precision.
func sqrtNewtonStep(x, t *Float, prec uint) *Float {
	q := new(Float).Init(prec)
	q.SetMode(ToNearestEven)
	q.Div(x, t)

	s := new(Float).Init(prec)
	s.SetMode(ToNearestEven)
	s.Add(t, q)
	halveInPlace(s)
	return s
}

// halveInPlace divides a regular, non-zero Float by two exactly, by
// adjusting its exponent rather than performing an arithmetic op —
// dividing by a power of two never needs rounding.
func halveInPlace(z *Float) {
	if z.IsRegular() && !z.IsZero() {
		z.exp--
	}
}

// scaleExp multiplies a regular, non-zero Float by 2**delta exactly, by
// adjusting its exponent. Used by constants.go's argument reduction,
// where values are rescaled by exact powers of two before and after an
// AGM evaluation.
func scaleExp(z *Float, delta int64) {
	if z.IsRegular() && !z.IsZero() {
		z.exp += delta
	}
}
