// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the remaining small operations of §4.10's
// skeleton that don't warrant their own file: Min, Max, Hypot, Cbrt.

package bigfloat

import "math"

// Min sets z to the smaller of x and y, correctly rounded, and
// returns z's accuracy. Grounded directly on
// original_source/minmax.c's mpfr_min: if either operand is NaN, the
// other is returned (both NaN gives NaN); of two signed zeros the
// negative one is returned; otherwise the lesser by Cmp is returned.
func (z *Float) Min(x, y *Float) Accuracy {
	switch {
	case x.IsNaN() && y.IsNaN():
		z.SetNaN()
		return Exact
	case x.IsNaN():
		return z.Set(y)
	case y.IsNaN():
		return z.Set(x)
	case x.IsZero() && y.IsZero():
		if x.neg {
			return z.Set(x)
		}
		return z.Set(y)
	}
	if Cmp(x, y) <= 0 {
		return z.Set(x)
	}
	return z.Set(y)
}

// Max sets z to the larger of x and y, correctly rounded, and returns
// z's accuracy. Grounded on original_source/minmax.c's mpfr_max,
// mirroring Min with the comparison and the signed-zero tie-break
// reversed.
func (z *Float) Max(x, y *Float) Accuracy {
	switch {
	case x.IsNaN() && y.IsNaN():
		z.SetNaN()
		return Exact
	case x.IsNaN():
		return z.Set(y)
	case y.IsNaN():
		return z.Set(x)
	case x.IsZero() && y.IsZero():
		if x.neg {
			return z.Set(y)
		}
		return z.Set(x)
	}
	if Cmp(x, y) <= 0 {
		return z.Set(y)
	}
	return z.Set(x)
}

// Hypot sets z to the correctly rounded Euclidean norm sqrt(x^2+y^2)
// and returns z's accuracy. Grounded on original_source/hypot.c,
// whose comment states the computation directly and whose body scales
// both operands down by a shared power of two (sh, the smaller of the
// two exponents, clamped to be non-negative) before squaring, so the
// intermediate squares don't overflow the working exponent range any
// more than the final result does, then scales the result back up by
// the same shift. hypot(NaN and no Inf)=NaN, hypot(+-Inf, anything)
// =+Inf, matching hypot.c's singular table.
func Hypot(z, x, y *Float) Accuracy {
	switch {
	case x.IsInf(0) || y.IsInf(0):
		z.SetInf(1)
		return Exact
	case x.IsNaN() || y.IsNaN():
		z.SetNaN()
		return Exact
	case x.IsZero():
		return z.Abs(y)
	case y.IsZero():
		return z.Abs(x)
	}

	if z.prec == 0 {
		z.SetPrec(umax(x.Prec(), y.Prec()))
	}

	big, small := x, y
	if CmpAbs(big, small) < 0 {
		big, small = small, big
	}

	sh := big.exp
	if small.exp < sh {
		sh = small.exp
	}
	if sh < 0 {
		sh = 0
	}

	approx := zivLoop(uint(z.prec), z.mode, func(work uint) (*Float, uint) {
		p := work + 16

		xs := new(Float).Init(p)
		xs.SetMode(ToNearestEven)
		xs.Round(x, p, ToNearestEven)
		scaleExp(xs, -sh)

		ys := new(Float).Init(p)
		ys.SetMode(ToNearestEven)
		ys.Round(y, p, ToNearestEven)
		scaleExp(ys, -sh)

		xsq := new(Float).Init(p)
		xsq.SetMode(ToNearestEven)
		xsq.Mul(xs, xs)

		ysq := new(Float).Init(p)
		ysq.SetMode(ToNearestEven)
		ysq.Mul(ys, ys)

		sum := new(Float).Init(p)
		sum.SetMode(ToNearestEven)
		sum.Add(xsq, ysq)

		root := new(Float).Init(p)
		root.SetMode(ToNearestEven)
		root.Sqrt(sum)

		scaleExp(root, sh)
		return root, work
	})
	acc := z.Set(approx)
	return CheckRange(activeRange(), z, acc)
}

// Cbrt sets z to the correctly rounded real cube root of x and
// returns z's accuracy. cbrt preserves the sign of x, so negative
// arguments are handled directly rather than being rejected the way
// Sqrt rejects them. No original_source/cbrt.c exists in this
// package's reference material; implemented with the same
// float64-seeded Newton iteration sqrt.go uses for Sqrt, solving
// f(t) = t^3 - |x| = 0 via t' = t - f(t)/f'(t) = (2t + |x|/t^2)/3,
// which converges quadratically once seeded near the true root.
func (z *Float) Cbrt(x *Float) Accuracy {
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
		return cbrtApprox(x, work), work
	})
	acc := z.Set(approx)
	return CheckRange(activeRange(), z, acc)
}

func cbrtApprox(x *Float, workPrec uint) *Float {
	const guard = 16
	iterPrec := workPrec + guard

	xabs := new(Float).Init(umax(iterPrec, 64))
	xabs.SetMode(ToNearestEven)
	xabs.Round(x, iterPrec, ToNearestEven)
	xabs.neg = false

	xf, _ := xabs.Float64()
	seed := math.Cbrt(xf)
	if seed == 0 || math.IsInf(seed, 0) || math.IsNaN(seed) {
		seed = 1
	}

	t := new(Float).Init(umax(iterPrec, 64))
	t.SetMode(ToNearestEven)
	t.SetFloat64(seed)

	correct := uint(48)
	if correct > iterPrec {
		correct = iterPrec
	}

	for correct < iterPrec {
		t = cbrtNewtonStep(xabs, t, iterPrec)
		next := 2*correct - 4
		if next <= correct {
			next = iterPrec
		}
		correct = next
	}

	if x.neg {
		t.neg = true
	}
	return t
}

// cbrtNewtonStep computes one refinement of Newton's method applied
// to f(t) = t^3 - x, i.e. t' = (2t + x/t^2)/3, at the given precision.
func cbrtNewtonStep(x, t *Float, prec uint) *Float {
	tsq := new(Float).Init(prec)
	tsq.SetMode(ToNearestEven)
	tsq.Mul(t, t)

	ratio := new(Float).Init(prec)
	ratio.SetMode(ToNearestEven)
	ratio.Div(x, tsq)

	twoT := new(Float).Init(prec)
	twoT.SetMode(ToNearestEven)
	twoT.Set(t)
	scaleExp(twoT, 1)

	sum := new(Float).Init(prec)
	sum.SetMode(ToNearestEven)
	sum.Add(twoT, ratio)

	three := new(Float).Init(prec)
	three.SetMode(ToNearestEven)
	three.SetUint64(3)

	result := new(Float).Init(prec)
	result.SetMode(ToNearestEven)
	result.Div(sum, three)
	return result
}
