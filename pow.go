// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the power functions of §4.10's transcendental
// skeleton: integer-exponent power (pow_ui/pow_si/pow_z's shared
// binary-exponentiation core) and the general real-exponent Pow.

package bigfloat

import "github.com/BrianGladman/mpfloat/internal/limb"

// PowInt sets z to x**n, correctly rounded, for an int64 exponent n,
// and returns z's accuracy. Grounded on original_source/pow_z.c's
// mpfr_pow_pos_z, which computes x**|n| by square-and-multiply over
// n's bits from the top down, and original_source/pow_si.c, which
// reduces a negative exponent to 1/x**|n| (after first checking
// whether x is itself an exact power of two, in which case the whole
// result is exact — the same fast path kept here).
func (z *Float) PowInt(x *Float, n int64) Accuracy {
	switch {
	case x.IsNaN():
		z.SetNaN()
		return Exact
	case n == 0:
		return z.SetUint64(1)
	case x.IsZero():
		if n > 0 {
			z.SetZero(sign1(x.neg && n%2 != 0))
		} else {
			z.SetInf(sign1(x.neg && n%2 != 0))
		}
		return Exact
	case x.IsInf(0):
		if n > 0 {
			z.SetInf(sign1(x.neg && n%2 != 0))
		} else {
			z.SetZero(sign1(x.neg && n%2 != 0))
		}
		return Exact
	}

	if z.prec == 0 {
		z.SetPrec(x.Prec())
	}

	if isPowerOfTwoMagnitude(x) {
		return powerOfTwoExact(z, x, n)
	}

	approx := zivLoop(uint(z.prec), z.mode, func(work uint) (*Float, uint) {
		p := work + 16
		absN := n
		if absN < 0 {
			absN = -absN
		}
		r := powUintApprox(x, uint64(absN), p)
		if n < 0 {
			one := new(Float).Init(p)
			one.SetMode(ToNearestEven)
			one.SetUint64(1)
			recip := new(Float).Init(p)
			recip.SetMode(ToNearestEven)
			recip.Div(one, r)
			r = recip
		}
		return r, work
	})
	acc := z.Set(approx)
	return CheckRange(activeRange(), z, acc)
}

// isPowerOfTwoMagnitude reports whether |x| is an exact power of two,
// i.e. its mantissa has only its top bit set, the condition pow_si.c
// checks via mpfr_cmp_si_2exp before falling back to the general loop.
func isPowerOfTwoMagnitude(x *Float) bool {
	if !x.IsRegular() || x.IsZero() || len(x.mant) == 0 {
		return false
	}
	top := uint(len(x.mant))*limb.WordBits - 1
	return x.mant.Bit(top) == 1 && x.mant.Sticky(top) == 0
}

// powerOfTwoExact computes x**n exactly when x is a power of two, by
// scaling the exponent directly rather than iterating, mirroring
// pow_si.c's "exact powers" fast path (MPFR_EXP(y) += n*(expx-1)).
func powerOfTwoExact(z, x *Float, n int64) Accuracy {
	acc := z.SetUint64(1)
	z.exp = 1 + (n * (x.exp - 1))
	if x.neg && n%2 != 0 {
		z.neg = true
	}
	return CheckRange(activeRange(), z, acc)
}

// powUintApprox computes x**n (n>=0) to workPrec bits via
// square-and-multiply, scanning n's bits from the top down exactly as
// mpfr_pow_pos_z does.
func powUintApprox(x *Float, n uint64, workPrec uint) *Float {
	p := workPrec + 16
	if n == 0 {
		one := new(Float).Init(p)
		one.SetMode(ToNearestEven)
		one.SetUint64(1)
		return one
	}

	base := new(Float).Init(p)
	base.SetMode(ToNearestEven)
	base.Round(x, p, ToNearestEven)

	highBit := 63
	for highBit > 0 && n&(1<<uint(highBit)) == 0 {
		highBit--
	}

	result := new(Float).Init(p)
	result.SetMode(ToNearestEven)
	result.Set(base)

	for i := highBit - 1; i >= 0; i-- {
		sq := new(Float).Init(p)
		sq.SetMode(ToNearestEven)
		sq.Mul(result, result)
		result = sq
		if n&(1<<uint(i)) != 0 {
			next := new(Float).Init(p)
			next.SetMode(ToNearestEven)
			next.Mul(result, base)
			result = next
		}
	}
	return result
}

// Pow sets z to x**y, correctly rounded, for a general real exponent
// y, and returns z's accuracy. Not directly grounded on a single
// original_source file (only the integer-exponent pow_si.c/pow_z.c
// are present in this package's reference material); delegates to
// PowInt whenever y is an exact integer (the same specialization
// pow_si.c/pow_z.c exist to serve efficiently), and otherwise falls
// back to the standard identity x**y = exp(y*log(x)), built entirely
// from this package's own Exp and Log.
func (z *Float) Pow(x, y *Float) Accuracy {
	switch {
	case x.IsNaN() || y.IsNaN():
		z.SetNaN()
		return Exact
	case y.IsZero():
		return z.SetUint64(1)
	}

	if n, ok := exactInt64(y); ok {
		return z.PowInt(x, n)
	}

	switch {
	case x.IsZero():
		if y.neg {
			z.SetInf(1)
		} else {
			z.SetZero(1)
		}
		return Exact
	case x.neg:
		z.SetNaN()
		return Exact
	case x.IsInf(1):
		if y.neg {
			z.SetZero(1)
		} else {
			z.SetInf(1)
		}
		return Exact
	}

	if z.prec == 0 {
		z.SetPrec(umax(x.Prec(), y.Prec()))
	}

	approx := zivLoop(uint(z.prec), z.mode, func(work uint) (*Float, uint) {
		p := work + 16
		lx := new(Float).Init(p)
		lx.SetMode(ToNearestEven)
		lx.Log(x)

		prod := new(Float).Init(p)
		prod.SetMode(ToNearestEven)
		prod.Mul(y, lx)

		r := new(Float).Init(p)
		r.SetMode(ToNearestEven)
		r.Exp(prod)
		return r, work
	})
	acc := z.Set(approx)
	return CheckRange(activeRange(), z, acc)
}

// exactInt64 reports whether x represents an exact integer value that
// fits in an int64, returning that value.
func exactInt64(x *Float) (int64, bool) {
	if x.IsZero() {
		return 0, true
	}
	if !x.IsRegular() {
		return 0, false
	}
	n, acc, ok := x.Int64(ToNearestEven)
	if !ok || acc != Exact {
		return 0, false
	}
	return n, true
}
