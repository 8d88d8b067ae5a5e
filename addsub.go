// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the aligned-significand add/sub core of §4.6:
// shift the smaller operand into alignment while retaining a sticky bit
// for everything shifted away, add or subtract limb-wise, renormalize,
// and hand off to the rounding kernel.

package bigfloat

import "github.com/BrianGladman/mpfloat/internal/limb"

// uadd sets z to |x|+|y|, ignoring the signs of x and y, which must both
// be regular and non-zero. It folds the sticky bit lost during
// alignment into its own call to round.
func (z *Float) uadd(x, y *Float) {
	// Work in a coordinate where the mantissa's binary point sits to the
	// right of the integer it represents (mantissa.0), so exponents of
	// x and y become directly comparable shift amounts.
	ex := x.exp - int64(len(x.mant))*limb.WordBits
	ey := y.exp - int64(len(y.mant))*limb.WordBits

	var sum limb.Nat
	var sbit uint
	switch {
	case ex == ey:
		sum = limb.Add(nil, x.mant, y.mant)
	case ex > ey:
		shifted, lost := shiftWithSticky(y.mant, uint(ex-ey))
		sum = limb.Add(nil, x.mant, shifted)
		sbit = lost
		ey = ex
	default: // ex < ey
		shifted, lost := shiftWithSticky(x.mant, uint(ey-ex))
		sum = limb.Add(nil, y.mant, shifted)
		sbit = lost
		ex = ey
	}

	shift := normalizeShift(sum)
	if shift > 0 {
		sum = limb.Shl(sum, sum, shift)
	}
	z.mant = sum
	z.exp = ex + fnormExp(sum, shift)
	z.round(sbit)
}

// usub sets z to |x|-|y| for |x| >= |y|, ignoring signs; x and y must
// both be regular and non-zero.
//
// When y must be shifted right to align with x, the bits shifted away
// are real bits of y that the subtraction still owes: the naive
// difference x - shift(y) therefore overstates the true result by some
// amount strictly between 0 and one unit at the alignment scale. The
// classical fix (as MPFR's sub1 does it) is to borrow that one unit up
// front and mark the result sticky, which leaves the true result
// strictly between the borrowed value and the borrowed value plus one
// unit — exactly what the round/sticky bit convention expects.
func (z *Float) usub(x, y *Float) {
	ex := x.exp - int64(len(x.mant))*limb.WordBits
	ey := y.exp - int64(len(y.mant))*limb.WordBits

	var diff limb.Nat
	var sbit uint
	switch {
	case ex == ey:
		diff = limb.Sub(nil, x.mant, y.mant)
	case ex > ey:
		shifted, lost := shiftWithSticky(y.mant, uint(ex-ey))
		if lost != 0 {
			one := limb.SetWord(nil, 1)
			shifted = limb.Add(nil, shifted, one)
			sbit = 1
		}
		diff = limb.Sub(nil, x.mant, shifted)
	default: // ex < ey: y's lowest bit sits above x's, so y shifts left exactly
		diff = limb.Sub(nil, x.mant, limb.Shl(nil, y.mant, uint(ey-ex)))
	}

	if diff.IsZero() {
		if sbit == 0 {
			// Exact cancellation: IEEE 754 calls this +0 except under
			// round-toward-negative, where it's -0.
			z.mant = diff[:0]
			z.exp = expZero
			z.neg = z.mode == ToNegativeInf
			z.acc = Exact
			return
		}
		// The borrowed unit consumed the whole difference: the true
		// result lies strictly between 0 and one unit at this scale.
		// Represent it as that smallest nonzero magnitude and let
		// round() decide whether it rounds back down to zero.
		diff = limb.SetWord(diff, 1)
	}

	shift := normalizeShift(diff)
	if shift > 0 {
		diff = limb.Shl(diff, diff, shift)
	}
	z.mant = diff
	z.exp = ex + fnormExp(diff, shift)
	z.round(sbit)
}

// fnormExp computes the final binade exponent (in the mantissa.0
// coordinate system used by uadd) for a sum that has already been
// left-shifted by `shift` bits to renormalize it.
func fnormExp(sum limb.Nat, shift uint) int64 {
	return int64(len(sum))*limb.WordBits - int64(shift)
}

// normalizeShift returns how many high-order zero bits x carries above
// its highest set bit, i.e. how far x must be shifted left so the msb
// of its top word becomes set (uadd calls this after an addition that
// may have carried out of the top word, growing x by one word whose
// only set bit sits at its bottom).
func normalizeShift(x limb.Nat) uint {
	bl := x.BitLen()
	total := len(x) * limb.WordBits
	if bl == 0 {
		return 0
	}
	return uint(total - bl)
}

// shiftWithSticky right-shifts x by s bits and returns the shifted value
// together with the OR of all bits shifted out (the sticky bit).
func shiftWithSticky(x limb.Nat, s uint) (limb.Nat, uint) {
	if s == 0 {
		return limb.Set(nil, x), 0
	}
	if uint(x.BitLen()) <= s {
		sticky := uint(0)
		if !x.IsZero() {
			sticky = 1
		}
		return nil, sticky
	}
	sbit := x.Sticky(s)
	return limb.Shr(nil, x, s), sbit
}

// Add sets z to the rounded sum x+y and returns z's accuracy. If z's
// precision is 0 it is set to max(x.Prec(), y.Prec()) first, matching
// the "largest operand precision" default of §4.1.
func (z *Float) Add(x, y *Float) Accuracy {
	if z.prec == 0 {
		z.SetPrec(umax(x.Prec(), y.Prec()))
	}
	if x.IsNaN() || y.IsNaN() {
		z.SetNaN()
		return Exact
	}
	if x.IsInf(0) || y.IsInf(0) {
		return z.addInf(x, y)
	}
	if x.IsZero() && y.IsZero() {
		return z.addZeros(x, y)
	}
	if x.IsZero() {
		return z.Round(y, uint(z.prec), z.mode)
	}
	if y.IsZero() {
		return z.Round(x, uint(z.prec), z.mode)
	}

	// z.neg is set before the core runs because round() reads it.
	neg := x.neg
	if x.neg == y.neg {
		z.neg = neg
		z.uadd(x, y)
	} else if x.ucmp(y) >= 0 {
		z.neg = neg
		z.usub(x, y)
	} else {
		neg = !neg
		z.neg = neg
		z.usub(y, x)
	}
	if !z.IsZero() {
		z.neg = neg
	}
	acc := z.acc
	return CheckRange(activeRange(), z, acc)
}

// Sub sets z to the rounded difference x-y and returns z's accuracy.
func (z *Float) Sub(x, y *Float) Accuracy {
	negY := new(Float).Init(negPrec(y))
	negY.Neg(y)
	return z.Add(x, negY)
}

// negPrec picks a precision wide enough to hold y exactly, for the
// scratch value Sub negates y into.
func negPrec(y *Float) uint {
	if p := y.Prec(); p != 0 {
		return p
	}
	return DefaultPrecision()
}

func (z *Float) addInf(x, y *Float) Accuracy {
	xInf, yInf := x.IsInf(0), y.IsInf(0)
	switch {
	case xInf && yInf:
		if x.neg != y.neg {
			z.SetNaN()
			return Exact
		}
		z.SetInf(sign1(x.neg))
		return Exact
	case xInf:
		z.SetInf(sign1(x.neg))
		return Exact
	default:
		z.SetInf(sign1(y.neg))
		return Exact
	}
}

func (z *Float) addZeros(x, y *Float) Accuracy {
	if x.neg == y.neg {
		z.SetZero(sign1(x.neg))
		return Exact
	}
	// mixed signs: +0 unless rounding toward -Inf
	if z.mode == ToNegativeInf {
		z.SetZero(-1)
	} else {
		z.SetZero(1)
	}
	return Exact
}

func umax(a, b uint) uint {
	if a > b {
		return a
	}
	return b
}
