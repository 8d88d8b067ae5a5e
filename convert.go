// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements §4.11: conversion to/from machine integers and
// native binary64 floats, and the mantissa+exponent integer pair
// extraction used by conversion and by some transcendentals' argument
// reduction.

package bigfloat

import (
	"math"
	"math/bits"

	"github.com/BrianGladman/mpfloat/internal/limb"
)

// SetUint64 sets z to x, rounded to z's precision, and returns z's
// accuracy.
func (z *Float) SetUint64(x uint64) Accuracy {
	if x == 0 {
		z.SetZero(1)
		return Exact
	}
	bl := bits.Len64(x)
	z.mant = limb.Make(z.mant, limbCount(uint(bl)), limbCount(uint(bl)))
	fillFromUint64(z.mant, x, bl)
	z.exp = int64(bl)
	z.neg = false
	z.round(0)
	return z.acc
}

// SetInt64 sets z to x, rounded to z's precision, and returns z's
// accuracy.
func (z *Float) SetInt64(x int64) Accuracy {
	neg := x < 0
	var ux uint64
	if neg {
		ux = uint64(-(x + 1)) + 1 // avoid overflow on math.MinInt64
	} else {
		ux = uint64(x)
	}
	acc := z.SetUint64(ux)
	if neg && !z.IsZero() {
		z.neg = true
		acc = -acc
	}
	z.acc = acc
	return acc
}

// fillFromUint64 packs x (a bl-bit value, bl <= 64) into z, little-endian,
// then shifts left so the value's top bit lands at the top bit of z's
// most significant limb. len(z) must be at least ceil(bl/WordBits) and
// wide enough to hold 64 raw bits before the shift.
func fillFromUint64(z limb.Nat, x uint64, bl int) {
	limb.ZeroVW(z)
	z[0] = limb.Word(x)
	if limb.WordBits == 32 && len(z) >= 2 {
		z[1] = limb.Word(x >> 32)
	}
	shift := uint(len(z))*limb.WordBits - uint(bl)
	if shift > 0 {
		limb.ShlVU(z, z, shift)
	}
}

// roundToInteger rounds x to the nearest representable integer under
// mode and returns its magnitude as a Nat together with x's accuracy.
// This is distinct from rounding x's precision down to some bit count
// (what Round does): here the target "precision" is x's own integer
// exponent, which Round's PrecMin floor can't express for |x| < 1, so
// the round/sticky bits are extracted from x.mant directly instead of
// going through the shared round kernel. ok is false if the rounded
// magnitude needs more than 64 bits.
func roundToInteger(x *Float, mode RoundingMode) (mag limb.Nat, acc Accuracy, ok bool) {
	if x.IsZero() {
		return nil, Exact, true
	}

	e := x.exp // bit length of the integer part of |x|
	total := uint(len(x.mant)) * limb.WordBits

	var rbit, sbit uint
	var shifted limb.Nat
	switch {
	case e <= 0:
		// |x| < 1: the entire mantissa lies below the integer point.
		// e < 0 means |x| < 0.5 (never an exact tie); e == 0 means
		// |x| is in [0.5, 1), so its top bit is the round bit.
		if e == 0 {
			rbit = 1
			sbit = x.mant.Sticky(total - 1)
		} else {
			rbit, sbit = 0, 1
		}
		shifted = limb.Nat{}
	case uint(e) > 64:
		return nil, 0, false
	case total > uint(e):
		r := total - uint(e) - 1
		rbit = x.mant.Bit(r)
		sbit = x.mant.Sticky(r)
		shifted = limb.Shr(nil, x.mant, total-uint(e))
	case total < uint(e):
		// x's exponent outruns its stored precision: the low integer
		// bits beyond the mantissa are genuine zeros, not truncated
		// fractional bits, so this is exact.
		shifted = limb.Shl(nil, x.mant, uint(e)-total)
	default:
		shifted = limb.Set(nil, x.mant)
	}

	destLSB := len(shifted) > 0 && shifted.Bit(0) != 0
	roundUp := directedRoundUp(mode, x.neg, rbit, sbit, destLSB)
	if roundUp {
		shifted = limb.Add(shifted, shifted, limb.SetWord(nil, 1))
	}

	acc = Exact
	switch {
	case roundUp:
		acc = Above
	case rbit|sbit != 0:
		acc = Below
	}
	if x.neg {
		acc = -acc
	}

	if uint(shifted.BitLen()) > 64 {
		return nil, 0, false
	}
	return shifted, acc, true
}

// Uint64 rounds x to an integer under rnd and returns it as a uint64.
// If x is negative (other than -0), NaN, +Inf, or the rounded value
// does not fit in [0, 2**64-1], ok is false and ERANGE is set.
func (x *Float) Uint64(rnd RoundingMode) (u uint64, acc Accuracy, ok bool) {
	if x.IsNaN() || x.IsInf(1) || (x.neg && !x.IsZero()) {
		activeFlags().set(FlagErange)
		return 0, Exact, false
	}
	mag, acc, ok := roundToInteger(x, rnd)
	if !ok {
		activeFlags().set(FlagErange)
		return 0, acc, false
	}
	return natToUint64(mag), acc, true
}

// Int64 rounds x to an integer under rnd and returns it as an int64.
func (x *Float) Int64(rnd RoundingMode) (n int64, acc Accuracy, ok bool) {
	if x.IsNaN() || x.IsInf(0) {
		activeFlags().set(FlagErange)
		return 0, Exact, false
	}
	mag, acc, ok := roundToInteger(x, rnd)
	limit := uint64(math.MaxInt64)
	if x.neg {
		limit++ // -math.MinInt64 fits in the negative range
	}
	if !ok || natToUint64(mag) > limit {
		activeFlags().set(FlagErange)
		return 0, acc, false
	}
	u := natToUint64(mag)
	if x.neg {
		return -int64(u), acc, true
	}
	return int64(u), acc, true
}

// natToUint64 converts a Nat known (by the caller) to fit in 64 bits to
// a uint64. Words beyond the first 64 bits, if any, must be zero.
func natToUint64(x limb.Nat) uint64 {
	var v uint64
	for i := len(x) - 1; i >= 0; i-- {
		v = v<<limb.WordBits | uint64(x[i])
	}
	return v
}

// high64 returns the top 64 bits of x's mantissa, left-justified
// (top bit of the returned value equals x's top mantissa bit).
func high64(x limb.Nat) uint64 {
	if len(x) == 0 {
		return 0
	}
	switch limb.WordBits {
	case 64:
		return uint64(x[len(x)-1])
	case 32:
		hi := uint64(x[len(x)-1]) << 32
		if len(x) >= 2 {
			hi |= uint64(x[len(x)-2])
		}
		return hi
	}
	panic("bigfloat: unsupported word size")
}

// SetFloat64 sets z to f, rounded to z's precision, and returns z's
// accuracy. NaN and ±Inf map to the corresponding singular values.
func (z *Float) SetFloat64(f float64) Accuracy {
	switch {
	case math.IsNaN(f):
		z.SetNaN()
		return Exact
	case math.IsInf(f, 1):
		z.SetInf(1)
		return Exact
	case math.IsInf(f, -1):
		z.SetInf(-1)
		return Exact
	case f == 0:
		sign := 1
		if math.Signbit(f) {
			sign = -1
		}
		z.SetZero(sign)
		return Exact
	}

	neg := math.Signbit(f)
	af := math.Abs(f)
	fbits := math.Float64bits(af)
	rawExp := int((fbits >> 52) & 0x7ff)
	frac := fbits & (1<<52 - 1)

	var mant uint64
	var exp int
	if rawExp == 0 {
		// subnormal: normalize by hand
		shift := bits.LeadingZeros64(frac) - 11
		mant = frac << uint(shift+11)
		exp = -1022 - shift
	} else {
		mant = (1 << 63) | (frac << 11)
		exp = rawExp - 1023
	}

	n := limbCount(53)
	m := limb.Make(nil, n, n)
	fillFromUint64(m, mant, 64)
	z.mant = m
	z.exp = int64(exp) + 1
	z.neg = neg
	z.round(0)
	return z.acc
}

// Float64 rounds x to the nearest binary64 value and returns it along
// with the accuracy of that conversion. Values too large become ±Inf; too small become
// ±0, consistent with native float64 overflow/underflow.
func (x *Float) Float64() (float64, Accuracy) {
	switch {
	case x.IsNaN():
		return math.NaN(), Exact
	case x.IsInf(1):
		return math.Inf(1), Exact
	case x.IsInf(-1):
		return math.Inf(-1), Exact
	case x.IsZero():
		if x.neg {
			return math.Copysign(0, -1), Exact
		}
		return 0, Exact
	}

	r := new(Float).Init(53)
	r.SetMode(ToNearestEven)
	acc := r.Round(x, 53, ToNearestEven)

	if r.exp > 1024 {
		if r.neg {
			return math.Inf(-1), Below
		}
		return math.Inf(1), Above
	}
	if r.exp < -1021-52 {
		if r.neg {
			return math.Copysign(0, -1), Above
		}
		return 0, Below
	}

	mant52 := high64(r.mant) >> 11 // top 53 bits, implicit leading 1 dropped below
	var fbits uint64
	if r.exp >= -1021 {
		fbits = (uint64(r.exp+1022) << 52) | (mant52 &^ (1 << 52))
	} else {
		// subnormal binary64
		shift := uint(-1021 - r.exp)
		fbits = mant52 >> shift
	}
	if r.neg {
		fbits |= 1 << 63
	}
	return math.Float64frombits(fbits), acc
}

// GetZExp returns z, an arbitrary-precision integer, and an exponent e
// such that x = z * 2**e, mirroring mpfr_get_z_exp. x must be regular
// and non-zero.
func GetZExp(x *Float) (z limb.Nat, e int64) {
	z = limb.Set(nil, x.mant)
	e = x.exp - int64(len(x.mant))*limb.WordBits
	return z, e
}

// SetInt sets z to the value of the big integer represented by mant
// (little-endian limbs, magnitude only) with the given sign, rounded to
// z's precision. This mirrors mpfr_set_z against this package's internal
// Nat representation rather than a full arbitrary-precision Int type,
// since §1 scopes general big-integer support out of this core.
func (z *Float) SetInt(mant limb.Nat, neg bool) Accuracy {
	n := mant.Norm()
	if len(n) == 0 {
		z.SetZero(1)
		return Exact
	}
	z.mant = limb.Set(z.mant, n)
	shift := normalizeShift(z.mant)
	if shift > 0 {
		z.mant = limb.Shl(z.mant, z.mant, shift)
	}
	z.exp = int64(len(z.mant))*limb.WordBits - int64(shift)
	z.neg = neg
	z.round(0)
	return z.acc
}
