// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements multi-precision binary floating-point numbers,
// after the fashion of the GNU MPFR library (http://www.mpfr.org/):
// every operand carries its own precision and rounding mode, and every
// rounding-producing operation reports how the returned value relates to
// the exact mathematical result.

package bigfloat

import (
	"fmt"

	"github.com/BrianGladman/mpfloat/internal/limb"
)

// PrecMin and PrecMax bound the precision a Float may be created with.
// PrecMin is 2 because the nearest-even tie rule needs at least a round
// bit and a sticky bit below a single retained mantissa bit to be
// meaningful, and a single mantissa bit can't express a useful tie.
const (
	PrecMin = 2
	PrecMax = 1 << 28 // keeps limb counts well inside int range
)

// exponent sentinels for the three singular classes. Regular exponents
// always satisfy EminMin <= e <= EmaxMax, leaving room below/above for
// these markers and for emin-1/emax+1 edge arithmetic without overflow.
const minExpSentinel = -(1 << 62)

const (
	expZero = minExpSentinel + iota
	expInf
	expNaN
)

// A Float represents a multi-precision binary floating-point number
//
//	sign * mant * 2**(exp - prec)
//
// with mant a prec-bit integer normalized so its top bit is 1
// (2**(prec-1) <= mant < 2**prec), stored little-endian in Word limbs.
// Zero, infinities, and NaN are singular values: their mant is empty and
// exp carries one of the sentinel values above; sign remains meaningful
// for zero and infinity.
//
// The zero value of Float has precision 0 and holds no valid value (its
// exponent is none of the sentinels, so it is not NaN either) — not ready to use
// until Init or one of the Set* methods gives it a precision, mirroring
// the explicit init/clear lifecycle of §4.1.
type Float struct {
	neg  bool
	mant limb.Nat
	exp  int64
	prec uint32
	mode RoundingMode
	acc  Accuracy
}

// RoundingMode selects how a Float result is rounded to its destination
// precision. Rounding can change the represented value; Accuracy records
// the direction of that change.
type RoundingMode uint8

// The four rounding modes named in §6.1.
const (
	ToNearestEven RoundingMode = iota // IEEE roundTiesToEven
	ToZero                            // IEEE roundTowardZero
	ToPositiveInf                     // IEEE roundTowardPositive
	ToNegativeInf                     // IEEE roundTowardNegative
)

func (mode RoundingMode) String() string {
	switch mode {
	case ToNearestEven:
		return "ToNearestEven"
	case ToZero:
		return "ToZero"
	case ToPositiveInf:
		return "ToPositiveInf"
	case ToNegativeInf:
		return "ToNegativeInf"
	}
	return "RoundingMode(?)"
}

// Accuracy is the ternary indicator of §3.4: the sign of
// (returned value - exact value).
type Accuracy int8

const (
	Below Accuracy = -1 // returned value < exact value
	Exact Accuracy = 0  // returned value == exact value
	Above Accuracy = +1 // returned value > exact value
)

func (a Accuracy) String() string {
	switch {
	case a < 0:
		return "below"
	case a > 0:
		return "above"
	default:
		return "exact"
	}
}

// Init allocates z's mantissa for precision prec and sets z to NaN, as
// mpfr_init2 does. prec must be within [PrecMin, PrecMax].
func (z *Float) Init(prec uint) *Float {
	checkPrec(prec)
	z.prec = uint32(prec)
	z.mode = ToNearestEven
	z.acc = Exact
	z.neg = false
	z.mant = limb.Make(z.mant[:0], 0, limbCount(prec))
	z.exp = expNaN
	return z
}

// Clear releases z's mantissa storage and leaves z a NaN of precision 0.
// z must not be used again without
// a subsequent Init or Set* call; this mirrors mpfr_clear's lifecycle
// contract from §4.1, adapted to Go's garbage collector (there is no
// explicit free, only the release of the reference).
func (z *Float) Clear() {
	z.mant = nil
	z.exp = expNaN
	z.prec = 0
}

func checkPrec(prec uint) {
	if prec < PrecMin || prec > PrecMax {
		panic(fmt.Sprintf("bigfloat: precision %d out of range [%d, %d]", prec, PrecMin, PrecMax))
	}
}

func limbCount(prec uint) int {
	return int((prec + limb.WordBits - 1) / limb.WordBits)
}

// NewFloat returns a new Float with the given precision and rounding
// mode, initialized to NaN.
func NewFloat(prec uint, mode RoundingMode) *Float {
	z := new(Float)
	z.Init(prec)
	z.mode = mode
	return z
}

// SetPrec changes z's precision to prec. Per §4.1 this is a destructive
// operation: like MPFR's mpfr_set_prec (which this mirrors) it does not
// attempt to preserve or re-round the old value — z becomes NaN, and the
// caller must Set or compute a new value into z. Use Round to change
// precision while preserving (rounded) value.
func (z *Float) SetPrec(prec uint) *Float {
	checkPrec(prec)
	if n := limbCount(prec); n > cap(z.mant) {
		z.mant = limb.Make(nil, 0, n)
	} else {
		z.mant = z.mant[:0]
	}
	z.prec = uint32(prec)
	z.exp = expNaN
	z.neg = false
	z.acc = Exact
	return z
}

// Prec returns z's precision in bits.
func (x *Float) Prec() uint { return uint(x.prec) }

// SetMode sets z's rounding mode and returns z.
func (z *Float) SetMode(mode RoundingMode) *Float {
	z.mode = mode
	return z
}

// Mode returns x's rounding mode.
func (x *Float) Mode() RoundingMode { return x.mode }

// Acc returns the accuracy of x as set by the most recent
// rounding-producing operation applied to x (the ternary indicator).
func (x *Float) Acc() Accuracy { return x.acc }

// Signbit reports whether x is negative or negative zero.
func (x *Float) Signbit() bool { return x.neg }

// IsZero reports whether x is ±0.
func (x *Float) IsZero() bool { return x.exp == expZero }

// IsInf reports whether x is an infinity, according to sign: sign > 0
// tests for +Inf, sign < 0 for -Inf, sign == 0 for either.
func (x *Float) IsInf(sign int) bool {
	return x.exp == expInf && (sign == 0 || x.neg == (sign < 0))
}

// IsNaN reports whether x is NaN.
func (x *Float) IsNaN() bool { return x.exp == expNaN }

// IsRegular reports whether x is a finite, non-NaN value (possibly zero).
func (x *Float) IsRegular() bool { return !x.IsNaN() && !x.IsInf(0) }

// SetInf sets z to +Inf (sign >= 0) or -Inf (sign < 0), with z's
// existing precision, and returns z.
func (z *Float) SetInf(sign int) *Float {
	z.mant = z.mant[:0]
	z.exp = expInf
	z.neg = sign < 0
	z.acc = Exact
	return z
}

// SetNaN sets z to NaN and returns z. The NAN flag is set on the active
// Range (see range.go).
func (z *Float) SetNaN() *Float {
	z.mant = z.mant[:0]
	z.exp = expNaN
	z.neg = false
	z.acc = Exact
	activeFlags().set(FlagNaN)
	return z
}

// SetZero sets z to +0 (sign >= 0) or -0 (sign < 0) and returns z.
func (z *Float) SetZero(sign int) *Float {
	z.mant = z.mant[:0]
	z.exp = expZero
	z.neg = sign < 0
	z.acc = Exact
	return z
}

// Sign returns -1, 0, +1 for x < 0, x == 0 (either signed zero), x > 0.
// NaN reports 0 and sets ERANGE, per §4.5.
func (x *Float) Sign() int {
	if x.IsNaN() {
		activeFlags().set(FlagErange)
		return 0
	}
	if x.IsZero() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Set rounds y into z at z's precision under z's rounding mode and
// returns z's ternary accuracy. Aliasing (z == y) is safe: Set reads
// everything it needs from y before writing z — the defense every
// operation in this package applies per §3.3.
func (z *Float) Set(y *Float) Accuracy {
	neg := y.neg
	switch y.exp {
	case expNaN:
		z.SetNaN()
		return Exact
	case expInf:
		z.SetInf(sign1(neg))
		return Exact
	case expZero:
		z.SetZero(sign1(neg))
		return Exact
	}
	mant := y.mant
	exp := y.exp
	if z != y {
		z.mant = limb.Set(z.mant, mant)
	} else {
		z.mant = mant
	}
	z.exp = exp
	z.neg = neg
	z.acc = Exact
	z.round(0)
	return z.acc
}

// Copy is an alias for Set, named to match the §4.1 vocabulary ("set(x,
// y, rnd)"); it returns z for chaining.
func (z *Float) Copy(y *Float) *Float {
	z.Set(y)
	return z
}

// Swap exchanges the values of z and y, including precision and mode.
func (z *Float) Swap(y *Float) {
	*z, *y = *y, *z
}

func sign1(neg bool) int {
	if neg {
		return -1
	}
	return 1
}

// Neg sets z to -x (rounded to z's precision) and returns z's accuracy.
// NegInvolution (§8.1 P-neg-involution): Neg(Neg(x)) reproduces x
// bit-for-bit because negation only flips the sign field, never touching
// the mantissa or exponent.
func (z *Float) Neg(x *Float) Accuracy {
	acc := z.Set(x)
	if !z.IsNaN() {
		z.neg = !z.neg
		if acc != Exact {
			acc = -acc
		}
	}
	z.acc = acc
	return acc
}

// Abs sets z to |x| (rounded to z's precision) and returns z's accuracy.
func (z *Float) Abs(x *Float) Accuracy {
	acc := z.Set(x)
	z.neg = false
	z.acc = acc
	return acc
}

// SetSignbit sets z to x with sign bit forced to neg, rounded to z's
// precision, and returns z's accuracy. This is setsign(z,x,s,rnd) of §6.3.
func (z *Float) SetSignbit(x *Float, neg bool) Accuracy {
	acc := z.Set(x)
	z.neg = neg
	z.acc = acc
	return acc
}
