// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the rounding kernel of §4.3: rounding a raw
// significand down to a target precision under one of the four modes,
// and the can-round predicate every Ziv loop (§4.8) polls.

package bigfloat

import (
	"fmt"

	"github.com/BrianGladman/mpfloat/internal/limb"
)

// round rounds z's mantissa (currently holding z.prec-or-more significant
// bits, normalized with the msb of the top word set) down to exactly
// z.prec bits in place, sets z.acc to the resulting ternary value, and
// adjusts z.exp by one if rounding carried out of the top bit. sbit
// summarizes any sticky information from bits already shifted out of
// z.mant before round was called (e.g. by an add/sub/div core); it must
// be 0 or 1.
//
// z must be a regular (non-singular), non-zero value on entry, with a
// normalized mantissa at least z.prec bits wide.
func (z *Float) round(sbit uint) {
	z.acc = Exact

	m := uint(len(z.mant))
	if m == 0 {
		return
	}

	bits := m * limb.WordBits
	prec := uint(z.prec)
	n := (prec + limb.WordBits - 1) / limb.WordBits

	if bits < prec {
		// mantissa too short for the target precision: zero-extend.
		if m < n {
			grown := limb.Make(z.mant, int(n), int(n))
			copy(grown[n-m:], z.mant[:m])
			limb.ZeroVW(grown[:n-m])
			z.mant = grown
		}
		return
	}
	if bits == prec {
		return
	}

	// bits > prec: inspect the round bit and the sticky bit below it.
	r := bits - prec - 1
	rbit := z.mant.Bit(r)
	if sbit == 0 {
		sbit = z.mant.Sticky(r)
	}
	if sbit > 1 {
		panic(fmt.Sprintf("bigfloat: invalid sticky bit %d", sbit))
	}

	// cut the mantissa down to n words, keeping the high-order ones.
	if m > n {
		copy(z.mant, z.mant[m-n:])
		z.mant = z.mant[:n]
	}

	t := n*limb.WordBits - prec // trailing bits to clear, 0 <= t < WordBits
	lsb := limb.Word(1) << t

	roundUp := directedRoundUp(z.mode, z.neg, rbit, sbit, z.mant[0]&lsb != 0)

	if roundUp {
		if limb.AddVW(z.mant, z.mant, lsb) != 0 {
			// carry propagated past the top bit: 1.111...1 -> 10.000...0
			limb.ShrVU(z.mant, z.mant, 1)
			z.mant[n-1] |= 1 << (limb.WordBits - 1)
			z.exp++
		}
		z.acc = Above
	} else if rbit|sbit != 0 {
		z.acc = Below
	}

	z.mant[0] &^= lsb - 1

	if z.neg {
		z.acc = -z.acc
	}
}

// directedRoundUp decides, given the bits retained in the round/sticky
// positions, whether to add one ulp to the truncated magnitude. neg is
// the sign of the value being rounded; destLSB is the current value of
// the destination's least-significant retained bit (needed for the
// banker's-rounding tie rule).
func directedRoundUp(mode RoundingMode, neg bool, rbit, sbit uint, destLSB bool) bool {
	switch mode {
	case ToZero:
		return false
	case ToPositiveInf:
		return !neg && (rbit|sbit != 0)
	case ToNegativeInf:
		return neg && (rbit|sbit != 0)
	case ToNearestEven:
		if rbit == 0 {
			return false
		}
		if sbit == 1 {
			return true
		}
		// exact tie: round to even
		return destLSB
	}
	panic("bigfloat: invalid rounding mode")
}

// Round sets z to x rounded to prec bits under mode and returns z's
// accuracy. If z aliases x, rounding happens in place.
func (z *Float) Round(x *Float, prec uint, mode RoundingMode) Accuracy {
	checkPrec(prec)
	z.prec = uint32(prec)
	z.mode = mode
	return z.Set(x)
}

// CanRound implements the auxiliary predicate of §4.3: given an
// approximation b of some exact value y with |b-y| <= 2**(E(b)-errBits),
// it reports whether rounding b to targetPrec bits under mode yields the
// same result as rounding y would — i.e. whether the whole error
// interval [b-ulp_err, b+ulp_err] rounds to a single targetPrec-bit
// value. errBits must exceed targetPrec (per §4.3, err > tp is
// necessary); practical Ziv loops keep a guard of a few extra bits
// beyond that minimum so this predicate usually succeeds on the first
// try.
//
// This implementation follows the interval definition directly: round
// both endpoints of the error interval and check they agree. That costs
// two extra roundings per Ziv iteration in exchange for not having to
// re-derive MPFR's bit-scanning shortcut by hand.
func CanRound(b *Float, errBits uint, mode RoundingMode, targetPrec uint) bool {
	if errBits <= targetPrec {
		return false
	}
	if !b.IsRegular() || b.IsZero() {
		return true
	}

	ulpErr := new(Float).Init(b.Prec() + 1)
	ulpErr.SetMode(ToZero)
	setPow2(ulpErr, int64(b.exp)-int64(errBits), false)

	lo := new(Float).Init(b.Prec() + 1)
	hi := new(Float).Init(b.Prec() + 1)
	lo.SetMode(ToZero)
	hi.SetMode(ToZero)
	absB := new(Float).Init(b.Prec())
	absB.Abs(b)
	lo.Sub(absB, ulpErr)
	hi.Add(absB, ulpErr)
	if lo.IsZero() || lo.Signbit() {
		return false // error interval crosses or touches zero: never safe here
	}

	rl, rh := new(Float).Init(targetPrec), new(Float).Init(targetPrec)
	rl.SetMode(mode)
	rh.SetMode(mode)
	rl.Round(lo, targetPrec, mode)
	rh.Round(hi, targetPrec, mode)
	return rl.exp == rh.exp && limb.Cmp(rl.mant, rh.mant) == 0
}

// setPow2 sets z to sign * 2**e at z's precision (exact, ternary Exact).
func setPow2(z *Float, e int64, neg bool) {
	z.mant = limb.Make(z.mant, limbCount(uint(z.prec)), limbCount(uint(z.prec)))
	limb.ZeroVW(z.mant)
	z.mant[len(z.mant)-1] = 1 << (limb.WordBits - 1)
	z.exp = e + 1
	z.neg = neg
	z.acc = Exact
}
