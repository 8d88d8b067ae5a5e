// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements division, the other half of §4.7 alongside the
// limb-level long division core in internal/limb.

package bigfloat

import "github.com/BrianGladman/mpfloat/internal/limb"

// uquo sets z to |x|/|y|, ignoring signs; x and y must both be regular
// and non-zero.
//
// Division rarely terminates, so the only sticky information available
// is "was the remainder zero". To get a usable round bit as well as a
// sticky bit, the dividend is padded with extra low-order words before
// the limb division runs, wide enough to produce z.prec+2 quotient bits
// (a guard bit and a round bit beyond what's kept) regardless of how the
// leading bits of x and y happen to align.
func (z *Float) uquo(x, y *Float) {
	need := uint(z.prec) + 2
	xBits := uint(x.mant.BitLen())
	yBits := uint(y.mant.BitLen())

	// Quotient bit length of two normalized values lies in
	// {yBits-... , ...}; shifting the dividend left by `pad` bits before
	// dividing produces roughly xBits+pad-yBits quotient bits. Solve for
	// a pad that comfortably clears `need` bits even in the
	// pessimistic (x < y) alignment case.
	pad := int64(need) + int64(yBits) - int64(xBits) + int64(limb.WordBits)
	if pad < 0 {
		pad = 0
	}

	u := limb.Shl(nil, x.mant, uint(pad))
	q, r := limb.DivMod(nil, u, y.mant)

	// Any remainder means the true quotient has more bits below this
	// point; that's the only sticky information long division gives up.
	sbit := uint(0)
	if !r.IsZero() {
		sbit = 1
	}

	// q may carry leading zero bits (the pad estimate above is
	// deliberately generous); normalizing left costs nothing extra since
	// no data is discarded, unlike the right-shifts elsewhere in this
	// package that trim real bits away.
	total := len(q) * limb.WordBits
	shift := uint(total - q.BitLen())
	if shift > 0 {
		q = limb.Shl(q, q, shift)
	}

	exBase := x.exp - int64(len(x.mant))*limb.WordBits
	eyBase := y.exp - int64(len(y.mant))*limb.WordBits
	z.mant = q
	z.exp = exBase - eyBase - pad + int64(len(q))*limb.WordBits - int64(shift)
	z.round(sbit)
}

// Div sets z to the rounded quotient x/y and returns z's accuracy.
func (z *Float) Div(x, y *Float) Accuracy {
	if z.prec == 0 {
		z.SetPrec(umax(x.Prec(), y.Prec()))
	}
	if x.IsNaN() || y.IsNaN() {
		z.SetNaN()
		return Exact
	}
	neg := x.neg != y.neg
	xInf, yInf := x.IsInf(0), y.IsInf(0)
	xZero, yZero := x.IsZero(), y.IsZero()
	switch {
	case (xInf && yInf) || (xZero && yZero):
		z.SetNaN()
		return Exact
	case xInf:
		z.SetInf(sign1(neg))
		return Exact
	case yInf:
		z.SetZero(sign1(neg))
		return Exact
	case yZero:
		// division by zero, finite non-zero numerator: signed infinity,
		// matching IEEE 754's handling of x/0.
		z.SetInf(sign1(neg))
		return Exact
	case xZero:
		z.SetZero(sign1(neg))
		return Exact
	}

	z.neg = neg // before uquo: round() reads the sign
	z.uquo(x, y)
	return CheckRange(activeRange(), z, z.acc)
}

// Quo is an alias for Div, matching the §6.3 naming alongside Mul.
func (z *Float) Quo(x, y *Float) Accuracy { return z.Div(x, y) }
