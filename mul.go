// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements multiplication and fused multiply-add, §6.3's
// minimum operation list beyond the four arithmetic primitives.

package bigfloat

import "github.com/BrianGladman/mpfloat/internal/limb"

// umul sets z to |x|*|y|, ignoring signs; x and y must both be regular
// and non-zero.
func (z *Float) umul(x, y *Float) {
	product := limb.Mul(nil, x.mant, y.mant)

	// The product of two exact mantissas is itself exact; any leading
	// zero bits here are just padding from the schoolbook output width,
	// not lost precision, so normalizing left costs no sticky bit. All
	// rounding loss happens below in round(), which truncates the
	// low-order bits of this exact value down to z's precision.
	bits := len(product) * limb.WordBits
	bl := product.BitLen()
	shift := uint(bits - bl)
	if shift > 0 {
		product = limb.Shl(product, product, shift)
	}

	// value = x.mant * y.mant * 2**(x.exp - len(x.mant)*W + y.exp - len(y.mant)*W)
	exBase := x.exp - int64(len(x.mant))*limb.WordBits
	eyBase := y.exp - int64(len(y.mant))*limb.WordBits
	z.mant = product
	z.exp = exBase + eyBase + int64(len(product))*limb.WordBits - int64(shift)
	z.round(0)
}

// Mul sets z to the rounded product x*y and returns z's accuracy.
func (z *Float) Mul(x, y *Float) Accuracy {
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
	case (xInf && yZero) || (xZero && yInf):
		z.SetNaN()
		return Exact
	case xInf || yInf:
		z.SetInf(sign1(neg))
		return Exact
	case xZero || yZero:
		z.SetZero(sign1(neg))
		return Exact
	}

	z.neg = neg // before umul: round() reads the sign
	z.umul(x, y)
	return CheckRange(activeRange(), z, z.acc)
}

// FMA sets z to the rounded value (x*y)+u, computing the product at full
// precision before the single rounding to z's precision (§6.3's fma).
func (z *Float) FMA(x, y, u *Float) Accuracy {
	if x.IsNaN() || y.IsNaN() || u.IsNaN() {
		z.SetNaN()
		return Exact
	}
	product := new(Float).Init(fullProductPrec(x, y))
	product.SetMode(z.mode)
	product.Mul(x, y)
	return z.Add(product, u)
}

// fullProductPrec returns a precision wide enough to hold x*y exactly
// when both operands are regular and non-zero (the sum of their
// precisions, per the standard bound on exact product width); singular
// or zero operands fall back to a nominal minimum since Mul handles
// those cases without consulting product's precision.
func fullProductPrec(x, y *Float) uint {
	if !x.IsRegular() || !y.IsRegular() || x.IsZero() || y.IsZero() {
		return PrecMin
	}
	return x.Prec() + y.Prec()
}
