// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the comparison operations of §4.5: a total order
// on magnitudes (ucmp) and on signed values (Cmp), including the
// singular classes.

package bigfloat

import "github.com/BrianGladman/mpfloat/internal/limb"

// ucmp compares |x| and |y|, both of which must be regular and non-zero,
// and returns -1, 0, +1.
func (x *Float) ucmp(y *Float) int {
	switch {
	case x.exp < y.exp:
		return -1
	case x.exp > y.exp:
		return 1
	}
	// Mantissas are left-justified, so compare from the top word down; a
	// shorter mantissa has implicit zero words below its last one.
	k := len(x.mant)
	if len(y.mant) < k {
		k = len(y.mant)
	}
	i, j := len(x.mant)-k, len(y.mant)-k
	if c := limb.CmpVV(x.mant[i:], y.mant[j:]); c != 0 {
		return c
	}
	if len(x.mant[:i].Norm()) > 0 {
		return 1
	}
	if len(y.mant[:j].Norm()) > 0 {
		return -1
	}
	return 0
}

// CmpAbs compares |x| and |y| and returns -1, 0, +1. NaN operands report
// 0 and set ERANGE.
func CmpAbs(x, y *Float) int {
	if x.IsNaN() || y.IsNaN() {
		activeFlags().set(FlagErange)
		return 0
	}
	xInf, yInf := x.IsInf(0), y.IsInf(0)
	switch {
	case xInf && yInf:
		return 0
	case xInf:
		return 1
	case yInf:
		return -1
	}
	xZero, yZero := x.IsZero(), y.IsZero()
	switch {
	case xZero && yZero:
		return 0
	case xZero:
		return -1
	case yZero:
		return 1
	}
	return x.ucmp(y)
}

// Cmp compares x and y and returns -1, 0, +1 for x<y, x==y, x>y. Signed
// zeros compare equal. NaN operands report 0 and set ERANGE (§4.5,
// P-cmp-total).
func Cmp(x, y *Float) int {
	if x.IsNaN() || y.IsNaN() {
		activeFlags().set(FlagErange)
		return 0
	}
	xInf, yInf := x.IsInf(0), y.IsInf(0)
	if xInf || yInf {
		xv, yv := infSortKey(x), infSortKey(y)
		switch {
		case xv < yv:
			return -1
		case xv > yv:
			return 1
		default:
			return 0
		}
	}
	xZero, yZero := x.IsZero(), y.IsZero()
	switch {
	case xZero && yZero:
		return 0
	case xZero:
		return -sign1(y.neg)
	case yZero:
		return sign1(x.neg)
	}
	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}
	c := x.ucmp(y)
	if x.neg {
		c = -c
	}
	return c
}

// infSortKey maps a value to a comparable key for the purpose of
// ordering alongside infinities: -Inf sorts below everything, +Inf above
// everything, regular finite values in the middle.
func infSortKey(x *Float) int {
	if x.IsInf(-1) {
		return -2
	}
	if x.IsInf(1) {
		return 2
	}
	if x.IsZero() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Equal reports whether x and y compare equal (NaN is never equal to
// anything, including itself).
func Equal(x, y *Float) bool {
	if x.IsNaN() || y.IsNaN() {
		return false
	}
	return Cmp(x, y) == 0
}
