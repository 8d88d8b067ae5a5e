// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the log half of §4.10's transcendental
// skeleton, on top of the naturalLog helper constants.go already
// built for Catalan's constant.

package bigfloat

import "github.com/BrianGladman/mpfloat/internal/limb"

// Log sets z to the correctly rounded natural logarithm of x and
// returns z's accuracy. log(NaN)=NaN, log of a negative value (other
// than -0, which the spec's Non-goals don't special-case away from
// IEEE 754's own -Inf) is NaN, log(+-0)=-Inf, log(+Inf)=+Inf,
// log(1)=+0 exactly, matching mpfr_log's table.
func (z *Float) Log(x *Float) Accuracy {
	switch {
	case x.IsNaN():
		z.SetNaN()
		return Exact
	case x.neg && !x.IsZero():
		z.SetNaN()
		return Exact
	case x.IsZero():
		z.SetInf(-1)
		return Exact
	case x.IsInf(1):
		z.SetInf(1)
		return Exact
	}

	if isExactlyOne(x) {
		z.SetZero(1)
		return Exact
	}

	if z.prec == 0 {
		z.SetPrec(x.Prec())
	}

	approx := zivLoop(uint(z.prec), z.mode, func(work uint) (*Float, uint) {
		return naturalLog(x, work), work
	})
	acc := z.Set(approx)
	return CheckRange(activeRange(), z, acc)
}

// isExactlyOne reports whether x's value is the exact integer 1.
func isExactlyOne(x *Float) bool {
	return !x.neg && x.exp == 1 && len(x.mant) > 0 &&
		x.mant.Bit(uint(len(x.mant))*limb.WordBits-1) == 1 &&
		x.mant.Sticky(uint(len(x.mant))*limb.WordBits-1) == 0
}
