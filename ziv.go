// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the Ziv re-iteration loop of §4.8: the shared
// precision-doubling controller every transcendental in this package
// drives to reach a correctly rounded result.

package bigfloat

// zivLoop runs the precision-doubling pattern shared by every
// transcendental function: at increasing working precision, compute an
// approximation of the exact result and its error bound in ulps of the
// approximation, then ask CanRound whether that's enough to determine
// the correctly rounded value at targetPrec. approx must return a
// *Float holding the approximation and an errBits such that the true
// value lies within 2**(E(result)-errBits) of it.
//
// This replaces the teacher's macro-driven Ziv loop (§9.1) with a
// small loop plus a closure, Go's natural substitute for a
// re-iterate-on-failure control structure.
func zivLoop(targetPrec uint, mode RoundingMode, approx func(workPrec uint) (result *Float, errBits uint)) *Float {
	guard := uint(8)
	work := targetPrec + guard

	for {
		b, errBits := approx(work)
		if b.IsRegular() && !b.IsZero() && CanRound(b, errBits, mode, targetPrec) {
			return b
		}
		if !b.IsRegular() || b.IsZero() {
			// singular result: no amount of extra precision changes a
			// categorical answer (NaN, Inf, exact 0).
			return b
		}
		work += targetPrec/2 + guard
	}
}

// ZivIterator is a reusable controller for callers that want to drive
// the loop by hand (e.g. to share state across related computations,
// as sin_cos does for its single reduced argument). Working precision
// starts at target+guard and grows by roughly 50% of target plus guard
// on every failed attempt, matching zivLoop's step policy.
type ZivIterator struct {
	target uint
	guard  uint
	work   uint
	first  bool
}

// NewZivIterator returns an iterator targeting prec bits of final
// result.
func NewZivIterator(prec uint) *ZivIterator {
	const guard = 8
	return &ZivIterator{target: prec, guard: guard, work: prec + guard, first: true}
}

// WorkingPrec returns the precision to compute the next approximation
// at.
func (it *ZivIterator) WorkingPrec() uint { return it.work }

// Advance grows the working precision after a failed can-round check.
func (it *ZivIterator) Advance() {
	it.work += it.target/2 + it.guard
}
