// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import "testing"

func TestZivLoopConverges(t *testing.T) {
	// A synthetic approximation whose error bound tightens as the
	// working precision grows; zivLoop must stop once CanRound accepts
	// it and return a regular value.
	calls := 0
	approx := func(work uint) (*Float, uint) {
		calls++
		z := new(Float).Init(work)
		z.SetFloat64(3.14159265358979)
		return z, work
	}
	result := zivLoop(40, ToNearestEven, approx)
	if !result.IsRegular() {
		t.Fatal("zivLoop returned a non-regular result for a regular approximation")
	}
	if calls == 0 {
		t.Fatal("approx was never called")
	}
}

func TestZivLoopSingularShortCircuits(t *testing.T) {
	calls := 0
	approx := func(work uint) (*Float, uint) {
		calls++
		z := new(Float).Init(work)
		z.SetNaN()
		return z, work
	}
	result := zivLoop(40, ToNearestEven, approx)
	if !result.IsNaN() {
		t.Fatal("zivLoop should pass through a singular NaN approximation")
	}
	if calls != 1 {
		t.Fatalf("zivLoop called approx %d times for a singular result, want 1", calls)
	}
}

func TestZivIteratorAdvances(t *testing.T) {
	it := NewZivIterator(100)
	first := it.WorkingPrec()
	if first != 108 {
		t.Fatalf("initial WorkingPrec() = %d, want 108 (target+guard)", first)
	}
	it.Advance()
	second := it.WorkingPrec()
	if second <= first {
		t.Fatalf("Advance() did not grow working precision: %d -> %d", first, second)
	}
}
