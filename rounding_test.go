// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import "testing"

func TestRoundDownPrecision(t *testing.T) {
	x := fromF64(64, 1.0/3.0)
	z := new(Float).Init(64)
	acc := z.Round(x, 8, ToNearestEven)
	if z.Prec() != 8 {
		t.Fatalf("Round did not change precision: %d", z.Prec())
	}
	if acc == Exact {
		t.Error("rounding 1/3 down to 8 bits should not be exact")
	}
}

func TestRoundExactWidening(t *testing.T) {
	x := fromF64(8, 1.5)
	z := new(Float).Init(8)
	acc := z.Round(x, 64, ToNearestEven)
	if acc != Exact {
		t.Errorf("widening precision should be exact, got %v", acc)
	}
	got, _ := z.Float64()
	if got != 1.5 {
		t.Errorf("widened value changed: got %v, want 1.5", got)
	}
}

func TestDirectedRoundUpModes(t *testing.T) {
	// Exact tie (rbit=1, sbit=0): ToNearestEven rounds to whichever
	// makes the destination LSB zero.
	if directedRoundUp(ToNearestEven, false, 1, 0, false) {
		t.Error("ToNearestEven tie should round down when destLSB already even")
	}
	if !directedRoundUp(ToNearestEven, false, 1, 0, true) {
		t.Error("ToNearestEven tie should round up to make destLSB even")
	}
	if directedRoundUp(ToZero, false, 1, 1, false) {
		t.Error("ToZero should never round up")
	}
	if !directedRoundUp(ToPositiveInf, false, 0, 1, false) {
		t.Error("ToPositiveInf should round a positive inexact value up")
	}
	if directedRoundUp(ToPositiveInf, true, 0, 1, false) {
		t.Error("ToPositiveInf should not round a negative value away from zero")
	}
	if !directedRoundUp(ToNegativeInf, true, 0, 1, false) {
		t.Error("ToNegativeInf should round a negative inexact value away from zero")
	}
}

func TestCanRoundRejectsTooFewErrBits(t *testing.T) {
	b := fromF64(64, 1.5)
	if CanRound(b, 40, ToNearestEven, 50) {
		t.Error("CanRound should reject errBits <= targetPrec")
	}
}

func TestCanRoundAcceptsFarFromBoundary(t *testing.T) {
	b := fromF64(64, 1.5)
	if !CanRound(b, 60, ToNearestEven, 4) {
		t.Error("CanRound should accept a tight, safely-interior approximation")
	}
}
