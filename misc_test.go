// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"math"
	"testing"
)

func TestMinMaxBasic(t *testing.T) {
	z := new(Float).Init(53)
	z.Min(fromF64(53, 3), fromF64(53, 5))
	if f, _ := z.Float64(); f != 3 {
		t.Errorf("Min(3,5) = %v, want 3", f)
	}
	z.Max(fromF64(53, 3), fromF64(53, 5))
	if f, _ := z.Float64(); f != 5 {
		t.Errorf("Max(3,5) = %v, want 5", f)
	}
}

func TestMinMaxSignedZero(t *testing.T) {
	pos := new(Float).Init(53)
	pos.SetZero(0)
	neg := new(Float).Init(53)
	neg.SetZero(-1)

	z := new(Float).Init(53)
	z.Min(pos, neg)
	if !z.Signbit() {
		t.Error("Min(+0,-0) should be -0")
	}
	z.Max(pos, neg)
	if z.Signbit() {
		t.Error("Max(+0,-0) should be +0")
	}
}

func TestMinMaxNaN(t *testing.T) {
	nan := new(Float).Init(53)
	nan.SetNaN()
	five := fromF64(53, 5)

	z := new(Float).Init(53)
	z.Min(nan, five)
	if f, _ := z.Float64(); f != 5 {
		t.Error("Min(NaN,5) should return the non-NaN operand")
	}
	z.Max(five, nan)
	if f, _ := z.Float64(); f != 5 {
		t.Error("Max(5,NaN) should return the non-NaN operand")
	}

	bothNaN := new(Float).Init(53)
	bothNaN.SetNaN()
	z.Min(nan, bothNaN)
	if !z.IsNaN() {
		t.Error("Min(NaN,NaN) should be NaN")
	}
}

func TestHypotBasic(t *testing.T) {
	for _, tc := range []struct{ x, y float64 }{
		{3, 4}, {5, 12}, {1, 1}, {1e200, 1e200}, {1e-200, 1e-200},
	} {
		z := new(Float).Init(64)
		Hypot(z, fromF64(64, tc.x), fromF64(64, tc.y))
		want := math.Hypot(tc.x, tc.y)
		if !closeEnough(t, z, want, 1e-13) {
			got, _ := z.Float64()
			t.Errorf("Hypot(%v,%v) = %v, want ~%v", tc.x, tc.y, got, want)
		}
	}
}

func TestHypotZeroOperand(t *testing.T) {
	z := new(Float).Init(53)
	Hypot(z, fromF64(53, 0), fromF64(53, -7))
	if f, _ := z.Float64(); f != 7 {
		t.Errorf("Hypot(0,-7) = %v, want 7", f)
	}
}

func TestHypotInfAndNaN(t *testing.T) {
	z := new(Float).Init(53)
	inf := fromF64(53, math.Inf(1))
	nan := new(Float).Init(53)
	nan.SetNaN()
	Hypot(z, inf, fromF64(53, 3))
	if !z.IsInf(1) {
		t.Error("Hypot(Inf,3) should be +Inf")
	}
	Hypot(z, nan, fromF64(53, 3))
	if !z.IsNaN() {
		t.Error("Hypot(NaN,3) should be NaN")
	}
}

func TestCbrtBasic(t *testing.T) {
	for _, v := range []float64{0, 1, 8, 27, -8, 1e30, 1e-30, 2} {
		z := new(Float).Init(64)
		z.Cbrt(fromF64(64, v))
		want := math.Cbrt(v)
		if !closeEnough(t, z, want, 1e-14) {
			got, _ := z.Float64()
			t.Errorf("Cbrt(%v) = %v, want ~%v", v, got, want)
		}
	}
}

func TestCbrtSignPreserved(t *testing.T) {
	z := new(Float).Init(64)
	z.Cbrt(fromF64(64, -27))
	if !z.Signbit() {
		t.Error("Cbrt(-27) should be negative")
	}
	got, _ := z.Float64()
	if !closeEnough(t, z, -3, 1e-14) {
		t.Errorf("Cbrt(-27) = %v, want ~-3", got)
	}
}
