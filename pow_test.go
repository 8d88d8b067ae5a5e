// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"math"
	"testing"
)

func TestPowIntBasic(t *testing.T) {
	for _, tc := range []struct {
		x    float64
		n    int64
		want float64
	}{
		{2, 10, 1024},
		{2, -1, 0.5},
		{3, 0, 1},
		{-2, 3, -8},
		{-2, 2, 4},
		{1.5, 5, math.Pow(1.5, 5)},
	} {
		z := new(Float).Init(64)
		z.PowInt(fromF64(64, tc.x), tc.n)
		if !closeEnough(t, z, tc.want, 1e-13) {
			got, _ := z.Float64()
			t.Errorf("PowInt(%v,%d) = %v, want %v", tc.x, tc.n, got, tc.want)
		}
	}
}

func TestPowIntExactPowerOfTwo(t *testing.T) {
	z := new(Float).Init(64)
	z.PowInt(fromF64(64, 2), 100)
	got, _ := z.Float64()
	want := math.Pow(2, 100)
	if got != want {
		t.Errorf("PowInt(2,100) = %v, want exactly %v", got, want)
	}
}

func TestPowGeneral(t *testing.T) {
	for _, tc := range []struct{ x, y float64 }{
		{2, 0.5}, {4, 1.5}, {10, 2}, {2.5, 3.25},
	} {
		z := new(Float).Init(64)
		z.Pow(fromF64(64, tc.x), fromF64(64, tc.y))
		want := math.Pow(tc.x, tc.y)
		if !closeEnough(t, z, want, 1e-13) {
			got, _ := z.Float64()
			t.Errorf("Pow(%v,%v) = %v, want ~%v", tc.x, tc.y, got, want)
		}
	}
}

func TestPowIntegerExponentFastPath(t *testing.T) {
	z := new(Float).Init(64)
	z.Pow(fromF64(64, 3), fromF64(64, 4))
	if !closeEnough(t, z, 81, 1e-15) {
		got, _ := z.Float64()
		t.Errorf("Pow(3,4) = %v, want 81", got)
	}
}

func TestPowZeroExponent(t *testing.T) {
	z := new(Float).Init(53)
	z.Pow(fromF64(53, 5), fromF64(53, 0))
	got, _ := z.Float64()
	if got != 1 {
		t.Errorf("Pow(5,0) = %v, want 1", got)
	}
}

func TestPowNegativeBaseNonIntegerExponent(t *testing.T) {
	z := new(Float).Init(53)
	z.Pow(fromF64(53, -2), fromF64(53, 0.5))
	if !z.IsNaN() {
		t.Error("Pow(-2, 0.5) should be NaN")
	}
}
