// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import "testing"

func TestMulBasic(t *testing.T) {
	for _, tc := range []struct{ a, b, want float64 }{
		{2, 3, 6},
		{-2, 3, -6},
		{-2, -3, 6},
		{0.5, 0.5, 0.25},
		{1e150, 1e150, 1e300},
	} {
		z := new(Float).Init(64)
		z.Mul(fromF64(64, tc.a), fromF64(64, tc.b))
		if !closeEnough(t, z, tc.want, 1e-12) {
			got, _ := z.Float64()
			t.Errorf("Mul(%v,%v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestMulZeroAndInf(t *testing.T) {
	zero := new(Float).Init(53)
	zero.SetZero(0)
	inf := new(Float).Init(53)
	inf.SetInf(1)

	z := new(Float).Init(53)
	z.Mul(zero, inf)
	if !z.IsNaN() {
		t.Error("0 * Inf should be NaN")
	}
	z.Mul(inf, fromF64(53, -1))
	if !z.IsInf(-1) {
		t.Error("Inf * -1 should be -Inf")
	}
}

func TestMulCommutative(t *testing.T) {
	seed := uint64(2463534242)
	next := func() float64 {
		seed ^= seed << 13
		seed ^= seed >> 17
		seed ^= seed << 5
		return float64(int64(seed)%10000) / 7
	}
	for i := 0; i < 50; i++ {
		a, b := next(), next()
		z1 := new(Float).Init(80)
		z2 := new(Float).Init(80)
		z1.Mul(fromF64(80, a), fromF64(80, b))
		z2.Mul(fromF64(80, b), fromF64(80, a))
		if Cmp(z1, z2) != 0 {
			t.Fatalf("Mul not commutative for %v,%v", a, b)
		}
	}
}

func TestFMA(t *testing.T) {
	// FMA(x,y,u) = x*y+u, computed with a single rounding, so it should
	// be at least as accurate as the separate Mul then Add.
	x := fromF64(53, 1.0000001)
	y := fromF64(53, 1.0000001)
	u := fromF64(53, -1.0)
	z := new(Float).Init(53)
	z.FMA(x, y, u)
	want := 1.0000001*1.0000001 - 1.0
	if !closeEnough(t, z, want, 1e-6) {
		got, _ := z.Float64()
		t.Errorf("FMA = %v, want ~%v", got, want)
	}
}
