// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import "testing"

func TestCmpBasic(t *testing.T) {
	for _, tc := range []struct {
		a, b float64
		want int
	}{
		{1, 2, -1},
		{2, 1, 1},
		{1, 1, 0},
		{-1, 1, -1},
		{0, 0, 0},
	} {
		got := Cmp(fromF64(53, tc.a), fromF64(53, tc.b))
		if got != tc.want {
			t.Errorf("Cmp(%v,%v) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestCmpSignedZero(t *testing.T) {
	pos := new(Float).Init(53)
	pos.SetZero(0)
	neg := new(Float).Init(53)
	neg.SetZero(-1)
	if Cmp(pos, neg) != 0 {
		t.Error("+0 and -0 should compare equal")
	}
}

func TestCmpInf(t *testing.T) {
	inf := new(Float).Init(53)
	inf.SetInf(1)
	ninf := new(Float).Init(53)
	ninf.SetInf(-1)
	one := fromF64(53, 1)

	if Cmp(ninf, one) >= 0 {
		t.Error("-Inf should compare below 1")
	}
	if Cmp(inf, one) <= 0 {
		t.Error("+Inf should compare above 1")
	}
	if Cmp(inf, inf) != 0 {
		t.Error("+Inf should equal +Inf")
	}
}

func TestCmpNaN(t *testing.T) {
	nan := new(Float).Init(53)
	nan.SetNaN()
	one := fromF64(53, 1)
	if Cmp(nan, one) != 0 {
		t.Error("Cmp with NaN should report 0")
	}
	if Equal(nan, nan) {
		t.Error("NaN should never equal itself")
	}
}

func TestCmpAbs(t *testing.T) {
	if CmpAbs(fromF64(53, -5), fromF64(53, 3)) <= 0 {
		t.Error("CmpAbs(-5,3) should be positive (|-5|>|3|)")
	}
	if CmpAbs(fromF64(53, -3), fromF64(53, 3)) != 0 {
		t.Error("CmpAbs(-3,3) should be 0")
	}
}
