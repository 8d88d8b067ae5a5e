// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import "testing"

func TestDivBasic(t *testing.T) {
	for _, tc := range []struct{ a, b, want float64 }{
		{6, 3, 2},
		{1, 3, 1.0 / 3.0},
		{-6, 3, -2},
		{1, 4, 0.25},
	} {
		z := new(Float).Init(64)
		z.Div(fromF64(64, tc.a), fromF64(64, tc.b))
		if !closeEnough(t, z, tc.want, 1e-12) {
			got, _ := z.Float64()
			t.Errorf("Div(%v,%v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestDivByZero(t *testing.T) {
	one := fromF64(53, 1)
	negOne := fromF64(53, -1)
	zero := new(Float).Init(53)
	zero.SetZero(0)
	negZero := new(Float).Init(53)
	negZero.SetZero(-1)

	z := new(Float).Init(53)
	z.Div(one, zero)
	if !z.IsInf(1) {
		t.Error("1/+0 should be +Inf")
	}
	z.Div(negOne, zero)
	if !z.IsInf(-1) {
		t.Error("-1/+0 should be -Inf")
	}
	z.Div(one, negZero)
	if !z.IsInf(-1) {
		t.Error("1/-0 should be -Inf")
	}
	z.Div(zero, zero)
	if !z.IsNaN() {
		t.Error("0/0 should be NaN")
	}
}

func TestDivRoundTrip(t *testing.T) {
	x := fromF64(64, 7)
	y := fromF64(64, 11)
	q := new(Float).Init(64)
	q.Div(x, y)
	z := new(Float).Init(64)
	z.Mul(q, y)
	if !closeEnough(t, z, 7, 1e-15) {
		got, _ := z.Float64()
		t.Errorf("(7/11)*11 = %v, want ~7", got)
	}
}

// TestDivMultiWordDivisor exercises divModKnuth: at precision above a
// single Word's width the divisor's mantissa spans more than one limb,
// routing Div/Quo through the multiply-subtract step of Algorithm D
// instead of the single-word fast path divModW uses.
func TestDivMultiWordDivisor(t *testing.T) {
	const prec = 200 // comfortably more than one 32- or 64-bit Word wide

	for _, tc := range []struct{ a, b, want float64 }{
		{7, 3, 7.0 / 3.0},
		{1, 3, 1.0 / 3.0},
		{-22, 7, -22.0 / 7.0},
	} {
		x := fromF64(prec, tc.a)
		y := fromF64(prec, tc.b)
		q := new(Float).Init(prec)
		q.Div(x, y)
		if !closeEnough(t, q, tc.want, 1e-13) {
			got, _ := q.Float64()
			t.Errorf("Div(%v,%v) at prec %d = %v, want ~%v", tc.a, tc.b, prec, got, tc.want)
		}

		z := new(Float).Init(prec)
		z.Mul(q, y)
		if !closeEnough(t, z, tc.a, 1e-13) {
			got, _ := z.Float64()
			t.Errorf("(%v/%v)*%v at prec %d = %v, want ~%v", tc.a, tc.b, tc.b, prec, got, tc.a)
		}
	}
}
