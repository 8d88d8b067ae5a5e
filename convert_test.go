// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"math"
	"testing"
)

func TestFloat64RoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1, -1, 3.5, 1e300, 1e-300, math.Pi, -2.5e-10} {
		z := fromF64(53, v)
		got, _ := z.Float64()
		if got != v {
			t.Errorf("round trip of %v gave %v", v, got)
		}
	}
}

func TestFloat64Singular(t *testing.T) {
	z := new(Float).Init(53)
	z.SetNaN()
	if f, _ := z.Float64(); !math.IsNaN(f) {
		t.Error("NaN did not round-trip")
	}
	z.SetInf(1)
	if f, _ := z.Float64(); f != math.Inf(1) {
		t.Error("+Inf did not round-trip")
	}
	z.SetInf(-1)
	if f, _ := z.Float64(); f != math.Inf(-1) {
		t.Error("-Inf did not round-trip")
	}
	z.SetZero(-1)
	if f, _ := z.Float64(); !math.Signbit(f) || f != 0 {
		t.Error("-0 did not round-trip with its sign")
	}
}

func TestSetUint64Int64(t *testing.T) {
	z := new(Float).Init(64)
	z.SetUint64(12345)
	u, acc, ok := z.Uint64(ToNearestEven)
	if !ok || acc != Exact || u != 12345 {
		t.Errorf("SetUint64/Uint64 round trip = %d,%v,%v", u, acc, ok)
	}

	z.SetInt64(-9876)
	n, acc, ok := z.Int64(ToNearestEven)
	if !ok || acc != Exact || n != -9876 {
		t.Errorf("SetInt64/Int64 round trip = %d,%v,%v", n, acc, ok)
	}
}

func TestUint64NegativeRejected(t *testing.T) {
	z := fromF64(53, -5)
	_, _, ok := z.Uint64(ToNearestEven)
	if ok {
		t.Error("Uint64 of a negative value should fail")
	}
}

func TestInt64Overflow(t *testing.T) {
	z := new(Float).Init(128)
	z.SetFloat64(1e30)
	_, _, ok := z.Int64(ToNearestEven)
	if ok {
		t.Error("Int64 of 1e30 should report overflow")
	}
}

func TestGetZExp(t *testing.T) {
	x := fromF64(64, 12)
	mant, e := GetZExp(x)
	// 12 = 0b1100, as a normalized mantissa*2^e product this should
	// reconstruct exactly via shifting.
	got := float64(natToUint64(mant))
	for e < 0 {
		got /= 2
		e++
	}
	for e > 0 {
		got *= 2
		e--
	}
	if got != 12 {
		t.Errorf("GetZExp(12) reconstructed to %v", got)
	}
}
