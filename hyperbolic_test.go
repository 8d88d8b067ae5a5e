// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"math"
	"testing"
)

func TestSinhCoshTanh(t *testing.T) {
	for _, v := range []float64{0, 1, -1, 0.5, 3} {
		s := new(Float).Init(64)
		s.Sinh(fromF64(64, v))
		if !closeEnough(t, s, math.Sinh(v), 1e-14) {
			got, _ := s.Float64()
			t.Errorf("Sinh(%v) = %v, want ~%v", v, got, math.Sinh(v))
		}
		c := new(Float).Init(64)
		c.Cosh(fromF64(64, v))
		if !closeEnough(t, c, math.Cosh(v), 1e-14) {
			got, _ := c.Float64()
			t.Errorf("Cosh(%v) = %v, want ~%v", v, got, math.Cosh(v))
		}
		th := new(Float).Init(64)
		th.Tanh(fromF64(64, v))
		if !closeEnough(t, th, math.Tanh(v), 1e-14) {
			got, _ := th.Float64()
			t.Errorf("Tanh(%v) = %v, want ~%v", v, got, math.Tanh(v))
		}
	}
}

func TestSinhCoshShared(t *testing.T) {
	x := fromF64(70, 2.5)
	sinhOut := new(Float).Init(70)
	coshOut := new(Float).Init(70)
	SinhCosh(x, sinhOut, coshOut)
	if !closeEnough(t, sinhOut, math.Sinh(2.5), 1e-18) {
		got, _ := sinhOut.Float64()
		t.Errorf("SinhCosh sinh = %v, want ~%v", got, math.Sinh(2.5))
	}
	if !closeEnough(t, coshOut, math.Cosh(2.5), 1e-18) {
		got, _ := coshOut.Float64()
		t.Errorf("SinhCosh cosh = %v, want ~%v", got, math.Cosh(2.5))
	}
}

func TestInverseHyperbolics(t *testing.T) {
	for _, v := range []float64{0, 1, -1, 5} {
		z := new(Float).Init(64)
		z.Asinh(fromF64(64, v))
		if !closeEnough(t, z, math.Asinh(v), 1e-13) {
			got, _ := z.Float64()
			t.Errorf("Asinh(%v) = %v, want ~%v", v, got, math.Asinh(v))
		}
	}
	for _, v := range []float64{1, 2, 10} {
		z := new(Float).Init(64)
		z.Acosh(fromF64(64, v))
		if !closeEnough(t, z, math.Acosh(v), 1e-13) {
			got, _ := z.Float64()
			t.Errorf("Acosh(%v) = %v, want ~%v", v, got, math.Acosh(v))
		}
	}
	for _, v := range []float64{0, 0.5, -0.5} {
		z := new(Float).Init(64)
		z.Atanh(fromF64(64, v))
		if !closeEnough(t, z, math.Atanh(v), 1e-13) {
			got, _ := z.Float64()
			t.Errorf("Atanh(%v) = %v, want ~%v", v, got, math.Atanh(v))
		}
	}
}

func TestAcoshDomain(t *testing.T) {
	z := new(Float).Init(53)
	z.Acosh(fromF64(53, 0.5))
	if !z.IsNaN() {
		t.Error("Acosh(0.5) should be NaN")
	}
}

func TestAtanhDomain(t *testing.T) {
	z := new(Float).Init(53)
	z.Atanh(fromF64(53, 1))
	if !z.IsInf(1) {
		t.Error("Atanh(1) should be +Inf")
	}
	z.Atanh(fromF64(53, 1.5))
	if !z.IsNaN() {
		t.Error("Atanh(1.5) should be NaN")
	}
}
