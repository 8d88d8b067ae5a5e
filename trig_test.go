// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"math"
	"testing"
)

func TestSinCosBasic(t *testing.T) {
	for _, v := range []float64{0, 0.5, 1, 2, -1, math.Pi / 4, 10} {
		s := new(Float).Init(64)
		c := new(Float).Init(64)
		s.Sin(fromF64(64, v))
		c.Cos(fromF64(64, v))
		if !closeEnough(t, s, math.Sin(v), 1e-14) {
			got, _ := s.Float64()
			t.Errorf("Sin(%v) = %v, want ~%v", v, got, math.Sin(v))
		}
		if !closeEnough(t, c, math.Cos(v), 1e-14) {
			got, _ := c.Float64()
			t.Errorf("Cos(%v) = %v, want ~%v", v, got, math.Cos(v))
		}
	}
}

func TestSinCosShared(t *testing.T) {
	x := fromF64(70, 1.23456)
	sinOut := new(Float).Init(70)
	cosOut := new(Float).Init(70)
	SinCos(x, sinOut, cosOut)
	if !closeEnough(t, sinOut, math.Sin(1.23456), 1e-18) {
		got, _ := sinOut.Float64()
		t.Errorf("SinCos sin = %v, want ~%v", got, math.Sin(1.23456))
	}
	if !closeEnough(t, cosOut, math.Cos(1.23456), 1e-18) {
		got, _ := cosOut.Float64()
		t.Errorf("SinCos cos = %v, want ~%v", got, math.Cos(1.23456))
	}
}

func TestPythagoreanIdentity(t *testing.T) {
	x := fromF64(80, 0.9)
	s := new(Float).Init(80)
	c := new(Float).Init(80)
	s.Sin(x)
	c.Cos(x)
	s2 := new(Float).Init(80)
	c2 := new(Float).Init(80)
	s2.Mul(s, s)
	c2.Mul(c, c)
	sum := new(Float).Init(80)
	sum.Add(s2, c2)
	if !closeEnough(t, sum, 1, 1e-18) {
		got, _ := sum.Float64()
		t.Errorf("sin^2+cos^2 = %v, want ~1", got)
	}
}

func TestTrigSingular(t *testing.T) {
	z := new(Float).Init(53)
	inf := fromF64(53, math.Inf(1))
	z.Sin(inf)
	if !z.IsNaN() {
		t.Error("Sin(Inf) should be NaN")
	}
	z.Cos(inf)
	if !z.IsNaN() {
		t.Error("Cos(Inf) should be NaN")
	}
	zero := new(Float).Init(53)
	zero.SetZero(0)
	z.Cos(zero)
	f, _ := z.Float64()
	if f != 1 {
		t.Errorf("Cos(0) = %v, want 1", f)
	}
}

func TestTanBasic(t *testing.T) {
	for _, v := range []float64{0, 0.5, -0.5, 1} {
		z := new(Float).Init(64)
		z.Tan(fromF64(64, v))
		if !closeEnough(t, z, math.Tan(v), 1e-13) {
			got, _ := z.Float64()
			t.Errorf("Tan(%v) = %v, want ~%v", v, got, math.Tan(v))
		}
	}
}
