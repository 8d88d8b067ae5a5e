// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"math"
	"testing"
)

func TestAtanBasic(t *testing.T) {
	for _, v := range []float64{0, 1, -1, 0.5, 2, 10, -10} {
		z := new(Float).Init(64)
		z.Atan(fromF64(64, v))
		if !closeEnough(t, z, math.Atan(v), 1e-14) {
			got, _ := z.Float64()
			t.Errorf("Atan(%v) = %v, want ~%v", v, got, math.Atan(v))
		}
	}
}

func TestAtanInf(t *testing.T) {
	z := new(Float).Init(64)
	z.Atan(fromF64(64, math.Inf(1)))
	if !closeEnough(t, z, math.Pi/2, 1e-14) {
		got, _ := z.Float64()
		t.Errorf("Atan(+Inf) = %v, want ~pi/2", got)
	}
	z.Atan(fromF64(64, math.Inf(-1)))
	if !closeEnough(t, z, -math.Pi/2, 1e-14) {
		got, _ := z.Float64()
		t.Errorf("Atan(-Inf) = %v, want ~-pi/2", got)
	}
}

func TestAtan2Quadrants(t *testing.T) {
	for _, tc := range []struct{ y, x float64 }{
		{1, 1}, {1, -1}, {-1, -1}, {-1, 1}, {0, -1}, {0, 1}, {1, 0}, {-1, 0},
	} {
		z := new(Float).Init(64)
		Atan2(z, fromF64(64, tc.y), fromF64(64, tc.x))
		want := math.Atan2(tc.y, tc.x)
		if !closeEnough(t, z, want, 1e-13) {
			got, _ := z.Float64()
			t.Errorf("Atan2(%v,%v) = %v, want ~%v", tc.y, tc.x, got, want)
		}
	}
}

func TestAsinAcosBasic(t *testing.T) {
	for _, v := range []float64{0, 0.5, -0.5, 1, -1} {
		s := new(Float).Init(64)
		s.Asin(fromF64(64, v))
		if !closeEnough(t, s, math.Asin(v), 1e-13) {
			got, _ := s.Float64()
			t.Errorf("Asin(%v) = %v, want ~%v", v, got, math.Asin(v))
		}
		c := new(Float).Init(64)
		c.Acos(fromF64(64, v))
		if !closeEnough(t, c, math.Acos(v), 1e-13) {
			got, _ := c.Float64()
			t.Errorf("Acos(%v) = %v, want ~%v", v, got, math.Acos(v))
		}
	}
}

func TestAsinAcosOutOfDomain(t *testing.T) {
	z := new(Float).Init(53)
	z.Asin(fromF64(53, 1.5))
	if !z.IsNaN() {
		t.Error("Asin(1.5) should be NaN")
	}
	z.Acos(fromF64(53, -1.5))
	if !z.IsNaN() {
		t.Error("Acos(-1.5) should be NaN")
	}
}
