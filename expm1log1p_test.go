// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"math"
	"testing"
)

func TestExpm1Basic(t *testing.T) {
	for _, v := range []float64{0, 1, -1, 1e-8, -1e-8, 10} {
		z := new(Float).Init(64)
		z.Expm1(fromF64(64, v))
		if !closeEnough(t, z, math.Expm1(v), 1e-13) {
			got, _ := z.Float64()
			t.Errorf("Expm1(%v) = %v, want ~%v", v, got, math.Expm1(v))
		}
	}
}

func TestExpm1SmallArgAccuracy(t *testing.T) {
	// The naive exp(x)-1 computed at default precision loses most of its
	// bits to cancellation for small x; Expm1 must widen its working
	// precision to still resolve this accurately.
	v := 1e-15
	z := new(Float).Init(53)
	z.Expm1(fromF64(53, v))
	if !closeEnough(t, z, math.Expm1(v), 1e-2) {
		got, _ := z.Float64()
		t.Errorf("Expm1(%v) = %v, want ~%v", v, got, math.Expm1(v))
	}
}

func TestLog1pBasic(t *testing.T) {
	for _, v := range []float64{0, 1, -0.5, 1e-8, 10} {
		z := new(Float).Init(64)
		z.Log1p(fromF64(64, v))
		if !closeEnough(t, z, math.Log1p(v), 1e-13) {
			got, _ := z.Float64()
			t.Errorf("Log1p(%v) = %v, want ~%v", v, got, math.Log1p(v))
		}
	}
}

func TestLog1pDomain(t *testing.T) {
	z := new(Float).Init(53)
	z.Log1p(fromF64(53, -1))
	if !z.IsInf(-1) {
		t.Error("Log1p(-1) should be -Inf")
	}
	z.Log1p(fromF64(53, -2))
	if !z.IsNaN() {
		t.Error("Log1p(-2) should be NaN")
	}
}

func TestExpm1InfAndZero(t *testing.T) {
	z := new(Float).Init(53)
	z.Expm1(fromF64(53, math.Inf(1)))
	if !z.IsInf(1) {
		t.Error("Expm1(+Inf) should be +Inf")
	}
	z.Expm1(fromF64(53, math.Inf(-1)))
	got, _ := z.Float64()
	if got != -1 {
		t.Errorf("Expm1(-Inf) = %v, want -1", got)
	}
}
