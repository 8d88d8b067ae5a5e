// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"math"
	"testing"
)

func TestExpBasic(t *testing.T) {
	for _, v := range []float64{0, 1, -1, 2, 10, -10, 0.0001} {
		z := new(Float).Init(64)
		z.Exp(fromF64(64, v))
		if !closeEnough(t, z, math.Exp(v), 1e-15) {
			got, _ := z.Float64()
			t.Errorf("Exp(%v) = %v, want ~%v", v, got, math.Exp(v))
		}
	}
}

func TestExpSingular(t *testing.T) {
	z := new(Float).Init(53)
	z.Exp(fromF64(53, math.Inf(1)))
	if !z.IsInf(1) {
		t.Error("Exp(+Inf) should be +Inf")
	}
	z.Exp(fromF64(53, math.Inf(-1)))
	if !z.IsZero() {
		t.Error("Exp(-Inf) should be 0")
	}

	zero := new(Float).Init(53)
	zero.SetZero(-1)
	z.Exp(zero)
	f, _ := z.Float64()
	if f != 1 {
		t.Errorf("Exp(-0) = %v, want 1", f)
	}
}

