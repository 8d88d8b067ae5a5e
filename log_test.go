// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"math"
	"testing"
)

func TestLogBasic(t *testing.T) {
	for _, v := range []float64{1, math.E, 2, 10, 0.5, 1e10, 1e-10} {
		z := new(Float).Init(64)
		z.Log(fromF64(64, v))
		if !closeEnough(t, z, math.Log(v), 1e-15) {
			got, _ := z.Float64()
			t.Errorf("Log(%v) = %v, want ~%v", v, got, math.Log(v))
		}
	}
}

func TestLogSingular(t *testing.T) {
	z := new(Float).Init(53)
	zero := new(Float).Init(53)
	zero.SetZero(-1)
	z.Log(zero)
	if !z.IsInf(-1) {
		t.Error("Log(0) should be -Inf")
	}
	z.Log(fromF64(53, -1))
	if !z.IsNaN() {
		t.Error("Log(-1) should be NaN")
	}
	z.Log(fromF64(53, math.Inf(1)))
	if !z.IsInf(1) {
		t.Error("Log(+Inf) should be +Inf")
	}
}

func TestExpLogInverse(t *testing.T) {
	x := fromF64(80, 3.75)
	e := new(Float).Init(80)
	e.Exp(x)
	l := new(Float).Init(80)
	l.Log(e)
	if !closeEnough(t, l, 3.75, 1e-18) {
		got, _ := l.Float64()
		t.Errorf("Log(Exp(3.75)) = %v, want ~3.75", got)
	}
}
