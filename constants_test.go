// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bigfloat

import (
	"math"
	"testing"
)

func TestPiValue(t *testing.T) {
	p := Pi(64)
	if !closeEnough(t, p, math.Pi, 1e-15) {
		got, _ := p.Float64()
		t.Errorf("Pi() = %v, want ~%v", got, math.Pi)
	}
}

func TestLog2Value(t *testing.T) {
	l := Log2(64)
	if !closeEnough(t, l, math.Ln2, 1e-15) {
		got, _ := l.Float64()
		t.Errorf("Log2() = %v, want ~%v", got, math.Ln2)
	}
}

func TestEulerGammaValue(t *testing.T) {
	g := EulerGamma(64)
	const wantGamma = 0.5772156649015329
	if !closeEnough(t, g, wantGamma, 1e-10) {
		got, _ := g.Float64()
		t.Errorf("EulerGamma() = %v, want ~%v", got, wantGamma)
	}
}

func TestCatalanValue(t *testing.T) {
	c := Catalan(64)
	const wantCatalan = 0.915965594177219
	if !closeEnough(t, c, wantCatalan, 1e-10) {
		got, _ := c.Float64()
		t.Errorf("Catalan() = %v, want ~%v", got, wantCatalan)
	}
}

func TestConstantCacheStable(t *testing.T) {
	a := Pi(100)
	b := Pi(100)
	if Cmp(a, b) != 0 {
		t.Error("Pi(100) called twice should be identical from the cache")
	}
	c := Pi(200)
	if c.Prec() != 200 {
		t.Errorf("Pi(200).Prec() = %d, want 200", c.Prec())
	}
}
