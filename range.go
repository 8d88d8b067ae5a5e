// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the exponent-range and sticky-status-flag state of
// §4.2 and the post-operation range check of §4.4: overflow to infinity
// or the largest finite magnitude, underflow with subnormal emulation,
// and a save/restore guard (SaveRange) for computing at a temporarily
// widened range. The operations in this package do not call SaveRange;
// they compute at the active range.

package bigfloat

import (
	"sync"

	"github.com/BrianGladman/mpfloat/internal/limb"
)

// Exponent-range bounds, symmetric and well inside int64 so that e+p and
// e-e' never overflow internally (§3.6).
const (
	EminMin = -(1 << 30)
	EminMax = (1 << 30) - 1
	EmaxMin = -(1 << 30) + 1
	EmaxMax = (1 << 30)
)

// Flags is a bitfield of the sticky status flags in §3.5.
type Flags uint8

const (
	FlagInexact Flags = 1 << iota
	FlagUnderflow
	FlagOverflow
	FlagNaN
	FlagErange
)

// Range holds the exponent-range and flag state that §4.2 and §5
// describe as thread-local: emin/emax, the sticky flags, and the default
// precision and rounding mode new Floats should be created with. Go has
// no native goroutine-local storage, so this package keeps one *Range
// reachable through activeFlags/activeRange, guarded by a mutex; callers
// that want true per-goroutine isolation should keep their own *Range
// and call its methods directly instead of the package-level helpers
// (see DESIGN.md for the tradeoff).
type Range struct {
	mu          sync.Mutex
	emin        int64
	emax        int64
	flags       Flags
	defaultPrec uint
	defaultMode RoundingMode
}

// NewRange returns a Range with default bounds (EminMin, EmaxMax),
// default precision 53, and ToNearestEven rounding.
func NewRange() *Range {
	return &Range{
		emin:        EminMin,
		emax:        EmaxMax,
		defaultPrec: 53,
		defaultMode: ToNearestEven,
	}
}

var global = NewRange()

// activeFlags/activeRange name the global Range used by operations that
// don't take an explicit *Range (everything in this package, mirroring
// the teacher's implicit-global style). Callers that need isolation swap
// in their own Range wholesale with SetActiveRange.
func activeFlags() *Range { return global }
func activeRange() *Range { return global }

// SetActiveRange installs r as the package-level Range used by default.
func SetActiveRange(r *Range) { global = r }

func (r *Range) Emin() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.emin
}

func (r *Range) Emax() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.emax
}

func (r *Range) SetEmin(e int64) {
	if e < EminMin || e > EminMax {
		panic("bigfloat: emin out of range")
	}
	r.mu.Lock()
	r.emin = e
	r.mu.Unlock()
}

func (r *Range) SetEmax(e int64) {
	if e < EmaxMin || e > EmaxMax {
		panic("bigfloat: emax out of range")
	}
	r.mu.Lock()
	r.emax = e
	r.mu.Unlock()
}

func (r *Range) DefaultPrec() uint {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.defaultPrec
}

func (r *Range) SetDefaultPrec(p uint) {
	checkPrec(p)
	r.mu.Lock()
	r.defaultPrec = p
	r.mu.Unlock()
}

func (r *Range) DefaultMode() RoundingMode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.defaultMode
}

func (r *Range) SetDefaultMode(m RoundingMode) {
	r.mu.Lock()
	r.defaultMode = m
	r.mu.Unlock()
}

// TestFlags reports which of the given flags are currently set.
func (r *Range) TestFlags(f Flags) Flags {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.flags & f
}

// ClearFlags clears the given flags (clear all with ClearFlags(^Flags(0))).
func (r *Range) ClearFlags(f Flags) {
	r.mu.Lock()
	r.flags &^= f
	r.mu.Unlock()
}

func (r *Range) set(f Flags) {
	r.mu.Lock()
	r.flags |= f
	r.mu.Unlock()
}

// Package-level convenience wrappers over the active Range, matching the
// §6.3 surface (get_emin, set_emin, get_emax, set_emax, clear_flags, ...).
func GetEmin() int64             { return activeRange().Emin() }
func SetEmin(e int64)            { activeRange().SetEmin(e) }
func GetEmax() int64             { return activeRange().Emax() }
func SetEmax(e int64)            { activeRange().SetEmax(e) }
func ClearFlags(f Flags)         { activeFlags().ClearFlags(f) }
func TestFlags(f Flags) Flags    { return activeFlags().TestFlags(f) }
func DefaultPrecision() uint     { return activeRange().DefaultPrec() }
func SetDefaultPrecision(p uint) { activeRange().SetDefaultPrec(p) }
func DefaultRoundingMode() RoundingMode {
	return activeRange().DefaultMode()
}
func SetDefaultRoundingMode(m RoundingMode) { activeRange().SetDefaultMode(m) }

// RangeGuard stashes emin/emax so a transcendental can widen the range to
// the maximum while it computes intermediate values (so spurious
// overflow/underflow can't fire on a value that is only temporary), and
// restore the caller's bounds on every exit path via defer. This
// replaces the teacher's paired save/restore macros (§4.2, §9.1) with
// Go's native deferred-cleanup idiom.
type RangeGuard struct {
	r         *Range
	savedEmin int64
	savedEmax int64
}

// SaveRange widens r to [EminMin, EmaxMax] and returns a guard that
// restores the previous bounds when Restore is called (typically via
// defer immediately after this call).
func SaveRange(r *Range) *RangeGuard {
	g := &RangeGuard{r: r, savedEmin: r.Emin(), savedEmax: r.Emax()}
	r.SetEmin(EminMin)
	r.SetEmax(EmaxMax)
	return g
}

// Restore puts back the emin/emax bounds captured by SaveRange.
func (g *RangeGuard) Restore() {
	g.r.SetEmin(g.savedEmin)
	g.r.SetEmax(g.savedEmax)
}

// CheckRange implements §4.4: given a just-computed regular result with
// its pre-clamp ternary t, detect overflow/underflow against r's current
// emin/emax, replace z in place when it is out of range, and return the
// combined ternary. Singular inputs pass through unchanged.
func CheckRange(r *Range, z *Float, t Accuracy) Accuracy {
	if !z.IsRegular() {
		return t
	}
	if z.IsZero() {
		return t
	}

	emax := r.Emax()
	if z.exp > emax {
		return overflow(r, z)
	}

	emin := r.Emin()
	if z.exp < emin {
		return underflow(r, z, t, emin)
	}
	if t != Exact {
		r.set(FlagInexact)
	}
	return t
}

// overflow implements the overflow branch of §4.4: round to ±Inf under
// modes that round away from a finite cap, or to the largest finite
// magnitude otherwise. The returned ternary compares the replacement
// with the exact value: +Inf and the largest finite negative value are
// Above it, -Inf and the largest finite positive value are Below it.
func overflow(r *Range, z *Float) Accuracy {
	r.set(FlagOverflow | FlagInexact)
	toInf := false
	switch z.mode {
	case ToNearestEven:
		toInf = true
	case ToPositiveInf:
		toInf = !z.neg
	case ToNegativeInf:
		toInf = z.neg
	case ToZero:
		toInf = false
	}
	if toInf {
		z.SetInf(sign1(z.neg))
		if z.neg {
			return Below
		}
		return Above
	}
	setLargestFinite(z, r.Emax())
	if z.neg {
		return Above
	}
	return Below
}

// setLargestFinite sets z to the largest finite magnitude representable
// at z's precision with exponent emax, preserving sign.
func setLargestFinite(z *Float, emax int64) {
	n := limbCount(uint(z.prec))
	z.mant = limb.Make(z.mant, n, n)
	for i := range z.mant {
		z.mant[i] = ^limb.Word(0)
	}
	t := uint(n)*limb.WordBits - uint(z.prec)
	z.mant[0] &^= (limb.Word(1) << t) - 1
	z.exp = emax
}

// underflow implements §4.4's subnormal emulation: re-round at a reduced
// target precision so the result lands with exponent exactly emin. The
// Nearest-mode tie at the subnormal boundary resolves per the Open
// Question in §9.2: round to even at the (reduced) subnormal precision,
// which in this kernel falls out of the normal nearest-even tie rule
// once the target precision has been shrunk — no special case needed.
func underflow(r *Range, z *Float, t Accuracy, emin int64) Accuracy {
	r.set(FlagUnderflow)
	lost := emin - z.exp
	if lost >= int64(z.prec) {
		// exact result rounds to 0 regardless of magnitude
		neg := z.neg
		z.SetZero(sign1(neg))
		r.set(FlagInexact)
		if z.neg {
			return Above
		}
		return Below
	}
	reduced := uint(int64(z.prec) - lost)
	sbit := uint(0)
	if t != Exact {
		sbit = 1
	}
	savedPrec := z.prec
	z.prec = uint32(reduced)
	z.round(sbit)
	z.prec = savedPrec
	if z.exp > emin {
		// rounding carried out of the subnormal range entirely
		return CheckRange(r, z, z.acc)
	}
	z.exp = emin
	if z.acc != Exact || t != Exact {
		r.set(FlagInexact)
	}
	return z.acc
}

// Subnormalize re-applies §4.4's underflow treatment to a value z that
// was computed as if the exponent range were unbounded; it is exposed
// standalone (mirroring mpfr_subnormalize) for callers building their
// own composite operations on top of this package's primitives.
func Subnormalize(r *Range, z *Float, t Accuracy) Accuracy {
	return CheckRange(r, z, t)
}
