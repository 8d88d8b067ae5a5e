// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements §4.9: the mathematical constants this package
// hands out at arbitrary precision, and the cache that keeps repeated
// requests from recomputing them. Each constant is driven through the
// shared Ziv loop (ziv.go) around an algorithm grounded on MPFR's own
// const_*.c sources.

package bigfloat

import (
	"sync"

	"github.com/BrianGladman/mpfloat/internal/limb"
)

type constKind int

const (
	constPi constKind = iota
	constLog2
	constEulerGamma
	constCatalan
)

// constEntry is the cache's unit of storage: a fully computed value
// together with the precision it's good to. Every compute* function
// below pads its own internal working precision well past the workPrec
// it's asked for, so reporting errBits=workPrec to the Ziv loop (see
// constantAt) is the conservative side of each one's real margin.
type constEntry struct {
	prec  uint
	value *Float
}

var (
	constCacheMu  sync.RWMutex
	constCacheMap = map[constKind]constEntry{}
)

// lookupConst returns a cached value for kind good to at least prec
// bits, if one has already been computed.
func lookupConst(kind constKind, prec uint) (*Float, bool) {
	constCacheMu.RLock()
	defer constCacheMu.RUnlock()
	e, ok := constCacheMap[kind]
	if ok && e.prec >= prec {
		return e.value, true
	}
	return nil, false
}

// storeConst publishes value under kind if it's the highest-precision
// version computed so far. The value computed off-lock is already a
// complete, immutable result by the time this runs; readers never see
// a partially built Float, only whole ones swapped in under the write
// lock.
func storeConst(kind constKind, value *Float) {
	constCacheMu.Lock()
	defer constCacheMu.Unlock()
	if e, ok := constCacheMap[kind]; !ok || value.Prec() > e.prec {
		constCacheMap[kind] = constEntry{prec: value.Prec(), value: value}
	}
}

// constantAt drives compute through the Ziv loop to produce a value
// good to at least prec bits, consulting and refreshing the cache for
// kind, and returns a fresh Float rounded to exactly prec bits so the
// cached high-precision value is never mutated or aliased out.
func constantAt(kind constKind, prec uint, compute func(work uint) *Float) *Float {
	if v, ok := lookupConst(kind, prec); ok {
		r := new(Float).Init(prec)
		r.SetMode(ToNearestEven)
		r.Round(v, prec, ToNearestEven)
		return r
	}

	approx := zivLoop(prec, ToNearestEven, func(work uint) (*Float, uint) {
		return compute(work), work
	})
	storeConst(kind, approx)

	r := new(Float).Init(prec)
	r.SetMode(ToNearestEven)
	r.Round(approx, prec, ToNearestEven)
	return r
}

// Pi returns pi rounded to prec bits, computed by the Gauss-Legendre
// AGM iteration (Brent-Salamin): a0=1, b0=1/sqrt(2), t0=1/4, p0=1;
// a'=(a+b)/2, b'=sqrt(a*b), t'=t-p*(a-a')^2, p'=2p; pi converges to
// (a+b)^2/(4t). Grounded on the same AGM family original_source/
// const_pi.c drives (mpfr_const_pi tracks A=a^2, B=b^2 and an
// accumulated cancellation-error term D, converging to B/D); this
// package keeps the textbook a/b/t/p bookkeeping instead of
// replicating the C source's exact variables, since both are standard
// instances of the same Gauss-Legendre AGM algorithm.
func Pi(prec uint) *Float {
	return constantAt(constPi, prec, computePi)
}

// computePi returns an approximation of pi good to at least workPrec
// bits.
func computePi(workPrec uint) *Float {
	p := workPrec + 32

	one := new(Float).Init(p)
	one.SetMode(ToNearestEven)
	one.SetUint64(1)

	two := new(Float).Init(p)
	two.SetMode(ToNearestEven)
	two.SetUint64(2)

	a := new(Float).Init(p)
	a.SetMode(ToNearestEven)
	a.Set(one)

	b := new(Float).Init(p)
	b.SetMode(ToNearestEven)
	b.Sqrt(two)
	b.Div(one, b)

	t := new(Float).Init(p)
	t.SetMode(ToNearestEven)
	t.SetUint64(1)
	scaleExp(t, -2) // t = 1/4

	pw := new(Float).Init(p)
	pw.SetMode(ToNearestEven)
	pw.Set(one)

	// iterations double the number of correct bits; comfortably more
	// than log2(p) rounds always finishes convergence.
	rounds := 8
	for bl := p; bl > 1; bl >>= 1 {
		rounds++
	}

	for i := 0; i < rounds; i++ {
		aNext := new(Float).Init(p)
		aNext.SetMode(ToNearestEven)
		aNext.Add(a, b)
		scaleExp(aNext, -1)

		bNext := new(Float).Init(p)
		bNext.SetMode(ToNearestEven)
		prod := new(Float).Init(p)
		prod.SetMode(ToNearestEven)
		prod.Mul(a, b)
		bNext.Sqrt(prod)

		diff := new(Float).Init(p)
		diff.SetMode(ToNearestEven)
		diff.Sub(a, aNext)
		diff.Mul(diff, diff)
		diff.Mul(diff, pw)

		tNext := new(Float).Init(p)
		tNext.SetMode(ToNearestEven)
		tNext.Sub(t, diff)

		pwNext := new(Float).Init(p)
		pwNext.SetMode(ToNearestEven)
		pwNext.Set(pw)
		scaleExp(pwNext, 1)

		a, b, t, pw = aNext, bNext, tNext, pwNext
	}

	num := new(Float).Init(p)
	num.SetMode(ToNearestEven)
	num.Add(a, b)
	num.Mul(num, num)

	denom := new(Float).Init(p)
	denom.SetMode(ToNearestEven)
	denom.Set(t)
	scaleExp(denom, 2)

	result := new(Float).Init(p)
	result.SetMode(ToNearestEven)
	result.Div(num, denom)
	return result
}

// Log2 returns log(2) rounded to prec bits, computed by the pure
// integer series original_source/const_log2.c calls its "naive"
// method (valid, per that source's own comment, for precisions well
// beyond anything this exercise needs): with N = p + 2*ceil(log2(p))
// + 1 and t0 = 2^(N-1),
//
//	log(2) = sum over k>=1 of floor(t_k * (6k-1) / (k*(2k-1))) * 2^-N
//
// where t_k = t_{k-1} >> 2. Every step of the sum is exact integer
// arithmetic; the only rounding happens once, at the very end, when
// the accumulated integer is scaled down and rounded to the target
// precision.
func Log2(prec uint) *Float {
	return constantAt(constLog2, prec, computeLog2)
}

func computeLog2(workPrec uint) *Float {
	p := workPrec + 32

	n := p
	for t := p; t > 0; t >>= 1 {
		n += 2
	}
	n++

	t := limb.Shl(nil, limb.SetWord(nil, 1), n-1)
	s := limb.Nat{}

	for k := uint(1); k <= n/2; k++ {
		t = limb.Shr(t, t, 2)
		num := limb.Mul(nil, t, limb.SetUint64(nil, uint64(6*k-1)))
		den := limb.SetUint64(nil, uint64(k*(2*k-1)))
		u, _ := limb.DivMod(nil, num, den)
		s = limb.Add(s, s, u)
	}

	result := new(Float).Init(p)
	result.SetMode(ToNearestEven)
	result.SetInt(s, false)
	scaleExp(result, -int64(n))
	return result
}

// agm computes the arithmetic-geometric mean of a0 and b0 (both
// positive) to at least workPrec bits, iterating a,b = (a+b)/2,
// sqrt(a*b) to convergence. Grounded on original_source/agm.c, which
// runs the same iteration at q+15 guard bits over the target precision
// q; this keeps that guard-bit convention.
func agm(a0, b0 *Float, workPrec uint) *Float {
	p := workPrec + 15

	a := new(Float).Init(p)
	a.SetMode(ToNearestEven)
	a.Round(a0, p, ToNearestEven)

	b := new(Float).Init(p)
	b.SetMode(ToNearestEven)
	b.Round(b0, p, ToNearestEven)

	rounds := 8
	for bl := p; bl > 1; bl >>= 1 {
		rounds++
	}

	for i := 0; i < rounds; i++ {
		aNext := new(Float).Init(p)
		aNext.SetMode(ToNearestEven)
		aNext.Add(a, b)
		scaleExp(aNext, -1)

		prod := new(Float).Init(p)
		prod.SetMode(ToNearestEven)
		prod.Mul(a, b)

		bNext := new(Float).Init(p)
		bNext.SetMode(ToNearestEven)
		bNext.Sqrt(prod)

		a, b = aNext, bNext
	}
	return a
}

// naturalLog returns log(x) for positive, finite, regular x, good to
// at least workPrec bits, via the AGM-Borwein formula
//
//	log(x) = pi / (2*agm(1, 4/s)) - m*log(2)
//
// where s = x*2^m is scaled so s has on the order of workPrec/2 bits
// above the binary point, which is what drives the AGM iteration to
// converge fast enough and is the standard precondition for this
// formula. No literal original_source/ file computes a general
// logarithm (only exp.c/exp2.c/exp3.c/expm1.c/const_log2.c are
// present), so this is grounded on the well-known AGM-Borwein method
// built entirely from the pieces the pack does supply: agm (agm.c),
// pi (const_pi.c), log(2) (const_log2.c).
func naturalLog(x *Float, workPrec uint) *Float {
	p := workPrec + 32

	xr := new(Float).Init(p)
	xr.SetMode(ToNearestEven)
	xr.Round(x, p, ToNearestEven)

	m := int64(p)/2 - xr.exp + 16
	if m < 0 {
		m = 0
	}

	s := new(Float).Init(p)
	s.SetMode(ToNearestEven)
	s.Set(xr)
	scaleExp(s, m)

	four := new(Float).Init(p)
	four.SetMode(ToNearestEven)
	four.SetUint64(4)

	t := new(Float).Init(p)
	t.SetMode(ToNearestEven)
	t.Div(four, s)

	one := new(Float).Init(p)
	one.SetMode(ToNearestEven)
	one.SetUint64(1)

	m2 := agm(one, t, p)

	denom := new(Float).Init(p)
	denom.SetMode(ToNearestEven)
	denom.Set(m2)
	scaleExp(denom, 1)

	pi := Pi(p)

	term1 := new(Float).Init(p)
	term1.SetMode(ToNearestEven)
	term1.Div(pi, denom)

	log2 := Log2(p)

	mf := new(Float).Init(p)
	mf.SetMode(ToNearestEven)
	mf.SetInt64(m)

	term2 := new(Float).Init(p)
	term2.SetMode(ToNearestEven)
	term2.Mul(mf, log2)

	result := new(Float).Init(p)
	result.SetMode(ToNearestEven)
	result.Sub(term1, term2)
	return result
}

// Catalan returns Catalan's constant G rounded to prec bits, via
// Adamchik's series (original_source/const_catalan.c, formula 31):
//
//	G = pi/8 * log(2+sqrt(3)) + 3/8 * sum(k!^2/(2k)!/(2k+1)^2, k=0..inf)
//
// The sum is evaluated by the same binary-splitting recursion the C
// source uses (there called S(T,P,Q,n1,n2)): called over [0,n) it
// returns integers T, P, Q with T/Q equal to the partial sum, computed
// entirely with limb.Nat arithmetic so no rounding error accumulates
// until the single division at the end.
func Catalan(prec uint) *Float {
	return constantAt(constCatalan, prec, computeCatalan)
}

func computeCatalan(workPrec uint) *Float {
	p := workPrec + 32

	n := uint64(p-1) / 2
	if n < 1 {
		n = 1
	}
	t, _, q := catalanSplit(0, n)

	three := limb.SetWord(nil, 3)
	threeT := limb.Mul(nil, t, three)

	num := new(Float).Init(p)
	num.SetMode(ToNearestEven)
	num.SetInt(threeT, false)

	den := new(Float).Init(p)
	den.SetMode(ToNearestEven)
	den.SetInt(q, false)

	ratio := new(Float).Init(p)
	ratio.SetMode(ToNearestEven)
	ratio.Div(num, den)

	three3 := new(Float).Init(p)
	three3.SetMode(ToNearestEven)
	three3.SetUint64(3)

	sqrt3 := new(Float).Init(p)
	sqrt3.SetMode(ToNearestEven)
	sqrt3.Sqrt(three3)

	two := new(Float).Init(p)
	two.SetMode(ToNearestEven)
	two.SetUint64(2)

	arg := new(Float).Init(p)
	arg.SetMode(ToNearestEven)
	arg.Add(sqrt3, two)

	logArg := naturalLog(arg, p)
	pi := Pi(p)

	piTerm := new(Float).Init(p)
	piTerm.SetMode(ToNearestEven)
	piTerm.Mul(pi, logArg)

	sum := new(Float).Init(p)
	sum.SetMode(ToNearestEven)
	sum.Add(piTerm, ratio)
	scaleExp(sum, -3)
	return sum
}

// catalanSplit is the binary-splitting recursion from
// original_source/const_catalan.c's S(T,P,Q,n1,n2): it returns T, P,
// Q such that T/Q equals the partial sum of k!^2/(2k)!/(2k+1)^2 for k
// in [n1,n2) divided by the k = n1-1 term; for n1 = 0, as computeCatalan
// calls it, T/Q is the partial sum itself. P carries no meaning on its own outside the recursive
// combine step; it's returned only so the caller one level up can
// fold it into its own T.
func catalanSplit(n1, n2 uint64) (t, p, q limb.Nat) {
	if n2 == n1+1 {
		if n1 == 0 {
			p = limb.SetWord(nil, 1)
			q = limb.SetWord(nil, 1)
		} else {
			p = limb.Mul(nil, limb.SetUint64(nil, 2*n1-1), limb.SetUint64(nil, n1))
			side := limb.SetUint64(nil, 2*n1+1)
			side = limb.Mul(nil, side, side)
			q = limb.Shl(nil, side, 1)
		}
		t = limb.Set(nil, p)
		return
	}

	m := (n1 + n2) / 2
	t1, p1, q1 := catalanSplit(n1, m)
	t2, p2, q2 := catalanSplit(m, n2)

	a := limb.Mul(nil, t1, q2)
	b := limb.Mul(nil, t2, p1)
	t = limb.Add(nil, a, b)
	p = limb.Mul(nil, p1, p2)
	q = limb.Mul(nil, q1, q2)
	return
}

// EulerGamma returns the Euler-Mascheroni constant rounded to prec
// bits, via the Brent-McMillan formula
//
//	gamma = A(n)/B(n) - log(n)
//
// where B(n) = sum(k=0..N, (n^k/k!)^2) and A(n) = sum(k=0..N,
// (n^k/k!)^2 * H_k) with H_k the k-th harmonic number, n chosen
// proportional to the target precision and N taken far enough past n
// that the bell-shaped term sequence has decayed below the target
// precision. Unlike Pi, Log2, and Catalan, no original_source/ file
// computes this constant (gamma.c there is the Gamma *function* via
// the reflection formula, not the Euler-Mascheroni constant), so this
// is grounded on the published Brent-McMillan method rather than a
// file in the pack, and is evaluated directly in Float arithmetic
// (not the exact-integer binary splitting the other constants use)
// for simplicity; the guard bits below are sized generously to absorb
// the resulting rounding drift.
func EulerGamma(prec uint) *Float {
	return constantAt(constEulerGamma, prec, computeEulerGamma)
}

func computeEulerGamma(workPrec uint) *Float {
	p := workPrec + 48

	n := p / 2
	if n < 8 {
		n = 8
	}

	one := new(Float).Init(p)
	one.SetMode(ToNearestEven)
	one.SetUint64(1)

	nF := new(Float).Init(p)
	nF.SetMode(ToNearestEven)
	nF.SetUint64(uint64(n))

	nPow := new(Float).Init(p)
	nPow.SetMode(ToNearestEven)
	nPow.Set(one)

	fact := new(Float).Init(p)
	fact.SetMode(ToNearestEven)
	fact.Set(one)

	h := new(Float).Init(p)
	h.SetMode(ToNearestEven)
	h.SetUint64(0)

	a := new(Float).Init(p)
	a.SetMode(ToNearestEven)
	a.SetUint64(0)

	b := new(Float).Init(p)
	b.SetMode(ToNearestEven)
	b.SetUint64(0)

	threshold := -int64(p)
	maxIter := 16*int(n) + 256

	for k := 0; k <= maxIter; k++ {
		ratio := new(Float).Init(p)
		ratio.SetMode(ToNearestEven)
		ratio.Div(nPow, fact)

		term := new(Float).Init(p)
		term.SetMode(ToNearestEven)
		term.Mul(ratio, ratio)

		bNext := new(Float).Init(p)
		bNext.SetMode(ToNearestEven)
		bNext.Add(b, term)
		b = bNext

		if k > 0 {
			kF := new(Float).Init(p)
			kF.SetMode(ToNearestEven)
			kF.SetUint64(uint64(k))

			invK := new(Float).Init(p)
			invK.SetMode(ToNearestEven)
			invK.Div(one, kF)

			hNext := new(Float).Init(p)
			hNext.SetMode(ToNearestEven)
			hNext.Add(h, invK)
			h = hNext
		}

		aTerm := new(Float).Init(p)
		aTerm.SetMode(ToNearestEven)
		aTerm.Mul(term, h)

		aNext := new(Float).Init(p)
		aNext.SetMode(ToNearestEven)
		aNext.Add(a, aTerm)
		a = aNext

		if uint64(k) > uint64(n) && !term.IsZero() && term.exp < threshold {
			break
		}

		nPowNext := new(Float).Init(p)
		nPowNext.SetMode(ToNearestEven)
		nPowNext.Mul(nPow, nF)
		nPow = nPowNext

		kp1 := new(Float).Init(p)
		kp1.SetMode(ToNearestEven)
		kp1.SetUint64(uint64(k + 1))

		factNext := new(Float).Init(p)
		factNext.SetMode(ToNearestEven)
		factNext.Mul(fact, kp1)
		fact = factNext
	}

	logN := naturalLog(nF, p)

	ratio := new(Float).Init(p)
	ratio.SetMode(ToNearestEven)
	ratio.Div(a, b)

	result := new(Float).Init(p)
	result.SetMode(ToNearestEven)
	result.Sub(ratio, logN)
	return result
}
