// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements Nat, the little-endian natural-number limb sequence
// that Float's significand is built from. Nat composes the word and vector
// primitives in word.go/vector.go; the arithmetic core works mostly
// through Nat's functions and methods, indexing single Words only to
// test or mask bits.

package limb

// A Nat is an unsigned multi-precision integer represented as a
// little-endian sequence of Words: Nat{w0, w1, ...} == w0 + w1*B + ...,
// where B = 2**WordBits. The zero value of Nat represents 0. A Nat
// returned by the arithmetic, shift and division functions in this file
// is normalized: its highest-index Word, if any, is non-zero. Make and
// Set return the length they are given.
type Nat []Word

// Make returns a Nat of length n with at least capacity c, reusing z's
// storage when it already has enough capacity.
func Make(z Nat, n, c int) Nat {
	if n <= cap(z) {
		return z[:n]
	}
	const extra = 4 // small slack to absorb +1-word growth from carries
	if c < n+extra {
		c = n + extra
	}
	return make(Nat, n, c)
}

// Norm trims leading (high-order) zero Words and returns the result.
func (x Nat) Norm() Nat {
	i := len(x)
	for i > 0 && x[i-1] == 0 {
		i--
	}
	return x[:i]
}

// Clear zeros every Word of z in place.
func (z Nat) Clear() {
	ZeroVW(z)
}

// SetWord sets z to the value of a single Word.
func SetWord(z Nat, x Word) Nat {
	if x == 0 {
		return z[:0]
	}
	z = Make(z, 1, cap(z))
	z[0] = x
	return z
}

// SetUint64 sets z to the value of x.
func SetUint64(z Nat, x uint64) Nat {
	if WordBits == 64 {
		return SetWord(z, Word(x))
	}
	// WordBits == 32
	if x>>32 == 0 {
		return SetWord(z, Word(x))
	}
	z = Make(z, 2, cap(z))
	z[0] = Word(x)
	z[1] = Word(x >> 32)
	return z.Norm()
}

// Set sets z to the value of x.
func Set(z, x Nat) Nat {
	z = Make(z, len(x), cap(z))
	copy(z, x)
	return z
}

// BitLen returns the length of x in bits. BitLen of the zero Nat is 0.
func (x Nat) BitLen() int {
	if i := len(x); i > 0 {
		return (i-1)*WordBits + BitLen(x[i-1])
	}
	return 0
}

// IsZero reports whether x represents 0.
func (x Nat) IsZero() bool {
	return len(x) == 0
}

// Cmp returns -1, 0, +1 as x<y, x==y, x>y.
func Cmp(x, y Nat) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	return CmpVV(x, y)
}

// Add sets z = x+y and returns z.
func Add(z, x, y Nat) Nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	// len(x) >= len(y)
	z = Make(z, len(x)+1, cap(z))
	c := AddVV(z[:len(y)], x[:len(y)], y)
	if len(x) > len(y) {
		c = AddVW(z[len(y):len(x)], x[len(y):], c)
	}
	z[len(x)] = c
	return z.Norm()
}

// Sub sets z = x-y and returns z. Requires x >= y.
func Sub(z, x, y Nat) Nat {
	z = Make(z, len(x), cap(z))
	c := SubVV(z[:len(y)], x[:len(y)], y)
	if len(x) > len(y) {
		c = SubVW(z[len(y):len(x)], x[len(y):], c)
	}
	if c != 0 {
		panic("limb: Sub: x < y")
	}
	return z.Norm()
}

// Mul sets z = x*y and returns z, using plain schoolbook multiplication.
func Mul(z, x, y Nat) Nat {
	m, n := len(x), len(y)
	if m == 0 || n == 0 {
		return z[:0]
	}
	if m < n {
		x, y = y, x
		m, n = n, m
	}
	z = Make(z, m+n, cap(z))
	z.Clear()
	for i, yi := range y {
		if yi != 0 {
			c := AddMulVVW(z[i:i+m], x, yi)
			z[i+m] = c
		}
	}
	return z.Norm()
}

// Shl sets z = x<<s and returns z.
func Shl(z, x Nat, s uint) Nat {
	if len(x) == 0 {
		return z[:0]
	}
	wordShift := int(s / WordBits)
	bitShift := s % WordBits
	n := len(x) + wordShift
	z = Make(z, n+1, cap(z))
	var c Word
	if bitShift == 0 {
		copy(z[wordShift:n], x)
	} else {
		c = ShlVU(z[wordShift:n], x, bitShift)
	}
	ZeroVW(z[:wordShift])
	z[n] = c
	return z.Norm()
}

// Shr sets z = x>>s and returns z.
func Shr(z, x Nat, s uint) Nat {
	wordShift := int(s / WordBits)
	bitShift := s % WordBits
	if wordShift >= len(x) {
		return z[:0]
	}
	x = x[wordShift:]
	n := len(x)
	z = Make(z, n, cap(z))
	if bitShift == 0 {
		copy(z, x)
	} else {
		ShrVU(z, x, bitShift)
	}
	return z[:n].Norm()
}

// Bit returns the value (0 or 1) of the bit at position i, counting
// from the least-significant bit of x as bit 0.
func (x Nat) Bit(i uint) uint {
	w := i / WordBits
	if int(w) >= len(x) {
		return 0
	}
	return uint(x[w]>>(i%WordBits)) & 1
}

// Sticky returns 1 if any bit of x at position strictly below i is set,
// 0 otherwise (the logical OR of all such bits, per §4.3's sticky bit).
func (x Nat) Sticky(i uint) uint {
	w := i / WordBits
	if int(w) > len(x) {
		w = uint(len(x))
	}
	for j := uint(0); j < w; j++ {
		if x[j] != 0 {
			return 1
		}
	}
	if int(w) < len(x) && x[w]&(1<<(i%WordBits)-1) != 0 {
		return 1
	}
	return 0
}

// TrailingZeroBits returns the number of trailing zero bits in x.
// The zero Nat reports 0.
func (x Nat) TrailingZeroBits() uint {
	for i, w := range x {
		if w != 0 {
			return uint(i)*WordBits + TrailingZeros(w)
		}
	}
	return 0
}

// DivMod sets z = u/v (truncated toward zero) and r = u-z*v, and returns
// z, r. It implements schoolbook long division: a fast path when v fits
// a single Word, and Knuth's Algorithm D (TAOCP vol. 2, §4.3.1) for a
// multi-word divisor. Requires v != 0.
func DivMod(z, u, v Nat) (q, r Nat) {
	if len(v) == 0 {
		panic("limb: DivMod: division by zero")
	}
	if Cmp(u, v) < 0 {
		return z[:0], Set(nil, u)
	}
	if len(v) == 1 {
		return divModW(z, u, v[0])
	}
	return divModKnuth(z, u, v)
}

func divModW(z, u Nat, v Word) (q, r Nat) {
	q = Make(z, len(u), cap(z))
	rw := DivWVW(q, 0, u, v)
	return q.Norm(), SetWord(nil, rw)
}

// divModKnuth implements Algorithm D, normalizing the divisor so its
// top bit is set, estimating each quotient digit from the top two words
// of the (shifted) remainder, and correcting the at-most-two-off
// estimate by explicit multiply-subtract-and-fixup.
func divModKnuth(z, u, v Nat) (q, r Nat) {
	n := len(v)
	m := len(u) - n

	shift := LeadingZeros(v[n-1])
	vn := Make(nil, n, n)
	ShlVU(vn, v, shift)

	un := Make(nil, len(u)+1, len(u)+1)
	c := ShlVU(un[:len(u)], u, shift)
	un[len(u)] = c

	q = Make(z, m+1, cap(z))
	for j := m; j >= 0; j-- {
		var qhat, rhat Word
		rhatOverflowed := false
		top2 := un[j+n]
		if top2 == vn[n-1] {
			// the true digit would be exactly the Word base; cap it
			// and let the correction loop below pull it back down.
			qhat = wordMax()
			rhat = un[j+n-1] + vn[n-1]
			rhatOverflowed = rhat < vn[n-1]
		} else {
			qhat, rhat = divWW(top2, un[j+n-1], vn[n-1])
		}
		for !rhatOverflowed {
			hi, lo := mulWW(qhat, vn[n-2])
			if hi < rhat || (hi == rhat && lo <= un[j+n-2]) {
				break
			}
			qhat--
			old := rhat
			rhat += vn[n-1]
			rhatOverflowed = rhat < old
		}

		borrow := mulSub(un[j:j+n+1], vn, qhat)
		if borrow != 0 {
			qhat--
			c := AddVV(un[j:j+n], un[j:j+n], vn)
			un[j+n] += c
		}
		q[j] = qhat
	}
	q = q.Norm()
	r = Make(nil, n, n)
	ShrVU(r, un[:n], shift)
	return q, r.Norm()
}

func wordMax() Word { return ^Word(0) }

// mulSub computes z -= qhat*v (v padded with an implicit 0 top word to
// match len(z)) and returns the borrow out. This is the combined
// multiply/subtract-with-carry step of Algorithm D (cf. GMP's
// mpn_submul_1): each limb's product is folded into a running carry
// before the borrow-propagating subtraction from z.
func mulSub(z, v Nat, qhat Word) Word {
	var carry, borrow Word
	var i int
	for i = 0; i < len(v); i++ {
		hi, lo := mulWW(qhat, v[i])
		var c Word
		c, lo = addWW(lo, carry, 0)
		carry = hi + c
		borrow, z[i] = subWW(z[i], lo, borrow)
	}
	borrow, z[i] = subWW(z[i], carry, borrow)
	return borrow
}
