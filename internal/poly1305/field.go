// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package poly1305

import "github.com/coldharbor-labs/ctrsuite/internal/wordutil"

// shiftLimb rotates the three limbs one position, [a0,a1,a2] -> [a2,a0,a1]:
// multiplying by the radix while keeping the representation three words wide.
func shiftLimb(a *limbs) {
	tmp := a[2]
	a[2] = a[1]
	a[1] = a[0]
	a[0] = tmp
}

// reduceLimb folds the radix wraparound landing in limb 0 back in using the
// field identity 2^130 = 5 mod p: after shiftLimb, limb 0 holds what used to
// be the top limb scaled by the gap between the true top of the 3-limb
// window and the prime's bit width, so it is rescaled by 20 (=16+4) here
// rather than 5 directly; carryWide normalizes the result afterward.
func reduceLimb(a *limbs) {
	b0 := a[0]
	a[0] = (b0 << 4) + (b0 << 2)
}

func shiftReduce(a *limbs) {
	shiftLimb(a)
	reduceLimb(a)
}

// sumScalarMultiply accumulates a*s into the wide accumulator t, limb-wise.
func sumScalarMultiply(t *[3]wordutil.Uint128, a limbs, s uint64) {
	for i := range t {
		t[i] = t[i].Add(wordutil.MulWide(a[i], s))
	}
}

// mulShiftReduce is the schoolbook multiply step of acc*r: for each r limb,
// from the least to most significant, scalar-multiply-accumulate the
// (possibly already once- or twice-shifted) a into the wide accumulator,
// then shiftReduce a (multiply it by 2^44 mod p) for the next, more
// significant r limb.
func mulShiftReduce(t *[3]wordutil.Uint128, a *limbs, r R) {
	for i := 0; i < 3; i++ {
		ctr := 3 - i - 1
		j := 2 - ctr
		sumScalarMultiply(t, *a, r[j])
		if ctr > 0 {
			shiftReduce(a)
		}
	}
}

// carryWide propagates carries across the wide accumulator at radix 2^44,
// t0 into t1 into t2.
func carryWide(t *[3]wordutil.Uint128) {
	for i := 0; i < 2; i++ {
		lo := t[i].Uint64() & mask44
		carry := t[i].ShiftRight(44)
		t[i] = wordutil.Uint64FromWide(lo)
		t[i+1] = t[i+1].Add(carry)
	}
}

// carryTopWide folds the bits of the wide top limb above bit 42 back into
// the wide bottom limb via the 2^130=5(mod p) identity (5 = 4+1, realized
// as the <<2 + original term below).
func carryTopWide(t *[3]wordutil.Uint128) {
	top := t[2]
	bottom := t[0]
	top42 := top.ShiftRight(42).Uint64()
	t[2] = top.And(wordutil.Uint64FromWide(mask42))
	t[0] = bottom.Add(wordutil.Uint64FromWide((top42 << 2) + top42))
}

func copyFromWide(out *limbs, t [3]wordutil.Uint128) {
	for i := range out {
		out[i] = t[i].Uint64()
	}
}

// fieldMultiply computes output = input*r mod p using the wide schoolbook
// multiply above, followed by a wide carry, the top-limb fold, and one final
// 44-bit normalization of limb 0 into limb 1.
func fieldMultiply(output *limbs, input limbs, r R) {
	var t [3]wordutil.Uint128
	a := input
	mulShiftReduce(&t, &a, r)
	carryWide(&t)
	carryTopWide(&t)
	copyFromWide(output, t)

	i0 := output[0]
	i1 := output[1]
	output[0] = i0 & mask44
	output[1] = i1 + (i0 >> 44)
}

// addAndMultiply computes acc <- (acc+block)*r mod p, the core
// add-and-multiply step of the Poly1305 update loop.
func addAndMultiply(acc *Acc, block limbs, r R) {
	for i := range acc {
		acc[i] += block[i]
	}
	fieldMultiply((*limbs)(acc), limbs(*acc), r)
}

func carryLimb(a *limbs) {
	for i := 0; i < 2; i++ {
		lo := a[i] & mask44
		carry := a[i] >> 44
		a[i] = lo
		a[i+1] += carry
	}
}

func carryTop(a *limbs) {
	top := a[2]
	bottom := a[0]
	top42 := top >> 42
	a[2] = top & mask42
	a[0] = (top42 << 2) + top42 + bottom
}

// lastPass fully reduces acc modulo p: a saturated-limb carry chain, a
// carry-top fold, one more 44-bit normalization, then a constant-time
// conditional subtraction of p = (2^44-5, 2^44-1, 2^42-1).
func lastPass(acc *Acc) {
	a := (*limbs)(acc)
	carryLimb(a)
	carryTop(a)

	a0, a1, a2 := a[0], a[1], a[2]
	a0n := a0 & mask44
	r0 := a0 >> 44
	a1n := (a1 + r0) & mask44
	r1 := (a1 + r0) >> 44
	a2n := a2 + r1
	a[0], a[1], a[2] = a0n, a1n, a2n

	carryTop(a)
	i0, i1 := a[0], a[1]
	a[0] = i0 & mask44
	a[1] = i1 + (i0 >> 44)

	const p0, p1, p2 = 0xffffffffffb, 0xfffffffffff, 0x3ffffffffff
	m0 := gteMask(a[0], p0)
	m1 := eqMask(a[1], p1)
	m2 := eqMask(a[2], p2)
	mask := m0 & m1 & m2

	a[0] -= p0 & mask
	a[1] -= p1 & mask
	a[2] -= p2 & mask
}
