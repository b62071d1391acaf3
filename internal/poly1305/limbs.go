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

// limbs is the raw three-word radix-2^44 representation shared by Acc and R:
// value = limbs[0] + limbs[1]*2^44 + limbs[2]*2^88.
type limbs [3]uint64

const (
	mask44 = (uint64(1) << 44) - 1
	mask42 = (uint64(1) << 42) - 1
)

// Poly1305's clamp constant, RFC 8439 §2.5: AND the little-endian 128-bit
// r with 0x0ffffffc_0ffffffc_0ffffffc_0fffffff, expressed here as the
// (low64, high64) halves the reference implementation ANDs the loaded key
// against directly.
const (
	clampLo = 0x0ffffffc0fffffff
	clampHi = 0x0ffffffc0ffffffc
)

// Acc is the Poly1305 accumulator: a non-negative integer modulo 2^130-5
// held across three limbs. Between field operations a limb may exceed its
// normalized bound; it is only
// guaranteed normalized (a0,a1<2^44, a2<2^42) immediately after Finish.
type Acc limbs

// R is the clamped Poly1305 multiplier derived once per key.
type R limbs

// clampR derives R from the first 16 bytes of a one-time Poly1305 key.
func clampR(keyR []byte) R {
	lo, hi := wordutil.LoadLE128(keyR)
	clamped := wordutil.Uint128{Lo: lo, Hi: hi}.And(wordutil.Uint128{Lo: clampLo, Hi: clampHi})
	return R{
		clamped.Uint64() & mask44,
		clamped.ShiftRight(44).Uint64() & mask44,
		clamped.ShiftRight(88).Uint64(),
	}
}

// blockLimbs splits a 16-byte message block into the three-limb radix used
// by the accumulator, setting bit 40 of the top limb to encode the
// "implicit leading 1" of a full block: the term 2^128 lands on bit
// 128-88=40 of the third limb.
func blockLimbs(block []byte) limbs {
	lo, hi := wordutil.LoadLE128(block)
	m := wordutil.Uint128{Lo: lo, Hi: hi}
	return limbs{
		m.Uint64() & mask44,
		m.ShiftRight(44).Uint64() & mask44,
		m.ShiftRight(88).Uint64() | (uint64(1) << 40),
	}
}

// lastBlockLimbs splits a short (<16 byte) final block, already padded with
// the single 0x01 byte at offset len(msg) and zeros beyond it, into the
// three-limb radix. Unlike blockLimbs it does not set bit 40: the explicit
// 0x01 byte already supplies that padding bit.
func lastBlockLimbs(padded [16]byte) limbs {
	lo, hi := wordutil.LoadLE128(padded[:])
	m := wordutil.Uint128{Lo: lo, Hi: hi}
	return limbs{
		m.Uint64() & mask44,
		m.ShiftRight(44).Uint64() & mask44,
		m.ShiftRight(88).Uint64(),
	}
}
