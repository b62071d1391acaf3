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

package wordutil

import "math/bits"

// Uint128 is a minimal two-limb emulation of a 128-bit unsigned integer,
// used where a platform lacks a native 128-bit type. Hi holds bits [64:128),
// Lo holds bits [0:64). The Poly1305 field code is written against this
// algebraic surface so it is unchanged if a native 128-bit integer ever
// becomes available.
type Uint128 struct {
	Hi, Lo uint64
}

// Uint64FromWide wraps a single 64-bit value as a Uint128 with a zero high limb.
func Uint64FromWide(lo uint64) Uint128 { return Uint128{Lo: lo} }

// MulWide computes the full 128-bit product of two 64-bit operands.
func MulWide(a, b uint64) Uint128 {
	hi, lo := bits.Mul64(a, b)
	return Uint128{Hi: hi, Lo: lo}
}

// Add returns x+y, wrapping silently at 2^128.
func (x Uint128) Add(y Uint128) Uint128 {
	lo, carry := bits.Add64(x.Lo, y.Lo, 0)
	hi, _ := bits.Add64(x.Hi, y.Hi, carry)
	return Uint128{Hi: hi, Lo: lo}
}

// And returns the bitwise AND of x and y.
func (x Uint128) And(y Uint128) Uint128 { return Uint128{Hi: x.Hi & y.Hi, Lo: x.Lo & y.Lo} }

// Or returns the bitwise OR of x and y.
func (x Uint128) Or(y Uint128) Uint128 { return Uint128{Hi: x.Hi | y.Hi, Lo: x.Lo | y.Lo} }

// ShiftLeft returns x shifted left by n bits, n in [0,128). Bits shifted
// past bit 127 are discarded.
func (x Uint128) ShiftLeft(n uint) Uint128 {
	switch {
	case n == 0:
		return x
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Hi: x.Lo << (n - 64)}
	default:
		return Uint128{Hi: (x.Hi << n) | (x.Lo >> (64 - n)), Lo: x.Lo << n}
	}
}

// ShiftRight returns x shifted right by n bits (logical, not arithmetic), n in [0,128).
func (x Uint128) ShiftRight(n uint) Uint128 {
	switch {
	case n == 0:
		return x
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Lo: x.Hi >> (n - 64)}
	default:
		return Uint128{Hi: x.Hi >> n, Lo: (x.Lo >> n) | (x.Hi << (64 - n))}
	}
}

// Uint64 truncates x to its low 64 bits.
func (x Uint128) Uint64() uint64 { return x.Lo }
