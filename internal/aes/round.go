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

package aes

import "github.com/coldharbor-labs/ctrsuite/internal/bitslice"

// shiftRows rotates each of the four nibble-rows of every bit-plane left by
// its row index, independently per plane and per lane: row r is rotated left
// by r nibble positions within the 4x4 nibble matrix each plane represents.
func shiftRows(st *bitslice.State) {
	for i := range st {
		curr := st[i]
		st[i] = (curr & 0x1111111111111111) |
			((curr & 0x2220222022202220) >> 4) |
			((curr & 0x0002000200020002) << 12) |
			((curr & 0x4400440044004400) >> 8) |
			((curr & 0x0044004400440044) << 8) |
			((curr & 0x8000800080008000) >> 12) |
			((curr & 0x0888088808880888) << 4)
	}
}

// mixColumns implements the AES MixColumns matrix multiply over GF(2^8) as
// a sequence of one-bit-shifted XORs of each bit-plane interleaved with a
// rotate-by-one-plane carry; planes {0,1,3,4} additionally receive the
// final carry because those are the bit-planes whose Rijndael polynomial
// term picks up the x+1 / x^3+x^2+x contribution of the mix matrix.
func mixColumns(st *bitslice.State) {
	var rotPrev uint64
	for i := range st {
		col := st[i]
		col01 := col ^ (((col & 0xeeeeeeeeeeeeeeee) >> 1) | ((col & 0x1111111111111111) << 3))
		col0123 := col01 ^ (((col01 & 0xcccccccccccccccc) >> 2) | ((col01 & 0x3333333333333333) << 2))
		st[i] ^= col0123 ^ rotPrev
		rotPrev = col01
	}
	st[0] ^= rotPrev
	st[1] ^= rotPrev
	st[3] ^= rotPrev
	st[4] ^= rotPrev
}

// encRound runs one full AES round: SubBytes, ShiftRows, MixColumns,
// AddRoundKey.
func encRound(st *bitslice.State, k bitslice.State) {
	subBytes(st)
	shiftRows(st)
	mixColumns(st)
	*st = st.XOR(k)
}

// encLastRound runs the final AES round, which omits MixColumns.
func encLastRound(st *bitslice.State, k bitslice.State) {
	subBytes(st)
	shiftRows(st)
	*st = st.XOR(k)
}
