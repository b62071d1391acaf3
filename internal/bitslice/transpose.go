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

package bitslice

import "github.com/coldharbor-labs/ctrsuite/internal/wordutil"

// transMask holds the eight diagonal masks of the 8x8 bit-matrix transpose
// applied to each 64-bit half of a block: transMask[k] selects the bits that
// move by 7*k positions when the half's byte/bit matrix is transposed. These
// are the trans_mask constants of the bit-sliced AES reference: diagonal k
// of an 8x8 bit matrix, its bits spaced nine apart.
var transMask = [8]uint64{
	0x8040201008040201,
	0x4020100804020100,
	0x2010080402010000,
	0x1008040201000000,
	0x0804020100000000,
	0x0402010000000000,
	0x0201000000000000,
	0x0100000000000000,
}

// Transpose128 is the involutive bit-permutation that transposes the 8x8
// bit matrix held in each 64-bit half of a little-endian 128-bit AES block:
// afterwards byte i of the low half holds bit i of block bytes 0..7, and
// byte i of the high half holds bit i of block bytes 8..15. Applying it
// twice returns the original value.
func Transpose128(x wordutil.Uint128) wordutil.Uint128 {
	y := x.And(wordutil.Uint128{Hi: transMask[0], Lo: transMask[0]})
	for k := 1; k < 8; k++ {
		mask := wordutil.Uint128{Hi: transMask[k], Lo: transMask[k]}
		shift := uint(7 * k)
		y = y.Or(x.And(mask).ShiftRight(shift))
		y = y.Or(x.ShiftLeft(shift).And(mask))
	}
	return y
}

// EncodeBroadcast bit-slices one 16-byte block and replicates its eight
// bit-planes across all Lanes lane positions of the resulting State. Used
// to load the AES key that seeds the key schedule, which is identical for
// every block processed in parallel.
func EncodeBroadcast(block []byte) State {
	lo, hi := wordutil.LoadLE128(block)
	t := Transpose128(wordutil.Uint128{Lo: lo, Hi: hi})
	var st State
	for i := range st {
		plane := (t.Lo>>(8*i))&0xff | (t.Hi>>(8*i)&0xff)<<8
		w := plane
		w ^= w << 16
		w ^= w << 32
		st[i] = w
	}
	return st
}

// EncodeLane bit-slices one 16-byte block and ORs its eight bit-planes into
// lane-th 16-bit slot of each plane word of st, leaving the other lanes
// untouched. Used to load the up to Lanes distinct nonce||counter blocks a
// CTR invocation processes in parallel (each lane gets its whole 16-byte
// block), and the single block of EncryptBlock.
func EncodeLane(st *State, lane int, block []byte) {
	lo, hi := wordutil.LoadLE128(block)
	t := Transpose128(wordutil.Uint128{Lo: lo, Hi: hi})
	shift := uint(LaneWidth * lane)
	for i := range st {
		plane := (t.Lo>>(8*i))&0xff | (t.Hi>>(8*i)&0xff)<<8
		st[i] |= plane << shift
	}
}

// DecodeLane extracts the lane-th parallel block from st and writes its
// 16 plaintext/ciphertext bytes, little-endian, to out. It is the inverse
// of EncodeLane/EncodeBroadcast for that lane: it reassembles the eight
// 16-bit bit-planes belonging to that lane into one transposed 128-bit
// value and applies Transpose128 again, which undoes the original
// transpose because Transpose128 is an involution.
//
// This replaces the reference implementation's from_transpose, whose C
// source reads undefined locals and ANDs live data against a zero mask; the
// permutation above is the standard, branch-free, involutive decode and is
// what the "AES round-trip of representation" property requires.
func DecodeLane(out []byte, st State, lane int) {
	var packed wordutil.Uint128
	shift := uint(LaneWidth * lane)
	for i := range st {
		plane := (st[i] >> shift) & 0xffff
		packed.Lo |= (plane & 0xff) << (8 * i)
		packed.Hi |= (plane >> 8) << (8 * i)
	}
	block := Transpose128(packed)
	wordutil.StoreLE128(out, block.Lo, block.Hi)
}
