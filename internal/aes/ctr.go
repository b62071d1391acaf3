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

import (
	"github.com/coldharbor-labs/ctrsuite/internal/bitslice"
	"github.com/coldharbor-labs/ctrsuite/internal/wordutil"
	"github.com/coldharbor-labs/ctrsuite/ints"
)

// NonceSize is the length, in bytes, of the AES-CTR nonce.
const NonceSize = 12

// BlockSize is the length, in bytes, of one AES block and one lane of
// keystream.
const BlockSize = 16

// block runs the 11-round AES pipeline (AddRoundKey, nine full rounds,
// one final round without MixColumns) over a state that has already been
// loaded with up to bitslice.Lanes distinct blocks, one per lane.
func block(st *bitslice.State, ks *KeySchedule) {
	*st = st.XOR(ks[0])
	for i := 1; i < 10; i++ {
		encRound(st, ks[i])
	}
	encLastRound(st, ks[10])
}

// keystreamGroup fills ks64[:16*n] with n<=bitslice.Lanes 16-byte AES-CTR
// keystream blocks for the big-endian 32-bit counters counter..counter+n-1,
// each block computed as AES-128-Encrypt(key, nonce||BE32(counter+i)).
func keystreamGroup(ks64 []byte, sched *KeySchedule, nonce []byte, counter uint32, n int) {
	var st bitslice.State
	var blockBuf [BlockSize]byte
	copy(blockBuf[:NonceSize], nonce)
	for lane := 0; lane < n; lane++ {
		wordutil.StoreBE32(blockBuf[NonceSize:], counter+uint32(lane))
		bitslice.EncodeLane(&st, lane, blockBuf[:])
	}
	block(&st, sched)
	for lane := 0; lane < n; lane++ {
		bitslice.DecodeLane(ks64[lane*BlockSize:(lane+1)*BlockSize], st, lane)
	}
}

// CTRWithSchedule XORs in with the AES-128-CTR keystream for the given
// round-key schedule, nonce, and initial big-endian counter, writing
// len(in) bytes to out. out and in may be the same underlying array but
// must not otherwise overlap. The last group of blocks may be partial;
// len(in) is arbitrary.
func CTRWithSchedule(out, in []byte, sched *KeySchedule, nonce []byte, counter uint32) {
	var ks64 [bitslice.Lanes * BlockSize]byte
	for len(in) > 0 {
		n := ints.Min(bitslice.Lanes, len(in)/BlockSize)
		if n == 0 {
			n = 1 // final, partial block: still need one lane of keystream
		}
		keystreamGroup(ks64[:], sched, nonce, counter, n)

		take := n * BlockSize
		if take > len(in) {
			take = len(in)
		}
		for i := 0; i < take; i++ {
			out[i] = in[i] ^ ks64[i]
		}
		out, in = out[take:], in[take:]
		counter += uint32(n)
	}
}

// CTR derives the round-key schedule from key and XORs in with the
// AES-128-CTR keystream starting at counter, writing len(in) bytes to out.
// Encryption and decryption are the same operation.
func CTR(out, in []byte, key, nonce []byte, counter uint32) {
	var sched KeySchedule
	Expand(&sched, key)
	CTRWithSchedule(out, in, &sched, nonce, counter)
}

// EncryptBlock runs the raw AES-128 block cipher (no counter-mode framing)
// over exactly one 16-byte block, writing 16 bytes to dst. CTR itself is
// built on top of it, feeding it nonce||counter instead of caller plaintext.
func EncryptBlock(dst, src []byte, sched *KeySchedule) {
	var st bitslice.State
	bitslice.EncodeLane(&st, 0, src)
	block(&st, sched)
	bitslice.DecodeLane(dst, st, 0)
}
