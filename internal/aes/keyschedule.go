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
	"github.com/coldharbor-labs/ctrsuite/ints"
)

// KeySchedule holds the 11 bit-sliced round keys (rounds 0 through 10)
// produced from a 16-byte AES-128 key. It is produced once and is
// read-only thereafter; the same KeySchedule may be shared across threads
// without synchronization.
type KeySchedule [11]bitslice.State

// rcon holds the round constants consumed by the key schedule recurrence,
// one per round; index 0 is unused (round 0 is the raw key, not derived).
var rcon = [11]uint8{0x8d, 0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36}

// Expand derives the 11-round KeySchedule from a 16-byte AES-128 key. It is
// pure and infallible: key must be exactly 16 bytes, a precondition enforced
// by validating callers such as ctrsuite.NewCipher.
func Expand(ks *KeySchedule, key []byte) {
	ks[0] = bitslice.EncodeBroadcast(key)
	for i := 1; i < len(ks); i++ {
		keyScheduleStep(&ks[i], ks[i-1], rcon[i])
	}
}

// keyScheduleStep derives round key i+1 from round key i: SubWord (the
// subBytes circuit applied to the whole sliced key state; three of the four
// resulting 32-bit words are discarded by the top-nibble mask below),
// RotWord via a nibble rotate on the extracted top nibble of each
// 16-bit column, the Rcon XOR, and the leftward propagation
// w[j] = w[j-1] XOR w[j-Nk] realized as shifted copies at bit offsets
// 4, 8, 12 (one, two and three nibbles).
func keyScheduleStep(next *bitslice.State, prev bitslice.State, rc uint8) {
	*next = prev
	subBytes(next)
	for i := range next {
		n := (next[i] & 0xf000f000f000f000) >> 12
		n = (n>>1 | n<<3) & 0x000f000f000f000f
		var ri uint64
		if ints.TestBit([]uint8{rc}, i) {
			ri = 1
		}
		ri ^= ri << 16
		ri ^= ri << 32
		n ^= ri
		n ^= n << 4
		n ^= n << 8

		p := prev[i]
		p ^= ((p & 0x0fff0fff0fff0fff) << 4) ^
			((p & 0x00ff00ff00ff00ff) << 8) ^
			((p & 0x000f000f000f000f) << 12)
		next[i] = n ^ p
	}
}
