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

import "encoding/binary"

// LoadBE32 reads a big-endian 32-bit word from the front of b.
func LoadBE32(b []byte) uint32 { return binary.BigEndian.Uint32(b) }

// StoreBE32 writes v as a big-endian 32-bit word to the front of b.
func StoreBE32(b []byte, v uint32) { binary.BigEndian.PutUint32(b, v) }

// LoadLE64 reads a little-endian 64-bit word from the front of b.
func LoadLE64(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }

// StoreLE64 writes v as a little-endian 64-bit word to the front of b.
func StoreLE64(b []byte, v uint64) { binary.LittleEndian.PutUint64(b, v) }

// LoadLE128 reads a little-endian 128-bit word from the front of b as
// (lo, hi) 64-bit halves, lo carrying bytes [0:8) and hi carrying bytes [8:16).
func LoadLE128(b []byte) (lo, hi uint64) {
	return binary.LittleEndian.Uint64(b[0:8]), binary.LittleEndian.Uint64(b[8:16])
}

// StoreLE128 writes the (lo, hi) 128-bit word to the front of b, little-endian.
func StoreLE128(b []byte, lo, hi uint64) {
	binary.LittleEndian.PutUint64(b[0:8], lo)
	binary.LittleEndian.PutUint64(b[8:16], hi)
}
