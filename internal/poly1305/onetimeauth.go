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

// Sum computes the Poly1305 tag of msg under the given one-time 32-byte key
// in a single call, for callers that already hold the whole message.
func Sum(msg, key []byte) ([16]byte, error) {
	var s State
	if err := s.Init(key); err != nil {
		return [16]byte{}, err
	}
	if err := s.UpdateLast(msg); err != nil {
		return [16]byte{}, err
	}
	return s.Finish()
}

// Verify reports whether tag is the correct Poly1305 tag for msg under key.
// It recomputes the tag and compares in constant time via eqMask rather than
// bytes.Equal, so a caller checking an attacker-supplied tag does not leak
// timing information about where the mismatch occurred.
func Verify(tag [16]byte, msg, key []byte) (bool, error) {
	want, err := Sum(msg, key)
	if err != nil {
		return false, err
	}
	var diff uint64
	for i := range want {
		diff |= uint64(want[i] ^ tag[i])
	}
	return eqMask(diff, 0) != 0, nil
}
