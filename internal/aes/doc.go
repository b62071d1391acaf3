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

// Package aes implements AES-128 in CTR mode entirely in software, using a
// bit-sliced representation of the cipher's internal state (see the sibling
// internal/bitslice package) rather than a byte-oriented S-box table or
// hardware AES instructions. SubBytes is a Boolean circuit over the state's
// eight bit planes; ShiftRows and MixColumns are nibble-wise mask-and-shift
// operations on the same planes. The package has no key-ingestion, RNG, or
// CLI surface: callers supply raw key, nonce, and counter bytes.
package aes
