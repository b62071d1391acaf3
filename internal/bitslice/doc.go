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

// Package bitslice implements the eight-word bit-sliced register file that
// the AES-128 core is built on, plus the transpose primitives that move
// bytes into and out of that representation: eight uint64 bit planes, one
// lane-wise XOR op, and the transpose in/out primitives. Nothing here knows
// about AES rounds; that lives in the sibling aes package.
package bitslice
