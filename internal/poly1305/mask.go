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

import "math/bits"

// gteMask returns all-ones if a>=b, all-zero otherwise, without branching on
// the comparison: bits.Sub64's borrow output is 1 exactly when a<b.
func gteMask(a, b uint64) uint64 {
	_, borrow := bits.Sub64(a, b, 0)
	return borrow - 1
}

// eqMask returns all-ones if a==b, all-zero otherwise. x|-x has its top bit
// set iff x!=0 (negation sets the top bit for every nonzero x except when x
// is already its own negation's sign source, which -x's two's-complement
// handles uniformly); the final arithmetic shift broadcasts that bit.
func eqMask(a, b uint64) uint64 {
	x := a ^ b
	y := x | (-x)
	return ^uint64(int64(y) >> 63)
}
