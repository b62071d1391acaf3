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

// Package poly1305 implements the Poly1305 one-time message authenticator
// over the prime 2^130-5, using the three-limb 44/44/42-bit saturated radix
// popularized by the HACL* verified-crypto project. Every limb operation is
// data-independent of its operands' values; the one place the algorithm
// would naturally want a comparison — conditional subtraction of p during
// finalization — is instead built from the constant-time eq/gte masks in
// mask.go.
package poly1305
