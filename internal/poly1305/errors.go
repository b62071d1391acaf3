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

import "errors"

// The core has exactly one effective error taxonomy entry: programmer
// misuse of the API. These sentinels follow a plain errors.New convention
// rather than a custom error type, since there is nothing to attach beyond
// identity.
var (
	ErrInvalidKeySize   = errors.New("poly1305: key must be 32 bytes")
	ErrInvalidBlockSize = errors.New("poly1305: full block must be 16 bytes")
	ErrBlockTooLong     = errors.New("poly1305: final block must be shorter than 16 bytes")
	ErrNotInitialized   = errors.New("poly1305: update or finish called before init")
	ErrFinalized        = errors.New("poly1305: state already finalized, must not be reused")
)
