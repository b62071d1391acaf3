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

import (
	"github.com/coldharbor-labs/ctrsuite/internal/wordutil"
	"github.com/coldharbor-labs/ctrsuite/ints"
)

type stage int

const (
	stageFresh stage = iota
	stageActive
	stageFinalized
)

// State is an incremental Poly1305 computation. The zero value is not
// usable; call Init first. A State must not be used from more than one
// goroutine at a time, and must not be reused after Finish: reusing r,s for
// a second message is a forgery oracle, so Finish zeroizes and the stage
// machine below refuses replay.
type State struct {
	acc      Acc
	r        R
	pad      wordutil.Uint128
	buf      [16]byte
	buffered int
	stage    stage
}

// Init seeds the state with a fresh one-time 32-byte key: the first 16
// bytes are clamped into r, the second 16 are kept as s.
func (s *State) Init(key []byte) error {
	if len(key) != 32 {
		return ErrInvalidKeySize
	}
	s.r = clampR(key[:16])
	lo, hi := wordutil.LoadLE128(key[16:32])
	s.pad = wordutil.Uint128{Lo: lo, Hi: hi}
	s.acc = Acc{}
	s.buffered = 0
	s.stage = stageActive
	return nil
}

// UpdateBlock folds exactly one full 16-byte block into the accumulator.
func (s *State) UpdateBlock(block []byte) error {
	if s.stage == stageFresh {
		return ErrNotInitialized
	}
	if s.stage == stageFinalized {
		return ErrFinalized
	}
	if len(block) != 16 {
		return ErrInvalidBlockSize
	}
	addAndMultiply(&s.acc, blockLimbs(block), s.r)
	return nil
}

// UpdateMany folds an arbitrary-length run of message bytes into the
// accumulator, buffering any trailing partial block for the next call.
func (s *State) UpdateMany(data []byte) error {
	if s.stage == stageFresh {
		return ErrNotInitialized
	}
	if s.stage == stageFinalized {
		return ErrFinalized
	}

	if s.buffered > 0 {
		n := ints.Min(len(data), 16-s.buffered)
		copy(s.buf[s.buffered:s.buffered+n], data[:n])
		s.buffered += n
		data = data[n:]
		if s.buffered < 16 {
			return nil
		}
		addAndMultiply(&s.acc, blockLimbs(s.buf[:]), s.r)
		s.buffered = 0
	}

	for len(data) >= 16 {
		addAndMultiply(&s.acc, blockLimbs(data[:16]), s.r)
		data = data[16:]
	}

	s.buffered = copy(s.buf[:], data)
	return nil
}

// UpdateLast folds the final, possibly empty, run of message bytes into the
// accumulator and pads the true final block by appending 0x01 then
// zero-padding to 16 bytes. No further Update call is valid after
// this one; only Finish may follow.
func (s *State) UpdateLast(data []byte) error {
	if err := s.UpdateMany(data); err != nil {
		return err
	}
	if s.buffered >= 16 {
		return ErrBlockTooLong
	}
	if s.buffered > 0 {
		var padded [16]byte
		copy(padded[:], s.buf[:s.buffered])
		padded[s.buffered] = 0x01
		addAndMultiply(&s.acc, lastBlockLimbs(padded), s.r)
		s.buffered = 0
	}
	return nil
}

// Finish fully reduces the accumulator, adds the key's s half mod 2^128,
// zeroizes the state so it cannot be reused, and returns the 16-byte tag.
func (s *State) Finish() ([16]byte, error) {
	var tag [16]byte
	if s.stage == stageFresh {
		return tag, ErrNotInitialized
	}
	if s.stage == stageFinalized {
		return tag, ErrFinalized
	}

	lastPass(&s.acc)
	acc128 := wordutil.Uint64FromWide(s.acc[0]).
		Or(wordutil.Uint64FromWide(s.acc[1]).ShiftLeft(44)).
		Or(wordutil.Uint64FromWide(s.acc[2]).ShiftLeft(88))
	sum := acc128.Add(s.pad)
	wordutil.StoreLE128(tag[:], sum.Lo, sum.Hi)

	s.zero()
	s.stage = stageFinalized
	return tag, nil
}

// zero clears every secret-derived field once the tag has been produced.
func (s *State) zero() {
	s.acc = Acc{}
	s.r = R{}
	s.pad = wordutil.Uint128{}
	for i := range s.buf {
		s.buf[i] = 0
	}
	s.buffered = 0
}
