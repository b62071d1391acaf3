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

// Package ctrsuite exposes two independent, standards-compatible
// cryptographic cores: a bit-sliced AES-128-CTR stream cipher and a
// Poly1305 one-time message authenticator. The two are not composed into
// an AEAD by this package; callers that need authenticated encryption are
// expected to derive the Poly1305 key and wire the two primitives together
// themselves.
package ctrsuite

import (
	"errors"

	"github.com/coldharbor-labs/ctrsuite/internal/aes"
	"github.com/coldharbor-labs/ctrsuite/internal/poly1305"
)

var (
	// ErrInvalidKeySize is returned when a caller supplies an AES-128 key
	// that is not exactly 16 bytes.
	ErrInvalidKeySize = errors.New("ctrsuite: AES key must be 16 bytes")
	// ErrInvalidNonceSize is returned when a caller supplies a CTR nonce
	// that is not exactly aes.NonceSize bytes.
	ErrInvalidNonceSize = errors.New("ctrsuite: nonce must be 12 bytes")
)

// KeySize is the length, in bytes, of an AES-128 key.
const KeySize = 16

// NonceSize is the length, in bytes, of the AES-CTR nonce.
const NonceSize = aes.NonceSize

// Cipher is a pre-expanded AES-128 key schedule, ready to run CTR mode
// against any nonce and counter without repeating key expansion.
type Cipher struct {
	sched aes.KeySchedule
}

// NewCipher expands key into a reusable Cipher.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeySize
	}
	c := &Cipher{}
	aes.Expand(&c.sched, key)
	return c, nil
}

// XORKeyStream encrypts or decrypts src into dst using AES-128-CTR with the
// given 12-byte nonce and initial 32-bit big-endian counter; encryption and
// decryption are the same operation. dst and src may overlap exactly.
func (c *Cipher) XORKeyStream(dst, src []byte, nonce []byte, counter uint32) error {
	if len(nonce) != NonceSize {
		return ErrInvalidNonceSize
	}
	if len(dst) < len(src) {
		panic("ctrsuite: dst shorter than src")
	}
	aes.CTRWithSchedule(dst, src, &c.sched, nonce, counter)
	return nil
}

// StreamXOR is the one-shot form of XORKeyStream: it expands key once and
// runs AES-128-CTR over src, writing len(src) bytes to dst.
func StreamXOR(dst, src, key, nonce []byte, counter uint32) error {
	c, err := NewCipher(key)
	if err != nil {
		return err
	}
	return c.XORKeyStream(dst, src, nonce, counter)
}

// MAC is an incremental Poly1305 computation over a one-time 32-byte key.
// A MAC must not be reused across two distinct messages.
type MAC struct {
	st poly1305.State
}

// NewMAC seeds a MAC with a fresh one-time 32-byte key.
func NewMAC(key []byte) (*MAC, error) {
	m := &MAC{}
	if err := m.st.Init(key); err != nil {
		return nil, err
	}
	return m, nil
}

// Write folds p into the running tag. It always returns len(p), nil to
// satisfy io.Writer, except that a misused (finalized or never
// initialized) MAC returns the triggering error.
func (m *MAC) Write(p []byte) (int, error) {
	if err := m.st.UpdateMany(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Sum finalizes the MAC over any remaining buffered bytes plus rest, and
// returns the 16-byte tag. The MAC must not be used again afterward.
func (m *MAC) Sum(rest []byte) ([16]byte, error) {
	if err := m.st.UpdateLast(rest); err != nil {
		return [16]byte{}, err
	}
	return m.st.Finish()
}

// Authenticate computes the Poly1305 tag of msg under the one-time 32-byte
// key in a single call.
func Authenticate(msg, key []byte) ([16]byte, error) {
	return poly1305.Sum(msg, key)
}

// VerifyTag reports whether tag is the correct Poly1305 tag for msg under
// key, comparing in constant time.
func VerifyTag(tag [16]byte, msg, key []byte) (bool, error) {
	return poly1305.Verify(tag, msg, key)
}
