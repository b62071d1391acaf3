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
	"bytes"
	cryptoaes "crypto/aes"
	"encoding/hex"
	"testing"

	"github.com/coldharbor-labs/ctrsuite/ints"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

// TestNISTBlockVector checks the raw block cipher against the FIPS-197
// Appendix C.1 AES-128 example.
func TestNISTBlockVector(t *testing.T) {
	key := mustHex(t, "000102030405060708090a0b0c0d0e0f")
	plaintext := mustHex(t, "00112233445566778899aabbccddeeff")
	want := mustHex(t, "69c4e0d86a7b0430d8cdb78070b4c55a")

	var sched KeySchedule
	Expand(&sched, key)

	got := make([]byte, 16)
	EncryptBlock(got, plaintext, &sched)
	if !bytes.Equal(got, want) {
		t.Fatalf("block mismatch: got %x want %x", got, want)
	}
}

// TestAgreementWithStandardLibrary checks that the bit-sliced block cipher
// matches crypto/aes (used here strictly as an independent reference, never
// as the package's own encryption path) for random keys and random single
// blocks.
func TestAgreementWithStandardLibrary(t *testing.T) {
	for trial := 0; trial < 100; trial++ {
		key := make([]byte, 16)
		plaintext := make([]byte, 16)
		if err := ints.RandomFillSlice(key); err != nil {
			t.Fatal(err)
		}
		if err := ints.RandomFillSlice(plaintext); err != nil {
			t.Fatal(err)
		}

		ref, err := cryptoaes.NewCipher(key)
		if err != nil {
			t.Fatal(err)
		}
		want := make([]byte, 16)
		ref.Encrypt(want, plaintext)

		var sched KeySchedule
		Expand(&sched, key)
		got := make([]byte, 16)
		EncryptBlock(got, plaintext, &sched)

		if !bytes.Equal(got, want) {
			t.Fatalf("trial %d: mismatch for key %x plaintext %x: got %x want %x",
				trial, key, plaintext, got, want)
		}
	}
}

func TestCTRLongVector(t *testing.T) {
	// NIST SP 800-38A F.5.1, CTR-AES128.Encrypt.
	key := mustHex(t, "2b7e151628aed2a6abf7158809cf4f3c")
	nonce := mustHex(t, "f0f1f2f3f4f5f6f7f8f9fafb")
	plaintext := mustHex(t,
		"6bc1bee22e409f96e93d7e117393172a"+
			"ae2d8a571e03ac9c9eb76fac45af8e51"+
			"30c81c46a35ce411e5fbc1191a0a52ef"+
			"f69f2445df4f9b17ad2b417be66c3710")
	want := mustHex(t,
		"874d6191b620e3261bef6864990db6ce"+
			"9806f66b7970fdff8617187bb9fffdff"+
			"5ae4df3edbd5d35e5b4f09020db03eab"+
			"1e031dda2fbe03d1792170a0f3009cee")

	got := make([]byte, len(plaintext))
	CTR(got, plaintext, key, nonce, 0xfcfdfeff)
	if !bytes.Equal(got, want) {
		t.Fatalf("CTR mismatch:\ngot  %x\nwant %x", got, want)
	}
}

func TestCTRPartialLastBlock(t *testing.T) {
	key := make([]byte, 16)
	nonce := make([]byte, NonceSize)
	for _, n := range []int{1, 15, 16, 17, 63, 64, 65, 129} {
		plaintext := make([]byte, n)
		if err := ints.RandomFillSlice(plaintext); err != nil {
			t.Fatal(err)
		}
		ct := make([]byte, n)
		CTR(ct, plaintext, key, nonce, 0)
		pt := make([]byte, n)
		CTR(pt, ct, key, nonce, 0)
		if !bytes.Equal(pt, plaintext) {
			t.Fatalf("len %d: CTR is not an involution: got %x want %x", n, pt, plaintext)
		}
	}
}

// TestCTRInvolution checks that running CTR twice with the same key, nonce,
// and counter recovers the original message.
func TestCTRInvolution(t *testing.T) {
	for trial := 0; trial < 32; trial++ {
		key := make([]byte, 16)
		nonce := make([]byte, NonceSize)
		msg := make([]byte, 1+trial*7)
		if err := ints.RandomFillSlice(key); err != nil {
			t.Fatal(err)
		}
		if err := ints.RandomFillSlice(nonce); err != nil {
			t.Fatal(err)
		}
		if err := ints.RandomFillSlice(msg); err != nil {
			t.Fatal(err)
		}

		ct := make([]byte, len(msg))
		CTR(ct, msg, key, nonce, uint32(trial))
		pt := make([]byte, len(msg))
		CTR(pt, ct, key, nonce, uint32(trial))

		if !bytes.Equal(pt, msg) {
			t.Fatalf("trial %d: CTR(CTR(m)) != m", trial)
		}
	}
}

func TestKeyScheduleZero(t *testing.T) {
	var sched KeySchedule
	Expand(&sched, make([]byte, 16))
	for i := range sched {
		sched[i].Zero()
		for _, w := range sched[i] {
			if w != 0 {
				t.Fatalf("round %d not zeroized", i)
			}
		}
	}
}
