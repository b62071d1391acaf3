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
	"bytes"
	"encoding/hex"
	"testing"

	refpoly1305 "golang.org/x/crypto/poly1305"

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

// TestRFC8439Vector checks the tag against RFC 8439 §2.5.2's worked
// example.
func TestRFC8439Vector(t *testing.T) {
	key := mustHex(t, "85d6be7857556d337f4452fe42d506a80103808afb0db2fd4abff6af4149f51b")
	msg := []byte("Cryptographic Forum Research Group")
	want := mustHex(t, "a8061dc1305136c6c22b8baf0c0127a9")

	got, err := Sum(msg, key)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got[:], want) {
		t.Fatalf("tag mismatch: got %x want %x", got, want)
	}

	ok, err := Verify(got, msg, key)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("Verify rejected its own tag")
	}
}

// TestEmptyMessage: with an all-zero key, r and s are both zero, so the
// accumulator stays zero across zero updates and the tag is all zeros.
func TestEmptyMessage(t *testing.T) {
	key := make([]byte, 32)
	got, err := Sum(nil, key)
	if err != nil {
		t.Fatal(err)
	}
	var want [16]byte
	if got != want {
		t.Fatalf("empty-message tag mismatch: got %x want %x", got, want)
	}
}

// TestExactlyOneBlock exercises the add-and-multiply path exactly once,
// through a 16-byte message, via both the one-shot API and the incremental
// API with a single UpdateBlock call.
func TestExactlyOneBlock(t *testing.T) {
	key := mustHex(t, "85d6be7857556d337f4452fe42d506a80103808afb0db2fd4abff6af4149f51b")
	msg := make([]byte, 16)
	for i := range msg {
		msg[i] = byte(i)
	}

	want, err := Sum(msg, key)
	if err != nil {
		t.Fatal(err)
	}

	var s State
	if err := s.Init(key); err != nil {
		t.Fatal(err)
	}
	if err := s.UpdateBlock(msg); err != nil {
		t.Fatal(err)
	}
	got, err := s.Finish()
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("single UpdateBlock tag mismatch: got %x want %x", got, want)
	}
}

// TestIncrementalEquivalence splits a message at every boundary and feeds
// it through UpdateMany in pieces; the result must match the one-shot API.
func TestIncrementalEquivalence(t *testing.T) {
	key := make([]byte, 32)
	if err := ints.RandomFillSlice(key); err != nil {
		t.Fatal(err)
	}
	msg := make([]byte, 137)
	if err := ints.RandomFillSlice(msg); err != nil {
		t.Fatal(err)
	}

	want, err := Sum(msg, key)
	if err != nil {
		t.Fatal(err)
	}

	for split := 0; split <= len(msg); split++ {
		var s State
		if err := s.Init(key); err != nil {
			t.Fatal(err)
		}
		if err := s.UpdateMany(msg[:split]); err != nil {
			t.Fatal(err)
		}
		if err := s.UpdateLast(msg[split:]); err != nil {
			t.Fatal(err)
		}
		got, err := s.Finish()
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("split %d: tag mismatch: got %x want %x", split, got, want)
		}
	}
}

// TestManyBlocksPerCall checks UpdateMany given in one large irregular call
// against the same message processed one block at a time.
func TestManyBlocksPerCall(t *testing.T) {
	key := make([]byte, 32)
	if err := ints.RandomFillSlice(key); err != nil {
		t.Fatal(err)
	}
	msg := make([]byte, 16*5+9)
	if err := ints.RandomFillSlice(msg); err != nil {
		t.Fatal(err)
	}

	var whole State
	if err := whole.Init(key); err != nil {
		t.Fatal(err)
	}
	if err := whole.UpdateLast(msg); err != nil {
		t.Fatal(err)
	}
	want, err := whole.Finish()
	if err != nil {
		t.Fatal(err)
	}

	var perBlock State
	if err := perBlock.Init(key); err != nil {
		t.Fatal(err)
	}
	i := 0
	for ; i+16 <= len(msg); i += 16 {
		if err := perBlock.UpdateBlock(msg[i : i+16]); err != nil {
			t.Fatal(err)
		}
	}
	if err := perBlock.UpdateLast(msg[i:]); err != nil {
		t.Fatal(err)
	}
	got, err := perBlock.Finish()
	if err != nil {
		t.Fatal(err)
	}

	if got != want {
		t.Fatalf("tag mismatch: got %x want %x", got, want)
	}
}

// TestFinishRejectsReuse checks that after Finish, the state refuses
// further Update/Finish calls rather than silently keep accumulating.
func TestFinishRejectsReuse(t *testing.T) {
	var s State
	key := make([]byte, 32)
	if err := s.Init(key); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Finish(); err != nil {
		t.Fatal(err)
	}
	if err := s.UpdateBlock(make([]byte, 16)); err != ErrFinalized {
		t.Fatalf("expected ErrFinalized, got %v", err)
	}
	if _, err := s.Finish(); err != ErrFinalized {
		t.Fatalf("expected ErrFinalized, got %v", err)
	}
}

func TestInvalidKeySize(t *testing.T) {
	var s State
	if err := s.Init(make([]byte, 31)); err != ErrInvalidKeySize {
		t.Fatalf("expected ErrInvalidKeySize, got %v", err)
	}
}

// TestCarryClosure repeatedly folds maximal (all-0xff) blocks, which
// maximize limb carries at every step, and checks the accumulator still
// converges to a fully reduced, in-range value rather than ever overflow
// the three uint64 limbs.
func TestCarryClosure(t *testing.T) {
	key := bytes.Repeat([]byte{0xff}, 32)
	block := bytes.Repeat([]byte{0xff}, 16)

	var s State
	if err := s.Init(key); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 1024; i++ {
		if err := s.UpdateBlock(block); err != nil {
			t.Fatal(err)
		}
	}

	reduced := s.acc
	lastPass(&reduced)

	const p0, p1, p2 = 0xffffffffffb, 0xfffffffffff, 0x3ffffffffff
	if reduced[0] > p0 || reduced[1] > p1 || reduced[2] > p2 {
		t.Fatalf("accumulator not fully reduced: %#x", reduced)
	}

	if _, err := s.Finish(); err != nil {
		t.Fatal(err)
	}
}

// TestAgreesWithReferenceImplementation cross-checks Sum against
// golang.org/x/crypto/poly1305, an independently implemented one-time
// authenticator, across a range of message lengths straddling the 16-byte
// block boundary.
func TestAgreesWithReferenceImplementation(t *testing.T) {
	for _, n := range []int{0, 1, 15, 16, 17, 31, 32, 33, 64, 137, 1024} {
		var key [32]byte
		if err := ints.RandomFillSlice(key[:]); err != nil {
			t.Fatal(err)
		}
		msg := make([]byte, n)
		if err := ints.RandomFillSlice(msg); err != nil {
			t.Fatal(err)
		}

		got, err := Sum(msg, key[:])
		if err != nil {
			t.Fatal(err)
		}

		var want [16]byte
		refpoly1305.Sum(&want, msg, &key)
		if got != want {
			t.Fatalf("length %d: tag disagrees with reference: got %x want %x", n, got, want)
		}
		if !refpoly1305.Verify(&got, msg, &key) {
			t.Fatalf("length %d: reference rejected our tag", n)
		}
	}
}

// TestVerifyRejectsTampering checks a bit-flipped tag is rejected.
func TestVerifyRejectsTampering(t *testing.T) {
	key := make([]byte, 32)
	if err := ints.RandomFillSlice(key); err != nil {
		t.Fatal(err)
	}
	msg := []byte("tamper test message")
	tag, err := Sum(msg, key)
	if err != nil {
		t.Fatal(err)
	}
	tag[0] ^= 0x01
	ok, err := Verify(tag, msg, key)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("Verify accepted a tampered tag")
	}
}
