// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 RAIR Protocol
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package owner_test

import (
	"crypto/rand"
	"testing"

	"golang.org/x/crypto/ed25519"

	"github.com/rairprotocol/rair721d/fault"
	"github.com/rairprotocol/rair721d/owner"
)

// make a random owner from a fresh key pair
func makeOwner(t *testing.T) owner.Owner {
	publicKey, _, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		t.Fatalf("key generation error: %s", err)
	}
	o, err := owner.FromBytes(publicKey)
	if nil != err {
		t.Fatalf("from bytes error: %s", err)
	}
	return o
}

func TestRoundTrip(t *testing.T) {
	o := makeOwner(t)

	text := o.String()
	decoded, err := owner.FromBase58(text)
	if nil != err {
		t.Fatalf("decode error: %s", err)
	}
	if decoded != o {
		t.Errorf("round trip mismatch, got: %v  expected: %v", decoded, o)
	}
}

func TestChecksumRejection(t *testing.T) {
	o := makeOwner(t)

	text := o.String()

	// damage the last character, avoiding a same-character overwrite
	last := text[len(text)-1]
	replacement := byte('2')
	if last == replacement {
		replacement = '3'
	}
	damaged := text[:len(text)-1] + string(replacement)

	_, err := owner.FromBase58(damaged)
	if nil == err {
		t.Fatal("unexpected success decoding damaged text")
	}
	if fault.ChecksumMismatch != err && fault.CannotDecodeOwner != err {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestInvalidLength(t *testing.T) {
	_, err := owner.FromBytes([]byte{1, 2, 3})
	if fault.InvalidKeyLength != err {
		t.Errorf("unexpected error: %v  expected: %v", err, fault.InvalidKeyLength)
	}
}

func TestZeroSentinel(t *testing.T) {
	if !owner.Nobody.IsZero() {
		t.Error("Nobody must be zero")
	}

	o := makeOwner(t)
	if o.IsZero() {
		t.Error("real owner reported as zero")
	}

	// a zero identity still has a text round trip
	decoded, err := owner.FromBase58(owner.Nobody.String())
	if nil != err {
		t.Fatalf("decode error: %s", err)
	}
	if !decoded.IsZero() {
		t.Error("decoded sentinel is not zero")
	}
}
