// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 RAIR Protocol
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package owner - owner identities
//
// An owner is identified by an ED25519 public key.  The all-zero
// identity is reserved as the "no owner" sentinel: a token whose owner
// record is absent or zero is unassigned.
//
// The text form is Base58 of the key bytes followed by a four byte
// SHA3-256 checksum, so a mistyped identity is rejected rather than
// silently querying an empty index.
package owner

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/rairprotocol/rair721d/fault"
)

// IdentityLength - byte size of an owner identity
const IdentityLength = ed25519.PublicKeySize

// checksum appended to the text form
const checksumLength = 4

// Owner - an owner identity
type Owner [IdentityLength]byte

// Nobody - the unassigned sentinel
var Nobody Owner

// IsZero - true for the unassigned sentinel
func (o Owner) IsZero() bool {
	return o == Nobody
}

// Bytes - key bytes as a slice
func (o Owner) Bytes() []byte {
	return o[:]
}

// String - Base58 text form with checksum
func (o Owner) String() string {
	checksum := sha3.Sum256(o[:])
	buffer := make([]byte, 0, IdentityLength+checksumLength)
	buffer = append(buffer, o[:]...)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - convert an owner to text
func (o Owner) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText - convert text to an owner
func (o *Owner) UnmarshalText(s []byte) error {
	a, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	copy(o[:], a[:])
	return nil
}

// FromBase58 - decode the checksummed text form
func FromBase58(s string) (Owner, error) {
	decoded, err := base58.Decode(s)
	if nil != err {
		return Nobody, fault.CannotDecodeOwner
	}
	if IdentityLength+checksumLength != len(decoded) {
		return Nobody, fault.InvalidKeyLength
	}

	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return Nobody, fault.ChecksumMismatch
	}

	var o Owner
	copy(o[:], decoded[:checksumStart])
	return o, nil
}

// FromBytes - convert raw key bytes to an owner
func FromBytes(buffer []byte) (Owner, error) {
	if IdentityLength != len(buffer) {
		return Nobody, fault.InvalidKeyLength
	}
	var o Owner
	copy(o[:], buffer)
	return o, nil
}
