// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 RAIR Protocol
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog

import (
	"encoding/binary"

	"github.com/rairprotocol/rair721d/fault"
)

const uint64ByteSize = 8

// structure of the packed product record
const (
	startingTokenStart  = 0
	startingTokenFinish = startingTokenStart + uint64ByteSize

	endingTokenStart  = startingTokenFinish
	endingTokenFinish = endingTokenStart + uint64ByteSize

	mintableTokensStart  = endingTokenFinish
	mintableTokensFinish = mintableTokensStart + uint64ByteSize

	// name occupies the remainder of the record
	productNameStart = mintableTokensFinish

	// minimum length of a packed product
	productPackMinLength = productNameStart
)

// structure of the packed range record
const (
	rangeStartStart  = 0
	rangeStartFinish = rangeStartStart + uint64ByteSize

	rangeEndStart  = rangeStartFinish
	rangeEndFinish = rangeEndStart + uint64ByteSize

	rangePackLength = rangeEndFinish
)

// ProductRecord - a contiguous reservation of the token space
//
// EndingToken is the inclusive last token of the reservation; a product
// created with zero copies has EndingToken == StartingToken - 1, an
// inverted empty interval that consumers must tolerate
type ProductRecord struct {
	Name           string `json:"name"`
	StartingToken  uint64 `json:"startingToken"`
	EndingToken    uint64 `json:"endingToken"`
	MintableTokens uint64 `json:"mintableTokens"`
}

// RangeRecord - a sub-window of a product
//
// offsets are relative to the owning product's starting token
type RangeRecord struct {
	RangeStart uint64 `json:"rangeStart"`
	RangeEnd   uint64 `json:"rangeEnd"`
}

// PackedProduct - packed product record for storage
type PackedProduct []byte

// PackedRange - packed range record for storage
type PackedRange []byte

// Pack - pack a product record to a byte slice
func (p ProductRecord) Pack() PackedProduct {
	packed := make(PackedProduct, productPackMinLength, productPackMinLength+len(p.Name))

	binary.BigEndian.PutUint64(packed[startingTokenStart:startingTokenFinish], p.StartingToken)
	binary.BigEndian.PutUint64(packed[endingTokenStart:endingTokenFinish], p.EndingToken)
	binary.BigEndian.PutUint64(packed[mintableTokensStart:mintableTokensFinish], p.MintableTokens)

	return append(packed, p.Name...)
}

// Unpack - unpack a stored product record
func (packed PackedProduct) Unpack() (ProductRecord, error) {
	if len(packed) < productPackMinLength {
		return ProductRecord{}, fault.NotProductRecordPack
	}
	return ProductRecord{
		StartingToken:  binary.BigEndian.Uint64(packed[startingTokenStart:startingTokenFinish]),
		EndingToken:    binary.BigEndian.Uint64(packed[endingTokenStart:endingTokenFinish]),
		MintableTokens: binary.BigEndian.Uint64(packed[mintableTokensStart:mintableTokensFinish]),
		Name:           string(packed[productNameStart:]),
	}, nil
}

// Pack - pack a range record to a byte slice
func (r RangeRecord) Pack() PackedRange {
	packed := make(PackedRange, rangePackLength)

	binary.BigEndian.PutUint64(packed[rangeStartStart:rangeStartFinish], r.RangeStart)
	binary.BigEndian.PutUint64(packed[rangeEndStart:rangeEndFinish], r.RangeEnd)

	return packed
}

// Unpack - unpack a stored range record
func (packed PackedRange) Unpack() (RangeRecord, error) {
	if rangePackLength != len(packed) {
		return RangeRecord{}, fault.NotRangeRecordPack
	}
	return RangeRecord{
		RangeStart: binary.BigEndian.Uint64(packed[rangeStartStart:rangeStartFinish]),
		RangeEnd:   binary.BigEndian.Uint64(packed[rangeEndStart:rangeEndFinish]),
	}, nil
}

// uint64Key - big endian storage key for an index or token
func uint64Key(n uint64) []byte {
	key := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(key, n)
	return key
}
