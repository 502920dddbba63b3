// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 RAIR Protocol
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rairprotocol/rair721d/catalog"
	"github.com/rairprotocol/rair721d/fault"
)

func TestProductRecordPack(t *testing.T) {

	record := catalog.ProductRecord{
		Name:           "limited edition",
		StartingToken:  100,
		EndingToken:    149,
		MintableTokens: 50,
	}

	unpacked, err := record.Pack().Unpack()
	assert.Nil(t, err, "unpack failed")
	assert.Equal(t, record, unpacked, "record mismatch")
}

func TestProductRecordPackEmptyName(t *testing.T) {

	record := catalog.ProductRecord{
		StartingToken:  0,
		EndingToken:    9,
		MintableTokens: 10,
	}

	unpacked, err := record.Pack().Unpack()
	assert.Nil(t, err, "unpack failed")
	assert.Equal(t, record, unpacked, "record mismatch")
}

func TestProductRecordUnpackTruncated(t *testing.T) {

	packed := catalog.ProductRecord{Name: "x", MintableTokens: 1}.Pack()

	for n := 0; n < 24; n += 1 {
		_, err := catalog.PackedProduct(packed[:n]).Unpack()
		assert.Equal(t, fault.NotProductRecordPack, err, "wrong error for length: %d", n)
	}
}

func TestRangeRecordPack(t *testing.T) {

	record := catalog.RangeRecord{
		RangeStart: 3,
		RangeEnd:   17,
	}

	unpacked, err := record.Pack().Unpack()
	assert.Nil(t, err, "unpack failed")
	assert.Equal(t, record, unpacked, "record mismatch")
}

func TestRangeRecordUnpackWrongSize(t *testing.T) {

	packed := catalog.RangeRecord{RangeStart: 1, RangeEnd: 2}.Pack()

	_, err := catalog.PackedRange(packed[:15]).Unpack()
	assert.Equal(t, fault.NotRangeRecordPack, err, "wrong error")

	_, err = catalog.PackedRange(append([]byte{}, append(packed, 0)...)).Unpack()
	assert.Equal(t, fault.NotRangeRecordPack, err, "wrong error")
}
