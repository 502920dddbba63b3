// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 RAIR Protocol
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog

import (
	"encoding/binary"

	"github.com/rairprotocol/rair721d/capability"
	"github.com/rairprotocol/rair721d/fault"
	"github.com/rairprotocol/rair721d/owner"
	"github.com/rairprotocol/rair721d/storage"
)

// CreateRange - append a sub-window to an existing product
//
// requires the CREATOR capability; offsets are relative to the
// product's starting token and must satisfy
// rangeStart <= rangeEnd <= mintable tokens
//
// overlapping ranges are not rejected - disjointness is the caller's
// responsibility
func CreateRange(creator owner.Owner, productIndex uint64, rangeStart uint64, rangeEnd uint64) (uint64, error) {

	err := capability.EnsureCreator(creator)
	if nil != err {
		return 0, err
	}

	product, err := GetProductInfo(productIndex)
	if nil != err {
		return 0, err
	}

	if rangeStart > rangeEnd || rangeEnd > product.MintableTokens {
		return 0, fault.InvalidOffsetWindow
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return 0, err
	}

	rangeIndex := uint64(0)
	last, found := storage.Pool.Ranges.LastElement()
	if found {
		rangeIndex = binary.BigEndian.Uint64(last.Key) + 1
	}

	record := RangeRecord{
		RangeStart: rangeStart,
		RangeEnd:   rangeEnd,
	}

	trx.Put(storage.Pool.Ranges, uint64Key(rangeIndex), record.Pack())
	trx.PutN(storage.Pool.RangeProduct, uint64Key(rangeIndex), productIndex)

	err = trx.Commit()
	if nil != err {
		trx.Abort()
		return 0, err
	}

	globalData.log.Infof("created range: %d product: %d window: [%d,%d]", rangeIndex, productIndex, rangeStart, rangeEnd)

	return rangeIndex, nil
}

// RangeCount - number of created ranges
func RangeCount() uint64 {
	last, found := storage.Pool.Ranges.LastElement()
	if !found {
		return 0
	}
	return binary.BigEndian.Uint64(last.Key) + 1
}

// GetRangeInfo - fetch a range record and its owning product
func GetRangeInfo(rangeIndex uint64) (RangeRecord, uint64, error) {
	err := RangeExists(rangeIndex)
	if nil != err {
		return RangeRecord{}, 0, err
	}

	packed := storage.Pool.Ranges.Get(uint64Key(rangeIndex))
	if nil == packed {
		return RangeRecord{}, 0, fault.RangeNotFound
	}
	record, err := PackedRange(packed).Unpack()
	if nil != err {
		return RangeRecord{}, 0, err
	}

	productIndex, found := storage.Pool.RangeProduct.GetN(uint64Key(rangeIndex))
	if !found {
		return RangeRecord{}, 0, fault.RangeNotFound
	}

	return record, productIndex, nil
}
