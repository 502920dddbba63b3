// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 RAIR Protocol
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"bytes"
	"encoding/binary"

	"github.com/bitmark-inc/logger"

	"github.com/rairprotocol/rair721d/fault"
	"github.com/rairprotocol/rair721d/owner"
	"github.com/rairprotocol/rair721d/storage"
)

const uint64ByteSize = 8

// uint64Key - big endian storage key for an index or token
func uint64Key(n uint64) []byte {
	key := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(key, n)
	return key
}

// BalanceOf - count of tokens held by an owner
//
// O(1); fails for the zero identity since an absent owner record and
// the sentinel would be indistinguishable
func BalanceOf(o owner.Owner) (uint64, error) {
	if o.IsZero() {
		return 0, fault.ZeroAddressQuery
	}
	n, _ := storage.Pool.OwnerCount.GetN(o.Bytes())
	return n, nil
}

// TokenOfOwnerByIndex - position-indexed read of an owner's held tokens
//
// O(1); position must be below the owner's balance
func TokenOfOwnerByIndex(o owner.Owner, position uint64) (uint64, error) {
	balance, err := BalanceOf(o)
	if nil != err {
		return 0, err
	}
	if position >= balance {
		return 0, fault.IndexOutOfBounds
	}

	key := append(o.Bytes(), uint64Key(position)...)
	token, found := storage.Pool.OwnerList.GetN(key)
	if !found {
		logger.Panicf("ownership.TokenOfOwnerByIndex: owner list corrupt for: %x position: %d", o.Bytes(), position)
	}
	return token, nil
}

// Record - one entry of an owner's holdings
type Record struct {
	N            uint64  `json:"n,string"`
	Token        uint64  `json:"token"`
	ProductIndex uint64  `json:"productIndex"`
	RangeIndex   *uint64 `json:"rangeIndex,omitempty"`
}

// ListTokensFor - fetch a page of an owner's holdings starting at a
// list position
//
// cost is proportional to count
func ListTokensFor(o owner.Owner, start uint64, count int) ([]Record, error) {
	if o.IsZero() {
		return nil, fault.ZeroAddressQuery
	}

	ownerBytes := o.Bytes()
	prefix := append(ownerBytes, uint64Key(start)...)

	cursor := storage.Pool.OwnerList.NewFetchCursor().Seek(prefix)

	// owner ++ n -> token
	items, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	records := make([]Record, 0, len(items))

loop:
	for _, item := range items {
		n := len(item.Key)
		split := n - uint64ByteSize
		if split <= 0 {
			logger.Panicf("ownership.ListTokensFor: split cannot be <= 0: %d", split)
		}
		itemOwner := item.Key[:split]
		if !bytes.Equal(ownerBytes, itemOwner) {
			break loop
		}

		if uint64ByteSize != len(item.Value) {
			logger.Panicf("ownership.ListTokensFor: owner list corrupt for: %x", item.Key)
		}

		record := Record{
			N:     binary.BigEndian.Uint64(item.Key[split:]),
			Token: binary.BigEndian.Uint64(item.Value),
		}

		productIndex, found := storage.Pool.TokenProduct.GetN(uint64Key(record.Token))
		if !found {
			logger.Panicf("ownership.ListTokensFor: token %d has no product", record.Token)
		}
		record.ProductIndex = productIndex

		if rangeIndex, hasRange := storage.Pool.TokenRange.GetN(uint64Key(record.Token)); hasRange {
			record.RangeIndex = &rangeIndex
		}

		records = append(records, record)
	}

	return records, nil
}
