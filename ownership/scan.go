// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 RAIR Protocol
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"bytes"

	"github.com/rairprotocol/rair721d/catalog"
	"github.com/rairprotocol/rair721d/fault"
	"github.com/rairprotocol/rair721d/owner"
	"github.com/rairprotocol/rair721d/storage"
)

// scan the half-open window [from,to) for any token owned by o
//
// cost: O(to-from) storage reads
func ownsTokenInsideWindow(o owner.Owner, from uint64, to uint64) bool {
	ownerBytes := o.Bytes()
	for token := from; token < to; token += 1 {
		packed := storage.Pool.TokenOwner.Get(uint64Key(token))
		if bytes.Equal(packed, ownerBytes) {
			return true
		}
	}
	return false
}

// OwnsTokenInProduct - does the owner hold any token of the product?
//
// the scan window is [startingToken, endingToken): the product's
// inclusive ending token is passed as the exclusive upper bound, so an
// owner holding only the product's final token reads as false; this
// off-by-one is preserved deliberately - callers depend on the
// observable behaviour
//
// cost: O(mintableTokens) storage reads
func OwnsTokenInProduct(o owner.Owner, productIndex uint64) (bool, error) {
	product, err := catalog.GetProductInfo(productIndex)
	if nil != err {
		return false, err
	}

	return ownsTokenInsideWindow(o, product.StartingToken, product.EndingToken), nil
}

// OwnsTokenInRange - does the owner hold any token of the range?
//
// same exclusive-upper-bound convention as OwnsTokenInProduct: the
// window is [productStart+rangeStart, productStart+rangeEnd)
//
// cost: O(rangeEnd-rangeStart) storage reads
func OwnsTokenInRange(o owner.Owner, rangeIndex uint64) (bool, error) {
	r, productIndex, err := catalog.GetRangeInfo(rangeIndex)
	if nil != err {
		return false, err
	}

	product, err := catalog.GetProductInfo(productIndex)
	if nil != err {
		return false, err
	}

	from := product.StartingToken + r.RangeStart
	to := product.StartingToken + r.RangeEnd
	return ownsTokenInsideWindow(o, from, to), nil
}

// NextSequentialIndex - first unassigned offset within a closed window
//
// scans tokens [startingToken+startOffset, startingToken+endOffset],
// both ends inclusive - a different convention from the ownership
// scanners above - and returns the offset of the first token with no
// owner; fails with fault.NoAvailableSlot when every token in the
// window is assigned
//
// cost: O(endOffset-startOffset) storage reads
func NextSequentialIndex(productIndex uint64, startOffset uint64, endOffset uint64) (uint64, error) {
	product, err := catalog.GetProductInfo(productIndex)
	if nil != err {
		return 0, err
	}

	for offset := startOffset; offset <= endOffset; offset += 1 {
		token := product.StartingToken + offset
		if nil == storage.Pool.TokenOwner.Get(uint64Key(token)) {
			return offset, nil
		}
	}
	return 0, fault.NoAvailableSlot
}

// HasTokenInProduct - does the owner hold a token of the product whose
// offset lies in the closed window [startOffset, endOffset]?
//
// walks the owner's entire held-token list instead of the token
// window, so the cost follows the owner's balance, not the window
// width; both window ends are inclusive
//
// products whose ending token is zero are skipped and always read as
// false - the guard is meant for an empty default record but also
// catches a legitimately created single-token first product; preserved
// as observed
//
// cost: O(BalanceOf(o)) storage reads
func HasTokenInProduct(o owner.Owner, productIndex uint64, startOffset uint64, endOffset uint64) (bool, error) {
	product, err := catalog.GetProductInfo(productIndex)
	if nil != err {
		return false, err
	}

	if 0 == product.EndingToken {
		return false, nil
	}

	balance, err := BalanceOf(o)
	if nil != err {
		return false, err
	}

	from := product.StartingToken + startOffset
	to := product.StartingToken + endOffset

	ownerBytes := o.Bytes()
	for position := uint64(0); position < balance; position += 1 {
		key := append(ownerBytes, uint64Key(position)...)
		token, found := storage.Pool.OwnerList.GetN(key)
		if !found {
			continue
		}

		tokenProduct, found := storage.Pool.TokenProduct.GetN(uint64Key(token))
		if !found || tokenProduct != productIndex {
			continue
		}

		if token >= from && token <= to {
			return true, nil
		}
	}
	return false, nil
}
