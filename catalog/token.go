// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 RAIR Protocol
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog

import (
	"github.com/rairprotocol/rair721d/fault"
	"github.com/rairprotocol/rair721d/storage"
)

// TokenByProduct - position-indexed read of the product's mint ledger
//
// O(1); position counts tokens in the order they were minted within
// the product
func TokenByProduct(productIndex uint64, position uint64) (uint64, error) {
	err := ProductExists(productIndex)
	if nil != err {
		return 0, err
	}

	key := append(uint64Key(productIndex), uint64Key(position)...)
	token, found := storage.Pool.MintLedger.GetN(key)
	if !found {
		return 0, fault.TokenNotFound
	}
	return token, nil
}

// ProductToToken - token at an offset within a product
//
// O(1); does not validate that the resulting token has been assigned
func ProductToToken(productIndex uint64, offset uint64) (uint64, error) {
	product, err := GetProductInfo(productIndex)
	if nil != err {
		return 0, err
	}
	return product.StartingToken + offset, nil
}

// TokenToProductOffset - offset of a token relative to its product's
// starting token
//
// O(1); the token must be assigned
func TokenToProductOffset(token uint64) (uint64, error) {
	err := TokenExists(token)
	if nil != err {
		return 0, err
	}

	productIndex, found := storage.Pool.TokenProduct.GetN(uint64Key(token))
	if !found {
		return 0, fault.TokenNotFound
	}

	product, err := GetProductInfo(productIndex)
	if nil != err {
		return 0, err
	}

	return token - product.StartingToken, nil
}

// TokenToProduct - reverse-index read: owning product and range of a token
//
// O(1); hasRange is false for a token minted outside any range
func TokenToProduct(token uint64) (productIndex uint64, rangeIndex uint64, hasRange bool, err error) {
	err = TokenExists(token)
	if nil != err {
		return 0, 0, false, err
	}

	productIndex, found := storage.Pool.TokenProduct.GetN(uint64Key(token))
	if !found {
		return 0, 0, false, fault.TokenNotFound
	}

	rangeIndex, hasRange = storage.Pool.TokenRange.GetN(uint64Key(token))
	return productIndex, rangeIndex, hasRange, nil
}
