// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 RAIR Protocol
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog

import (
	"encoding/binary"

	"github.com/rairprotocol/rair721d/capability"
	"github.com/rairprotocol/rair721d/fault"
	"github.com/rairprotocol/rair721d/messagebus"
	"github.com/rairprotocol/rair721d/owner"
	"github.com/rairprotocol/rair721d/storage"
)

// ProductCreated - notification sent once per successful CreateProduct,
// in creation order
type ProductCreated struct {
	ProductIndex  uint64 `json:"productIndex"`
	Name          string `json:"name"`
	StartingToken uint64 `json:"startingToken"`
	Length        uint64 `json:"length"`
}

// CreateProduct - reserve a contiguous block of the token space
//
// requires the CREATOR capability; the new product starts at zero for
// an empty catalog, otherwise one past the previous product's ending
// token, and reserves exactly copies tokens
//
// copies == 0 is permitted and yields an inverted empty reservation
// with EndingToken == StartingToken - 1
//
// a failed call leaves the product sequence unmodified and sends no
// notification
func CreateProduct(creator owner.Owner, name string, copies uint64) (uint64, error) {

	err := capability.EnsureCreator(creator)
	if nil != err {
		return 0, err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return 0, err
	}

	productIndex := uint64(0)
	startingToken := uint64(0)

	last, found := storage.Pool.Products.LastElement()
	if found {
		previous, err := PackedProduct(last.Value).Unpack()
		if nil != err {
			trx.Abort()
			return 0, err
		}
		productIndex = binary.BigEndian.Uint64(last.Key) + 1
		startingToken = previous.EndingToken + 1
	}

	record := ProductRecord{
		Name:           name,
		StartingToken:  startingToken,
		EndingToken:    startingToken + copies - 1,
		MintableTokens: copies,
	}

	trx.Put(storage.Pool.Products, uint64Key(productIndex), record.Pack())

	err = trx.Commit()
	if nil != err {
		trx.Abort()
		return 0, err
	}

	globalData.log.Infof("created product: %d %q start: %d copies: %d", productIndex, name, startingToken, copies)

	messagebus.Send("catalog", ProductCreated{
		ProductIndex:  productIndex,
		Name:          name,
		StartingToken: startingToken,
		Length:        copies,
	})

	return productIndex, nil
}

// ProductCount - number of created products
func ProductCount() uint64 {
	last, found := storage.Pool.Products.LastElement()
	if !found {
		return 0
	}
	return binary.BigEndian.Uint64(last.Key) + 1
}

// GetProductInfo - fetch a product record
func GetProductInfo(productIndex uint64) (ProductRecord, error) {
	err := ProductExists(productIndex)
	if nil != err {
		return ProductRecord{}, err
	}

	packed := storage.Pool.Products.Get(uint64Key(productIndex))
	if nil == packed {
		return ProductRecord{}, fault.CollectionNotFound
	}
	return PackedProduct(packed).Unpack()
}

// MintedTokensInProduct - length of the product's mint ledger
//
// deliberately unguarded: an out-of-range product index reads as zero
// rather than failing
func MintedTokensInProduct(productIndex uint64) uint64 {
	n, _ := storage.Pool.MintedCount.GetN(uint64Key(productIndex))
	return n
}
