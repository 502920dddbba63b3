// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 RAIR Protocol
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mint

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/rairprotocol/rair721d/catalog"
	"github.com/rairprotocol/rair721d/fault"
	"github.com/rairprotocol/rair721d/messagebus"
	"github.com/rairprotocol/rair721d/owner"
	"github.com/rairprotocol/rair721d/storage"
)

const uint64ByteSize = 8

// globals
var globalData struct {
	sync.RWMutex
	log *logger.L

	// set once during initialise
	initialised bool
}

// TokenMinted - notification of a successful mint
type TokenMinted struct {
	Token        uint64      `json:"token"`
	ProductIndex uint64      `json:"productIndex"`
	Owner        owner.Owner `json:"owner"`
}

// TokenTransferred - notification of a successful transfer
type TokenTransferred struct {
	Token uint64      `json:"token"`
	From  owner.Owner `json:"from"`
	To    owner.Owner `json:"to"`
}

// Initialise - set up the minting system
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("mint")
	globalData.log.Info("starting…")

	globalData.initialised = true
	return nil
}

// Finalise - shut down the minting system
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Flush()
	globalData.initialised = false
	return nil
}

// uint64Key - big endian storage key for an index or token
func uint64Key(n uint64) []byte {
	key := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(key, n)
	return key
}

// Mint - assign an unassigned token of a product to an owner
//
// the token is the product's starting token plus offset; the offset
// must lie inside the product's reservation and the token must not
// already have an owner
func Mint(productIndex uint64, offset uint64, newOwner owner.Owner) (uint64, error) {
	return mint(productIndex, offset, 0, false, newOwner)
}

// MintInRange - assign a token and record its range membership
//
// the range determines the product; the offset remains relative to the
// product's starting token and must lie inside the range's window
func MintInRange(rangeIndex uint64, offset uint64, newOwner owner.Owner) (uint64, error) {
	r, productIndex, err := catalog.GetRangeInfo(rangeIndex)
	if nil != err {
		return 0, err
	}

	if offset < r.RangeStart || offset > r.RangeEnd {
		return 0, fault.InvalidOffsetWindow
	}

	return mint(productIndex, offset, rangeIndex, true, newOwner)
}

func mint(productIndex uint64, offset uint64, rangeIndex uint64, hasRange bool, newOwner owner.Owner) (uint64, error) {

	if newOwner.IsZero() {
		return 0, fault.ZeroAddressQuery
	}

	product, err := catalog.GetProductInfo(productIndex)
	if nil != err {
		return 0, err
	}

	if offset >= product.MintableTokens {
		return 0, fault.TokenOutOfProduct
	}

	token := product.StartingToken + offset
	tokenKey := uint64Key(token)

	if storage.Pool.TokenOwner.Has(tokenKey) {
		return 0, fault.TokenAlreadyMinted
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return 0, err
	}

	// ledger position and owner list position before this mint
	minted, _ := storage.Pool.MintedCount.GetN(uint64Key(productIndex))
	balance, _ := storage.Pool.OwnerCount.GetN(newOwner.Bytes())

	// token facts, set once
	trx.Put(storage.Pool.TokenOwner, tokenKey, newOwner.Bytes())
	trx.PutN(storage.Pool.TokenProduct, tokenKey, productIndex)
	if hasRange {
		trx.PutN(storage.Pool.TokenRange, tokenKey, rangeIndex)
	}

	// append to the product mint ledger
	ledgerKey := append(uint64Key(productIndex), uint64Key(minted)...)
	trx.PutN(storage.Pool.MintLedger, ledgerKey, token)
	trx.PutN(storage.Pool.MintedCount, uint64Key(productIndex), minted+1)

	// append to the owner list
	listKey := append(newOwner.Bytes(), uint64Key(balance)...)
	trx.PutN(storage.Pool.OwnerList, listKey, token)
	trx.PutN(storage.Pool.OwnerTokenIndex, append(newOwner.Bytes(), tokenKey...), balance)
	trx.PutN(storage.Pool.OwnerCount, newOwner.Bytes(), balance+1)

	err = trx.Commit()
	if nil != err {
		trx.Abort()
		return 0, err
	}

	globalData.log.Infof("minted token: %d product: %d offset: %d owner: %s", token, productIndex, offset, newOwner)

	messagebus.Send("mint", TokenMinted{
		Token:        token,
		ProductIndex: productIndex,
		Owner:        newOwner,
	})

	return token, nil
}
