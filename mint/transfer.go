// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 RAIR Protocol
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mint

import (
	"bytes"

	"github.com/bitmark-inc/logger"

	"github.com/rairprotocol/rair721d/catalog"
	"github.com/rairprotocol/rair721d/fault"
	"github.com/rairprotocol/rair721d/messagebus"
	"github.com/rairprotocol/rair721d/owner"
	"github.com/rairprotocol/rair721d/storage"
)

// Transfer - move a minted token between owners
//
// the current owner must actually hold the token; the mint ledger and
// the token's product/range facts are immutable history and remain
// untouched, only the per-owner indices and the token's owner record
// change
func Transfer(token uint64, currentOwner owner.Owner, newOwner owner.Owner) error {

	if currentOwner.IsZero() || newOwner.IsZero() {
		return fault.ZeroAddressQuery
	}

	err := catalog.TokenExists(token)
	if nil != err {
		return err
	}

	tokenKey := uint64Key(token)

	stored := storage.Pool.TokenOwner.Get(tokenKey)
	if !bytes.Equal(stored, currentOwner.Bytes()) {
		return fault.NotTokenOwner
	}

	// self transfer changes nothing
	if currentOwner == newOwner {
		return nil
	}

	position, found := storage.Pool.OwnerTokenIndex.GetN(append(currentOwner.Bytes(), tokenKey...))
	if !found {
		logger.Panicf("mint.Transfer: owner token index corrupt for: %x token: %d", currentOwner.Bytes(), token)
	}

	balance, _ := storage.Pool.OwnerCount.GetN(currentOwner.Bytes())
	if 0 == balance {
		logger.Panicf("mint.Transfer: owner count corrupt for: %x", currentOwner.Bytes())
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	// keep the current owner's list dense: move the final entry into
	// the vacated position, then drop the final slot
	lastPosition := balance - 1
	if position != lastPosition {
		lastKey := append(currentOwner.Bytes(), uint64Key(lastPosition)...)
		lastToken, found := storage.Pool.OwnerList.GetN(lastKey)
		if !found {
			trx.Abort()
			logger.Panicf("mint.Transfer: owner list corrupt for: %x position: %d", currentOwner.Bytes(), lastPosition)
		}
		trx.PutN(storage.Pool.OwnerList, append(currentOwner.Bytes(), uint64Key(position)...), lastToken)
		trx.PutN(storage.Pool.OwnerTokenIndex, append(currentOwner.Bytes(), uint64Key(lastToken)...), position)
	}
	trx.Delete(storage.Pool.OwnerList, append(currentOwner.Bytes(), uint64Key(lastPosition)...))
	trx.Delete(storage.Pool.OwnerTokenIndex, append(currentOwner.Bytes(), tokenKey...))
	trx.PutN(storage.Pool.OwnerCount, currentOwner.Bytes(), lastPosition)

	// append to the new owner's list
	newBalance, _ := storage.Pool.OwnerCount.GetN(newOwner.Bytes())
	trx.PutN(storage.Pool.OwnerList, append(newOwner.Bytes(), uint64Key(newBalance)...), token)
	trx.PutN(storage.Pool.OwnerTokenIndex, append(newOwner.Bytes(), tokenKey...), newBalance)
	trx.PutN(storage.Pool.OwnerCount, newOwner.Bytes(), newBalance+1)

	// rewrite the owner fact
	trx.Put(storage.Pool.TokenOwner, tokenKey, newOwner.Bytes())

	err = trx.Commit()
	if nil != err {
		trx.Abort()
		return err
	}

	globalData.log.Infof("transferred token: %d from: %s to: %s", token, currentOwner, newOwner)

	messagebus.Send("mint", TokenTransferred{
		Token: token,
		From:  currentOwner,
		To:    newOwner,
	})

	return nil
}
