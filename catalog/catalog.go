// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 RAIR Protocol
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/rairprotocol/rair721d/fault"
	"github.com/rairprotocol/rair721d/owner"
	"github.com/rairprotocol/rair721d/storage"
)

// globals
var globalData struct {
	sync.RWMutex
	log *logger.L

	// set once during initialise
	initialised bool
}

// Initialise - set up the catalog
func Initialise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("catalog")
	globalData.log.Info("starting…")

	globalData.initialised = true
	return nil
}

// Finalise - shut down the catalog
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.initialised = false
	return nil
}

// ProductExists - guard: the product index refers to a created product
func ProductExists(productIndex uint64) error {
	if !storage.Pool.Products.Has(uint64Key(productIndex)) {
		return fault.CollectionNotFound
	}
	return nil
}

// RangeExists - guard: the range index refers to a created range
func RangeExists(rangeIndex uint64) error {
	if !storage.Pool.Ranges.Has(uint64Key(rangeIndex)) {
		return fault.RangeNotFound
	}
	return nil
}

// TokenExists - guard: the token has been assigned a non-sentinel owner
func TokenExists(token uint64) error {
	packed := storage.Pool.TokenOwner.Get(uint64Key(token))
	if nil == packed {
		return fault.TokenNotFound
	}
	o, err := owner.FromBytes(packed)
	if nil != err || o.IsZero() {
		return fault.TokenNotFound
	}
	return nil
}
