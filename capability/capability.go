// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 RAIR Protocol
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package capability - privileged operation gating
//
// Product and range creation require the CREATOR capability.  The
// capability is a static set of owner identities loaded from the
// configuration; every other operation in the system is an
// unrestricted read.
package capability

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/rairprotocol/rair721d/fault"
	"github.com/rairprotocol/rair721d/owner"
)

// globals
var globalData struct {
	sync.RWMutex
	log      *logger.L
	creators map[owner.Owner]struct{}

	// set once during initialise
	initialised bool
}

// Initialise - load the CREATOR capability set
func Initialise(creators []owner.Owner) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("capability")
	globalData.log.Info("starting…")

	globalData.creators = make(map[owner.Owner]struct{}, len(creators))
	for _, c := range creators {
		if c.IsZero() {
			return fault.ZeroAddressQuery
		}
		globalData.creators[c] = struct{}{}
	}
	globalData.log.Infof("creator accounts: %d", len(globalData.creators))

	globalData.initialised = true
	return nil
}

// Finalise - drop the capability set
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.creators = nil
	globalData.initialised = false
	return nil
}

// EnsureCreator - check an identity holds the CREATOR capability
func EnsureCreator(o owner.Owner) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	if _, ok := globalData.creators[o]; !ok {
		return fault.Unauthorized
	}
	return nil
}
