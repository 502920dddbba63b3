// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 RAIR Protocol
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mint_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/rairprotocol/rair721d/capability"
	"github.com/rairprotocol/rair721d/catalog"
	"github.com/rairprotocol/rair721d/messagebus"
	"github.com/rairprotocol/rair721d/mint"
	"github.com/rairprotocol/rair721d/owner"
	"github.com/rairprotocol/rair721d/storage"
)

// test database file
const (
	databaseFileName = "test"
	logDirectory     = "log"
)

// identities used by the tests
var (
	creator = makeOwner(0x01)
	alice   = makeOwner(0xa1)
	bob     = makeOwner(0xb0)
)

func makeOwner(fill byte) owner.Owner {
	var o owner.Owner
	for i := 0; i < len(o); i += 1 {
		o[i] = fill
	}
	return o
}

// remove all files created by test
func removeFiles() {
	os.RemoveAll(databaseFileName + "-index.leveldb")
	os.RemoveAll(logDirectory)
}

// configure for testing
func setup(t *testing.T) {
	removeFiles()

	_ = os.Mkdir(logDirectory, 0700)
	logging := logger.Configuration{
		Directory: logDirectory,
		File:      "test.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	err = capability.Initialise([]owner.Owner{creator})
	if nil != err {
		t.Fatalf("capability initialise error: %s", err)
	}

	err = catalog.Initialise()
	if nil != err {
		t.Fatalf("catalog initialise error: %s", err)
	}

	err = mint.Initialise()
	if nil != err {
		t.Fatalf("mint initialise error: %s", err)
	}

	messagebus.Drain()
}

// post test cleanup
func teardown(t *testing.T) {
	messagebus.Drain()
	_ = mint.Finalise()
	_ = catalog.Finalise()
	_ = capability.Finalise()
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

// create a product owned by the test creator
func mustCreateProduct(t *testing.T, name string, copies uint64) uint64 {
	productIndex, err := catalog.CreateProduct(creator, name, copies)
	if nil != err {
		t.Fatalf("create product error: %s", err)
	}
	messagebus.Drain()
	return productIndex
}
