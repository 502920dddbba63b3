// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 RAIR Protocol
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package catalog_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/rairprotocol/rair721d/capability"
	"github.com/rairprotocol/rair721d/catalog"
	"github.com/rairprotocol/rair721d/messagebus"
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
	creator  = makeOwner(0x01)
	stranger = makeOwner(0x02)
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

	messagebus.Drain()
}

// post test cleanup
func teardown(t *testing.T) {
	messagebus.Drain()
	_ = catalog.Finalise()
	_ = capability.Finalise()
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}
