// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 RAIR Protocol
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rairprotocol/rair721d/fault"
	"github.com/rairprotocol/rair721d/storage"
)

// a transaction must read its own staged writes
func TestTransactionReadsOwnWrites(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	trx, err := storage.NewDBTransaction()
	assert.NoError(t, err, "begin")

	trx.Put(p, []byte("staged"), []byte("value"))

	assert.Equal(t, []byte("value"), trx.Get(p, []byte("staged")), "staged value not visible")
	assert.True(t, trx.Has(p, []byte("staged")), "staged key not visible")

	trx.Delete(p, []byte("staged"))
	assert.Nil(t, trx.Get(p, []byte("staged")), "staged delete not visible")
	assert.False(t, trx.Has(p, []byte("staged")), "staged delete not visible via Has")

	trx.Abort()
}

// an aborted transaction must leave no trace
func TestTransactionAbort(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	trx, err := storage.NewDBTransaction()
	assert.NoError(t, err, "begin")
	trx.Put(p, []byte("discard"), []byte("value"))
	trx.Abort()

	assert.Nil(t, p.Get([]byte("discard")), "aborted write leaked")

	// pool must be usable again after abort
	trx, err = storage.NewDBTransaction()
	assert.NoError(t, err, "begin after abort")
	trx.Put(p, []byte("keep"), []byte("value"))
	assert.NoError(t, trx.Commit(), "commit")
	assert.Equal(t, []byte("value"), p.Get([]byte("keep")))
}

// only one transaction at a time
func TestTransactionExclusion(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, err := storage.NewDBTransaction()
	assert.NoError(t, err, "begin")
	assert.True(t, storage.IsTransactionInUse())

	_, err = storage.NewDBTransaction()
	assert.Equal(t, fault.TransactionInUse, err, "second begin must fail")

	trx.Abort()
	assert.False(t, storage.IsTransactionInUse())
}
