// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 RAIR Protocol
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
)

// Transaction - all-or-nothing batch of writes
//
// only one transaction may be in progress at a time so every state
// transition is globally serialized; reads through the transaction
// see its own staged writes
type Transaction interface {
	Begin() error
	Abort()
	Commit() error
	Delete(Handle, []byte)
	Get(Handle, []byte) []byte
	GetN(Handle, []byte) (uint64, bool)
	Has(Handle, []byte) bool
	InUse() bool
	Put(Handle, []byte, []byte)
	PutN(Handle, []byte, uint64)
}

type TransactionData struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionData{
		access: access,
	}
}

func (t *TransactionData) Begin() error {
	return t.access.Begin()
}

func (t *TransactionData) Abort() {
	t.access.Abort()
}

func (t *TransactionData) Commit() error {
	return t.access.Commit()
}

func (t *TransactionData) InUse() bool {
	return t.access.InUse()
}

func (t *TransactionData) Put(h Handle, key []byte, value []byte) {
	h.put(key, value)
}

func (t *TransactionData) PutN(h Handle, key []byte, value uint64) {
	buffer := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(buffer, value)
	h.put(key, buffer)
}

func (t *TransactionData) Delete(h Handle, key []byte) {
	h.remove(key)
}

func (t *TransactionData) Get(h Handle, key []byte) []byte {
	return h.Get(key)
}

func (t *TransactionData) GetN(h Handle, key []byte) (uint64, bool) {
	return h.GetN(key)
}

func (t *TransactionData) Has(h Handle, key []byte) bool {
	return h.Has(key)
}
