// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 RAIR Protocol
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/logger"

	"github.com/rairprotocol/rair721d/fault"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Products        *PoolHandle `prefix:"P"`
	MintLedger      *PoolHandle `prefix:"M"`
	MintedCount     *PoolHandle `prefix:"C"`
	Ranges          *PoolHandle `prefix:"R"`
	RangeProduct    *PoolHandle `prefix:"G"`
	TokenProduct    *PoolHandle `prefix:"T"`
	TokenRange      *PoolHandle `prefix:"E"`
	TokenOwner      *PoolHandle `prefix:"O"`
	OwnerCount      *PoolHandle `prefix:"N"`
	OwnerList       *PoolHandle `prefix:"L"`
	OwnerTokenIndex *PoolHandle `prefix:"D"`
	TestData        *PoolHandle `prefix:"Z"`
}

// Pool - the set of exported pools
var Pool pools

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

const (
	currentIndexDBVersion = 0x100
	uint64ByteSize        = 8
)

// holds the database handle
var poolData struct {
	sync.RWMutex
	dbIndex *leveldb.DB
	trx     Transaction
	cache   Cache
}

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Initialise - open up the database connection
//
// this must be called before any pool is accessed
func Initialise(database string, readOnly bool) error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil != poolData.dbIndex {
		return fault.AlreadyInitialised
	}

	ok := false
	defer func() {
		if !ok {
			dbClose()
		}
	}()

	indexDatabase := database + "-index.leveldb"

	db, indexVersion, err := getDB(indexDatabase, readOnly)
	if nil != err {
		return err
	}
	poolData.dbIndex = db

	// ensure no database downgrade
	if indexVersion > currentIndexDBVersion {
		logger.Criticalf("index database version: %d > current version: %d", indexVersion, currentIndexDBVersion)
		return fmt.Errorf("index database version: %d > current version: %d", indexVersion, currentIndexDBVersion)
	}

	if 0 == indexVersion && !readOnly {
		// database was empty so tag as current version
		err = putVersion(poolData.dbIndex, currentIndexDBVersion)
		if nil != err {
			return err
		}
	}

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	indexBatch := new(leveldb.Batch)
	poolData.cache = newCache()
	indexDBAccess := newDA(poolData.dbIndex, indexBatch, poolData.cache)
	poolData.trx = newTransaction(indexDBAccess)

	// scan each field
	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix:     prefix,
			limit:      limit,
			dataAccess: indexDBAccess,
		}

		poolValue.Field(i).Set(reflect.ValueOf(p))
	}

	ok = true // prevent db close
	return nil
}

func dbClose() {
	if nil != poolData.dbIndex {
		poolData.dbIndex.Close()
		poolData.dbIndex = nil
	}
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	dbClose()
	poolData.Unlock()
}

// return:
//   database handle
//   version number
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, 0, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}

// NewDBTransaction - begin a new transaction
//
// fails with fault.TransactionInUse if another transaction is in
// progress; the caller must Commit or Abort the result
func NewDBTransaction() (Transaction, error) {
	err := poolData.trx.Begin()
	if nil != err {
		return nil, err
	}
	return poolData.trx, nil
}

// IsTransactionInUse - check if a transaction is currently in progress
func IsTransactionInUse() bool {
	return poolData.trx.InUse()
}
