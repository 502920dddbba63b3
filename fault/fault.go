// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 RAIR Protocol
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised     = ExistsError("already initialised")
	CannotDecodeOwner      = RecordError("cannot decode owner")
	ChecksumMismatch       = ProcessError("checksum mismatch")
	CollectionNotFound     = NotFoundError("collection not found")
	IndexOutOfBounds       = InvalidError("index out of bounds")
	InvalidCount           = InvalidError("invalid count")
	InvalidCursor          = InvalidError("invalid cursor")
	InvalidKeyLength       = LengthError("invalid key length")
	InvalidOffsetWindow    = InvalidError("invalid offset window")
	MissingCreatorAccounts = InvalidError("missing creator accounts")
	NoAvailableSlot        = NotFoundError("no available slot")
	NotInitialised         = ProcessError("not initialised")
	NotProductRecordPack   = RecordError("not product record pack")
	NotPublicKey           = RecordError("not public key")
	NotRangeRecordPack     = RecordError("not range record pack")
	NotTokenOwner          = InvalidError("not token owner")
	RangeNotFound          = NotFoundError("range not found")
	TokenAlreadyMinted     = ExistsError("token already minted")
	TokenNotFound          = NotFoundError("token not found")
	TokenOutOfProduct      = InvalidError("token out of product")
	TransactionInUse       = ProcessError("transaction already in use")
	Unauthorized           = InvalidError("unauthorized")
	ZeroAddressQuery       = InvalidError("zero address query")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
