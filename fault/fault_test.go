// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 RAIR Protocol
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/rairprotocol/rair721d/fault"
)

var (
	errExistsOne   = fault.ExistsError("exists one")
	errInvalidOne  = fault.InvalidError("invalid one")
	errLengthOne   = fault.LengthError("length one")
	errNotFoundOne = fault.NotFoundError("not found one")
	errProcessOne  = fault.ProcessError("process one")
	errRecordOne   = fault.RecordError("record one")
)

// test that the various error classes can be distinguished
func TestClassification(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		length   bool
		notFound bool
		process  bool
		record   bool
	}{
		{errExistsOne, true, false, false, false, false, false},
		{errInvalidOne, false, true, false, false, false, false},
		{errLengthOne, false, false, true, false, false, false},
		{errNotFoundOne, false, false, false, true, false, false},
		{errProcessOne, false, false, false, false, true, false},
		{errRecordOne, false, false, false, false, false, true},
		{fault.CollectionNotFound, false, false, false, true, false, false},
		{fault.RangeNotFound, false, false, false, true, false, false},
		{fault.TokenNotFound, false, false, false, true, false, false},
		{fault.NoAvailableSlot, false, false, false, true, false, false},
		{fault.ZeroAddressQuery, false, true, false, false, false, false},
		{fault.IndexOutOfBounds, false, true, false, false, false, false},
		{fault.Unauthorized, false, true, false, false, false, false},
		{fault.TokenAlreadyMinted, true, false, false, false, false, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLength(err) != e.length {
			t.Errorf("%d: expected 'length' == %v for err = %v", i, e.length, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrRecord(err) != e.record {
			t.Errorf("%d: expected 'record' == %v for err = %v", i, e.record, err)
		}
	}
}

// distinct instances must not compare equal even with identical classes
func TestComparison(t *testing.T) {
	if fault.CollectionNotFound == fault.RangeNotFound {
		t.Errorf("unexpected equality: %v vs %v", fault.CollectionNotFound, fault.RangeNotFound)
	}
	var err error = fault.TokenNotFound
	if err != fault.TokenNotFound {
		t.Errorf("instance comparison failed for: %v", err)
	}
}
