// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 RAIR Protocol
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mint - the assignment and transfer write path
//
// A token moves from unassigned to owned exactly once, through Mint.
// Mint and Transfer are the only writers of the ownership fact base;
// every reverse index the catalog and ownership packages read (token
// owner, token product, token range, mint ledger, owner list, owner
// balance) is maintained here inside a single storage transaction, so
// a failure leaves no partial index state behind.
//
// The owner list stays dense: Transfer removes a token by swapping the
// list's final entry into the vacated position, which reorders the
// remaining entries but keeps every position below the balance valid.
package mint
