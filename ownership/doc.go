// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 RAIR Protocol
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownership - owner-index reads and the scanning queries
//
// Everything here is read-only.  The O(1) operations (balance,
// position-indexed enumeration) are safe anywhere; the scanning
// operations cost time proportional to their window or set size and
// carry that bound in their doc comment.  Callers are expected to
// self-limit scan width - composing an unbounded scan into a path that
// also writes state risks blowing whatever computation budget the
// caller operates under, so keep scans on read-only query paths.
//
// Interval conventions are deliberately asymmetric and must not be
// unified:
//
//   - OwnsTokenInProduct / OwnsTokenInRange scan a half-open window
//     [from,to) built by passing the product's inclusive ending token
//     as the exclusive upper bound, so the final token of a product is
//     never seen by these two queries
//   - NextSequentialIndex and HasTokenInProduct use closed windows
//     [from,to], both ends inclusive
//
// Unifying these would silently change observable results; the
// asymmetry is part of the contract.
package ownership
