// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 RAIR Protocol
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package catalog - products, ranges and their reverse indices
//
// A product reserves a named, contiguous, non-overlapping block of the
// global token space.  Products form an append-only sequence: the first
// product starts at token zero and every later product starts exactly
// one past the previous product's ending token, so the whole space is
// partitioned with no gaps and no reuse.
//
// Ranges subdivide a product.  A range holds a start and end offset
// relative to its product's starting token; range disjointness is a
// caller responsibility and is not enforced here.
//
// The package also provides the O(1) reverse-index accessors
// (token -> product, token -> range, product + position -> token) that
// the scanning operations in the ownership package are built on.
package catalog
