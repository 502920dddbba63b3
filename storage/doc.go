// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 RAIR Protocol
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// maintain the on-disk index store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++            = concatenation of byte data
// 3. product index = big endian uint64 (8 bytes)
// 4. range index   = big endian uint64 (8 bytes)
// 5. token         = big endian uint64 (8 bytes)
// 6. count         = successive index value as big endian uint64 (8 bytes)
// 7. owner         = owner identity (32 byte public key)
//
// Products:
//
//   P ++ product index         - product record
//                                data: starting token ++ ending token ++ mintable tokens ++ name
//   M ++ product index ++ n    - mint ledger: tokens assigned within the product, in order
//                                data: token
//   C ++ product index         - minted token count (mint ledger length)
//                                data: count
//
// Ranges:
//
//   R ++ range index           - range record, offsets relative to the owning product
//                                data: range start ++ range end
//   G ++ range index           - owning product of the range
//                                data: product index
//
// Tokens:
//
//   T ++ token                 - owning product of the token
//                                data: product index
//   E ++ token                 - range of the token (absent when minted outside any range)
//                                data: range index
//   O ++ token                 - current owner of the token (absent = unassigned)
//                                data: owner
//
// Ownership:
//
//   N ++ owner                 - owner balance, count of held tokens
//                                data: count
//   L ++ owner ++ n            - list of held tokens
//                                data: token
//   D ++ owner ++ token        - position in list of held tokens, for delete after transfer
//                                data: count
//
// Testing:
//
//   Z ++ key                   - testing data
package storage
