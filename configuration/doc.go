// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 RAIR Protocol
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - Lua configuration files
//
// Configuration files are Lua programs whose final expression is a
// table; the table is mapped onto the Configuration structure.  Using
// a real language keeps the files short while still allowing computed
// values and local variables.
package configuration
