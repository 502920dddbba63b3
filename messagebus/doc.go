// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 RAIR Protocol
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - in-process notification queue
//
// Successful catalog mutations announce themselves here, exactly once
// and in commit order.  Consumers range over Chan; nothing is
// delivered for a failed operation because the announcement is sent
// only after the enclosing storage transaction commits.
package messagebus
