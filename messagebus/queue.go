// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 RAIR Protocol
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

// internal constants
const (
	queueSize = 1000
)

// Message - a queued notification
type Message struct {
	From string
	Item interface{}
}

var (
	// for queueing data
	queue = make(chan Message, queueSize)
)

// Send - queue a notification
func Send(from string, item interface{}) {
	queue <- Message{
		From: from,
		Item: item,
	}
}

// Chan - channel to read from
func Chan() <-chan Message {
	return queue
}

// Drain - discard all pending notifications
//
// only for tests and shutdown paths that no longer consume the queue
func Drain() {
drain:
	for {
		select {
		case <-queue:
		default:
			break drain
		}
	}
}
