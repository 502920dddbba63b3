// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 RAIR Protocol
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/binary"
	"fmt"

	"github.com/urfave/cli"

	"github.com/rairprotocol/rair721d/catalog"
	"github.com/rairprotocol/rair721d/owner"
	"github.com/rairprotocol/rair721d/ownership"
	"github.com/rairprotocol/rair721d/storage"
)

func runTokenInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	token := c.Uint64("token")

	err := initialiseSystem(m, true)
	if nil != err {
		return err
	}
	defer finaliseSystem()

	productIndex, rangeIndex, hasRange, err := catalog.TokenToProduct(token)
	if nil != err {
		return err
	}

	offset, err := catalog.TokenToProductOffset(token)
	if nil != err {
		return err
	}

	tokenKey := make([]byte, 8)
	binary.BigEndian.PutUint64(tokenKey, token)
	holder, err := owner.FromBytes(storage.Pool.TokenOwner.Get(tokenKey))
	if nil != err {
		return err
	}

	info := struct {
		Token        uint64      `json:"token"`
		ProductIndex uint64      `json:"productIndex"`
		Offset       uint64      `json:"offset"`
		RangeIndex   *uint64     `json:"rangeIndex,omitempty"`
		Owner        owner.Owner `json:"owner"`
	}{
		Token:        token,
		ProductIndex: productIndex,
		Offset:       offset,
		Owner:        holder,
	}
	if hasRange {
		info.RangeIndex = &rangeIndex
	}

	return printJson(m.w, info)
}

func runNextFree(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	productIndex := c.Uint64("product")
	startOffset := c.Uint64("start")
	endOffset := c.Uint64("end")

	if m.verbose {
		fmt.Fprintf(m.e, "product: %d\n", productIndex)
		fmt.Fprintf(m.e, "start: %d\n", startOffset)
		fmt.Fprintf(m.e, "end: %d\n", endOffset)
	}

	err := initialiseSystem(m, true)
	if nil != err {
		return err
	}
	defer finaliseSystem()

	offset, err := ownership.NextSequentialIndex(productIndex, startOffset, endOffset)
	if nil != err {
		return err
	}

	token, err := catalog.ProductToToken(productIndex, offset)
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		ProductIndex uint64 `json:"productIndex"`
		Offset       uint64 `json:"offset"`
		Token        uint64 `json:"token"`
	}{
		ProductIndex: productIndex,
		Offset:       offset,
		Token:        token,
	})
}
