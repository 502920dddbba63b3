// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 RAIR Protocol
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/rairprotocol/rair721d/owner"
	"github.com/rairprotocol/rair721d/ownership"
)

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	o, err := ownerFromFlag("owner", c.String("owner"))
	if nil != err {
		return err
	}

	err = initialiseSystem(m, true)
	if nil != err {
		return err
	}
	defer finaliseSystem()

	balance, err := ownership.BalanceOf(o)
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		Owner   owner.Owner `json:"owner"`
		Balance uint64      `json:"balance"`
	}{
		Owner:   o,
		Balance: balance,
	})
}

func runHoldings(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	o, err := ownerFromFlag("owner", c.String("owner"))
	if nil != err {
		return err
	}

	start := c.Uint64("start")

	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("invalid count: %d", count)
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", o)
		fmt.Fprintf(m.e, "start: %d\n", start)
		fmt.Fprintf(m.e, "count: %d\n", count)
	}

	err = initialiseSystem(m, true)
	if nil != err {
		return err
	}
	defer finaliseSystem()

	records, err := ownership.ListTokensFor(o, start, count)
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		Owner owner.Owner        `json:"owner"`
		Data  []ownership.Record `json:"data"`
	}{
		Owner: o,
		Data:  records,
	})
}

func runOwnsInProduct(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	o, err := ownerFromFlag("owner", c.String("owner"))
	if nil != err {
		return err
	}

	productIndex := c.Uint64("product")

	err = initialiseSystem(m, true)
	if nil != err {
		return err
	}
	defer finaliseSystem()

	owns, err := ownership.OwnsTokenInProduct(o, productIndex)
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		Owner        owner.Owner `json:"owner"`
		ProductIndex uint64      `json:"productIndex"`
		Owns         bool        `json:"owns"`
	}{
		Owner:        o,
		ProductIndex: productIndex,
		Owns:         owns,
	})
}

func runOwnsInRange(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	o, err := ownerFromFlag("owner", c.String("owner"))
	if nil != err {
		return err
	}

	rangeIndex := c.Uint64("range")

	err = initialiseSystem(m, true)
	if nil != err {
		return err
	}
	defer finaliseSystem()

	owns, err := ownership.OwnsTokenInRange(o, rangeIndex)
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		Owner      owner.Owner `json:"owner"`
		RangeIndex uint64      `json:"rangeIndex"`
		Owns       bool        `json:"owns"`
	}{
		Owner:      o,
		RangeIndex: rangeIndex,
		Owns:       owns,
	})
}

func runHasToken(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	o, err := ownerFromFlag("owner", c.String("owner"))
	if nil != err {
		return err
	}

	productIndex := c.Uint64("product")
	startOffset := c.Uint64("start")
	endOffset := c.Uint64("end")

	err = initialiseSystem(m, true)
	if nil != err {
		return err
	}
	defer finaliseSystem()

	has, err := ownership.HasTokenInProduct(o, productIndex, startOffset, endOffset)
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		Owner        owner.Owner `json:"owner"`
		ProductIndex uint64      `json:"productIndex"`
		StartOffset  uint64      `json:"startOffset"`
		EndOffset    uint64      `json:"endOffset"`
		Has          bool        `json:"has"`
	}{
		Owner:        o,
		ProductIndex: productIndex,
		StartOffset:  startOffset,
		EndOffset:    endOffset,
		Has:          has,
	})
}
