// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 RAIR Protocol
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/rairprotocol/rair721d/catalog"
)

func runCreateProduct(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	creator, err := ownerFromFlag("creator", c.String("creator"))
	if nil != err {
		return err
	}

	name := c.String("name")
	if "" == name {
		return fmt.Errorf("missing name: use --name STRING")
	}

	copies := c.Uint64("copies")

	if m.verbose {
		fmt.Fprintf(m.e, "creator: %s\n", creator)
		fmt.Fprintf(m.e, "name: %s\n", name)
		fmt.Fprintf(m.e, "copies: %d\n", copies)
	}

	err = initialiseSystem(m, false)
	if nil != err {
		return err
	}
	defer finaliseSystem()

	productIndex, err := catalog.CreateProduct(creator, name, copies)
	if nil != err {
		return err
	}

	product, err := catalog.GetProductInfo(productIndex)
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		ProductIndex uint64 `json:"productIndex"`
		Name         string `json:"name"`
		FirstToken   uint64 `json:"firstToken"`
		LastToken    uint64 `json:"lastToken"`
	}{
		ProductIndex: productIndex,
		Name:         product.Name,
		FirstToken:   product.StartingToken,
		LastToken:    product.EndingToken,
	})
}

func runCreateRange(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	creator, err := ownerFromFlag("creator", c.String("creator"))
	if nil != err {
		return err
	}

	productIndex := c.Uint64("product")
	rangeStart := c.Uint64("start")
	rangeEnd := c.Uint64("end")

	if m.verbose {
		fmt.Fprintf(m.e, "creator: %s\n", creator)
		fmt.Fprintf(m.e, "product: %d\n", productIndex)
		fmt.Fprintf(m.e, "start: %d\n", rangeStart)
		fmt.Fprintf(m.e, "end: %d\n", rangeEnd)
	}

	err = initialiseSystem(m, false)
	if nil != err {
		return err
	}
	defer finaliseSystem()

	rangeIndex, err := catalog.CreateRange(creator, productIndex, rangeStart, rangeEnd)
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		RangeIndex   uint64 `json:"rangeIndex"`
		ProductIndex uint64 `json:"productIndex"`
		RangeStart   uint64 `json:"rangeStart"`
		RangeEnd     uint64 `json:"rangeEnd"`
	}{
		RangeIndex:   rangeIndex,
		ProductIndex: productIndex,
		RangeStart:   rangeStart,
		RangeEnd:     rangeEnd,
	})
}

func runProductInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	productIndex := c.Uint64("product")

	err := initialiseSystem(m, true)
	if nil != err {
		return err
	}
	defer finaliseSystem()

	product, err := catalog.GetProductInfo(productIndex)
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		ProductIndex   uint64 `json:"productIndex"`
		Name           string `json:"name"`
		StartingToken  uint64 `json:"startingToken"`
		EndingToken    uint64 `json:"endingToken"`
		MintableTokens uint64 `json:"mintableTokens"`
		MintedTokens   uint64 `json:"mintedTokens"`
	}{
		ProductIndex:   productIndex,
		Name:           product.Name,
		StartingToken:  product.StartingToken,
		EndingToken:    product.EndingToken,
		MintableTokens: product.MintableTokens,
		MintedTokens:   catalog.MintedTokensInProduct(productIndex),
	})
}

func runProductCount(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	err := initialiseSystem(m, true)
	if nil != err {
		return err
	}
	defer finaliseSystem()

	return printJson(m.w, struct {
		Products uint64 `json:"products"`
		Ranges   uint64 `json:"ranges"`
	}{
		Products: catalog.ProductCount(),
		Ranges:   catalog.RangeCount(),
	})
}

func runRangeInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	rangeIndex := c.Uint64("range")

	err := initialiseSystem(m, true)
	if nil != err {
		return err
	}
	defer finaliseSystem()

	r, productIndex, err := catalog.GetRangeInfo(rangeIndex)
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		RangeIndex   uint64 `json:"rangeIndex"`
		ProductIndex uint64 `json:"productIndex"`
		RangeStart   uint64 `json:"rangeStart"`
		RangeEnd     uint64 `json:"rangeEnd"`
	}{
		RangeIndex:   rangeIndex,
		ProductIndex: productIndex,
		RangeStart:   r.RangeStart,
		RangeEnd:     r.RangeEnd,
	})
}

func runMintedCount(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	productIndex := c.Uint64("product")

	err := initialiseSystem(m, true)
	if nil != err {
		return err
	}
	defer finaliseSystem()

	err = catalog.ProductExists(productIndex)
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		ProductIndex uint64 `json:"productIndex"`
		MintedTokens uint64 `json:"mintedTokens"`
	}{
		ProductIndex: productIndex,
		MintedTokens: catalog.MintedTokensInProduct(productIndex),
	})
}
