// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 RAIR Protocol
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli"

	"github.com/rairprotocol/rair721d/mint"
	"github.com/rairprotocol/rair721d/owner"
)

func runMint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	o, err := ownerFromFlag("owner", c.String("owner"))
	if nil != err {
		return err
	}

	productArg := c.String("product")
	rangeArg := c.String("range")
	offset := c.Uint64("offset")

	if ("" == productArg) == ("" == rangeArg) {
		return fmt.Errorf("select one of: --product N or --range N")
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", o)
		fmt.Fprintf(m.e, "offset: %d\n", offset)
	}

	err = initialiseSystem(m, false)
	if nil != err {
		return err
	}
	defer finaliseSystem()

	var token uint64
	if "" != rangeArg {
		rangeIndex, err := strconv.ParseUint(rangeArg, 10, 64)
		if nil != err {
			return fmt.Errorf("range: %q  error: %s", rangeArg, err)
		}
		token, err = mint.MintInRange(rangeIndex, offset, o)
		if nil != err {
			return err
		}
	} else {
		productIndex, err := strconv.ParseUint(productArg, 10, 64)
		if nil != err {
			return fmt.Errorf("product: %q  error: %s", productArg, err)
		}
		token, err = mint.Mint(productIndex, offset, o)
		if nil != err {
			return err
		}
	}

	return printJson(m.w, struct {
		Token uint64      `json:"token"`
		Owner owner.Owner `json:"owner"`
	}{
		Token: token,
		Owner: o,
	})
}

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	token := c.Uint64("token")

	from, err := ownerFromFlag("from", c.String("from"))
	if nil != err {
		return err
	}

	to, err := ownerFromFlag("to", c.String("to"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "token: %d\n", token)
		fmt.Fprintf(m.e, "from: %s\n", from)
		fmt.Fprintf(m.e, "to: %s\n", to)
	}

	err = initialiseSystem(m, false)
	if nil != err {
		return err
	}
	defer finaliseSystem()

	err = mint.Transfer(token, from, to)
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		Token uint64      `json:"token"`
		From  owner.Owner `json:"from"`
		To    owner.Owner `json:"to"`
	}{
		Token: token,
		From:  from,
		To:    to,
	})
}
