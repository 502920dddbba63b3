// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 RAIR Protocol
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"

	"github.com/rairprotocol/rair721d/configuration"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "rair721-cli"
	app.Usage = "query and update a token catalogue index"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "",
			Usage: "*rair721d configuration `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "create-product",
			Usage:     "reserve a contiguous block of tokens under a name",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "creator, i",
					Value: "",
					Usage: "*creator identity `OWNER`",
				},
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*product name `STRING`",
				},
				cli.Uint64Flag{
					Name:  "copies, q",
					Usage: "*number of tokens to reserve `COUNT`",
				},
			},
			Action: runCreateProduct,
		},
		{
			Name:      "create-range",
			Usage:     "subdivide a product into an offset window",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "creator, i",
					Value: "",
					Usage: "*creator identity `OWNER`",
				},
				cli.Uint64Flag{
					Name:  "product, p",
					Usage: "*product index `N`",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Usage: "*first offset of the range `OFFSET`",
				},
				cli.Uint64Flag{
					Name:  "end, e",
					Usage: "*last offset of the range `OFFSET`",
				},
			},
			Action: runCreateRange,
		},
		{
			Name:      "product-info",
			Usage:     "show a product record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "product, p",
					Usage: "*product index `N`",
				},
			},
			Action: runProductInfo,
		},
		{
			Name:   "product-count",
			Usage:  "show the number of products",
			Action: runProductCount,
		},
		{
			Name:      "range-info",
			Usage:     "show a range record and its product",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "range, r",
					Usage: "*range index `N`",
				},
			},
			Action: runRangeInfo,
		},
		{
			Name:      "minted-count",
			Usage:     "show how many tokens of a product are minted",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "product, p",
					Usage: "*product index `N`",
				},
			},
			Action: runMintedCount,
		},
		{
			Name:      "token-info",
			Usage:     "show a token's product, offset, range and owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "token, t",
					Usage: "*token number `TOKEN`",
				},
			},
			Action: runTokenInfo,
		},
		{
			Name:      "next-free",
			Usage:     "find the first unassigned offset in a window",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "product, p",
					Usage: "*product index `N`",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Usage: "*first offset of the window `OFFSET`",
				},
				cli.Uint64Flag{
					Name:  "end, e",
					Usage: "*last offset of the window `OFFSET`",
				},
			},
			Action: runNextFree,
		},
		{
			Name:      "balance",
			Usage:     "show an owner's token count",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner identity `OWNER`",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "holdings",
			Usage:     "list a page of an owner's tokens",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner identity `OWNER`",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Usage: " first list position `N`",
				},
				cli.IntFlag{
					Name:  "count, q",
					Value: 10,
					Usage: " maximum records `COUNT`",
				},
			},
			Action: runHoldings,
		},
		{
			Name:      "owns-in-product",
			Usage:     "check whether an owner holds any token of a product",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner identity `OWNER`",
				},
				cli.Uint64Flag{
					Name:  "product, p",
					Usage: "*product index `N`",
				},
			},
			Action: runOwnsInProduct,
		},
		{
			Name:      "owns-in-range",
			Usage:     "check whether an owner holds any token of a range",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner identity `OWNER`",
				},
				cli.Uint64Flag{
					Name:  "range, r",
					Usage: "*range index `N`",
				},
			},
			Action: runOwnsInRange,
		},
		{
			Name:      "has-token",
			Usage:     "check an owner's holdings against an offset window",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner identity `OWNER`",
				},
				cli.Uint64Flag{
					Name:  "product, p",
					Usage: "*product index `N`",
				},
				cli.Uint64Flag{
					Name:  "start, s",
					Usage: "*first offset of the window `OFFSET`",
				},
				cli.Uint64Flag{
					Name:  "end, e",
					Usage: "*last offset of the window `OFFSET`",
				},
			},
			Action: runHasToken,
		},
		{
			Name:      "mint",
			Usage:     "assign an unassigned token to an owner",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*new owner identity `OWNER`",
				},
				cli.StringFlag{
					Name:  "product, p",
					Value: "",
					Usage: "+product index `N`",
				},
				cli.StringFlag{
					Name:  "range, r",
					Value: "",
					Usage: "+range index `N`",
				},
				cli.Uint64Flag{
					Name:  "offset, s",
					Usage: "*offset from the product's starting token `OFFSET`",
				},
			},
			Action: runMint,
		},
		{
			Name:      "transfer",
			Usage:     "move a minted token between owners",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "token, t",
					Usage: "*token number `TOKEN`",
				},
				cli.StringFlag{
					Name:  "from, f",
					Value: "",
					Usage: "*current owner identity `OWNER`",
				},
				cli.StringFlag{
					Name:  "to, o",
					Value: "",
					Usage: "*new owner identity `OWNER`",
				},
			},
			Action: runTransfer,
		},
	}

	// the configuration itself is read later, when a command actually
	// needs the database
	app.Before = func(c *cli.Context) error {
		m := &metadata{
			file:    c.GlobalString("config"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		c.App.Metadata = map[string]interface{}{
			"config": m,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}
