// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 RAIR Protocol
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/rairprotocol/rair721d/capability"
	"github.com/rairprotocol/rair721d/catalog"
	"github.com/rairprotocol/rair721d/configuration"
	"github.com/rairprotocol/rair721d/mint"
	"github.com/rairprotocol/rair721d/owner"
	"github.com/rairprotocol/rair721d/storage"
)

// bring up the logging, storage and domain subsystems for one command
//
// query commands open the database read-only so a concurrently running
// updater is not blocked
func initialiseSystem(m *metadata, readOnly bool) error {

	if "" == m.file {
		return fmt.Errorf("missing configuration: use --config FILE")
	}

	config, err := configuration.GetConfiguration(m.file)
	if nil != err {
		return fmt.Errorf("configuration: %q  error: %s", m.file, err)
	}
	m.config = config

	if !readOnly && config.ReadOnly {
		return fmt.Errorf("configuration: %q is marked read_only", m.file)
	}

	err = logger.Initialise(config.Logging)
	if nil != err {
		return fmt.Errorf("logger setup failed: %s", err)
	}

	err = storage.Initialise(config.DatabasePath(), readOnly)
	if nil != err {
		return fmt.Errorf("storage setup failed: %s", err)
	}

	creators := make([]owner.Owner, 0, len(config.Creators))
	for _, c := range config.Creators {
		o, err := owner.FromBase58(c)
		if nil != err {
			return fmt.Errorf("creator: %q  error: %s", c, err)
		}
		creators = append(creators, o)
	}

	err = capability.Initialise(creators)
	if nil != err {
		return err
	}

	err = catalog.Initialise()
	if nil != err {
		return err
	}

	return mint.Initialise()
}

func finaliseSystem() {
	_ = mint.Finalise()
	_ = catalog.Finalise()
	_ = capability.Finalise()
	storage.Finalise()
	logger.Finalise()
}

// decode a required owner flag
func ownerFromFlag(name string, value string) (owner.Owner, error) {
	if "" == value {
		return owner.Nobody, fmt.Errorf("missing %s: use --%s OWNER", name, name)
	}
	o, err := owner.FromBase58(value)
	if nil != err {
		return owner.Nobody, fmt.Errorf("%s: %q  error: %s", name, value, err)
	}
	return o, nil
}
