// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 RAIR Protocol
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rairprotocol/rair721d/configuration"
)

// a minimal but realistic configuration file
const configurationSample = `
local M = {}

M.data_directory = arg[0]:match("(.*/)")

M.read_only = false

M.creators = {
    "aRjyhMbNQKDSvDiKhMhnYkZvNB2DcDXnTCzrMNr3TUizm6H8iv",
}

M.database = {
    directory = "data",
    name = "rair721",
}

M.logging = {
    size = 1048576,
    count = 10,
    console = false,
    levels = {
        DEFAULT = "critical",
    },
}

return M
`

func writeConfiguration(t *testing.T, directory string, text string) string {
	fileName := filepath.Join(directory, "rair721d.conf")
	err := ioutil.WriteFile(fileName, []byte(text), 0600)
	if nil != err {
		t.Fatalf("write configuration error: %s", err)
	}
	return fileName
}

func TestGetConfiguration(t *testing.T) {

	directory, err := ioutil.TempDir("", "configuration-test")
	if nil != err {
		t.Fatalf("tempdir error: %s", err)
	}
	defer os.RemoveAll(directory)

	fileName := writeConfiguration(t, directory, configurationSample)

	config, err := configuration.GetConfiguration(fileName)
	assert.Nil(t, err, "parse failed")

	assert.False(t, config.ReadOnly, "wrong read only flag")
	assert.Equal(t, 1, len(config.Creators), "wrong creator count")

	// relative paths become absolute under the data directory
	assert.True(t, filepath.IsAbs(config.Database.Directory), "database directory not absolute")
	assert.True(t, filepath.IsAbs(config.Logging.Directory), "log directory not absolute")

	expectedDatabase := filepath.Join(config.DataDirectory, "data", "rair721")
	assert.Equal(t, expectedDatabase, config.DatabasePath(), "wrong database path")

	// defaults fill what the file leaves out
	assert.Equal(t, "rair721d.log", config.Logging.File, "wrong log file")
	assert.Equal(t, "critical", config.Logging.Levels["DEFAULT"], "wrong log level")
}

func TestGetConfigurationMissingFile(t *testing.T) {

	_, err := configuration.GetConfiguration("/nonexistent/rair721d.conf")
	assert.NotNil(t, err, "missing file must fail")
}

func TestGetConfigurationBadDataDirectory(t *testing.T) {

	directory, err := ioutil.TempDir("", "configuration-test")
	if nil != err {
		t.Fatalf("tempdir error: %s", err)
	}
	defer os.RemoveAll(directory)

	fileName := writeConfiguration(t, directory, `
local M = {}
M.data_directory = "~"
return M
`)

	_, err = configuration.GetConfiguration(fileName)
	assert.NotNil(t, err, "invalid data directory must fail")
}
