// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avlmap/fault"
)

func TestGetConfigurationSample(t *testing.T) {
	sample, err := os.ReadFile("avlreplay.conf.sample")
	require.NoError(t, err)

	fileName := writeConfiguration(t, string(sample))
	dir := filepath.Dir(fileName)

	c, err := getConfiguration(fileName)
	require.NoError(t, err)

	assert.Equal(t, filepath.Clean(dir), c.DataDirectory)
	assert.True(t, c.Check)
	assert.Equal(t, filepath.Join(dir, "log"), c.Logging.Directory)
	assert.Equal(t, "avlreplay.log", c.Logging.File)
	assert.DirExists(t, c.Logging.Directory)

	require.Len(t, c.Steps, 25)
	assert.Equal(t, Step{Op: opInsert, Key: 1, Value: 2}, c.Steps[0])
	assert.Equal(t, Step{Op: opInsert, Key: 20, Value: 40}, c.Steps[19])
	assert.Equal(t, opErase, c.Steps[20].Op)
	assert.Equal(t, 1, c.Steps[20].Key)
	assert.Equal(t, 5, c.Steps[24].Key)
}

func TestGetConfigurationDefaults(t *testing.T) {
	fileName := writeConfiguration(t, `
return {
    data_directory = ".",
    steps = {
        { op = "INSERT", key = 7, value = 49 },
        { op = " Contains ", key = 7 },
    },
}
`)
	c, err := getConfiguration(fileName)
	require.NoError(t, err)

	assert.False(t, c.Check)
	assert.Equal(t, defaultLogFile, c.Logging.File)
	assert.Equal(t, defaultLogCount, c.Logging.Count)
	assert.Equal(t, defaultLogSize, c.Logging.Size)
	assert.Equal(t, opInsert, c.Steps[0].Op)
	assert.Equal(t, opContains, c.Steps[1].Op)
}

func TestGetConfigurationErrors(t *testing.T) {
	items := []struct {
		name string
		text string
		err  error
	}{
		{
			name: "no steps",
			text: `return { data_directory = "." }`,
			err:  fault.ErrMissingSteps,
		},
		{
			name: "bad operation",
			text: `return { data_directory = ".", steps = { { op = "rotate", key = 1 } } }`,
			err:  fault.ErrInvalidOperation,
		},
		{
			name: "no data directory",
			text: `return { steps = { { op = "insert", key = 1, value = 1 } } }`,
			err:  fault.ErrInvalidDataDirectory,
		},
		{
			name: "home data directory",
			text: `return { data_directory = "~", steps = { { op = "erase", key = 1 } } }`,
			err:  fault.ErrInvalidDataDirectory,
		},
		{
			name: "log file with path",
			text: `return { data_directory = ".", steps = { { op = "erase", key = 1 } }, logging = { file = "sub/x.log" } }`,
			err:  fault.ErrNotPlainFileName,
		},
		{
			name: "not a table",
			text: `return 42`,
			err:  fault.ErrConfigurationResult,
		},
	}

	for _, item := range items {
		fileName := writeConfiguration(t, item.text)
		_, err := getConfiguration(fileName)
		assert.ErrorIs(t, err, item.err, item.name)
	}
}

func TestGetConfigurationMissingFile(t *testing.T) {
	_, err := getConfiguration(filepath.Join(t.TempDir(), "none.conf"))
	assert.Error(t, err)
}
