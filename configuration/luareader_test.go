// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avlmap/configuration"
	"github.com/bitmark-inc/avlmap/fault"
)

type pairType struct {
	Key   int    `gluamapper:"key"`
	Value string `gluamapper:"value"`
}

type testConfiguration struct {
	Name    string     `gluamapper:"name"`
	Enabled bool       `gluamapper:"enabled"`
	Size    int        `gluamapper:"size"`
	Pairs   []pairType `gluamapper:"pairs"`
}

func writeFile(t *testing.T, text string) string {
	fileName := filepath.Join(t.TempDir(), "test.conf")
	if err := os.WriteFile(fileName, []byte(text), 0600); nil != err {
		t.Fatalf("write file error: %s", err)
	}
	return fileName
}

func TestParse(t *testing.T) {
	fileName := writeFile(t, `
local pairs = {}
for i = 1, 3 do
    pairs[#pairs + 1] = { key = i, value = "v" .. i * 2 }
end
return {
    name = "tree",
    enabled = true,
    size = 8 * 4,
    pairs = pairs,
}
`)

	c := testConfiguration{Name: "default", Size: 1}
	require.NoError(t, configuration.ParseConfigurationFile(fileName, &c))

	assert.Equal(t, "tree", c.Name)
	assert.True(t, c.Enabled)
	assert.Equal(t, 32, c.Size)
	assert.Equal(t, []pairType{{1, "v2"}, {2, "v4"}, {3, "v6"}}, c.Pairs)
}

func TestParseKeepsDefaults(t *testing.T) {
	fileName := writeFile(t, `return { enabled = true }`)

	c := testConfiguration{Name: "default", Size: 1}
	require.NoError(t, configuration.ParseConfigurationFile(fileName, &c))

	assert.Equal(t, "default", c.Name)
	assert.Equal(t, 1, c.Size)
	assert.True(t, c.Enabled)
}

func TestParseErrors(t *testing.T) {
	fileName := writeFile(t, `return { name = "x" }`)

	c := testConfiguration{}
	assert.Equal(t, fault.ErrInvalidStructPointer, configuration.ParseConfigurationFile(fileName, c))
	assert.Equal(t, fault.ErrInvalidStructPointer, configuration.ParseConfigurationFile(fileName, nil))
	n := 5
	assert.Equal(t, fault.ErrInvalidStructPointer, configuration.ParseConfigurationFile(fileName, &n))

	notTable := writeFile(t, `return "text"`)
	assert.Equal(t, fault.ErrConfigurationResult, configuration.ParseConfigurationFile(notTable, &c))

	syntax := writeFile(t, `return {`)
	assert.Error(t, configuration.ParseConfigurationFile(syntax, &c))

	missing := filepath.Join(t.TempDir(), "missing.conf")
	assert.Error(t, configuration.ParseConfigurationFile(missing, &c))
}
