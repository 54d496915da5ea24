// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/distkit/distkit/internal/catalog"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dist.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
dist = "binomial"
params = [20.0, 0.3]
samples = 500
seed = 42
plot = "out.png"
`)
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Dist:    "binomial",
		Params:  []float64{20, 0.3},
		Samples: 500,
		Seed:    42,
		Bins:    Default().Bins,
		Plot:    "out.png",
	}, c)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, `dist = `))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "dist = \"normal\"\ncolour = \"red\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")

	_, err = Load(writeFile(t, `dist = "zipf"`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, catalog.ErrUnknownDist))
}

func TestValidate(t *testing.T) {
	for name, mod := range map[string]func(*Config){
		"unknown dist":  func(c *Config) { c.Dist = "nope" },
		"too many":      func(c *Config) { c.Params = []float64{0, 1, 2} },
		"no samples":    func(c *Config) { c.Samples = 0 },
		"negative bins": func(c *Config) { c.Bins = -1 },
	} {
		c := Default()
		mod(&c)
		assert.Error(t, c.Validate(), name)
	}
}
