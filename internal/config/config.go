// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the settings of a dist simulation run.
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"

	"github.com/distkit/distkit/internal/catalog"
)

// Config describes one simulation run.
type Config struct {
	// Dist is the catalog name of the distribution.
	Dist string `toml:"dist"`

	// Params are the distribution parameters. Missing trailing
	// parameters take the catalog defaults.
	Params []float64 `toml:"params"`

	// Samples is the number of values to draw.
	Samples int `toml:"samples"`

	// Seed seeds the random source.
	Seed uint64 `toml:"seed"`

	// Bins is the number of bins in the frequency table of a
	// continuous distribution. Discrete distributions are
	// tabulated on their own support.
	Bins int `toml:"bins"`

	// Plot, if not empty, is the path of a PNG to write the
	// histogram and density to.
	Plot string `toml:"plot"`

	// Verbose enables development logging.
	Verbose bool `toml:"verbose"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Dist:    "normal",
		Samples: 10000,
		Seed:    1,
		Bins:    20,
	}
}

// Load reads a TOML configuration file. Settings missing from the
// file keep their default values.
func Load(path string) (Config, error) {
	c := Default()
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return Config{}, errors.Wrapf(err, "loading %s", path)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return Config{}, errors.Newf("loading %s: unknown setting %q", path, keys[0].String())
	}
	if err := c.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "loading %s", path)
	}
	return c, nil
}

// Validate checks that c describes a run that can be carried out.
func (c Config) Validate() error {
	e, err := catalog.Lookup(c.Dist)
	if err != nil {
		return err
	}
	if len(c.Params) > len(e.Params) {
		return errors.Newf("%s takes %d parameters, got %d", e.Usage(), len(e.Params), len(c.Params))
	}
	if c.Samples <= 0 {
		return errors.Newf("samples must be positive, got %d", c.Samples)
	}
	if c.Bins <= 0 {
		return errors.Newf("bins must be positive, got %d", c.Bins)
	}
	return nil
}
