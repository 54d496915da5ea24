// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"math"
	"sort"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/distkit/distkit/stats"
)

func TestEntries(t *testing.T) {
	es := Entries()
	require.NotEmpty(t, es)
	assert.True(t, sort.SliceIsSorted(es, func(i, j int) bool { return es[i].Name < es[j].Name }))
	for _, e := range es {
		assert.Len(t, e.Defaults, len(e.Params), e.Name)
		assert.NotEmpty(t, e.Doc, e.Name)

		// Every entry builds a normalized distribution from its
		// defaults.
		d, err := e.New(nil)
		require.NoError(t, err, e.Name)
		sum := 0.0
		dom := d.Domain()
		w := 1.0
		if d.Kind() != stats.Discrete {
			w = dom.Width()
		}
		for _, x := range dom.Values() {
			sum += d.PDF(x) * w
		}
		tol := 0.02
		if e.Name == "cauchy" {
			// The tails beyond the domain hold about 6% of the mass.
			tol = 0.1
		}
		assert.InDelta(t, 1, sum, tol, e.Name)
	}
}

func TestLookup(t *testing.T) {
	e, err := Lookup("Binomial")
	require.NoError(t, err)
	assert.Equal(t, "binomial", e.Name)
	assert.Equal(t, "binomial(n, p)", e.Usage())

	_, err = Lookup("zipf")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownDist))
	assert.Contains(t, err.Error(), "zipf")
}

func TestNew(t *testing.T) {
	d, err := New("binomial", []float64{20, 0.25})
	require.NoError(t, err)
	assert.Equal(t, stats.NewBinomial(20, 0.25), d)

	// Missing parameters take their defaults.
	d, err = New("normal", []float64{3})
	require.NoError(t, err)
	assert.Equal(t, stats.NewNormal(3, 1), d)

	// Integer parameters are rounded.
	d, err = New("poisson", nil)
	require.NoError(t, err)
	assert.Equal(t, 4.0, stats.Mean(d))
	d, err = New("match", []float64{6.2})
	require.NoError(t, err)
	assert.Equal(t, stats.NewMatch(6), d)

	_, err = New("normal", []float64{0, 1, 2})
	assert.Error(t, err)
	_, err = New("normal", []float64{math.NaN()})
	assert.Error(t, err)
	_, err = New("nope", nil)
	assert.True(t, errors.Is(err, ErrUnknownDist))
}
