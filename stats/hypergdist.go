// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/distkit/distkit/mathx"
	"github.com/distkit/distkit/randx"
)

// HypergeometricDist is a hypergeometric distribution: the number of
// successes in Draws draws without replacement from a population of
// size N that contains exactly K successes.
type HypergeometricDist struct {
	n, k, draws int
	dom         Domain
}

// NewHypergeometric returns the hypergeometric distribution for a
// population of size n containing k successes, sampled draws times
// without replacement. n is raised to at least 1, and k and draws are
// clamped to [0, n] and [1, n].
func NewHypergeometric(n, k, draws int) HypergeometricDist {
	n = maxint(n, 1)
	k = maxint(0, minint(k, n))
	draws = maxint(1, minint(draws, n))
	d := HypergeometricDist{n: n, k: k, draws: draws}
	l, h := d.bounds()
	d.dom = NewDiscreteDomain(float64(l), float64(h), 1)
	return d
}

// N returns the population size.
func (d HypergeometricDist) N() int { return d.n }

// K returns the number of successes in the population.
func (d HypergeometricDist) K() int { return d.k }

// Draws returns the sample size. This is usually written "n", but is
// called Draws here because of limitations on Go identifier naming.
func (d HypergeometricDist) Draws() int { return d.draws }

func (d HypergeometricDist) Domain() Domain { return d.dom }

func (d HypergeometricDist) Kind() Kind { return Discrete }

// PDF is the probability of getting exactly k successes.
func (d HypergeometricDist) PDF(k float64) float64 {
	ki, ok := asInt(k)
	l, h := d.bounds()
	if !ok || ki < l || ki > h {
		return 0
	}
	return math.Exp(mathx.Lchoose(d.k, ki) + mathx.Lchoose(d.n-d.k, d.draws-ki) - mathx.Lchoose(d.n, d.draws))
}

func (d HypergeometricDist) bounds() (int, int) {
	return maxint(0, d.draws+d.k-d.n), minint(d.draws, d.k)
}

func (d HypergeometricDist) Mean() float64 {
	return float64(d.draws) * float64(d.k) / float64(d.n)
}

func (d HypergeometricDist) Variance() float64 {
	if d.n == 1 {
		return 0
	}
	n, k, m := float64(d.n), float64(d.k), float64(d.draws)
	return m * (k / n) * (1 - k/n) * (n - m) / (n - 1)
}

// Rand simulates drawing d.Draws() items one at a time without
// replacement and counts the successes.
func (d HypergeometricDist) Rand(src randx.Source) float64 {
	successes, remaining, found := d.k, d.n, 0
	for i := 0; i < d.draws; i++ {
		if src.Float64()*float64(remaining) < float64(successes) {
			successes--
			found++
		}
		remaining--
	}
	return float64(found)
}
