// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"github.com/distkit/distkit/mathx"
	"github.com/distkit/distkit/randx"
)

// MatchDist is the distribution of the number of fixed points of a
// uniformly random permutation of N elements (the matching problem).
type MatchDist struct {
	n   int
	dom Domain
}

// NewMatch returns the matching distribution for permutations of n
// elements. n is raised to at least 1.
func NewMatch(n int) MatchDist {
	n = maxint(n, 1)
	return MatchDist{n: n, dom: NewDiscreteDomain(0, float64(n), 1)}
}

// N returns the number of elements.
func (d MatchDist) N() int { return d.n }

func (d MatchDist) Domain() Domain { return d.dom }

func (d MatchDist) Kind() Kind { return Discrete }

// PDF returns the probability of exactly k fixed points,
//
//	(1/k!) Σ_{j=0}^{n-k} (-1)ʲ/j!.
func (d MatchDist) PDF(k float64) float64 {
	ki, ok := asInt(k)
	if !ok || ki < 0 || ki > d.n {
		return 0
	}
	sum, term := 0.0, 1.0
	for j := 0; j <= d.n-ki; j++ {
		if j > 0 {
			term /= -float64(j)
		}
		sum += term
	}
	return sum / mathx.Factorial(ki)
}

func (d MatchDist) Mean() float64 { return 1 }

func (d MatchDist) Variance() float64 {
	if d.n == 1 {
		return 0
	}
	return 1
}

// Rand counts the fixed points of a random permutation.
func (d MatchDist) Rand(src randx.Source) float64 {
	k := 0
	for i, j := range permutation(d.n, src) {
		if i == j {
			k++
		}
	}
	return float64(k)
}
