// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/distkit/distkit/mathx"
	"github.com/distkit/distkit/randx"
)

// Random walk distributions. A walk starts at 0 and takes N steps of
// +1 or -1.

// WalkPositionDist is the distribution of the position of a random
// walk after N steps, where each step is +1 with probability P.
type WalkPositionDist struct {
	n   int
	p   float64
	dom Domain
}

// NewWalkPosition returns the distribution of the position after n
// steps with up-probability p. n is raised to at least 1 and p is
// clamped to [0, 1].
func NewWalkPosition(n int, p float64) WalkPositionDist {
	n = maxint(n, 1)
	return WalkPositionDist{n: n, p: clampProb(p), dom: NewDiscreteDomain(-float64(n), float64(n), 2)}
}

// N returns the number of steps.
func (d WalkPositionDist) N() int { return d.n }

// P returns the probability of an up step.
func (d WalkPositionDist) P() float64 { return d.p }

func (d WalkPositionDist) Domain() Domain { return d.dom }

func (d WalkPositionDist) Kind() Kind { return Discrete }

func (d WalkPositionDist) PDF(x float64) float64 {
	xi, ok := asInt(x)
	if !ok || xi < -d.n || xi > d.n || (xi+d.n)%2 != 0 {
		return 0
	}
	return binomPMF(d.n, (xi+d.n)/2, d.p)
}

func (d WalkPositionDist) CDF(x float64) float64 {
	// Position x means (x+n)/2 up steps.
	return NewBinomial(d.n, d.p).CDF((x + float64(d.n)) / 2)
}

func (d WalkPositionDist) Mean() float64 {
	return float64(d.n) * (2*d.p - 1)
}

func (d WalkPositionDist) Variance() float64 {
	return 4 * float64(d.n) * d.p * (1 - d.p)
}

func (d WalkPositionDist) Rand(src randx.Source) float64 {
	return float64(2*bernoulliTrials(d.n, d.p, src) - d.n)
}

// WalkMaxDist is the distribution of the maximum position reached by
// a symmetric random walk in N steps.
type WalkMaxDist struct {
	n   int
	dom Domain
}

// NewWalkMax returns the distribution of the maximum of a symmetric
// walk of n steps. n is raised to at least 1.
func NewWalkMax(n int) WalkMaxDist {
	n = maxint(n, 1)
	return WalkMaxDist{n: n, dom: NewDiscreteDomain(0, float64(n), 1)}
}

// N returns the number of steps.
func (d WalkMaxDist) N() int { return d.n }

func (d WalkMaxDist) Domain() Domain { return d.dom }

func (d WalkMaxDist) Kind() Kind { return Discrete }

// PDF follows from the reflection principle:
//
//	P(max = k) = C(n, ⌊(n+k+1)/2⌋) / 2ⁿ.
func (d WalkMaxDist) PDF(x float64) float64 {
	k, ok := asInt(x)
	if !ok || k < 0 || k > d.n {
		return 0
	}
	return math.Exp(mathx.Lchoose(d.n, (d.n+k+1)/2) - float64(d.n)*math.Ln2)
}

func (d WalkMaxDist) Rand(src randx.Source) float64 {
	pos, max := 0, 0
	for i := 0; i < d.n; i++ {
		if src.Float64() < 0.5 {
			pos++
		} else {
			pos--
		}
		max = maxint(max, pos)
	}
	return float64(max)
}

// DiscreteArcsineDist is the distribution of the time of the last
// visit to 0 of a symmetric random walk of 2N steps.
type DiscreteArcsineDist struct {
	n   int
	dom Domain
}

// NewDiscreteArcsine returns the distribution of the last zero of a
// symmetric walk of 2n steps. n is raised to at least 1.
func NewDiscreteArcsine(n int) DiscreteArcsineDist {
	n = maxint(n, 1)
	return DiscreteArcsineDist{n: n, dom: NewDiscreteDomain(0, 2*float64(n), 2)}
}

// N returns half the number of steps.
func (d DiscreteArcsineDist) N() int { return d.n }

func (d DiscreteArcsineDist) Domain() Domain { return d.dom }

func (d DiscreteArcsineDist) Kind() Kind { return Discrete }

// PDF returns the probability that the last zero is at time 2k,
//
//	C(2k, k) C(2n-2k, n-k) / 4ⁿ.
func (d DiscreteArcsineDist) PDF(x float64) float64 {
	t, ok := asInt(x)
	if !ok || t < 0 || t > 2*d.n || t%2 != 0 {
		return 0
	}
	k := t / 2
	return math.Exp(mathx.Lchoose(2*k, k) + mathx.Lchoose(2*d.n-2*k, d.n-k) -
		float64(d.n)*2*math.Ln2)
}

func (d DiscreteArcsineDist) Mean() float64 { return float64(d.n) }

func (d DiscreteArcsineDist) Rand(src randx.Source) float64 {
	pos, last := 0, 0
	for t := 1; t <= 2*d.n; t++ {
		if src.Float64() < 0.5 {
			pos++
		} else {
			pos--
		}
		if pos == 0 {
			last = t
		}
	}
	return float64(last)
}
