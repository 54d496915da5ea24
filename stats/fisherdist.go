// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/distkit/distkit/mathx"
	"github.com/distkit/distkit/randx"
)

// FisherDist is Fisher's F distribution with M numerator and N
// denominator degrees of freedom.
type FisherDist struct {
	m, n    float64
	lognorm float64
	dom     Domain
}

// NewFisher returns the F distribution with m and n degrees of
// freedom. Non-positive parameters are replaced by 1.
//
// When the variance exists (n > 4) the domain is [0, mean + 4
// standard deviations]; otherwise it is fixed at [0, 20].
func NewFisher(m, n float64) FisherDist {
	m = positive(m, 1)
	n = positive(n, 1)
	d := FisherDist{
		m: m,
		n: n,
		lognorm: mathx.LogGamma((m+n)/2) - mathx.LogGamma(m/2) - mathx.LogGamma(n/2) +
			m/2*math.Log(m/n),
	}
	upper := 20.0
	if n > 4 {
		upper = d.Mean() + 4*math.Sqrt(d.Variance())
	}
	d.dom = continuousDomain(0, upper)
	return d
}

// M returns the numerator degrees of freedom.
func (d FisherDist) M() float64 { return d.m }

// N returns the denominator degrees of freedom.
func (d FisherDist) N() float64 { return d.n }

func (d FisherDist) Domain() Domain { return d.dom }

func (d FisherDist) Kind() Kind { return Continuous }

func (d FisherDist) PDF(x float64) float64 {
	if x < 0 {
		return 0
	} else if x == 0 {
		switch {
		case d.m < 2:
			return inf
		case d.m == 2:
			return math.Exp(d.lognorm)
		}
		return 0
	}
	return math.Exp(d.lognorm + (d.m/2-1)*math.Log(x) - (d.m+d.n)/2*math.Log1p(d.m*x/d.n))
}

func (d FisherDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return mathx.BetaInc(d.m*x/(d.m*x+d.n), d.m/2, d.n/2)
}

// Mean returns n/(n-2) when n > 2 and +Inf otherwise.
func (d FisherDist) Mean() float64 {
	if d.n <= 2 {
		return inf
	}
	return d.n / (d.n - 2)
}

// Variance returns the variance when n > 4 and +Inf otherwise.
func (d FisherDist) Variance() float64 {
	if d.n <= 4 {
		return inf
	}
	return 2 * d.n * d.n * (d.m + d.n - 2) / (d.m * (d.n - 2) * (d.n - 2) * (d.n - 4))
}

// Rand returns the ratio of independent chi-square variates, each
// divided by its degrees of freedom.
func (d FisherDist) Rand(src randx.Source) float64 {
	x := 2 * stdGamma(d.m/2, src) / d.m
	y := 2 * stdGamma(d.n/2, src) / d.n
	return x / y
}
