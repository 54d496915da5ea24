// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/distkit/distkit/mathx"
	"github.com/distkit/distkit/randx"
)

// BetaDist is a beta distribution on [0, 1] with shape parameters A
// and B.
type BetaDist struct {
	a, b  float64
	lbeta float64 // log B(a, b)
	dom   Domain
}

// NewBeta returns the beta distribution with shape parameters a and b.
// Non-positive parameters are replaced by 1.
func NewBeta(a, b float64) BetaDist {
	a = positive(a, 1)
	b = positive(b, 1)
	return BetaDist{
		a:     a,
		b:     b,
		lbeta: mathx.LogGamma(a) + mathx.LogGamma(b) - mathx.LogGamma(a+b),
		dom:   continuousDomain(0, 1),
	}
}

// A returns the first shape parameter.
func (d BetaDist) A() float64 { return d.a }

// B returns the second shape parameter.
func (d BetaDist) B() float64 { return d.b }

// WithA returns d with first shape parameter a.
func (d BetaDist) WithA(a float64) BetaDist { return NewBeta(a, d.b) }

// WithB returns d with second shape parameter b.
func (d BetaDist) WithB(b float64) BetaDist { return NewBeta(d.a, b) }

func (d BetaDist) Domain() Domain { return d.dom }

func (d BetaDist) Kind() Kind { return Continuous }

func (d BetaDist) PDF(x float64) float64 {
	if x < 0 || x > 1 {
		return 0
	}
	if x == 0 || x == 1 {
		// The density at the ends of the support depends only on
		// the shape parameter for that end.
		s := d.a
		if x == 1 {
			s = d.b
		}
		switch {
		case s < 1:
			return inf
		case s == 1:
			return math.Exp(-d.lbeta)
		}
		return 0
	}
	return math.Exp((d.a-1)*math.Log(x) + (d.b-1)*math.Log1p(-x) - d.lbeta)
}

func (d BetaDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	} else if x >= 1 {
		return 1
	}
	return mathx.BetaInc(x, d.a, d.b)
}

func (d BetaDist) Mean() float64 {
	return d.a / (d.a + d.b)
}

func (d BetaDist) Variance() float64 {
	s := d.a + d.b
	return d.a * d.b / (s * s * (s + 1))
}

// MaxPDF returns the density at the mode (A-1)/(A+B-2) when both
// shapes exceed 1. Otherwise the density may be unbounded at an end of
// the support, and MaxPDF returns the largest density on the domain
// grid.
func (d BetaDist) MaxPDF() float64 {
	if d.a > 1 && d.b > 1 {
		return d.PDF((d.a - 1) / (d.a + d.b - 2))
	}
	if d.a == 1 && d.b == 1 {
		return 1
	}
	return DomainMaxPDF(d)
}

// Rand returns X/(X+Y) for independent gamma variates X and Y with
// shapes A and B.
func (d BetaDist) Rand(src randx.Source) float64 {
	x := stdGamma(d.a, src)
	y := stdGamma(d.b, src)
	return x / (x + y)
}
