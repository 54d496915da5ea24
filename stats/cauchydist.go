// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/distkit/distkit/randx"
)

// CauchyDist is a Cauchy distribution with location X0 and scale
// Gamma. Its mean and variance do not exist.
//
// The standard Cauchy distribution is also the t-distribution with
// one degree of freedom (NewStandardCauchy).
type CauchyDist struct {
	x0, gamma float64
	dom       Domain
}

// NewCauchy returns the Cauchy distribution with location x0 and
// scale gamma. A non-positive gamma is replaced by 1.
//
// The domain is fixed at ten scale units either side of x0.
func NewCauchy(x0, gamma float64) CauchyDist {
	gamma = positive(gamma, 1)
	return CauchyDist{x0: x0, gamma: gamma, dom: continuousDomain(x0-10*gamma, x0+10*gamma)}
}

// X0 returns the location.
func (d CauchyDist) X0() float64 { return d.x0 }

// Gamma returns the scale.
func (d CauchyDist) Gamma() float64 { return d.gamma }

func (d CauchyDist) Domain() Domain { return d.dom }

func (d CauchyDist) Kind() Kind { return Continuous }

func (d CauchyDist) PDF(x float64) float64 {
	z := (x - d.x0) / d.gamma
	return 1 / (math.Pi * d.gamma * (1 + z*z))
}

func (d CauchyDist) CDF(x float64) float64 {
	return 0.5 + math.Atan((x-d.x0)/d.gamma)/math.Pi
}

func (d CauchyDist) InvCDF(p float64) float64 {
	if p < 0 || p > 1 {
		return nan
	}
	switch p {
	case 0:
		return -inf
	case 1:
		return inf
	}
	return d.x0 + d.gamma*math.Tan(math.Pi*(p-0.5))
}

// Mean returns NaN: the Cauchy distribution has no mean.
func (d CauchyDist) Mean() float64 { return nan }

// Variance returns NaN: the Cauchy distribution has no variance.
func (d CauchyDist) Variance() float64 { return nan }

func (d CauchyDist) Median() float64 { return d.x0 }

func (d CauchyDist) MaxPDF() float64 { return 1 / (math.Pi * d.gamma) }

func (d CauchyDist) Rand(src randx.Source) float64 {
	return d.InvCDF(openUnit(src))
}
