// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/distkit/distkit/mathx"
	"github.com/distkit/distkit/randx"
)

// WeibullDist is a Weibull distribution with shape K and scale Lambda.
type WeibullDist struct {
	k, lambda float64
	dom       Domain
}

// NewWeibull returns the Weibull distribution with shape k and scale
// lambda. Non-positive parameters are replaced by 1.
//
// The domain is [0, mean + 4 standard deviations].
func NewWeibull(k, lambda float64) WeibullDist {
	d := WeibullDist{k: positive(k, 1), lambda: positive(lambda, 1)}
	d.dom = continuousDomain(0, d.Mean()+4*math.Sqrt(d.Variance()))
	return d
}

// K returns the shape parameter.
func (d WeibullDist) K() float64 { return d.k }

// Lambda returns the scale parameter.
func (d WeibullDist) Lambda() float64 { return d.lambda }

func (d WeibullDist) Domain() Domain { return d.dom }

func (d WeibullDist) Kind() Kind { return Continuous }

func (d WeibullDist) PDF(x float64) float64 {
	if x < 0 {
		return 0
	} else if x == 0 {
		switch {
		case d.k < 1:
			return inf
		case d.k == 1:
			return 1 / d.lambda
		}
		return 0
	}
	z := x / d.lambda
	return d.k / d.lambda * math.Pow(z, d.k-1) * math.Exp(-math.Pow(z, d.k))
}

func (d WeibullDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return -math.Expm1(-math.Pow(x/d.lambda, d.k))
}

func (d WeibullDist) InvCDF(p float64) float64 {
	if p < 0 || p > 1 {
		return nan
	}
	return d.lambda * math.Pow(-math.Log1p(-p), 1/d.k)
}

func (d WeibullDist) Mean() float64 {
	return d.lambda * mathx.Gamma(1+1/d.k)
}

func (d WeibullDist) Variance() float64 {
	g1 := mathx.Gamma(1 + 1/d.k)
	return d.lambda * d.lambda * (mathx.Gamma(1+2/d.k) - g1*g1)
}

func (d WeibullDist) Median() float64 {
	return d.lambda * math.Pow(math.Ln2, 1/d.k)
}

// MaxPDF returns the density at the mode. For shapes below 1 the
// density is unbounded at 0, so MaxPDF returns the largest density on
// the domain grid.
func (d WeibullDist) MaxPDF() float64 {
	switch {
	case d.k < 1:
		return DomainMaxPDF(d)
	case d.k == 1:
		return 1 / d.lambda
	}
	return d.PDF(d.lambda * math.Pow((d.k-1)/d.k, 1/d.k))
}

func (d WeibullDist) Rand(src randx.Source) float64 {
	return d.lambda * math.Pow(stdExp(src), 1/d.k)
}
