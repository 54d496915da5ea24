// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/distkit/distkit/mathx"
	"github.com/distkit/distkit/randx"
)

// GammaDist is a gamma distribution with shape parameter Shape and
// scale parameter Scale.
//
// The exponential and chi-square distributions are special cases; see
// NewExponential and NewChiSquare.
type GammaDist struct {
	shape, scale float64
	lognorm      float64 // log(Γ(shape) scaleˢʰᵃᵖᵉ)
	dom          Domain
}

// NewGamma returns the gamma distribution with the given shape and
// scale. Non-positive parameters are replaced by 1.
//
// The domain is [0, mean + 4 standard deviations].
func NewGamma(shape, scale float64) GammaDist {
	shape = positive(shape, 1)
	scale = positive(scale, 1)
	mean, sd := shape*scale, math.Sqrt(shape)*scale
	return GammaDist{
		shape:   shape,
		scale:   scale,
		lognorm: mathx.LogGamma(shape) + shape*math.Log(scale),
		dom:     continuousDomain(0, mean+4*sd),
	}
}

// NewExponential returns the exponential distribution with the given
// rate, which is the gamma distribution with shape 1 and scale 1/rate.
// A non-positive rate is replaced by 1.
func NewExponential(rate float64) GammaDist {
	return NewGamma(1, 1/positive(rate, 1))
}

// NewChiSquare returns the chi-square distribution with df degrees of
// freedom, which is the gamma distribution with shape df/2 and scale 2.
// A non-positive df is replaced by 1.
func NewChiSquare(df float64) GammaDist {
	return NewGamma(positive(df, 1)/2, 2)
}

// Shape returns the shape parameter.
func (d GammaDist) Shape() float64 { return d.shape }

// Scale returns the scale parameter.
func (d GammaDist) Scale() float64 { return d.scale }

// WithShape returns d with the given shape.
func (d GammaDist) WithShape(shape float64) GammaDist { return NewGamma(shape, d.scale) }

// WithScale returns d with the given scale.
func (d GammaDist) WithScale(scale float64) GammaDist { return NewGamma(d.shape, scale) }

func (d GammaDist) Domain() Domain { return d.dom }

func (d GammaDist) Kind() Kind { return Continuous }

func (d GammaDist) PDF(x float64) float64 {
	if x < 0 {
		return 0
	} else if x == 0 {
		switch {
		case d.shape < 1:
			return inf
		case d.shape == 1:
			return 1 / d.scale
		}
		return 0
	}
	return math.Exp((d.shape-1)*math.Log(x) - x/d.scale - d.lognorm)
}

func (d GammaDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if d.shape == 1 {
		return -math.Expm1(-x / d.scale)
	}
	return mathx.GammaInc(x/d.scale, d.shape)
}

// InvCDF is in closed form for the exponential case (shape 1) and
// found by bisection of the CDF otherwise.
func (d GammaDist) InvCDF(p float64) float64 {
	if p < 0 || p > 1 {
		return nan
	}
	if d.shape == 1 {
		if p == 1 {
			return inf
		}
		return -d.scale * math.Log1p(-p)
	}
	return DomainInvCDF(d, p)
}

func (d GammaDist) Mean() float64 { return d.shape * d.scale }

func (d GammaDist) Variance() float64 { return d.shape * d.scale * d.scale }

// MaxPDF returns the density at the mode (Shape-1)·Scale. The density
// is unbounded at 0 for shapes below 1; in that case MaxPDF returns
// the largest density on the domain grid.
func (d GammaDist) MaxPDF() float64 {
	if d.shape < 1 {
		return DomainMaxPDF(d)
	}
	return d.PDF((d.shape - 1) * d.scale)
}

func (d GammaDist) Rand(src randx.Source) float64 {
	if d.shape == 1 {
		return d.scale * stdExp(src)
	}
	return d.scale * stdGamma(d.shape, src)
}
