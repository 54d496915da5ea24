// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/distkit/distkit/randx"
)

// LocationScaleDist is the distribution of Y = A + B*X where X is
// drawn from a base distribution.
type LocationScaleDist struct {
	base Dist
	a, b float64
	dom  Domain
}

// NewLocationScale returns the distribution of a + b*X for X drawn
// from d. A negative b reflects the distribution. If b is 0, the
// result is the point mass at a.
//
// A Discrete base keeps its probability masses unscaled. Any other
// base, including a Mixed one, is treated as a density and its PDF
// is divided by |b|, so the atoms of a Mixed base are scaled too.
func NewLocationScale(d Dist, a, b float64) LocationScaleDist {
	if b == 0 || math.IsNaN(b) {
		d, b = NewPointMass(0), 1
	}
	base := d.Domain()
	var lo, hi float64
	if d.Kind() == Discrete {
		lo, hi = a+b*base.LowerValue(), a+b*base.UpperValue()
	} else {
		lo, hi = a+b*base.LowerBound(), a+b*base.UpperBound()
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return LocationScaleDist{
		base: d, a: a, b: b,
		dom: newDomain(lo, hi, math.Abs(b)*base.Width(), d.Kind()),
	}
}

// Base returns the distribution of X.
func (d LocationScaleDist) Base() Dist { return d.base }

// Location returns A.
func (d LocationScaleDist) Location() float64 { return d.a }

// Scale returns B.
func (d LocationScaleDist) Scale() float64 { return d.b }

func (d LocationScaleDist) Domain() Domain { return d.dom }

func (d LocationScaleDist) Kind() Kind { return d.base.Kind() }

// inv maps y back to the base distribution.
func (d LocationScaleDist) inv(y float64) float64 {
	return (y - d.a) / d.b
}

func (d LocationScaleDist) PDF(y float64) float64 {
	f := d.base.PDF(d.inv(y))
	if d.base.Kind() == Discrete {
		return f
	}
	return f / math.Abs(d.b)
}

func (d LocationScaleDist) CDF(y float64) float64 {
	x := d.inv(y)
	if d.b > 0 {
		return CDF(d.base, x)
	}
	// P(Y <= y) = P(X >= x).
	p := 1 - CDF(d.base, x)
	if d.base.Kind() == Discrete {
		p += d.base.PDF(x)
	}
	return clampProb(p)
}

func (d LocationScaleDist) InvCDF(p float64) float64 {
	if p < 0 || p > 1 {
		return nan
	}
	if d.b > 0 {
		return d.a + d.b*InvCDF(d.base, p)
	}
	if d.base.Kind() == Discrete {
		// The reflected CDF includes the atom at each point, so the
		// base quantile at 1-p can land one point too high.
		return DomainInvCDF(d, p)
	}
	return d.a + d.b*InvCDF(d.base, 1-p)
}

func (d LocationScaleDist) Mean() float64 {
	return d.a + d.b*Mean(d.base)
}

func (d LocationScaleDist) Variance() float64 {
	return d.b * d.b * Variance(d.base)
}

func (d LocationScaleDist) Median() float64 {
	if d.b < 0 && d.base.Kind() == Discrete {
		return d.InvCDF(0.5)
	}
	return d.a + d.b*Median(d.base)
}

func (d LocationScaleDist) MaxPDF() float64 {
	m := MaxPDF(d.base)
	if d.base.Kind() == Discrete {
		return m
	}
	return m / math.Abs(d.b)
}

func (d LocationScaleDist) Rand(src randx.Source) float64 {
	return d.a + d.b*Rand(d.base, src)
}
