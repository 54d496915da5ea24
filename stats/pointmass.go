// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "github.com/distkit/distkit/randx"

// PointMassDist is the degenerate distribution that puts all of its
// mass on X.
type PointMassDist struct {
	x   float64
	dom Domain
}

// NewPointMass returns the point mass at x.
func NewPointMass(x float64) PointMassDist {
	return PointMassDist{x: x, dom: NewDiscreteDomain(x, x, 1)}
}

// X returns the location of the point mass.
func (d PointMassDist) X() float64 { return d.x }

func (d PointMassDist) Domain() Domain { return d.dom }

func (d PointMassDist) Kind() Kind { return Discrete }

func (d PointMassDist) PDF(x float64) float64 {
	if x == d.x {
		return 1
	}
	return 0
}

func (d PointMassDist) CDF(x float64) float64 {
	if x >= d.x {
		return 1
	}
	return 0
}

func (d PointMassDist) InvCDF(p float64) float64 {
	if p < 0 || p > 1 {
		return nan
	}
	return d.x
}

func (d PointMassDist) Mean() float64 { return d.x }

func (d PointMassDist) Variance() float64 { return 0 }

func (d PointMassDist) Median() float64 { return d.x }

func (d PointMassDist) MaxPDF() float64 { return 1 }

func (d PointMassDist) Rand(randx.Source) float64 { return d.x }
