// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/distkit/distkit/randx"
)

// ParetoDist is a Pareto distribution with shape K and scale B,
// supported on [B, ∞).
type ParetoDist struct {
	k, b float64
	dom  Domain
}

// NewPareto returns the Pareto distribution with shape k and scale b.
// Non-positive parameters are replaced by 1.
//
// The tail is heavy, so the domain is truncated at the 99.9th
// percentile rather than at a multiple of the standard deviation.
func NewPareto(k, b float64) ParetoDist {
	d := ParetoDist{k: positive(k, 1), b: positive(b, 1)}
	d.dom = continuousDomain(d.b, d.InvCDF(0.999))
	return d
}

// K returns the shape parameter.
func (d ParetoDist) K() float64 { return d.k }

// B returns the scale parameter, which is the minimum value.
func (d ParetoDist) B() float64 { return d.b }

func (d ParetoDist) Domain() Domain { return d.dom }

func (d ParetoDist) Kind() Kind { return Continuous }

func (d ParetoDist) PDF(x float64) float64 {
	if x < d.b {
		return 0
	}
	return d.k * math.Pow(d.b, d.k) / math.Pow(x, d.k+1)
}

func (d ParetoDist) CDF(x float64) float64 {
	if x <= d.b {
		return 0
	}
	return 1 - math.Pow(d.b/x, d.k)
}

func (d ParetoDist) InvCDF(p float64) float64 {
	if p < 0 || p > 1 {
		return nan
	}
	return d.b / math.Pow(1-p, 1/d.k)
}

// Mean returns kb/(k-1) when k > 1 and +Inf otherwise.
func (d ParetoDist) Mean() float64 {
	if d.k <= 1 {
		return inf
	}
	return d.k * d.b / (d.k - 1)
}

// Variance returns the variance when k > 2 and +Inf otherwise.
func (d ParetoDist) Variance() float64 {
	if d.k <= 2 {
		return inf
	}
	return d.b * d.b * d.k / ((d.k - 1) * (d.k - 1) * (d.k - 2))
}

func (d ParetoDist) MaxPDF() float64 { return d.k / d.b }

func (d ParetoDist) Rand(src randx.Source) float64 {
	return d.InvCDF(src.Float64())
}
