// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/distkit/distkit/randx"
)

// LogisticDist is a logistic distribution with location Mu and scale
// S.
type LogisticDist struct {
	mu, s float64
	dom   Domain
}

// NewLogistic returns the logistic distribution with location mu and
// scale s. A non-positive s is replaced by 1.
//
// The domain spans four standard deviations either side of mu.
func NewLogistic(mu, s float64) LogisticDist {
	d := LogisticDist{mu: mu, s: positive(s, 1)}
	sd := math.Sqrt(d.Variance())
	d.dom = continuousDomain(mu-4*sd, mu+4*sd)
	return d
}

// Mu returns the location.
func (d LogisticDist) Mu() float64 { return d.mu }

// S returns the scale.
func (d LogisticDist) S() float64 { return d.s }

func (d LogisticDist) Domain() Domain { return d.dom }

func (d LogisticDist) Kind() Kind { return Continuous }

func (d LogisticDist) PDF(x float64) float64 {
	e := math.Exp(-math.Abs(x-d.mu) / d.s)
	return e / (d.s * (1 + e) * (1 + e))
}

func (d LogisticDist) CDF(x float64) float64 {
	return 1 / (1 + math.Exp(-(x-d.mu)/d.s))
}

func (d LogisticDist) InvCDF(p float64) float64 {
	if p < 0 || p > 1 {
		return nan
	}
	return d.mu + d.s*math.Log(p/(1-p))
}

func (d LogisticDist) Mean() float64 { return d.mu }

func (d LogisticDist) Variance() float64 {
	return math.Pi * math.Pi * d.s * d.s / 3
}

func (d LogisticDist) Median() float64 { return d.mu }

func (d LogisticDist) MaxPDF() float64 { return 1 / (4 * d.s) }

func (d LogisticDist) Rand(src randx.Source) float64 {
	return d.InvCDF(openUnit(src))
}
