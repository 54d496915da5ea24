// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/distkit/distkit/mathx"
	"github.com/distkit/distkit/randx"
)

// PoissonDist is a Poisson distribution with mean Lambda.
type PoissonDist struct {
	lambda float64
	dom    Domain
}

// NewPoisson returns the Poisson distribution with mean lambda. A
// non-positive lambda is replaced by 1.
//
// The domain is truncated at the mean plus four standard deviations.
func NewPoisson(lambda float64) PoissonDist {
	lambda = positive(lambda, 1)
	upper := math.Ceil(lambda + 4*math.Sqrt(lambda))
	return PoissonDist{lambda: lambda, dom: NewDiscreteDomain(0, upper, 1)}
}

// Lambda returns the mean of d.
func (d PoissonDist) Lambda() float64 { return d.lambda }

// WithLambda returns d with mean lambda.
func (d PoissonDist) WithLambda(lambda float64) PoissonDist { return NewPoisson(lambda) }

func (d PoissonDist) Domain() Domain { return d.dom }

func (d PoissonDist) Kind() Kind { return Discrete }

func (d PoissonDist) PDF(x float64) float64 {
	k, ok := asInt(x)
	if !ok || k < 0 {
		return 0
	}
	kf := float64(k)
	return math.Exp(-d.lambda + kf*math.Log(d.lambda) - mathx.LogGamma(kf+1))
}

func (d PoissonDist) CDF(x float64) float64 {
	k := math.Floor(x + 1e-9)
	if k < 0 {
		return 0
	}
	// P(X <= k) = Q(k+1, λ), the upper regularized gamma function.
	return 1 - mathx.GammaInc(d.lambda, k+1)
}

func (d PoissonDist) Mean() float64 { return d.lambda }

func (d PoissonDist) Variance() float64 { return d.lambda }

// MaxPDF returns the probability of the mode ⌊λ⌋.
func (d PoissonDist) MaxPDF() float64 {
	return d.PDF(math.Floor(d.lambda))
}

func (d PoissonDist) Rand(src randx.Source) float64 {
	return float64(poisson(d.lambda, src))
}
