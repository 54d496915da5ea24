// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/distkit/distkit/internal/mathtest"
)

// oracle is a reference implementation of a distribution.
type oracle interface {
	Prob(x float64) float64
	CDF(x float64) float64
}

var oracleCases = []struct {
	dist Dist
	ref  oracle
}{
	{NewNormal(0, 1), distuv.Normal{Mu: 0, Sigma: 1}},
	{NewNormal(-3, 0.5), distuv.Normal{Mu: -3, Sigma: 0.5}},
	{NewLogNormal(0.5, 0.75), distuv.LogNormal{Mu: 0.5, Sigma: 0.75}},
	{NewGamma(2.5, 2), distuv.Gamma{Alpha: 2.5, Beta: 0.5}},
	{NewGamma(0.8, 1), distuv.Gamma{Alpha: 0.8, Beta: 1}},
	{NewExponential(3), distuv.Exponential{Rate: 3}},
	{NewChiSquare(5), distuv.ChiSquared{K: 5}},
	{NewBeta(2, 5), distuv.Beta{Alpha: 2, Beta: 5}},
	{NewBeta(0.5, 0.5), distuv.Beta{Alpha: 0.5, Beta: 0.5}},
	{NewStudent(3), distuv.StudentsT{Mu: 0, Sigma: 1, Nu: 3}},
	{NewStudent(30), distuv.StudentsT{Mu: 0, Sigma: 1, Nu: 30}},
	{NewFisher(4, 12), distuv.F{D1: 4, D2: 12}},
	{NewWeibull(1.5, 2), distuv.Weibull{K: 1.5, Lambda: 2}},
	{NewPareto(3, 2), distuv.Pareto{Xm: 2, Alpha: 3}},
	{NewUniform(-1, 3), distuv.Uniform{Min: -1, Max: 3}},
	{NewTriangle(0, 4, 1), distuv.NewTriangle(0, 4, 1, nil)},
	{NewLogistic(1, 0.5), distuv.Logistic{Mu: 1, S: 0.5}},
}

func TestOracleContinuous(t *testing.T) {
	ps := []float64{0.01, 0.05, 0.25, 0.5, 0.75, 0.95, 0.99}
	for _, c := range oracleCases {
		name := fmt.Sprintf("%T%v", c.dist, c.dist.Domain().LowerBound())
		for _, p := range ps {
			x := InvCDF(c.dist, p)
			if got := c.ref.CDF(x); !mathtest.AeqTol(p, got, 1e-5) {
				t.Errorf("%s: InvCDF(%v) = %v, which has reference CDF %v", name, p, x, got)
			}
			if want, got := c.ref.Prob(x), c.dist.PDF(x); !mathtest.AeqTol(want, got, 1e-7) {
				t.Errorf("%s: PDF(%v) = %v, want %v", name, x, got, want)
			}
			if want, got := c.ref.CDF(x), CDF(c.dist, x); !mathtest.AeqTol(want, got, 2e-6) {
				t.Errorf("%s: CDF(%v) = %v, want %v", name, x, got, want)
			}
		}
	}
}

func TestOracleDiscrete(t *testing.T) {
	for _, c := range []struct {
		dist Dist
		ref  oracle
	}{
		{NewBinomial(12, 0.35), distuv.Binomial{N: 12, P: 0.35}},
		{NewBernoulli(0.2), distuv.Bernoulli{P: 0.2}},
		{NewPoisson(3.5), distuv.Poisson{Lambda: 3.5}},
	} {
		name := fmt.Sprintf("%T", c.dist)
		for _, x := range c.dist.Domain().Values() {
			if want, got := c.ref.Prob(x), c.dist.PDF(x); !mathtest.AeqTol(want, got, 1e-8) {
				t.Errorf("%s: PDF(%v) = %v, want %v", name, x, got, want)
			}
			if want, got := c.ref.CDF(x), CDF(c.dist, x); !mathtest.AeqTol(want, got, 2e-6) {
				t.Errorf("%s: CDF(%v) = %v, want %v", name, x, got, want)
			}
		}
	}
}

func TestOracleNormalization(t *testing.T) {
	// Integrate the closed-form densities over their domains on a
	// grid much finer than the domain's own bins.
	for _, c := range oracleCases {
		dom := c.dist.Domain()
		if !math.IsInf(c.dist.PDF(dom.LowerBound()), 0) {
			xs := make([]float64, 4001)
			floats.Span(xs, dom.LowerBound(), dom.UpperBound())
			fs := PDFEach(c.dist, xs)
			got := integrate.Simpsons(xs, fs)
			want := c.ref.CDF(dom.UpperBound()) - c.ref.CDF(dom.LowerBound())
			if !mathtest.AeqTol(want, got, 5e-4) {
				t.Errorf("%T: ∫PDF over [%v, %v] = %v, want %v",
					c.dist, dom.LowerBound(), dom.UpperBound(), got, want)
			}
		}
	}
}
