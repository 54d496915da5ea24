// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/distkit/distkit/mathx"
	"github.com/distkit/distkit/randx"
)

// StudentDist is a Student's t-distribution with V degrees of
// freedom.
type StudentDist struct {
	v      float64
	factor float64
	dom    Domain
}

// NewStudent returns the t-distribution with v degrees of freedom. A
// non-positive v is replaced by 1.
//
// When the variance exists (v > 2) the domain spans four standard
// deviations either side of 0; otherwise it is fixed at [-8, 8].
func NewStudent(v float64) StudentDist {
	v = positive(v, 1)
	bound := 8.0
	if v > 2 {
		bound = 4 * math.Sqrt(v/(v-2))
	}
	return StudentDist{
		v:      v,
		factor: math.Exp(mathx.LogGamma((v+1)/2)-mathx.LogGamma(v/2)) / math.Sqrt(v*math.Pi),
		dom:    continuousDomain(-bound, bound),
	}
}

// NewStandardCauchy returns the standard Cauchy distribution as the
// t-distribution with one degree of freedom. See CauchyDist for a
// Cauchy distribution with location and scale.
func NewStandardCauchy() StudentDist {
	return NewStudent(1)
}

// V returns the degrees of freedom.
func (t StudentDist) V() float64 { return t.v }

// WithV returns t with v degrees of freedom.
func (t StudentDist) WithV(v float64) StudentDist { return NewStudent(v) }

func (t StudentDist) Domain() Domain { return t.dom }

func (t StudentDist) Kind() Kind { return Continuous }

func (t StudentDist) PDF(x float64) float64 {
	return t.factor * math.Pow(1+(x*x)/t.v, -(t.v+1)/2)
}

func (t StudentDist) CDF(x float64) float64 {
	if x == 0 {
		return 0.5
	} else if x > 0 {
		return 1 - 0.5*mathx.BetaInc(t.v/(t.v+x*x), t.v/2, 0.5)
	} else if x < 0 {
		return 1 - t.CDF(-x)
	}
	return nan
}

// InvCDF is in closed form for one and two degrees of freedom and
// found by bisection of the CDF otherwise.
func (t StudentDist) InvCDF(p float64) float64 {
	if p < 0 || p > 1 {
		return nan
	}
	switch {
	case p == 0:
		return -inf
	case p == 1:
		return inf
	case t.v == 1:
		return math.Tan(math.Pi * (p - 0.5))
	case t.v == 2:
		return (2*p - 1) / math.Sqrt(2*p*(1-p))
	}
	return DomainInvCDF(t, p)
}

// Mean returns 0 when v > 1 and NaN otherwise.
func (t StudentDist) Mean() float64 {
	if t.v <= 1 {
		return nan
	}
	return 0
}

// Variance returns v/(v-2) when v > 2, +Inf when 1 < v <= 2, and NaN
// otherwise.
func (t StudentDist) Variance() float64 {
	switch {
	case t.v > 2:
		return t.v / (t.v - 2)
	case t.v > 1:
		return inf
	}
	return nan
}

func (t StudentDist) Median() float64 { return 0 }

func (t StudentDist) MaxPDF() float64 { return t.factor }

// Rand returns Z/sqrt(W/v) for a standard normal Z and an
// independent chi-square W with v degrees of freedom.
func (t StudentDist) Rand(src randx.Source) float64 {
	z := stdNormal(src)
	w := 2 * stdGamma(t.v/2, src)
	return z / math.Sqrt(w/t.v)
}
