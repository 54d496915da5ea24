// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/distkit/distkit/randx"
)

// Kind is the type of a distribution.
type Kind int

//go:generate stringer -type=Kind

const (
	// Discrete distributions put all of their mass on the
	// midpoints of their Domain.
	Discrete Kind = iota

	// Continuous distributions have a density with respect to
	// Lebesgue measure.
	Continuous

	// Mixed distributions combine discrete and continuous parts,
	// such as a mixture of a point mass and a normal.
	Mixed
)

// clampKind maps an out-of-range kind to the nearest valid one.
func clampKind(k Kind) Kind {
	if k < Discrete {
		return Discrete
	} else if k > Mixed {
		return Mixed
	}
	return k
}

// A Dist is a probability distribution.
//
// PDF is the only operation every distribution must provide. All other
// operations are available through the functions CDF, InvCDF, Mean,
// Variance, MaxPDF, Median and Rand, which use a distribution's closed
// form implementation if it has one (see CDFer and friends) and fall
// back to a numerical approximation over the distribution's Domain
// otherwise.
type Dist interface {
	// PDF returns the probability mass at x of a discrete
	// distribution, or the probability density at x of a
	// continuous one.
	PDF(x float64) float64

	// Domain returns the discretized support of this
	// distribution. The total weight outside the domain should be
	// approximately 0.
	Domain() Domain

	// Kind returns the type of this distribution.
	Kind() Kind
}

// A CDFer is a distribution with a closed form cumulative distribution
// function.
type CDFer interface {
	// CDF returns P(X <= x).
	CDF(x float64) float64
}

// An InvCDFer is a distribution with a closed form quantile function.
type InvCDFer interface {
	// InvCDF returns the smallest x such that CDF(x) >= p. p must
	// be in [0, 1].
	InvCDF(p float64) float64
}

// A Meaner is a distribution with a closed form mean.
type Meaner interface {
	Mean() float64
}

// A Variancer is a distribution with a closed form variance.
type Variancer interface {
	Variance() float64
}

// A MaxPDFer is a distribution with a closed form for the maximum of
// its PDF.
type MaxPDFer interface {
	MaxPDF() float64
}

// A Medianer is a distribution with a closed form median.
type Medianer interface {
	Median() float64
}

// A Sampler is a distribution with a specialized simulation algorithm.
type Sampler interface {
	// Rand returns a random value drawn from the distribution
	// using src as the source of uniform randomness.
	Rand(src randx.Source) float64
}

// CDF returns P(X <= x) for distribution d.
func CDF(d Dist, x float64) float64 {
	if c, ok := d.(CDFer); ok {
		return c.CDF(x)
	}
	return DomainCDF(d, x)
}

// InvCDF returns the p'th quantile of distribution d.
func InvCDF(d Dist, p float64) float64 {
	if q, ok := d.(InvCDFer); ok {
		return q.InvCDF(p)
	}
	return DomainInvCDF(d, p)
}

// Mean returns the mean of d.
func Mean(d Dist) float64 {
	if m, ok := d.(Meaner); ok {
		return m.Mean()
	}
	return DomainMean(d)
}

// Variance returns the variance of d.
func Variance(d Dist) float64 {
	if v, ok := d.(Variancer); ok {
		return v.Variance()
	}
	return DomainVariance(d)
}

// StdDev returns the standard deviation of d.
func StdDev(d Dist) float64 {
	return math.Sqrt(Variance(d))
}

// MaxPDF returns the largest value of d's PDF.
func MaxPDF(d Dist) float64 {
	if m, ok := d.(MaxPDFer); ok {
		return m.MaxPDF()
	}
	return DomainMaxPDF(d)
}

// Median returns the median of d.
func Median(d Dist) float64 {
	if m, ok := d.(Medianer); ok {
		return m.Median()
	}
	return InvCDF(d, 0.5)
}

// FailureRate returns the hazard function PDF(x) / (1 - CDF(x)) of d.
func FailureRate(d Dist, x float64) float64 {
	return d.PDF(x) / (1 - CDF(d, x))
}

// Rand returns a random value drawn from d. If src is nil, it uses
// randx.Default().
//
// If d has no specialized sampler, this uses inverse transform
// sampling, InvCDF(d, U).
func Rand(d Dist, src randx.Source) float64 {
	src = randx.Or(src)
	if s, ok := d.(Sampler); ok {
		return s.Rand(src)
	}
	return InvCDF(d, src.Float64())
}

// RandN returns n random values drawn from d.
func RandN(d Dist, src randx.Source, n int) []float64 {
	src = randx.Or(src)
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = Rand(d, src)
	}
	return xs
}

// PDFEach returns d.PDF(xs[i]) for each i.
func PDFEach(d Dist, xs []float64) []float64 {
	return atEach(d.PDF, xs)
}

// CDFEach returns CDF(d, xs[i]) for each i.
func CDFEach(d Dist, xs []float64) []float64 {
	return atEach(func(x float64) float64 { return CDF(d, x) }, xs)
}
