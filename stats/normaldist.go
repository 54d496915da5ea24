// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/distkit/distkit/randx"
)

// NormalDist is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type NormalDist struct {
	mu, sigma float64
	dom       Domain
}

// NewNormal returns the normal distribution with mean mu and standard
// deviation sigma. A non-positive sigma is replaced by 1.
//
// The domain spans four standard deviations either side of the mean.
func NewNormal(mu, sigma float64) NormalDist {
	sigma = positive(sigma, 1)
	return NormalDist{mu: mu, sigma: sigma, dom: continuousDomain(mu-4*sigma, mu+4*sigma)}
}

// StdNormal is the standard normal distribution (Mu = 0, Sigma = 1)
var StdNormal = NewNormal(0, 1)

// 1/sqrt(2 * pi)
const invSqrt2Pi = 0.39894228040143267793994605993438186847585863116493465766592583

// Mu returns the mean.
func (n NormalDist) Mu() float64 { return n.mu }

// Sigma returns the standard deviation.
func (n NormalDist) Sigma() float64 { return n.sigma }

// WithMu returns n with mean mu.
func (n NormalDist) WithMu(mu float64) NormalDist { return NewNormal(mu, n.sigma) }

// WithSigma returns n with standard deviation sigma.
func (n NormalDist) WithSigma(sigma float64) NormalDist { return NewNormal(n.mu, sigma) }

func (n NormalDist) Domain() Domain { return n.dom }

func (n NormalDist) Kind() Kind { return Continuous }

func (n NormalDist) PDF(x float64) float64 {
	z := x - n.mu
	return math.Exp(-z*z/(2*n.sigma*n.sigma)) * invSqrt2Pi / n.sigma
}

func (n NormalDist) CDF(x float64) float64 {
	return (1 + math.Erf((x-n.mu)/(n.sigma*math.Sqrt2))) / 2
}

func (n NormalDist) InvCDF(p float64) float64 {
	if p < 0 || p > 1 {
		return nan
	}
	return n.mu + n.sigma*math.Sqrt2*math.Erfinv(2*p-1)
}

func (n NormalDist) Mean() float64 { return n.mu }

func (n NormalDist) Variance() float64 { return n.sigma * n.sigma }

func (n NormalDist) Median() float64 { return n.mu }

func (n NormalDist) MaxPDF() float64 { return invSqrt2Pi / n.sigma }

func (n NormalDist) Rand(src randx.Source) float64 {
	return n.mu + n.sigma*stdNormal(src)
}

// LogNormalDist is the distribution of exp(X) where X is normal with
// mean Mu and standard deviation Sigma.
type LogNormalDist struct {
	mu, sigma float64
	dom       Domain
}

// NewLogNormal returns the log-normal distribution whose logarithm has
// mean mu and standard deviation sigma. A non-positive sigma is
// replaced by 1.
//
// The domain is [0, mean + 4 standard deviations].
func NewLogNormal(mu, sigma float64) LogNormalDist {
	sigma = positive(sigma, 1)
	d := LogNormalDist{mu: mu, sigma: sigma}
	d.dom = continuousDomain(0, d.Mean()+4*math.Sqrt(d.Variance()))
	return d
}

// Mu returns the mean of the logarithm.
func (d LogNormalDist) Mu() float64 { return d.mu }

// Sigma returns the standard deviation of the logarithm.
func (d LogNormalDist) Sigma() float64 { return d.sigma }

func (d LogNormalDist) Domain() Domain { return d.dom }

func (d LogNormalDist) Kind() Kind { return Continuous }

func (d LogNormalDist) PDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	z := (math.Log(x) - d.mu) / d.sigma
	return math.Exp(-z*z/2) * invSqrt2Pi / (x * d.sigma)
}

func (d LogNormalDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return (1 + math.Erf((math.Log(x)-d.mu)/(d.sigma*math.Sqrt2))) / 2
}

func (d LogNormalDist) InvCDF(p float64) float64 {
	if p < 0 || p > 1 {
		return nan
	}
	return math.Exp(d.mu + d.sigma*math.Sqrt2*math.Erfinv(2*p-1))
}

func (d LogNormalDist) Mean() float64 {
	return math.Exp(d.mu + d.sigma*d.sigma/2)
}

func (d LogNormalDist) Variance() float64 {
	s2 := d.sigma * d.sigma
	return math.Expm1(s2) * math.Exp(2*d.mu+s2)
}

func (d LogNormalDist) Median() float64 { return math.Exp(d.mu) }

// MaxPDF returns the density at the mode exp(Mu - Sigma²).
func (d LogNormalDist) MaxPDF() float64 {
	return d.PDF(math.Exp(d.mu - d.sigma*d.sigma))
}

func (d LogNormalDist) Rand(src randx.Source) float64 {
	return math.Exp(d.mu + d.sigma*stdNormal(src))
}
