// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/distkit/distkit/mathx"
	"github.com/distkit/distkit/randx"
)

// NegativeBinomialDist is the distribution of the number of
// independent Bernoulli trials with success probability P needed to
// get K successes. Its support is K, K+1, ....
type NegativeBinomialDist struct {
	k   int
	p   float64
	dom Domain
}

// NewNegativeBinomial returns the negative binomial distribution of
// the trial on which the k'th success occurs. k is raised to at least
// 1. p is clamped to at most 1, and a non-positive p, for which the
// k'th success never occurs, is replaced by 0.5.
//
// The domain is truncated at the mean plus four standard deviations.
func NewNegativeBinomial(k int, p float64) NegativeBinomialDist {
	k = maxint(k, 1)
	if !(p > 0) {
		p = 0.5
	}
	p = math.Min(p, 1)
	mean := float64(k) / p
	sd := math.Sqrt(float64(k)*(1-p)) / p
	return NegativeBinomialDist{k: k, p: p, dom: NewDiscreteDomain(float64(k), math.Ceil(mean+4*sd), 1)}
}

// NewGeometric returns the geometric distribution of the trial number
// of the first success, which is the negative binomial distribution
// with one success.
func NewGeometric(p float64) NegativeBinomialDist {
	return NewNegativeBinomial(1, p)
}

// K returns the number of successes.
func (d NegativeBinomialDist) K() int { return d.k }

// P returns the success probability.
func (d NegativeBinomialDist) P() float64 { return d.p }

// WithK returns d with k successes.
func (d NegativeBinomialDist) WithK(k int) NegativeBinomialDist { return NewNegativeBinomial(k, d.p) }

// WithP returns d with success probability p.
func (d NegativeBinomialDist) WithP(p float64) NegativeBinomialDist { return NewNegativeBinomial(d.k, p) }

func (d NegativeBinomialDist) Domain() Domain { return d.dom }

func (d NegativeBinomialDist) Kind() Kind { return Discrete }

// PDF is the probability that the K'th success occurs on trial n.
func (d NegativeBinomialDist) PDF(n float64) float64 {
	ni, ok := asInt(n)
	if !ok || ni < d.k {
		return 0
	}
	if d.p == 1 {
		if ni == d.k {
			return 1
		}
		return 0
	}
	return math.Exp(mathx.Lchoose(ni-1, d.k-1) + float64(d.k)*math.Log(d.p) + float64(ni-d.k)*math.Log1p(-d.p))
}

// CDF is the probability that the K'th success occurs on or before
// trial n. That is the probability of at least K successes in n
// trials.
func (d NegativeBinomialDist) CDF(n float64) float64 {
	n = math.Floor(n + 1e-9)
	if n < float64(d.k) {
		return 0
	}
	if d.p == 1 {
		return 1
	}
	return mathx.BetaInc(d.p, float64(d.k), n-float64(d.k)+1)
}

func (d NegativeBinomialDist) Mean() float64 {
	return float64(d.k) / d.p
}

func (d NegativeBinomialDist) Variance() float64 {
	return float64(d.k) * (1 - d.p) / (d.p * d.p)
}

// MaxPDF returns the probability of the mode 1 + ⌊(K-1)/P⌋.
func (d NegativeBinomialDist) MaxPDF() float64 {
	return d.PDF(1 + math.Floor(float64(d.k-1)/d.p))
}

// Rand counts simulated trials until the K'th success.
func (d NegativeBinomialDist) Rand(src randx.Source) float64 {
	trials, successes := 0, 0
	for successes < d.k {
		trials++
		if src.Float64() < d.p {
			successes++
		}
	}
	return float64(trials)
}
