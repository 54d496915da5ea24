// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/distkit/distkit/mathx"
	"github.com/distkit/distkit/randx"
)

// BinomialDist is a binomial distribution: the number of successes in
// N independent Bernoulli trials, each with success probability P.
type BinomialDist struct {
	n   int
	p   float64
	dom Domain
}

// NewBinomial returns the binomial distribution with n trials and
// success probability p. n is raised to at least 1 and p is clamped
// to [0, 1].
func NewBinomial(n int, p float64) BinomialDist {
	n = maxint(n, 1)
	p = clampProb(p)
	return BinomialDist{n: n, p: p, dom: NewDiscreteDomain(0, float64(n), 1)}
}

// NewBernoulli returns the Bernoulli distribution with success
// probability p, which is the binomial distribution with one trial.
func NewBernoulli(p float64) BinomialDist {
	return NewBinomial(1, p)
}

// N returns the number of trials.
func (d BinomialDist) N() int { return d.n }

// P returns the success probability of each trial.
func (d BinomialDist) P() float64 { return d.p }

// WithN returns d with n trials.
func (d BinomialDist) WithN(n int) BinomialDist { return NewBinomial(n, d.p) }

// WithP returns d with success probability p.
func (d BinomialDist) WithP(p float64) BinomialDist { return NewBinomial(d.n, p) }

func (d BinomialDist) Domain() Domain { return d.dom }

func (d BinomialDist) Kind() Kind { return Discrete }

// PDF is the probability of getting exactly k successes in d.N()
// independent Bernoulli trials with probability d.P().
func (d BinomialDist) PDF(k float64) float64 {
	ki, ok := asInt(k)
	if !ok || ki < 0 || ki > d.n {
		return 0
	}
	return binomPMF(d.n, ki, d.p)
}

// binomPMF returns C(n,k) pᵏ (1-p)ⁿ⁻ᵏ for 0 <= k <= n.
func binomPMF(n, k int, p float64) float64 {
	switch {
	case p == 0:
		if k == 0 {
			return 1
		}
		return 0
	case p == 1:
		if k == n {
			return 1
		}
		return 0
	}
	return math.Exp(mathx.Lchoose(n, k) + float64(k)*math.Log(p) + float64(n-k)*math.Log1p(-p))
}

// CDF is the probability of getting k or fewer successes in d.N()
// independent Bernoulli trials with probability d.P().
func (d BinomialDist) CDF(k float64) float64 {
	k = math.Floor(k + 1e-9)
	if k < 0 {
		return 0
	} else if k >= float64(d.n) {
		return 1
	}
	if d.p == 0 {
		return 1
	} else if d.p == 1 {
		return 0
	}
	return mathx.BetaInc(1-d.p, float64(d.n)-k, k+1)
}

func (d BinomialDist) Mean() float64 {
	return float64(d.n) * d.p
}

func (d BinomialDist) Variance() float64 {
	return float64(d.n) * d.p * (1 - d.p)
}

// MaxPDF returns the probability of the mode ⌊(N+1)P⌋.
func (d BinomialDist) MaxPDF() float64 {
	mode := minint(int(math.Floor(float64(d.n+1)*d.p)), d.n)
	return d.PDF(float64(mode))
}

// Rand counts the successes in d.N() simulated trials.
func (d BinomialDist) Rand(src randx.Source) float64 {
	return float64(bernoulliTrials(d.n, d.p, src))
}

// NormalApprox returns a normal distribution approximation of
// binomial distribution d.
//
// Because the binomial distribution is discrete and the normal
// distribution is continuous, the caller must apply a continuity
// correction when using this approximation. Specifically, if b is the
// binomial distribution and n is the normal approximation, operations
// map as follows:
//
//	b.PDF(k) => n.CDF(k+0.5) - n.CDF(k-0.5)
//	b.CDF(k) => n.CDF(k+0.5)
func (d BinomialDist) NormalApprox() NormalDist {
	return NewNormal(d.Mean(), math.Sqrt(d.Variance()))
}
