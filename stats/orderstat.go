// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"github.com/distkit/distkit/mathx"
	"github.com/distkit/distkit/randx"
)

// OrderStatDist is the distribution of the K'th smallest of N
// independent draws from a base distribution.
type OrderStatDist struct {
	base Dist
	n, k int
}

// NewOrderStat returns the distribution of the k'th order statistic
// of a sample of size n from d. n is raised to at least 1 and k is
// clamped to [1, n].
func NewOrderStat(d Dist, n, k int) OrderStatDist {
	n = maxint(n, 1)
	k = maxint(minint(k, n), 1)
	return OrderStatDist{base: d, n: n, k: k}
}

// Base returns the sampled distribution.
func (d OrderStatDist) Base() Dist { return d.base }

// N returns the sample size.
func (d OrderStatDist) N() int { return d.n }

// K returns the order of the statistic.
func (d OrderStatDist) K() int { return d.k }

func (d OrderStatDist) Domain() Domain { return d.base.Domain() }

func (d OrderStatDist) Kind() Kind { return d.base.Kind() }

// g maps the base CDF to the CDF of the order statistic. The K'th
// order statistic is <= x exactly when at least K of the N draws are,
// which is a binomial tail.
func (d OrderStatDist) g(p float64) float64 {
	return mathx.BetaInc(clampProb(p), float64(d.k), float64(d.n-d.k+1))
}

func (d OrderStatDist) PDF(x float64) float64 {
	f := d.base.PDF(x)
	if f == 0 {
		return 0
	}
	F := CDF(d.base, x)
	if d.base.Kind() == Discrete {
		return math.Max(d.g(F)-d.g(F-f), 0)
	}
	n, k := d.n, d.k
	return math.Exp(mathx.Lchoose(n, k)) * float64(k) *
		math.Pow(F, float64(k-1)) * math.Pow(1-F, float64(n-k)) * f
}

func (d OrderStatDist) CDF(x float64) float64 {
	return d.g(CDF(d.base, x))
}

func (d OrderStatDist) Rand(src randx.Source) float64 {
	xs := RandN(d.base, src, d.n)
	sort.Float64s(xs)
	return xs[d.k-1]
}

// FiniteOrderStatDist is the distribution of the K'th smallest of a
// sample of size N drawn without replacement from {1, ..., Pop}.
type FiniteOrderStatDist struct {
	pop, n, k int
	dom       Domain
}

// NewFiniteOrderStat returns the distribution of the k'th smallest of
// n values drawn without replacement from the population {1, ...,
// pop}. pop is raised to at least 1, n is clamped to [1, pop], and k
// to [1, n].
func NewFiniteOrderStat(pop, n, k int) FiniteOrderStatDist {
	pop = maxint(pop, 1)
	n = maxint(minint(n, pop), 1)
	k = maxint(minint(k, n), 1)
	return FiniteOrderStatDist{
		pop: pop, n: n, k: k,
		dom: NewDiscreteDomain(float64(k), float64(pop-n+k), 1),
	}
}

// Pop returns the population size.
func (d FiniteOrderStatDist) Pop() int { return d.pop }

// N returns the sample size.
func (d FiniteOrderStatDist) N() int { return d.n }

// K returns the order of the statistic.
func (d FiniteOrderStatDist) K() int { return d.k }

func (d FiniteOrderStatDist) Domain() Domain { return d.dom }

func (d FiniteOrderStatDist) Kind() Kind { return Discrete }

func (d FiniteOrderStatDist) PDF(x float64) float64 {
	xi, ok := asInt(x)
	if !ok || xi < d.k || xi > d.pop-d.n+d.k {
		return 0
	}
	return math.Exp(mathx.Lchoose(xi-1, d.k-1) + mathx.Lchoose(d.pop-xi, d.n-d.k) -
		mathx.Lchoose(d.pop, d.n))
}

func (d FiniteOrderStatDist) Mean() float64 {
	return float64(d.k) * float64(d.pop+1) / float64(d.n+1)
}

func (d FiniteOrderStatDist) Variance() float64 {
	pop, n, k := float64(d.pop), float64(d.n), float64(d.k)
	return k * (n - k + 1) * (pop + 1) * (pop - n) / ((n + 1) * (n + 1) * (n + 2))
}

// Rand scans the population once, selecting each element with the
// probability that keeps the sample uniform, and returns the K'th
// selected element.
func (d FiniteOrderStatDist) Rand(src randx.Source) float64 {
	need, seen := d.n, 0
	for x := 1; x <= d.pop; x++ {
		if src.Float64()*float64(d.pop-x+1) < float64(need) {
			need--
			seen++
			if seen == d.k {
				return float64(x)
			}
		}
	}
	return float64(d.pop - d.n + d.k)
}

// BinomialRandomNDist is the distribution of the number of successes
// in a random number of Bernoulli trials, where the number of trials
// is drawn from a discrete distribution on the non-negative integers.
type BinomialRandomNDist struct {
	trials Dist
	p      float64
	dom    Domain
}

// NewBinomialRandomN returns the distribution of the number of
// successes in N trials with success probability p, where N is drawn
// from trials. p is clamped to [0, 1].
func NewBinomialRandomN(trials Dist, p float64) BinomialRandomNDist {
	hi := math.Max(math.Floor(trials.Domain().UpperValue()+1e-9), 0)
	return BinomialRandomNDist{
		trials: trials,
		p:      clampProb(p),
		dom:    NewDiscreteDomain(0, hi, 1),
	}
}

// Trials returns the distribution of the number of trials.
func (d BinomialRandomNDist) Trials() Dist { return d.trials }

// P returns the success probability of each trial.
func (d BinomialRandomNDist) P() float64 { return d.p }

func (d BinomialRandomNDist) Domain() Domain { return d.dom }

func (d BinomialRandomNDist) Kind() Kind { return Discrete }

func (d BinomialRandomNDist) PDF(x float64) float64 {
	k, ok := asInt(x)
	if !ok || k < 0 {
		return 0
	}
	sum := 0.0
	for _, v := range d.trials.Domain().Values() {
		n, ok := asInt(v)
		if !ok || n < k {
			continue
		}
		if f := d.trials.PDF(v); f > 0 {
			sum += f * binomPMF(n, k, d.p)
		}
	}
	return sum
}

func (d BinomialRandomNDist) Mean() float64 {
	return d.p * Mean(d.trials)
}

func (d BinomialRandomNDist) Variance() float64 {
	return d.p*d.p*Variance(d.trials) + d.p*(1-d.p)*Mean(d.trials)
}

func (d BinomialRandomNDist) Rand(src randx.Source) float64 {
	n := maxint(int(math.Round(Rand(d.trials, src))), 0)
	return float64(bernoulliTrials(n, d.p, src))
}
