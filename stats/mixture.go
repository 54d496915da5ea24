// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"github.com/distkit/distkit/randx"
	"gonum.org/v1/gonum/floats"
)

// MixtureDist is a finite mixture: with probability Weights()[i], a
// value is drawn from Components()[i].
type MixtureDist struct {
	dists   []Dist
	weights []float64
	cum     []float64
	kind    Kind
	dom     Domain
	support []float64
}

// NewMixture returns the mixture of dists with the given weights.
//
// Negative and NaN weights are treated as 0, missing weights are 0,
// and the weights are normalized to sum to 1. If they sum to 0, every
// component gets equal weight. A mixture with no components is the
// point mass at 0.
//
// The domain of the mixture spans the domains of all components with
// the narrowest component bin width. If the components are not all of
// the same Kind, the mixture is Mixed. The grid of a Discrete mixture
// starts at its smallest value, so components whose support does not
// lie on that grid are missed by Domain().Values(). InvCDF and Support
// use the components' own support points instead.
func NewMixture(dists []Dist, weights []float64) MixtureDist {
	if len(dists) == 0 {
		dists = []Dist{NewPointMass(0)}
	}
	dists = append([]Dist(nil), dists...)
	ws := make([]float64, len(dists))
	for i := range ws {
		if i < len(weights) && weights[i] > 0 {
			ws[i] = weights[i]
		}
	}
	if sum := floats.Sum(ws); sum > 0 && !math.IsInf(sum, 0) {
		floats.Scale(1/sum, ws)
	} else {
		for i := range ws {
			ws[i] = 1 / float64(len(ws))
		}
	}

	kind := dists[0].Kind()
	lo, hi, w := math.Inf(1), math.Inf(-1), math.Inf(1)
	for _, d := range dists {
		if d.Kind() != kind {
			kind = Mixed
		}
		dom := d.Domain()
		lo = math.Min(lo, dom.LowerBound())
		hi = math.Max(hi, dom.UpperBound())
		w = math.Min(w, dom.Width())
	}

	var support []float64
	if kind == Discrete {
		for i, c := range dists {
			if ws[i] == 0 {
				continue
			}
			for _, x := range c.Domain().Values() {
				if c.PDF(x) > 0 {
					support = append(support, x)
				}
			}
		}
		sort.Float64s(support)
		support = dedup(support)
	}

	return MixtureDist{
		support: support,
		dists:   dists,
		weights: ws,
		cum:     floats.CumSum(make([]float64, len(ws)), ws),
		kind:    kind,
		dom:     NewDomain(lo, hi, w),
	}
}

// Components returns the component distributions. The caller must
// not modify the returned slice.
func (d MixtureDist) Components() []Dist { return d.dists }

// Weights returns the normalized component weights. The caller must
// not modify the returned slice.
func (d MixtureDist) Weights() []float64 { return d.weights }

func (d MixtureDist) Domain() Domain { return d.dom }

// Support returns the sorted points with positive probability of a
// Discrete mixture, or nil if the mixture is not Discrete. The caller
// must not modify the returned slice.
func (d MixtureDist) Support() []float64 { return d.support }

func (d MixtureDist) Kind() Kind { return d.kind }

func (d MixtureDist) PDF(x float64) float64 {
	sum := 0.0
	for i, c := range d.dists {
		if d.weights[i] != 0 {
			sum += d.weights[i] * c.PDF(x)
		}
	}
	return sum
}

func (d MixtureDist) CDF(x float64) float64 {
	sum := 0.0
	for i, c := range d.dists {
		if d.weights[i] != 0 {
			sum += d.weights[i] * CDF(c, x)
		}
	}
	return clampProb(sum)
}

// InvCDF returns the smallest x such that CDF(x) >= p. For a Discrete
// mixture, x is always one of the component support points.
func (d MixtureDist) InvCDF(p float64) float64 {
	if p < 0 || p > 1 || math.IsNaN(p) {
		return nan
	}
	if d.kind != Discrete || len(d.support) == 0 {
		return DomainInvCDF(d, p)
	}
	i := sort.Search(len(d.support), func(i int) bool { return d.CDF(d.support[i]) >= p })
	return d.support[minint(i, len(d.support)-1)]
}

func (d MixtureDist) Mean() float64 {
	sum := 0.0
	for i, c := range d.dists {
		if d.weights[i] != 0 {
			sum += d.weights[i] * Mean(c)
		}
	}
	return sum
}

// Variance uses the law of total variance, E[Var(X|C)] + Var(E[X|C]).
func (d MixtureDist) Variance() float64 {
	var ev, em, em2 float64
	for i, c := range d.dists {
		p := d.weights[i]
		if p == 0 {
			continue
		}
		mu := Mean(c)
		ev += p * Variance(c)
		em += p * mu
		em2 += p * mu * mu
	}
	return ev + math.Max(em2-em*em, 0)
}

// Rand picks a component by its weight and draws from it.
func (d MixtureDist) Rand(src randx.Source) float64 {
	u := src.Float64()
	i := sort.Search(len(d.cum), func(i int) bool { return d.cum[i] > u })
	if i == len(d.cum) {
		i = len(d.cum) - 1
	}
	return Rand(d.dists[i], src)
}

// dedup removes adjacent duplicates from the sorted slice xs in place.
func dedup(xs []float64) []float64 {
	if len(xs) == 0 {
		return xs
	}
	out := xs[:1]
	for _, x := range xs[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}
	return out
}
