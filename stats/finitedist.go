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

// FiniteDist is a discrete distribution on the lattice A, A+W, ...,
// A+(n-1)W with an explicit probability for each point.
type FiniteDist struct {
	probs []float64
	cum   []float64
	dom   Domain
}

// NewFinite returns the distribution that puts mass probs[i] on
// a+i*w.
//
// A non-positive w is replaced by 1. Negative and NaN probabilities
// are treated as 0 and the rest are normalized to sum to 1. If they
// sum to 0, or probs is empty, every point gets equal weight.
func NewFinite(a, w float64, probs []float64) FiniteDist {
	w = positive(w, 1)
	if len(probs) == 0 {
		probs = []float64{1}
	}
	ps := make([]float64, len(probs))
	for i, p := range probs {
		if p > 0 {
			ps[i] = p
		}
	}
	if sum := floats.Sum(ps); sum > 0 && !math.IsInf(sum, 0) {
		floats.Scale(1/sum, ps)
	} else {
		for i := range ps {
			ps[i] = 1 / float64(len(ps))
		}
	}
	return FiniteDist{
		probs: ps,
		cum:   floats.CumSum(make([]float64, len(ps)), ps),
		dom:   NewDiscreteDomain(a, a+float64(len(ps)-1)*w, w),
	}
}

// Probs returns the normalized probabilities. The caller must not
// modify the returned slice.
func (d FiniteDist) Probs() []float64 { return d.probs }

func (d FiniteDist) Domain() Domain { return d.dom }

func (d FiniteDist) Kind() Kind { return Discrete }

func (d FiniteDist) PDF(x float64) float64 {
	i, ok := d.dom.lattice(x)
	if !ok {
		return 0
	}
	return d.probs[i]
}

func (d FiniteDist) CDF(x float64) float64 {
	if x < d.dom.LowerValue() {
		return 0
	}
	i := d.dom.Index(x)
	if i >= len(d.cum) {
		return 1
	}
	if d.dom.Value(i) > x+1e-9*d.dom.Width() {
		i--
	}
	return math.Min(d.cum[i], 1)
}

func (d FiniteDist) InvCDF(p float64) float64 {
	if p < 0 || p > 1 {
		return nan
	}
	i := sort.Search(len(d.cum), func(i int) bool { return d.cum[i] >= p-1e-12 })
	return d.dom.Value(minint(i, len(d.cum)-1))
}

func (d FiniteDist) Mean() float64 {
	return floats.Dot(d.dom.Values(), d.probs)
}

func (d FiniteDist) Variance() float64 {
	xs := d.dom.Values()
	floats.AddConst(-d.Mean(), xs)
	floats.Mul(xs, xs)
	return floats.Dot(xs, d.probs)
}

func (d FiniteDist) Rand(src randx.Source) float64 {
	u := src.Float64()
	i := sort.Search(len(d.cum), func(i int) bool { return d.cum[i] > u })
	return d.dom.Value(minint(i, len(d.cum)-1))
}
