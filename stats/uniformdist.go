// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/distkit/distkit/randx"
)

// UniformDist is the continuous uniform distribution on [A, B].
type UniformDist struct {
	a, b float64
	dom  Domain
}

// NewUniform returns the uniform distribution on [a, b]. If b <= a, b
// is replaced by a+1.
func NewUniform(a, b float64) UniformDist {
	if !(b > a) {
		b = a + 1
	}
	return UniformDist{a: a, b: b, dom: continuousDomain(a, b)}
}

// A returns the lower end of the support.
func (d UniformDist) A() float64 { return d.a }

// B returns the upper end of the support.
func (d UniformDist) B() float64 { return d.b }

func (d UniformDist) Domain() Domain { return d.dom }

func (d UniformDist) Kind() Kind { return Continuous }

func (d UniformDist) PDF(x float64) float64 {
	if x < d.a || x > d.b {
		return 0
	}
	return 1 / (d.b - d.a)
}

func (d UniformDist) CDF(x float64) float64 {
	return clamp((x-d.a)/(d.b-d.a), 0, 1)
}

func (d UniformDist) InvCDF(p float64) float64 {
	if p < 0 || p > 1 {
		return nan
	}
	return d.a + p*(d.b-d.a)
}

func (d UniformDist) Mean() float64 { return (d.a + d.b) / 2 }

func (d UniformDist) Variance() float64 {
	w := d.b - d.a
	return w * w / 12
}

func (d UniformDist) MaxPDF() float64 { return 1 / (d.b - d.a) }

func (d UniformDist) Rand(src randx.Source) float64 {
	return d.a + src.Float64()*(d.b-d.a)
}

// DiscreteUniformDist is the uniform distribution on the lattice A,
// A+W, ..., B.
type DiscreteUniformDist struct {
	dom Domain
}

// NewDiscreteUniform returns the uniform distribution on a, a+w, ...,
// b. A non-positive w is replaced by 1, and b is raised to a if it is
// below a.
func NewDiscreteUniform(a, b, w float64) DiscreteUniformDist {
	w = positive(w, 1)
	b = math.Max(a, b)
	// Snap b down onto the lattice.
	b = a + math.Floor((b-a)/w+1e-9)*w
	return DiscreteUniformDist{dom: NewDiscreteDomain(a, b, w)}
}

func (d DiscreteUniformDist) Domain() Domain { return d.dom }

func (d DiscreteUniformDist) Kind() Kind { return Discrete }

func (d DiscreteUniformDist) PDF(x float64) float64 {
	if _, ok := d.dom.lattice(x); !ok {
		return 0
	}
	return 1 / float64(d.dom.Size())
}

func (d DiscreteUniformDist) CDF(x float64) float64 {
	if x < d.dom.LowerValue() {
		return 0
	}
	k := math.Floor((x-d.dom.LowerValue())/d.dom.Width()+1e-9) + 1
	return math.Min(k/float64(d.dom.Size()), 1)
}

func (d DiscreteUniformDist) InvCDF(p float64) float64 {
	if p < 0 || p > 1 {
		return nan
	}
	k := math.Ceil(p*float64(d.dom.Size())-1e-9) - 1
	return d.dom.Value(maxint(int(k), 0))
}

func (d DiscreteUniformDist) Mean() float64 {
	return (d.dom.LowerValue() + d.dom.UpperValue()) / 2
}

func (d DiscreteUniformDist) Variance() float64 {
	n, w := float64(d.dom.Size()), d.dom.Width()
	return w * w * (n*n - 1) / 12
}

func (d DiscreteUniformDist) MaxPDF() float64 { return 1 / float64(d.dom.Size()) }

func (d DiscreteUniformDist) Rand(src randx.Source) float64 {
	return d.dom.Value(intn(d.dom.Size(), src))
}
