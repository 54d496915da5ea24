// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/distkit/distkit/randx"
)

// TriangleDist is a triangular distribution on [A, B] with mode C.
type TriangleDist struct {
	a, b, c float64
	dom     Domain
}

// NewTriangle returns the triangular distribution with minimum a,
// maximum b and mode c. If b <= a, b is replaced by a+1, and c is
// clamped to [a, b].
func NewTriangle(a, b, c float64) TriangleDist {
	if !(b > a) {
		b = a + 1
	}
	c = clamp(c, a, b)
	return TriangleDist{a: a, b: b, c: c, dom: continuousDomain(a, b)}
}

// A returns the minimum.
func (d TriangleDist) A() float64 { return d.a }

// B returns the maximum.
func (d TriangleDist) B() float64 { return d.b }

// C returns the mode.
func (d TriangleDist) C() float64 { return d.c }

func (d TriangleDist) Domain() Domain { return d.dom }

func (d TriangleDist) Kind() Kind { return Continuous }

func (d TriangleDist) PDF(x float64) float64 {
	a, b, c := d.a, d.b, d.c
	switch {
	case x < a || x > b:
		return 0
	case x < c:
		return 2 * (x - a) / ((b - a) * (c - a))
	case x == c:
		return 2 / (b - a)
	}
	return 2 * (b - x) / ((b - a) * (b - c))
}

func (d TriangleDist) CDF(x float64) float64 {
	a, b, c := d.a, d.b, d.c
	switch {
	case x <= a:
		return 0
	case x >= b:
		return 1
	case x <= c:
		return (x - a) * (x - a) / ((b - a) * (c - a))
	}
	return 1 - (b-x)*(b-x)/((b-a)*(b-c))
}

func (d TriangleDist) InvCDF(p float64) float64 {
	if p < 0 || p > 1 {
		return nan
	}
	a, b, c := d.a, d.b, d.c
	if p <= (c-a)/(b-a) {
		return a + math.Sqrt(p*(b-a)*(c-a))
	}
	return b - math.Sqrt((1-p)*(b-a)*(b-c))
}

func (d TriangleDist) Mean() float64 { return (d.a + d.b + d.c) / 3 }

func (d TriangleDist) Variance() float64 {
	a, b, c := d.a, d.b, d.c
	return (a*a + b*b + c*c - a*b - a*c - b*c) / 18
}

func (d TriangleDist) MaxPDF() float64 { return 2 / (d.b - d.a) }

func (d TriangleDist) Rand(src randx.Source) float64 {
	return d.InvCDF(src.Float64())
}
