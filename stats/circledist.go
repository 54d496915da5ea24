// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/distkit/distkit/randx"
)

// CircleDist is the distribution of the x coordinate of a point chosen
// uniformly from a disk of radius R centered at the origin (the
// Wigner semicircle distribution).
type CircleDist struct {
	r   float64
	dom Domain
}

// NewCircle returns the semicircle distribution of radius r. A
// non-positive r is replaced by 1.
func NewCircle(r float64) CircleDist {
	r = positive(r, 1)
	return CircleDist{r: r, dom: continuousDomain(-r, r)}
}

// R returns the radius.
func (d CircleDist) R() float64 { return d.r }

func (d CircleDist) Domain() Domain { return d.dom }

func (d CircleDist) Kind() Kind { return Continuous }

func (d CircleDist) PDF(x float64) float64 {
	if x < -d.r || x > d.r {
		return 0
	}
	return 2 * math.Sqrt(d.r*d.r-x*x) / (math.Pi * d.r * d.r)
}

func (d CircleDist) CDF(x float64) float64 {
	if x <= -d.r {
		return 0
	} else if x >= d.r {
		return 1
	}
	r := d.r
	return 0.5 + (x*math.Sqrt(r*r-x*x)+r*r*math.Asin(x/r))/(math.Pi*r*r)
}

func (d CircleDist) Mean() float64 { return 0 }

func (d CircleDist) Variance() float64 { return d.r * d.r / 4 }

func (d CircleDist) Median() float64 { return 0 }

func (d CircleDist) MaxPDF() float64 { return 2 / (math.Pi * d.r) }

// Rand draws a point uniformly from the disk by rejection from the
// enclosing square and returns its x coordinate.
func (d CircleDist) Rand(src randx.Source) float64 {
	for {
		x := 2*src.Float64() - 1
		y := 2*src.Float64() - 1
		if x*x+y*y <= 1 {
			return d.r * x
		}
	}
}
