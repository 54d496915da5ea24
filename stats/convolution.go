// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "github.com/distkit/distkit/randx"

// ConvolutionDist is the distribution of the sum of N independent
// draws from a base distribution.
//
// The density is tabulated on the base distribution's domain grid by
// repeated discrete convolution when the distribution is constructed,
// which takes O(N*m²) time for a base domain of m points.
type ConvolutionDist struct {
	base Dist
	n    int
	dom  Domain

	// table[k] is the density of the (k+1)-fold sum at the
	// points (k+1)*LowerValue + j*Width. It is never modified
	// after construction, so copies share it.
	table [][]float64
}

// NewConvolution returns the distribution of the sum of n independent
// copies of d. n is raised to at least 1.
func NewConvolution(d Dist, n int) ConvolutionDist {
	n = maxint(n, 1)
	base := d.Domain()
	l, u, w := base.LowerValue(), base.UpperValue(), base.Width()

	dx := 1.0
	if d.Kind() != Discrete {
		dx = w
	}
	f0 := PDFEach(d, base.Values())
	table := make([][]float64, n)
	table[0] = f0
	m := len(f0)
	for k := 1; k < n; k++ {
		prev := table[k-1]
		row := make([]float64, len(prev)+m-1)
		for i, a := range prev {
			if a == 0 {
				continue
			}
			for j, b := range f0 {
				row[i+j] += a * b * dx
			}
		}
		table[k] = row
	}

	fn := float64(n)
	return ConvolutionDist{
		base:  d,
		n:     n,
		dom:   NewDomain(fn*l-w/2, fn*u+w/2, w),
		table: table,
	}
}

// Base returns the distribution of each term.
func (d ConvolutionDist) Base() Dist { return d.base }

// N returns the number of terms.
func (d ConvolutionDist) N() int { return d.n }

func (d ConvolutionDist) Domain() Domain { return d.dom }

func (d ConvolutionDist) Kind() Kind { return d.base.Kind() }

func (d ConvolutionDist) PDF(x float64) float64 {
	return d.StepPDF(d.n, x)
}

// StepPDF returns the density at x of the sum of k copies of the base
// distribution, for 1 <= k <= N.
func (d ConvolutionDist) StepPDF(k int, x float64) float64 {
	if k < 1 || k > d.n {
		return nan
	}
	row := d.table[k-1]
	base := d.base.Domain()
	w := base.Width()
	pos := (x - float64(k)*base.LowerValue()) / w
	if d.base.Kind() == Discrete {
		j, ok := asInt(pos)
		if !ok || j < 0 || j >= len(row) {
			return 0
		}
		return row[j]
	}
	if pos < -0.5 || pos >= float64(len(row))-0.5 {
		return 0
	}
	j := minint(int(pos+0.5), len(row)-1)
	return row[j]
}

func (d ConvolutionDist) Mean() float64 {
	return float64(d.n) * Mean(d.base)
}

func (d ConvolutionDist) Variance() float64 {
	return float64(d.n) * Variance(d.base)
}

func (d ConvolutionDist) Rand(src randx.Source) float64 {
	sum := 0.0
	for i := 0; i < d.n; i++ {
		sum += Rand(d.base, src)
	}
	return sum
}
