// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// A Domain partitions the interval [LowerBound, UpperBound] into Size
// bins of equal Width. Distributions use their Domain as the support
// of a discrete distribution (bin midpoints are the support points) or
// as a truncated discretization of a continuous one.
//
// Domain is an immutable value. The zero Domain is not useful; use
// NewDomain.
type Domain struct {
	lowerBound, upperBound float64
	width                  float64
	lowerValue, upperValue float64
	size                   int
}

// NewDomain returns the domain of bins of the given width covering
// [lower, upper].
//
// A non-positive width is replaced by 1, and upper is raised to
// lower+width if the interval would contain less than one bin.
func NewDomain(lower, upper, width float64) Domain {
	if !(width > 0) {
		width = 1
	}
	if upper < lower+width {
		upper = lower + width
	}
	return Domain{
		lowerBound: lower,
		upperBound: upper,
		width:      width,
		lowerValue: lower + width/2,
		upperValue: upper - width/2,
		size:       int(math.Round((upper - lower) / width)),
	}
}

// NewDiscreteDomain returns the domain whose bin midpoints are a, a+w,
// ..., b. This is the domain of a discrete distribution with support
// on that lattice.
func NewDiscreteDomain(a, b, w float64) Domain {
	if !(w > 0) {
		w = 1
	}
	return NewDomain(a-w/2, b+w/2, w)
}

// newDomain builds the domain for a distribution of kind k with
// support [a, b] and bin width w. For discrete distributions the bins
// are centered on a, a+w, ..., b; otherwise the bins partition [a, b].
func newDomain(a, b, w float64, k Kind) Domain {
	if clampKind(k) == Discrete {
		return NewDiscreteDomain(a, b, w)
	}
	return NewDomain(a, b, w)
}

// continuousDomain returns the default domain of a continuous
// distribution truncated to [a, b].
func continuousDomain(a, b float64) Domain {
	return NewDomain(a, b, (b-a)/defaultBins)
}

// LowerBound returns the left end of the first bin.
func (d Domain) LowerBound() float64 { return d.lowerBound }

// UpperBound returns the right end of the last bin.
func (d Domain) UpperBound() float64 { return d.upperBound }

// LowerValue returns the midpoint of the first bin.
func (d Domain) LowerValue() float64 { return d.lowerValue }

// UpperValue returns the midpoint of the last bin.
func (d Domain) UpperValue() float64 { return d.upperValue }

// Width returns the width of each bin.
func (d Domain) Width() float64 { return d.width }

// Size returns the number of bins.
func (d Domain) Size() int { return d.size }

// Index returns the index of the bin containing x. It returns -1 if x
// is below the domain and Size() if x is above it.
//
// The index is found by rounding the distance from the first
// midpoint, so a value exactly on the boundary between two bins may
// land in either one.
func (d Domain) Index(x float64) int {
	if x < d.lowerBound {
		return -1
	} else if x > d.upperBound {
		return d.size
	}
	return int(math.Round((x - d.lowerValue) / d.width))
}

// Value returns the midpoint of the i'th bin.
func (d Domain) Value(i int) float64 {
	return d.lowerValue + float64(i)*d.width
}

// Bound returns the left end of the i'th bin. Bound(Size()) is the
// upper bound of the domain.
func (d Domain) Bound(i int) float64 {
	return d.lowerBound + float64(i)*d.width
}

// Values returns the midpoints of all bins.
func (d Domain) Values() []float64 {
	xs := make([]float64, d.size)
	for i := range xs {
		xs[i] = d.Value(i)
	}
	return xs
}

// lattice returns the index of the bin whose midpoint is x, if x is
// (within rounding error) one of the domain's midpoints.
func (d Domain) lattice(x float64) (int, bool) {
	i := d.Index(x)
	if i < 0 || i >= d.size {
		return i, false
	}
	return i, math.Abs(d.Value(i)-x) <= 1e-9*d.width
}
