// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"slices"
	"sort"
)

// moments tracks the running count, mean and mean square of a stream
// of values.
type moments struct {
	n        int
	mean, ms float64
	min, max float64
}

func (m *moments) add(x float64) {
	if m.n == 0 {
		m.min, m.max = x, x
	} else {
		m.min, m.max = math.Min(m.min, x), math.Max(m.max, x)
	}
	m.n++
	n := float64(m.n)
	m.mean = (n-1)/n*m.mean + x/n
	m.ms = (n-1)/n*m.ms + x*x/n
}

func (m *moments) popVariance() float64 {
	if m.n == 0 {
		return nan
	}
	// Cancellation can make this slightly negative.
	return math.Max(m.ms-m.mean*m.mean, 0)
}

func (m *moments) variance() float64 {
	if m.n < 2 {
		return nan
	}
	n := float64(m.n)
	return m.popVariance() * n / (n - 1)
}

func (m *moments) meanOrNaN() float64 {
	if m.n == 0 {
		return nan
	}
	return m.mean
}

func (m *moments) minOrNaN() float64 {
	if m.n == 0 {
		return nan
	}
	return m.min
}

func (m *moments) maxOrNaN() float64 {
	if m.n == 0 {
		return nan
	}
	return m.max
}

// Data accumulates a sample of values and computes their summary
// statistics. Data keeps every value in sorted order, so order
// statistics are available at any time.
//
// The zero Data is empty and ready to use. Statistics of an empty
// Data are NaN. A Data is not safe for concurrent use.
type Data struct {
	m      moments
	sorted []float64
}

// Add adds xs to the sample.
func (d *Data) Add(xs ...float64) {
	for _, x := range xs {
		d.m.add(x)
		i := sort.SearchFloat64s(d.sorted, x)
		d.sorted = slices.Insert(d.sorted, i, x)
	}
}

// Reset empties the sample.
func (d *Data) Reset() {
	d.m = moments{}
	d.sorted = d.sorted[:0]
}

// Count returns the number of values in the sample.
func (d *Data) Count() int { return d.m.n }

// Mean returns the sample mean.
func (d *Data) Mean() float64 { return d.m.meanOrNaN() }

// Variance returns the unbiased sample variance. It is NaN for fewer
// than two values.
func (d *Data) Variance() float64 { return d.m.variance() }

// PopVariance returns the population variance of the sample.
func (d *Data) PopVariance() float64 { return d.m.popVariance() }

// StdDev returns the square root of the sample variance.
func (d *Data) StdDev() float64 { return math.Sqrt(d.Variance()) }

// Min returns the smallest value in the sample.
func (d *Data) Min() float64 { return d.m.minOrNaN() }

// Max returns the largest value in the sample.
func (d *Data) Max() float64 { return d.m.maxOrNaN() }

// Median returns the median of the sample. For an even number of
// values it is the average of the middle two.
func (d *Data) Median() float64 {
	n := len(d.sorted)
	switch {
	case n == 0:
		return nan
	case n%2 == 1:
		return d.sorted[n/2]
	}
	return (d.sorted[n/2-1] + d.sorted[n/2]) / 2
}

// Quantile returns the empirical p'th quantile of the sample: the
// smallest value that is greater than or equal to a fraction p of the
// values. p is clamped to [0, 1].
func (d *Data) Quantile(p float64) float64 {
	n := len(d.sorted)
	if n == 0 {
		return nan
	}
	i := int(math.Ceil(clampProb(p)*float64(n))) - 1
	return d.sorted[maxint(minint(i, n-1), 0)]
}

// Values returns the values of the sample in increasing order. The
// caller must not modify the returned slice.
func (d *Data) Values() []float64 { return d.sorted }

// IntervalData accumulates a frequency table of values over the bins
// of a Domain together with their summary statistics.
//
// Values outside the domain count toward the summary statistics but
// not toward any bin. An IntervalData is not safe for concurrent use.
type IntervalData struct {
	dom   Domain
	m     moments
	freq  []int
	mode  int // bin index of the mode, or -1 if tied or empty
	maxFq int
}

// NewIntervalData returns an empty frequency table over dom.
func NewIntervalData(dom Domain) *IntervalData {
	return &IntervalData{dom: dom, freq: make([]int, dom.Size()), mode: -1}
}

// Domain returns the domain of the frequency table.
func (d *IntervalData) Domain() Domain { return d.dom }

// Add adds xs to the table.
func (d *IntervalData) Add(xs ...float64) {
	for _, x := range xs {
		d.m.add(x)
		i := d.dom.Index(x)
		if i < 0 || i >= len(d.freq) {
			continue
		}
		d.freq[i]++
		switch c := d.freq[i]; {
		case c > d.maxFq:
			d.maxFq, d.mode = c, i
		case c == d.maxFq && i != d.mode:
			d.mode = -1
		}
	}
}

// Reset empties the table.
func (d *IntervalData) Reset() {
	d.m = moments{}
	clear(d.freq)
	d.mode, d.maxFq = -1, 0
}

// Count returns the number of values added, including values outside
// the domain.
func (d *IntervalData) Count() int { return d.m.n }

// Freq returns the number of values in the bin containing x.
func (d *IntervalData) Freq(x float64) int {
	i := d.dom.Index(x)
	if i < 0 || i >= len(d.freq) {
		return 0
	}
	return d.freq[i]
}

// RelFreq returns the fraction of all values that fall in the bin
// containing x.
func (d *IntervalData) RelFreq(x float64) float64 {
	if d.m.n == 0 {
		return 0
	}
	return float64(d.Freq(x)) / float64(d.m.n)
}

// Density returns the relative frequency of the bin containing x
// divided by the bin width.
func (d *IntervalData) Density(x float64) float64 {
	return d.RelFreq(x) / d.dom.Width()
}

// Mode returns the midpoint of the most frequent bin. It is NaN if
// the table is empty or if two bins tie for the highest frequency.
func (d *IntervalData) Mode() float64 {
	if d.mode < 0 {
		return nan
	}
	return d.dom.Value(d.mode)
}

// Mean returns the mean of the values added.
func (d *IntervalData) Mean() float64 { return d.m.meanOrNaN() }

// Variance returns the unbiased sample variance of the values added.
func (d *IntervalData) Variance() float64 { return d.m.variance() }

// StdDev returns the square root of the sample variance.
func (d *IntervalData) StdDev() float64 { return math.Sqrt(d.Variance()) }

// Min returns the smallest value added.
func (d *IntervalData) Min() float64 { return d.m.minOrNaN() }

// Max returns the largest value added.
func (d *IntervalData) Max() float64 { return d.m.maxOrNaN() }
