// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "github.com/distkit/distkit/randx"

// A RandomVariable pairs a distribution with the empirical frequency
// table of the values drawn from it.
//
// A RandomVariable is not safe for concurrent use. The distribution
// itself may be shared freely.
type RandomVariable struct {
	dist Dist
	src  randx.Source
	data *IntervalData
}

// NewRandomVariable returns a random variable that draws from d using
// src. If src is nil, it uses randx.Default().
func NewRandomVariable(d Dist, src randx.Source) *RandomVariable {
	return &RandomVariable{dist: d, src: randx.Or(src), data: NewIntervalData(d.Domain())}
}

// Dist returns the distribution of v.
func (v *RandomVariable) Dist() Dist { return v.dist }

// Data returns the frequency table of the values drawn so far.
func (v *RandomVariable) Data() *IntervalData { return v.data }

// Sample draws a value, records it and returns it.
func (v *RandomVariable) Sample() float64 {
	x := Rand(v.dist, v.src)
	v.data.Add(x)
	return x
}

// SampleN draws and records n values.
func (v *RandomVariable) SampleN(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = v.Sample()
	}
	return xs
}

// Reset discards the recorded values.
func (v *RandomVariable) Reset() { v.data.Reset() }
