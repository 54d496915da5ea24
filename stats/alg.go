// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// Miscellaneous helper algorithms

import (
	"math"

	"github.com/distkit/distkit/mathx"
)

func maxint(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minint(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// clamp returns x limited to [lo, hi].
func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// clampProb clamps a probability to [0, 1]. NaN becomes 0.
func clampProb(p float64) float64 {
	if !(p >= 0) {
		return 0
	}
	return math.Min(p, 1)
}

// positive returns x if it is positive and def otherwise.
func positive(x, def float64) float64 {
	if x > 0 {
		return x
	}
	return def
}

// asInt returns x as an int if it is an integer (up to rounding
// error).
func asInt(x float64) (int, bool) {
	r := math.Round(x)
	if math.Abs(x-r) > 1e-9*math.Max(1, math.Abs(x)) {
		return 0, false
	}
	return int(r), true
}

// atEach returns f(x) for each x in xs.
func atEach(f func(float64) float64, xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = f(x)
	}
	return res
}

// bisect returns an x in [low, high] such that |f(x)| <= tolerance
// using the bisection method.
//
// f(low) and f(high) should have opposite signs. If they do not, or if
// f does not have a root in this interval (e.g., it is discontiguous),
// this returns the X of the apparent discontinuity and false.
func bisect(f func(float64) float64, low, high, tolerance float64) (float64, bool) {
	const maxIterations = 2000

	flow, fhigh := f(low), f(high)
	if -tolerance <= flow && flow <= tolerance {
		return low, true
	}
	if -tolerance <= fhigh && fhigh <= tolerance {
		return high, true
	}
	if mathx.Sign(flow) == mathx.Sign(fhigh) {
		if math.Abs(flow) < math.Abs(fhigh) {
			return low, false
		}
		return high, false
	}
	for i := 0; i < maxIterations; i++ {
		mid := (high + low) / 2
		fmid := f(mid)
		if -tolerance <= fmid && fmid <= tolerance {
			return mid, true
		}
		if mid == high || mid == low {
			return mid, false
		}
		if mathx.Sign(fmid) == mathx.Sign(flow) {
			low = mid
			flow = fmid
		} else {
			high = mid
		}
	}
	return (low + high) / 2, false
}

// logPow returns k*log(p), treating 0*log(0) as 0.
func logPow(p, k float64) float64 {
	if k == 0 {
		return 0
	}
	return k * math.Log(p)
}

// series returns the sum of the series f(0), f(1), ...
//
// This implementation is fast, but subject to round-off error.
func series(f func(float64) float64) float64 {
	y, yp := 0.0, 1.0
	for n := 0.0; y != yp; n++ {
		yp = y
		y += f(n)
	}
	return y
}
