// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathtest contains helpers for testing numerical functions.
package mathtest

import (
	"math"
	"sort"
	"testing"
)

// Aeq returns true if expect and got agree to within 1e-8 (relative
// for values of magnitude at least 1, absolute otherwise), or both are
// NaN, or they are the same infinity.
func Aeq(expect, got float64) bool {
	return AeqTol(expect, got, 1e-8)
}

// AeqTol is like Aeq, but with a caller-supplied relative tolerance.
// Values near zero are compared with an absolute tolerance of tol.
func AeqTol(expect, got, tol float64) bool {
	if math.IsNaN(expect) || math.IsNaN(got) {
		return math.IsNaN(expect) && math.IsNaN(got)
	}
	if math.IsInf(expect, 0) || math.IsInf(got, 0) {
		return expect == got
	}
	diff := math.Abs(expect - got)
	if math.Abs(expect) < 1 {
		return diff <= tol
	}
	return diff <= tol*math.Abs(expect)
}

// WantFunc checks that f(x) ≅ want for each x, want in wants. Checks
// are done in increasing order of x so failures are reported
// deterministically.
func WantFunc(t *testing.T, name string, f func(float64) float64, wants map[float64]float64) {
	t.Helper()
	WantFuncTol(t, name, f, wants, 1e-8)
}

// WantFuncTol is like WantFunc with a caller-supplied tolerance.
func WantFuncTol(t *testing.T, name string, f func(float64) float64, wants map[float64]float64, tol float64) {
	t.Helper()
	xs := make([]float64, 0, len(wants))
	for x := range wants {
		xs = append(xs, x)
	}
	sort.Float64s(xs)

	for _, x := range xs {
		want, got := wants[x], f(x)
		if !AeqTol(want, got, tol) {
			t.Errorf("%s(%v) = %v, want %v", name, x, got, want)
		}
	}
}
