// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"testing"

	"github.com/distkit/distkit/internal/mathtest"
)

// pdfOnly hides every closed form of a distribution, so the generic
// Domain* fallbacks are used for everything but the PDF.
type pdfOnly struct {
	d Dist
}

func (p pdfOnly) PDF(x float64) float64 { return p.d.PDF(x) }
func (p pdfOnly) Domain() Domain        { return p.d.Domain() }
func (p pdfOnly) Kind() Kind            { return p.d.Kind() }

// testDiscreteCDF checks that the CDF of a discrete distribution is
// the running sum of its PDF, both at and between support points.
func testDiscreteCDF(t *testing.T, name string, dist Dist) {
	t.Helper()
	dom := dist.Domain()
	sum := 0.0
	if got := CDF(dist, dom.LowerValue()-dom.Width()/2); got != 0 {
		t.Errorf("%s(below domain) = %v, want 0", name, got)
	}
	for _, x := range dom.Values() {
		sum += dist.PDF(x)
		if got := CDF(dist, x); !mathtest.AeqTol(sum, got, 1e-6) {
			t.Errorf("%s(%v) = %v, want %v", name, x, got, sum)
		}
		mid := x + dom.Width()/2
		if got := CDF(dist, mid); !mathtest.AeqTol(sum, got, 1e-6) {
			t.Errorf("%s(%v) = %v, want %v", name, mid, got, sum)
		}
	}
}

// testInvCDF checks that InvCDF inverts CDF. For discrete
// distributions it checks that InvCDF(CDF(x)) == x at each support
// point with positive mass.
func testInvCDF(t *testing.T, name string, dist Dist, tol float64) {
	t.Helper()
	if dist.Kind() == Discrete {
		for _, x := range dist.Domain().Values() {
			if dist.PDF(x) < 1e-6 {
				continue
			}
			p := CDF(dist, x)
			if got := InvCDF(dist, p); !mathtest.AeqTol(x, got, 1e-9) {
				t.Errorf("%s.InvCDF(CDF(%v)=%v) = %v, want %v", name, x, p, got, x)
			}
		}
		return
	}
	for _, p := range []float64{0.001, 0.01, 0.1, 0.25, 0.5, 0.75, 0.9, 0.99, 0.999} {
		x := InvCDF(dist, p)
		if got := CDF(dist, x); !mathtest.AeqTol(p, got, tol) {
			t.Errorf("%s: CDF(InvCDF(%v)=%v) = %v, want %v", name, p, x, got, p)
		}
	}
}

// testMonotone checks that dist's CDF is non-decreasing over a fine
// grid spanning its domain and stays within [0, 1].
func testMonotone(t *testing.T, name string, dist Dist) {
	t.Helper()
	dom := dist.Domain()
	lo, hi := dom.LowerBound()-dom.Width(), dom.UpperBound()+dom.Width()
	prev := -1.0
	for i := 0; i <= 1000; i++ {
		x := lo + (hi-lo)*float64(i)/1000
		p := CDF(dist, x)
		if p < prev-1e-9 || p < -1e-9 || p > 1+1e-9 {
			t.Errorf("%s.CDF(%v) = %v not monotone after %v", name, x, p, prev)
			return
		}
		prev = p
	}
}
