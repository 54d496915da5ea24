// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"github.com/distkit/distkit/internal/mathtest"
)

func TestBinomialDist(t *testing.T) {
	dist := NewBinomial(5, 0.2)
	mathtest.WantFunc(t, "Binomial(5, 0.2).PDF", dist.PDF,
		map[float64]float64{
			-1000: 0,
			-1:    0,
			0:     0.32768,
			1:     0.4096,
			1.5:   0,
			2:     0.2048,
			3:     0.0512,
			4:     0.0064,
			5:     math.Pow(dist.P(), 5),
			6:     0,
			1000:  0,
		})
	testDiscreteCDF(t, "Binomial(5, 0.2).CDF", dist)

	dist = NewBinomial(30, 0.5)
	norm := dist.NormalApprox()
	for k := 10; k <= 20; k++ {
		b := dist.PDF(float64(k))
		n := norm.CDF(float64(k)+0.5) - norm.CDF(float64(k)-0.5)

		// The normal approximation isn't actually very close,
		// even with high N and P near 0.5, so we only check
		// the center of the distribution and we're pretty
		// lax.
		err := math.Abs(b/n - 1)
		if err > 0.01 {
			t.Errorf("want %v ≅ %v at %d", b, n, k)
		}
	}
}

func TestBinomialScenario(t *testing.T) {
	dist := NewBinomial(10, 0.5)
	if got := dist.PDF(5); !mathtest.Aeq(0.24609375, got) {
		t.Errorf("PDF(5) = %v, want 0.24609375", got)
	}
	if got := Mean(dist); got != 5 {
		t.Errorf("Mean = %v, want 5", got)
	}
	if got := Variance(dist); got != 2.5 {
		t.Errorf("Variance = %v, want 2.5", got)
	}
	if got := Median(dist); got != 5 {
		t.Errorf("Median = %v, want 5", got)
	}
}

func TestBinomialClamp(t *testing.T) {
	if got, want := NewBinomial(-5, 1.5), NewBinomial(1, 1); got != want {
		t.Errorf("NewBinomial(-5, 1.5) = %+v, want %+v", got, want)
	}
	if got := NewBinomial(4, -0.5).P(); got != 0 {
		t.Errorf("NewBinomial(4, -0.5).P() = %v, want 0", got)
	}
	if got := NewBinomial(4, math.NaN()).P(); got != 0 {
		t.Errorf("NewBinomial(4, NaN).P() = %v, want 0", got)
	}

	// Degenerate probabilities put all of the mass at one end.
	mathtest.WantFunc(t, "Binomial(4, 0).PDF", NewBinomial(4, 0).PDF,
		map[float64]float64{0: 1, 1: 0, 4: 0})
	mathtest.WantFunc(t, "Binomial(4, 1).PDF", NewBinomial(4, 1).PDF,
		map[float64]float64{0: 0, 3: 0, 4: 1})
	mathtest.WantFunc(t, "Binomial(4, 1).CDF", NewBinomial(4, 1).CDF,
		map[float64]float64{0: 0, 3.5: 0, 4: 1})
}

func TestBinomialWith(t *testing.T) {
	d := NewBinomial(10, 0.5)
	d2 := d.WithN(20).WithP(0.25)
	if d.N() != 10 || d.P() != 0.5 {
		t.Errorf("With* modified the receiver: %+v", d)
	}
	if d2 != NewBinomial(20, 0.25) {
		t.Errorf("WithN(20).WithP(0.25) = %+v, want %+v", d2, NewBinomial(20, 0.25))
	}
	if got := d2.Domain().Size(); got != 21 {
		t.Errorf("domain size = %v, want 21", got)
	}
}

func TestBernoulli(t *testing.T) {
	d := NewBernoulli(0.3)
	mathtest.WantFunc(t, "Bernoulli(0.3).PDF", d.PDF, map[float64]float64{0: 0.7, 1: 0.3, 2: 0})
	if got := d.N(); got != 1 {
		t.Errorf("N() = %d, want 1", got)
	}
}
