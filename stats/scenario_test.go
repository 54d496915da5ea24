// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"github.com/distkit/distkit/internal/mathtest"
)

func TestStandardNormal(t *testing.T) {
	d := NewNormal(0, 1)
	if got := d.PDF(0); !mathtest.Aeq(0.3989422804014327, got) {
		t.Errorf("PDF(0) = %v", got)
	}
	if got := CDF(d, 0); got != 0.5 {
		t.Errorf("CDF(0) = %v, want 0.5", got)
	}
	if got := Median(d); got != 0 {
		t.Errorf("Median = %v, want 0", got)
	}
	if got := InvCDF(d, 0.975); !mathtest.AeqTol(1.959963984540054, got, 1e-9) {
		t.Errorf("InvCDF(0.975) = %v", got)
	}
	if lo, hi := d.Domain().LowerBound(), d.Domain().UpperBound(); lo != -4 || hi != 4 {
		t.Errorf("domain = [%v, %v], want [-4, 4]", lo, hi)
	}

	d2 := d.WithMu(5)
	if d.Mu() != 0 || d2.Mu() != 5 || d2.Sigma() != 1 {
		t.Errorf("WithMu(5): got %+v from %+v", d2, d)
	}
	if got := NewNormal(1, -2).Sigma(); got != 1 {
		t.Errorf("NewNormal(1, -2).Sigma() = %v, want 1", got)
	}
}

func TestIrwinHall(t *testing.T) {
	// The sum of two uniforms has the triangular density on [0, 2].
	d := NewConvolution(NewUniform(0, 1), 2)
	mathtest.WantFuncTol(t, "IrwinHall(2).PDF", d.PDF, map[float64]float64{
		-0.5: 0,
		0.5:  0.5,
		1:    1,
		1.5:  0.5,
		2.5:  0,
	}, 1e-9)
	if got := Mean(d); got != 1 {
		t.Errorf("Mean = %v, want 1", got)
	}
	if got := Variance(d); !mathtest.Aeq(1.0/6, got) {
		t.Errorf("Variance = %v, want 1/6", got)
	}
	if got := d.StepPDF(1, 0.5); got != 1 {
		t.Errorf("StepPDF(1, 0.5) = %v, want 1", got)
	}
	if got := d.StepPDF(3, 0.5); !math.IsNaN(got) {
		t.Errorf("StepPDF(3, 0.5) = %v, want NaN", got)
	}
}

func TestConvolutionBernoulli(t *testing.T) {
	d := NewConvolution(NewBernoulli(0.3), 5)
	b := NewBinomial(5, 0.3)
	for k := 0; k <= 5; k++ {
		x := float64(k)
		if want, got := b.PDF(x), d.PDF(x); !mathtest.AeqTol(want, got, 1e-12) {
			t.Errorf("PDF(%v) = %v, want %v", x, got, want)
		}
	}
	if got := d.Domain().Values(); len(got) != 6 || got[0] != 0 || got[5] != 5 {
		t.Errorf("domain values = %v, want 0..5", got)
	}
	if got := d.PDF(2.5); got != 0 {
		t.Errorf("PDF(2.5) = %v, want 0", got)
	}
}

func TestPointMassMixture(t *testing.T) {
	d := NewMixture([]Dist{NewPointMass(0), NewPointMass(1)}, []float64{1, 1})
	mathtest.WantFunc(t, "Mixture.PDF", d.PDF, map[float64]float64{
		-1: 0, 0: 0.5, 0.5: 0, 1: 0.5, 2: 0,
	})
	if got := Mean(d); got != 0.5 {
		t.Errorf("Mean = %v, want 0.5", got)
	}
	if got := Variance(d); got != 0.25 {
		t.Errorf("Variance = %v, want 0.25", got)
	}
	if d.Kind() != Discrete {
		t.Errorf("Kind = %v, want Discrete", d.Kind())
	}
	if got := d.Domain().Values(); len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Errorf("domain values = %v, want [0 1]", got)
	}
}

func TestMixtureOffGrid(t *testing.T) {
	// The components share no lattice, so the mixture's grid misses
	// the point mass at 1.
	d := NewMixture([]Dist{NewPointMass(0.3), NewPointMass(1)}, []float64{1, 1})
	if got := d.Support(); len(got) != 2 || got[0] != 0.3 || got[1] != 1 {
		t.Errorf("Support = %v, want [0.3 1]", got)
	}
	for p, want := range map[float64]float64{0: 0.3, 0.25: 0.3, 0.5: 0.3, 0.6: 1, 0.9: 1, 1: 1} {
		x := InvCDF(d, p)
		if x != want {
			t.Errorf("InvCDF(%v) = %v, want %v", p, x, want)
		}
		if d.PDF(x) == 0 {
			t.Errorf("InvCDF(%v) = %v, which has probability 0", p, x)
		}
	}
	if got := Median(d); got != 0.3 {
		t.Errorf("Median = %v, want 0.3", got)
	}
	if got := InvCDF(d, 1.5); !math.IsNaN(got) {
		t.Errorf("InvCDF(1.5) = %v, want NaN", got)
	}

	c := NewMixture([]Dist{NewNormal(0, 1), NewNormal(4, 1)}, nil)
	if c.Support() != nil {
		t.Errorf("continuous Support = %v, want nil", c.Support())
	}
	if got := InvCDF(c, 0.5); !mathtest.AeqTol(2, got, 1e-6) {
		t.Errorf("continuous InvCDF(0.5) = %v, want 2", got)
	}
}

func TestMixtureWeights(t *testing.T) {
	d := NewMixture([]Dist{NewNormal(0, 1), NewPointMass(3)}, []float64{-1, 0})
	if w := d.Weights(); w[0] != 0.5 || w[1] != 0.5 {
		t.Errorf("zero weights: got %v, want uniform", w)
	}
	if d.Kind() != Mixed {
		t.Errorf("Kind = %v, want Mixed", d.Kind())
	}

	d = NewMixture([]Dist{NewNormal(0, 1), NewNormal(10, 2)}, []float64{3})
	if w := d.Weights(); w[0] != 1 || w[1] != 0 {
		t.Errorf("missing weight: got %v, want [1 0]", w)
	}

	d = NewMixture(nil, nil)
	if got := Mean(d); got != 0 {
		t.Errorf("empty mixture Mean = %v, want 0", got)
	}
	if got := d.PDF(0); got != 1 {
		t.Errorf("empty mixture PDF(0) = %v, want 1", got)
	}
}

func TestLocationScale(t *testing.T) {
	d := NewLocationScale(NewNormal(0, 1), 2, 3)
	ref := NewNormal(2, 3)
	for _, x := range []float64{-7, -1, 2, 4.5, 11} {
		if want, got := ref.PDF(x), d.PDF(x); !mathtest.Aeq(want, got) {
			t.Errorf("PDF(%v) = %v, want %v", x, got, want)
		}
		if want, got := ref.CDF(x), d.CDF(x); !mathtest.Aeq(want, got) {
			t.Errorf("CDF(%v) = %v, want %v", x, got, want)
		}
	}
	if got := Mean(d); got != 2 {
		t.Errorf("Mean = %v, want 2", got)
	}
	if got := Variance(d); got != 9 {
		t.Errorf("Variance = %v, want 9", got)
	}

	// Reflecting a discrete distribution keeps the mass at the
	// reflected point.
	r := NewLocationScale(NewBinomial(3, 0.5), 0, -1)
	mathtest.WantFuncTol(t, "-Binomial(3, 0.5).CDF", r.CDF, map[float64]float64{
		-4: 0, -3: 0.125, -2: 0.5, -1: 0.875, 0: 1, 1: 1,
	}, 1e-6)

	// Quantiles of a reflection land on the atoms, not past them.
	for p, want := range map[float64]float64{0.1: -3, 0.125: -3, 0.45: -2, 0.6: -1, 0.85: -1, 0.9: 0, 1: 0} {
		if got := InvCDF(r, p); got != want {
			t.Errorf("-Binomial(3, 0.5).InvCDF(%v) = %v, want %v", p, got, want)
		}
	}
	coin := NewLocationScale(NewBernoulli(0.5), 0, -1)
	if got := InvCDF(coin, 0.5); got != -1 {
		t.Errorf("-Bernoulli(0.5).InvCDF(0.5) = %v, want -1", got)
	}
	if got := Median(coin); got != -1 {
		t.Errorf("-Bernoulli(0.5).Median = %v, want -1", got)
	}

	// A Mixed base is scaled like a density, atoms included.
	mixed := NewMixture([]Dist{NewNormal(0, 1), NewPointMass(1)}, nil)
	s := NewLocationScale(mixed, 0, 2)
	for _, x := range []float64{0, 1, 2} {
		if want, got := mixed.PDF(x/2)/2, s.PDF(x); !mathtest.Aeq(want, got) {
			t.Errorf("Mixed base PDF(%v) = %v, want %v", x, got, want)
		}
	}
	if got, want := s.MaxPDF(), MaxPDF(mixed)/2; !mathtest.Aeq(want, got) {
		t.Errorf("Mixed base MaxPDF = %v, want %v", got, want)
	}

	p := NewLocationScale(NewNormal(0, 1), 4, 0)
	if got := Mean(p); got != 4 {
		t.Errorf("zero scale Mean = %v, want 4", got)
	}
	if got := Variance(p); got != 0 {
		t.Errorf("zero scale Variance = %v, want 0", got)
	}
}

func TestOrderStatUniform(t *testing.T) {
	// The maximum of 3 uniforms has CDF x³ and the minimum has
	// CDF 1-(1-x)³.
	hi := NewOrderStat(NewUniform(0, 1), 3, 3)
	lo := NewOrderStat(NewUniform(0, 1), 3, 1)
	for _, x := range []float64{0.1, 0.3, 0.5, 0.8} {
		if want, got := x*x*x, hi.CDF(x); !mathtest.AeqTol(want, got, 1e-6) {
			t.Errorf("max CDF(%v) = %v, want %v", x, got, want)
		}
		if want, got := 3*x*x, hi.PDF(x); !mathtest.AeqTol(want, got, 1e-6) {
			t.Errorf("max PDF(%v) = %v, want %v", x, got, want)
		}
		if want, got := 1-math.Pow(1-x, 3), lo.CDF(x); !mathtest.AeqTol(want, got, 1e-6) {
			t.Errorf("min CDF(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestMatchLimit(t *testing.T) {
	// The number of fixed points of a random permutation tends to
	// Poisson(1).
	d := NewMatch(10)
	p := NewPoisson(1)
	for k := 0; k <= 3; k++ {
		x := float64(k)
		if want, got := p.PDF(x), d.PDF(x); !mathtest.AeqTol(want, got, 1e-5) {
			t.Errorf("PDF(%v) = %v, want %v", x, got, want)
		}
	}
	if got := d.PDF(9); got != 0 {
		t.Errorf("PDF(9) = %v, want 0", got)
	}
	if got := d.PDF(10); !mathtest.Aeq(1/mathFactorial(10), got) {
		t.Errorf("PDF(10) = %v, want 1/10!", got)
	}
}

func mathFactorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}

func TestBirthday(t *testing.T) {
	d := NewBirthday(365, 23)
	// The probability that 23 people all have distinct birthdays.
	if got := d.PDF(23); !mathtest.AeqTol(0.4927027656760144, got, 1e-12) {
		t.Errorf("PDF(23) = %v", got)
	}
	if got := d.Domain().UpperValue(); got != 23 {
		t.Errorf("UpperValue = %v, want 23", got)
	}
}

func TestCoupon(t *testing.T) {
	d := NewCoupon(6, 6)
	// 6 * H(6)
	if got := Mean(d); !mathtest.Aeq(14.7, got) {
		t.Errorf("Mean = %v, want 14.7", got)
	}
	if got := d.PDF(5); got != 0 {
		t.Errorf("PDF(5) = %v, want 0", got)
	}
	if got, want := d.PDF(6), mathFactorial(6)/math.Pow(6, 6); !mathtest.Aeq(want, got) {
		t.Errorf("PDF(6) = %v, want %v", got, want)
	}
}
