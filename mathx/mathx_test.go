// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"fmt"
	"math"
	"testing"

	"github.com/distkit/distkit/internal/mathtest"
	"gonum.org/v1/gonum/mathext"
)

func TestCombinatorics(t *testing.T) {
	for _, tt := range []struct {
		name string
		got  float64
		want float64
	}{
		{"Factorial(0)", Factorial(0), 1},
		{"Factorial(5)", Factorial(5), 120},
		{"Factorial(-1)", Factorial(-1), 0},
		{"Permutations(5, 2)", Permutations(5, 2), 20},
		{"Permutations(5, 6)", Permutations(5, 6), 0},
		{"Permutations(5, -1)", Permutations(5, -1), 0},
		{"Choose(6, 2)", Choose(6, 2), 15},
		{"Choose(10, 5)", Choose(10, 5), 252},
		{"Choose(52, 5)", Choose(52, 5), 2598960},
		{"Choose(3, 4)", Choose(3, 4), 0},
		{"Choose(7, 0)", Choose(7, 0), 1},
	} {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	for n := 0; n < 40; n++ {
		for k := 0; k <= n; k++ {
			want := math.Log(Choose(n, k))
			if got := Lchoose(n, k); !mathtest.AeqTol(want, got, 1e-8) {
				t.Errorf("Lchoose(%d, %d) = %v, want %v", n, k, got, want)
			}
		}
	}
	// Beyond exact Choose, Lchoose agrees with the library log-gamma.
	for _, nk := range [][2]int{{61, 30}, {100, 50}, {1000, 3}, {5000, 2500}} {
		n, k := nk[0], nk[1]
		ln, _ := math.Lgamma(float64(n + 1))
		lk, _ := math.Lgamma(float64(k + 1))
		lnk, _ := math.Lgamma(float64(n - k + 1))
		want := ln - lk - lnk
		if got := Lchoose(n, k); !mathtest.AeqTol(want, got, 1e-8) {
			t.Errorf("Lchoose(%d, %d) = %v, want %v", n, k, got, want)
		}
	}
	if got := Lchoose(3, 5); !math.IsInf(got, -1) {
		t.Errorf("Lchoose(3, 5) = %v, want -Inf", got)
	}
}

func TestGamma(t *testing.T) {
	for n := 0; n <= 15; n++ {
		want := Factorial(n)
		if got := Gamma(float64(n + 1)); !mathtest.AeqTol(want, got, 1e-9) {
			t.Errorf("Gamma(%d) = %v, want %d! = %v", n+1, got, n, want)
		}
	}
	mathtest.WantFuncTol(t, "Gamma", Gamma, map[float64]float64{
		0.5: math.Sqrt(math.Pi),
		1.5: math.Sqrt(math.Pi) / 2,
		2.5: 3 * math.Sqrt(math.Pi) / 4,
	}, 1e-9)
	for _, x := range []float64{0.1, 0.7, 3.3, 12.5, 101, 1e4} {
		want, _ := math.Lgamma(x)
		if got := LogGamma(x); !mathtest.AeqTol(want, got, 1e-9) {
			t.Errorf("LogGamma(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestGammaInc(t *testing.T) {
	for _, a := range []float64{0.5, 1, 2.5, 10, 50} {
		name := fmt.Sprintf("GammaInc(·, %v)", a)
		if got := GammaInc(0, a); got != 0 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := GammaInc(-1, a); got != 0 {
			t.Errorf("%s(-1) = %v, want 0", name, got)
		}
		for _, x := range []float64{0.01, 0.5, 1, 2, a, a + 1, 2 * a, 5 * a} {
			want := mathext.GammaIncReg(a, x)
			got, ok := GammaIncChecked(x, a)
			if !ok {
				t.Errorf("%s(%v) did not converge", name, x)
			}
			if !mathtest.AeqTol(want, got, 1e-6) {
				t.Errorf("%s(%v) = %v, want %v", name, x, got, want)
			}
		}
		if got := GammaInc(1000*a, a); !mathtest.AeqTol(1, got, 1e-9) {
			t.Errorf("%s(∞) = %v, want 1", name, got)
		}
	}

	// P(1, x) is the exponential CDF.
	mathtest.WantFuncTol(t, "GammaInc(·, 1)", func(x float64) float64 { return GammaInc(x, 1) },
		map[float64]float64{
			0.5: 1 - math.Exp(-0.5),
			1:   1 - math.Exp(-1),
			3:   1 - math.Exp(-3),
		}, 1e-6)
}

func TestBetaInc(t *testing.T) {
	for _, ab := range [][2]float64{{0.5, 0.5}, {1, 1}, {2, 3}, {5, 1}, {10, 20}, {50, 40}} {
		a, b := ab[0], ab[1]
		name := fmt.Sprintf("BetaInc(·, %v, %v)", a, b)
		if got := BetaInc(0, a, b); got != 0 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := BetaInc(1, a, b); got != 1 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
		for _, x := range []float64{0.01, 0.1, 0.25, 0.5, 0.75, 0.9, 0.99} {
			want := mathext.RegIncBeta(a, b, x)
			got, ok := BetaIncChecked(x, a, b)
			if !ok {
				t.Errorf("%s(%v) did not converge", name, x)
			}
			if !mathtest.AeqTol(want, got, 1e-6) {
				t.Errorf("%s(%v) = %v, want %v", name, x, got, want)
			}
			// Iₓ(a,b) = 1 - I₁₋ₓ(b,a)
			if sym := 1 - BetaInc(1-x, b, a); !mathtest.AeqTol(got, sym, 1e-6) {
				t.Errorf("%s(%v) = %v, but 1-I(1-x; b, a) = %v", name, x, got, sym)
			}
		}
	}

	// I(1,1) is the uniform CDF.
	for _, x := range []float64{0.1, 0.3, 0.6} {
		if got := BetaInc(x, 1, 1); !mathtest.AeqTol(x, got, 1e-7) {
			t.Errorf("BetaInc(%v, 1, 1) = %v, want %v", x, got, x)
		}
	}
	if got := Beta(2, 3); !mathtest.AeqTol(1.0/12, got, 1e-9) {
		t.Errorf("Beta(2, 3) = %v, want 1/12", got)
	}
}

func TestSign(t *testing.T) {
	mathtest.WantFunc(t, "Sign", Sign, map[float64]float64{
		-3: -1, 0: 0, 2.5: 1, math.Inf(1): 1, math.Inf(-1): -1,
	})
	if !math.IsNaN(Sign(math.NaN())) {
		t.Errorf("Sign(NaN) != NaN")
	}
}
