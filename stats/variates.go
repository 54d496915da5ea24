// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/distkit/distkit/randx"
)

// Variate generators shared by the distributions' Rand methods. All
// of them draw only from src.Float64, so any randx.Source works.

// openUnit returns a uniform variate in the open interval (0, 1).
func openUnit(src randx.Source) float64 {
	for {
		if u := src.Float64(); u > 0 {
			return u
		}
	}
}

// stdNormal returns a standard normal variate using the Box-Muller
// transform.
func stdNormal(src randx.Source) float64 {
	u1 := 1 - src.Float64() // (0, 1]
	u2 := src.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// stdExp returns an exponential variate with rate 1.
func stdExp(src randx.Source) float64 {
	return -math.Log(1 - src.Float64())
}

// stdGamma returns a gamma variate with the given shape and scale 1.
//
// This is the method of Marsaglia, G. and Tsang, W. W. (2000). "A
// Simple Method for Generating Gamma Variables". ACM Transactions on
// Mathematical Software 26 (3): 363-372. Shapes below 1 are boosted
// using Gamma(k) = Gamma(k+1) * U^(1/k).
func stdGamma(shape float64, src randx.Source) float64 {
	if shape < 1 {
		u := 1 - src.Float64()
		return stdGamma(shape+1, src) * math.Pow(u, 1/shape)
	}
	d := shape - 1.0/3
	c := 1 / math.Sqrt(9*d)
	for {
		var x, v float64
		for v <= 0 {
			x = stdNormal(src)
			v = 1 + c*x
		}
		v = v * v * v
		u := src.Float64()
		if u < 1-0.0331*x*x*x*x {
			return d * v
		}
		if math.Log(u) < 0.5*x*x+d*(1-v+math.Log(v)) {
			return d * v
		}
	}
}

// bernoulliTrials returns the number of successes in n independent
// trials with success probability p.
func bernoulliTrials(n int, p float64, src randx.Source) int {
	k := 0
	for i := 0; i < n; i++ {
		if src.Float64() < p {
			k++
		}
	}
	return k
}

// poissonSmall is the largest mean for which poisson uses Knuth's
// multiplication method directly.
const poissonSmall = 30

// poisson returns a Poisson variate with mean lambda.
//
// Knuth's method multiplies uniforms until the product drops below
// e^-λ. That underflows for large λ, so larger means are split into
// independent pieces of mean at most poissonSmall and summed.
func poisson(lambda float64, src randx.Source) int {
	if lambda <= 0 {
		return 0
	}
	if lambda > poissonSmall {
		pieces := int(math.Ceil(lambda / poissonSmall))
		k := 0
		for i := 0; i < pieces; i++ {
			k += poisson(lambda/float64(pieces), src)
		}
		return k
	}
	l := math.Exp(-lambda)
	k, p := 0, src.Float64()
	for p > l {
		k++
		p *= src.Float64()
	}
	return k
}

// intn returns a uniform integer in [0, n).
func intn(n int, src randx.Source) int {
	i := int(src.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// permutation returns a uniformly random permutation of 0, ..., n-1
// using the Fisher-Yates shuffle.
func permutation(n int, src randx.Source) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := intn(i+1, src)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}
