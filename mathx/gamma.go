// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// lanczos are the coefficients of the Lanczos series used by
// LogGamma, from Numerical Recipes in C, section 6.1.
var lanczos = [6]float64{
	76.18009172947146,
	-86.50532032941677,
	24.01409824083091,
	-1.231739572450155,
	0.1208650973866179e-2,
	-0.5395239384953e-5,
}

// LogGamma returns the natural logarithm of Γ(x) for x > 0.
//
// This uses a 6-term Lanczos approximation, which is accurate to
// about 2e-10 relative error over the whole positive axis.
func LogGamma(x float64) float64 {
	y := x
	tmp := x + 5.5
	tmp -= (x + 0.5) * math.Log(tmp)
	ser := 1.000000000190015
	for _, c := range lanczos {
		y++
		ser += c / y
	}
	return -tmp + math.Log(2.5066282746310005*ser/x)
}

// Gamma returns Γ(x) for x > 0.
func Gamma(x float64) float64 {
	return math.Exp(LogGamma(x))
}

// GammaInc returns the value of the regularized lower incomplete
// gamma function P(a, x). This is the CDF at x of the gamma
// distribution with shape a and scale 1.
//
// It returns 0 for x <= 0. If the expansion does not converge within
// its iteration limit, GammaInc returns its best approximation; use
// GammaIncChecked to detect that case.
func GammaInc(x, a float64) float64 {
	p, _ := GammaIncChecked(x, a)
	return p
}

// GammaIncChecked is like GammaInc, but also reports whether the
// underlying expansion converged.
func GammaIncChecked(x, a float64) (float64, bool) {
	if x <= 0 {
		return 0, true
	}
	if x < a+1 {
		// The series converges quickly here.
		return gammaSeries(x, a)
	}
	// The continued fraction converges quickly here. It computes
	// the upper function Q(a, x) = 1 - P(a, x).
	q, ok := gammaCF(x, a)
	return 1 - q, ok
}

// gammaSeries evaluates P(a, x) by its series representation
//
//	P(a, x) = e⁻ˣ xᵃ Σₙ xⁿ / Γ(a+n+1).
func gammaSeries(x, a float64) (float64, bool) {
	ap := a
	del := 1 / a
	sum := del
	for n := 1; n <= maxIterations; n++ {
		ap++
		del *= x / ap
		sum += del
		if math.Abs(del) < math.Abs(sum)*epsilon {
			return sum * math.Exp(-x+a*math.Log(x)-LogGamma(a)), true
		}
	}
	return sum * math.Exp(-x+a*math.Log(x)-LogGamma(a)), false
}

// gammaCF evaluates Q(a, x) by its continued fraction representation
// using the modified Lentz method.
func gammaCF(x, a float64) (float64, bool) {
	b := x + 1 - a
	c := 1 / fpmin
	d := 1 / b
	h := d
	converged := false
	for i := 1; i <= maxIterations; i++ {
		an := -float64(i) * (float64(i) - a)
		b += 2
		d = an*d + b
		if math.Abs(d) < fpmin {
			d = fpmin
		}
		c = b + an/c
		if math.Abs(c) < fpmin {
			c = fpmin
		}
		d = 1 / d
		del := d * c
		h *= del
		if math.Abs(del-1) < epsilon {
			converged = true
			break
		}
	}
	return math.Exp(-x+a*math.Log(x)-LogGamma(a)) * h, converged
}
