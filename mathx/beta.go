// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// Beta returns the value of the complete beta function B(a, b).
func Beta(a, b float64) float64 {
	// B(x,y) = Γ(x)Γ(y) / Γ(x+y)
	return math.Exp(LogGamma(a) + LogGamma(b) - LogGamma(a+b))
}

// BetaInc returns the value of the regularized incomplete beta
// function Iₓ(a, b). This is the CDF at x of the beta distribution
// with shape parameters a and b.
//
// x must be in [0, 1] and a and b must be positive; other arguments
// produce NaN or ±Inf. If the continued fraction does not converge
// within its iteration limit, BetaInc returns its best
// approximation; use BetaIncChecked to detect that case.
func BetaInc(x, a, b float64) float64 {
	v, _ := BetaIncChecked(x, a, b)
	return v
}

// BetaIncChecked is like BetaInc, but also reports whether the
// continued fraction converged.
func BetaIncChecked(x, a, b float64) (float64, bool) {
	// Based on Numerical Recipes in C, section 6.4. This uses the
	// continued fraction definition of I:
	//
	//  (xᵃ*(1-x)ᵇ)/(a*B(a,b)) * (1/(1+(d₁/(1+(d₂/(1+...))))))
	//
	// where B(a,b) is the beta function and
	//
	//  d_{2m+1} = -(a+m)(a+b+m)x/((a+2m)(a+2m+1))
	//  d_{2m}   = m(b-m)x/((a+2m-1)(a+2m))
	bt := 0.0
	if 0 < x && x < 1 {
		// Compute the coefficient before the continued
		// fraction.
		bt = math.Exp(LogGamma(a+b) - LogGamma(a) - LogGamma(b) +
			a*math.Log(x) + b*math.Log(1-x))
	}
	if x < (a+1)/(a+b+2) {
		// Compute continued fraction directly.
		cf, ok := betaCF(x, a, b)
		return bt * cf / a, ok
	}
	// Compute continued fraction after symmetry transform.
	cf, ok := betaCF(1-x, b, a)
	return 1 - bt*cf/b, ok
}

// betaCF is the continued fraction component of the regularized
// incomplete beta function Iₓ(a, b).
func betaCF(x, a, b float64) (float64, bool) {
	raiseZero := func(z float64) float64 {
		if math.Abs(z) < fpmin {
			return fpmin
		}
		return z
	}

	c := 1.0
	d := 1 / raiseZero(1-(a+b)*x/(a+1))
	h := d
	for m := 1; m <= maxIterations; m++ {
		mf := float64(m)

		// Even step of the recurrence.
		numer := mf * (b - mf) * x / ((a + 2*mf - 1) * (a + 2*mf))
		d = 1 / raiseZero(1+numer*d)
		c = raiseZero(1 + numer/c)
		h *= d * c

		// Odd step of the recurrence.
		numer = -(a + mf) * (a + b + mf) * x / ((a + 2*mf) * (a + 2*mf + 1))
		d = 1 / raiseZero(1+numer*d)
		c = raiseZero(1 + numer/c)
		hfac := d * c
		h *= hfac

		if math.Abs(hfac-1) < epsilon {
			return h, true
		}
	}
	return h, false
}
