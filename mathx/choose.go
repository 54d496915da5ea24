// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// Permutations returns the number of ordered samples of size k drawn
// without replacement from a population of size n, that is
// n·(n-1)···(n-k+1). It returns 0 if k < 0 or k > n.
//
// The result is a float64 so that large counts overflow to +Inf
// rather than wrapping.
func Permutations(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	p := 1.0
	for i := n - k + 1; i <= n; i++ {
		p *= float64(i)
	}
	return p
}

// Factorial returns k!. It returns 0 for negative k.
func Factorial(k int) float64 {
	return Permutations(k, k)
}

// exactChooseMax is the largest n for which Lchoose computes the
// coefficient directly.
const exactChooseMax = 60

// Choose returns the binomial coefficient of n and k.
func Choose(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	// Use the smaller of k and n-k so the intermediate
	// permutation count stays as small as possible.
	if n-k < k {
		k = n - k
	}
	return math.Round(Permutations(n, k) / Factorial(k))
}

// Lchoose returns math.Log(Choose(n, k)). It returns -Inf if k < 0 or
// k > n. For large n it is computed from LogGamma and does not
// overflow.
func Lchoose(n, k int) float64 {
	if k < 0 || k > n {
		return math.Inf(-1)
	}
	if n <= exactChooseMax {
		return math.Log(Choose(n, k))
	}
	return LogGamma(float64(n+1)) - LogGamma(float64(k+1)) - LogGamma(float64(n-k+1))
}
