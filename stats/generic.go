// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// The Domain* functions are the numerical fallbacks used when a
// distribution does not provide a closed form. They approximate the
// distribution by its PDF at the midpoints of its Domain: each point
// carries weight 1 for a discrete distribution and weight Width() for
// any other. They are exported so closed forms can be checked against
// them.

// binWeight returns the weight each domain point carries in the
// Riemann sums over d's domain.
func binWeight(d Dist) float64 {
	if d.Kind() == Discrete {
		return 1
	}
	return d.Domain().Width()
}

// domainPMF returns the domain midpoints of d and the probability
// weight at each.
func domainPMF(d Dist) (xs, ps []float64) {
	xs = d.Domain().Values()
	ps = PDFEach(d, xs)
	floats.Scale(binWeight(d), ps)
	return xs, ps
}

// DomainMean returns the mean of d estimated by a Riemann sum over its
// domain.
func DomainMean(d Dist) float64 {
	xs, ps := domainPMF(d)
	return floats.Dot(xs, ps)
}

// DomainVariance returns the variance of d estimated by a Riemann sum
// over its domain.
func DomainVariance(d Dist) float64 {
	xs, ps := domainPMF(d)
	mu := floats.Dot(xs, ps)
	floats.AddConst(-mu, xs)
	floats.Mul(xs, xs)
	return floats.Dot(xs, ps)
}

// DomainMaxPDF returns the largest finite value of d's PDF at the
// midpoints of its domain.
func DomainMaxPDF(d Dist) float64 {
	max := 0.0
	for _, y := range PDFEach(d, d.Domain().Values()) {
		if y > max && !math.IsInf(y, 0) {
			max = y
		}
	}
	return max
}

// DomainCDF returns P(X <= x) for d computed by summing its PDF over
// its domain. It returns 0 below the domain and 1 above it.
//
// For a discrete distribution this is the exact partial sum of the
// masses at domain points <= x. For other distributions, the mass of
// the bin containing x is interpolated linearly across the bin.
func DomainCDF(d Dist, x float64) float64 {
	dom := d.Domain()
	if x < dom.LowerBound() {
		return 0
	} else if x >= dom.UpperBound() {
		return 1
	}

	sum := 0.0
	if d.Kind() == Discrete {
		j := dom.Index(x)
		if j >= dom.Size() || dom.Value(j) > x {
			j--
		}
		for i := 0; i <= j; i++ {
			sum += d.PDF(dom.Value(i))
		}
		return math.Min(sum, 1)
	}

	w := dom.Width()
	j := minint(int((x-dom.LowerBound())/w), dom.Size()-1)
	for i := 0; i < j; i++ {
		sum += d.PDF(dom.Value(i)) * w
	}
	sum += d.PDF(dom.Value(j)) * (x - dom.Bound(j))
	return math.Min(sum, 1)
}

// DomainInvCDF returns the p'th quantile of d.
//
// If d has a closed form CDF, this inverts it: by bisection for a
// continuous d, widening the search beyond the domain if the domain
// truncates the requested tail, and by binary search over the domain
// points for a discrete d. Otherwise, it scans the cumulative sum of
// d's PDF over its domain. p <= 0 and p >= 1 map to the ends of the
// domain.
func DomainInvCDF(d Dist, p float64) float64 {
	dom := d.Domain()
	discrete := d.Kind() == Discrete
	if p <= 0 {
		if discrete {
			return dom.LowerValue()
		}
		return dom.LowerBound()
	} else if p >= 1 {
		if discrete {
			return dom.UpperValue()
		}
		return dom.UpperBound()
	}

	if c, ok := d.(CDFer); ok {
		if !discrete {
			return invertCDF(c.CDF, p, dom.LowerBound(), dom.UpperBound())
		}
		i := sort.Search(dom.Size(), func(i int) bool { return c.CDF(dom.Value(i)) >= p })
		return dom.Value(minint(i, dom.Size()-1))
	}

	w := binWeight(d)
	sum := 0.0
	for i := 0; i < dom.Size(); i++ {
		m := d.PDF(dom.Value(i)) * w
		if discrete {
			sum += m
			if sum >= p-1e-12 {
				return dom.Value(i)
			}
			continue
		}
		if sum+m >= p {
			frac := 0.0
			if m > 0 {
				frac = (p - sum) / m
			}
			return dom.Bound(i) + frac*dom.Width()
		}
		sum += m
	}
	if discrete {
		return dom.UpperValue()
	}
	return dom.UpperBound()
}

// invertCDF returns x such that cdf(x) ≅ p, starting from the bracket
// [lo, hi] and widening it as necessary.
func invertCDF(cdf func(float64) float64, p, lo, hi float64) float64 {
	for i := 0; cdf(lo) > p && i < 64; i++ {
		lo -= hi - lo
	}
	for i := 0; cdf(hi) < p && i < 64; i++ {
		hi += hi - lo
	}
	x, _ := bisect(func(x float64) float64 { return cdf(x) - p }, lo, hi, 0)
	return x
}
