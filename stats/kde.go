// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/distkit/distkit/randx"
)

// KDE represents options for constructing a kernel density estimate.
//
// Kernel density estimation is a method for constructing an estimate
// ƒ̂(x) of a unknown distribution ƒ(x) given a sample from that
// distribution. Unlike many techniques, kernel density estimation is
// non-parametric: in general, it doesn't assume any particular true
// distribution (note, however, that the resulting distribution
// depends deeply on the selected bandwidth, and many bandwidth
// estimation techniques assume normal reference rules).
//
// The estimate places a Gaussian kernel with standard deviation
// Bandwidth on every sample point.
//
// The default (zero) value of KDE is a reasonable default
// configuration.
type KDE struct {
	// Bandwidth is the bandwidth to use for the KDE.
	//
	// If this is zero, the bandwidth is computed from the
	// provided data using BandwidthScott.
	Bandwidth float64

	// [BoundaryMin, BoundaryMax) specify a bounded support for
	// the KDE. If both are 0 (their default values), they are
	// treated as +/-inf. Mass that the kernels put outside a
	// finite boundary is reflected back inside it.
	//
	// To specify a half-bounded support, set Min to math.Inf(-1)
	// or Max to math.Inf(1).
	BoundaryMin float64
	BoundaryMax float64
}

// BandwidthSilverman is a bandwidth estimator implementing
// Silverman's Rule of Thumb. It's fast, but not very robust to
// outliers as it assumes data is approximately normal.
//
// Silverman, B. W. (1986) Density Estimation.
func BandwidthSilverman(data *Data) float64 {
	return 1.06 * data.StdDev() * math.Pow(float64(data.Count()), -1.0/5)
}

// BandwidthScott is a bandwidth estimator implementing Scott's Rule.
// This is generally robust to outliers: it chooses the minimum
// between the sample's standard deviation and an robust estimator of
// a Gaussian distribution's standard deviation.
//
// Scott, D. W. (1992) Multivariate Density Estimation: Theory,
// Practice, and Visualization.
func BandwidthScott(data *Data) float64 {
	iqr := data.Quantile(0.75) - data.Quantile(0.25)
	hScale := 1.06 * math.Pow(float64(data.Count()), -1.0/5)
	stdDev := data.StdDev()
	if stdDev < iqr/1.349 {
		// Use Silverman's Rule of Thumb
		return hScale * stdDev
	}
	// Use IQR/1.349 as a robust estimator of the standard
	// deviation of a Gaussian distribution.
	return hScale * (iqr / 1.349)
}

// KDEDist is a kernel density estimate. It is a continuous Dist.
type KDEDist struct {
	xs       []float64
	h        float64
	min, max float64 // Support bounds
	reflect  bool
	mean     float64
	popVar   float64
	dom      Domain
}

// From returns the kernel density estimate for the sample data.
//
// If the bandwidth comes out non-positive (for example, for a sample
// with fewer than two distinct values), a bandwidth of 1 is used. An
// empty sample gives the estimate of a single point at 0.
func (k KDE) From(data *Data) KDEDist {
	xs := append([]float64(nil), data.Values()...)
	if len(xs) == 0 {
		xs = []float64{0}
	}

	h := k.Bandwidth
	if h == 0 && len(xs) > 1 {
		h = BandwidthScott(data)
	}
	if !(h > 0) {
		h = 1
	}

	min, max := k.BoundaryMin, k.BoundaryMax
	if min == 0 && max == 0 {
		min, max = math.Inf(-1), math.Inf(1)
	}

	var m moments
	for _, x := range xs {
		m.add(x)
	}
	lo := math.Max(xs[0]-3*h, min)
	hi := math.Min(xs[len(xs)-1]+3*h, max)
	return KDEDist{
		xs:      xs,
		h:       h,
		min:     min,
		max:     max,
		reflect: !(math.IsInf(min, -1) && math.IsInf(max, 1)),
		mean:    m.mean,
		popVar:  m.popVariance(),
		dom:     continuousDomain(lo, hi),
	}
}

// Bandwidth returns the bandwidth of the estimate.
func (kde KDEDist) Bandwidth() float64 { return kde.h }

func (kde KDEDist) Domain() Domain { return kde.dom }

func (kde KDEDist) Kind() Kind { return Continuous }

// sum returns the average over the sample points of f(x - xᵢ).
func (kde KDEDist) sum(f func(float64) float64, x float64) float64 {
	s := 0.0
	for _, xi := range kde.xs {
		s += f(x - xi)
	}
	return s / float64(len(kde.xs))
}

func (kde KDEDist) kernelPDF(z float64) float64 {
	z /= kde.h
	return math.Exp(-z*z/2) * invSqrt2Pi / kde.h
}

func (kde KDEDist) kernelCDF(z float64) float64 {
	return (1 + math.Erf(z/(kde.h*math.Sqrt2))) / 2
}

func (kde KDEDist) PDF(x float64) float64 {
	// Apply boundary
	if x < kde.min || x >= kde.max {
		return 0
	}

	y := func(x float64) float64 { return kde.sum(kde.kernelPDF, x) }
	switch {
	case !kde.reflect:
		return y(x)
	case math.IsInf(kde.max, 1):
		return y(x) + y(2*kde.min-x)
	case math.IsInf(kde.min, -1):
		return y(x) + y(2*kde.max-x)
	}
	d := 2 * (kde.max - kde.min)
	w := 2 * (x - kde.min)
	return series(func(n float64) float64 {
		// Points >= x
		return y(x+n*d) + y(x+n*d-w)
	}) + series(func(n float64) float64 {
		// Points < x
		return y(x-(n+1)*d+w) + y(x-(n+1)*d)
	})
}

func (kde KDEDist) CDF(x float64) float64 {
	// Apply boundary
	if x < kde.min {
		return 0
	} else if x >= kde.max {
		return 1
	}

	y := func(x float64) float64 { return kde.sum(kde.kernelCDF, x) }
	switch {
	case !kde.reflect:
		return y(x)
	case math.IsInf(kde.max, 1):
		return y(x) - y(2*kde.min-x)
	case math.IsInf(kde.min, -1):
		return y(x) + (1 - y(2*kde.max-x))
	}
	d := 2 * (kde.max - kde.min)
	w := 2 * (x - kde.min)
	return series(func(n float64) float64 {
		// Windows >= x-w
		return y(x+n*d) - y(x+n*d-w)
	}) + series(func(n float64) float64 {
		// Windows < x-w
		return y(x-(n+1)*d) - y(x-(n+1)*d-w)
	})
}

// Mean returns the mean of the estimate. Without boundaries this is
// the sample mean; with boundaries it is computed numerically.
func (kde KDEDist) Mean() float64 {
	if kde.reflect {
		return DomainMean(kde)
	}
	return kde.mean
}

// Variance returns the variance of the estimate. Without boundaries
// this is the population variance of the sample plus the kernel
// variance; with boundaries it is computed numerically.
func (kde KDEDist) Variance() float64 {
	if kde.reflect {
		return DomainVariance(kde)
	}
	return kde.popVar + kde.h*kde.h
}

// Rand picks a sample point, perturbs it by the kernel and reflects
// the result into the support.
func (kde KDEDist) Rand(src randx.Source) float64 {
	x := kde.xs[intn(len(kde.xs), src)] + kde.h*stdNormal(src)
	if !kde.reflect {
		return x
	}
	for x < kde.min || x > kde.max {
		if x < kde.min {
			x = 2*kde.min - x
		}
		if x > kde.max {
			x = 2*kde.max - x
		}
	}
	return x
}
