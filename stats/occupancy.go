// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/distkit/distkit/randx"
)

// Occupancy distributions describe drawing uniformly with replacement
// from a population of M values ("days" or "coupon types").

// BirthdayDist is the distribution of the number of distinct values
// in N draws with replacement from M equally likely values.
type BirthdayDist struct {
	m, n int
	pmf  []float64 // pmf[j-1] = P(j distinct values)
	dom  Domain
}

// NewBirthday returns the distribution of the number of distinct
// values among n draws from m values. m and n are raised to at least
// 1.
func NewBirthday(m, n int) BirthdayDist {
	m, n = maxint(m, 1), maxint(n, 1)
	top := minint(m, n)

	// p[j] is the probability of j distinct values so far.
	fm := float64(m)
	p := make([]float64, top+1)
	p[1] = 1
	for t := 2; t <= n; t++ {
		for j := minint(t, top); j >= 1; j-- {
			p[j] = p[j]*float64(j)/fm + p[j-1]*float64(m-j+1)/fm
		}
	}
	return BirthdayDist{m: m, n: n, pmf: p[1:], dom: NewDiscreteDomain(1, float64(top), 1)}
}

// M returns the number of values.
func (d BirthdayDist) M() int { return d.m }

// N returns the number of draws.
func (d BirthdayDist) N() int { return d.n }

func (d BirthdayDist) Domain() Domain { return d.dom }

func (d BirthdayDist) Kind() Kind { return Discrete }

func (d BirthdayDist) PDF(x float64) float64 {
	j, ok := asInt(x)
	if !ok || j < 1 || j > len(d.pmf) {
		return 0
	}
	return d.pmf[j-1]
}

func (d BirthdayDist) Mean() float64 {
	m, n := float64(d.m), float64(d.n)
	return m * (1 - math.Pow(1-1/m, n))
}

func (d BirthdayDist) Variance() float64 {
	m, n := float64(d.m), float64(d.n)
	q1 := math.Pow(1-1/m, n)
	v := m*(m-1)*math.Pow(1-2/m, n) + m*q1 - m*m*q1*q1
	return math.Max(v, 0)
}

func (d BirthdayDist) Rand(src randx.Source) float64 {
	seen := make([]bool, d.m)
	k := 0
	for i := 0; i < d.n; i++ {
		v := intn(d.m, src)
		if !seen[v] {
			seen[v] = true
			k++
		}
	}
	return float64(k)
}

// CouponDist is the distribution of the number of draws with
// replacement from M equally likely values needed to see K distinct
// values (the coupon collector's problem).
type CouponDist struct {
	m, k int
	pmf  []float64 // pmf[t-k] = P(t draws)
	dom  Domain
}

// NewCoupon returns the coupon collector distribution for k distinct
// values out of m. m is raised to at least 1 and k is clamped to
// [1, m].
//
// The support is unbounded, so the domain is truncated at 4 standard
// deviations above the mean.
func NewCoupon(m, k int) CouponDist {
	m = maxint(m, 1)
	k = maxint(minint(k, m), 1)
	d := CouponDist{m: m, k: k}
	hi := maxint(int(math.Ceil(d.Mean()+4*math.Sqrt(d.Variance()))), k)

	// p[j] is the probability of j distinct values after t draws.
	fm := float64(m)
	p := make([]float64, k)
	p[0] = 1
	d.pmf = make([]float64, hi-k+1)
	for t := 1; t <= hi; t++ {
		// Reaching k distinct values on draw t.
		if t >= k {
			d.pmf[t-k] = p[k-1] * float64(m-k+1) / fm
		}
		for j := k - 1; j >= 0; j-- {
			p[j] *= float64(j) / fm
			if j > 0 {
				p[j] += p[j-1] * float64(m-j+1) / fm
			}
		}
	}
	d.dom = NewDiscreteDomain(float64(k), float64(hi), 1)
	return d
}

// M returns the number of values.
func (d CouponDist) M() int { return d.m }

// K returns the number of distinct values to collect.
func (d CouponDist) K() int { return d.k }

func (d CouponDist) Domain() Domain { return d.dom }

func (d CouponDist) Kind() Kind { return Discrete }

func (d CouponDist) PDF(x float64) float64 {
	t, ok := asInt(x)
	if !ok || t < d.k || t-d.k >= len(d.pmf) {
		return 0
	}
	return d.pmf[t-d.k]
}

func (d CouponDist) Mean() float64 {
	m, sum := float64(d.m), 0.0
	for i := 1; i <= d.k; i++ {
		sum += m / (m - float64(i) + 1)
	}
	return sum
}

func (d CouponDist) Variance() float64 {
	m, sum := float64(d.m), 0.0
	for i := 1; i <= d.k; i++ {
		r := m - float64(i) + 1
		sum += float64(i-1) * m / (r * r)
	}
	return sum
}

func (d CouponDist) Rand(src randx.Source) float64 {
	seen := make([]bool, d.m)
	t, distinct := 0, 0
	for distinct < d.k {
		t++
		v := intn(d.m, src)
		if !seen[v] {
			seen[v] = true
			distinct++
		}
	}
	return float64(t)
}
