// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/distkit/distkit/mathx"
	"github.com/distkit/distkit/randx"
)

// A UDist is the discrete probability distribution of the
// Mann-Whitney U statistic for a pair of samples of sizes N1 and N2.
//
// The details of computing this distribution with no ties can be
// found in Mann, Henry B.; Whitney, Donald R. (1947). "On a Test of
// Whether one of Two Random Variables is Stochastically Larger than
// the Other". Annals of Mathematical Statistics 18 (1): 50–60.
// Computing this distribution in the presence of ties is described in
// Klotz, J. H. (1966). "The Wilcoxon, Ties, and the Computer".
// Journal of the American Statistical Association 61 (315): 772-787
// and Cheung, Ying Kuen; Klotz, Jerome H. (1997). "The Mann Whitney
// Wilcoxon Distribution Using Linked Lists". Statistica Sinica 7:
// 805-813.
type UDist struct {
	n1, n2 int

	// t is the count of the number of ties at each rank in the
	// pooled sample, or nil if there are no ties.
	t   []int
	dom Domain
}

// NewUDist returns the distribution of the U statistic for samples
// of sizes n1 and n2, which are raised to at least 1.
//
// ties gives the number of tied values at each rank of the pooled
// sample. It may be nil, in which case there are no ties. If the ties
// do not sum to n1+n2 they are ignored.
func NewUDist(n1, n2 int, ties []int) UDist {
	n1, n2 = maxint(n1, 1), maxint(n2, 1)
	d := UDist{n1: n1, n2: n2}
	if sumint(ties) == n1+n2 {
		for _, t := range ties {
			if t > 1 {
				d.t = append([]int(nil), ties...)
				break
			}
		}
	}
	width := 1.0
	if d.t != nil {
		// Ties give U half-integer values.
		width = 0.5
	}
	d.dom = NewDiscreteDomain(0, float64(n1*n2), width)
	return d
}

// N1 returns the size of the first sample.
func (d UDist) N1() int { return d.n1 }

// N2 returns the size of the second sample.
func (d UDist) N2() int { return d.n2 }

// Ties returns the tie counts, or nil if there are no ties. The
// caller must not modify the returned slice.
func (d UDist) Ties() []int { return d.t }

func (d UDist) Domain() Domain { return d.dom }

func (d UDist) Kind() Kind { return Discrete }

// p returns the p_{d.n1,d.n2} function defined by Mann, Whitney 1947
// for values of U from 0 up to and including the U argument.
//
// This algorithm runs in Θ(N1*N2*U) = O(N1²N2²) time and is quite
// fast for small values of N1 and N2. However, it does not handle ties.
func (d UDist) p(U int) []float64 {
	// This is a dynamic programming implementation of the
	// recurrence given by Mann and Whitney:
	//
	//   p_{n,m}(U) = (n * p_{n-1,m}(U-m) + m * p_{n,m-1}(U)) / (n+m)
	//   p_{n,m}(U) = 0                           if U < 0
	//   p_{0,m}(U) = p{n,0}(U) = 1 / nCr(m+n, n) if U = 0
	//                          = 0               if U > 0
	//
	// Only one row of the (n, m) plane is live at a time, and
	// p_{n,m} = p_{m,n}, so values are only built for n <= m.
	// Each U slice is overwritten in place from the largest U
	// down, since an entry only depends on the same and smaller
	// values of U.
	N, M := d.n1, d.n2
	if N > M {
		N, M = M, N
	}

	memo := make([][]float64, N+1)
	for n := range memo {
		memo[n] = make([]float64, U+1)
	}

	for m := 0; m <= M; m++ {
		// p_{0,m} is zero except for U=0.
		memo[0][0] = 1

		nlim := minint(N, m)
		for n := 1; n <= nlim; n++ {
			lp := memo[n-1] // p_{n-1,m}
			var rp []float64
			if n <= m-1 {
				rp = memo[n] // p_{n,m-1}
			} else {
				rp = memo[m-1] // p{m-1,n} and m==n
			}

			ulim := minint(n*m, U)
			out := memo[n] // p_{n,m}
			nplusm := float64(n + m)
			for U1 := ulim; U1 >= 0; U1-- {
				l := 0.0
				if U1-m >= 0 {
					l = float64(n) * lp[U1-m]
				}
				r := float64(m) * rp[U1]
				out[U1] = (l + r) / nplusm
			}
		}
	}
	return memo[N]
}

// permCount returns the number of sample permutations under the tie
// vector d.t with U statistic <=, == or >= twoUthresh/2, which can be
// used to directly compute the PMF and CDF of the U distribution
// under ties. This uses the "graphical method" of Klotz (1966).
//
// TODO: This is exponential in len(d.t). The Cheung-Klotz linked list
// method would make it polynomial.
func (d UDist) permCount(twoUthresh int, cmp int) (count float64) {
	// Enumerate all u vectors such that 0 <= u_i <= t_i.
	u := make([]int, len(d.t))
	u[len(u)-1] = -1 // Get enumeration started.
	for {
		u[len(u)-1]++
		for i := len(u) - 1; i >= 0 && u[i] > d.t[i]; i-- {
			if i == 0 {
				// All u vectors have been enumerated.
				return
			}
			// Carry.
			u[i-1]++
			u[i] = 0
		}

		if sumint(u) != d.n1 {
			continue
		}

		// Compute 2*U statistic for this u vector.
		twoU, vsum := 0, 0
		for i, u_i := range u {
			v_i := d.t[i] - u_i
			// U = U + vsum*u_i + u_i*v_i/2
			twoU += 2*vsum*u_i + u_i*v_i
			vsum += v_i
		}

		if cmp < 0 && twoU > twoUthresh {
			continue
		} else if cmp == 0 && twoU != twoUthresh {
			continue
		} else if cmp > 0 && twoU < twoUthresh {
			continue
		}

		// Π choose(t_i, u_i) is the number of ways of
		// permuting the input sample under u.
		prod := 1.0
		for i, u_i := range u {
			prod *= mathx.Choose(d.t[i], u_i)
		}
		count += prod
	}
}

func (d UDist) PDF(U float64) float64 {
	if U < 0 || U >= 0.5+float64(d.n1*d.n2) {
		return 0
	}

	if d.t != nil {
		twoU, ok := asInt(2 * U)
		if !ok {
			return 0
		}
		return d.permCount(twoU, 0) / mathx.Choose(d.n1+d.n2, d.n1)
	}

	// There are no ties. Use the fast algorithm. U must be integral.
	Ui, ok := asInt(U)
	if !ok {
		return 0
	}
	return d.p(Ui)[Ui]
}

func (d UDist) CDF(U float64) float64 {
	if U < 0 {
		return 0
	} else if U >= float64(d.n1*d.n2) {
		return 1
	}

	if d.t != nil {
		return d.permCount(int(math.Floor(2*U+1e-9)), -1) / mathx.Choose(d.n1+d.n2, d.n1)
	}

	// There are no ties. Use the fast algorithm. U must be integral.
	Ui := int(math.Floor(U + 1e-9))
	// The distribution is symmetric around U = m * n / 2. Sum up
	// whichever tail is smaller.
	flip := Ui >= (d.n1*d.n2+1)/2
	if flip {
		Ui = d.n1*d.n2 - Ui - 1
	}
	pdfs := d.p(Ui)
	p := 0.0
	for _, pdf := range pdfs[:Ui+1] {
		p += pdf
	}
	if flip {
		p = 1 - p
	}
	return p
}

func (d UDist) Mean() float64 {
	return float64(d.n1*d.n2) / 2
}

// Variance includes the standard correction for ties.
func (d UDist) Variance() float64 {
	n1, n2 := float64(d.n1), float64(d.n2)
	n := n1 + n2
	tc := 0.0
	for _, t := range d.t {
		ft := float64(t)
		tc += ft*ft*ft - ft
	}
	return n1 * n2 / 12 * ((n + 1) - tc/(n*(n-1)))
}

func (d UDist) Median() float64 { return d.Mean() }

// Rand assigns the pooled ranks to the two samples at random and
// returns the U statistic of the first sample. Tied ranks get their
// midrank.
func (d UDist) Rand(src randx.Source) float64 {
	n := d.n1 + d.n2
	ranks := make([]float64, n)
	if d.t == nil {
		for i := range ranks {
			ranks[i] = float64(i + 1)
		}
	} else {
		i := 0
		for _, t := range d.t {
			mid := float64(i) + float64(t+1)/2
			for j := 0; j < t; j++ {
				ranks[i] = mid
				i++
			}
		}
	}
	r1 := 0.0
	for _, i := range permutation(n, src)[:d.n1] {
		r1 += ranks[i]
	}
	n1 := float64(d.n1)
	return r1 - n1*(n1+1)/2
}

func sumint(xs []int) int {
	sum := 0
	for _, x := range xs {
		sum += x
	}
	return sum
}
