// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package catalog maps distribution names to constructors that take
// their parameters as a list of numbers.
package catalog

import (
	"math"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/distkit/distkit/stats"
)

// ErrUnknownDist is returned for a name that is not in the catalog.
var ErrUnknownDist = errors.New("unknown distribution")

// An Entry describes one distribution family.
type Entry struct {
	// Name is the lookup key.
	Name string

	// Params names the parameters, in order.
	Params []string

	// Defaults gives the value of each parameter that is not
	// supplied.
	Defaults []float64

	// Doc is a one-line description.
	Doc string

	build func(p []float64) stats.Dist
}

// Usage returns the entry's name and parameter list, such as
// "binomial(n, p)".
func (e Entry) Usage() string {
	return e.Name + "(" + strings.Join(e.Params, ", ") + ")"
}

// New returns the distribution for the given parameters. Missing
// trailing parameters take their defaults.
func (e Entry) New(params []float64) (stats.Dist, error) {
	if len(params) > len(e.Params) {
		return nil, errors.Newf("%s takes %d parameters, got %d", e.Usage(), len(e.Params), len(params))
	}
	p := append([]float64(nil), e.Defaults...)
	copy(p, params)
	for i, x := range p {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, errors.Newf("%s: parameter %s is %v", e.Name, e.Params[i], x)
		}
	}
	return e.build(p), nil
}

// intParam rounds a count parameter to the nearest integer.
func intParam(x float64) int { return int(math.Round(x)) }

var entries = []Entry{
	{"arcsine", []string{"n"}, []float64{10}, "last zero of a 2n-step symmetric random walk",
		func(p []float64) stats.Dist { return stats.NewDiscreteArcsine(intParam(p[0])) }},
	{"bernoulli", []string{"p"}, []float64{0.5}, "single trial with success probability p",
		func(p []float64) stats.Dist { return stats.NewBernoulli(p[0]) }},
	{"beta", []string{"a", "b"}, []float64{2, 2}, "beta distribution on [0, 1]",
		func(p []float64) stats.Dist { return stats.NewBeta(p[0], p[1]) }},
	{"binomial", []string{"n", "p"}, []float64{10, 0.5}, "successes in n independent trials",
		func(p []float64) stats.Dist { return stats.NewBinomial(intParam(p[0]), p[1]) }},
	{"binomial-random-n", []string{"m", "p"}, []float64{10, 0.5}, "successes in N trials with N uniform on 1..m",
		func(p []float64) stats.Dist {
			return stats.NewBinomialRandomN(stats.NewDiscreteUniform(1, p[0], 1), p[1])
		}},
	{"birthday", []string{"m", "n"}, []float64{365, 23}, "distinct values in n draws from m",
		func(p []float64) stats.Dist { return stats.NewBirthday(intParam(p[0]), intParam(p[1])) }},
	{"cauchy", []string{"x0", "gamma"}, []float64{0, 1}, "Cauchy distribution",
		func(p []float64) stats.Dist { return stats.NewCauchy(p[0], p[1]) }},
	{"chisquare", []string{"df"}, []float64{3}, "chi-square distribution",
		func(p []float64) stats.Dist { return stats.NewChiSquare(p[0]) }},
	{"circle", []string{"r"}, []float64{1}, "semicircle distribution on [-r, r]",
		func(p []float64) stats.Dist { return stats.NewCircle(p[0]) }},
	{"coupon", []string{"m", "k"}, []float64{10, 10}, "draws needed to see k of m values",
		func(p []float64) stats.Dist { return stats.NewCoupon(intParam(p[0]), intParam(p[1])) }},
	{"exponential", []string{"rate"}, []float64{1}, "exponential distribution",
		func(p []float64) stats.Dist { return stats.NewExponential(p[0]) }},
	{"fisher", []string{"m", "n"}, []float64{5, 10}, "F distribution",
		func(p []float64) stats.Dist { return stats.NewFisher(p[0], p[1]) }},
	{"gamma", []string{"shape", "scale"}, []float64{2, 1}, "gamma distribution",
		func(p []float64) stats.Dist { return stats.NewGamma(p[0], p[1]) }},
	{"geometric", []string{"p"}, []float64{0.5}, "trials up to the first success",
		func(p []float64) stats.Dist { return stats.NewGeometric(p[0]) }},
	{"hypergeometric", []string{"N", "K", "n"}, []float64{50, 10, 5}, "type 1 objects in n draws without replacement",
		func(p []float64) stats.Dist { return stats.NewHypergeometric(intParam(p[0]), intParam(p[1]), intParam(p[2])) }},
	{"irwin-hall", []string{"n"}, []float64{3}, "sum of n uniforms on [0, 1]",
		func(p []float64) stats.Dist { return stats.NewConvolution(stats.NewUniform(0, 1), intParam(p[0])) }},
	{"logistic", []string{"mu", "s"}, []float64{0, 1}, "logistic distribution",
		func(p []float64) stats.Dist { return stats.NewLogistic(p[0], p[1]) }},
	{"lognormal", []string{"mu", "sigma"}, []float64{0, 1}, "log-normal distribution",
		func(p []float64) stats.Dist { return stats.NewLogNormal(p[0], p[1]) }},
	{"match", []string{"n"}, []float64{10}, "fixed points of a random permutation",
		func(p []float64) stats.Dist { return stats.NewMatch(intParam(p[0])) }},
	{"negbinomial", []string{"k", "p"}, []float64{3, 0.5}, "trials up to the k'th success",
		func(p []float64) stats.Dist { return stats.NewNegativeBinomial(intParam(p[0]), p[1]) }},
	{"normal", []string{"mu", "sigma"}, []float64{0, 1}, "normal distribution",
		func(p []float64) stats.Dist { return stats.NewNormal(p[0], p[1]) }},
	{"normal-mixture", []string{"mu1", "sigma1", "mu2", "sigma2", "w"}, []float64{-2, 1, 2, 1, 0.5}, "two-component normal mixture with weight w on the first",
		func(p []float64) stats.Dist {
			return stats.NewMixture(
				[]stats.Dist{stats.NewNormal(p[0], p[1]), stats.NewNormal(p[2], p[3])},
				[]float64{p[4], 1 - p[4]})
		}},
	{"order-uniform", []string{"n", "k"}, []float64{5, 3}, "k'th smallest of n uniforms on [0, 1]",
		func(p []float64) stats.Dist { return stats.NewOrderStat(stats.NewUniform(0, 1), intParam(p[0]), intParam(p[1])) }},
	{"order-finite", []string{"N", "n", "k"}, []float64{50, 5, 3}, "k'th smallest of n draws without replacement from 1..N",
		func(p []float64) stats.Dist { return stats.NewFiniteOrderStat(intParam(p[0]), intParam(p[1]), intParam(p[2])) }},
	{"pareto", []string{"k", "b"}, []float64{3, 1}, "Pareto distribution",
		func(p []float64) stats.Dist { return stats.NewPareto(p[0], p[1]) }},
	{"poisson", []string{"lambda"}, []float64{4}, "Poisson distribution",
		func(p []float64) stats.Dist { return stats.NewPoisson(p[0]) }},
	{"student", []string{"v"}, []float64{5}, "Student's t distribution",
		func(p []float64) stats.Dist { return stats.NewStudent(p[0]) }},
	{"triangle", []string{"a", "b", "c"}, []float64{0, 1, 0.5}, "triangle distribution on [a, b] with mode c",
		func(p []float64) stats.Dist { return stats.NewTriangle(p[0], p[1], p[2]) }},
	{"udist", []string{"n1", "n2"}, []float64{5, 5}, "Mann-Whitney U statistic without ties",
		func(p []float64) stats.Dist { return stats.NewUDist(intParam(p[0]), intParam(p[1]), nil) }},
	{"uniform", []string{"a", "b"}, []float64{0, 1}, "continuous uniform distribution",
		func(p []float64) stats.Dist { return stats.NewUniform(p[0], p[1]) }},
	{"uniform-discrete", []string{"a", "b", "w"}, []float64{1, 6, 1}, "discrete uniform distribution on a, a+w, ..., b",
		func(p []float64) stats.Dist { return stats.NewDiscreteUniform(p[0], p[1], p[2]) }},
	{"walk-max", []string{"n"}, []float64{10}, "maximum of an n-step symmetric random walk",
		func(p []float64) stats.Dist { return stats.NewWalkMax(intParam(p[0])) }},
	{"walk-position", []string{"n", "p"}, []float64{10, 0.5}, "position after n steps up with probability p",
		func(p []float64) stats.Dist { return stats.NewWalkPosition(intParam(p[0]), p[1]) }},
	{"weibull", []string{"k", "lambda"}, []float64{2, 1}, "Weibull distribution",
		func(p []float64) stats.Dist { return stats.NewWeibull(p[0], p[1]) }},
}

var byName = func() map[string]int {
	m := make(map[string]int, len(entries))
	for i, e := range entries {
		m[e.Name] = i
	}
	return m
}()

// Lookup returns the entry for name. Names are case-insensitive.
func Lookup(name string) (Entry, error) {
	i, ok := byName[strings.ToLower(name)]
	if !ok {
		return Entry{}, errors.Wrapf(ErrUnknownDist, "%q", name)
	}
	return entries[i], nil
}

// New returns the named distribution with the given parameters.
func New(name string, params []float64) (stats.Dist, error) {
	e, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return e.New(params)
}

// Entries returns every entry in order of name.
func Entries() []Entry {
	es := append([]Entry(nil), entries...)
	sort.Slice(es, func(i, j int) bool { return es[i].Name < es[j].Name })
	return es
}
