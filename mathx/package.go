// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx implements the special functions used by the
// distributions in package stats: combinatorial counts, the log-gamma
// function, and the regularized incomplete gamma and beta functions.
//
// None of these functions fail. Outside their stated domains they
// return whatever IEEE arithmetic produces (±Inf or NaN), and callers
// are expected to filter edge cases before calling.
package mathx // import "github.com/distkit/distkit/mathx"

import "math"

var nan = math.NaN()

const (
	// maxIterations bounds the series and continued fraction
	// expansions of the incomplete gamma and beta functions.
	maxIterations = 100

	// epsilon is the relative convergence tolerance of those
	// expansions.
	epsilon = 3e-7

	// fpmin is a number near the smallest representable float,
	// used to keep the modified Lentz recurrences away from zero.
	fpmin = 1e-300
)
