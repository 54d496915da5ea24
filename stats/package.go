// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats implements discrete and continuous probability
// distributions over a discretized domain, and accumulators for
// comparing simulated samples against them.
//
// Every distribution is an immutable value. Constructors clamp invalid
// parameters to the nearest legal value instead of returning errors, so
// a constructor always yields a usable distribution. Because values are
// never mutated, distributions may be shared freely between goroutines;
// only the random source passed to Rand needs synchronization (see
// randx.Locked).
package stats // import "github.com/distkit/distkit/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()

// defaultBins is the number of bins used to discretize the default
// domain of a continuous distribution.
const defaultBins = 100
