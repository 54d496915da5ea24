// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package randx provides the uniform random sources used to simulate
// distributions.
//
// Any type with a Float64 method returning values in [0, 1) is a
// Source, including *rand.Rand from math/rand/v2. Sources are not safe
// for concurrent use unless documented otherwise; Locked serializes
// access to an underlying source.
package randx // import "github.com/distkit/distkit/randx"

import (
	"math/rand/v2"
	"sync"
)

// A Source produces uniformly distributed values in [0, 1).
type Source interface {
	Float64() float64
}

// New returns a deterministic generator seeded with seed. Tests and
// reproducible simulations should always use this rather than the
// default source.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Locked is a Source that is safe for concurrent use by multiple
// goroutines.
type Locked struct {
	mu  sync.Mutex
	src Source
}

// NewLocked returns a Locked wrapping src.
func NewLocked(src Source) *Locked {
	return &Locked{src: src}
}

// Float64 returns the next value of the underlying source.
func (l *Locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Float64()
}

var (
	defaultOnce sync.Once
	defaultSrc  *Locked
)

// Default returns the process-wide source. It is seeded from the
// runtime's entropy and safe for concurrent use.
func Default() Source {
	defaultOnce.Do(func() {
		defaultSrc = NewLocked(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	})
	return defaultSrc
}

// Or returns src, or the default source if src is nil.
func Or(src Source) Source {
	if src == nil {
		return Default()
	}
	return src
}
