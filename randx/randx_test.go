// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Float64(), b.Float64(), "draw %d", i)
	}
	assert.NotEqual(t, New(1).Float64(), New(2).Float64())
}

func TestMT19937(t *testing.T) {
	// Reference outputs of the MT19937 reference implementation
	// seeded with 5489.
	mt := NewMT19937(5489)
	want := []uint32{3499211612, 581869302, 3890346734, 3586334585, 545404204}
	for i, w := range want {
		require.Equal(t, w, mt.Uint32(), "output %d", i)
	}

	// The 10000th output for the default seed is a classic check
	// value.
	mt.Seed(5489)
	var v uint32
	for i := 0; i < 10000; i++ {
		v = mt.Uint32()
	}
	assert.Equal(t, uint32(4123659995), v)

	r := rand.New(NewMT19937(1))
	for i := 0; i < 1000; i++ {
		x := r.Float64()
		require.True(t, x >= 0 && x < 1, "Float64() = %v out of range", x)
	}
}

func TestLocked(t *testing.T) {
	src := NewLocked(New(7))
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				x := src.Float64()
				if x < 0 || x >= 1 {
					t.Errorf("Float64() = %v out of range", x)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestOr(t *testing.T) {
	assert.Same(t, Default(), Or(nil))
	src := New(3)
	assert.Equal(t, Source(src), Or(src))
}
