// Package rng provides the random sources used for maze generation.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"

	"github.com/beka-birhanu/grid-maze/game"
)

// streamSelector fixes the PCG increment so a seed alone identifies a stream.
const streamSelector = 0x9e3779b97f4a7c15

var _ game.RandSource = &Source{}

// Source is a seedable stream of uniform integers.
type Source struct {
	seed uint64
	r    *rand.Rand
}

// NewSeeded returns a source whose output depends only on seed.
func NewSeeded(seed uint64) *Source {
	return &Source{
		seed: seed,
		r:    rand.New(rand.NewPCG(seed, streamSelector)),
	}
}

// New returns a source seeded from the operating system's entropy pool.
func New() *Source {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return NewSeeded(rand.Uint64())
	}
	return NewSeeded(binary.LittleEndian.Uint64(b[:]))
}

// Seed returns the seed the source was created with.
func (s *Source) Seed() uint64 {
	return s.seed
}

// Intn implements game.RandSource. It panics if n < 1.
func (s *Source) Intn(n int) int {
	return s.r.IntN(n)
}
