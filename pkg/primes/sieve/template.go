package sieve

import (
	"github.com/pkg/errors"

	"github.com/bondeluke/primes/pkg/primes"
	"github.com/bondeluke/primes/pkg/primes/wheel"
)

// Template holds the structures derived once from a wheel and shared read-only by every
// kernel and segment computation.
type Template struct {
	wheel     *wheel.Wheel
	flags     []bool
	nextSpoke []uint32
}

// NewTemplate derives the sieve template and next-spoke table from w. The basis must
// contain 3: the sieve stores one flag per n/3, which is unique among spokes only when
// multiples of 2 and 3 are already excluded.
func NewTemplate(w *wheel.Wheel) (*Template, error) {
	if !w.HasBasis(3) {
		return nil, errors.Wrapf(primes.ErrInvalidBasis, "basis %v does not contain 3", w.Basis())
	}

	circ := w.Circumference()
	spokes := w.Spokes()

	flags := make([]bool, circ/3)
	for _, spoke := range spokes {
		flags[spoke/3] = true
	}

	next := make([]uint32, circ)
	idx := 0
	for r := range circ {
		next[r] = uint32(idx)
		if r == spokes[idx] {
			idx++
		}
	}

	return &Template{wheel: w, flags: flags, nextSpoke: next}, nil
}

func (t *Template) Wheel() *wheel.Wheel {
	return t.wheel
}

// Clone returns a private copy of the sieve with every spoke marked as a prime candidate.
func (t *Template) Clone() []bool {
	flags := make([]bool, len(t.flags))
	copy(flags, t.flags)
	return flags
}

// NextSpoke returns the index of the smallest spoke >= r, for r in [0, circumference).
func (t *Template) NextSpoke(r uint64) int {
	return int(t.nextSpoke[r])
}
