package wheel

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/bondeluke/primes/pkg/primes"
)

// MaxBasisSize bounds the wheel so its next-spoke table stays in the tens of megabytes.
const MaxBasisSize = 8

// Wheel is a set of basis primes and the residues (spokes) coprime to their product.
// A Wheel is immutable once built; the slices returned by Basis and Spokes must not be modified.
type Wheel struct {
	basis         []uint64
	spokes        []uint64
	circumference uint64
}

// Build returns the wheel over the first basisSize primes.
func Build(basisSize int) (*Wheel, error) {
	if basisSize < 1 || basisSize > MaxBasisSize {
		return nil, errors.Wrapf(primes.ErrInvalidBasis, "basis size %d not in [1, %d]", basisSize, MaxBasisSize)
	}

	w := &Wheel{basis: []uint64{2}, spokes: []uint64{1}, circumference: 2}
	for range basisSize - 1 {
		w = w.turn()
	}
	return w, nil
}

// turn grows the wheel by the next prime not yet in the basis.
func (w *Wheel) turn() *Wheel {
	p := uint64(3)
	if len(w.spokes) > 1 {
		p = w.spokes[1]
	}

	basis := make([]uint64, len(w.basis), len(w.basis)+1)
	copy(basis, w.basis)
	basis = append(basis, p)

	spokes := make([]uint64, 0, uint64(len(w.spokes))*(p-1))
	for k := range p {
		for _, s := range w.spokes {
			spoke := k*w.circumference + s
			if spoke%p != 0 {
				spokes = append(spokes, spoke)
			}
		}
	}

	return &Wheel{basis: basis, spokes: spokes, circumference: w.circumference * p}
}

func (w *Wheel) Basis() []uint64 {
	return w.basis
}

func (w *Wheel) Spokes() []uint64 {
	return w.spokes
}

// Circumference is the product of the basis primes.
func (w *Wheel) Circumference() uint64 {
	return w.circumference
}

// Totient is Euler's totient of the circumference, which equals the number of spokes.
func (w *Wheel) Totient() uint64 {
	t := uint64(1)
	for _, p := range w.basis {
		t *= p - 1
	}
	return t
}

// HasBasis reports whether p is one of the basis primes.
func (w *Wheel) HasBasis(p uint64) bool {
	return slices.Contains(w.basis, p)
}
