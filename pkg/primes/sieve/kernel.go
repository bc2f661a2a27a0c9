package sieve

import (
	"github.com/bondeluke/primes/pkg/primes"
)

// Kernel is every prime below one wheel circumference, ascending. It is the factor base
// for all later segments and is never modified after InitKernel returns.
type Kernel struct {
	primes []uint64
	basis  int
	limit  uint64
}

// InitKernel sieves the first circumference of t's wheel.
func InitKernel(t *Template) *Kernel {
	w := t.Wheel()
	spokes := w.Spokes()
	circ := w.Circumference()
	basisSize := len(w.Basis())

	found := make([]uint64, 0, len(spokes)/2+basisSize)
	found = append(found, w.Basis()...)
	found = append(found, spokes[1])

	sieve := t.Clone()

	spokeIndex := 2
	for i := basisSize; i < len(found); i++ {
		p := found[i]
		pSquared := p * p
		if pSquared > circ {
			break
		}

		// multiples p*spoke with spoke < p already have a smaller prime factor
		for _, spoke := range spokes[t.NextSpoke(p):] {
			n := p * spoke
			if n > circ {
				break
			}
			sieve[n/3] = false
		}

		for spokes[spokeIndex] < pSquared {
			if sieve[spokes[spokeIndex]/3] {
				found = append(found, spokes[spokeIndex])
			}
			spokeIndex++
		}
	}

	for _, spoke := range spokes[spokeIndex:] {
		if sieve[spoke/3] {
			found = append(found, spoke)
		}
	}

	kernelPrimes := make([]uint64, len(found))
	copy(kernelPrimes, found)

	// Every composite below circ² has a prime factor below circ, and all of those are in the kernel.
	limit, err := primes.CheckedMul(circ, circ)
	if err != nil {
		limit = ^uint64(0)
	}

	return &Kernel{primes: kernelPrimes, basis: basisSize, limit: limit}
}

// Primes returns the kernel primes. The slice is shared and must not be modified.
func (k *Kernel) Primes() []uint64 {
	return k.primes
}

func (k *Kernel) Len() int {
	return len(k.primes)
}

// Factors returns the kernel primes beyond the wheel basis, the ones segment sieving crosses out with.
func (k *Kernel) Factors() []uint64 {
	return k.primes[k.basis:]
}

// Limit is the exclusive upper bound of the numbers the kernel can sieve correctly.
func (k *Kernel) Limit() uint64 {
	return k.limit
}

// Covers reports whether every composite below upper has a prime factor in the kernel.
func (k *Kernel) Covers(upper uint64) bool {
	return upper <= k.limit
}
