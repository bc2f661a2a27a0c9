package sieve

import (
	"github.com/pkg/errors"

	"github.com/bondeluke/primes/pkg/primes"
)

// Bounds returns the half-open range [lower, upper) covered by segment index.
func Bounds(index uint64, circ uint64) (lower, upper uint64, err error) {
	lower, err = primes.CheckedMul(index, circ)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "segment %d lower bound", index)
	}
	upper, err = primes.CheckedAdd(lower, circ)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "segment %d upper bound", index)
	}
	return lower, upper, nil
}

// Segment returns the primes in [index*C, (index+1)*C), ascending, where C is the wheel
// circumference. It only reads t and k and is safe to call concurrently for any indices.
func Segment(index uint64, t *Template, k *Kernel) ([]uint64, error) {
	w := t.Wheel()
	circ := w.Circumference()
	spokes := w.Spokes()

	lower, upper, err := Bounds(index, circ)
	if err != nil {
		return nil, err
	}
	if !k.Covers(upper) {
		return nil, errors.Wrapf(primes.ErrKernelInsufficient,
			"segment %d reaches %d, kernel sieves below %d", index, upper, k.Limit())
	}

	if index == 0 {
		found := make([]uint64, k.Len())
		copy(found, k.Primes())
		return found, nil
	}

	sieve := t.Clone()

	for _, p := range k.Factors() {
		if p*p > upper {
			break
		}

		// smallest cofactor m with p*m inside the segment; cofactors below p are covered by smaller primes
		m := max(lower/p+1, p)
		turn := m / circ
		i := t.NextSpoke(m % circ)
		for {
			n := p * (turn*circ + spokes[i])
			if n >= upper {
				break
			}
			sieve[(n-lower)/3] = false

			i++
			if i == len(spokes) {
				i = 0
				turn++
			}
		}
	}

	found := make([]uint64, 0, len(spokes)/8)
	for _, spoke := range spokes {
		if sieve[spoke/3] {
			found = append(found, lower+spoke)
		}
	}
	return found, nil
}
