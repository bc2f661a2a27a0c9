package wheel

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bondeluke/primes/pkg/primes"
)

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func TestBuild_Trivial(t *testing.T) {
	t.Parallel()

	w, err := Build(1)
	require.NoError(t, err)

	assert.Equal(t, []uint64{2}, w.Basis())
	assert.Equal(t, []uint64{1}, w.Spokes())
	assert.Equal(t, uint64(2), w.Circumference())
}

func TestBuild_SmallWheels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		size   int
		basis  []uint64
		spokes []uint64
	}{
		{2, []uint64{2, 3}, []uint64{1, 5}},
		{3, []uint64{2, 3, 5}, []uint64{1, 7, 11, 13, 17, 19, 23, 29}},
	}

	for _, tt := range tests {
		w, err := Build(tt.size)
		require.NoError(t, err)

		if diff := cmp.Diff(tt.basis, w.Basis()); diff != "" {
			t.Errorf("basis for size %d (-want +got):\n%s", tt.size, diff)
		}
		if diff := cmp.Diff(tt.spokes, w.Spokes()); diff != "" {
			t.Errorf("spokes for size %d (-want +got):\n%s", tt.size, diff)
		}
	}
}

func TestBuild_SpokesAreTotatives(t *testing.T) {
	t.Parallel()

	circumferences := map[int]uint64{1: 2, 2: 6, 3: 30, 4: 210, 5: 2310, 6: 30030, 7: 510510}
	totients := map[int]uint64{1: 1, 2: 2, 3: 8, 4: 48, 5: 480, 6: 5760, 7: 92160}

	for size := 1; size <= 7; size++ {
		w, err := Build(size)
		require.NoError(t, err)

		c := w.Circumference()
		assert.Equal(t, circumferences[size], c, "circumference for size %d", size)
		assert.Equal(t, totients[size], w.Totient(), "totient for size %d", size)
		assert.Len(t, w.Spokes(), int(w.Totient()), "spoke count for size %d", size)
		assert.Equal(t, uint64(1), w.Spokes()[0])

		// every residue coprime to c appears exactly once, in order
		var want []uint64
		for r := uint64(1); r < c; r++ {
			if gcd(r, c) == 1 {
				want = append(want, r)
			}
		}
		if diff := cmp.Diff(want, w.Spokes()); diff != "" {
			t.Errorf("spokes for size %d (-want +got):\n%s", size, diff)
		}
	}
}

func TestBuild_Idempotent(t *testing.T) {
	t.Parallel()

	a, err := Build(6)
	require.NoError(t, err)
	b, err := Build(6)
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(a.Basis(), b.Basis()))
	assert.Empty(t, cmp.Diff(a.Spokes(), b.Spokes()))
}

func TestBuild_BasisIsPrimes(t *testing.T) {
	t.Parallel()

	w, err := Build(MaxBasisSize)
	require.NoError(t, err)

	assert.Equal(t, []uint64{2, 3, 5, 7, 11, 13, 17, 19}, w.Basis())
	assert.Equal(t, uint64(9699690), w.Circumference())
	assert.True(t, w.HasBasis(3))
	assert.False(t, w.HasBasis(23))
}

func TestBuild_InvalidSize(t *testing.T) {
	t.Parallel()

	for _, size := range []int{-1, 0, MaxBasisSize + 1} {
		w, err := Build(size)
		assert.Nil(t, w)
		assert.True(t, errors.Is(err, primes.ErrInvalidBasis), "size %d: %v", size, err)
	}
}
