package core

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bondeluke/primes/pkg/primes"
)

func TestWorkerOptions(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Equal(t, 5, GetWorkerMaxCount(ctx, 5))
	assert.Equal(t, 2, GetWorkerMaxCount(WithWorkerOptions(ctx, 2), 5))
	assert.Equal(t, 5, GetWorkerMaxCount(WithWorkerOptions(ctx, 0), 5))
}

func TestToChanRange(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	var got []uint64
	for v := range ToChanRange(ctx, 7, 4) {
		got = append(got, v)
	}
	assert.Equal(t, []uint64{7, 8, 9, 10}, got)
}

func TestToChanRange_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	count := 0
	for range ToChanRange(ctx, 0, 100) {
		count++
	}
	assert.Zero(t, count)
}

func squares(_ context.Context, segment uint64) primes.SegmentResult {
	return primes.Success(segment, []uint64{segment * segment}, 0)
}

func TestLocomotive_FillsSlotsInIndexOrder(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	const first, n = 10, 8
	slots := make([]primes.SegmentResult, n)
	in := ToChanRange(ctx, first, n)

	var mu sync.Mutex
	succeeded := 0
	onSuccess := func(context.Context, primes.SegmentResult) {
		mu.Lock()
		defer mu.Unlock()
		succeeded++
	}

	var wg sync.WaitGroup
	for range 3 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, Locomotive(ctx, in, slots, first, squares, DefaultCancellationHandlers(), onSuccess))
		}()
	}
	wg.Wait()

	assert.Equal(t, n, succeeded)
	for i, r := range slots {
		require.True(t, r.IsSuccess())
		assert.Equal(t, uint64(first+i), r.Segment())
	}
	assert.Equal(t, []uint64{100, 121, 144, 169, 196, 225, 256, 289}, FromSlots(slots))
}

func TestLocomotive_ReturnsFirstFailure(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	boom := errors.New("boom")
	engine := func(ctx context.Context, segment uint64) primes.SegmentResult {
		if segment == 2 {
			return primes.Fail(segment, boom)
		}
		return squares(ctx, segment)
	}

	slots := make([]primes.SegmentResult, 5)
	err := Locomotive(ctx, ToChanRange(ctx, 0, 5), slots, 0, engine, CancellationHandlers{}, nil)
	cancel()

	assert.ErrorIs(t, err, boom)
	assert.True(t, slots[0].IsSuccess())
	assert.True(t, slots[1].IsSuccess())
	assert.True(t, slots[2].IsFailure())
	assert.True(t, slots[3].IsEmpty())
}

func TestLocomotive_CancelMarksRemaining(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	in := make(chan uint64, 4)
	for i := range uint64(4) {
		in <- i
	}
	close(in)
	cancel()

	slots := make([]primes.SegmentResult, 4)
	err := Locomotive(ctx, in, slots, 0, squares, DefaultCancellationHandlers(), nil)
	require.NoError(t, err)

	for _, r := range slots {
		assert.True(t, r.IsCancel())
		assert.True(t, primes.IsCancellationError(r.Err()))
	}
	assert.Empty(t, FromSlots(slots))
}
