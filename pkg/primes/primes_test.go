package primes

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestCheckedMul(t *testing.T) {
	t.Parallel()

	c, err := CheckedMul[uint64](510510, 510510)
	require.NoError(t, err)
	assert.Equal(t, uint64(260620460100), c)

	c, err = CheckedMul[uint64](0, math.MaxUint64)
	require.NoError(t, err)
	assert.Zero(t, c)

	_, err = CheckedMul[uint64](math.MaxUint64/2+1, 2)
	assert.True(t, errors.Is(err, ErrOverflow))

	_, err = CheckedMul[uint32](1<<16, 1<<16)
	assert.True(t, errors.Is(err, ErrOverflow))
}

func TestCheckedAdd(t *testing.T) {
	t.Parallel()

	c, err := CheckedAdd[uint64](math.MaxUint64-1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), c)

	_, err = CheckedAdd[uint64](math.MaxUint64, 1)
	assert.True(t, errors.Is(err, ErrOverflow))
}

func TestSegmentResult_States(t *testing.T) {
	t.Parallel()

	ok := Success(3, []uint64{97}, time.Millisecond)
	assert.True(t, ok.IsSuccess())
	assert.False(t, ok.IsFailure())
	assert.False(t, ok.IsCancel())
	assert.Equal(t, uint64(3), ok.Segment())
	assert.Equal(t, []uint64{97}, ok.Primes())
	assert.Equal(t, time.Millisecond, ok.Elapsed())
	assert.NotEqual(t, ok.Id(), Success(3, nil, 0).Id())
	assert.Equal(t, time.UTC, ok.CreatedAt().Location())

	failed := Fail(4, ErrOverflow)
	assert.True(t, failed.IsFailure())
	assert.ErrorIs(t, failed.Err(), ErrOverflow)

	cancelled := Cancel(5, ErrCancelled)
	assert.True(t, cancelled.IsCancel())
	assert.False(t, cancelled.IsFailure())

	assert.True(t, SegmentResult{}.IsEmpty())
	assert.False(t, ok.IsEmpty())
}

func TestGetErrors(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GetErrors(nil))
	assert.Len(t, GetErrors(ErrOverflow), 1)

	agg := multierr.Append(ErrOverflow, ErrKernelInsufficient)
	assert.Len(t, GetErrors(agg), 2)
	assert.Len(t, GetErrors(errors.Wrap(agg, "batch")), 2)
}

func TestIsCancellationError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsCancellationError(context.Canceled))
	assert.True(t, IsCancellationError(errors.Wrap(context.DeadlineExceeded, "batch")))
	assert.True(t, IsCancellationError(ErrCancelled))
	assert.False(t, IsCancellationError(ErrOverflow))
	assert.False(t, IsCancellationError(nil))
}

func TestSentinels_StackFromWrapSite(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "kernel does not cover segment", fmt.Sprintf("%+v", ErrKernelInsufficient))

	wrapped := fmt.Sprintf("%+v", errors.Wrap(ErrKernelInsufficient, "segment 31"))
	assert.Contains(t, wrapped, "TestSentinels_StackFromWrapSite")
	assert.NotContains(t, wrapped, "doInit")
}
