package primes

import (
	"time"

	"github.com/google/uuid"
)

// SegmentResult is the outcome of sieving one segment.
type SegmentResult struct {
	id        uuid.UUID
	segment   uint64
	createdAt time.Time
	elapsed   time.Duration
	primes    []uint64
	err       error
	isSuccess bool
	isCancel  bool
}

func Success(segment uint64, primes []uint64, elapsed time.Duration) SegmentResult {
	return SegmentResult{
		id:        uuid.New(),
		segment:   segment,
		createdAt: time.Now().UTC(),
		elapsed:   elapsed,
		primes:    primes,
		isSuccess: true,
	}
}

func Fail(segment uint64, err error) SegmentResult {
	return SegmentResult{
		id:        uuid.New(),
		segment:   segment,
		createdAt: time.Now().UTC(),
		err:       err,
	}
}

func Cancel(segment uint64, err error) SegmentResult {
	return SegmentResult{
		id:        uuid.New(),
		segment:   segment,
		createdAt: time.Now().UTC(),
		err:       err,
		isCancel:  true,
	}
}

func (r SegmentResult) Id() uuid.UUID {
	return r.id
}

func (r SegmentResult) Segment() uint64 {
	return r.segment
}

// Primes returns the primes found in the segment, ascending.
func (r SegmentResult) Primes() []uint64 {
	return r.primes
}

func (r SegmentResult) Err() error {
	return r.err
}

func (r SegmentResult) IsSuccess() bool {
	return r.isSuccess
}

func (r SegmentResult) IsCancel() bool {
	return r.isCancel
}

func (r SegmentResult) IsFailure() bool {
	return !r.isSuccess && !r.isCancel && r.err != nil
}

// IsEmpty reports whether the result was never filled in, i.e. the slot was not reached by any worker.
func (r SegmentResult) IsEmpty() bool {
	return r.err == nil && !r.isCancel && !r.isSuccess
}

func (r SegmentResult) CreatedAt() time.Time {
	return r.createdAt
}

func (r SegmentResult) Elapsed() time.Duration {
	return r.elapsed
}
