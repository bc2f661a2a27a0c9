package core

import (
	"context"

	"github.com/bondeluke/primes/pkg/primes"
)

// ToChanRange feeds the segment indices first..first+n-1 in order. The channel is closed
// after the last index or as soon as ctx is done.
func ToChanRange(ctx context.Context, first uint64, n int) <-chan uint64 {
	in := make(chan uint64)

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			return
		}

		for i := range uint64(n) {
			select {
			case in <- first + i:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// FromSlots concatenates the primes of successful results in slot order.
func FromSlots(slots []primes.SegmentResult) []uint64 {
	total := 0
	for _, r := range slots {
		total += len(r.Primes())
	}

	res := make([]uint64, 0, total)
	for _, r := range slots {
		res = append(res, r.Primes()...)
	}
	return res
}
