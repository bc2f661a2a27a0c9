package core

import (
	"context"

	"github.com/bondeluke/primes/pkg/primes"
)

// Engine sieves a single segment.
type Engine func(ctx context.Context, segment uint64) primes.SegmentResult

type CancellationHandlers struct {
	OnCancel            func(ctx context.Context, inputCh <-chan uint64, slots []primes.SegmentResult, first uint64)
	OnCancelUnprocessed func(ctx context.Context, segment uint64, slots []primes.SegmentResult, first uint64)
}

// Locomotive pulls segment indices from inputCh and stores each engine result in
// slots[segment-first]. Every index arrives on inputCh once, so no two locomotives
// write the same slot. It returns the error of the first failed segment it sees.
func Locomotive(ctx context.Context, inputCh <-chan uint64, slots []primes.SegmentResult, first uint64,
	engine Engine, handlers CancellationHandlers, onSuccess func(ctx context.Context, r primes.SegmentResult)) error {

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh, slots, first)
			}
			return nil
		case segment, ok := <-inputCh:
			if !ok {
				return nil
			}

			if ctx.Err() != nil {
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, segment, slots, first)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, slots, first)
				}
				return nil
			}

			res := engine(ctx, segment)
			slots[segment-first] = res

			if res.IsFailure() {
				return res.Err()
			}
			if onSuccess != nil && res.IsSuccess() {
				onSuccess(ctx, res)
			}
		}
	}
}

// CancelRemaining marks every index still waiting on inputCh as cancelled.
func CancelRemaining(ctx context.Context, inputCh <-chan uint64, slots []primes.SegmentResult, first uint64) {
	for segment := range inputCh {
		CancelUnprocessed(ctx, segment, slots, first)
	}
}

func CancelUnprocessed(_ context.Context, segment uint64, slots []primes.SegmentResult, first uint64) {
	slots[segment-first] = primes.Cancel(segment, primes.ErrCancelled)
}

// DefaultCancellationHandlers records a Cancel result for every segment a cancelled batch skipped.
func DefaultCancellationHandlers() CancellationHandlers {
	return CancellationHandlers{
		OnCancel:            CancelRemaining,
		OnCancelUnprocessed: CancelUnprocessed,
	}
}
