package primes

import (
	"context"
	stderrors "errors"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Sentinels carry no stack; errors.Wrap at the failing call site records it.
var (
	// ErrOverflow is returned when fixed-width arithmetic on segment bounds would wrap.
	ErrOverflow = stderrors.New("integer overflow")
	// ErrKernelInsufficient is returned when a segment needs sieving factors beyond the kernel.
	ErrKernelInsufficient = stderrors.New("kernel does not cover segment")
	// ErrCancelled marks segments that were never sieved because their batch stopped early.
	ErrCancelled = stderrors.New("segment cancelled")
	// ErrInvalidParallelism is returned for a non-positive batch size.
	ErrInvalidParallelism = stderrors.New("parallelism must be positive")
	// ErrInvalidBasis is returned for a wheel basis size outside the supported range.
	ErrInvalidBasis = stderrors.New("invalid wheel basis size")
)

// GetErrors splits an aggregated error into its parts, looking through any message
// wrapped around the aggregate.
func GetErrors(err error) []error {
	if err == nil {
		return []error{}
	}
	return multierr.Errors(errors.Cause(err))
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || errors.Is(err, ErrCancelled)
}
