package primes

import "context"

// Source produces an ascending stream of primes, one per call.
type Source interface {
	// Next returns the next prime, blocking while more are computed
	Next(ctx context.Context) (uint64, error)
}

// Counter reports how many values a Source has produced so far
type Counter interface {
	Source
	// Count returns the number of primes returned by Next
	Count() uint64
}
