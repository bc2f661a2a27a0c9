package sequence

import (
	"github.com/sirupsen/logrus"
)

const (
	// DefaultBasisSize gives a wheel of circumference 510510 over the primes 2..17.
	DefaultBasisSize = 7
	// MinBasisSize is the smallest wheel whose basis contains 3.
	MinBasisSize = 2
)

type Option func(*Sequence)

// WithBasisSize selects the number of wheel basis primes. Larger wheels sieve larger
// segments and reach further before the kernel runs out, at the cost of memory.
func WithBasisSize(size int) Option {
	return func(s *Sequence) {
		s.basisSize = size
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Sequence) {
		if log != nil {
			s.log = log
		}
	}
}
