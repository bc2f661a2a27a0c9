package sequence

import (
	"context"
	"io"
	"iter"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/bondeluke/primes/pkg/primes"
	"github.com/bondeluke/primes/pkg/primes/batch"
	"github.com/bondeluke/primes/pkg/primes/sieve"
	"github.com/bondeluke/primes/pkg/primes/wheel"
)

// Sequence produces every prime in ascending order, one per call to Next. The wheel and
// kernel are built on the first call; after that, each time the buffer runs out the next
// parallelism segments are sieved concurrently and replace it.
//
// A Sequence is not safe for concurrent use.
type Sequence struct {
	parallelism int
	basisSize   int
	log         logrus.FieldLogger

	state     State
	scheduler *batch.Scheduler
	buf       []uint64
	cursor    int
	count     uint64
	err       error
}

var _ primes.Counter = (*Sequence)(nil)

// New returns a sequence that sieves parallelism segments per refill.
func New(parallelism int, opts ...Option) (*Sequence, error) {
	if parallelism < 1 {
		return nil, errors.Wrapf(primes.ErrInvalidParallelism, "parallelism %d", parallelism)
	}

	silent := logrus.New()
	silent.SetOutput(io.Discard)

	s := &Sequence{parallelism: parallelism, basisSize: DefaultBasisSize, log: silent}
	for _, opt := range opts {
		opt(s)
	}

	if s.basisSize < MinBasisSize || s.basisSize > wheel.MaxBasisSize {
		return nil, errors.Wrapf(primes.ErrInvalidBasis, "basis size %d not in [%d, %d]",
			s.basisSize, MinBasisSize, wheel.MaxBasisSize)
	}
	return s, nil
}

// Next returns the next prime. Primes already buffered are returned even if ctx is done;
// ctx only interrupts a refill. Once Next fails, every later call returns the same error.
func (s *Sequence) Next(ctx context.Context) (uint64, error) {
	for s.cursor >= len(s.buf) {
		if err := s.advance(ctx); err != nil {
			return 0, err
		}
	}

	p := s.buf[s.cursor]
	s.cursor++
	s.count++
	return p, nil
}

// Skip discards the next n primes without returning them.
func (s *Sequence) Skip(ctx context.Context, n uint64) error {
	for n > 0 {
		if s.cursor >= len(s.buf) {
			if err := s.advance(ctx); err != nil {
				return err
			}
			continue
		}

		step := min(n, uint64(len(s.buf)-s.cursor))
		s.cursor += int(step)
		s.count += step
		n -= step
	}
	return nil
}

// Nth returns the n-th prime, counting 2 as the first. n must be greater than Count.
func (s *Sequence) Nth(ctx context.Context, n uint64) (uint64, error) {
	if n <= s.count {
		return 0, errors.Errorf("prime %d already produced, sequence is at %d", n, s.count)
	}
	if err := s.Skip(ctx, n-s.count-1); err != nil {
		return 0, err
	}
	return s.Next(ctx)
}

// Take returns the next n primes.
func (s *Sequence) Take(ctx context.Context, n int) ([]uint64, error) {
	if n < 0 {
		return nil, errors.Errorf("cannot take %d primes", n)
	}
	res := make([]uint64, 0, n)
	for range n {
		p, err := s.Next(ctx)
		if err != nil {
			return res, err
		}
		res = append(res, p)
	}
	return res, nil
}

// All yields primes until ctx is done or the sequence fails. The final pair carries the
// error, if any.
func (s *Sequence) All(ctx context.Context) iter.Seq2[uint64, error] {
	return func(yield func(uint64, error) bool) {
		for {
			p, err := s.Next(ctx)
			if err != nil {
				yield(0, err)
				return
			}
			if !yield(p, nil) {
				return
			}
		}
	}
}

// Count is the number of primes produced so far, including skipped ones.
func (s *Sequence) Count() uint64 {
	return s.count
}

func (s *Sequence) State() State {
	return s.state
}

func (s *Sequence) Parallelism() int {
	return s.parallelism
}

// Err returns the error that moved the sequence into the Failed state.
func (s *Sequence) Err() error {
	return s.err
}

// advance refills the buffer according to the current state.
func (s *Sequence) advance(ctx context.Context) error {
	switch s.state {
	case Uninitialized:
		return s.bootstrap()
	case ServingKernel, ServingBatch:
		return s.refill(ctx)
	default:
		return s.err
	}
}

func (s *Sequence) bootstrap() error {
	w, err := wheel.Build(s.basisSize)
	if err != nil {
		return s.fail(err)
	}
	tmpl, err := sieve.NewTemplate(w)
	if err != nil {
		return s.fail(err)
	}
	kernel := sieve.InitKernel(tmpl)

	s.scheduler = batch.New(tmpl, kernel, batch.WithLogger(s.log))
	s.buf = kernel.Primes()
	s.cursor = 0
	s.state = ServingKernel

	s.log.WithFields(logrus.Fields{
		"basis":         w.Basis(),
		"circumference": w.Circumference(),
		"spokes":        len(w.Spokes()),
		"kernel":        kernel.Len(),
		"limit":         kernel.Limit(),
	}).Debug("kernel ready")
	return nil
}

func (s *Sequence) refill(ctx context.Context) error {
	found, err := s.scheduler.Next(ctx, s.parallelism)
	if err != nil {
		return s.fail(err)
	}

	s.buf = found
	s.cursor = 0
	s.state = ServingBatch
	return nil
}

func (s *Sequence) fail(err error) error {
	s.err = err
	s.state = Failed
	s.buf = nil
	s.cursor = 0

	s.log.WithError(err).WithField("count", s.count).Error("prime sequence failed")
	return err
}
