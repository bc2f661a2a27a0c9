package batch

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/bondeluke/primes/pkg/primes"
	"github.com/bondeluke/primes/pkg/primes/core"
	"github.com/bondeluke/primes/pkg/primes/sieve"
)

// Scheduler sieves consecutive batches of segments in parallel. The template and kernel
// are shared read-only by every worker; the scheduler itself is driven by a single
// goroutine.
type Scheduler struct {
	template *sieve.Template
	kernel   *sieve.Kernel
	next     uint64
	log      logrus.FieldLogger
}

type Option func(*Scheduler)

func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Scheduler) {
		if log != nil {
			s.log = log
		}
	}
}

// StartAt sets the first segment Next extends from. The default is 1, the segment after the kernel.
func StartAt(segment uint64) Option {
	return func(s *Scheduler) {
		s.next = segment
	}
}

func New(template *sieve.Template, kernel *sieve.Kernel, opts ...Option) *Scheduler {
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	s := &Scheduler{template: template, kernel: kernel, next: 1, log: silent}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NextSegment is the index of the first segment the next call to Next will sieve.
func (s *Scheduler) NextSegment() uint64 {
	return s.next
}

// Next sieves the following batchSize segments and advances the segment counter on success.
func (s *Scheduler) Next(ctx context.Context, batchSize int) ([]uint64, error) {
	found, err := s.Extend(ctx, s.next, batchSize)
	if err != nil {
		return nil, err
	}
	s.next += uint64(batchSize)
	return found, nil
}

// Extend sieves segments start..start+batchSize-1 concurrently and returns their primes in
// ascending order. It waits for every worker before returning; a batch either completes
// entirely or fails.
func (s *Scheduler) Extend(ctx context.Context, start uint64, batchSize int) ([]uint64, error) {
	if batchSize < 1 {
		return nil, errors.Wrapf(primes.ErrInvalidParallelism, "batch size %d", batchSize)
	}
	if err := s.checkCoverage(start, batchSize); err != nil {
		return nil, err
	}

	id := uuid.New()
	began := time.Now()
	slots := make([]primes.SegmentResult, batchSize)
	workers := min(core.GetWorkerMaxCount(ctx, batchSize), batchSize)

	g, gctx := errgroup.WithContext(ctx)
	in := core.ToChanRange(gctx, start, batchSize)
	for range workers {
		g.Go(func() error {
			return core.Locomotive(gctx, in, slots, start, s.sieveSegment, core.DefaultCancellationHandlers(), s.traceSegment)
		})
	}
	groupErr := g.Wait()

	var failed error
	for _, r := range slots {
		if r.IsFailure() {
			failed = multierr.Append(failed, r.Err())
		}
	}
	if failed != nil {
		return nil, errors.Wrapf(failed, "batch %s (segments %d..%d)", id, start, start+uint64(batchSize)-1)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrapf(err, "batch %s cancelled", id)
	}
	if groupErr != nil {
		return nil, groupErr
	}

	found := core.FromSlots(slots)
	s.log.WithFields(logrus.Fields{
		"batch":         id,
		"first_segment": start,
		"segments":      batchSize,
		"workers":       workers,
		"primes":        len(found),
		"elapsed":       time.Since(began),
	}).Debug("batch sieved")

	return found, nil
}

func (s *Scheduler) sieveSegment(_ context.Context, segment uint64) primes.SegmentResult {
	began := time.Now()
	found, err := sieve.Segment(segment, s.template, s.kernel)
	if err != nil {
		return primes.Fail(segment, err)
	}
	return primes.Success(segment, found, time.Since(began))
}

func (s *Scheduler) traceSegment(_ context.Context, r primes.SegmentResult) {
	s.log.WithFields(logrus.Fields{
		"segment": r.Segment(),
		"primes":  len(r.Primes()),
		"elapsed": r.Elapsed(),
	}).Trace("segment sieved")
}

// checkCoverage fails before any worker starts when the batch would outrun the kernel or overflow.
func (s *Scheduler) checkCoverage(start uint64, batchSize int) error {
	last, err := primes.CheckedAdd(start, uint64(batchSize)-1)
	if err != nil {
		return errors.Wrap(err, "last segment index")
	}
	_, upper, err := sieve.Bounds(last, s.template.Wheel().Circumference())
	if err != nil {
		return err
	}
	if !s.kernel.Covers(upper) {
		return errors.Wrapf(primes.ErrKernelInsufficient,
			"batch ending at segment %d reaches %d, kernel sieves below %d", last, upper, s.kernel.Limit())
	}
	return nil
}
