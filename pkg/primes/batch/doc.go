// Package batch sieves runs of consecutive wheel segments concurrently.
//
// A Scheduler owns the segment counter. Each call to Next feeds the indices of the
// following batch into a channel, starts up to batch-size locomotive workers under an
// errgroup, and waits for all of them. Every worker writes its segment's primes into the
// slot for that segment, so concatenating the slots yields the batch in ascending order
// regardless of which worker finished first.
//
// Before any worker starts, the whole batch is checked against the kernel's coverage
// limit; a batch that would reach past it fails with primes.ErrKernelInsufficient.
//
//	s := batch.New(tmpl, kernel, batch.WithLogger(log))
//	found, err := s.Next(ctx, 128)
package batch
