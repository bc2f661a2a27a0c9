// Package sequence provides Sequence, a pull-based generator of every prime in
// ascending order.
//
// The first call to Next builds the wheel and sieves the kernel, then serves
// from it. Whenever the buffer runs out, the next batch of segments is sieved
// in parallel, one goroutine per segment, and replaces the buffer. Output is
// identical for every parallelism setting.
//
// Lifecycle: Uninitialized -> ServingKernel -> ServingBatch (repeats) -> Failed.
// Failed is terminal; it is reached on cancellation, overflow, or when the
// kernel can no longer sieve the next batch.
//
// Usage:
//
//	s, err := sequence.New(runtime.NumCPU())
//	...
//	for p, err := range s.All(ctx) { ... }
package sequence
