// Package primes holds the types shared by the prime sequence packages: the
// per-segment SegmentResult, the Source interface, the error taxonomy and the
// checked arithmetic used on segment bounds.
//
// The packages below it build on each other in one direction:
// - wheel: basis primes and coprime spokes
// - sieve: template sieve, next-spoke table, kernel and segment sieving
// - core: worker loop and channel plumbing
// - batch: fork-join sieving of consecutive segments
// - sequence: the pull-based generator callers use
package primes
