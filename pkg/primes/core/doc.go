// Package core contains the worker plumbing used by batch: the segment index
// feed, the locomotive that drives one worker, its cancellation handlers, and
// worker configuration via context. It does not sieve anything itself; the
// engine passed to Locomotive does.
package core
