package sequence

// State is the lifecycle stage of a Sequence.
type State int

const (
	// Uninitialized: no wheel or kernel yet; nothing has been produced.
	Uninitialized State = iota
	// ServingKernel: the buffer holds the kernel primes.
	ServingKernel
	// ServingBatch: the buffer holds the primes of the latest batch of segments.
	ServingBatch
	// Failed: a refill failed. The sequence returns the same error from then on.
	Failed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case ServingKernel:
		return "serving-kernel"
	case ServingBatch:
		return "serving-batch"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}
