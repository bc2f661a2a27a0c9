package primes

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// CheckedMul returns a*b, or ErrOverflow if the product does not fit in T.
func CheckedMul[T constraints.Unsigned](a, b T) (T, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	c := a * b
	if c/a != b {
		return 0, errors.Wrapf(ErrOverflow, "%d * %d", a, b)
	}
	return c, nil
}

// CheckedAdd returns a+b, or ErrOverflow if the sum does not fit in T.
func CheckedAdd[T constraints.Unsigned](a, b T) (T, error) {
	c := a + b
	if c < a {
		return 0, errors.Wrapf(ErrOverflow, "%d + %d", a, b)
	}
	return c, nil
}
