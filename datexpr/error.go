package datexpr

import (
	"errors"
	"fmt"
)

// ErrExpressionRejected is returned for every expression that cannot be
// parsed, whether the syntax is malformed or a field is out of range.
var ErrExpressionRejected = errors.New("invalid date expression")

// rejectedError returns an expression rejected error with a custom
// error message, which unwraps to ErrExpressionRejected.
func rejectedError(message string) error {
	return fmt.Errorf("%w: %s", ErrExpressionRejected, message)
}

// rejectedAtError is like rejectedError but also reports the byte offset
// in the expression where scanning stopped.
func rejectedAtError(message string, pos int) error {
	return fmt.Errorf("%w: %s at position %d", ErrExpressionRejected, message, pos)
}
