package ranges

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Range and Cursor operations.
var (
	// ErrMissingConfiguration is wrapped by every error that reports a
	// required setting absent at traversal time.
	ErrMissingConfiguration = errors.New("ranges: missing required configuration")

	// ErrMissingStart is returned when a traversal starts without a start point.
	ErrMissingStart = fmt.Errorf("%w: start", ErrMissingConfiguration)

	// ErrMissingEnd is returned by callback traversals of an unbounded range.
	ErrMissingEnd = fmt.Errorf("%w: end", ErrMissingConfiguration)

	// ErrMissingSuccessor is returned when no successor function is set.
	ErrMissingSuccessor = fmt.Errorf("%w: successor", ErrMissingConfiguration)

	// ErrInvalidArgument is returned for absent setter arguments, nil
	// callbacks or predicates, and negative counts.
	ErrInvalidArgument = errors.New("ranges: invalid argument")

	// ErrExhausted is returned by [Cursor.Next] when no value is left.
	ErrExhausted = errors.New("ranges: sequence exhausted")

	// ErrInvalidSuccessorResult is returned when the successor produces an
	// absent (nil) value.
	ErrInvalidSuccessorResult = errors.New("ranges: successor returned an absent value")
)

func invalidArgument(op, what string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidArgument, op, what)
}
