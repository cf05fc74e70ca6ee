package ringqueue

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package wraps exactly one of them,
// so callers can branch with errors.Is without knowing the concrete cause.
var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrNullReference    = errors.New("null reference")
	ErrInvalidOperation = errors.New("invalid operation")
)

var (
	ErrNonPositiveCapacity = fmt.Errorf("%w: capacity must be greater than zero", ErrInvalidArgument)
	ErrNilSource           = fmt.Errorf("%w: source sequence is nil", ErrNullReference)
	ErrEmptyQueue          = fmt.Errorf("%w: queue is empty", ErrInvalidOperation)
	ErrNegativeIndex       = fmt.Errorf("%w: index must not be negative", ErrInvalidOperation)
	ErrIteratorState       = fmt.Errorf("%w: iterator is not positioned on an element", ErrInvalidOperation)
)
