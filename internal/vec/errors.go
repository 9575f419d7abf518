package vec

import "errors"

var (
	// ErrOutOfRange reports an index outside [0, Len()).
	ErrOutOfRange = errors.New("vec: index out of range")

	// ErrEmpty reports a Pop or Shift on an array with no elements.
	ErrEmpty = errors.New("vec: empty array")
)
