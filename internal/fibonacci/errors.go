package fibonacci

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedInput is returned when a value is neither an integer nor
	// a base-10 integer string.
	ErrUnsupportedInput = errors.New("unsupported input type")

	// ErrUnknownCalculator is returned by the factory for unregistered names.
	ErrUnknownCalculator = errors.New("unknown calculator")
)

// IndexError reports an index outside [0, Max].
type IndexError struct {
	Index int
	Max   int
}

func (e *IndexError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("index %d is negative", e.Index)
	}
	return fmt.Sprintf("index %d exceeds maximum %d", e.Index, e.Max)
}

// CheckIndex returns an *IndexError when i cannot be computed.
func CheckIndex(i int) error {
	if i < 0 || i > MaxIndex {
		return &IndexError{Index: i, Max: MaxIndex}
	}
	return nil
}
