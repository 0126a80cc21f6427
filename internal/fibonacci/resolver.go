package fibonacci

import (
	"fmt"
	"strconv"
)

// ResolveIndex converts v into an index without computing anything.
// Integers pass through; strings must parse with strconv.Atoi (optional
// sign, decimal digits, within int range). Surrounding whitespace is
// rejected on purpose: " 11" is not an index, unlike parsers that trim
// before reading digits. Any other value, nil included, yields an error
// wrapping ErrUnsupportedInput. The index is not range checked here.
func ResolveIndex(v Value) (int, error) {
	switch v := v.(type) {
	case IntegerValue:
		return int(v), nil
	case StringValue:
		n, err := strconv.Atoi(string(v))
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a base-10 integer", ErrUnsupportedInput, string(v))
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedInput, describe(v))
	}
}

// Resolve resolves v and returns the Current component of its pair,
// computed by the recursive algorithm.
func Resolve(v Value) (int, error) {
	n, err := ResolveIndex(v)
	if err != nil {
		return 0, err
	}
	if err := CheckIndex(n); err != nil {
		return 0, err
	}
	return Fib(n).Current, nil
}

// TryResolve is the boolean form of Resolve. On failure it returns (0, false)
// and the result must be ignored.
func TryResolve(v Value) (int, bool) {
	r, err := Resolve(v)
	if err != nil {
		return 0, false
	}
	return r, true
}
