package fibonacci

import "strconv"

// Value is an input accepted by the resolver: either an IntegerValue or a
// StringValue. The unexported marker method keeps the set closed.
type Value interface {
	isValue()
	// String returns the textual form of the value for logs and errors.
	String() string
}

// IntegerValue is an index given directly as a native integer.
type IntegerValue int

// StringValue is an index encoded as base-10 text.
type StringValue string

func (IntegerValue) isValue() {}
func (StringValue) isValue()  {}

func (v IntegerValue) String() string { return strconv.Itoa(int(v)) }
func (v StringValue) String() string  { return string(v) }

// Lift converts a dynamically typed value into a Value. It returns nil for
// anything that is neither an int nor a string; resolution rejects nil.
func Lift(x any) Value {
	switch v := x.(type) {
	case int:
		return IntegerValue(v)
	case string:
		return StringValue(v)
	case Value:
		return v
	default:
		return nil
	}
}

// describe renders v for error messages, including nil.
func describe(v Value) string {
	if v == nil {
		return "<nil>"
	}
	return v.String()
}
