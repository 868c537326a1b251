package numeric

// ParseError is returned when a string is not a base-10 unsigned integer.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return "failed to parse integer"
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// RangeError is returned for zero and for values wider than 32 bits.
type RangeError struct {
	Value uint64
}

func (e *RangeError) Error() string {
	return "invalid integer value"
}

// TypeError is returned when the host decoder hands over a token that is
// neither an integer nor a string.
type TypeError struct {
	Kind string
}

func (e *TypeError) Error() string {
	return "invalid type: " + e.Kind + ", expected integer or string"
}
