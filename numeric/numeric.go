// Package numeric handles numeric values that may be encoded either as
// native integers or as strings of digits.
//
// A Numeric is always a non-zero value that fits in 32 bits. It decodes from
// JSON, YAML, TOML and plain text, and encodes back as a bare integer.
package numeric

import (
	"math"
	"strconv"
)

// Numeric is a strictly positive uint32. The zero value means unset and is
// never returned by a constructor without an error.
type Numeric struct {
	v uint32
}

func New(v uint32) (Numeric, error) {
	if v == 0 {
		return Numeric{}, &RangeError{Value: 0}
	}

	return Numeric{v: v}, nil
}

// MustNew is like New but panics if v is zero.
func MustNew(v uint32) Numeric {
	n, err := New(v)
	if err != nil {
		panic("numeric: MustNew(0): " + err.Error())
	}

	return n
}

// FromUint64 narrows v to 32 bits. Values that do not fit are rejected
// rather than wrapped.
func FromUint64(v uint64) (Numeric, error) {
	if v == 0 || v > math.MaxUint32 {
		return Numeric{}, &RangeError{Value: v}
	}

	return Numeric{v: uint32(v)}, nil
}

// Parse reads a base-10 digit string. Signs and whitespace are not digits.
func Parse(s string) (Numeric, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return Numeric{}, &ParseError{Input: s, Err: err}
	}

	return FromUint64(v)
}

func (n Numeric) Uint32() uint32 {
	return n.v
}

func (n Numeric) Uint64() uint64 {
	return uint64(n.v)
}

func (n Numeric) IsZero() bool {
	return n.v == 0
}

func (n Numeric) String() string {
	return strconv.FormatUint(uint64(n.v), 10)
}

func (n Numeric) appendDigits(b []byte) []byte {
	return strconv.AppendUint(b, uint64(n.v), 10)
}
