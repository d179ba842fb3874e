package value

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNotNumber is returned when a value has no numeric reading.
var ErrNotNumber = errors.New("not a number")

// ParseNumber reads s as a decimal, ignoring surrounding whitespace.
func ParseNumber(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrNotNumber
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrNotNumber
	}
	return d, nil
}

// Numeric returns the numeric reading of a Number or a numeric String.
func (v Value) Numeric() (decimal.Decimal, error) {
	switch v.kind {
	case Number:
		return v.num, nil
	case String:
		return ParseNumber(v.str)
	}
	return decimal.Zero, ErrNotNumber
}

// LooseEquals compares v with a command line argument.
//
// When both sides read as numbers they compare numerically, so 5, "5" and
// "5.0" all equal the argument "5". Otherwise the report text of v must
// equal target exactly. Arrays and objects never match.
func LooseEquals(v Value, target string) bool {
	switch v.kind {
	case Array, Object:
		return false
	case Number, String:
		left, lerr := v.Numeric()
		right, rerr := ParseNumber(target)
		if lerr == nil && rerr == nil {
			return left.Equal(right)
		}
	}
	return v.Text() == target
}

// Equal reports whether v and other hold the same variant and content.
// Numbers compare by value, so 2.50 equals 2.5.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case Null:
		return true
	case String:
		return v.str == other.str
	case Number:
		return v.num.Equal(other.num)
	case Bool:
		return v.b == other.b
	case Array:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case Object:
		if len(v.obj) != len(other.obj) {
			return false
		}
		for i := range v.obj {
			if v.obj[i].Key != other.obj[i].Key || !v.obj[i].Value.Equal(other.obj[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}
