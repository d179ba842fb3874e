// =============================================================================
// Document List Report - Value Module
// =============================================================================
//
// This package holds the typed representation of a single CSV cell. A cell
// is either a structured literal (decoded from JSON) or the raw string it
// was written as:
//
//   KIND     EXAMPLE CELL                   VALUE
//   String   INVOICE                        "INVOICE"
//   Number   10.50                          10.5
//   Bool     true                           true
//   Null     null                           null
//   Array    [{"unit_price":10}]            [ {unit_price: 10} ]
//   Object   {"id":5,"name":"Acme"}         {id: 5, name: "Acme"}
//
// Numbers are kept as arbitrary precision decimals so that totals built from
// them never pick up binary floating point noise.
//
// =============================================================================

package value

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// =============================================================================
// KIND
// =============================================================================

// Kind identifies which variant a Value holds.
type Kind int

const (
	Null Kind = iota
	String
	Number
	Bool
	Array
	Object
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case String:
		return "string"
	case Number:
		return "number"
	case Bool:
		return "bool"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// =============================================================================
// VALUE STRUCTURE
// =============================================================================

// Value is a tagged variant. The zero Value is Null.
type Value struct {
	kind Kind
	str  string
	num  decimal.Decimal
	b    bool
	arr  []Value
	obj  []Member
}

// Member is one key/value pair of an Object, in insertion order.
type Member struct {
	Key   string
	Value Value
}

// NullValue returns the Null value.
func NullValue() Value {
	return Value{}
}

// NewString wraps s as a String value.
func NewString(s string) Value {
	return Value{kind: String, str: s}
}

// NewNumber wraps d as a Number value.
func NewNumber(d decimal.Decimal) Value {
	return Value{kind: Number, num: d}
}

// NewInt is a shorthand for NewNumber(decimal.NewFromInt(n)).
func NewInt(n int64) Value {
	return NewNumber(decimal.NewFromInt(n))
}

// NewBool wraps b as a Bool value.
func NewBool(b bool) Value {
	return Value{kind: Bool, b: b}
}

// NewArray wraps elems as an Array value.
func NewArray(elems ...Value) Value {
	if elems == nil {
		elems = []Value{}
	}
	return Value{kind: Array, arr: elems}
}

// NewObject builds an Object value. A repeated key overwrites the earlier
// value but keeps the earlier position.
func NewObject(members ...Member) Value {
	v := Value{kind: Object, obj: make([]Member, 0, len(members))}
	for _, m := range members {
		v.set(m.Key, m.Value)
	}
	return v
}

func (v *Value) set(key string, val Value) {
	for i := range v.obj {
		if v.obj[i].Key == key {
			v.obj[i].Value = val
			return
		}
	}
	v.obj = append(v.obj, Member{Key: key, Value: val})
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is Null.
func (v Value) IsNull() bool { return v.kind == Null }

// Str returns the string held by a String value.
func (v Value) Str() (string, bool) {
	return v.str, v.kind == String
}

// Num returns the decimal held by a Number value.
func (v Value) Num() (decimal.Decimal, bool) {
	return v.num, v.kind == Number
}

// Boolean returns the bool held by a Bool value.
func (v Value) Boolean() (bool, bool) {
	return v.b, v.kind == Bool
}

// Elements returns the elements of an Array value, nil otherwise.
func (v Value) Elements() []Value {
	if v.kind != Array {
		return nil
	}
	return v.arr
}

// Members returns the members of an Object value, nil otherwise.
func (v Value) Members() []Member {
	if v.kind != Object {
		return nil
	}
	return v.obj
}

// Field looks up key in an Object value. Any other kind has no fields.
func (v Value) Field(key string) (Value, bool) {
	for _, m := range v.Members() {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// IsEmpty reports whether v counts as empty: Null, false, zero, "", "0",
// and arrays or objects without elements.
func (v Value) IsEmpty() bool {
	switch v.kind {
	case Null:
		return true
	case String:
		return v.str == "" || v.str == "0"
	case Number:
		return v.num.IsZero()
	case Bool:
		return !v.b
	case Array:
		return len(v.arr) == 0
	case Object:
		return len(v.obj) == 0
	}
	return true
}

// =============================================================================
// TEXT REPRESENTATION
// =============================================================================

// Text returns the form of v printed in reports. Strings print as-is,
// numbers in their shortest decimal form, Null as the empty string and
// containers as compact JSON.
func (v Value) Text() string {
	switch v.kind {
	case String:
		return v.str
	case Number:
		return v.num.String()
	case Bool:
		if v.b {
			return "true"
		}
		return "false"
	case Array, Object:
		data, err := v.MarshalJSON()
		if err != nil {
			return ""
		}
		return string(data)
	}
	return ""
}

// MarshalJSON encodes v back into compact JSON, keeping object key order.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) writeJSON(buf *bytes.Buffer) error {
	switch v.kind {
	case Null:
		buf.WriteString("null")
	case Bool:
		buf.WriteString(v.Text())
	case Number:
		buf.WriteString(v.num.String())
	case String:
		return writeJSONString(buf, v.str)
	case Array:
		buf.WriteByte('[')
		for i, e := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := e.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case Object:
		buf.WriteByte('{')
		for i, m := range v.obj {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, m.Key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := m.Value.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode terminates every value with a newline.
	buf.WriteString(strings.TrimSuffix(tmp.String(), "\n"))
	return nil
}
