// =============================================================================
// Document List Report - Value Decoding
// =============================================================================
//
// Decode turns a raw CSV cell into a Value. The cell must be one complete
// JSON literal, optionally surrounded by whitespace. Anything else fails and
// the caller keeps the raw string instead (see Parse).
//
// =============================================================================

package value

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNotJSON is returned by Decode when the cell is not a single JSON literal.
var ErrNotJSON = errors.New("not a JSON literal")

// Decode parses raw as a single JSON literal.
func Decode(raw string) (Value, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		// io.EOF here means the cell held nothing but whitespace.
		return Value{}, fmt.Errorf("%w: %v", ErrNotJSON, err)
	}

	v, err := decodeToken(dec, tok)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %v", ErrNotJSON, err)
	}

	// Reject trailing content such as "5 6" or "{}x".
	if _, err := dec.Token(); err != io.EOF {
		return Value{}, fmt.Errorf("%w: trailing data after literal", ErrNotJSON)
	}

	return v, nil
}

// Parse decodes raw when possible and otherwise keeps it as a String.
func Parse(raw string) Value {
	v, err := Decode(raw)
	if err != nil {
		return NewString(raw)
	}
	return v
}

func decodeToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return NullValue(), nil
	case bool:
		return NewBool(t), nil
	case string:
		return NewString(t), nil
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		if err != nil {
			return Value{}, fmt.Errorf("number %q: %w", t, err)
		}
		return NewNumber(d), nil
	case json.Delim:
		switch t {
		case '[':
			return decodeArray(dec)
		case '{':
			return decodeObject(dec)
		}
	}
	return Value{}, fmt.Errorf("unexpected token %v", tok)
}

func decodeArray(dec *json.Decoder) (Value, error) {
	elems := []Value{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		elem, err := decodeToken(dec, tok)
		if err != nil {
			return Value{}, err
		}
		elems = append(elems, elem)
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return NewArray(elems...), nil
}

func decodeObject(dec *json.Decoder) (Value, error) {
	obj := NewObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return Value{}, fmt.Errorf("object key %v is not a string", keyTok)
		}

		tok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		val, err := decodeToken(dec, tok)
		if err != nil {
			return Value{}, err
		}
		obj.set(key, val)
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return obj, nil
}
