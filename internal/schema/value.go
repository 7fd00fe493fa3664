package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Value is a sealed interface over the scalar types a column can hold.
// Only Null, Text, Int, Float, and Bool implement it.
type Value interface {
	value() // Sealed - only these types implement it
}

// Null represents a SQL NULL value.
// Using an explicit type ensures all Values satisfy the sealed interface.
type Null struct{}

func (Null) value() {}

// MarshalJSON implements json.Marshaler for Null.
func (Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// Text represents a string value.
type Text string

func (Text) value() {}

// Int represents an integer value. Always int64 internally.
type Int int64

func (Int) value() {}

// Float represents a floating-point value.
type Float float64

func (Float) value() {}

// Bool represents a boolean value.
type Bool bool

func (Bool) value() {}

// Param converts a Value to a Go native type suitable as a SQL parameter.
// This is the engine's native typing, before any bind-type coercion.
func Param(v Value) (any, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case Null:
		return nil, nil
	case Text:
		return string(val), nil
	case Int:
		return int64(val), nil
	case Float:
		return float64(val), nil
	case Bool:
		return bool(val), nil
	default:
		return nil, fmt.Errorf("unsupported value type for SQL parameter: %T", v)
	}
}

// FromDriver converts a value scanned from the database into a Value.
// The driver returns int64, float64, string, []byte, bool, or nil for
// SQLite columns; anything else is an error.
func FromDriver(v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return Null{}, nil
	case int64:
		return Int(val), nil
	case float64:
		return Float(val), nil
	case string:
		return Text(val), nil
	case []byte:
		return Text(val), nil
	case bool:
		return Bool(val), nil
	default:
		return nil, fmt.Errorf("unsupported driver type: %T", v)
	}
}

// MarshalValue marshals a Value to JSON bytes.
// Uses type-switch dispatch to handle all Value types.
func MarshalValue(v Value) ([]byte, error) {
	switch val := v.(type) {
	case nil, Null:
		return []byte("null"), nil
	case Text:
		return json.Marshal(string(val))
	case Int:
		return json.Marshal(int64(val))
	case Float:
		return json.Marshal(float64(val))
	case Bool:
		return json.Marshal(bool(val))
	default:
		return nil, fmt.Errorf("unknown value type: %T", v)
	}
}

// UnmarshalValue decodes a JSON scalar into a Value.
// Integers without a fraction or exponent decode as Int; everything else
// numeric decodes as Float. Arrays and objects are rejected - column
// values are scalars.
func UnmarshalValue(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing content after JSON value")
	}

	return FromAny(raw)
}

// FromAny converts a decoded JSON value (or a plain Go scalar) to a Value.
func FromAny(v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return Null{}, nil
	case bool:
		return Bool(val), nil
	case string:
		return Text(val), nil
	case int:
		return Int(val), nil
	case int64:
		return Int(val), nil
	case float64:
		return Float(val), nil
	case json.Number:
		s := string(val)
		if strings.ContainsAny(s, ".eE") {
			f, err := val.Float64()
			if err != nil {
				return nil, fmt.Errorf("parse number %q: %w", s, err)
			}
			return Float(f), nil
		}
		n, err := val.Int64()
		if err != nil {
			return nil, fmt.Errorf("number out of int64 range: %s", s)
		}
		return Int(n), nil
	default:
		return nil, fmt.Errorf("unsupported type for column value: %T", v)
	}
}
