package schema

import (
	"fmt"
	"strconv"
)

// BindType is the parameter-binding type declared for a column. It governs
// how a caller-supplied Value is encoded when handed to a prepared
// statement, independently of the column's SQL storage type text.
type BindType int

const (
	BindInt BindType = iota
	BindString
	BindBool
	BindNull
	BindFloat
)

var bindTypeNames = map[BindType]string{
	BindInt:    "int",
	BindString: "string",
	BindBool:   "bool",
	BindNull:   "null",
	BindFloat:  "float",
}

// String returns the descriptor-file name of the bind type.
func (b BindType) String() string {
	if name, ok := bindTypeNames[b]; ok {
		return name
	}
	return fmt.Sprintf("BindType(%d)", int(b))
}

// ParseBindType maps a descriptor-file name to a BindType.
func ParseBindType(name string) (BindType, error) {
	for bt, n := range bindTypeNames {
		if n == name {
			return bt, nil
		}
	}
	return 0, fmt.Errorf("unknown bind type %q, must be one of: int, string, bool, null, float", name)
}

// Bind encodes a Value as a driver-level parameter according to the bind
// type. A Null value binds as SQL NULL under every bind type. Otherwise
// the value's kind must be compatible with the bind type; a mismatch is
// an error that propagates to the caller.
func (b BindType) Bind(v Value) (any, error) {
	if v == nil {
		return nil, nil
	}
	if _, ok := v.(Null); ok {
		return nil, nil
	}

	switch b {
	case BindNull:
		return nil, nil

	case BindInt:
		switch val := v.(type) {
		case Int:
			return int64(val), nil
		case Bool:
			if val {
				return int64(1), nil
			}
			return int64(0), nil
		}

	case BindString:
		switch val := v.(type) {
		case Text:
			return string(val), nil
		case Int:
			return strconv.FormatInt(int64(val), 10), nil
		case Float:
			return strconv.FormatFloat(float64(val), 'g', -1, 64), nil
		case Bool:
			return strconv.FormatBool(bool(val)), nil
		}

	case BindBool:
		switch val := v.(type) {
		case Bool:
			return bool(val), nil
		case Int:
			return val != 0, nil
		}

	case BindFloat:
		switch val := v.(type) {
		case Float:
			return float64(val), nil
		case Int:
			return float64(val), nil
		}
	}

	return nil, fmt.Errorf("cannot bind %T as %s", v, b)
}
