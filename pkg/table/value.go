package table

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies the scalar type held by a Value.
type Kind int

// Value kinds, in coercion-priority order.
const (
	KindEmpty Kind = iota
	KindNumber
	KindText
	KindBool
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Value is a single cell scalar: empty, number, text, or bool.
//
// Cells arrive either as display strings read from a workbook or as JSON
// scalars posted to the API; both are normalized into this one type so the
// reshaping layer never has to care where a row came from.
type Value struct {
	kind Kind
	num  float64
	text string
	b    bool
}

// Empty returns the empty cell value.
func Empty() Value {
	return Value{kind: KindEmpty}
}

// Number returns a numeric cell value.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Text returns a text cell value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Bool returns a boolean cell value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Parse normalizes a workbook display string into a typed Value.
// Whitespace-only strings are empty, numeric strings become numbers, and
// TRUE/FALSE become booleans. Everything else stays text.
func Parse(s string) Value {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Empty()
	}

	if f, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return Number(f)
	}

	switch strings.ToUpper(trimmed) {
	case "TRUE":
		return Bool(true)
	case "FALSE":
		return Bool(false)
	}

	return Text(s)
}

// Kind returns the value's kind.
func (v Value) Kind() Kind {
	return v.kind
}

// IsEmpty reports whether the cell is empty. Text cells containing only
// whitespace also count as empty so sparse ranges pivot cleanly.
func (v Value) IsEmpty() bool {
	if v.kind == KindEmpty {
		return true
	}
	return v.kind == KindText && strings.TrimSpace(v.text) == ""
}

// Float attempts numeric coercion. Numbers coerce to themselves, numeric
// text parses, and booleans coerce to 1/0. Empty and non-numeric text fail.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindBool:
		if v.b {
			return 1, true
		}
		return 0, true
	case KindText:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.text), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Text returns the cell's display form. Numbers format without a trailing
// exponent where possible, booleans as TRUE/FALSE, empty as "".
func (v Value) Text() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindText:
		return v.text
	case KindBool:
		if v.b {
			return "TRUE"
		}
		return "FALSE"
	default:
		return ""
	}
}

// Any returns the value as a plain Go scalar suitable for embedding in a
// JSON record: float64, string, bool, or nil for empty cells.
func (v Value) Any() any {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindText:
		return v.text
	case KindBool:
		return v.b
	default:
		return nil
	}
}

// String implements fmt.Stringer.
func (v Value) String() string {
	return v.Text()
}

// MarshalJSON encodes the value as the corresponding JSON scalar.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Any())
}

// UnmarshalJSON decodes a JSON scalar (string, number, bool, or null) into
// a Value. Arrays and objects are rejected.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch x := raw.(type) {
	case nil:
		*v = Empty()
	case float64:
		*v = Number(x)
	case string:
		*v = Text(x)
	case bool:
		*v = Bool(x)
	default:
		return fmt.Errorf("unsupported cell value type %T", raw)
	}
	return nil
}
