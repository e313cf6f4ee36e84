package scoreboard

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

var nullLiteral = []byte("null")

// FlexString decodes a JSON string or number. Upstream IDs and scores switch
// between the two; anything else decodes as absent.
type FlexString struct {
	Value string
	Valid bool
}

// Str builds a present FlexString.
func Str(v string) FlexString {
	return FlexString{Value: v, Valid: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexString) UnmarshalJSON(b []byte) error {
	*f = FlexString{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, nullLiteral) {
		return nil
	}
	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		*f = FlexString{Value: s, Valid: true}
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return nil
		}
		*f = FlexString{Value: n.String(), Valid: true}
	}
	return nil
}

// Present reports whether the value was supplied and is non-blank.
func (f FlexString) Present() bool {
	return f.Valid && strings.TrimSpace(f.Value) != ""
}

// OptInt decodes an optional integer that may arrive as a number or a numeric string.
type OptInt struct {
	Value int
	Valid bool
}

// Int builds a present OptInt.
func Int(v int) OptInt {
	return OptInt{Value: v, Valid: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *OptInt) UnmarshalJSON(b []byte) error {
	*o = OptInt{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, nullLiteral) {
		return nil
	}
	raw := string(b)
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		raw = strings.TrimSpace(s)
	}
	if n, err := strconv.Atoi(raw); err == nil {
		*o = OptInt{Value: n, Valid: true}
		return nil
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		*o = OptInt{Value: int(f), Valid: true}
	}
	return nil
}

// OptBool decodes an optional boolean that may arrive as a bool or a string.
type OptBool struct {
	Value bool
	Valid bool
}

// Bool builds a present OptBool.
func Bool(v bool) OptBool {
	return OptBool{Value: v, Valid: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *OptBool) UnmarshalJSON(b []byte) error {
	*o = OptBool{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, nullLiteral) {
		return nil
	}
	raw := strings.Trim(string(b), `"`)
	if v, err := strconv.ParseBool(raw); err == nil {
		*o = OptBool{Value: v, Valid: true}
	}
	return nil
}

// Occupied decodes base occupancy. The upstream sends either a boolean or
// the runner object itself; a non-null object means the base is occupied.
type Occupied struct {
	Value bool
	Valid bool
}

// Runner builds a present Occupied.
func Runner(on bool) Occupied {
	return Occupied{Value: on, Valid: true}
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Occupied) UnmarshalJSON(b []byte) error {
	*o = Occupied{Valid: true}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, nullLiteral) {
		return nil
	}
	switch b[0] {
	case '{':
		o.Value = true
	case 't', 'f':
		v, err := strconv.ParseBool(string(b))
		if err != nil {
			*o = Occupied{}
			return nil
		}
		o.Value = v
	default:
		*o = Occupied{}
	}
	return nil
}
