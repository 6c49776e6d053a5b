package mrtypes

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Value is an opaque value produced and consumed by user scripts. The core
// never inspects it: it is created by a worker's map or reduce call, carried
// through the dispatcher as the carry or as a Reduce task operand, and
// handed back to the caller as the run result. It is stored as raw JSON so it
// round-trips through the scripting boundary and the API surface without an
// intermediate Go representation.
type Value struct {
	raw json.RawMessage
}

// Null is the Value holding JSON null. Finish returns Null when
// the run completed gracefully with no input vertices (I4).
var Null = Value{raw: json.RawMessage("null")}

// NewValue wraps raw JSON bytes as a Value. raw is not copied; callers must
// not mutate it afterwards.
func NewValue(raw json.RawMessage) Value {
	if len(raw) == 0 {
		return Null
	}
	return Value{raw: raw}
}

// ValueOf marshals v to JSON and wraps the result as a Value.
func ValueOf(v interface{}) (Value, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(v); err != nil {
		return Value{}, err
	}

	// json.Encoder.Encode appends a trailing newline; trim it before copying
	// into the Value's own backing array.
	raw := make(json.RawMessage, buf.Len()-1)
	copy(raw, buf.Bytes()[:buf.Len()-1])
	return NewValue(raw), nil
}

// Raw returns the underlying JSON representation.
func (v Value) Raw() json.RawMessage { return v.raw }

// IsNull reports whether the value is JSON null (including the zero Value).
func (v Value) IsNull() bool {
	return len(v.raw) == 0 || string(v.raw) == "null"
}

// Unmarshal decodes the value into dst, the usual encoding/json way.
func (v Value) Unmarshal(dst interface{}) error {
	if v.IsNull() {
		return json.Unmarshal([]byte("null"), dst)
	}
	return json.Unmarshal(v.raw, dst)
}

// Get reads a single field out of the value without a full unmarshal, using
// gjson path syntax (e.g. "weight" or "tags.0"). It exists for sandbox
// implementations and tests that need to peek at a field — the dispatcher
// and worker never call it, preserving Value's opacity to the core.
func (v Value) Get(path string) gjson.Result {
	return gjson.GetBytes(v.raw, path)
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.IsNull() {
		return []byte("null"), nil
	}
	return v.raw, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	cp := make(json.RawMessage, len(data))
	copy(cp, data)
	v.raw = cp
	return nil
}
