package mrtypes

import (
	"encoding/json"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Vertex is an opaque graph record supplied by the caller. The core treats
// it as immutable and transfers ownership to exactly one worker via a Map
// task; it never inspects or copies it beyond that handoff. Like Value, it
// is carried as raw JSON so a sandbox implementation can build a vertex
// proxy from it without the core depending on any particular graph schema.
type Vertex struct {
	raw json.RawMessage
}

// NewVertex wraps raw JSON bytes as a Vertex.
func NewVertex(raw json.RawMessage) Vertex {
	cp := make(json.RawMessage, len(raw))
	copy(cp, raw)
	return Vertex{raw: cp}
}

// VertexOf marshals v to JSON and wraps the result as a Vertex.
func VertexOf(v interface{}) (Vertex, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(v); err != nil {
		return Vertex{}, err
	}
	return NewVertex(buf.Bytes()[:buf.Len()-1]), nil
}

// Raw returns the underlying JSON representation.
func (v Vertex) Raw() json.RawMessage { return v.raw }

// Get reads a single field out of the vertex without a full unmarshal,
// using gjson path syntax. Sandbox implementations use this to build a
// read-only vertex proxy for the user script; the dispatcher and worker
// never call it.
func (v Vertex) Get(path string) gjson.Result {
	return gjson.GetBytes(v.raw, path)
}

// With returns a copy of the vertex with path set to value, using sjson's
// path syntax. It never mutates v; the core still treats the original as
// immutable. Sandbox implementations use this to materialize derived
// vertices (e.g. attaching a computed field) without a full decode/encode
// round trip.
func (v Vertex) With(path string, value interface{}) (Vertex, error) {
	raw, err := sjson.SetBytes(v.raw, path, value)
	if err != nil {
		return Vertex{}, err
	}
	return NewVertex(raw), nil
}
