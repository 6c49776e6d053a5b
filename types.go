package mapreduce

import (
	"encoding/json"

	"github.com/ygrebnov/mapreduce/mrtypes"
)

// Value and Vertex live in mrtypes so the sandbox package (an external
// collaborator contract) can reference them without importing this package,
// avoiding an import cycle between mapreduce and mapreduce/sandbox.

// Value is an opaque value produced and consumed by user scripts. See
// mrtypes.Value for details.
type Value = mrtypes.Value

// Vertex is an opaque graph record supplied by the caller. See
// mrtypes.Vertex for details.
type Vertex = mrtypes.Vertex

// Null is the Value holding JSON null.
var Null = mrtypes.Null

// NewValue wraps raw JSON bytes as a Value.
func NewValue(raw json.RawMessage) Value { return mrtypes.NewValue(raw) }

// ValueOf marshals v to JSON and wraps the result as a Value.
func ValueOf(v interface{}) (Value, error) { return mrtypes.ValueOf(v) }

// NewVertex wraps raw JSON bytes as a Vertex.
func NewVertex(raw json.RawMessage) Vertex { return mrtypes.NewVertex(raw) }

// VertexOf marshals v to JSON and wraps the result as a Vertex.
func VertexOf(v interface{}) (Vertex, error) { return mrtypes.VertexOf(v) }
