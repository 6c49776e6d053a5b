package mrtypes

import (
	"bytes"

	"github.com/ygrebnov/mapreduce/pool"
)

// bufferPool recycles bytes.Buffer instances used while marshaling Values
// and Vertices, avoiding an allocation per ValueOf/VertexOf call under
// sustained throughput.
//
// Adapted from the teacher's pool.NewDynamic sync.Pool wrapper: the pooled
// object here is a scratch encoding buffer, not a reusable worker.
var bufferPool = pool.NewDynamic(func() interface{} { return new(bytes.Buffer) })

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// putBuffer returns buf to the pool, unless one outsized marshal grew it
// past maxPooled — no sense pinning that much memory for the pool's
// lifetime.
func putBuffer(buf *bytes.Buffer) {
	const maxPooled = 64 * 1024
	if buf.Cap() > maxPooled {
		return
	}
	bufferPool.Put(buf)
}
