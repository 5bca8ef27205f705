package handler

import (
	"bytes"
	"sync"
)

// initialBufferSize fits most single-object responses.
const initialBufferSize = 512

// maxPooledBufferSize keeps large exports from pinning memory in the pool.
const maxPooledBufferSize = 64 << 10

// bufferPool is a pool of bytes.Buffer used for JSON encoding
var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer resets the buffer and returns it to the pool unless it grew too large.
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
