package handler

import (
	"bytes"
	"sync"
)

const (
	// responseBufferSize fits a typical item or loadout response
	responseBufferSize = 4 << 10

	// maxPooledBufferSize keeps plan-sized buffers out of the pool
	maxPooledBufferSize = 256 << 10
)

// responseBuffers reuses JSON encoding buffers across responses
var responseBuffers = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, responseBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return responseBuffers.Get().(*bytes.Buffer)
}

// putBuffer returns buf to the pool unless a large plan response grew it
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBufferSize {
		return
	}
	buf.Reset()
	responseBuffers.Put(buf)
}
