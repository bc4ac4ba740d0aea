package handler

import (
	"bytes"
	"sync"
)

const (
	// encodeBufferSize fits a single account with five pods
	encodeBufferSize = 1 << 10
	// maxPooledBuffer keeps large account listings from pinning memory
	maxPooledBuffer = 64 << 10
)

var encodeBuffers = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, encodeBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return encodeBuffers.Get().(*bytes.Buffer)
}

// putBuffer recycles buf unless it grew past maxPooledBuffer
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledBuffer {
		return
	}
	buf.Reset()
	encodeBuffers.Put(buf)
}
