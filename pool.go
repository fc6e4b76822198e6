package iso8583

import "sync"

const (
	buildBufferSize = 512
	maxPooledBuffer = maxWireLength + 1
)

// bufferPool holds field buffers for Build. Parsing slices the input and
// needs none.
var bufferPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, 0, buildBufferSize)
		return &buf
	},
}

func getBuffer() []byte {
	buf := bufferPool.Get().(*[]byte)
	return (*buf)[:0]
}

func putBuffer(buf []byte) {
	if cap(buf) > maxPooledBuffer {
		return
	}
	b := buf[:0]
	bufferPool.Put(&b)
}
