package engine

import (
	"fmt"
	"io"
)

// memBuffer is a minimal in-memory io.ReadWriteSeeker, standing in for a
// file on disk so codec tests don't need real filesystem I/O.
type memBuffer struct {
	data []byte
	pos  int64
}

func (b *memBuffer) Read(p []byte) (int, error) {
	if b.pos >= int64(len(b.data)) {
		return 0, io.EOF
	}
	n := copy(p, b.data[b.pos:])
	b.pos += int64(n)
	return n, nil
}

func (b *memBuffer) Write(p []byte) (int, error) {
	end := b.pos + int64(len(p))
	if end > int64(len(b.data)) {
		grown := make([]byte, end)
		copy(grown, b.data)
		b.data = grown
	}
	n := copy(b.data[b.pos:end], p)
	b.pos = end
	return n, nil
}

func (b *memBuffer) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = b.pos
	case io.SeekEnd:
		base = int64(len(b.data))
	default:
		return 0, fmt.Errorf("memBuffer: invalid whence %d", whence)
	}
	newPos := base + offset
	if newPos < 0 {
		return 0, fmt.Errorf("memBuffer: negative seek position %d", newPos)
	}
	b.pos = newPos
	return newPos, nil
}
