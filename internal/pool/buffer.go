// Package pool holds reusable buffers for encoding sphere records.
package pool

import (
	"io"
	"strconv"
	"sync"
)

// Buffer sizes for text encoding of sphere sets.
const (
	TextBufferDefaultSize  = 1024 * 16  // 16KiB
	TextBufferMaxThreshold = 1024 * 512 // 512KiB
)

// Buffer is an append-only byte slice with number formatting helpers.
type Buffer struct {
	B []byte
}

// NewBuffer returns an empty buffer with the given capacity.
func NewBuffer(size int) *Buffer {
	return &Buffer{B: make([]byte, 0, size)}
}

// Bytes returns the buffered data.
func (b *Buffer) Bytes() []byte {
	return b.B
}

// Len returns the number of buffered bytes.
func (b *Buffer) Len() int {
	return len(b.B)
}

// Reset empties the buffer and keeps its capacity.
func (b *Buffer) Reset() {
	b.B = b.B[:0]
}

// Write appends data.
func (b *Buffer) Write(data []byte) (int, error) {
	b.B = append(b.B, data...)
	return len(data), nil
}

// WriteByte appends c.
func (b *Buffer) WriteByte(c byte) error {
	b.B = append(b.B, c)
	return nil
}

// AppendFloat appends v in its shortest exact decimal form.
func (b *Buffer) AppendFloat(v float64) {
	b.B = strconv.AppendFloat(b.B, v, 'g', -1, 64)
}

// WriteTo writes the buffered data to w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.B)
	return int64(n), err
}

// BufferPool recycles Buffers. Buffers grown beyond maxThreshold are
// dropped instead of being returned to the pool.
type BufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewBufferPool returns a pool of buffers with defaultSize capacity.
// A maxThreshold of 0 keeps every buffer.
func NewBufferPool(defaultSize, maxThreshold int) *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() any { return NewBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

// Get returns an empty buffer.
func (p *BufferPool) Get() *Buffer {
	b, _ := p.pool.Get().(*Buffer)
	return b
}

// Put returns b to the pool.
func (p *BufferPool) Put(b *Buffer) {
	if b == nil {
		return
	}
	if p.maxThreshold > 0 && cap(b.B) > p.maxThreshold {
		return
	}

	b.Reset()
	p.pool.Put(b)
}

var textPool = NewBufferPool(TextBufferDefaultSize, TextBufferMaxThreshold)

// GetTextBuffer returns a buffer from the shared text pool.
func GetTextBuffer() *Buffer {
	return textPool.Get()
}

// PutTextBuffer returns b to the shared text pool.
func PutTextBuffer(b *Buffer) {
	textPool.Put(b)
}
