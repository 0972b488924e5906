package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/s2"
)

// S2Compressor uses the S2 stream format, the framing written by the s2c
// tool, rather than raw blocks.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses data as an S2 stream.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := s2.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("s2 compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("s2 compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress decodes an S2 (or Snappy-framed) stream.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := io.ReadAll(s2.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return out, nil
}
