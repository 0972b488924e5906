package compress

import (
	"fmt"

	"github.com/R3mmurd/MonteCarlo/errs"
	"github.com/R3mmurd/MonteCarlo/format"
)

// Compressor compresses a complete buffer.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller
//   - Input slice is not modified
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a buffer produced by the matching Compressor.
//
// Decompress returns an error if the input is corrupted or was produced by a
// different algorithm. Implementations are safe for concurrent use.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
//
// Returns errs.ErrUnsupportedCompression for unknown types.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
}

// ForPath returns the codec implied by the file extension of path together
// with its compression type. Unrecognized extensions map to the no-op codec.
//
// Example:
//
//	codec, ct := compress.ForPath("spheres.txt.zst") // Zstd
//	raw, err := codec.Decompress(fileBytes)
func ForPath(path string) (Codec, format.CompressionType) {
	ct := format.FromExtension(path)
	codec, err := GetCodec(ct)
	if err != nil {
		return NewNoOpCompressor(), format.CompressionNone
	}

	return codec, ct
}
