package compress

// ZstdCompressor produces standard Zstandard frames, readable by the zstd
// command-line tool.
//
// The pure-Go klauspost/compress backend is used by default. Building with
// the "gozstd" tag (and cgo enabled) switches to the valyala/gozstd binding
// of the reference C library.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
