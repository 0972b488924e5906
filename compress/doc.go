// Package compress provides whole-buffer codecs for compressed sphere files.
//
// Sphere sets for large runs can be stored compressed; the spheres package
// picks a codec from the file extension (see format.FromExtension) and
// decompresses the file before parsing. All codecs emit the framing used by
// the corresponding command-line tools, so files can be produced outside
// this module:
//
//   - None: plain text
//   - Zstd (.zst): Zstandard frames, klauspost/compress or valyala/gozstd
//   - S2 (.s2): S2 stream format, klauspost/compress
//   - LZ4 (.lz4): LZ4 frame format, pierrec/lz4
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(text)
//
// # Thread Safety
//
// All codecs are stateless values backed by pooled encoders and are safe for
// concurrent use.
package compress
