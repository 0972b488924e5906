package format

import (
	"path/filepath"
	"strings"
)

// CompressionType identifies the whole-file compression applied to a sphere file.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 frame compression.
)

// extensions maps a lower-cased file extension to its compression type.
var extensions = map[string]CompressionType{
	".zst":  CompressionZstd,
	".zstd": CompressionZstd,
	".s2":   CompressionS2,
	".lz4":  CompressionLZ4,
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Extension returns the canonical file extension for the compression type,
// or an empty string for CompressionNone and unknown types.
func (c CompressionType) Extension() string {
	switch c {
	case CompressionZstd:
		return ".zst"
	case CompressionS2:
		return ".s2"
	case CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}

// FromExtension returns the compression type implied by the extension of path.
// Paths without a recognized extension are treated as uncompressed.
func FromExtension(path string) CompressionType {
	if ct, ok := extensions[strings.ToLower(filepath.Ext(path))]; ok {
		return ct
	}

	return CompressionNone
}
