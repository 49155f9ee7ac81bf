package compress

import (
	"fmt"

	"github.com/Tajwarbot/Graphly/format"
)

// Compressor compresses a whole snapshot payload block.
type Compressor interface {
	// Compress compresses the input block and returns a newly allocated
	// result. The input slice is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a snapshot payload block.
type Decompressor interface {
	// Decompress decompresses a block previously produced by the matching
	// Compressor. Corrupted or mismatched input returns an error.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions for implementations that share state.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec creates a Codec for the specified compression type.
//
// The target string describes the usage and only appears in error messages.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
