// Package format defines the shared wire-level enums used by the snapshot
// codec and compression layer.
package format

type (
	CompressionType uint8
	SeriesKind      uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.

	KindPoints   SeriesKind = 0x1 // KindPoints represents a tabular (x,y) series.
	KindFunction SeriesKind = 0x2 // KindFunction represents an equation-driven series.
)

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

// Valid reports whether c is one of the defined compression types.
func (c CompressionType) Valid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

func (k SeriesKind) String() string {
	switch k {
	case KindPoints:
		return "Points"
	case KindFunction:
		return "Function"
	default:
		return "Unknown"
	}
}
