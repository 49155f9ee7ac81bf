package snapshot

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"math"
	"slices"

	"github.com/Tajwarbot/Graphly/compress"
	"github.com/Tajwarbot/Graphly/dataset"
	"github.com/Tajwarbot/Graphly/format"
	"github.com/Tajwarbot/Graphly/internal/options"
	"github.com/Tajwarbot/Graphly/internal/pool"
)

var magic = [4]byte{'G', 'L', 'Y', '1'}

const formatVersion = 1

// Cell type tags inside a row record.
const (
	cellAbsent byte = 0
	cellFloat  byte = 1
	cellString byte = 2
)

// Encoder serializes dataset collections. A zero-value Encoder is not usable;
// construct with NewEncoder.
type Encoder struct {
	compression format.CompressionType
}

// Option is a functional option for configuring an Encoder.
type Option = options.Option[*Encoder]

// WithCompression selects the payload compression algorithm. The default
// is Zstd.
func WithCompression(compressionType format.CompressionType) Option {
	return options.New(func(e *Encoder) error {
		if !compressionType.Valid() {
			return fmt.Errorf("encoder: invalid compression type %d", compressionType)
		}
		e.compression = compressionType

		return nil
	})
}

// NewEncoder creates a snapshot encoder.
func NewEncoder(opts ...Option) (*Encoder, error) {
	e := &Encoder{compression: format.CompressionZstd}
	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

// Encode serializes the dataset collection into a snapshot.
func (e *Encoder) Encode(sets []dataset.Dataset) ([]byte, error) {
	buf := pool.GetSnapshotBuffer()
	defer pool.PutSnapshotBuffer(buf)

	buf.B = binary.AppendUvarint(buf.B, uint64(len(sets)))
	for i := range sets {
		appendDataset(buf, &sets[i])
	}

	payload := buf.Bytes()
	checksum := crc32.ChecksumIEEE(payload)

	codec, err := compress.CreateCodec(e.compression, "snapshot")
	if err != nil {
		return nil, err
	}
	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("snapshot compression failed: %w", err)
	}

	out := make([]byte, 0, len(magic)+2+4+binary.MaxVarintLen64+len(compressed))
	out = append(out, magic[:]...)
	out = append(out, formatVersion, byte(e.compression))
	out = binary.LittleEndian.AppendUint32(out, checksum)
	out = binary.AppendUvarint(out, uint64(len(compressed)))
	out = append(out, compressed...)

	return out, nil
}

func appendDataset(buf *pool.ByteBuffer, d *dataset.Dataset) {
	appendString(buf, d.Name)
	buf.B = binary.LittleEndian.AppendUint64(buf.B, d.ID())
	_ = buf.WriteByte(byte(d.Kind))
	appendString(buf, d.XKey)
	appendString(buf, d.YKey)
	appendString(buf, d.Equation)
	visible := byte(0)
	if d.Visible {
		visible = 1
	}
	_ = buf.WriteByte(visible)

	fields := fieldTable(d.Rows)
	buf.B = binary.AppendUvarint(buf.B, uint64(len(fields)))
	for _, f := range fields {
		appendString(buf, f)
	}

	buf.B = binary.AppendUvarint(buf.B, uint64(len(d.Rows)))
	for _, row := range d.Rows {
		for _, f := range fields {
			appendCell(buf, row[f])
		}
	}
}

// fieldTable returns the sorted union of field names across all rows, so
// cell order is deterministic regardless of map iteration.
func fieldTable(rows []dataset.Row) []string {
	seen := make(map[string]struct{})
	var fields []string

	for _, row := range rows {
		for name := range row {
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				fields = append(fields, name)
			}
		}
	}
	slices.Sort(fields)

	return fields
}

// appendCell writes one tagged cell. Numeric cells are widened to float64;
// anything that is neither numeric nor a string is recorded as absent.
func appendCell(buf *pool.ByteBuffer, v any) {
	switch val := v.(type) {
	case nil:
		_ = buf.WriteByte(cellAbsent)
	case string:
		_ = buf.WriteByte(cellString)
		appendString(buf, val)
	case float64:
		appendFloatCell(buf, val)
	case float32:
		appendFloatCell(buf, float64(val))
	case int:
		appendFloatCell(buf, float64(val))
	case int32:
		appendFloatCell(buf, float64(val))
	case int64:
		appendFloatCell(buf, float64(val))
	case uint:
		appendFloatCell(buf, float64(val))
	case uint64:
		appendFloatCell(buf, float64(val))
	default:
		_ = buf.WriteByte(cellAbsent)
	}
}

func appendFloatCell(buf *pool.ByteBuffer, f float64) {
	_ = buf.WriteByte(cellFloat)
	buf.B = binary.LittleEndian.AppendUint64(buf.B, math.Float64bits(f))
}

// appendString writes a length-prefixed string.
func appendString(buf *pool.ByteBuffer, s string) {
	buf.B = binary.AppendUvarint(buf.B, uint64(len(s)))
	buf.B = append(buf.B, s...)
}
