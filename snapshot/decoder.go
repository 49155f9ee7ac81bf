package snapshot

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"math"

	"github.com/Tajwarbot/Graphly/compress"
	"github.com/Tajwarbot/Graphly/dataset"
	"github.com/Tajwarbot/Graphly/errs"
	"github.com/Tajwarbot/Graphly/format"
)

// Decode restores a dataset collection from snapshot bytes.
//
// Errors wrap the sentinels in package errs: ErrInvalidMagic for foreign
// data, ErrInvalidCompression for an unknown compression flag,
// ErrChecksumMismatch for corruption and ErrTruncatedSnapshot for data cut
// short.
func Decode(data []byte) ([]dataset.Dataset, error) {
	if len(data) < len(magic)+2+4 {
		return nil, errs.ErrTruncatedSnapshot
	}
	if !bytes.Equal(data[:len(magic)], magic[:]) {
		return nil, errs.ErrInvalidMagic
	}
	data = data[len(magic):]

	version := data[0]
	if version != formatVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", version)
	}
	compression := format.CompressionType(data[1])
	if !compression.Valid() {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidCompression, data[1])
	}
	checksum := binary.LittleEndian.Uint32(data[2:6])
	data = data[6:]

	payloadLen, n := binary.Uvarint(data)
	if n <= 0 {
		return nil, errs.ErrTruncatedSnapshot
	}
	data = data[n:]
	if uint64(len(data)) < payloadLen {
		return nil, errs.ErrTruncatedSnapshot
	}

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compression)
	}
	payload, err := codec.Decompress(data[:payloadLen])
	if err != nil {
		return nil, fmt.Errorf("snapshot decompression failed: %w", err)
	}
	if crc32.ChecksumIEEE(payload) != checksum {
		return nil, errs.ErrChecksumMismatch
	}

	r := &reader{data: payload}
	count := r.count()
	sets := make([]dataset.Dataset, 0, count)
	for i := uint64(0); i < count; i++ {
		d, err := readDataset(r)
		if err != nil {
			return nil, err
		}
		sets = append(sets, d)
	}
	if r.err != nil {
		return nil, r.err
	}

	return sets, nil
}

func readDataset(r *reader) (dataset.Dataset, error) {
	var d dataset.Dataset

	d.Name = r.string()
	storedID := r.uint64()
	d.Kind = format.SeriesKind(r.byte())
	d.XKey = r.string()
	d.YKey = r.string()
	d.Equation = r.string()
	d.Visible = r.byte() != 0

	fieldCount := r.count()
	fields := make([]string, 0, fieldCount)
	for i := uint64(0); i < fieldCount; i++ {
		fields = append(fields, r.string())
	}

	rowCount := r.count()
	if rowCount > 0 {
		d.Rows = make([]dataset.Row, 0, rowCount)
	}
	for i := uint64(0); i < rowCount; i++ {
		row := make(dataset.Row, len(fields))
		for _, f := range fields {
			switch tag := r.byte(); tag {
			case cellAbsent:
			case cellFloat:
				row[f] = math.Float64frombits(r.uint64())
			case cellString:
				row[f] = r.string()
			default:
				if r.err == nil {
					return d, fmt.Errorf("invalid cell tag %d in series %q", tag, d.Name)
				}
			}
		}
		d.Rows = append(d.Rows, row)
	}

	if r.err != nil {
		return d, r.err
	}
	if storedID != d.ID() {
		return d, fmt.Errorf("%w: series %q id mismatch", errs.ErrChecksumMismatch, d.Name)
	}

	return d, nil
}

// reader is a cursor over the payload. The first short read latches err and
// every later read returns zero values, so callers check err once at the end.
type reader struct {
	data []byte
	pos  int
	err  error
}

func (r *reader) fail() {
	if r.err == nil {
		r.err = errs.ErrTruncatedSnapshot
	}
}

func (r *reader) byte() byte {
	if r.err != nil || r.pos >= len(r.data) {
		r.fail()
		return 0
	}
	b := r.data[r.pos]
	r.pos++

	return b
}

// count reads an element count and bounds it by the remaining payload.
// Every encoded element occupies at least one byte, so a count beyond that is
// a truncated or forged snapshot; checking here keeps a crafted count from
// driving a huge allocation.
func (r *reader) count() uint64 {
	v := r.uvarint()
	if r.err == nil && v > uint64(len(r.data)-r.pos) {
		r.fail()
		return 0
	}

	return v
}

func (r *reader) uvarint() uint64 {
	if r.err != nil {
		return 0
	}
	v, n := binary.Uvarint(r.data[r.pos:])
	if n <= 0 {
		r.fail()
		return 0
	}
	r.pos += n

	return v
}

func (r *reader) uint64() uint64 {
	if r.err != nil || r.pos+8 > len(r.data) {
		r.fail()
		return 0
	}
	v := binary.LittleEndian.Uint64(r.data[r.pos:])
	r.pos += 8

	return v
}

func (r *reader) string() string {
	length := r.uvarint()
	if r.err != nil || uint64(len(r.data)-r.pos) < length {
		r.fail()
		return ""
	}
	s := string(r.data[r.pos : r.pos+int(length)])
	r.pos += int(length)

	return s
}
