package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Tajwarbot/Graphly/format"
)

// snapshotLikePayload builds a repetitive varint-heavy block resembling an
// encoded snapshot, so the real codecs have something compressible.
func snapshotLikePayload(size int) []byte {
	payload := make([]byte, 0, size)
	pattern := []byte{0x01, 0x88, 0x27, 0x00, 0x00, 0x00, 0x40, 0x45, 0x9a, 0x99}
	for len(payload) < size {
		payload = append(payload, pattern...)
	}

	return payload[:size]
}

func TestCodecRoundTrip(t *testing.T) {
	types := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}
	payload := snapshotLikePayload(4096)

	for _, ct := range types {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := CreateCodec(ct, "test")
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.True(t, bytes.Equal(payload, restored))
		})
	}
}

func TestCodecCompressesRepetitiveData(t *testing.T) {
	payload := snapshotLikePayload(16 * 1024)

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(payload)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(payload), "%s should shrink repetitive data", ct)
	}
}

func TestCreateCodecInvalidType(t *testing.T) {
	_, err := CreateCodec(format.CompressionType(0xff), "snapshot")
	require.Error(t, err)

	_, err = GetCodec(format.CompressionType(0xff))
	require.Error(t, err)
}

func TestDecompressCorruptedInput(t *testing.T) {
	garbage := []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01, 0x02, 0x03}

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		_, err = codec.Decompress(garbage)
		require.Error(t, err, "%s should reject garbage", ct)
	}
}

func TestNoOpPassthrough(t *testing.T) {
	codec := NewNoOpCompressor()
	payload := []byte("unchanged")

	out, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Equal(t, payload, out)

	out, err = codec.Decompress(payload)
	require.NoError(t, err)
	require.Equal(t, payload, out)
}
