package addrlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRaw(t *testing.T, data []byte) []Mapping {
	t.Helper()
	h, mappings, err := DecodeLibrary(NewBytesCursor(data))
	require.NoError(t, err)
	require.EqualValues(t, h.AddressCount, len(mappings))
	return mappings
}

func TestDecodeEmpty(t *testing.T) {
	assert.Empty(t, decodeRaw(t, rawLibrary(8, 0)))
}

func TestDecodeLiteral64(t *testing.T) {
	mappings := decodeRaw(t, rawLibrary(8, 1,
		0x00, // id and offset both full u64 literals
		0xF0, 0xDE, 0xBC, 0x9A, 0x78, 0x56, 0x34, 0x12,
		0xEF, 0xCD, 0xAB, 0x89, 0x67, 0x45, 0x23, 0x01,
	))
	assert.Equal(t, []Mapping{{ID: 0x123456789ABCDEF0, Offset: 0x0123456789ABCDEF}}, mappings)
}

func TestDecodeIncrement(t *testing.T) {
	mappings := decodeRaw(t, rawLibrary(8, 3,
		0x66, 0x0A, 0x00, 0x40, 0x00, // id=10, offset=0x40, both absolute u16
		0x11, // id=prev+1, offset=prev+1
		0x11,
	))
	assert.Equal(t, []Mapping{
		{ID: 10, Offset: 0x40},
		{ID: 11, Offset: 0x41},
		{ID: 12, Offset: 0x42},
	}, mappings)
}

func TestDecodeSubtractDelta(t *testing.T) {
	// prevID=10, then idMode 3 with literal 5 gives id=5
	mappings := decodeRaw(t, rawLibrary(8, 2,
		0x66, 0x0A, 0x00, 0x40, 0x00,
		0x13, 0x05, // id=prev-5, offset=prev+1
	))
	assert.Equal(t, []Mapping{
		{ID: 10, Offset: 0x40},
		{ID: 5, Offset: 0x41},
	}, mappings)
}

func TestDecodeWideDeltas(t *testing.T) {
	mappings := decodeRaw(t, rawLibrary(8, 3,
		0x66, 0x64, 0x00, 0x00, 0x01, // id=100, offset=0x100
		0x44, 0x00, 0x10, 0x00, 0x02, // id=prev+0x1000, offset=prev+0x200
		0x55, 0x01, 0x00, 0x02, 0x00, // id=prev-1, offset=prev-2
	))
	assert.Equal(t, []Mapping{
		{ID: 100, Offset: 0x100},
		{ID: 0x1064, Offset: 0x300},
		{ID: 0x1063, Offset: 0x2FE},
	}, mappings)
}

func TestDecodeAbsoluteIgnoresPrevious(t *testing.T) {
	mappings := decodeRaw(t, rawLibrary(8, 2,
		0x77, 0xEF, 0xBE, 0xAD, 0xDE, 0xAA, 0xBB, 0xCC, 0xDD, // id=0xDEADBEEF, offset=0xDDCCBBAA, both absolute u32
		0x66, 0x34, 0x12, 0x10, 0x00, // id=0x1234 regardless of previous, offset=0x10
	))
	require.Len(t, mappings, 2)
	assert.Equal(t, Mapping{ID: 0xDEADBEEF, Offset: 0xDDCCBBAA}, mappings[0])
	assert.Equal(t, Mapping{ID: 0x1234, Offset: 0x10}, mappings[1])
}

func TestDecodeScaledOffset(t *testing.T) {
	// pointerSize=8, previous offset 64: scaled tmp+1 gives (64/8+1)*8 = 72
	mappings := decodeRaw(t, rawLibrary(8, 2,
		0x66, 0x01, 0x00, 0x40, 0x00, // id=1, offset=64
		0x91, // id=prev+1, offset scaled tmp+1
	))
	assert.Equal(t, []Mapping{
		{ID: 1, Offset: 64},
		{ID: 2, Offset: 72},
	}, mappings)
}

func TestDecodeScaledAbsolute(t *testing.T) {
	// an absolute literal under the scaled flag is a pointer-count index
	mappings := decodeRaw(t, rawLibrary(8, 1,
		0xE6, 0x01, 0x00, 0x03, 0x00, // id=1, offset=3*8
	))
	assert.Equal(t, []Mapping{{ID: 1, Offset: 24}}, mappings)
}

func TestDecodeScaledZeroPointerSize(t *testing.T) {
	_, _, err := DecodeLibrary(NewBytesCursor(rawLibrary(0, 1, 0x91)))
	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe.Msg, "pointer size")
}

func TestDecodeInvalidIDMode(t *testing.T) {
	for typ := byte(0x08); typ <= 0x0F; typ++ {
		_, _, err := DecodeLibrary(NewBytesCursor(rawLibrary(8, 1, typ)))
		var fe *FormatError
		require.ErrorAs(t, err, &fe, "id mode %d", typ)
	}
}

func TestDecodeTruncatedEntries(t *testing.T) {
	// addressCount demands two entries but the stream holds one
	data := rawLibrary(8, 2, 0x11)
	_, _, err := DecodeLibrary(NewBytesCursor(data))
	require.ErrorIs(t, err, ErrOutOfBounds)

	// a truncated literal mid-entry fails the same way
	data = rawLibrary(8, 1, 0x00, 0x01, 0x02)
	_, _, err = DecodeLibrary(NewBytesCursor(data))
	require.ErrorIs(t, err, ErrOutOfBounds)
}

func TestDecodeIdempotent(t *testing.T) {
	data := rawLibrary(8, 4,
		0x66, 0x0A, 0x00, 0x40, 0x00,
		0x11,
		0xA2, 0x07, 0x02, // id=prev+7, offset scaled tmp+2
		0x13, 0x03,
	)
	first := decodeRaw(t, data)
	second := decodeRaw(t, data)
	assert.Equal(t, first, second)
}
