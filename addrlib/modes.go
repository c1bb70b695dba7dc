package addrlib

// Value encodings packed into each entry's type byte. The low nibble
// selects the id encoding; bits 0-2 of the high nibble select the offset
// encoding, and bit 3 of the high nibble marks the offset as
// pointer-scaled.
const (
	modeLit64  uint8 = 0 // full unsigned 64-bit literal
	modeIncr   uint8 = 1 // previous value + 1
	modeAddU8  uint8 = 2 // previous value plus u8 literal
	modeSubU8  uint8 = 3 // previous value minus u8 literal
	modeAddU16 uint8 = 4 // previous value plus u16 literal
	modeSubU16 uint8 = 5 // previous value minus u16 literal
	modeAbs16  uint8 = 6 // absolute u16 literal
	modeAbs32  uint8 = 7 // absolute u32 literal
)

const scaledFlag uint8 = 0x8

// literalSize is the number of literal bytes each mode reads after the
// type byte.
var literalSize = [8]int{8, 0, 1, 1, 2, 2, 2, 4}

// packType builds an entry's type byte.
func packType(idMode, offsetMode uint8, scaled bool) byte {
	t := idMode&0xF | offsetMode<<4
	if scaled {
		t |= scaledFlag << 4
	}
	return t
}
