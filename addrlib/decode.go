// Package addrlib decodes the packed address library format: a fixed
// header followed by a run of delta-encoded (id, offset) mapping entries.
// Decoding is strictly front-to-back, since every entry is interpreted
// relative to the pair decoded before it.
package addrlib

// Mapping is one decoded (id, offset) pair.
type Mapping struct {
	ID     uint64
	Offset uint64
}

// prevState carries the previously decoded pair across entries.
type prevState struct {
	id     uint64
	offset uint64
}

// DecodeLibrary reads the header and all mapping entries from cur.
func DecodeLibrary(cur *Cursor) (Header, []Mapping, error) {
	h, err := ReadHeader(cur)
	if err != nil {
		return h, nil, err
	}
	mappings, err := Decode(cur, h)
	return h, mappings, err
}

// Decode reconstructs exactly h.AddressCount mappings from cur, in stream
// order. Note stream order is not the output order; see Render.
func Decode(cur *Cursor, h Header) ([]Mapping, error) {
	mappings := make([]Mapping, 0, h.AddressCount)
	var prev prevState
	for i := int32(0); i < h.AddressCount; i++ {
		m, next, err := decodeNext(cur, h, prev)
		if err != nil {
			return nil, err
		}
		mappings = append(mappings, m)
		prev = next
	}
	return mappings, nil
}

// decodeNext decodes a single entry against the previous pair and returns
// the pair to carry into the next entry.
func decodeNext(cur *Cursor, h Header, prev prevState) (Mapping, prevState, error) {
	pos := cur.Pos()
	typ, err := cur.ReadU8()
	if err != nil {
		return Mapping{}, prev, err
	}
	idMode := typ & 0xF
	offsetTag := typ >> 4

	if idMode > modeAbs32 {
		return Mapping{}, prev, formatErrorf(pos, "unhandled id encoding %d", idMode)
	}
	id, err := decodeValue(cur, idMode, prev.id)
	if err != nil {
		return Mapping{}, prev, err
	}

	offsetMode := offsetTag & 0x7
	scaled := offsetTag&scaledFlag != 0

	base := prev.offset
	if scaled {
		if h.PointerSize <= 0 {
			return Mapping{}, prev, formatErrorf(pos, "scaled offset with pointer size %d", h.PointerSize)
		}
		base = prev.offset / uint64(h.PointerSize)
	}
	offset, err := decodeValue(cur, offsetMode, base)
	if err != nil {
		return Mapping{}, prev, err
	}
	// An absolute literal under the scaled flag is a pointer-count index,
	// not a byte offset, so the multiply applies to every offset mode.
	if scaled {
		offset *= uint64(h.PointerSize)
	}

	m := Mapping{ID: id, Offset: offset}
	return m, prevState{id: id, offset: offset}, nil
}

// decodeValue reads one value under the given mode. Deltas are computed in
// uint64 arithmetic, wrapping on underflow.
func decodeValue(cur *Cursor, mode uint8, prev uint64) (uint64, error) {
	switch mode {
	case modeLit64:
		return cur.ReadU64()
	case modeIncr:
		return prev + 1, nil
	case modeAddU8:
		v, err := cur.ReadU8()
		return prev + uint64(v), err
	case modeSubU8:
		v, err := cur.ReadU8()
		return prev - uint64(v), err
	case modeAddU16:
		v, err := cur.ReadU16()
		return prev + uint64(v), err
	case modeSubU16:
		v, err := cur.ReadU16()
		return prev - uint64(v), err
	case modeAbs16:
		v, err := cur.ReadU16()
		return uint64(v), err
	case modeAbs32:
		v, err := cur.ReadU32()
		return uint64(v), err
	default:
		return 0, formatErrorf(cur.Pos(), "unhandled value encoding %d", mode)
	}
}
