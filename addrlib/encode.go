package addrlib

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Encoder packs mappings into the compact address library format. It is the
// inverse of Decode: for each entry it picks the id and offset encodings
// costing the fewest literal bytes given the previously written pair.
type Encoder struct {
	Format      int32
	Version     [4]int32
	Name        string
	PointerSize int32
}

// Encode serializes the header and all mappings. Entries are written in
// slice order, which becomes the stream order a decoder will see.
func (e *Encoder) Encode(mappings []Mapping) ([]byte, error) {
	switch e.Format {
	case FormatV1, FormatV2:
	default:
		return nil, formatErrorf(-1, "invalid header format (%d)", e.Format)
	}
	if len(mappings) > math.MaxInt32 {
		return nil, formatErrorf(-1, "too many mappings (%d)", len(mappings))
	}

	var bb bytes.Buffer
	var scratch [8]byte

	putI32 := func(v int32) {
		binary.LittleEndian.PutUint32(scratch[:4], uint32(v))
		bb.Write(scratch[:4])
	}

	putI32(e.Format)
	for _, v := range e.Version {
		putI32(v)
	}
	putI32(int32(len(e.Name)))
	bb.WriteString(e.Name)
	putI32(e.PointerSize)
	putI32(int32(len(mappings)))

	var prev prevState
	for _, m := range mappings {
		idMode, idLit := pickMode(m.ID, prev.id)
		offsetMode, offsetLit, scaled := e.pickOffsetMode(m.Offset, prev.offset)
		bb.WriteByte(packType(idMode, offsetMode, scaled))
		writeLiteral(&bb, scratch[:], idMode, idLit)
		writeLiteral(&bb, scratch[:], offsetMode, offsetLit)
		prev = prevState{id: m.ID, offset: m.Offset}
	}
	return bb.Bytes(), nil
}

// pickMode returns the cheapest encoding of v relative to prev, and the
// literal to write with it.
func pickMode(v, prev uint64) (uint8, uint64) {
	switch {
	case v == prev+1:
		return modeIncr, 0
	case v >= prev && v-prev <= 0xFF:
		return modeAddU8, v - prev
	case v < prev && prev-v <= 0xFF:
		return modeSubU8, prev - v
	case v <= 0xFFFF:
		return modeAbs16, v
	case v >= prev && v-prev <= 0xFFFF:
		return modeAddU16, v - prev
	case v < prev && prev-v <= 0xFFFF:
		return modeSubU16, prev - v
	case v <= 0xFFFFFFFF:
		return modeAbs32, v
	default:
		return modeLit64, v
	}
}

// pickOffsetMode additionally considers the pointer-scaled form, which is
// only expressible when the offset is an exact multiple of the pointer
// size. The unscaled form wins ties.
func (e *Encoder) pickOffsetMode(offset, prevOffset uint64) (uint8, uint64, bool) {
	mode, lit := pickMode(offset, prevOffset)
	if ps := uint64(e.PointerSize); e.PointerSize > 0 && offset%ps == 0 {
		sMode, sLit := pickMode(offset/ps, prevOffset/ps)
		if literalSize[sMode] < literalSize[mode] {
			return sMode, sLit, true
		}
	}
	return mode, lit, false
}

func writeLiteral(bb *bytes.Buffer, scratch []byte, mode uint8, v uint64) {
	switch literalSize[mode] {
	case 0:
	case 1:
		bb.WriteByte(byte(v))
	case 2:
		binary.LittleEndian.PutUint16(scratch[:2], uint16(v))
		bb.Write(scratch[:2])
	case 4:
		binary.LittleEndian.PutUint32(scratch[:4], uint32(v))
		bb.Write(scratch[:4])
	case 8:
		binary.LittleEndian.PutUint64(scratch[:8], v)
		bb.Write(scratch[:8])
	}
}
