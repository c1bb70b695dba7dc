package addrlib

import (
	"bytes"
	"encoding/binary"
	"io"
)

// Cursor is a sequential little-endian reader over a byte source of known
// size. A read or skip that would pass the declared size fails with a
// *FormatError wrapping ErrOutOfBounds and leaves the position unchanged.
type Cursor struct {
	src  io.ReaderAt
	size int64
	pos  int64
	buf  [8]byte
}

func NewCursor(src io.ReaderAt, size int64) *Cursor {
	return &Cursor{src: src, size: size}
}

// NewBytesCursor wraps an in-memory buffer.
func NewBytesCursor(b []byte) *Cursor {
	return NewCursor(bytes.NewReader(b), int64(len(b)))
}

// Pos is the absolute position of the next read.
func (c *Cursor) Pos() int64 { return c.pos }

// Remaining is the number of unread bytes left in the source.
func (c *Cursor) Remaining() int64 { return c.size - c.pos }

// Skip advances the cursor n bytes without reading them.
func (c *Cursor) Skip(n int64) error {
	if n < 0 || n > c.Remaining() {
		return outOfBounds(c.pos, n, c.Remaining())
	}
	c.pos += n
	return nil
}

func (c *Cursor) read(n int) ([]byte, error) {
	if int64(n) > c.Remaining() {
		return nil, outOfBounds(c.pos, int64(n), c.Remaining())
	}
	if _, err := c.src.ReadAt(c.buf[:n], c.pos); err != nil {
		return nil, &FormatError{Offset: c.pos, Msg: "short read: " + err.Error(), err: err}
	}
	c.pos += int64(n)
	return c.buf[:n], nil
}

func (c *Cursor) ReadU8() (uint8, error) {
	b, err := c.read(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *Cursor) ReadU16() (uint16, error) {
	b, err := c.read(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (c *Cursor) ReadU32() (uint32, error) {
	b, err := c.read(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (c *Cursor) ReadU64() (uint64, error) {
	b, err := c.read(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (c *Cursor) ReadI32() (int32, error) {
	v, err := c.ReadU32()
	return int32(v), err
}
