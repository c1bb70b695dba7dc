package addrlib

// Recognized values of Header.Format.
const (
	FormatV1 = 1
	FormatV2 = 2
)

// Header is the fixed file header of an address library: the format gate,
// an opaque four-part version, the pointer size used for scaled offsets,
// and the number of mapping entries that follow. The embedded library name
// between Version and PointerSize is skipped on read.
type Header struct {
	Format       int32
	Version      [4]int32
	PointerSize  int32
	AddressCount int32
}

// ReadHeader parses the file header from cur, leaving the cursor at the
// first mapping entry. It fails with a *FormatError if the format gate is
// not a recognized version or if the header is truncated.
func ReadHeader(cur *Cursor) (Header, error) {
	var h Header

	pos := cur.Pos()
	format, err := cur.ReadI32()
	if err != nil {
		return h, err
	}
	switch format {
	case FormatV1, FormatV2:
		h.Format = format
	default:
		return h, formatErrorf(pos, "invalid header format (%d)", format)
	}

	for i := range h.Version {
		if h.Version[i], err = cur.ReadI32(); err != nil {
			return h, err
		}
	}

	nameLen, err := cur.ReadI32()
	if err != nil {
		return h, err
	}
	if err = cur.Skip(int64(nameLen)); err != nil {
		return h, err
	}

	if h.PointerSize, err = cur.ReadI32(); err != nil {
		return h, err
	}
	if h.AddressCount, err = cur.ReadI32(); err != nil {
		return h, err
	}
	return h, nil
}
