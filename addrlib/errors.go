package addrlib

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds reports a read or skip that would pass the end of the
// source buffer.
var ErrOutOfBounds = errors.New("read past end of buffer")

// FormatError is the single error kind raised by the decoder: the input
// does not conform to the address library format. Offset is the byte
// position in the source at which the violation was detected, or -1 when
// no position applies.
type FormatError struct {
	Offset int64
	Msg    string
	err    error
}

func (e *FormatError) Error() string {
	if e.Offset < 0 {
		return e.Msg
	}
	return fmt.Sprintf("offset 0x%X: %s", e.Offset, e.Msg)
}

func (e *FormatError) Unwrap() error { return e.err }

func formatErrorf(offset int64, format string, args ...interface{}) *FormatError {
	return &FormatError{Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

func outOfBounds(offset, want, remaining int64) *FormatError {
	return &FormatError{
		Offset: offset,
		Msg:    fmt.Sprintf("need %d bytes, %d left", want, remaining),
		err:    ErrOutOfBounds,
	}
}
