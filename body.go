package curl

import (
	"bytes"
	"io"
)

// BodySource supplies the outbound request body. It is the pull-read
// capability the engine's read callback depends on, and it is exactly the
// io.Reader contract: Read fills p with up to len(p) bytes and reports the
// count, returns io.EOF on a clean end of stream, and returns any other
// error to signal a read failure (which aborts the transfer).
//
// The caller owns the source; a Handle borrows it only for the duration of
// one Perform call.
type BodySource interface {
	Read(p []byte) (n int, err error)
}

// NewByteSource returns a BodySource over a fixed byte slice.
func NewByteSource(b []byte) BodySource {
	return bytes.NewReader(b)
}

// enforce that any io.Reader satisfies BodySource.
var _ BodySource = io.Reader(nil)
