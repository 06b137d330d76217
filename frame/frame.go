package frame

import "errors"

var (
	ErrNoHiddenMessage     = errors.New("no hidden message")
	ErrUnterminatedMessage = errors.New("hidden message is unterminated")
)

// Framer lays out a payload inside the LSB stream of a container and finds it again.
type Framer interface {
	// Embed hides payload in buf starting at the container index offset and
	// returns the index following the last written byte.
	// buf is left untouched when an error is returned.
	Embed(buf []byte, offset uint64, payload []byte) (uint64, error)
	// Extract recovers the payload hidden from offset.
	Extract(buf []byte, offset uint64) ([]byte, error)
	// Capacity returns the largest payload, in bytes, that fits in the
	// given number of container bytes, or -1 when the framing itself does
	// not fit and even an empty payload is rejected.
	Capacity(available uint64) int
}
