// Package container locates the pixel array inside a bitmap file and reads
// the header fields around it.
package container

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidContainer   = errors.New("invalid container")
	ErrTruncatedContainer = errors.New("truncated container")
)

// Magic is the two-byte signature at the start of every bitmap file.
var Magic = [2]byte{'B', 'M'}

const (
	// HeaderSize is the length of the bitmap file header, the minimum a
	// container must hold to be located.
	HeaderSize = 14

	fileSizeAt    = 0x02
	pixelOffsetAt = 0x0a
	widthAt       = 0x12
	heightAt      = 0x16
	infoEnd       = 0x1a
)

// Header holds the header fields of a bitmap container.
// Only PixelOffset is needed to embed or extract a payload.
type Header struct {
	FileSize    uint64
	PixelOffset uint64
	Width       uint64
	Height      uint64
}

// DecodeLE decodes b as an unsigned little-endian integer.
func DecodeLE(b []byte) uint64 {
	var v uint64
	for i, bb := range b {
		v |= uint64(bb) << (8 * i)
	}
	return v
}

// Locate validates the container signature and returns the index of the
// first pixel-array byte.
func Locate(buf []byte) (uint64, error) {
	if len(buf) < HeaderSize {
		return 0, fmt.Errorf("%w: %d bytes, header needs %d", ErrTruncatedContainer, len(buf), HeaderSize)
	}
	if buf[0] != Magic[0] || buf[1] != Magic[1] {
		return 0, fmt.Errorf("%w: signature %#02x %#02x", ErrInvalidContainer, buf[0], buf[1])
	}
	offset := DecodeLE(buf[pixelOffsetAt : pixelOffsetAt+4])
	if offset >= uint64(len(buf)) {
		return 0, fmt.Errorf("%w: pixel array at %d, container is %d bytes", ErrTruncatedContainer, offset, len(buf))
	}
	return offset, nil
}

// ReadHeader locates the pixel array and reads the advisory header fields.
// Width and Height are zero when the container ends before the info header.
func ReadHeader(buf []byte) (Header, error) {
	offset, err := Locate(buf)
	if err != nil {
		return Header{}, err
	}
	h := Header{
		FileSize:    DecodeLE(buf[fileSizeAt : fileSizeAt+4]),
		PixelOffset: offset,
	}
	if len(buf) >= infoEnd {
		h.Width = DecodeLE(buf[widthAt : widthAt+4])
		h.Height = DecodeLE(buf[heightAt : heightAt+4])
	}
	return h, nil
}
