// Package lsb hides a bit stream in the least significant bits of a byte
// buffer, one bit per buffer byte.
package lsb

import (
	"errors"
	"fmt"
	"io"

	"github.com/yyyoichi/stegosaurus/internal/bitconv"
)

var ErrCapacityExceeded = errors.New("payload exceeds container capacity")

// Fits reports whether bits buffer bytes are available from start.
func Fits(buf []byte, start, bits uint64) bool {
	size := uint64(len(buf))
	return start <= size && bits <= size-start
}

// Write stores payload MSB first in the LSBs of buf[start:start+len(payload)*8]
// and returns the index following the last written byte.
// Nothing is written when the payload does not fit.
func Write(buf, payload []byte, start uint64) (uint64, error) {
	n := uint64(len(payload)) * 8
	if !Fits(buf, start, n) {
		return start, fmt.Errorf("%w: %d bits from %d, container is %d bytes", ErrCapacityExceeded, n, start, len(buf))
	}
	for p := range n {
		at := start + p
		buf[at] = bitconv.SetLSB(buf[at], bitconv.Bit(payload[p/8], int(p%8)))
	}
	return start + n, nil
}

// WriteBits is Write for a bit sequence of arbitrary length.
func WriteBits(buf []byte, bits []bool, start uint64) (uint64, error) {
	n := uint64(len(bits))
	if !Fits(buf, start, n) {
		return start, fmt.Errorf("%w: %d bits from %d, container is %d bytes", ErrCapacityExceeded, n, start, len(buf))
	}
	for p, bit := range bits {
		var v byte
		if bit {
			v = 1
		}
		at := start + uint64(p)
		buf[at] = bitconv.SetLSB(buf[at], v)
	}
	return start + n, nil
}

// Reader reads back bits hidden by Write, advancing one buffer byte per bit.
type Reader struct {
	buf    []byte
	cursor uint64
}

func NewReader(buf []byte, start uint64) *Reader {
	return &Reader{buf: buf, cursor: start}
}

// Cursor returns the index of the next buffer byte to read.
func (r *Reader) Cursor() uint64 {
	return r.cursor
}

// Remaining returns the number of bits left in the buffer.
func (r *Reader) Remaining() uint64 {
	if r.cursor >= uint64(len(r.buf)) {
		return 0
	}
	return uint64(len(r.buf)) - r.cursor
}

// ReadBit returns the next hidden bit, or io.EOF at the end of the buffer.
func (r *Reader) ReadBit() (bool, error) {
	if r.Remaining() == 0 {
		return false, io.EOF
	}
	bit := r.buf[r.cursor]&1 == 1
	r.cursor++
	return bit, nil
}

// ReadByte assembles the next 8 hidden bits into a byte, the first bit
// becoming the most significant one. It returns io.EOF without consuming
// anything when fewer than 8 bits remain.
func (r *Reader) ReadByte() (byte, error) {
	if r.Remaining() < 8 {
		return 0, io.EOF
	}
	var acc byte
	for pos := range 8 {
		acc |= (r.buf[r.cursor] & 1) << uint(7-pos)
		r.cursor++
	}
	return acc, nil
}

// ReadBits returns the next n hidden bits.
func (r *Reader) ReadBits(n uint64) ([]bool, error) {
	if r.Remaining() < n {
		return nil, io.ErrUnexpectedEOF
	}
	bits := make([]bool, n)
	for i := range bits {
		bits[i], _ = r.ReadBit()
	}
	return bits, nil
}
