package frame

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/yyyoichi/stegosaurus/internal/bitconv"
	"github.com/yyyoichi/stegosaurus/internal/lsb"
)

const lengthBits = 32

var _ Framer = (*LengthPrefix)(nil)

// LengthPrefix frames a payload behind its 32-bit big-endian length, so any
// payload content is allowed. Images written with it cannot be read by
// Markers and vice versa.
type LengthPrefix struct {
	c codec
}

// NewLengthPrefix returns a length-prefixed framer.
// Without options no error correction is applied.
func NewLengthPrefix(opts ...Option) *LengthPrefix {
	lp := &LengthPrefix{c: withoutecc{}}
	for _, opt := range opts {
		opt(lp)
	}
	return lp
}

func (lp *LengthPrefix) Capacity(available uint64) int {
	room := int(available) - lp.c.encodedLen(lengthBits)
	if room < 0 {
		return -1
	}
	// encodedLen grows with size, so search the first size that no longer fits
	return sort.Search(room/8+1, func(n int) bool {
		return lp.c.encodedLen(n*8) > room
	}) - 1
}

func (lp *LengthPrefix) Embed(buf []byte, offset uint64, payload []byte) (uint64, error) {
	var header [4]byte
	binary.BigEndian.PutUint32(header[:], uint32(len(payload)))
	head := lp.c.encode(bitconv.BytesToBools(header[:]))
	body := lp.c.encode(bitconv.BytesToBools(payload))

	if !lsb.Fits(buf, offset, uint64(len(head)+len(body))) {
		return offset, fmt.Errorf("%w: %d byte payload needs %d bits from %d, container is %d bytes",
			lsb.ErrCapacityExceeded, len(payload), len(head)+len(body), offset, len(buf))
	}
	next, err := lsb.WriteBits(buf, head, offset)
	if err != nil {
		return offset, err
	}
	return lsb.WriteBits(buf, body, next)
}

func (lp *LengthPrefix) Extract(buf []byte, offset uint64) ([]byte, error) {
	r := lsb.NewReader(buf, offset)
	head, err := r.ReadBits(uint64(lp.c.encodedLen(lengthBits)))
	if err != nil {
		return nil, fmt.Errorf("%w: container too small for a length header", ErrNoHiddenMessage)
	}
	size := binary.BigEndian.Uint32(bitconv.BoolsToBytes(lp.c.decode(head, lengthBits)))
	bodyLen := uint64(lp.c.encodedLen(int(size) * 8))
	if bodyLen > r.Remaining() {
		// an impossible length is all an unmarked image ever yields here
		return nil, fmt.Errorf("%w: header claims %d bytes, %d bits left", ErrNoHiddenMessage, size, r.Remaining())
	}
	body, _ := r.ReadBits(bodyLen)
	return bitconv.BoolsToBytes(lp.c.decode(body, int(size)*8)), nil
}
