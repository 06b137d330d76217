package frame

import (
	"bytes"
	"fmt"
	"io"

	"github.com/yyyoichi/stegosaurus/internal/lsb"
)

// Wire markers bounding a payload. Images encoded by earlier releases carry
// exactly these bytes.
var (
	StartMarker = []byte("`START`")
	EndMarker   = []byte("`END`")
)

var _ Framer = Markers{}

// Markers frames a payload between StartMarker and EndMarker. No length is
// stored, so a payload is cut short on extraction when it contains EndMarker
// or ends with a prefix of it that the closing marker completes.
type Markers struct{}

// Overhead is the number of bytes the markers add to a payload.
func (Markers) Overhead() int {
	return len(StartMarker) + len(EndMarker)
}

func (m Markers) Capacity(available uint64) int {
	return max(int(available/8)-m.Overhead(), -1)
}

func (m Markers) Embed(buf []byte, offset uint64, payload []byte) (uint64, error) {
	need := uint64(len(payload)+m.Overhead()) * 8
	if !lsb.Fits(buf, offset, need) {
		return offset, fmt.Errorf("%w: %d byte payload, room for %d",
			lsb.ErrCapacityExceeded, len(payload), max(m.Capacity(uint64(len(buf))-min(offset, uint64(len(buf)))), 0))
	}
	next := offset
	for _, part := range [][]byte{StartMarker, payload, EndMarker} {
		var err error
		if next, err = lsb.Write(buf, part, next); err != nil {
			return next, err
		}
	}
	return next, nil
}

func (m Markers) Extract(buf []byte, offset uint64) ([]byte, error) {
	recovered, err := scan(buf, offset)
	if err != nil {
		return nil, err
	}
	return strip(recovered)
}

// scan reassembles hidden bytes from offset until EndMarker is seen and
// returns them with both markers. When the buffer runs out first, the bytes
// recovered so far are returned with ErrUnterminatedMessage.
func scan(buf []byte, offset uint64) ([]byte, error) {
	r := lsb.NewReader(buf, offset)
	minLen := len(StartMarker) + len(EndMarker)
	var recovered []byte
	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		recovered = append(recovered, b)
		if len(recovered) == len(StartMarker) && !bytes.Equal(recovered, StartMarker) {
			return nil, fmt.Errorf("%w: start marker not found at %d", ErrNoHiddenMessage, offset)
		}
		if len(recovered) >= minLen && bytes.HasSuffix(recovered, EndMarker) {
			return recovered, nil
		}
	}
	if len(recovered) < len(StartMarker) {
		return nil, fmt.Errorf("%w: only %d bytes recoverable from %d", ErrNoHiddenMessage, len(recovered), offset)
	}
	return recovered, fmt.Errorf("%w: end marker not found after %d bytes", ErrUnterminatedMessage, len(recovered))
}

// strip removes the markers around a recovered sequence.
func strip(recovered []byte) ([]byte, error) {
	if len(recovered) < len(StartMarker)+len(EndMarker) {
		return nil, fmt.Errorf("%w: %d bytes cannot hold both markers", ErrUnterminatedMessage, len(recovered))
	}
	return recovered[len(StartMarker) : len(recovered)-len(EndMarker)], nil
}
