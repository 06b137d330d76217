package stegosaurus

import (
	"bytes"
	"fmt"
	"image"
	"log/slog"

	"github.com/yyyoichi/stegosaurus/frame"
	"github.com/yyyoichi/stegosaurus/internal/container"
	"github.com/yyyoichi/stegosaurus/internal/logger"
	"github.com/yyyoichi/stegosaurus/internal/lsb"
	"github.com/yyyoichi/stegosaurus/internal/lsbstat"
	"golang.org/x/image/bmp"
)

var (
	// ErrInvalidContainer is returned when buf does not start with the bitmap signature.
	ErrInvalidContainer = container.ErrInvalidContainer
	// ErrTruncatedContainer is returned when buf ends inside the header or
	// before the pixel array it points to.
	ErrTruncatedContainer = container.ErrTruncatedContainer
	// ErrCapacityExceeded is returned when the framed payload needs more bits
	// than the pixel array holds.
	ErrCapacityExceeded = lsb.ErrCapacityExceeded
	// ErrNoHiddenMessage is returned when no payload start is found.
	ErrNoHiddenMessage = frame.ErrNoHiddenMessage
	// ErrUnterminatedMessage is returned when a payload starts but its end is missing.
	ErrUnterminatedMessage = frame.ErrUnterminatedMessage
)

// Encode hides payload in the bitmap container with the default settings.
// This is a convenience function that creates a Stego instance and calls its Encode method.
func Encode(buf, payload []byte, opts ...Option) ([]byte, error) {
	s, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return s.Encode(buf, payload)
}

// Decode recovers the payload hidden in the bitmap container with the default settings.
// This is a convenience function that creates a Stego instance and calls its Decode method.
func Decode(buf []byte, opts ...Option) ([]byte, error) {
	s, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return s.Decode(buf)
}

// Stego hides payloads in the least significant bits of a bitmap's pixel
// array. It holds configuration only and may be shared.
type Stego struct {
	framer frame.Framer
	logger *slog.Logger
}

// New initializes a Stego.
// Without options payloads are framed by frame.Markers and nothing is logged.
func New(opts ...Option) (*Stego, error) {
	s := new(Stego)
	if err := s.init(opts...); err != nil {
		return nil, err
	}
	return s, nil
}

// Encode hides payload in buf, one bit per pixel-array byte starting at the
// pixel array, and returns buf.
//
// buf is modified in place; the caller hands it over for the duration of the
// call. When an error is returned buf is unchanged.
func (s *Stego) Encode(buf, payload []byte) ([]byte, error) {
	offset, err := container.Locate(buf)
	if err != nil {
		return nil, err
	}
	next, err := s.framer.Embed(buf, offset, payload)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("payload embedded",
		"pixel_offset", offset,
		"payload_bytes", len(payload),
		"last_byte", next-1,
	)
	return buf, nil
}

// Decode recovers the payload hidden in buf.
//
// It returns ErrNoHiddenMessage when buf carries no payload and
// ErrUnterminatedMessage when the payload end is missing.
func (s *Stego) Decode(buf []byte) ([]byte, error) {
	offset, err := container.Locate(buf)
	if err != nil {
		return nil, err
	}
	payload, err := s.framer.Extract(buf, offset)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("payload extracted", "pixel_offset", offset, "payload_bytes", len(payload))
	return payload, nil
}

// Capacity returns the largest payload, in bytes, that Encode can hide in buf.
// It returns ErrCapacityExceeded when the pixel array cannot hold even an
// empty payload, so a nil error means Encode accepts Capacity bytes.
func (s *Stego) Capacity(buf []byte) (int, error) {
	offset, err := container.Locate(buf)
	if err != nil {
		return 0, err
	}
	available := uint64(len(buf)) - offset
	n := s.framer.Capacity(available)
	if n < 0 {
		return 0, fmt.Errorf("%w: framing does not fit in %d pixel bytes", ErrCapacityExceeded, available)
	}
	return n, nil
}

// ReadHeader returns the bitmap header fields of buf without touching the
// pixel array.
func ReadHeader(buf []byte) (Header, error) {
	h, err := container.ReadHeader(buf)
	if err != nil {
		return Header{}, err
	}
	return Header(h), nil
}

// Header holds the bitmap header fields. Width and Height are advisory and
// zero when the container is too short to carry them.
type Header struct {
	FileSize    uint64
	PixelOffset uint64
	Width       uint64
	Height      uint64
}

// LSBStats summarizes the least significant bits of the pixel array.
type LSBStats struct {
	OnesRatio        float64
	ChiSquare        float64
	DegreesOfFreedom int
	// PValue near 1 suggests the pixel array LSBs carry embedded data.
	PValue float64
}

// Info is the result of Inspect.
type Info struct {
	Header Header
	// Capacity is -1 when the pixel array cannot hold even an empty payload.
	Capacity int
	LSB      LSBStats
	// Config is the image configuration reported by a full bitmap decoder.
	// It is nil when that decoder rejects the container.
	Config *image.Config
}

// Inspect reports the header, capacity and LSB statistics of buf.
func (s *Stego) Inspect(buf []byte) (Info, error) {
	h, err := container.ReadHeader(buf)
	if err != nil {
		return Info{}, err
	}
	report := lsbstat.Analyze(buf[h.PixelOffset:])
	info := Info{
		Header:   Header(h),
		Capacity: s.framer.Capacity(uint64(len(buf)) - h.PixelOffset),
		LSB: LSBStats{
			OnesRatio:        report.OnesRatio,
			ChiSquare:        report.ChiSquare,
			DegreesOfFreedom: report.DegreesOfFreedom,
			PValue:           report.PValue,
		},
	}
	if cfg, err := bmp.DecodeConfig(bytes.NewReader(buf)); err == nil {
		info.Config = &cfg
	} else {
		s.logger.Debug("bitmap decoder rejected container", "error", err)
	}
	return info, nil
}

func (s *Stego) init(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return err
		}
	}
	if s.framer == nil {
		s.framer = frame.Markers{}
	}
	if s.logger == nil {
		s.logger = logger.Discard()
	}
	return nil
}
