package stegosaurus

import (
	"errors"
	"log/slog"

	"github.com/yyyoichi/stegosaurus/frame"
)

type Option func(*Stego) error

// WithFraming selects how the payload is delimited inside the LSB stream.
// The default, frame.Markers, is the format every decoder understands;
// frame.NewLengthPrefix allows payloads containing the end marker.
func WithFraming(f frame.Framer) Option {
	return func(s *Stego) error {
		if f == nil {
			return errors.New("nil framer")
		}
		s.framer = f
		return nil
	}
}

// WithLogger sets the logger receiving debug records about located offsets
// and payload sizes.
func WithLogger(l *slog.Logger) Option {
	return func(s *Stego) error {
		if l == nil {
			return errors.New("nil logger")
		}
		s.logger = l
		return nil
	}
}
