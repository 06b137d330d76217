package bench_test

import (
	"bytes"
	"testing"

	"github.com/yyyoichi/stegosaurus"
	"github.com/yyyoichi/stegosaurus/frame"
	"github.com/yyyoichi/stegosaurus/internal/bmptest"
)

var framings = []struct {
	name string
	opts []stegosaurus.Option
}{
	{name: "markers", opts: nil},
	{name: "length", opts: []stegosaurus.Option{
		stegosaurus.WithFraming(frame.NewLengthPrefix()),
	}},
	{name: "length_golay", opts: []stegosaurus.Option{
		stegosaurus.WithFraming(frame.NewLengthPrefix(frame.WithGolay(frame.DefaultShuffleSeed))),
	}},
}

// BenchmarkEncode_FHD hides a 4 KiB payload in a 1920x1080 bitmap.
func BenchmarkEncode_FHD(b *testing.B) {
	img := bmptest.New(1920, 1080)
	payload := createPayload(4096)

	for _, tt := range framings {
		b.Run(tt.name, func(b *testing.B) {
			s, err := stegosaurus.New(tt.opts...)
			if err != nil {
				b.Fatalf("Failed to create Stego instance (%s): %v", tt.name, err)
			}
			// Encode writes the same bits on every pass, so the buffer is reused.
			for b.Loop() {
				if _, err := s.Encode(img, payload); err != nil {
					b.Fatalf("Failed to encode (%s): %v", tt.name, err)
				}
			}
		})
	}
}

// BenchmarkDecode_FHD recovers a 4 KiB payload from a 1920x1080 bitmap.
func BenchmarkDecode_FHD(b *testing.B) {
	payload := createPayload(4096)

	for _, tt := range framings {
		b.Run(tt.name, func(b *testing.B) {
			s, err := stegosaurus.New(tt.opts...)
			if err != nil {
				b.Fatalf("Failed to create Stego instance (%s): %v", tt.name, err)
			}
			img, err := s.Encode(bmptest.New(1920, 1080), payload)
			if err != nil {
				b.Fatalf("Failed to encode (%s): %v", tt.name, err)
			}
			for b.Loop() {
				got, err := s.Decode(img)
				if err != nil {
					b.Fatalf("Failed to decode (%s): %v", tt.name, err)
				}
				if len(got) != len(payload) {
					b.Fatalf("decoded %d bytes, want %d", len(got), len(payload))
				}
			}
		})
	}
}

// BenchmarkInspect_FHD measures header reading plus LSB statistics.
func BenchmarkInspect_FHD(b *testing.B) {
	img := bmptest.New(1920, 1080)
	s, _ := stegosaurus.New()
	for b.Loop() {
		if _, err := s.Inspect(img); err != nil {
			b.Fatal(err)
		}
	}
}

// createPayload creates n bytes of printable text that never contains the end marker.
func createPayload(n int) []byte {
	return bytes.Repeat([]byte("stegosaurus"), n/11+1)[:n]
}
