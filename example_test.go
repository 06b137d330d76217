package stegosaurus_test

import (
	"fmt"

	"github.com/yyyoichi/stegosaurus"
	"github.com/yyyoichi/stegosaurus/internal/bmptest"
)

func Example() {
	// A 16x16 24-bit bitmap
	img := bmptest.New(16, 16)

	s, err := stegosaurus.New()
	if err != nil {
		fmt.Printf("Error creating stego: %v\n", err)
		return
	}

	capacity, err := s.Capacity(img)
	if err != nil {
		fmt.Printf("Error reading capacity: %v\n", err)
		return
	}
	fmt.Printf("Capacity: %d bytes\n", capacity)

	// Hide the text; img is modified in place
	marked, err := s.Encode(img, []byte("meet at noon"))
	if err != nil {
		fmt.Printf("Error encoding: %v\n", err)
		return
	}

	text, err := s.Decode(marked)
	if err != nil {
		fmt.Printf("Error decoding: %v\n", err)
		return
	}
	fmt.Println(string(text))

	// Output:
	// Capacity: 84 bytes
	// meet at noon
}
