package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yyyoichi/stegosaurus/internal/bitconv"
)

func TestShuffledGolay(t *testing.T) {
	var sg shuffledgolay = 12345
	t.Run("encode length", func(t *testing.T) {
		for v := range 64 * 4 {
			encoded := sg.encode(make([]bool, v))
			if len(encoded) != sg.encodedLen(v) {
				t.Errorf("expected %d, got %d", sg.encodedLen(v), len(encoded))
			}
		}
	})

	t.Run("encode/decode", func(t *testing.T) {
		original := bitconv.BytesToBools([]byte{0x12, 0x34, 0x56, 0x78, 0x90, 0xab, 0xcd, 0xef})
		encoded := sg.encode(original)
		assert.Equal(t, original, sg.decode(encoded, len(original)))
	})

	t.Run("permutation", func(t *testing.T) {
		index := sg.generatePermutation(100)
		assert.Equal(t, index, sg.generatePermutation(100))
		seen := make(map[int]bool, len(index))
		for _, i := range index {
			seen[i] = true
		}
		assert.Len(t, seen, 100)
	})
}

func TestWithoutECC(t *testing.T) {
	var we withoutecc
	bits := []bool{true, false, true}
	assert.Equal(t, bits, we.encode(bits))
	assert.Equal(t, bits[:2], we.decode(bits, 2))
	assert.Equal(t, 7, we.encodedLen(7))
}
