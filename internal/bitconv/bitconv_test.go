package bitconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitConv(t *testing.T) {
	test := []struct {
		data []byte
		exp  []byte
	}{
		{data: []byte{0b10101010}, exp: []byte{0b10101010}},
		{data: []byte{0b11110000, 0b00001111}, exp: []byte{0b11110000, 0b00001111}},
		{data: []byte("Hello"), exp: []byte("Hello")},
		{data: []byte("こんにちは"), exp: []byte("こんにちは")},
		{data: []byte("`START`"), exp: []byte("`START`")},
		{data: []byte{}, exp: []byte{}},
	}
	for _, tt := range test {
		bits := BytesToBools(tt.data)
		assert.Len(t, bits, len(tt.data)*8)
		out := BoolsToBytes(bits)
		assert.Equal(t, tt.exp, out)
	}
}

func TestBoolsToBytesPadding(t *testing.T) {
	assert.Equal(t, []byte{0b10_000_000}, BoolsToBytes([]bool{true}))
	assert.Equal(t, []byte{0xff, 0b1_0000000}, BoolsToBytes([]bool{
		true, true, true, true, true, true, true, true, true,
	}))
}

func TestBit(t *testing.T) {
	// 'h' = 0b01101000
	exp := []byte{0, 1, 1, 0, 1, 0, 0, 0}
	for i := range 8 {
		assert.Equal(t, exp[i], Bit('h', i), "bit %d", i)
	}
}

func TestSetLSB(t *testing.T) {
	test := []struct {
		b, bit, exp byte
	}{
		{0x00, 1, 0x01},
		{0x01, 0, 0x00},
		{0xfe, 1, 0xff},
		{0xff, 0, 0xfe},
		{0x42, 3, 0x43}, // only the low bit of bit is used
	}
	for _, tt := range test {
		assert.Equal(t, tt.exp, SetLSB(tt.b, tt.bit))
	}
}
