package bitconv

// Bit returns bit i of b as 0 or 1, numbering 0 as the most significant bit.
func Bit(b byte, i int) byte {
	return (b >> uint(7-i)) & 1
}

// SetLSB replaces the least significant bit of b with bit.
func SetLSB(b byte, bit byte) byte {
	return b&0xfe | bit&1
}

func BytesToBools(b []byte) []bool {
	bits := make([]bool, 0, len(b)*8)
	for _, bb := range b {
		for i := range 8 {
			bits = append(bits, Bit(bb, i) == 1)
		}
	}
	return bits
}

func BoolsToBytes(bits []bool) []byte {
	// trailing bits of the last byte stay zero
	out := make([]byte, (len(bits)+7)/8)
	for i, bit := range bits {
		if bit {
			out[i/8] |= 1 << uint(7-i%8)
		}
	}
	return out
}
