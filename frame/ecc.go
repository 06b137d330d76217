package frame

import (
	"math/rand"

	"github.com/yyyoichi/bitstream-go"
	"github.com/yyyoichi/golay"
)

var (
	DefaultShuffleSeed int64 = 1234567890
)

type (
	// Option selects the error correction applied by LengthPrefix.
	Option func(*LengthPrefix)
	codec  interface {
		encode(bits []bool) []bool
		decode(bits []bool, size int) []bool
		encodedLen(size int) int
	}
)

// WithoutECC stores header and payload bits as they are.
func WithoutECC() Option {
	return func(lp *LengthPrefix) {
		lp.c = withoutecc{}
	}
}

// WithGolay protects header and payload with a Golay code.
// The coded bits are deterministically shuffled with seed so that a run of
// damaged container bytes spreads over many code words.
func WithGolay(seed int64) Option {
	return func(lp *LengthPrefix) {
		lp.c = shuffledgolay(seed)
	}
}

var _ codec = (*shuffledgolay)(nil)

type shuffledgolay int64

func (sg shuffledgolay) encode(bits []bool) []bool {
	if len(bits) == 0 {
		return nil
	}
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, v := range bits {
		w.WriteBool(v)
	}
	var encoded []uint64
	enc := golay.NewEncoder(&encoded)
	_ = enc.Encode(w.Data(), len(bits))
	encodedLen := enc.Bits()
	// shuffle
	index := sg.generatePermutation(encodedLen)

	r := bitstream.NewBitReader(encoded, 0, 0)
	out := make([]bool, encodedLen)
	for i := range out {
		out[i], _ = r.ReadBitAt(index[i])
	}
	return out
}

func (sg shuffledgolay) decode(bits []bool, size int) []bool {
	if size == 0 {
		return nil
	}
	// reverse shuffle: create same permutation then apply inverse
	index := sg.generatePermutation(len(bits))

	w := bitstream.NewBitWriter[uint64](0, 0)
	for i := range bits {
		w.WriteBitAt(index[i], bits[i])
	}

	var decoded []uint64
	dec := golay.NewDecoder(w.Data(), w.Bits())
	_ = dec.Decode(&decoded)

	r := bitstream.NewBitReader(decoded, 0, 0)
	r.SetBits(size)
	out := make([]bool, size)
	for i := range out {
		out[i], _ = r.ReadBitAt(i)
	}
	return out
}

func (sg shuffledgolay) encodedLen(size int) int {
	if size == 0 {
		return 0
	}
	return golay.EncodedBits(size)
}

func (sg shuffledgolay) generatePermutation(length int) []int {
	index := make([]int, length)
	for i := range index {
		index[i] = i
	}
	seed := int64(sg)
	rd := rand.New(rand.NewSource(seed))
	rd.Shuffle(length, func(i, j int) {
		index[i], index[j] = index[j], index[i]
	})
	return index
}

var _ codec = (*withoutecc)(nil)

type withoutecc struct{}

func (we withoutecc) encode(bits []bool) []bool {
	return bits
}

func (we withoutecc) decode(bits []bool, size int) []bool {
	return bits[:size]
}

func (we withoutecc) encodedLen(size int) int {
	return size
}
