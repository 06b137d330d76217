package lsbstat

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, Report{}, Analyze(nil))
	})

	t.Run("single pair", func(t *testing.T) {
		r := Analyze(make([]byte, 100))
		assert.Equal(t, 100, r.Samples)
		assert.Zero(t, r.OnesRatio)
		assert.InDelta(t, 50.0, r.ChiSquare, 1e-9)
		assert.Zero(t, r.DegreesOfFreedom)
		assert.Zero(t, r.PValue)
	})

	t.Run("even pairs", func(t *testing.T) {
		pixels := make([]byte, 0, 256*4)
		for v := range 256 {
			for range 4 {
				pixels = append(pixels, byte(v))
			}
		}
		r := Analyze(pixels)
		assert.InDelta(t, 0.5, r.OnesRatio, 1e-9)
		assert.InDelta(t, 0.0, r.ChiSquare, 1e-9)
		assert.Equal(t, 127, r.DegreesOfFreedom)
		assert.InDelta(t, 1.0, r.PValue, 1e-9)
	})

	t.Run("uneven pairs", func(t *testing.T) {
		// only even values: every pair is maximally unbalanced
		pixels := make([]byte, 0, 128*10)
		for v := 0; v < 256; v += 2 {
			for range 10 {
				pixels = append(pixels, byte(v))
			}
		}
		r := Analyze(pixels)
		assert.Zero(t, r.OnesRatio)
		assert.InDelta(t, 640.0, r.ChiSquare, 1e-9)
		assert.Less(t, r.PValue, 1e-6)
	})

	t.Run("random lsb", func(t *testing.T) {
		rd := rand.New(rand.NewSource(1))
		pixels := make([]byte, 1<<16)
		for i := range pixels {
			pixels[i] = byte(rd.Intn(256))
		}
		r := Analyze(pixels)
		assert.InDelta(t, 0.5, r.OnesRatio, 0.02)
		assert.Greater(t, r.PValue, 0.0)
	})
}
