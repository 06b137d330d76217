// Package lsbstat summarizes the least significant bit plane of pixel data.
package lsbstat

import (
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Report describes the LSB plane of a byte sequence.
type Report struct {
	Samples int
	// OnesRatio is the share of bytes whose LSB is set.
	OnesRatio float64
	// ChiSquare is the pairs-of-values statistic comparing the counts of
	// each byte value 2k with 2k+1.
	ChiSquare        float64
	DegreesOfFreedom int
	// PValue close to 1 means the pairs are evened out, as sequential LSB
	// embedding leaves them. It is 0 when there are too few pairs to test.
	PValue float64
}

// Analyze computes the LSB report of pixels.
func Analyze(pixels []byte) Report {
	var hist [256]float64
	for _, b := range pixels {
		hist[b]++
	}

	r := Report{Samples: len(pixels)}
	if r.Samples == 0 {
		return r
	}

	var evens, odds float64
	pairs := 0
	for k := 0; k < 256; k += 2 {
		evens += hist[k]
		odds += hist[k+1]
		expected := (hist[k] + hist[k+1]) / 2
		if expected == 0 {
			continue
		}
		d := hist[k] - expected
		r.ChiSquare += d * d / expected
		pairs++
	}
	r.OnesRatio = stat.Mean([]float64{0, 1}, []float64{evens, odds})

	r.DegreesOfFreedom = pairs - 1
	if r.DegreesOfFreedom < 1 {
		r.DegreesOfFreedom = 0
		return r
	}
	r.PValue = distuv.ChiSquared{K: float64(r.DegreesOfFreedom)}.Survival(r.ChiSquare)
	return r
}
