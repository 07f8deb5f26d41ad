// Package frame computes energy statistics over fixed-length analysis
// frames, the per-window quantities a detection scorer compares against
// recogniser thresholds.
package frame

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Stats holds energy statistics for one analysis frame.
type Stats struct {
	Length int
	Energy float64 // sum of squares
	Power  float64 // energy / length
	RMS    float64
	Peak   float64 // max absolute amplitude
}

// Calculate computes the frame statistics in a single pass. An empty
// frame yields the zero Stats.
func Calculate(frame []float64) Stats {
	n := len(frame)
	if n == 0 {
		return Stats{}
	}

	squares := make([]float64, n)
	vecmath.MulBlock(squares, frame, frame)

	// Kahan summation keeps the energy stable for long frames.
	var sum, c float64

	var peakSq float64

	for _, s := range squares {
		y := s - c
		t := sum + y
		c = (t - sum) - y
		sum = t

		if s > peakSq {
			peakSq = s
		}
	}

	power := sum / float64(n)

	return Stats{
		Length: n,
		Energy: sum,
		Power:  power,
		RMS:    math.Sqrt(power),
		Peak:   math.Sqrt(peakSq),
	}
}

// Power returns the mean-square power of the frame without computing
// the full Stats. Returns 0 for an empty frame.
func Power(frame []float64) float64 {
	if len(frame) == 0 {
		return 0
	}

	var sum, c float64
	for _, x := range frame {
		y := x*x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(frame))
}

// Split subdivides signal into frames of frameLen samples. The returned
// frames alias the input; a trailing partial frame is kept. frameLen
// must be positive.
func Split(signal []float64, frameLen int) [][]float64 {
	if frameLen <= 0 || len(signal) == 0 {
		return nil
	}

	frames := make([][]float64, 0, Count(len(signal), frameLen))

	for start := 0; start < len(signal); start += frameLen {
		end := start + frameLen
		if end > len(signal) {
			end = len(signal)
		}

		frames = append(frames, signal[start:end])
	}

	return frames
}

// Count returns the number of frames Split produces for a signal of n
// samples, including a trailing partial frame.
func Count(n, frameLen int) int {
	if frameLen <= 0 || n <= 0 {
		return 0
	}

	return (n + frameLen - 1) / frameLen
}
