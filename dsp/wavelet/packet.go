package wavelet

import (
	"errors"
	"fmt"
)

// ErrInsufficientData reports a buffer too short for the requested
// decomposition depth. Callers can recover by padding, skipping, or
// waiting for more samples.
var ErrInsufficientData = errors.New("wavelet: insufficient data")

// Decompose performs a depth-level wavelet-packet decomposition of
// signal and returns the 2^depth subband signals ordered by increasing
// center frequency.
//
// The input must hold at least 2^depth samples; shorter buffers fail
// with an error wrapping [ErrInsufficientData]. Odd-length node signals
// are extended by repeating their final sample, so any length above the
// minimum is accepted. The input slice is never modified.
func Decompose(signal []float64, depth int, f Family) ([][]float64, error) {
	if depth < 1 {
		return nil, fmt.Errorf("wavelet: depth must be >= 1: %d", depth)
	}

	minLen := 1 << depth
	if len(signal) < minLen {
		return nil, fmt.Errorf("%w: %d samples, need %d for depth %d",
			ErrInsufficientData, len(signal), minLen, depth)
	}

	lo, hi := f.Filters()

	// Natural (packet-tree) order while descending the tree.
	nodes := [][]float64{signal}

	for level := 0; level < depth; level++ {
		next := make([][]float64, 0, 2*len(nodes))

		for _, node := range nodes {
			a, d := analyse(node, lo, hi)
			next = append(next, a, d)
		}

		nodes = next
	}

	// Undo spectral mirroring: place each leaf at its frequency rank.
	out := make([][]float64, len(nodes))
	for natural, leaf := range nodes {
		out[FreqOrder(natural, depth)] = leaf
	}

	return out, nil
}

// analyse runs one analysis step: periodized convolution with the
// lowpass and highpass filters followed by decimation by two.
func analyse(x, lo, hi []float64) (approx, detail []float64) {
	n := len(x)
	if n%2 == 1 {
		// Extend by repeating the last sample to keep decimation clean.
		ext := make([]float64, n+1)
		copy(ext, x)
		ext[n] = x[n-1]
		x = ext
		n++
	}

	half := n / 2
	approx = make([]float64, half)
	detail = make([]float64, half)

	for k := 0; k < half; k++ {
		var sa, sd float64

		base := 2 * k
		for j := range lo {
			idx := base + j
			if idx >= n {
				idx -= n
			}

			v := x[idx]
			sa += lo[j] * v
			sd += hi[j] * v
		}

		approx[k] = sa
		detail[k] = sd
	}

	return approx, detail
}

// FreqOrder maps a natural (packet-tree) leaf index to its rank in
// frequency order for the given depth. Each highpass branch mirrors the
// spectrum of its subtree, so the rank bits are the running XOR of the
// path bits from the root.
func FreqOrder(natural, depth int) int {
	rank := 0
	carry := 0

	for i := depth - 1; i >= 0; i-- {
		carry ^= (natural >> i) & 1
		rank |= carry << i
	}

	return rank
}

// BandRange returns the frequency band in Hz covered by the
// frequency-ordered subband index at the given depth and sample rate.
func BandRange(index, depth int, sampleRate float64) (low, high float64) {
	width := sampleRate / 2 / float64(int(1)<<depth)
	low = float64(index) * width

	return low, low + width
}

// MinLength returns the minimum buffer length accepted by [Decompose]
// for the given depth.
func MinLength(depth int) int {
	if depth < 1 {
		return 0
	}

	return 1 << depth
}
