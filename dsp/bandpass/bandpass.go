// Package bandpass provides a zero-phase FFT-domain band limiter.
//
// Detection pipelines use it to discard spectral content outside a
// recogniser's target frequency range before decomposition. Filtering
// in the frequency domain keeps the operation phase-neutral, so
// detection timing is not skewed the way a causal IIR bandpass would
// skew it.
package bandpass

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// Errors returned by Apply.
var (
	ErrEmptyInput   = errors.New("bandpass: empty input")
	ErrInvalidRange = errors.New("bandpass: invalid frequency range")
)

// Apply returns a copy of signal with spectral content outside
// [lowHz, highHz] removed. The input is zero-padded to a power-of-two
// FFT size and never modified.
func Apply(signal []float64, sampleRate, lowHz, highHz float64) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}

	if sampleRate <= 0 || math.IsNaN(sampleRate) {
		return nil, fmt.Errorf("%w: sample rate %v", ErrInvalidRange, sampleRate)
	}

	nyquist := sampleRate / 2
	if lowHz < 0 || lowHz >= highHz || highHz > nyquist {
		return nil, fmt.Errorf("%w: [%v,%v] with nyquist %v", ErrInvalidRange, lowHz, highHz, nyquist)
	}

	fftSize := nextPowerOf2(len(signal))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("bandpass: failed to create FFT plan: %w", err)
	}

	buf := make([]complex128, fftSize)
	for i, v := range signal {
		buf[i] = complex(v, 0)
	}

	if err := plan.Forward(buf, buf); err != nil {
		return nil, fmt.Errorf("bandpass: forward FFT failed: %w", err)
	}

	// Zero all bins outside the band, mirroring onto the negative
	// frequencies to keep the spectrum conjugate-symmetric.
	binHz := sampleRate / float64(fftSize)
	half := fftSize / 2

	for k := 0; k <= half; k++ {
		freq := float64(k) * binHz
		if freq >= lowHz && freq <= highHz {
			continue
		}

		buf[k] = 0
		if k > 0 && k < half {
			buf[fftSize-k] = 0
		}
	}

	if err := plan.Inverse(buf, buf); err != nil {
		return nil, fmt.Errorf("bandpass: inverse FFT failed: %w", err)
	}

	out := make([]float64, len(signal))
	for i := range out {
		out[i] = real(buf[i])
	}

	return out, nil
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}

	return size
}
