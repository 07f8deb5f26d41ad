// Package testutil provides deterministic signal generators and
// tolerance helpers shared by the package tests.
package testutil

import (
	"math"
	"math/rand"
)

// Sine generates a deterministic sine wave.
func Sine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate

	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out
}

// Noise generates white noise with a fixed seed for reproducibility.
func Noise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))

	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out
}

// Silence generates an all-zero signal.
func Silence(length int) []float64 {
	return make([]float64, length)
}

// ToneBurst generates a signal of length samples that is silent except
// for a sine tone between startSec and endSec.
func ToneBurst(freqHz, sampleRate, amplitude, startSec, endSec float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate

	lo := int(startSec * sampleRate)
	if lo < 0 {
		lo = 0
	}

	hi := int(endSec * sampleRate)
	if hi > length {
		hi = length
	}

	for i := lo; i < hi; i++ {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out
}
