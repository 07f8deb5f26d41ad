package detect

import "fmt"

// Buffer is one mono audio segment handed to the pipeline. The caller
// owns the sample slice for the duration of an Analyse call; the
// pipeline never modifies or retains it.
type Buffer struct {
	SampleRate float64
	Samples    []float64
}

// Duration returns the buffer length in seconds.
func (b Buffer) Duration() float64 {
	if b.SampleRate <= 0 {
		return 0
	}

	return float64(len(b.Samples)) / b.SampleRate
}

// FromPCM16 converts interleaved 16-bit PCM into a mono Buffer, scaling
// samples to [-1, 1) and averaging across channels.
func FromPCM16(samples []int16, sampleRate float64, channels int) (Buffer, error) {
	if channels <= 0 {
		return Buffer{}, fmt.Errorf("detect: channels must be positive: %d", channels)
	}

	if len(samples)%channels != 0 {
		return Buffer{}, fmt.Errorf("detect: %d samples not divisible by %d channels",
			len(samples), channels)
	}

	const scale = 1.0 / 32768.0

	frames := len(samples) / channels
	mono := make([]float64, frames)

	for i := 0; i < frames; i++ {
		var sum float64
		for c := 0; c < channels; c++ {
			sum += float64(samples[i*channels+c])
		}

		mono[i] = sum * scale / float64(channels)
	}

	return Buffer{SampleRate: sampleRate, Samples: mono}, nil
}
