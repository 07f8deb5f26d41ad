package recogniser

import "math"

// Default values applied when a filter file omits optional fields.
const (
	DefaultWavelet            = "db2"
	DefaultFrameLength        = 1.0
	DefaultMinSubbandFraction = 0.5

	// MaxDepth bounds the wavelet-packet decomposition depth. Depth 12
	// already yields 4096 subbands; deeper trees serve no recogniser.
	MaxDepth = 12
)

// Spec is a loaded, validated recogniser definition.
//
// A Spec is immutable after load: detection code only ever reads it, so
// a single Spec may back arbitrarily many concurrent detection calls.
type Spec struct {
	// Species is the display name of the target species.
	Species string

	// SampleRate is the audio sample rate (Hz) the recogniser was
	// authored at. Thresholds are only meaningful for audio captured or
	// resampled to this rate.
	SampleRate float64

	// Wavelet names the wavelet family used for decomposition.
	Wavelet string

	// Depth is the wavelet-packet decomposition depth, producing
	// 2^Depth subbands.
	Depth int

	// FrameLength is the analysis window length in seconds.
	FrameLength float64

	// CallTypes holds one detector definition per call type. Every
	// call type is scored against the same decomposition.
	CallTypes []CallType
}

// CallType describes how to detect one call type of the target species.
type CallType struct {
	// Name labels the call type ("M", "F", "trill", ...).
	Name string

	// FreqRange is the [low, high] frequency band of the call in Hz.
	FreqRange [2]float64

	// Nodes lists the frequency-ordered subband indices of interest,
	// each in [0, 2^Depth).
	Nodes []int

	// Thresholds holds one mean-square power threshold per entry in
	// Nodes. A subband votes for presence in a frame when its mean
	// power exceeds its threshold.
	Thresholds []float64

	// MinSubbandFraction is the fraction of Nodes that must exceed
	// threshold for a frame to count as a detection, in (0, 1].
	MinSubbandFraction float64

	// MinDuration discards merged intervals shorter than this many
	// seconds.
	MinDuration float64

	// MaxGap merges detections separated by no more than this many
	// seconds of silence.
	MaxGap float64

	// MaxDuration splits intervals longer than this many seconds.
	// Zero disables splitting.
	MaxDuration float64
}

// SubbandCount returns the number of subbands the spec's decomposition
// produces.
func (s *Spec) SubbandCount() int {
	return 1 << s.Depth
}

// FreqRange returns the union of all call-type frequency ranges. The
// boolean is false when no call type declares a range.
func (s *Spec) FreqRange() (low, high float64, ok bool) {
	low = math.Inf(1)
	high = math.Inf(-1)

	for _, ct := range s.CallTypes {
		if ct.FreqRange[1] <= 0 {
			continue
		}

		ok = true
		low = math.Min(low, ct.FreqRange[0])
		high = math.Max(high, ct.FreqRange[1])
	}

	if !ok {
		return 0, 0, false
	}

	return low, high, true
}
