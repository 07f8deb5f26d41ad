package recogniser

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-detect/dsp/wavelet"
)

// Validate checks the spec for internal consistency. It is called by
// [Parse]; detection code calls it again defensively so that a
// hand-built Spec cannot reach the pipeline unchecked. Failures wrap
// [ErrInvalidSpec].
func (s *Spec) Validate() error {
	if s.Species == "" {
		return fmt.Errorf("%w: species is required", ErrInvalidSpec)
	}

	if s.SampleRate <= 0 || math.IsInf(s.SampleRate, 0) || math.IsNaN(s.SampleRate) {
		return fmt.Errorf("%w: sample rate must be positive and finite: %v", ErrInvalidSpec, s.SampleRate)
	}

	if _, err := wavelet.ParseFamily(s.Wavelet); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}

	if s.Depth < 1 || s.Depth > MaxDepth {
		return fmt.Errorf("%w: depth must be in [1,%d]: %d", ErrInvalidSpec, MaxDepth, s.Depth)
	}

	if s.FrameLength <= 0 || math.IsInf(s.FrameLength, 0) || math.IsNaN(s.FrameLength) {
		return fmt.Errorf("%w: frame length must be positive and finite: %v", ErrInvalidSpec, s.FrameLength)
	}

	if len(s.CallTypes) == 0 {
		return fmt.Errorf("%w: at least one call type is required", ErrInvalidSpec)
	}

	for i := range s.CallTypes {
		if err := s.validateCallType(&s.CallTypes[i]); err != nil {
			return fmt.Errorf("call type %d (%q): %w", i, s.CallTypes[i].Name, err)
		}
	}

	return nil
}

func (s *Spec) validateCallType(ct *CallType) error {
	if ct.Name == "" {
		return fmt.Errorf("%w: call type name is required", ErrInvalidSpec)
	}

	if len(ct.Nodes) == 0 {
		return fmt.Errorf("%w: no subband nodes of interest", ErrInvalidSpec)
	}

	count := s.SubbandCount()
	seen := make(map[int]bool, len(ct.Nodes))

	for _, n := range ct.Nodes {
		if n < 0 || n >= count {
			return fmt.Errorf("%w: node %d outside [0,%d) for depth %d",
				ErrInvalidSpec, n, count, s.Depth)
		}

		if seen[n] {
			return fmt.Errorf("%w: duplicate node %d", ErrInvalidSpec, n)
		}

		seen[n] = true
	}

	if len(ct.Thresholds) != len(ct.Nodes) {
		return fmt.Errorf("%w: %d thresholds for %d nodes",
			ErrInvalidSpec, len(ct.Thresholds), len(ct.Nodes))
	}

	for i, thr := range ct.Thresholds {
		if !(thr > 0) || math.IsInf(thr, 0) {
			return fmt.Errorf("%w: threshold %d must be positive and finite: %v",
				ErrInvalidSpec, i, thr)
		}
	}

	if !(ct.MinSubbandFraction > 0) || ct.MinSubbandFraction > 1 {
		return fmt.Errorf("%w: min subband fraction must be in (0,1]: %v",
			ErrInvalidSpec, ct.MinSubbandFraction)
	}

	if ct.MinDuration < 0 || math.IsNaN(ct.MinDuration) {
		return fmt.Errorf("%w: min duration must be >= 0: %v", ErrInvalidSpec, ct.MinDuration)
	}

	if ct.MaxGap < 0 || math.IsNaN(ct.MaxGap) {
		return fmt.Errorf("%w: max gap must be >= 0: %v", ErrInvalidSpec, ct.MaxGap)
	}

	if ct.MaxDuration != 0 && ct.MaxDuration <= ct.MinDuration {
		return fmt.Errorf("%w: max duration %v must exceed min duration %v",
			ErrInvalidSpec, ct.MaxDuration, ct.MinDuration)
	}

	if ct.FreqRange != [2]float64{} {
		low, high := ct.FreqRange[0], ct.FreqRange[1]
		if low < 0 || low >= high || high > s.SampleRate/2 {
			return fmt.Errorf("%w: freq range [%v,%v] must satisfy 0 <= low < high <= nyquist (%v)",
				ErrInvalidSpec, low, high, s.SampleRate/2)
		}
	}

	return nil
}
