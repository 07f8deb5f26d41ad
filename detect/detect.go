package detect

import (
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-detect/dsp/bandpass"
	"github.com/cwbudde/algo-detect/dsp/wavelet"
	"github.com/cwbudde/algo-detect/recogniser"
)

// Recogniser runs the detection pipeline for one loaded species spec.
// It is immutable after construction and safe for concurrent use.
type Recogniser struct {
	spec   *recogniser.Spec
	family wavelet.Family
	cfg    config
}

// New builds a Recogniser from a spec. The spec is validated again
// here, so a failed load is reported once at construction rather than
// on every Analyse call. Errors wrap [recogniser.ErrInvalidSpec].
func New(spec *recogniser.Spec, opts ...Option) (*Recogniser, error) {
	if spec == nil {
		return nil, fmt.Errorf("%w: nil spec", recogniser.ErrInvalidSpec)
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}

	family, err := wavelet.ParseFamily(spec.Wavelet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", recogniser.ErrInvalidSpec, err)
	}

	return &Recogniser{
		spec:   spec,
		family: family,
		cfg:    applyOptions(opts...),
	}, nil
}

// Spec returns the recogniser definition backing this pipeline.
func (r *Recogniser) Spec() *recogniser.Spec {
	return r.spec
}

// MinBufferLength returns the smallest sample count Analyse accepts.
func (r *Recogniser) MinBufferLength() int {
	return wavelet.MinLength(r.spec.Depth)
}

// Analyse runs the full pipeline over one buffer and returns the
// confidence-scored result.
//
// Buffers shorter than [Recogniser.MinBufferLength] fail with an error
// wrapping [wavelet.ErrInsufficientData]. Silence and other
// zero-energy inputs are valid and yield confidence 0. The result is
// deterministic: the same buffer and spec always produce an identical
// result.
func (r *Recogniser) Analyse(buf Buffer) (Result, error) {
	if buf.SampleRate <= 0 || math.IsNaN(buf.SampleRate) {
		return Result{}, fmt.Errorf("detect: buffer sample rate must be positive: %v", buf.SampleRate)
	}

	if len(buf.Samples) < r.MinBufferLength() {
		return Result{}, fmt.Errorf("detect: buffer of %d samples: %w: need %d for depth %d",
			len(buf.Samples), wavelet.ErrInsufficientData, r.MinBufferLength(), r.spec.Depth)
	}

	samples, err := r.bandLimit(buf)
	if err != nil {
		return Result{}, err
	}

	subbands, err := wavelet.Decompose(samples, r.spec.Depth, r.family)
	if err != nil {
		return Result{}, fmt.Errorf("detect: %w", err)
	}

	subRate := buf.SampleRate / float64(r.spec.SubbandCount())

	frameLength := r.spec.FrameLength
	if r.cfg.frameLength > 0 {
		frameLength = r.cfg.frameLength
	}

	framePerSub := int(math.Round(frameLength * subRate))
	if framePerSub < 1 {
		framePerSub = 1
	}

	var intervals []Interval

	for i := range r.spec.CallTypes {
		ct := &r.spec.CallTypes[i]

		windows, err := scoreCallType(subbands, ct, framePerSub, subRate)
		if err != nil {
			return Result{}, err
		}

		intervals = append(intervals, aggregate(windows, ct)...)
	}

	sort.Slice(intervals, func(i, j int) bool {
		if intervals[i].Start != intervals[j].Start {
			return intervals[i].Start < intervals[j].Start
		}

		return intervals[i].CallType < intervals[j].CallType
	})

	return report(intervals), nil
}

// bandLimit restricts the buffer to the spec's combined frequency
// range when one is declared and the option is enabled.
func (r *Recogniser) bandLimit(buf Buffer) ([]float64, error) {
	if !r.cfg.bandpass {
		return buf.Samples, nil
	}

	low, high, ok := r.spec.FreqRange()
	if !ok {
		return buf.Samples, nil
	}

	nyquist := buf.SampleRate / 2
	if high > nyquist {
		high = nyquist
	}

	if low >= high {
		return buf.Samples, nil
	}

	// The whole spectrum is in range; filtering would be a no-op.
	if low <= 0 && high >= nyquist {
		return buf.Samples, nil
	}

	filtered, err := bandpass.Apply(buf.Samples, buf.SampleRate, low, high)
	if err != nil {
		return nil, fmt.Errorf("detect: band limit: %w", err)
	}

	return filtered, nil
}
