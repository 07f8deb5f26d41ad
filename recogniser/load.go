package recogniser

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/cwbudde/algo-detect/dsp/wavelet"
)

// legacyDepth is the decomposition depth implied by legacy filter files,
// which always number their nodes within a depth-5 packet tree.
const legacyDepth = 5

// rawSpec mirrors the on-disk document. Current files use lowercase
// keys; legacy files use the capitalised Filters/WaveletParams layout.
type rawSpec struct {
	Species     string        `yaml:"species"`
	SampleRate  float64       `yaml:"samplerate"`
	Wavelet     string        `yaml:"wavelet"`
	Depth       int           `yaml:"depth"`
	FrameLength float64       `yaml:"framelength"`
	CallTypes   []rawCallType `yaml:"calltypes"`

	LegacySampleRate float64       `yaml:"SampleRate"`
	LegacyFilters    []rawCallType `yaml:"Filters"`
}

type rawCallType struct {
	Name               string    `yaml:"calltype"`
	FreqRange          []float64 `yaml:"freqrange"`
	Nodes              []int     `yaml:"nodes"`
	Thresholds         []float64 `yaml:"thresholds"`
	Threshold          *float64  `yaml:"threshold"`
	MinSubbandFraction *float64  `yaml:"minsubbandfraction"`
	MinDuration        *float64  `yaml:"minduration"`
	MaxGap             *float64  `yaml:"maxgap"`
	MaxDuration        *float64  `yaml:"maxduration"`

	LegacyFreqRange []float64         `yaml:"FreqRange"`
	LegacyTimeRange []float64         `yaml:"TimeRange"`
	LegacyParams    *rawWaveletParams `yaml:"WaveletParams"`
}

// rawWaveletParams is the legacy per-call-type wavelet block. The
// training-time M parameter is accepted but unused at inference.
type rawWaveletParams struct {
	Thr   float64 `yaml:"thr"`
	M     float64 `yaml:"M"`
	Nodes []int   `yaml:"nodes"`
}

// Parse decodes and validates a recogniser definition from data.
// Failures wrap [ErrInvalidSpec].
func Parse(data []byte) (*Spec, error) {
	var raw rawSpec
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}

	spec, err := raw.normalise()
	if err != nil {
		return nil, err
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}

	return spec, nil
}

// Load reads a full recogniser definition from r and parses it.
func Load(r io.Reader) (*Spec, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read: %v", ErrInvalidSpec, err)
	}

	return Parse(data)
}

// normalise resolves legacy fields and fills defaults. Validation of the
// resulting values happens separately in Validate.
func (raw *rawSpec) normalise() (*Spec, error) {
	spec := &Spec{
		Species:     raw.Species,
		SampleRate:  raw.SampleRate,
		Wavelet:     raw.Wavelet,
		Depth:       raw.Depth,
		FrameLength: raw.FrameLength,
	}

	if spec.SampleRate == 0 {
		spec.SampleRate = raw.LegacySampleRate
	}

	if spec.Wavelet == "" {
		spec.Wavelet = DefaultWavelet
	}

	if spec.FrameLength == 0 {
		spec.FrameLength = DefaultFrameLength
	}

	rawCTs := raw.CallTypes
	legacy := false

	if len(rawCTs) == 0 && len(raw.LegacyFilters) > 0 {
		rawCTs = raw.LegacyFilters
		legacy = true
	}

	if legacy && spec.Depth == 0 {
		spec.Depth = legacyDepth
	}

	for i := range rawCTs {
		ct, err := rawCTs[i].normalise(spec.Depth)
		if err != nil {
			return nil, fmt.Errorf("call type %d: %w", i, err)
		}

		spec.CallTypes = append(spec.CallTypes, ct)
	}

	return spec, nil
}

func (raw *rawCallType) normalise(depth int) (CallType, error) {
	ct := CallType{
		Name:               raw.Name,
		Nodes:              raw.Nodes,
		Thresholds:         raw.Thresholds,
		MinSubbandFraction: DefaultMinSubbandFraction,
	}

	if raw.MinSubbandFraction != nil {
		ct.MinSubbandFraction = *raw.MinSubbandFraction
	}

	fr := raw.FreqRange
	if len(fr) == 0 {
		fr = raw.LegacyFreqRange
	}

	switch len(fr) {
	case 0:
		// No band limit declared.
	case 2:
		ct.FreqRange = [2]float64{fr[0], fr[1]}
	default:
		return ct, fmt.Errorf("%w: freqrange must have 2 entries, got %d", ErrInvalidSpec, len(fr))
	}

	if len(ct.Nodes) == 0 && raw.LegacyParams != nil {
		nodes, err := convertLegacyNodes(raw.LegacyParams.Nodes, depth)
		if err != nil {
			return ct, err
		}

		ct.Nodes = nodes
	}

	if len(ct.Thresholds) == 0 {
		var thr float64

		switch {
		case raw.Threshold != nil:
			thr = *raw.Threshold
		case raw.LegacyParams != nil:
			thr = raw.LegacyParams.Thr
		}

		if thr != 0 {
			ct.Thresholds = make([]float64, len(ct.Nodes))
			for i := range ct.Thresholds {
				ct.Thresholds[i] = thr
			}
		}
	}

	if err := raw.normaliseTimes(&ct); err != nil {
		return ct, err
	}

	return ct, nil
}

// normaliseTimes resolves the merge parameters, preferring explicit
// fields over the legacy TimeRange tuple
// [min-duration, max-duration, typical-duration, max-gap].
func (raw *rawCallType) normaliseTimes(ct *CallType) error {
	if len(raw.LegacyTimeRange) > 0 {
		if len(raw.LegacyTimeRange) != 4 {
			return fmt.Errorf("%w: TimeRange must have 4 entries, got %d",
				ErrInvalidSpec, len(raw.LegacyTimeRange))
		}

		ct.MinDuration = raw.LegacyTimeRange[0]
		ct.MaxDuration = raw.LegacyTimeRange[1]
		ct.MaxGap = raw.LegacyTimeRange[3]
	}

	if raw.MinDuration != nil {
		ct.MinDuration = *raw.MinDuration
	}

	if raw.MaxGap != nil {
		ct.MaxGap = *raw.MaxGap
	}

	if raw.MaxDuration != nil {
		ct.MaxDuration = *raw.MaxDuration
	}

	return nil
}

// convertLegacyNodes maps legacy packet-tree node numbers (root at 0,
// level d spanning [2^d-1, 2^(d+1)-2]) onto frequency-ordered leaf
// indices for the given depth. Only leaf nodes are accepted.
func convertLegacyNodes(nodes []int, depth int) ([]int, error) {
	if depth <= 0 {
		return nil, fmt.Errorf("%w: legacy nodes need a decomposition depth", ErrInvalidSpec)
	}

	first := 1<<depth - 1
	count := 1 << depth

	out := make([]int, len(nodes))

	for i, n := range nodes {
		natural := n - first
		if natural < 0 || natural >= count {
			return nil, fmt.Errorf("%w: legacy node %d is not a depth-%d leaf",
				ErrInvalidSpec, n, depth)
		}

		out[i] = wavelet.FreqOrder(natural, depth)
	}

	return out, nil
}
