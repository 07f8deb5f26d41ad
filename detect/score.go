package detect

import (
	"fmt"

	"github.com/cwbudde/algo-detect/recogniser"
	"github.com/cwbudde/algo-detect/stats/frame"
)

// Window is the detection state of one analysis frame for a single
// call type.
type Window struct {
	// Index is the frame position within the buffer.
	Index int

	// Start and End bound the frame in seconds.
	Start, End float64

	// Fraction is the share of subbands of interest whose mean power
	// exceeded their threshold, in [0, 1].
	Fraction float64

	// Vote reports whether Fraction reached the call type's minimum
	// subband fraction.
	Vote bool
}

// scoreCallType produces one Window per frame of the decomposition for
// the given call type. framePerSub is the frame length in subband
// samples, subRate the subband sample rate in Hz.
//
// The node set is validated at load time; the emptiness check here is a
// defensive second line so a hand-built spec cannot divide by zero.
func scoreCallType(subbands [][]float64, ct *recogniser.CallType, framePerSub int, subRate float64) ([]Window, error) {
	if len(ct.Nodes) == 0 {
		return nil, fmt.Errorf("%w: call type %q has no subband nodes of interest",
			recogniser.ErrInvalidSpec, ct.Name)
	}

	for _, n := range ct.Nodes {
		if n < 0 || n >= len(subbands) {
			return nil, fmt.Errorf("%w: node %d outside decomposition of %d subbands",
				recogniser.ErrInvalidSpec, n, len(subbands))
		}
	}

	subLen := len(subbands[0])
	numFrames := frame.Count(subLen, framePerSub)
	windows := make([]Window, 0, numFrames)

	for t := 0; t < numFrames; t++ {
		lo := t * framePerSub

		hi := lo + framePerSub
		if hi > subLen {
			hi = subLen
		}

		var exceeding int

		for i, node := range ct.Nodes {
			if frame.Power(subbands[node][lo:hi]) > ct.Thresholds[i] {
				exceeding++
			}
		}

		fraction := float64(exceeding) / float64(len(ct.Nodes))

		windows = append(windows, Window{
			Index:    t,
			Start:    float64(lo) / subRate,
			End:      float64(hi) / subRate,
			Fraction: fraction,
			Vote:     fraction >= ct.MinSubbandFraction,
		})
	}

	return windows, nil
}
