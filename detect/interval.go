package detect

import "github.com/cwbudde/algo-detect/recogniser"

// Interval is one merged detection event.
type Interval struct {
	// Start and End bound the event in seconds from the buffer start.
	Start, End float64

	// Confidence is the mean window fraction across the interval,
	// in [0, 1].
	Confidence float64

	// CallType names the call type that produced the detection.
	CallType string

	// FreqLow and FreqHigh annotate the call type's frequency band in
	// Hz, when the recogniser declares one.
	FreqLow, FreqHigh float64
}

// Duration returns the interval length in seconds.
func (iv Interval) Duration() float64 {
	return iv.End - iv.Start
}

// aggregate merges window votes into intervals following the call
// type's rules: bridge false gaps up to MaxGap, split runs longer than
// MaxDuration at the duration boundary, and discard anything shorter
// than MinDuration.
func aggregate(windows []Window, ct *recogniser.CallType) []Interval {
	var intervals []Interval

	first, last := -1, -1

	for i, w := range windows {
		if !w.Vote {
			continue
		}

		if first < 0 {
			first, last = i, i
			continue
		}

		// A gap of exactly MaxGap still merges; only longer gaps split.
		if w.Start-windows[last].End > ct.MaxGap {
			intervals = append(intervals, emit(windows[first:last+1], ct)...)
			first, last = i, i

			continue
		}

		last = i
	}

	if first >= 0 {
		intervals = append(intervals, emit(windows[first:last+1], ct)...)
	}

	return intervals
}

// emit converts one bridged run of windows into intervals, applying the
// maximum-duration split and the minimum-duration cut.
func emit(run []Window, ct *recogniser.CallType) []Interval {
	start := run[0].Start
	end := run[len(run)-1].End

	var pieces [][2]float64

	if ct.MaxDuration > 0 && end-start > ct.MaxDuration {
		for lo := start; lo < end; lo += ct.MaxDuration {
			hi := lo + ct.MaxDuration
			if hi > end {
				hi = end
			}

			pieces = append(pieces, [2]float64{lo, hi})
		}
	} else {
		pieces = [][2]float64{{start, end}}
	}

	intervals := make([]Interval, 0, len(pieces))

	for _, p := range pieces {
		if p[1]-p[0] < ct.MinDuration {
			continue
		}

		intervals = append(intervals, Interval{
			Start:      p[0],
			End:        p[1],
			Confidence: runConfidence(run, p[0], p[1]),
			CallType:   ct.Name,
			FreqLow:    ct.FreqRange[0],
			FreqHigh:   ct.FreqRange[1],
		})
	}

	return intervals
}

// runConfidence averages the window fractions over [lo, hi), bridged
// gap windows included, so sparse intervals score lower than solid
// ones.
func runConfidence(run []Window, lo, hi float64) float64 {
	var sum float64

	var n int

	for _, w := range run {
		if w.End <= lo || w.Start >= hi {
			continue
		}

		sum += w.Fraction
		n++
	}

	if n == 0 {
		return 0
	}

	return clamp01(sum / float64(n))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}

	if v > 1 {
		return 1
	}

	return v
}
