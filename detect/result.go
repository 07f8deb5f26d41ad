package detect

// Result is the outcome of analysing one buffer.
type Result struct {
	// Confidence is the buffer-level presence confidence in [0, 1]:
	// the maximum interval confidence, or 0 when no interval survived
	// aggregation. Any strong detection anywhere in the buffer counts.
	Confidence float64

	// Intervals lists the surviving detections ordered by start time,
	// for callers that want per-segment timing.
	Intervals []Interval
}

// Detected reports whether the confidence reached the given decision
// threshold.
func (r Result) Detected(threshold float64) bool {
	return len(r.Intervals) > 0 && r.Confidence >= threshold
}

// report derives the buffer-level result from the merged intervals.
func report(intervals []Interval) Result {
	res := Result{Intervals: intervals}

	for _, iv := range intervals {
		if iv.Confidence > res.Confidence {
			res.Confidence = iv.Confidence
		}
	}

	return res
}
