package detect_test

import (
	"fmt"

	"github.com/cwbudde/algo-detect/detect"
	"github.com/cwbudde/algo-detect/internal/testutil"
	"github.com/cwbudde/algo-detect/recogniser"
)

func ExampleRecogniser_Analyse() {
	spec := &recogniser.Spec{
		Species:     "Test Kiwi",
		SampleRate:  8000,
		Wavelet:     "db2",
		Depth:       4,
		FrameLength: 1.0,
		CallTypes: []recogniser.CallType{{
			Name:               "tone",
			Nodes:              []int{4}, // 1000-1250 Hz
			Thresholds:         []float64{0.05},
			MinSubbandFraction: 0.5,
			MinDuration:        1.0,
			MaxGap:             1.0,
		}},
	}

	r, err := detect.New(spec)
	if err != nil {
		panic(err)
	}

	res, err := r.Analyse(detect.Buffer{
		SampleRate: 8000,
		Samples:    testutil.Sine(1125, 8000, 0.5, 80000),
	})
	if err != nil {
		panic(err)
	}

	fmt.Printf("confidence=%.2f intervals=%d\n", res.Confidence, len(res.Intervals))

	// Output:
	// confidence=1.00 intervals=1
}
