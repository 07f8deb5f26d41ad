package frame_test

import (
	"fmt"

	"github.com/cwbudde/algo-detect/stats/frame"
)

func ExampleCalculate() {
	s := frame.Calculate([]float64{3, 4})
	fmt.Printf("energy=%.0f power=%.1f rms=%.4f peak=%.0f\n", s.Energy, s.Power, s.RMS, s.Peak)

	// Output:
	// energy=25 power=12.5 rms=3.5355 peak=4
}

func ExampleSplit() {
	frames := frame.Split([]float64{1, 2, 3, 4, 5}, 2)
	fmt.Printf("frames=%d last=%v\n", len(frames), frames[len(frames)-1])

	// Output:
	// frames=3 last=[5]
}
