package frame

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-detect/internal/testutil"
)

const tolerance = 1e-12

func TestCalculate_KnownValues(t *testing.T) {
	s := Calculate([]float64{1, -1, 1, -1})

	if s.Length != 4 {
		t.Fatalf("length %d, want 4", s.Length)
	}

	if s.Energy != 4 || s.Power != 1 || s.RMS != 1 || s.Peak != 1 {
		t.Fatalf("got %+v, want energy=4 power=1 rms=1 peak=1", s)
	}
}

func TestCalculate_Empty(t *testing.T) {
	if s := Calculate(nil); s != (Stats{}) {
		t.Fatalf("empty frame: got %+v, want zero Stats", s)
	}
}

func TestCalculate_Silence(t *testing.T) {
	s := Calculate(testutil.Silence(256))

	if s.Energy != 0 || s.Power != 0 || s.RMS != 0 || s.Peak != 0 {
		t.Fatalf("silence: got %+v", s)
	}
}

func TestCalculate_PeakIsAbsolute(t *testing.T) {
	s := Calculate([]float64{0.1, -0.9, 0.3})

	if math.Abs(s.Peak-0.9) > tolerance {
		t.Fatalf("peak %v, want 0.9", s.Peak)
	}
}

func TestPower_MatchesCalculate(t *testing.T) {
	signal := testutil.Noise(5, 0.7, 1000)

	want := Calculate(signal).Power
	got := Power(signal)

	if math.Abs(got-want) > tolerance {
		t.Fatalf("Power %v, Calculate().Power %v", got, want)
	}
}

func TestPower_Empty(t *testing.T) {
	if p := Power(nil); p != 0 {
		t.Fatalf("empty frame power %v, want 0", p)
	}
}

func TestSplit(t *testing.T) {
	signal := testutil.Noise(9, 1.0, 10)

	frames := Split(signal, 4)
	if len(frames) != 3 {
		t.Fatalf("got %d frames, want 3", len(frames))
	}

	if len(frames[0]) != 4 || len(frames[1]) != 4 || len(frames[2]) != 2 {
		t.Fatalf("frame lengths %d,%d,%d, want 4,4,2", len(frames[0]), len(frames[1]), len(frames[2]))
	}

	// Frames alias the input.
	if &frames[0][0] != &signal[0] {
		t.Fatal("frames must alias the input signal")
	}
}

func TestSplit_Degenerate(t *testing.T) {
	if Split(nil, 4) != nil {
		t.Fatal("nil signal must yield nil")
	}

	if Split(testutil.Noise(1, 1.0, 8), 0) != nil {
		t.Fatal("non-positive frame length must yield nil")
	}
}

func TestCount(t *testing.T) {
	cases := []struct{ n, frameLen, want int }{
		{0, 4, 0},
		{1, 4, 1},
		{4, 4, 1},
		{5, 4, 2},
		{8, 4, 2},
		{10, 4, 3},
		{10, 0, 0},
	}

	for _, tc := range cases {
		if got := Count(tc.n, tc.frameLen); got != tc.want {
			t.Fatalf("Count(%d, %d) = %d, want %d", tc.n, tc.frameLen, got, tc.want)
		}
	}
}
