package detect

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-detect/recogniser"
)

func TestScoreCallType(t *testing.T) {
	// Two subbands of four samples each, scored in two-sample frames at
	// a subband rate of 2 Hz. Subband 0 is loud only in the first frame,
	// subband 1 in both.
	subbands := [][]float64{
		{1, 1, 0, 0},
		{1, 1, 1, 1},
	}

	ct := &recogniser.CallType{
		Name:               "x",
		Nodes:              []int{0, 1},
		Thresholds:         []float64{0.5, 0.5},
		MinSubbandFraction: 0.5,
	}

	windows, err := scoreCallType(subbands, ct, 2, 2)
	if err != nil {
		t.Fatal(err)
	}

	if len(windows) != 2 {
		t.Fatalf("got %d windows, want 2", len(windows))
	}

	if windows[0].Fraction != 1 || !windows[0].Vote {
		t.Fatalf("window 0: %+v, want fraction=1 vote=true", windows[0])
	}

	// Half the nodes exceeding meets the 0.5 fraction exactly.
	if windows[1].Fraction != 0.5 || !windows[1].Vote {
		t.Fatalf("window 1: %+v, want fraction=0.5 vote=true", windows[1])
	}

	if windows[0].Start != 0 || windows[0].End != 1 || windows[1].Start != 1 || windows[1].End != 2 {
		t.Fatalf("window bounds: %+v %+v", windows[0], windows[1])
	}
}

func TestScoreCallType_FractionBelowMinimum(t *testing.T) {
	subbands := [][]float64{
		{1, 1, 0, 0},
		{1, 1, 1, 1},
	}

	ct := &recogniser.CallType{
		Name:               "x",
		Nodes:              []int{0, 1},
		Thresholds:         []float64{0.5, 0.5},
		MinSubbandFraction: 0.6,
	}

	windows, err := scoreCallType(subbands, ct, 2, 2)
	if err != nil {
		t.Fatal(err)
	}

	if windows[1].Vote {
		t.Fatalf("window 1: fraction 0.5 must not reach minimum 0.6: %+v", windows[1])
	}
}

func TestScoreCallType_TrailingPartialFrame(t *testing.T) {
	subbands := [][]float64{{1, 1, 1, 1, 1}}

	ct := &recogniser.CallType{
		Name:               "x",
		Nodes:              []int{0},
		Thresholds:         []float64{0.5},
		MinSubbandFraction: 0.5,
	}

	windows, err := scoreCallType(subbands, ct, 2, 2)
	if err != nil {
		t.Fatal(err)
	}

	if len(windows) != 3 {
		t.Fatalf("got %d windows, want 3", len(windows))
	}

	last := windows[2]
	if math.Abs(last.End-2.5) > 1e-15 || !last.Vote {
		t.Fatalf("partial frame: %+v, want end=2.5 vote=true", last)
	}
}

func TestScoreCallType_Invalid(t *testing.T) {
	subbands := [][]float64{{0, 0}}

	empty := &recogniser.CallType{Name: "x"}
	if _, err := scoreCallType(subbands, empty, 1, 1); !errors.Is(err, recogniser.ErrInvalidSpec) {
		t.Fatalf("empty nodes: got %v, want ErrInvalidSpec", err)
	}

	outOfRange := &recogniser.CallType{Name: "x", Nodes: []int{1}, Thresholds: []float64{0.1}}
	if _, err := scoreCallType(subbands, outOfRange, 1, 1); !errors.Is(err, recogniser.ErrInvalidSpec) {
		t.Fatalf("node out of range: got %v, want ErrInvalidSpec", err)
	}
}
