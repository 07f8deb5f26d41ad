package wavelet_test

import (
	"fmt"

	"github.com/cwbudde/algo-detect/dsp/wavelet"
)

func ExampleDecompose() {
	// A constant signal has no detail content: everything lands in the
	// lowest subband.
	signal := []float64{1, 1, 1, 1, 1, 1, 1, 1}

	subbands, err := wavelet.Decompose(signal, 1, wavelet.Haar)
	if err != nil {
		panic(err)
	}

	var detail float64
	for _, v := range subbands[1] {
		detail += v * v
	}

	fmt.Printf("subbands=%d low[0]=%.4f detail energy=%.0f\n", len(subbands), subbands[0][0], detail)

	// Output:
	// subbands=2 low[0]=1.4142 detail energy=0
}

func ExampleBandRange() {
	low, high := wavelet.BandRange(2, 3, 16000)
	fmt.Printf("%.0f-%.0f Hz\n", low, high)

	// Output:
	// 2000-3000 Hz
}
