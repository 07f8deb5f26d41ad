package recogniser_test

import (
	"fmt"

	"github.com/cwbudde/algo-detect/recogniser"
)

func ExampleParse() {
	doc := `
species: Great Spotted Kiwi
samplerate: 16000
depth: 4
calltypes:
  - calltype: M
    freqrange: [1200, 7000]
    nodes: [9, 10, 11]
    threshold: 0.004
    minduration: 0.5
    maxgap: 3.0
`

	spec, err := recogniser.Parse([]byte(doc))
	if err != nil {
		panic(err)
	}

	fmt.Printf("%s: %d subbands, nodes %v, thresholds %v\n",
		spec.Species, spec.SubbandCount(), spec.CallTypes[0].Nodes, spec.CallTypes[0].Thresholds)

	// Output:
	// Great Spotted Kiwi: 16 subbands, nodes [9 10 11], thresholds [0.004 0.004 0.004]
}

func ExampleParse_legacy() {
	doc := `{
	  "species": "Kiwi",
	  "SampleRate": 16000,
	  "Filters": [
	    {"calltype": "M",
	     "TimeRange": [0.5, 30, 5, 3],
	     "WaveletParams": {"thr": 0.1, "nodes": [31, 34]}}
	  ]}`

	spec, err := recogniser.Parse([]byte(doc))
	if err != nil {
		panic(err)
	}

	fmt.Printf("depth=%d nodes=%v\n", spec.Depth, spec.CallTypes[0].Nodes)

	// Output:
	// depth=5 nodes=[0 2]
}
