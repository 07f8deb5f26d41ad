package wavelet

import (
	"fmt"
	"math"
	"strings"
)

// Family identifies an orthonormal wavelet family.
type Family int

const (
	// Haar is the 2-tap Haar wavelet (equivalent to db1).
	Haar Family = iota

	// DB2 is the 4-tap Daubechies-2 wavelet.
	DB2
)

// String returns the canonical family name.
func (f Family) String() string {
	switch f {
	case Haar:
		return "haar"
	case DB2:
		return "db2"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

// ParseFamily resolves a family from its name. Recognised names are
// "haar" (alias "db1") and "db2", case-insensitive.
func ParseFamily(name string) (Family, error) {
	switch strings.ToLower(name) {
	case "haar", "db1":
		return Haar, nil
	case "db2":
		return DB2, nil
	default:
		return 0, fmt.Errorf("unknown wavelet family %q (supported: haar, db2)", name)
	}
}

// Filters returns copies of the analysis lowpass and highpass filter
// pair. The highpass is the quadrature mirror of the lowpass:
//
//	g[k] = (-1)^k * h[L-1-k]
func (f Family) Filters() (lowpass, highpass []float64) {
	h := f.lowpass()

	g := make([]float64, len(h))
	for k := range g {
		g[k] = h[len(h)-1-k]
		if k%2 == 1 {
			g[k] = -g[k]
		}
	}

	return h, g
}

// lowpass returns a fresh lowpass coefficient slice. The coefficients
// are exact closed forms, not rounded table entries.
func (f Family) lowpass() []float64 {
	switch f {
	case DB2:
		s2 := math.Sqrt2
		s3 := math.Sqrt(3)

		return []float64{
			(1 + s3) / (4 * s2),
			(3 + s3) / (4 * s2),
			(3 - s3) / (4 * s2),
			(1 - s3) / (4 * s2),
		}
	default:
		v := 1 / math.Sqrt2

		return []float64{v, v}
	}
}
