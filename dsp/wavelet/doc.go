// Package wavelet provides wavelet-packet decomposition of audio buffers.
//
// A depth-d decomposition splits a signal into 2^d subbands, each
// covering a contiguous, non-overlapping slice of the Nyquist range.
// Subbands are returned ordered by increasing center frequency; the
// natural packet-tree order is remapped with [FreqOrder] to undo the
// spectral mirroring that highpass decimation introduces.
//
// The filter banks are orthonormal (Haar and Daubechies-2, with
// coefficients derived analytically), and the transform is periodized,
// so signal energy is conserved and an all-zero input yields exactly
// all-zero subbands.
//
// [Decompose] is a pure function with no retained state and is safe to
// call from any number of goroutines on distinct buffers.
package wavelet
