// Package detect runs species-call detection over in-memory audio
// buffers using a loaded recogniser definition.
//
// The pipeline per call is: optional band limiting to the recogniser's
// target frequency range, wavelet-packet decomposition into subbands,
// per-frame energy scoring of the subbands of interest, merging of
// frame votes into time intervals, and a final confidence report.
//
// A [Recogniser] is built once per session from a validated spec and is
// read-only afterwards; concurrent [Recogniser.Analyse] calls on
// different buffers are safe and share no state. Each call is a pure,
// bounded, CPU-bound computation: silence, clipping, and zero energy
// are valid inputs producing a zero-confidence result, never an error.
package detect
