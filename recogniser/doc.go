// Package recogniser loads and validates species recogniser definitions.
//
// A recogniser (also called a "filter") is a per-species configuration
// produced by external training tooling. It names the wavelet-packet
// decomposition to run, the subbands that carry the species' call, the
// per-subband energy thresholds, and the time rules used to merge raw
// detections into intervals.
//
// The persisted form is a YAML document; since YAML 1.2 is a superset of
// JSON, filter files written as JSON by older authoring tools load
// unchanged. The legacy key layout used by older filter files (Filters,
// WaveletParams, TimeRange) is also recognised and normalised on load.
//
// All fields are checked eagerly at load time. A loaded [Spec] is
// immutable and safe to share across any number of concurrent
// detection calls.
package recogniser
