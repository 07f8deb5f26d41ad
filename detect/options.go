package detect

// config holds per-recogniser pipeline settings not carried by the
// spec itself.
type config struct {
	bandpass    bool
	frameLength float64 // 0 means use the spec's frame length
}

// Option mutates a recogniser config.
type Option func(*config)

func defaultConfig() config {
	return config{bandpass: true}
}

// WithoutBandpass disables the FFT band limiter that normally restricts
// analysis to the recogniser's target frequency range.
func WithoutBandpass() Option {
	return func(cfg *config) {
		cfg.bandpass = false
	}
}

// WithFrameLength overrides the spec's analysis frame length in
// seconds. Non-positive values are ignored.
func WithFrameLength(seconds float64) Option {
	return func(cfg *config) {
		if seconds > 0 {
			cfg.frameLength = seconds
		}
	}
}

func applyOptions(opts ...Option) config {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
