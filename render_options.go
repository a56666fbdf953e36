package markup

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	osc8            bool
	softWrap        bool
	keepFrontMatter bool
}

// WithOSC8 enables or disables OSC 8 hyperlinks for link groups.
func WithOSC8(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.osc8 = enabled
	}
}

// WithSoftWrap enables breaking words longer than the wrap width.
func WithSoftWrap(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.softWrap = enabled
	}
}

// WithFrontMatter controls whether a leading YAML, TOML or JSON front matter
// block is kept. It is stripped by default.
func WithFrontMatter(keep bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.keepFrontMatter = keep
	}
}

func newRenderConfig(opts []RenderOption) renderConfig {
	cfg := renderConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
