package mdxcmd

// FeatureGates exposes runtime feature toggles required by MDX command handlers.
// Callers should supply closures that read from corpus.Config.Features.MDX so
// handlers stay decoupled from configuration while honouring feature flags.
type FeatureGates struct {
	MDXEnabled func() bool
}

func (g FeatureGates) mdxEnabled() bool {
	if g.MDXEnabled == nil {
		return true
	}
	return g.MDXEnabled()
}
