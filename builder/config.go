package builder

import "math/rand"

// builderConfig holds the resolved, immutable configuration a
// Constructor reads from: an optional RNG, an ID scheme, and the tag
// prefixes used by CompleteBipartite's two partitions.
type builderConfig struct {
	rng         *rand.Rand
	idFn        IDFn
	leftPrefix  string
	rightPrefix string
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{
		rng:         nil,
		idFn:        DefaultIDFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
