package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	collectionIndex int
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{}
}

// WithCollectionIndex selects a font inside a TTC/OTC collection.
// The default is the first font.
func WithCollectionIndex(i int) SourceOption {
	return func(c *sourceConfig) {
		c.collectionIndex = i
	}
}

// ChainOption configures NewChain.
type ChainOption func(*chainConfig)

// chainConfig holds configuration for Chain.
type chainConfig struct {
	bundledFallback bool
}

// defaultChainConfig returns the default chain configuration.
func defaultChainConfig() chainConfig {
	return chainConfig{
		bundledFallback: true,
	}
}

// WithoutBundledFallback stops NewChain from appending the bundled Go
// Regular font. A chain in which no named font resolves then fails with
// *sent.FontNotFoundError.
func WithoutBundledFallback() ChainOption {
	return func(c *chainConfig) {
		c.bundledFallback = false
	}
}
