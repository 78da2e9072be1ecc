package lessons

// Config holds explanation generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
	MaxSteps    int
}

// DefaultConfig returns sensible defaults for explanation generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   400,
		Temperature: 0.3,
		MaxSteps:    6,
	}
}
