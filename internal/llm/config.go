package llm

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every variable FromEnv reads.
const EnvPrefix = "MATHQUEST_"

const (
	BackendAnthropic  = "anthropic"
	BackendOpenAI     = "openai"
	BackendGemini     = "gemini"
	BackendOpenRouter = "openrouter"
	BackendMock       = "mock"
)

// backendSpec describes one hosted backend: the vendor's own key variable,
// the tutor's default model and the short aliases it accepts.
type backendSpec struct {
	keyVar  string
	model   string
	aliases map[string]string
}

// discoveryOrder is the order FromEnv checks vendor keys in when no backend
// is pinned.
var discoveryOrder = []string{BackendGemini, BackendOpenAI, BackendAnthropic, BackendOpenRouter}

var backendSpecs = map[string]backendSpec{
	BackendAnthropic: {
		keyVar: "ANTHROPIC_API_KEY",
		model:  "claude-haiku-4-5",
		aliases: map[string]string{
			"haiku":  "claude-haiku-4-5",
			"sonnet": "claude-sonnet-4-5",
		},
	},
	BackendOpenAI: {
		keyVar:  "OPENAI_API_KEY",
		model:   "gpt-4o-mini",
		aliases: map[string]string{"mini": "gpt-4o-mini"},
	},
	BackendGemini: {
		keyVar: "GEMINI_API_KEY",
		model:  "gemini-2.5-flash",
		aliases: map[string]string{
			"flash": "gemini-2.5-flash",
			"pro":   "gemini-2.5-pro",
		},
	},
	BackendOpenRouter: {
		keyVar: "OPENROUTER_API_KEY",
		model:  "google/gemini-2.5-flash",
	},
}

// Config selects a backend and bounds how hard the tutor tries.
type Config struct {
	// Backend is one of the Backend* names. Empty means discover.
	Backend string `env:"LLM_PROVIDER"`

	// APIKey defaults to the vendor's own variable, e.g. GEMINI_API_KEY.
	APIKey string `env:"LLM_API_KEY"`

	// Model is a model ID or one of the backend's aliases.
	Model string `env:"LLM_MODEL"`

	// BaseURL overrides the backend's endpoint.
	BaseURL string `env:"LLM_BASE_URL"`

	// Timeout bounds one Complete call, retries included.
	Timeout time.Duration `env:"LLM_TIMEOUT"`

	Retry RetryPolicy `envPrefix:"LLM_RETRY_"`
}

// RetryPolicy spaces out attempts with jittered exponential backoff.
type RetryPolicy struct {
	Attempts    int           `env:"ATTEMPTS"`
	InitialWait time.Duration `env:"INITIAL_WAIT"`
	MaxWait     time.Duration `env:"MAX_WAIT"`
	Multiplier  float64       `env:"MULTIPLIER"`
}

// DefaultConfig leaves the backend unset so FromEnv can discover one.
func DefaultConfig() Config {
	return Config{
		Timeout: 20 * time.Second,
		Retry: RetryPolicy{
			Attempts:    3,
			InitialWait: time.Second,
			MaxWait:     8 * time.Second,
			Multiplier:  2,
		},
	}
}

// FromEnv overlays MATHQUEST_LLM_* variables on DefaultConfig. Without a
// pinned backend, the first vendor key found in discoveryOrder picks one;
// with neither it returns ErrNotConfigured.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse LLM environment: %w", err)
	}

	if cfg.Backend == "" {
		for _, name := range discoveryOrder {
			if os.Getenv(backendSpecs[name].keyVar) != "" {
				cfg.Backend = name
				break
			}
		}
		if cfg.Backend == "" {
			return Config{}, ErrNotConfigured
		}
	}
	if spec, ok := backendSpecs[cfg.Backend]; ok && cfg.APIKey == "" {
		cfg.APIKey = os.Getenv(spec.keyVar)
	}
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// withDefaults fills the backend's default model and expands aliases.
func (c Config) withDefaults() Config {
	c.Retry.Attempts = max(c.Retry.Attempts, 1)
	spec, ok := backendSpecs[c.Backend]
	if !ok {
		return c
	}
	if c.Model == "" {
		c.Model = spec.model
	}
	if id, ok := spec.aliases[c.Model]; ok {
		c.Model = id
	}
	return c
}

// Validate checks that the backend is known and has a key.
func (c Config) Validate() error {
	if c.Backend == BackendMock {
		return nil
	}
	spec, ok := backendSpecs[c.Backend]
	if !ok {
		return fmt.Errorf("unknown LLM provider %q", c.Backend)
	}
	if c.APIKey == "" {
		return fmt.Errorf("%s needs %sLLM_API_KEY or %s", c.Backend, EnvPrefix, spec.keyVar)
	}
	return nil
}
