package llm

import (
	"fmt"
	"strings"
	"time"

	"github.com/gaurav-prasanna/linkpipe/core"
)

// Supported providers.
const (
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

const defaultTimeout = 60 * time.Second

// Config selects and configures a chat model client.
type Config struct {
	Provider    string        `mapstructure:"provider"`
	Model       string        `mapstructure:"model"`
	BaseURL     string        `mapstructure:"base_url"`
	APIKey      string        `mapstructure:"api_key"`
	Temperature float32       `mapstructure:"temperature"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// Validate checks the fields every provider needs.
func (c Config) Validate() error {
	switch strings.ToLower(c.Provider) {
	case ProviderOpenAI:
		if c.APIKey == "" && c.BaseURL == "" {
			return &core.ConfigError{Field: "llm.api_key", Reason: "required for the openai provider unless llm.base_url points at a compatible server"}
		}
	case ProviderOllama:
	default:
		return &core.ConfigError{Field: "llm.provider", Value: c.Provider, Reason: "must be openai or ollama"}
	}
	if c.Model == "" {
		return &core.ConfigError{Field: "llm.model", Reason: "required"}
	}
	return nil
}

// New builds the client for cfg.Provider.
func New(cfg Config) (core.ChatModel, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	switch strings.ToLower(cfg.Provider) {
	case ProviderOllama:
		return NewOllamaClient(cfg), nil
	case ProviderOpenAI:
		return NewOpenAIClient(cfg), nil
	}
	return nil, fmt.Errorf("unreachable provider %q", cfg.Provider)
}
