// Package config loads LinkPipe configuration from an optional YAML file,
// LINKPIPE_* environment variables (including a .env file) and command flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/gaurav-prasanna/linkpipe/core"
	"github.com/gaurav-prasanna/linkpipe/core/chunk"
	"github.com/gaurav-prasanna/linkpipe/core/llm"
	"github.com/gaurav-prasanna/linkpipe/logger"
)

// EnvPrefix prefixes every environment variable, e.g. LINKPIPE_LLM_MODEL.
const EnvPrefix = "LINKPIPE"

// Defaults.
const (
	defaultProvider     = llm.ProviderOpenAI
	defaultModel        = "gpt-4o-mini"
	defaultLLMTimeout   = 60 * time.Second
	defaultFetchTimeout = 30 * time.Second
)

// Config is the full application configuration.
type Config struct {
	LLM        llm.Config    `mapstructure:"llm"`
	Log        logger.Config `mapstructure:"log"`
	Chunk      ChunkConfig   `mapstructure:"chunk"`
	Fetch      FetchConfig   `mapstructure:"fetch"`
	Verbose    bool          `mapstructure:"verbose"`
	UserPrompt string        `mapstructure:"user_prompt"`
}

// ChunkConfig controls how Markdown is split before link extraction.
type ChunkConfig struct {
	Size int `mapstructure:"size"`
}

// FetchConfig controls page retrieval and extraction.
type FetchConfig struct {
	Timeout        time.Duration `mapstructure:"timeout"`
	KeepNavigation bool          `mapstructure:"keep_navigation"`
}

// SetDefaults registers every key with its default so environment
// variables are picked up for all of them.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("llm.provider", defaultProvider)
	v.SetDefault("llm.model", defaultModel)
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.temperature", 0.0)
	v.SetDefault("llm.timeout", defaultLLMTimeout)

	v.SetDefault("log.level", logger.DefaultLevel)
	v.SetDefault("log.format", logger.DefaultFormat)
	v.SetDefault("log.output_paths", []string{"stderr"})

	v.SetDefault("chunk.size", chunk.DefaultSize)

	v.SetDefault("fetch.timeout", defaultFetchTimeout)
	v.SetDefault("fetch.keep_navigation", false)

	v.SetDefault("verbose", false)
	v.SetDefault("user_prompt", "")
}

// Load reads configuration into a Config. path may be empty, in which case
// linkpipe.yaml is looked up in the working directory and ~/.config/linkpipe
// and its absence is not an error.
func Load(v *viper.Viper, path string) (*Config, error) {
	// A missing .env file is fine; the real environment still applies.
	_ = godotenv.Load()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("llm.api_key", EnvPrefix+"_LLM_API_KEY", "OPENAI_API_KEY"); err != nil {
		return nil, fmt.Errorf("binding llm.api_key: %w", err)
	}
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("linkpipe")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/linkpipe")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration a links run needs.
func (c *Config) Validate() error {
	if err := c.LLM.Validate(); err != nil {
		return err
	}
	if c.Chunk.Size <= 0 {
		return &core.ConfigError{Field: "chunk.size", Value: c.Chunk.Size, Reason: "must be positive"}
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &core.ConfigError{Field: "log.level", Value: c.Log.Level, Reason: "must be debug, info, warn or error"}
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return &core.ConfigError{Field: "log.format", Value: c.Log.Format, Reason: "must be json or console"}
	}
	return nil
}
