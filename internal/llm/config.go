package llm

import (
	"os"
	"strconv"
)

// LLMConfig holds all configuration for the generative API.
type LLMConfig struct {
	Enabled  bool
	LogCalls bool
	// APIKeyEnv names the environment variable holding the credential. It is
	// read on each call, never at startup.
	APIKeyEnv string
	Model     string
	// Endpoint overrides the API base URL when non-empty.
	Endpoint string
	// TimeoutMs bounds a call when > 0. Zero waits indefinitely.
	TimeoutMs   int
	MaxRetries  int
	Temperature *float64
	MaxTokens   int
}

// DefaultConfig returns an LLMConfig with sensible defaults.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Enabled:    true,
		LogCalls:   true,
		APIKeyEnv:  "GEMINI_API_KEY",
		Model:      "gemini-2.5-flash",
		TimeoutMs:  0,
		MaxRetries: 0,
	}
}

// LoadConfig reads LLM configuration from environment variables,
// falling back to defaults for any unset or invalid values.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()

	if v := os.Getenv("ASKEW_TRAINER_LLM_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = b
		}
	}
	if v := os.Getenv("ASKEW_TRAINER_LLM_LOG_CALLS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LogCalls = b
		}
	}
	if v := os.Getenv("ASKEW_TRAINER_LLM_API_KEY_ENV"); v != "" {
		cfg.APIKeyEnv = v
	}
	if v := os.Getenv("ASKEW_TRAINER_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("ASKEW_TRAINER_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("ASKEW_TRAINER_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("ASKEW_TRAINER_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("ASKEW_TRAINER_LLM_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 2 {
			cfg.Temperature = &f
		}
	}
	if v := os.Getenv("ASKEW_TRAINER_LLM_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxTokens = n
		}
	}

	return cfg
}
