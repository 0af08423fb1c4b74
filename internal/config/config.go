// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Backend selects the model provider implementation.
type Backend string

const (
	BackendMistral Backend = "mistral"
	BackendGemini  Backend = "gemini"
	BackendMock    Backend = "mock"
)

// Config holds all application configuration.
type Config struct {
	BotToken string `yaml:"bot_token"`

	APIKey     string  `yaml:"api_key"`
	ModelName  string  `yaml:"model_name"`
	LLMBackend Backend `yaml:"llm_backend"`

	MaxRequestsPerDay int `yaml:"max_requests_per_day"`
	MessageCharLimit  int `yaml:"message_char_limit"`

	// OpsPort, when set, enables the health endpoint on that port.
	OpsPort string `yaml:"ops_port"`
}

// Load reads configuration from environment variables, then applies the
// optional YAML file named by CONFIG_FILE on top. Environment references
// in the form ${VAR} inside the file are expanded before parsing.
func Load() (*Config, error) {
	cfg := &Config{
		BotToken:          getEnv("BOT_TOKEN", ""),
		APIKey:            getEnv("API_KEY", ""),
		ModelName:         getEnv("MODEL_NAME", "codestral-latest"),
		LLMBackend:        Backend(getEnv("LLM_BACKEND", string(BackendMistral))),
		MaxRequestsPerDay: getEnvInt("MAX_REQUESTS_PER_DAY", 10),
		MessageCharLimit:  getEnvInt("MESSAGE_CHAR_LIMIT", 200),
		OpsPort:           getEnv("OPS_PORT", ""),
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	// Unmarshal over the env-derived values: keys absent from the file keep
	// their current value.
	if err := yaml.Unmarshal([]byte(expanded), c); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN cannot be empty")
	}
	switch c.LLMBackend {
	case BackendMistral, BackendGemini:
		if c.APIKey == "" {
			return fmt.Errorf("API_KEY cannot be empty for backend %q", c.LLMBackend)
		}
	case BackendMock:
	default:
		return fmt.Errorf("unknown LLM_BACKEND %q", c.LLMBackend)
	}
	if c.ModelName == "" {
		return fmt.Errorf("MODEL_NAME cannot be empty")
	}
	if c.MaxRequestsPerDay <= 0 {
		return fmt.Errorf("MAX_REQUESTS_PER_DAY must be > 0")
	}
	if c.MessageCharLimit <= 0 {
		return fmt.Errorf("MESSAGE_CHAR_LIMIT must be > 0")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}
