package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Passes     map[string]PassConfig `yaml:"passes"`
	Thresholds Thresholds            `yaml:"thresholds"`
	LLM        LLMConfig             `yaml:"llm"`
}

// PassConfig represents configuration for a specific analysis pass
type PassConfig struct {
	Disabled bool `yaml:"disabled"`
}

// Thresholds tunes the analysis passes. Zero values mean "use the default".
type Thresholds struct {
	MaxFunctionLines int `yaml:"max_function_lines"`
	MaxNestingDepth  int `yaml:"max_nesting_depth"`
}

// LLMConfig configures the refactoring model endpoint. The API key itself is
// read from the environment, never stored in the file.
type LLMConfig struct {
	BaseURL        string `yaml:"base_url"`
	Model          string `yaml:"model"`
	APIKeyEnv      string `yaml:"api_key_env"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return &Config{Passes: make(map[string]PassConfig)}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if config.Passes == nil {
		config.Passes = make(map[string]PassConfig)
	}

	return &config, nil
}

// APIKey resolves the model API key from the environment. The config may
// name the variable; otherwise the tool's own variable is tried first, then
// the conventional OpenAI one.
func (c *Config) APIKey() string {
	if c.LLM.APIKeyEnv != "" {
		return os.Getenv(c.LLM.APIKeyEnv)
	}
	if key := os.Getenv("PYSCRIBE_API_KEY"); key != "" {
		return key
	}
	return os.Getenv("OPENAI_API_KEY")
}
