package app

import (
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the single-file YAML configuration schema. Nested sections
// map naturally to the flag namespaces.
type FileConfig struct {
	Addr string `yaml:"addr"`

	Cache struct {
		Size int           `yaml:"size"`
		TTL  time.Duration `yaml:"ttl"`
	} `yaml:"cache"`

	LLM struct {
		BaseURL     string        `yaml:"base"`
		Model       string        `yaml:"model"`
		APIKey      string        `yaml:"key"`
		Timeout     time.Duration `yaml:"timeout"`
		MaxInFlight int64         `yaml:"maxInFlight"`
		Enable      bool          `yaml:"enable"`
	} `yaml:"llm"`

	Detail  string `yaml:"detail"`
	Verbose bool   `yaml:"verbose"`
}

// LoadFileConfig reads and parses a YAML config file.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("parse config file: %w", err)
	}
	return fc, nil
}

// Apply overlays the file's non-zero values onto cfg. Flags parsed after
// the overlay still win, matching the usual precedence: defaults < file <
// environment < flags.
func (fc FileConfig) Apply(cfg *Config) {
	if fc.Addr != "" {
		cfg.Addr = fc.Addr
	}
	if fc.Cache.Size > 0 {
		cfg.CacheSize = fc.Cache.Size
	}
	if fc.Cache.TTL > 0 {
		cfg.CacheTTL = fc.Cache.TTL
	}
	if fc.LLM.BaseURL != "" {
		cfg.LLMBaseURL = fc.LLM.BaseURL
	}
	if fc.LLM.Model != "" {
		cfg.LLMModel = fc.LLM.Model
	}
	if fc.LLM.APIKey != "" {
		cfg.LLMAPIKey = fc.LLM.APIKey
	}
	if fc.LLM.Timeout > 0 {
		cfg.LLMTimeout = fc.LLM.Timeout
	}
	if fc.LLM.MaxInFlight > 0 {
		cfg.LLMMaxInFlight = fc.LLM.MaxInFlight
	}
	if fc.LLM.Enable {
		cfg.UseEnhancer = true
	}
	if fc.Detail != "" {
		cfg.DetailLevel = fc.Detail
	}
	if fc.Verbose {
		cfg.Verbose = true
	}
}
