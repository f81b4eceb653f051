package app

import "time"

// Config holds runtime configuration for the service.
type Config struct {
	// HTTP
	Addr string

	// Result cache
	CacheSize int
	CacheTTL  time.Duration

	// Enhancer (optional LLM path)
	LLMBaseURL     string
	LLMModel       string
	LLMAPIKey      string
	LLMTimeout     time.Duration
	LLMMaxInFlight int64
	UseEnhancer    bool

	// Pipeline
	DetailLevel string

	// Behavior
	Verbose bool
}

// Defaults returns the configuration used when neither flags, environment
// nor config file say otherwise.
func Defaults() Config {
	return Config{
		Addr:           ":5000",
		CacheSize:      100,
		CacheTTL:       time.Hour,
		LLMTimeout:     30 * time.Second,
		LLMMaxInFlight: 4,
		DetailLevel:    "detailed",
	}
}
