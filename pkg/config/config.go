package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
	NLP struct {
		MinTokenLength    int           `yaml:"min_token_length"`
		MaxTokenLength    int           `yaml:"max_token_length"`
		MinConfidence     float64       `yaml:"min_confidence"`
		MaxInputLength    int           `yaml:"max_input_length"`
		MaxProcessingTime time.Duration `yaml:"max_processing_time"`
		FallbackEnabled   bool          `yaml:"fallback_enabled"`
		StrictValidation  bool          `yaml:"strict_validation"`
		MaxHistory        int           `yaml:"max_history"`
		MaxSuggestions    int           `yaml:"max_suggestions"`
	} `yaml:"nlp"`
	Cache struct {
		PatternTTL   time.Duration `yaml:"pattern_ttl"`
		KnowledgeTTL time.Duration `yaml:"knowledge_ttl"`
		MaxEntries   int           `yaml:"max_entries"`
		Redis        struct {
			Enabled  bool   `yaml:"enabled"`
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"cache"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Redis.Enabled = true
		c.Cache.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Cache.Redis.Password = v
	}
	if v := os.Getenv("CACHE_MAX_ENTRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Cache.MaxEntries = n
		}
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.NLP.MaxTokenLength == 0 {
		c.NLP.MinTokenLength = 1
		c.NLP.MaxTokenLength = 30
	}
	if c.NLP.MinConfidence == 0 {
		c.NLP.MinConfidence = 0.3
	}
	if c.NLP.MaxInputLength == 0 {
		c.NLP.MaxInputLength = 10000
	}
	if c.NLP.MaxProcessingTime == 0 {
		c.NLP.MaxProcessingTime = 5 * time.Second
	}
	if c.NLP.MaxHistory == 0 {
		c.NLP.MaxHistory = 100
	}
	if c.NLP.MaxSuggestions == 0 {
		c.NLP.MaxSuggestions = 5
	}
	if c.Cache.PatternTTL == 0 {
		c.Cache.PatternTTL = 5 * time.Minute
	}
	if c.Cache.KnowledgeTTL == 0 {
		c.Cache.KnowledgeTTL = 10 * time.Minute
	}
	if c.Cache.MaxEntries == 0 {
		c.Cache.MaxEntries = 512
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0,65535], got %d", c.Server.Port)
	}
	if c.NLP.MinConfidence < 0 || c.NLP.MinConfidence > 1 {
		return fmt.Errorf("nlp.min_confidence must be in [0,1], got %v", c.NLP.MinConfidence)
	}
	if c.NLP.MinTokenLength > c.NLP.MaxTokenLength {
		return fmt.Errorf("nlp.min_token_length (%d) exceeds nlp.max_token_length (%d)",
			c.NLP.MinTokenLength, c.NLP.MaxTokenLength)
	}
	if c.NLP.MaxInputLength <= 0 {
		return fmt.Errorf("nlp.max_input_length must be positive")
	}
	if c.Cache.MaxEntries <= 0 {
		return fmt.Errorf("cache.max_entries must be positive")
	}
	if c.Cache.Redis.Enabled && c.Cache.Redis.Addr == "" {
		return fmt.Errorf("cache.redis.addr is required when redis is enabled")
	}
	return nil
}
