package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for seokit.
type Config struct {
	Analysis AnalysisConfig `yaml:"analysis"`
	Batch    BatchConfig    `yaml:"batch"`
	Cache    CacheConfig    `yaml:"cache"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// AnalysisConfig holds scoring configuration.
type AnalysisConfig struct {
	MinKeywordLength   int     `yaml:"min_keyword_length"` // keyword tokens of this length or shorter are dropped, 0 keeps all
	RemoveStopwords    bool    `yaml:"remove_stopwords"`
	KeywordTopN        int     `yaml:"keyword_top_n"`
	TfIdfTopN          int     `yaml:"tfidf_top_n"`
	SentimentThreshold float64 `yaml:"sentiment_threshold"`
}

// BatchConfig holds directory analysis configuration.
type BatchConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
	Format   string   `yaml:"format"` // "text", "html" or "auto" (by extension)
	Workers  int      `yaml:"workers"`
}

// CacheConfig holds in-memory report cache configuration.
type CacheConfig struct {
	Size int           `yaml:"size"`
	TTL  time.Duration `yaml:"ttl"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			MinKeywordLength:   3,
			RemoveStopwords:    true,
			KeywordTopN:        10,
			TfIdfTopN:          20,
			SentimentThreshold: 0.25,
		},
		Batch: BatchConfig{
			Includes: []string{"**/*.txt", "**/*.md", "**/*.html", "**/*.htm"},
			Excludes: []string{"**/node_modules/**", "**/vendor/**", "**/.git/**", "**/.seokit/**", "**/dist/**", "**/build/**"},
			Format:   "auto",
			Workers:  4,
		},
		Cache: CacheConfig{
			Size: 256,
			TTL:  10 * time.Minute,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for seokit.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "seokit.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".seokit", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Validate rejects values no component can work with.
func (c *Config) Validate() error {
	if c.Analysis.MinKeywordLength < 0 {
		return fmt.Errorf("analysis.min_keyword_length must be >= 0, got %d", c.Analysis.MinKeywordLength)
	}
	if t := c.Analysis.SentimentThreshold; t <= 0 || t >= 1 {
		return fmt.Errorf("analysis.sentiment_threshold must be in (0, 1), got %v", t)
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("batch.workers must be >= 1, got %d", c.Batch.Workers)
	}
	switch c.Batch.Format {
	case "auto", "text", "html":
	default:
		return fmt.Errorf("batch.format must be auto, text or html, got %q", c.Batch.Format)
	}
	return nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReportDBPath returns the path to the batch report database.
func ReportDBPath(dir string) string {
	return filepath.Join(dir, ".seokit", "reports.db")
}

// EnsureDir ensures the .seokit directory exists.
func EnsureDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".seokit"), 0755)
}
