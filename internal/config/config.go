package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Input struct {
		CSVPath     string `yaml:"csv_path"`
		DateColumn  string `yaml:"date_column"`
		ValueColumn string `yaml:"value_column"`
		DateFormat  string `yaml:"date_format"`
	} `yaml:"input"`
	Series struct {
		Name string `yaml:"name"`
	} `yaml:"series"`
	Chart struct {
		OutputPath string `yaml:"output_path"`
		Width      int    `yaml:"width"`
		Height     int    `yaml:"height"`
	} `yaml:"chart"`
	Watch struct {
		Cron string `yaml:"cron"`
	} `yaml:"watch"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("SERIESSCOPE_INPUT"); v != "" {
		cfg.Input.CSVPath = v
	}
	if v := os.Getenv("SERIESSCOPE_OUTPUT"); v != "" {
		cfg.Chart.OutputPath = v
	}
	if v := os.Getenv("SERIESSCOPE_NAME"); v != "" {
		cfg.Series.Name = v
	}
	if v := os.Getenv("WATCH_CRON"); v != "" {
		cfg.Watch.Cron = v
	}

	// Defaults
	if cfg.Input.DateColumn == "" {
		cfg.Input.DateColumn = "date"
	}
	if cfg.Input.ValueColumn == "" {
		cfg.Input.ValueColumn = "value"
	}
	if cfg.Input.DateFormat == "" {
		cfg.Input.DateFormat = "2006-01-02"
	}
	if cfg.Chart.OutputPath == "" {
		cfg.Chart.OutputPath = "out/series.png"
	}
	if cfg.Chart.Width == 0 {
		cfg.Chart.Width = 1024
	}
	if cfg.Chart.Height == 0 {
		cfg.Chart.Height = 576
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Input.CSVPath == "" {
		return fmt.Errorf("input.csv_path is required")
	}
	if c.Chart.OutputPath == "" {
		return fmt.Errorf("chart.output_path is required")
	}
	if c.Chart.Width <= 0 || c.Chart.Height <= 0 {
		return fmt.Errorf("chart.width and chart.height must be positive")
	}
	return nil
}
