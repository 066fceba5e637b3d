package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file expected in a project root.
const FileName = "salesview.yaml"

// Config represents the top-level salesview.yaml configuration.
type Config struct {
	Store Store             `yaml:"store"`
	Data  Data              `yaml:"data"`
	Users map[string]string `yaml:"users,omitempty"`
	Git   Git               `yaml:"git"`
}

// Store identifies the retail business the data belongs to.
type Store struct {
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"` // label used in report output, e.g. "Rs."
}

// Data locates the backing file, relative to the project root.
type Data struct {
	File string `yaml:"file"`
}

// Git controls auto-committing the data directory after imports.
type Git struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a salesview.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Data.File == "" {
		cfg.Data.File = "sales_data.csv"
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(storeName string) *Config {
	return &Config{
		Store: Store{
			Name:     storeName,
			Currency: "Rs.",
		},
		Data: Data{
			File: "sales_data.csv",
		},
		Users: map[string]string{
			"admin":   "admin123",
			"analyst": "analyst123",
		},
		Git: Git{
			AutoCommit:  false,
			AuthorName:  "Salesview",
			AuthorEmail: "salesview@localhost",
		},
	}
}
