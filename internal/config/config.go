package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/campusfin-dev/campusfin/internal/store"
)

// FileName is the config file name inside a project directory.
const FileName = "campusfin.yaml"

// Config represents the top-level campusfin.yaml configuration.
type Config struct {
	School   SchoolConfig   `yaml:"school"`
	Data     DataConfig     `yaml:"data"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Git      GitConfig      `yaml:"git"`
}

// SchoolConfig identifies the school the ledger belongs to.
type SchoolConfig struct {
	Name string `yaml:"name"`
}

// DataConfig locates the persisted ledger inside the project directory.
type DataConfig struct {
	File string `yaml:"file"`
}

// DefaultsConfig holds fallback descriptions for transactions recorded
// without one.
type DefaultsConfig struct {
	IncomeDescription  string `yaml:"income_description"`
	ExpenseDescription string `yaml:"expense_description"`
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a campusfin.yaml file from disk.
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
		cfg.Data.File = store.DefaultFile
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
func Default(schoolName string) *Config {
	return &Config{
		School: SchoolConfig{Name: schoolName},
		Data:   DataConfig{File: store.DefaultFile},
		Defaults: DefaultsConfig{
			IncomeDescription:  "Income",
			ExpenseDescription: "Expense",
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Campusfin",
			AuthorEmail: "ledger@campusfin.dev",
		},
	}
}
