// Package config provides configuration loading for the resume builder
// CLI. Values come from an optional JSON config file merged with
// environment variables; CLI flags win over both.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the CLI configuration. All fields are optional; missing
// values use defaults or must be provided via flags.
type Config struct {
	// StorageDir is where the durable document and snapshots live.
	StorageDir string `json:"storage_dir,omitempty"`
	// OutputDir is where exported PDFs are written.
	OutputDir string `json:"output_dir,omitempty"`
	// Template is the active template name (modern, minimalist, ats).
	Template string `json:"template,omitempty"`
	// IncludeDate appends a YYYYMMDD stamp to export filenames.
	IncludeDate bool `json:"include_date,omitempty"`

	// APIKey is the Gemini API key for the AI assistant.
	APIKey string `json:"api_key,omitempty"`
	// Model overrides the default Gemini model.
	Model string `json:"model,omitempty"`

	// ChromePath overrides headless Chrome discovery for PDF export.
	ChromePath string `json:"chrome_path,omitempty"`
	// Verbose prints detailed progress information.
	Verbose bool `json:"verbose,omitempty"`
}

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// FromEnv returns a config populated from environment variables. godotenv
// has already folded a .env file into the environment by the time this
// runs.
func FromEnv() *Config {
	return &Config{
		StorageDir: os.Getenv("RESUME_STORAGE_DIR"),
		OutputDir:  os.Getenv("RESUME_OUTPUT_DIR"),
		APIKey:     os.Getenv("GEMINI_API_KEY"),
		Model:      os.Getenv("GEMINI_MODEL"),
		ChromePath: os.Getenv("CHROME_PATH"),
	}
}

// MergeWithDefaults returns c with empty fields filled from defaults.
// Bool fields are not merged; flags always win for those.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.StorageDir == "" {
		result.StorageDir = defaults.StorageDir
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}

	return result
}

// DefaultStorageDir returns the per-user storage directory used when none
// is configured.
func DefaultStorageDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".resume-builder"
	}
	return filepath.Join(home, ".resume-builder")
}
