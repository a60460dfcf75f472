// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable holding a default config file path
const EnvConfigPath = "SKILLGAP_CONFIG"

// Config represents the CLI configuration that can be loaded from a JSON or YAML file.
// All fields are optional; CLI flags take precedence over values set here.
type Config struct {
	// Job description
	JobFile string `json:"jd_file,omitempty" yaml:"jd_file,omitempty"` // Path to job description file

	// Candidate skill sources
	Skills      []string `json:"skills,omitempty" yaml:"skills,omitempty"`             // Manual skill entries; empty entries are ignored
	Resume      string   `json:"resume,omitempty" yaml:"resume,omitempty"`             // Literal resume text
	ResumeFile  string   `json:"resume_file,omitempty" yaml:"resume_file,omitempty"`   // Path to resume (txt, md, html, pdf, docx)
	Profile     string   `json:"profile,omitempty" yaml:"profile,omitempty"`           // Literal profile text
	ProfileFile string   `json:"profile_file,omitempty" yaml:"profile_file,omitempty"` // Path to profile (txt, md, html, pdf, docx)

	// Output
	Out          string `json:"out,omitempty" yaml:"out,omitempty"`                     // Output path; stdout when empty
	Verbose      bool   `json:"verbose,omitempty" yaml:"verbose,omitempty"`             // Print detailed debug information to stderr
	WithMetadata bool   `json:"with_metadata,omitempty" yaml:"with_metadata,omitempty"` // Wrap output with run metadata
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// LoadFromEnv loads the config named by SKILLGAP_CONFIG.
// Returns nil with no error when the variable is unset.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		return nil, nil
	}
	return LoadConfig(path)
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since the job description
// may still come from a flag or stdin after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.Resume != "" && c.ResumeFile != "" {
		return fmt.Errorf("config error: 'resume' and 'resume_file' are mutually exclusive")
	}
	if c.Profile != "" && c.ProfileFile != "" {
		return fmt.Errorf("config error: 'profile' and 'profile_file' are mutually exclusive")
	}

	// Validate file paths exist (if specified)
	for _, f := range []struct {
		name string
		path string
	}{
		{"jd_file", c.JobFile},
		{"resume_file", c.ResumeFile},
		{"profile_file", c.ProfileFile},
	} {
		if f.path == "" {
			continue
		}
		if _, err := os.Stat(f.path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s not found: %s", f.name, f.path)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.JobFile == "" {
		result.JobFile = defaults.JobFile
	}
	if result.Resume == "" && result.ResumeFile == "" {
		result.Resume = defaults.Resume
		result.ResumeFile = defaults.ResumeFile
	}
	if result.Profile == "" && result.ProfileFile == "" {
		result.Profile = defaults.Profile
		result.ProfileFile = defaults.ProfileFile
	}
	if result.Out == "" {
		result.Out = defaults.Out
	}

	// Slice fields: use default if unset
	if len(result.Skills) == 0 {
		result.Skills = defaults.Skills
	}

	// Bool fields: cannot distinguish unset from false, so enable if either side is set
	result.Verbose = result.Verbose || defaults.Verbose
	result.WithMetadata = result.WithMetadata || defaults.WithMetadata

	return result
}
