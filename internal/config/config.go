// Package config handles application configuration and command-line argument parsing.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
)

// DefaultPostfix is appended (after a space) to fallback names when a
// collision cannot claim a rename.
const DefaultPostfix = "copy"

// Config holds the application configuration
type Config struct {
	SourcePath string   `arg:"-s,--source" help:"Source tree: local path or sftp://user@host:port/path"`
	TargetPath string   `arg:"-t,--target" help:"Target tree whose file names will be reconciled"`
	Postfix    string   `arg:"--postfix" default:"copy" help:"Postfix for collision fallback names (appended after a space)"`
	DryRun     bool     `arg:"-n,--dry-run" help:"Report what would change without touching the target tree"`
	Exclude    []string `arg:"--exclude,separate" help:"Glob pattern to exclude from matching (repeatable)"`
	Plain      bool     `arg:"--plain" help:"Line-per-event output instead of the TUI"`
}

// Description returns the program description for go-arg
func (Config) Description() string {
	return "Reconciles file names between two mirrored directory trees by fuzzy name matching"
}

// Version returns the version string for go-arg
func (Config) Version() string {
	return "sync-names 1.0.0"
}

// ParseFlags parses command-line flags and returns configuration
func ParseFlags() (*Config, error) {
	cfg := &Config{
		Postfix: DefaultPostfix,
	}

	arg.MustParse(cfg)

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the parsed configuration makes a runnable job.
//
//nolint:err113 // Validation errors are user-facing, not matched programmatically
func (cfg *Config) Validate() error {
	if cfg.SourcePath == "" {
		return fmt.Errorf("source path is required")
	}

	if cfg.TargetPath == "" {
		return fmt.Errorf("target path is required")
	}

	if strings.TrimSpace(cfg.Postfix) == "" {
		return fmt.Errorf("postfix must not be empty")
	}

	err := validateLocalDir("source", cfg.SourcePath)
	if err != nil {
		return err
	}

	return validateLocalDir("target", cfg.TargetPath)
}

// validateLocalDir checks that a local root exists and is a directory.
// Remote roots are validated by the SFTP layer when the connection opens.
//
//nolint:err113 // Validation errors are user-facing, not matched programmatically
func validateLocalDir(label, path string) error {
	if strings.HasPrefix(path, "sftp://") {
		return nil
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("%s path does not exist: %s", label, path)
	}

	if err != nil {
		return fmt.Errorf("cannot access %s path: %w", label, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%s path is not a directory: %s", label, path)
	}

	return nil
}
