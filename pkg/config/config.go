// Package config resolves chatkeep's directories and options from flags and
// environment variables. There is no configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/entrhq/chatkeep/pkg/types"
)

// Environment variables that override the built-in defaults.
const (
	EnvSourceDir     = "CHATKEEP_SOURCE_DIR"
	EnvDestDir       = "CHATKEEP_DEST_DIR"
	EnvManualDestDir = "CHATKEEP_MANUAL_DEST_DIR"
	EnvLogLevel      = "CHATKEEP_LOG_LEVEL"
)

// Downloads folder names, tried in order.
var downloadDirNames = []string{"Downloads", "Téléchargements"}

// destSubPath is where watch mode keeps transcripts, relative to the home directory.
var destSubPath = []string{"Local Sites", "greenseo", "app", "public", "wp-content", "themes", "geekmind-theme", "Txt-AI"}

// Config holds the resolved runtime options.
type Config struct {
	SourceDir     string
	DestDir       string
	ManualDestDir string
	Dialect       string // empty means the mode's default
	LogLevel      string

	Manual      bool
	File        string
	TUI         bool
	Copy        bool
	ShowVersion bool
}

// Defaults returns a Config populated from the environment, falling back to
// paths under the user's home directory.
func Defaults() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	return &Config{
		SourceDir:     envStr(EnvSourceDir, DefaultSourceDir(home)),
		DestDir:       envStr(EnvDestDir, DefaultDestDir(home)),
		ManualDestDir: envStr(EnvManualDestDir, DefaultManualDestDir(home)),
		LogLevel:      envStr(EnvLogLevel, "normal"),
	}, nil
}

// DefaultSourceDir returns the first existing downloads folder under home,
// or the English name when none exists yet.
func DefaultSourceDir(home string) string {
	for _, name := range downloadDirNames {
		dir := filepath.Join(home, name)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return filepath.Join(home, downloadDirNames[0])
}

// DefaultDestDir returns the watch-mode destination under home.
func DefaultDestDir(home string) string {
	return filepath.Join(append([]string{home}, destSubPath...)...)
}

// DefaultManualDestDir returns the manual-mode destination under home.
func DefaultManualDestDir(home string) string {
	return filepath.Join(home, "Txt-AI")
}

// EffectiveDialect returns the dialect to use for the selected mode: the
// explicit one when set, otherwise block for manual mode and inline for watch mode.
func (c *Config) EffectiveDialect() (types.Dialect, error) {
	if c.Dialect != "" {
		return types.ParseDialect(c.Dialect)
	}
	if c.Manual {
		return types.DialectBlock, nil
	}
	return types.DialectInline, nil
}

// Destination returns the output directory for the selected mode.
func (c *Config) Destination() string {
	if c.Manual {
		return c.ManualDestDir
	}
	return c.DestDir
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.SourceDir == "" {
		return fmt.Errorf("source directory is required")
	}
	if c.Destination() == "" {
		return fmt.Errorf("destination directory is required")
	}
	if _, err := c.EffectiveDialect(); err != nil {
		return err
	}
	if !c.Manual && (c.File != "" || c.TUI || c.Copy) {
		return fmt.Errorf("-file, -tui and -copy are only valid with -manual")
	}
	if c.File != "" && c.TUI {
		return fmt.Errorf("-file and -tui cannot be combined")
	}

	// Make paths absolute so log lines and the processed set are unambiguous.
	for _, p := range []*string{&c.SourceDir, &c.DestDir, &c.ManualDestDir} {
		if *p == "" {
			continue
		}
		abs, err := filepath.Abs(*p)
		if err != nil {
			return fmt.Errorf("invalid path %q: %w", *p, err)
		}
		*p = abs
	}

	return nil
}

// EnsureDirs creates the source and destination directories if missing.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.SourceDir, c.Destination()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
