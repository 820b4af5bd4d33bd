package config

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// Loader handles loading the configuration.
type Loader struct {
	Version      string // build version, "dev" enables the working-directory rc file
	OverridePath string // set at compile time if needed
}

// NewLoader creates a new Loader.
func NewLoader(version string, overridePath string) *Loader {
	return &Loader{
		Version:      version,
		OverridePath: overridePath,
	}
}

// Load attempts to load the configuration. Paths in the result have "~"
// expanded.
func (l *Loader) Load() (*Config, error) {
	path := l.GetConfigPath()
	if path == "" {
		return New(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, err
	}
	if err := cfg.ExpandPaths(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ExpandPaths resolves a leading "~" in Root and CommentsFile.
func (c *Config) ExpandPaths() error {
	root, err := homedir.Expand(c.Root)
	if err != nil {
		return err
	}
	comments, err := homedir.Expand(c.CommentsFile)
	if err != nil {
		return err
	}
	c.Root = root
	c.CommentsFile = comments
	return nil
}

// DefaultPath is where `config save` writes when no file exists yet.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "shotdesk", "config.rc"), nil
}

// GetConfigPath returns the path to the configuration file, or empty string if not found.
func (l *Loader) GetConfigPath() string {
	// 1. Variable override path
	if l.OverridePath != "" {
		if _, err := os.Stat(l.OverridePath); err == nil {
			return l.OverridePath
		}
	}

	// 2. Local run directory (dev mode)
	if l.Version == "dev" {
		wd, _ := os.Getwd()
		localPath := filepath.Join(wd, ".shotdeskrc")
		if _, err := os.Stat(localPath); err == nil {
			return localPath
		}
	}

	// 3. XDG Config Path
	xdgPath, err := DefaultPath()
	if err != nil {
		return ""
	}
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}

	return ""
}
