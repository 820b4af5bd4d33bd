package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/shotdesk/internal/config"
)

type configCmd struct {
	command
}

func parseConfigCmd(args []string, r *root) (*configCmd, error) {
	cmd := &configCmd{command: newCommand(r, "config")}
	if err := cmd.parse(args, cmd); err != nil {
		return nil, err
	}
	if cmd.fs.NArg() != 1 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *configCmd) Run() error {
	switch sub := c.fs.Arg(0); sub {
	case "print":
		fmt.Fprint(c.root.out(), c.root.config.String())
		return nil
	case "save":
		return c.runSave()
	default:
		return fmt.Errorf("unknown config command: %s", sub)
	}
}

// runSave writes the effective configuration back to the file it was
// loaded from, or to the default location.
func (c *configCmd) runSave() error {
	path := config.NewLoader(version, configPathOverride).GetConfigPath()
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return fmt.Errorf("failed to get user home dir: %w", err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(c.root.config.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	fmt.Fprintf(os.Stderr, "Configuration saved to %s\n", path)
	return nil
}
