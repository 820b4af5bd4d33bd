package main

import (
	"fmt"
	"os"

	"github.com/example/shotdesk/internal/clipboard"
)

var (
	copyFileFn = clipboard.CopyFile
	copyTextFn = clipboard.WriteText
)

type copyCmd struct {
	command
	path bool
}

func parseCopyCmd(args []string, r *root) (*copyCmd, error) {
	cmd := &copyCmd{command: newCommand(r, "copy")}
	cmd.fs.BoolVar(&cmd.path, "path", false, "copy the absolute path instead of the image")
	if err := cmd.parse(args, cmd); err != nil {
		return nil, err
	}
	if cmd.fs.NArg() != 1 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *copyCmd) Run() error {
	e, err := c.root.find(c.fs.Arg(0))
	if err != nil {
		return err
	}
	if c.path {
		if err := copyTextFn(e.Path); err != nil {
			return fmt.Errorf("copy path: %w", err)
		}
		fmt.Fprintf(os.Stderr, "copied path of %s\n", e.Name)
		return nil
	}
	if err := copyFileFn(e.Path); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "copied %s to clipboard\n", e.Name)
	return nil
}
