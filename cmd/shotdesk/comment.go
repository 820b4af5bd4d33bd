package main

import (
	"fmt"
	"strings"
)

type commentCmd struct {
	command
	clear bool
}

func parseCommentCmd(args []string, r *root) (*commentCmd, error) {
	cmd := &commentCmd{command: newCommand(r, "comment")}
	cmd.fs.BoolVar(&cmd.clear, "clear", false, "forget the comment")
	if err := cmd.parse(args, cmd); err != nil {
		return nil, err
	}
	if cmd.fs.NArg() < 1 || (cmd.clear && cmd.fs.NArg() > 1) {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *commentCmd) Run() error {
	e, err := c.root.find(c.fs.Arg(0))
	if err != nil {
		return err
	}
	store, err := c.root.comments()
	if err != nil {
		return err
	}
	switch {
	case c.clear:
		store.Delete(e.Path)
	case c.fs.NArg() > 1:
		store.Set(e.Path, strings.Join(c.fs.Args()[1:], " "))
	default:
		if text, ok := store.Get(e.Path); ok {
			fmt.Fprintln(c.root.out(), text)
		}
		return nil
	}
	return store.Save()
}
