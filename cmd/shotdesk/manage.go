package main

import (
	"fmt"
	"log"

	"github.com/example/shotdesk/internal/platform"
)

// openFn hands a file to the desktop. Tests replace it.
var openFn = platform.OpenFile

type openCmd struct {
	command
}

func parseOpenCmd(args []string, r *root) (*openCmd, error) {
	cmd := &openCmd{command: newCommand(r, "open")}
	if err := cmd.parse(args, cmd); err != nil {
		return nil, err
	}
	if cmd.fs.NArg() != 1 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *openCmd) Run() error {
	e, err := c.root.find(c.fs.Arg(0))
	if err != nil {
		return err
	}
	return openFn(e.Path)
}

type deleteCmd struct {
	command
}

func parseDeleteCmd(args []string, r *root) (*deleteCmd, error) {
	cmd := &deleteCmd{command: newCommand(r, "delete")}
	if err := cmd.parse(args, cmd); err != nil {
		return nil, err
	}
	if cmd.fs.NArg() < 1 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *deleteCmd) Run() error {
	lib := c.root.library()
	store, err := c.root.comments()
	if err != nil {
		return err
	}
	dirty := false
	for _, name := range c.fs.Args() {
		e, err := lib.Find(name)
		if err != nil {
			return err
		}
		if err := lib.Delete(e.Path); err != nil {
			return err
		}
		if _, ok := store.Get(e.Path); ok {
			store.Delete(e.Path)
			dirty = true
		}
		c.root.notifier.Delete(e.Path)
		fmt.Fprintf(c.root.out(), "deleted %s\n", e.Name)
	}
	if dirty {
		if err := store.Save(); err != nil {
			log.Printf("save comments: %v", err)
		}
	}
	return nil
}

type renameCmd struct {
	command
}

func parseRenameCmd(args []string, r *root) (*renameCmd, error) {
	cmd := &renameCmd{command: newCommand(r, "rename")}
	if err := cmd.parse(args, cmd); err != nil {
		return nil, err
	}
	if cmd.fs.NArg() != 2 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *renameCmd) Run() error {
	lib := c.root.library()
	e, err := lib.Find(c.fs.Arg(0))
	if err != nil {
		return err
	}
	newPath, err := lib.Rename(e.Path, c.fs.Arg(1))
	if err != nil {
		return err
	}
	if newPath == e.Path {
		return nil
	}
	store, err := c.root.comments()
	if err != nil {
		return err
	}
	if _, ok := store.Get(e.Path); ok {
		store.Move(e.Path, newPath)
		if err := store.Save(); err != nil {
			return err
		}
	}
	c.root.notifier.Rename(newPath)
	fmt.Fprintln(c.root.out(), newPath)
	return nil
}
