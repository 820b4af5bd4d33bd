package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/example/shotdesk/internal/clipboard"
	"github.com/example/shotdesk/internal/panel"
	"github.com/example/shotdesk/internal/platform"
)

type panelCmd struct {
	command
}

func parsePanelCmd(args []string, r *root) (*panelCmd, error) {
	cmd := &panelCmd{command: newCommand(r, "panel")}
	if err := cmd.parse(args, cmd); err != nil {
		return nil, err
	}
	if cmd.fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

// controller wires a panel controller from the configuration.
func (c *panelCmd) controller() (*panel.Controller, error) {
	store, err := c.root.comments()
	if err != nil {
		return nil, err
	}
	format, err := c.root.format("")
	if err != nil {
		return nil, err
	}
	res, err := c.root.resolution("")
	if err != nil {
		return nil, err
	}
	ctrl := panel.NewController(c.root.library(), store)
	ctrl.Format = format
	ctrl.Resolution = res
	ctrl.Poll = c.root.poll()
	ctrl.Notifier = c.root.notifier
	ctrl.Open = platform.OpenFile
	ctrl.CopyImage = clipboard.WriteImage
	return ctrl, nil
}

func (c *panelCmd) Run() error {
	ctrl, err := c.controller()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return panel.NewWindow(ctrl, c.root.activeTheme).Run(ctx)
}
