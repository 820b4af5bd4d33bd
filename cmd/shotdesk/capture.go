package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/example/shotdesk/internal/capture"
)

// newCapturer builds the capturer used by the capture command.
var newCapturer = func() capture.Capturer {
	return &capture.Screen{}
}

var nowFn = time.Now

type captureCmd struct {
	command
	format     string
	resolution string
	timeout    time.Duration
	comment    string
}

func parseCaptureCmd(args []string, r *root) (*captureCmd, error) {
	cmd := &captureCmd{command: newCommand(r, "capture")}
	cmd.fs.StringVar(&cmd.format, "format", "", "image format: png or jpg (default from config)")
	cmd.fs.StringVar(&cmd.resolution, "resolution", "", "native, 1280x720, 800x600 or WIDTHxHEIGHT (default from config)")
	cmd.fs.DurationVar(&cmd.timeout, "timeout", 0, "how long to wait for the file (default from config)")
	cmd.fs.StringVar(&cmd.comment, "comment", "", "comment to attach to the new screenshot")
	if err := cmd.parse(args, cmd); err != nil {
		return nil, err
	}
	if cmd.fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *captureCmd) Run() error {
	format, err := c.root.format(c.format)
	if err != nil {
		return err
	}
	res, err := c.root.resolution(c.resolution)
	if err != nil {
		return err
	}
	poll := c.root.poll()
	if c.timeout > 0 {
		poll.Timeout = c.timeout
	}

	lib := c.root.library()
	if err := lib.EnsureDir(); err != nil {
		return err
	}
	path := lib.NextCapturePath(nowFn(), format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	failed := make(chan error, 1)
	newCapturer().Start(path, capture.Options{
		Resolution: res,
		OnError: func(_ string, err error) {
			select {
			case failed <- err:
			default:
			}
		},
	})

	waited := make(chan error, 1)
	go func() { waited <- capture.WaitForFile(ctx, path, poll) }()

	select {
	case err := <-failed:
		return fmt.Errorf("failed to capture screen: %w", err)
	case err := <-waited:
		if errors.Is(err, capture.ErrTimeout) {
			return fmt.Errorf("capture did not produce %s: %w", filepath.Base(path), err)
		}
		if err != nil {
			return err
		}
	}

	if c.comment != "" {
		store, err := c.root.comments()
		if err != nil {
			return err
		}
		store.Set(path, c.comment)
		if err := store.Save(); err != nil {
			return err
		}
	}
	c.root.notifier.Capture(path)
	fmt.Fprintln(c.root.out(), path)
	return nil
}
