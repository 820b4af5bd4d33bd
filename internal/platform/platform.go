// Package platform wraps the host desktop: notifications and handing files
// to their default application.
package platform

import (
	"fmt"
	"os"
	"os/exec"
)

// Options configures how a notification is displayed.
type Options struct {
	// IconPath is an image shown with the notification where supported.
	IconPath string
}

// appName identifies notifications sent by this program.
const appName = "shotdesk"

// runFn starts an external command and returns without waiting for the
// application it launches. Tests replace it.
var runFn = func(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// OpenFile opens path with the desktop's default application for it.
func OpenFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	name, args := openCommand(path)
	if name == "" {
		return fmt.Errorf("open %s: no opener for this platform", path)
	}
	if err := runFn(name, args...); err != nil {
		return fmt.Errorf("open %s with %s: %w", path, name, err)
	}
	return nil
}
