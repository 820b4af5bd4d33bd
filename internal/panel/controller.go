package panel

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/example/shotdesk/internal/capture"
	"github.com/example/shotdesk/internal/comments"
	"github.com/example/shotdesk/internal/imageio"
	"github.com/example/shotdesk/internal/library"
	"github.com/example/shotdesk/internal/notify"
)

// Controller applies browser actions to the library and keeps State in
// step. Apart from the wait inside StartCapture, every method runs on the
// window's event goroutine.
type Controller struct {
	Library    *library.Library
	Comments   *comments.Store
	Capturer   capture.Capturer
	Poll       capture.Poll
	Format     imageio.Format
	Resolution capture.Resolution
	Notifier   *notify.Notifier

	// Open hands a file to the desktop. CopyImage publishes pixels to
	// the clipboard.
	Open      func(path string) error
	CopyImage func(img image.Image) error
	Load      Loader

	State *State

	now func() time.Time
}

// NewController wires a controller with an empty State.
func NewController(lib *library.Library, store *comments.Store) *Controller {
	return &Controller{
		Library:  lib,
		Comments: store,
		Capturer: &capture.Screen{},
		Poll:     capture.DefaultPoll(),
		Format:   imageio.PNG,
		Load:     imageio.Load,
		State:    NewState(),
		now:      time.Now,
	}
}

// Reload lists the folder again.
func (c *Controller) Reload() error {
	entries, err := c.Library.List()
	if err != nil {
		return err
	}
	c.State.Refresh(entries)
	return nil
}

// Select loads the i-th visible screenshot.
func (c *Controller) Select(i int) error {
	if err := c.State.Select(i, c.Load); err != nil {
		return err
	}
	if e, ok := c.State.Selected(); ok {
		c.State.Status = e.Name
	}
	return nil
}

// StartCapture asks the capturer for a new screenshot and waits for it in
// the background. done is called once from that goroutine with the path
// and either the result of the wait or the capturer's failure, whichever
// comes first.
func (c *Controller) StartCapture(ctx context.Context, done func(path string, err error)) (string, error) {
	if err := c.Library.EnsureDir(); err != nil {
		return "", err
	}
	path := c.Library.NextCapturePath(c.clock(), c.Format)

	ctx, cancel := context.WithCancel(ctx)
	failed := make(chan error, 1)
	c.Capturer.Start(path, capture.Options{
		Resolution: c.Resolution,
		OnError: func(_ string, err error) {
			select {
			case failed <- err:
			default:
			}
			cancel()
		},
	})
	c.State.Status = "capturing " + filepath.Base(path)
	go func() {
		defer cancel()
		err := capture.WaitForFile(ctx, path, c.Poll)
		select {
		case ferr := <-failed:
			err = fmt.Errorf("failed to capture screen: %w", ferr)
		default:
		}
		done(path, err)
	}()
	return path, nil
}

// FinishCapture reports a completed wait and refreshes the listing.
func (c *Controller) FinishCapture(path string, err error) error {
	if err != nil {
		if errors.Is(err, capture.ErrTimeout) {
			c.State.Status = "capture timed out: " + filepath.Base(path)
		} else {
			c.State.Status = "capture failed: " + err.Error()
		}
		return err
	}
	c.State.Status = "captured " + filepath.Base(path)
	c.Notifier.Capture(path)
	return c.Reload()
}

// OpenSelected opens the selection with the default application.
func (c *Controller) OpenSelected() error {
	e, ok := c.State.Selected()
	if !ok {
		return ErrNoSelection
	}
	if c.Open == nil {
		return fmt.Errorf("open %s: no opener", e.Name)
	}
	return c.Open(e.Path)
}

// DeleteSelected removes the selection and its comment.
func (c *Controller) DeleteSelected() error {
	e, ok := c.State.Selected()
	if !ok {
		return ErrNoSelection
	}
	if err := c.Library.Delete(e.Path); err != nil {
		return err
	}
	c.State.Deselect()
	if _, had := c.Comments.Get(e.Path); had {
		c.Comments.Delete(e.Path)
		if err := c.Comments.Save(); err != nil {
			log.Printf("save comments: %v", err)
		}
	}
	c.State.Status = "deleted " + e.Name
	c.Notifier.Delete(e.Path)
	return c.Reload()
}

// RenameSelected renames the selection to target. An empty target does
// nothing.
func (c *Controller) RenameSelected(target string) error {
	e, ok := c.State.Selected()
	if !ok {
		return ErrNoSelection
	}
	newPath, err := c.Library.Rename(e.Path, target)
	if err != nil {
		return err
	}
	if newPath == e.Path {
		return nil
	}
	c.Comments.Move(e.Path, newPath)
	if err := c.Comments.Save(); err != nil {
		log.Printf("save comments: %v", err)
	}
	// keep the strokes on the renamed file
	c.State.selected = newPath
	if err := c.Reload(); err != nil {
		return err
	}
	c.State.Status = "renamed to " + filepath.Base(newPath)
	c.Notifier.Rename(newPath)
	return nil
}

// Comment returns the comment stored for the selection.
func (c *Controller) Comment() string {
	e, ok := c.State.Selected()
	if !ok {
		return ""
	}
	text, _ := c.Comments.Get(e.Path)
	return text
}

// SetComment stores text for the selection and saves the comments file.
func (c *Controller) SetComment(text string) error {
	e, ok := c.State.Selected()
	if !ok {
		return ErrNoSelection
	}
	c.Comments.Set(e.Path, text)
	if err := c.Comments.Save(); err != nil {
		return err
	}
	c.State.Status = "comment saved"
	return nil
}

// SaveAnnotated writes the painted display buffer next to the selection
// as <name>_annotated.<ext> and returns its path.
func (c *Controller) SaveAnnotated() (string, error) {
	e, ok := c.State.Selected()
	canvas := c.State.Canvas()
	if !ok || canvas == nil {
		return "", ErrNoSelection
	}
	path := AnnotatedPath(e.Path)
	if err := imageio.Save(path, canvas.Display()); err != nil {
		return "", err
	}
	c.State.Status = "saved " + filepath.Base(path)
	return path, c.Reload()
}

// CopySelected publishes the selection, strokes included, to the clipboard.
func (c *Controller) CopySelected() error {
	canvas := c.State.Canvas()
	if canvas == nil {
		return ErrNoSelection
	}
	if c.CopyImage == nil {
		return errors.New("clipboard unavailable")
	}
	if err := c.CopyImage(canvas.Display()); err != nil {
		return err
	}
	c.State.Status = "copied to clipboard"
	return nil
}

// Submit applies a finished prompt.
func (c *Controller) Submit(p Prompt) error {
	switch p.Kind {
	case PromptRename:
		return c.RenameSelected(p.Text)
	case PromptComment:
		return c.SetComment(p.Text)
	case PromptFilter:
		c.State.SetFilter(p.Text)
	}
	return nil
}

// AnnotatedPath returns the file SaveAnnotated writes for path.
func AnnotatedPath(path string) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	if strings.HasSuffix(base, "_annotated") {
		return path
	}
	return base + "_annotated" + ext
}

func (c *Controller) clock() time.Time {
	if c.now == nil {
		return time.Now()
	}
	return c.now()
}
