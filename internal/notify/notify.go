// Package notify sends desktop notifications for library changes.
package notify

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/shotdesk/internal/platform"
)

// Event identifies a notification trigger.
type Event string

const (
	// EventCapture fires once a capture has been written to disk.
	EventCapture Event = "capture"
	// EventDelete fires after a screenshot is deleted or trashed.
	EventDelete Event = "delete"
	// EventRename fires after a screenshot is renamed.
	EventRename Event = "rename"
)

// Preferences holds the notification title and a body template per event.
// Templates take a single %s verb.
type Preferences struct {
	Title     string
	Templates map[Event]string
}

// DefaultPreferences returns the built-in notification text.
func DefaultPreferences() Preferences {
	return Preferences{
		Title: "shotdesk",
		Templates: map[Event]string{
			EventCapture: "Captured %s",
			EventDelete:  "Deleted %s",
			EventRename:  "Renamed to %s",
		},
	}
}

// LoadPreferences applies SHOTDESK_NOTIFY_* environment overrides on top
// of the defaults.
func LoadPreferences() Preferences {
	prefs := DefaultPreferences()
	if v := strings.TrimSpace(os.Getenv("SHOTDESK_NOTIFY_TITLE")); v != "" {
		prefs.Title = v
	}
	for _, ev := range []Event{EventCapture, EventDelete, EventRename} {
		key := "SHOTDESK_NOTIFY_" + strings.ToUpper(string(ev)) + "_TEXT"
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			prefs.Templates[ev] = v
		}
	}
	return prefs
}

// sendFn delivers a notification. Tests replace it.
var sendFn = platform.Notify

// Notifier sends notifications for the events that were enabled.
type Notifier struct {
	prefs   Preferences
	enabled map[Event]bool
}

// New creates a Notifier with every event disabled.
func New(prefs Preferences) *Notifier {
	templates := make(map[Event]string, len(prefs.Templates))
	for k, v := range prefs.Templates {
		templates[k] = v
	}
	return &Notifier{
		prefs:   Preferences{Title: prefs.Title, Templates: templates},
		enabled: make(map[Event]bool),
	}
}

// Enable toggles delivery for event.
func (n *Notifier) Enable(event Event, on bool) {
	if n == nil {
		return
	}
	n.enabled[event] = on
}

// Enabled reports whether event will be delivered.
func (n *Notifier) Enabled(event Event) bool {
	return n != nil && n.enabled[event]
}

// Capture announces a new screenshot, using it as the notification icon.
func (n *Notifier) Capture(path string) {
	opts := platform.Options{}
	if abs, err := filepath.Abs(path); err == nil {
		if _, err := os.Stat(abs); err == nil {
			opts.IconPath = abs
		}
	}
	n.dispatch(EventCapture, filepath.Base(path), opts)
}

// Delete announces a removed screenshot.
func (n *Notifier) Delete(path string) {
	n.dispatch(EventDelete, filepath.Base(path), platform.Options{})
}

// Rename announces a screenshot's new name.
func (n *Notifier) Rename(path string) {
	n.dispatch(EventRename, filepath.Base(path), platform.Options{})
}

// Body renders the notification text for event, or "" when the event has
// no template.
func (n *Notifier) Body(event Event, detail string) string {
	if n == nil {
		return ""
	}
	tmpl := strings.TrimSpace(n.prefs.Templates[event])
	if tmpl == "" {
		return ""
	}
	if !strings.Contains(tmpl, "%") {
		return tmpl
	}
	return strings.TrimSpace(fmt.Sprintf(tmpl, strings.TrimSpace(detail)))
}

func (n *Notifier) dispatch(event Event, detail string, opts platform.Options) {
	if !n.Enabled(event) {
		return
	}
	body := n.Body(event, detail)
	if body == "" {
		return
	}
	if err := sendFn(n.prefs.Title, body, opts); err != nil {
		log.Printf("notification %s: %v", event, err)
	}
}
