package config

import (
	"fmt"
	"image/color"
	"sort"
	"strings"
	"time"

	"github.com/example/shotdesk/internal/theme"
)

// Notify holds notification settings.
type Notify struct {
	Capture bool
	Delete  bool
	Rename  bool
}

// Capture holds the polling bounds used while waiting for a capture.
type Capture struct {
	Interval time.Duration
	Timeout  time.Duration
}

// Config holds the application configuration.
type Config struct {
	Theme        string
	Root         string // project root; screenshots live in <Root>/ScreenShots
	Subfolder    string
	Format       string // png or jpg
	Resolution   string // native, 1280x720, 800x600 or WxH
	CommentsFile string
	Trash        bool
	Capture      Capture
	Notify       Notify
	Themes       map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Theme:        "", // empty so env and built-in defaults can apply
		Root:         ".",
		Format:       "png",
		Resolution:   "native",
		CommentsFile: "ScreenshotComments.json",
		Capture: Capture{
			Interval: 100 * time.Millisecond,
			Timeout:  10 * time.Second,
		},
		Themes: make(map[string]*theme.Theme),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	fmt.Fprintf(&sb, "root = %s\n", c.Root)
	if c.Subfolder != "" {
		fmt.Fprintf(&sb, "subfolder = %s\n", c.Subfolder)
	}
	fmt.Fprintf(&sb, "format = %s\n", c.Format)
	fmt.Fprintf(&sb, "resolution = %s\n", c.Resolution)
	fmt.Fprintf(&sb, "comments_file = %s\n", c.CommentsFile)
	fmt.Fprintf(&sb, "trash = %v\n", c.Trash)
	sb.WriteString("\n")

	sb.WriteString("[capture]\n")
	fmt.Fprintf(&sb, "interval = %s\n", c.Capture.Interval)
	fmt.Fprintf(&sb, "timeout = %s\n", c.Capture.Timeout)
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "capture = %v\n", c.Notify.Capture)
	fmt.Fprintf(&sb, "delete = %v\n", c.Notify.Delete)
	fmt.Fprintf(&sb, "rename = %v\n", c.Notify.Rename)
	sb.WriteString("\n")

	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		for _, f := range t.Fields() {
			fmt.Fprintf(&sb, "%s: %s\n", f.Name, toHex(*f.Color))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func toHex(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
