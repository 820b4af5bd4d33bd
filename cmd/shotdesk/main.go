package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/example/shotdesk/internal/capture"
	"github.com/example/shotdesk/internal/comments"
	"github.com/example/shotdesk/internal/config"
	"github.com/example/shotdesk/internal/imageio"
	"github.com/example/shotdesk/internal/library"
	"github.com/example/shotdesk/internal/notify"
	"github.com/example/shotdesk/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs       *flag.FlagSet
	program  string
	config   *config.Config
	notifier *notify.Notifier
	stdout   io.Writer

	rootDir       string
	subfolder     string
	trash         bool
	themeName     string
	notifyCapture bool
	notifyDelete  bool
	notifyRename  bool
	activeTheme   *theme.Theme
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func (r *root) subcommand(name string) string {
	return strings.TrimSpace(r.program + " " + name)
}

func newRoot() *root {
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}
	return rootFor(cfg)
}

// rootFor builds the root command with flag defaults taken from cfg.
func rootFor(cfg *config.Config) *root {
	r := &root{
		fs:       flag.NewFlagSet("shotdesk", flag.ExitOnError),
		program:  "shotdesk",
		config:   cfg,
		notifier: notify.New(notify.LoadPreferences()),
		stdout:   os.Stdout,
	}
	// Precedence: CLI > Env > Config > Default. Empty flags fall through
	// in Run.
	r.fs.StringVar(&r.rootDir, "root", "", "project root holding the ScreenShots folder (env SHOTDESK_ROOT)")
	r.fs.StringVar(&r.subfolder, "subfolder", cfg.Subfolder, "subfolder of ScreenShots to work in")
	r.fs.BoolVar(&r.trash, "trash", cfg.Trash, "move deleted screenshots to the desktop trash")
	r.fs.StringVar(&r.themeName, "theme", "", "panel color theme (default, dark, or a theme file; env SHOTDESK_THEME)")
	r.fs.BoolVar(&r.notifyCapture, "notify-capture", cfg.Notify.Capture, "show a desktop notification after a capture")
	r.fs.BoolVar(&r.notifyDelete, "notify-delete", cfg.Notify.Delete, "show a desktop notification after a delete")
	r.fs.BoolVar(&r.notifyRename, "notify-rename", cfg.Notify.Rename, "show a desktop notification after a rename")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}
	r.notifier.Enable(notify.EventCapture, r.notifyCapture)
	r.notifier.Enable(notify.EventDelete, r.notifyDelete)
	r.notifier.Enable(notify.EventRename, r.notifyRename)
	r.activeTheme = r.loadTheme()

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "capture":
		cmd, err = parseCaptureCmd(subArgs, r)
	case "list", "ls":
		cmd, err = parseListCmd(subArgs, r)
	case "open":
		cmd, err = parseOpenCmd(subArgs, r)
	case "delete", "rm":
		cmd, err = parseDeleteCmd(subArgs, r)
	case "rename", "mv":
		cmd, err = parseRenameCmd(subArgs, r)
	case "comment":
		cmd, err = parseCommentCmd(subArgs, r)
	case "annotate":
		cmd, err = parseAnnotateCmd(subArgs, r)
	case "copy":
		cmd, err = parseCopyCmd(subArgs, r)
	case "panel":
		cmd, err = parsePanelCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd, err = parseVersionCmd(subArgs, r)
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

func (r *root) loadTheme() *theme.Theme {
	name := r.themeName
	if name == "" {
		name = os.Getenv("SHOTDESK_THEME")
	}
	if name == "" && r.config != nil {
		name = r.config.Theme
	}
	if r.config != nil {
		if t, ok := r.config.Themes[name]; ok {
			return t
		}
	}
	t, err := theme.NewLoader().Load(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load theme '%s': %v. using default.\n", name, err)
		return theme.Default()
	}
	return t
}

// projectRoot resolves the root folder: flag, then SHOTDESK_ROOT, then
// the config file.
func (r *root) projectRoot() string {
	if r.rootDir != "" {
		return r.rootDir
	}
	if env := strings.TrimSpace(os.Getenv("SHOTDESK_ROOT")); env != "" {
		return env
	}
	if r.config != nil && r.config.Root != "" {
		return r.config.Root
	}
	return "."
}

func (r *root) library() *library.Library {
	lib := library.New(r.projectRoot(), r.subfolder)
	lib.Trash = r.trash
	return lib
}

func (r *root) comments() (*comments.Store, error) {
	path := comments.DefaultFile
	if r.config != nil && r.config.CommentsFile != "" {
		path = r.config.CommentsFile
	}
	return comments.Load(path)
}

// format is the configured capture format unless override is set.
func (r *root) format(override string) (imageio.Format, error) {
	v := override
	if v == "" && r.config != nil {
		v = r.config.Format
	}
	if v == "" {
		return imageio.PNG, nil
	}
	return imageio.ParseFormat(v)
}

func (r *root) resolution(override string) (capture.Resolution, error) {
	v := override
	if v == "" && r.config != nil {
		v = r.config.Resolution
	}
	return capture.ParseResolution(v)
}

func (r *root) poll() capture.Poll {
	if r.config == nil {
		return capture.DefaultPoll()
	}
	return capture.Poll{Interval: r.config.Capture.Interval, Timeout: r.config.Capture.Timeout}
}

func (r *root) out() io.Writer {
	if r.stdout == nil {
		return os.Stdout
	}
	return r.stdout
}

// find resolves a screenshot given by name or path.
func (r *root) find(name string) (library.Entry, error) {
	return r.library().Find(name)
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// command holds what every subcommand shares.
type command struct {
	*root
	fs   *flag.FlagSet
	name string
}

func newCommand(r *root, name string) command {
	return command{root: r, fs: flag.NewFlagSet(name, flag.ContinueOnError), name: name}
}

func (c command) Program() string {
	return c.root.subcommand(c.name)
}

func (c command) FlagSet() *flag.FlagSet {
	return c.fs
}

// parse reads flags for of. Help requests become a UsageError so that
// main prints the rendered help once.
func (c command) parse(args []string, of HelpData) error {
	c.fs.SetOutput(io.Discard)
	c.fs.Usage = func() {}
	if err := c.fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return &UsageError{of: of}
		}
		return fmt.Errorf("%s: %w", c.Program(), err)
	}
	return nil
}
