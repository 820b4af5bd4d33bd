package main

import (
	"fmt"

	"github.com/muesli/termenv"

	"github.com/example/shotdesk/internal/library"
)

type listCmd struct {
	command
	sort     string
	filter   string
	comments bool
	paths    bool
}

func parseListCmd(args []string, r *root) (*listCmd, error) {
	cmd := &listCmd{command: newCommand(r, "list")}
	cmd.fs.StringVar(&cmd.sort, "sort", "name", "sort order: name or date (newest first)")
	cmd.fs.StringVar(&cmd.filter, "filter", "", "only show names containing this text (case-insensitive)")
	cmd.fs.BoolVar(&cmd.comments, "comments", false, "show the comment stored for each screenshot")
	cmd.fs.BoolVar(&cmd.paths, "paths", false, "print absolute paths only")
	if err := cmd.parse(args, cmd); err != nil {
		return nil, err
	}
	if cmd.fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *listCmd) Run() error {
	order, err := library.ParseSortOrder(c.sort)
	if err != nil {
		return err
	}
	lib := c.root.library()
	entries, err := lib.List()
	if err != nil {
		return err
	}
	entries = library.View{Sort: order, Filter: c.filter}.Apply(entries)

	out := termenv.NewOutput(c.root.out())
	if c.paths {
		for _, e := range entries {
			fmt.Fprintln(out, e.Path)
		}
		return nil
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, out.String("no screenshots in "+lib.Dir).Faint())
		return nil
	}

	var notes map[string]string
	if c.comments {
		store, err := c.root.comments()
		if err != nil {
			return err
		}
		notes = store.Entries()
	}
	for _, e := range entries {
		name := out.String(e.Name).Bold()
		when := out.String(e.ModTime.Format("2006-01-02 15:04:05")).Faint()
		fmt.Fprintf(out, "%s  %s  %s\n", name, when, humanSize(e.Size))
		if text, ok := notes[e.Path]; ok && text != "" {
			fmt.Fprintf(out, "    %s\n", out.String(text).Foreground(out.Color("6")))
		}
	}
	return nil
}

func humanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
