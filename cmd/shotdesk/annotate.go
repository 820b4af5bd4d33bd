package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/example/shotdesk/internal/annotate"
	"github.com/example/shotdesk/internal/imageio"
	"github.com/example/shotdesk/internal/panel"
	"github.com/example/shotdesk/internal/theme"
)

type annotateCmd struct {
	command
	file   string
	output string
	ink    string
	clear  bool
	points [][2]int
}

func parseAnnotateCmd(args []string, r *root) (*annotateCmd, error) {
	cmd := &annotateCmd{command: newCommand(r, "annotate")}
	cmd.fs.StringVar(&cmd.file, "file", "", "screenshot to annotate (name in the folder or a path)")
	cmd.fs.StringVar(&cmd.output, "output", "", "where to write the result (default <name>_annotated.<ext>)")
	cmd.fs.StringVar(&cmd.ink, "ink", "#FF0000", "stroke color as #RRGGBB")
	cmd.fs.BoolVar(&cmd.clear, "clear", false, "restore the painted pixels after stamping")
	if err := cmd.parse(args, cmd); err != nil {
		return nil, err
	}
	if cmd.file == "" || cmd.fs.NArg() == 0 {
		return nil, &UsageError{of: cmd}
	}
	for _, arg := range cmd.fs.Args() {
		p, err := parsePoint(arg)
		if err != nil {
			return nil, err
		}
		cmd.points = append(cmd.points, p)
	}
	return cmd, nil
}

// parsePoint reads "x,y" in texture coordinates.
func parsePoint(s string) ([2]int, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return [2]int{}, fmt.Errorf("invalid point %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return [2]int{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return [2]int{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return [2]int{x, y}, nil
}

func (c *annotateCmd) Run() error {
	ink, err := theme.ParseColor(c.ink)
	if err != nil {
		return fmt.Errorf("ink: %w", err)
	}
	e, err := c.root.find(c.file)
	if err != nil {
		return err
	}
	img, err := imageio.Load(e.Path)
	if err != nil {
		return err
	}
	canvas := annotate.New(img)
	for _, p := range c.points {
		canvas.Stamp(p[0], p[1], ink)
	}
	if c.clear {
		canvas.Clear()
	}
	out := c.output
	if out == "" {
		out = panel.AnnotatedPath(e.Path)
	}
	if err := imageio.Save(out, canvas.Display()); err != nil {
		return err
	}
	fmt.Fprintln(c.root.out(), out)
	return nil
}
