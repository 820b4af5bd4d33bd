package main

import (
	"bytes"
	"embed"
	"flag"
	"fmt"
	"log"
	"os"
	"sync"
	"text/template"
)

//go:embed templates/*.txt
var helpFS embed.FS

var (
	helpOnce sync.Once
	helpTmpl *template.Template
)

type flagInfo struct {
	Name     string
	DefValue string
	Usage    string
}

func visitFlags(fs *flag.FlagSet) []flagInfo {
	result := []flagInfo{}
	if fs == nil {
		return result
	}
	fs.VisitAll(func(f *flag.Flag) {
		result = append(result, flagInfo{f.Name, f.DefValue, f.Usage})
	})
	return result
}

func parseHelpTemplates() {
	helpTmpl = template.Must(template.New("").Funcs(map[string]any{
		"flags": visitFlags,
	}).ParseFS(helpFS, "templates/*.txt"))
}

type HelpData interface {
	Program() string
	Template() string
	FlagSet() *flag.FlagSet
}

type UsageError struct {
	of HelpData
}

func (e *UsageError) Error() string {
	help, err := e.renderHelp()
	if err != nil {
		return err.Error()
	}
	return help
}

func (e *UsageError) renderHelp() (string, error) {
	helpOnce.Do(parseHelpTemplates)
	var buf bytes.Buffer
	if err := helpTmpl.ExecuteTemplate(&buf, e.of.Template(), e.of); err != nil {
		log.Printf("error rendering help template: %v", err)
		return "", err
	}
	return buf.String(), nil
}

func usageFunc(of HelpData) func() {
	return func() {
		fmt.Fprint(os.Stderr, (&UsageError{of: of}).Error())
	}
}

func (r *root) Template() string { return "root.txt" }
func (c *captureCmd) Template() string { return "capture.txt" }
func (c *listCmd) Template() string { return "list.txt" }
func (c *openCmd) Template() string { return "open.txt" }
func (c *deleteCmd) Template() string { return "delete.txt" }
func (c *renameCmd) Template() string { return "rename.txt" }
func (c *commentCmd) Template() string { return "comment.txt" }
func (c *annotateCmd) Template() string { return "annotate.txt" }
func (c *copyCmd) Template() string { return "copy.txt" }
func (c *panelCmd) Template() string { return "panel.txt" }
func (c *configCmd) Template() string { return "config.txt" }
func (v *versionCmd) Template() string { return "version.txt" }
