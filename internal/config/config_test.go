package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"
)

func init() {
	// tests point HOME at temporary directories
	homedir.DisableCache = true
}

func TestParse(t *testing.T) {
	input := `
theme = my_custom_theme
root = /tmp/project
subfolder = level1
format = JPEG
resolution = 1280x720
comments_file = /tmp/project/notes.json
trash = true

[capture]
interval = 250ms
timeout = 3s

[notify]
capture = true
delete = false
rename = true

[theme.my_custom_theme]
Background = #111111
Foreground = #FFFFFF
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Theme != "my_custom_theme" {
		t.Errorf("Expected theme 'my_custom_theme', got '%s'", cfg.Theme)
	}
	if cfg.Root != "/tmp/project" || cfg.Subfolder != "level1" {
		t.Errorf("unexpected root/subfolder %q %q", cfg.Root, cfg.Subfolder)
	}
	if cfg.Format != "jpg" {
		t.Errorf("Expected format jpg, got %q", cfg.Format)
	}
	if cfg.Resolution != "1280x720" {
		t.Errorf("Expected resolution 1280x720, got %q", cfg.Resolution)
	}
	if cfg.CommentsFile != "/tmp/project/notes.json" {
		t.Errorf("unexpected comments file %q", cfg.CommentsFile)
	}
	if !cfg.Trash {
		t.Error("Expected trash to be true")
	}
	if cfg.Capture.Interval != 250*time.Millisecond || cfg.Capture.Timeout != 3*time.Second {
		t.Errorf("unexpected capture settings %+v", cfg.Capture)
	}
	if !cfg.Notify.Capture || cfg.Notify.Delete || !cfg.Notify.Rename {
		t.Errorf("unexpected notify settings %+v", cfg.Notify)
	}

	theme, ok := cfg.Themes["my_custom_theme"]
	if !ok {
		t.Fatal("Expected theme 'my_custom_theme' to be loaded")
	}
	if theme.Background.R != 0x11 || theme.Background.G != 0x11 || theme.Background.B != 0x11 {
		t.Errorf("Unexpected Background color: %+v", theme.Background)
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{
		"format = gif",
		"trash = maybe",
		"[capture]\ntimeout = soon",
		"[capture]\ninterval = -1s",
		"[notify]\ncapture = perhaps",
	} {
		if _, err := Parse(strings.NewReader(input)); err == nil {
			t.Errorf("expected error for %q", input)
		}
	}
}

func TestCircular(t *testing.T) {
	input := `theme = dark
root = /home/user/game
subfolder = qa
format = jpg

[capture]
timeout = 1m

[notify]
capture = true
delete = true
rename = false

[theme.custom]
Name = custom
Background = #000000
Foreground = #FFFFFF
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}

	generated := cfg.String()

	cfg2, err := Parse(strings.NewReader(generated))
	if err != nil {
		t.Fatalf("Circular parse failed: %v", err)
	}

	if cfg.Theme != cfg2.Theme {
		t.Errorf("Theme mismatch: %q vs %q", cfg.Theme, cfg2.Theme)
	}
	if cfg.Root != cfg2.Root || cfg.Subfolder != cfg2.Subfolder || cfg.Format != cfg2.Format {
		t.Errorf("root section mismatch: %+v vs %+v", cfg, cfg2)
	}
	if cfg.Capture != cfg2.Capture {
		t.Errorf("Capture mismatch: %+v vs %+v", cfg.Capture, cfg2.Capture)
	}
	if cfg.Notify != cfg2.Notify {
		t.Errorf("Notify mismatch: %+v vs %+v", cfg.Notify, cfg2.Notify)
	}

	t1 := cfg.Themes["custom"]
	t2 := cfg2.Themes["custom"]
	if t1 == nil || t2 == nil {
		t.Fatalf("Custom theme missing in one config")
	}
	if t1.Background != t2.Background {
		t.Errorf("Theme background mismatch: %v vs %v", t1.Background, t2.Background)
	}
}

func TestLoaderOverrideAndExpansion(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(t.TempDir(), "custom.rc")
	if err := os.WriteFile(path, []byte("root = ~/game\ncomments_file = ~/notes.json\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := NewLoader("1.0.0", path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Root != filepath.Join(home, "game") {
		t.Errorf("root not expanded: %q", cfg.Root)
	}
	if cfg.CommentsFile != filepath.Join(home, "notes.json") {
		t.Errorf("comments file not expanded: %q", cfg.CommentsFile)
	}
}

func TestLoaderDefaultsWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	cfg, err := NewLoader("dev", "").Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Format != "png" || cfg.Resolution != "native" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}
