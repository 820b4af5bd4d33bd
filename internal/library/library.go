// Package library manages the folder of captured screenshots.
package library

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Bios-Marcel/wastebasket/v2"

	"github.com/example/shotdesk/internal/imageio"
)

// FolderName is the managed directory created under the project root.
const FolderName = "ScreenShots"

// NamePrefix and TimeLayout build capture file names such as
// ScreenShot_2024-05-01_13-04-59.png.
const (
	NamePrefix = "ScreenShot_"
	TimeLayout = "2006-01-02_15-04-05"
)

var (
	// ErrOutsideLibrary is returned when a rename would move a file out of
	// the managed folder.
	ErrOutsideLibrary = errors.New("target is outside the screenshot folder")
	// ErrExists is returned when a rename target is already taken.
	ErrExists = errors.New("target already exists")
)

// trashFn moves files to the desktop trash. Tests swap it out.
var trashFn = func(paths ...string) error { return wastebasket.Trash(paths...) }

// Entry describes one screenshot file.
type Entry struct {
	Path    string
	Name    string
	ModTime time.Time
	Size    int64
}

// Library is a screenshot folder on disk.
type Library struct {
	Dir string
	// Trash sends deleted files to the desktop trash instead of removing
	// them.
	Trash bool
}

// New returns the library at <root>/ScreenShots/<subfolder>. The directory
// is not created until it is needed.
func New(root, subfolder string) *Library {
	dir := filepath.Join(root, FolderName)
	if sub := strings.TrimSpace(subfolder); sub != "" {
		dir = filepath.Join(dir, sub)
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return &Library{Dir: dir}
}

// EnsureDir creates the folder if it does not exist yet.
func (l *Library) EnsureDir() error {
	if err := os.MkdirAll(l.Dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", l.Dir, err)
	}
	return nil
}

// CaptureName returns the file name for a capture taken at t.
func CaptureName(t time.Time, f imageio.Format) string {
	return NamePrefix + t.Format(TimeLayout) + "." + string(f)
}

// CapturePath returns the absolute path for a capture taken at t.
func (l *Library) CapturePath(t time.Time, f imageio.Format) string {
	return filepath.Join(l.Dir, CaptureName(t, f))
}

// NextCapturePath returns CapturePath for t, or the first free
// "<name>_N.<ext>" variant (N from 2) when that file already exists, so
// two captures in the same second never share a path.
func (l *Library) NextCapturePath(t time.Time, f imageio.Format) string {
	path := l.CapturePath(t, f)
	base := strings.TrimSuffix(path, filepath.Ext(path))
	for n := 2; exists(path); n++ {
		path = fmt.Sprintf("%s_%d.%s", base, n, f)
	}
	return path
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// List returns the PNG and JPEG files directly inside the folder in
// directory order. A missing folder simply has no screenshots.
func (l *Library) List() ([]Entry, error) {
	des, err := os.ReadDir(l.Dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", l.Dir, err)
	}
	var out []Entry
	for _, de := range des {
		if de.IsDir() || !IsScreenshot(de.Name()) {
			continue
		}
		info, err := de.Info()
		if err != nil {
			// removed between ReadDir and Info
			continue
		}
		out = append(out, Entry{
			Path:    filepath.Join(l.Dir, de.Name()),
			Name:    de.Name(),
			ModTime: info.ModTime(),
			Size:    info.Size(),
		})
	}
	return out, nil
}

// IsScreenshot reports whether name has a .png or .jpg extension.
func IsScreenshot(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg":
		return true
	}
	return false
}

// Find resolves name against the folder. Absolute paths and plain file
// names are both accepted.
func (l *Library) Find(name string) (Entry, error) {
	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.Dir, name)
	}
	info, err := os.Stat(path)
	if err != nil {
		return Entry{}, fmt.Errorf("find %s: %w", name, err)
	}
	return Entry{Path: path, Name: filepath.Base(path), ModTime: info.ModTime(), Size: info.Size()}, nil
}

// Delete removes the file at path. A file that is already gone is not an
// error.
func (l *Library) Delete(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if l.Trash {
		if err := trashFn(path); err != nil {
			return fmt.Errorf("trash %s: %w", path, err)
		}
		return nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return nil
}

// Rename moves path to target and returns the new path. An empty target is
// a cancelled rename and returns path unchanged. A bare name is resolved
// inside the folder and gets the old extension appended unless it already
// ends in an image extension, so "v1.2" becomes "v1.2.png"; any
// result outside the folder is refused with ErrOutsideLibrary.
func (l *Library) Rename(path, target string) (string, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return path, nil
	}
	if !IsScreenshot(target) {
		target += filepath.Ext(path)
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(l.Dir, target)
	}
	target = filepath.Clean(target)
	if !l.contains(target) {
		return path, fmt.Errorf("rename %s to %s: %w", filepath.Base(path), target, ErrOutsideLibrary)
	}
	if target == filepath.Clean(path) {
		return path, nil
	}
	if _, err := os.Stat(target); err == nil {
		return path, fmt.Errorf("rename %s to %s: %w", filepath.Base(path), filepath.Base(target), ErrExists)
	}
	if err := os.Rename(path, target); err != nil {
		return path, fmt.Errorf("rename %s: %w", filepath.Base(path), err)
	}
	return target, nil
}

func (l *Library) contains(path string) bool {
	rel, err := filepath.Rel(filepath.Clean(l.Dir), path)
	if err != nil {
		return false
	}
	return rel != "." && !strings.HasPrefix(rel, "..") && !strings.ContainsRune(rel, filepath.Separator)
}
