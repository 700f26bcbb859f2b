// Package source loads source files for lexing.
package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
)

var (
	// ErrEmptyPath is returned when no path was given.
	ErrEmptyPath = errors.New("empty path")

	// ErrNotFound is returned when the path does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrNotRegular is returned for directories, devices and other
	// non-regular files.
	ErrNotRegular = errors.New("not a regular file")
)

// File is a source file read fully into memory.
type File struct {
	Path    string // absolute, cleaned path
	Content string
	Size    int64
}

// ReadFile reads the file at path. The returned Path is absolute so that
// diagnostics name the file the same way regardless of the working
// directory.
func ReadFile(path string) (File, error) {
	if path == "" {
		return File{}, ErrEmptyPath
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return File{}, fmt.Errorf("resolve %s: %w", path, err)
	}

	info, err := os.Stat(abs)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return File{}, fmt.Errorf("%w: %s", ErrNotFound, abs)
	case err != nil:
		return File{}, fmt.Errorf("stat %s: %w", abs, err)
	case !info.Mode().IsRegular():
		return File{}, fmt.Errorf("%w: %s", ErrNotRegular, abs)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return File{}, fmt.Errorf("read %s: %w", abs, err)
	}

	return File{Path: abs, Content: string(data), Size: int64(len(data))}, nil
}

var sizeUnits = [...]string{"B", "KB", "MB", "GB", "TB"}

// FormatSize renders a byte count in the largest unit that keeps the value
// at or above 1, using the shortest decimal form of the scaled value.
//
//	FormatSize(512)     // "512 B"
//	FormatSize(1536)    // "1.5 KB"
//	FormatSize(1 << 40) // "1 TB"
func FormatSize(n int64) string {
	size := float64(n)
	unit := 0
	for size >= 1024 && unit < len(sizeUnits)-1 {
		size /= 1024
		unit++
	}
	return strconv.FormatFloat(size, 'f', -1, 64) + " " + sizeUnits[unit]
}
