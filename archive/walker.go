// Package archive builds Walk and Find abstractions on top of "archive/zip"
// for containers already loaded into memory.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
)

// WalkFunc is the type of the function called for each file in archive
// visited by Walk. If an error is returned, processing stops.
type WalkFunc func(file *zip.File) error

// Open opens in-memory data as zip archive.
func Open(data []byte) (*zip.Reader, error) {
	return zip.NewReader(bytes.NewReader(data), int64(len(data)))
}

// Walk walks all files in the archive which names start with pattern,
// calling walkFn for each item. Entries with path traversal components
// ("..") or absolute paths stop the walk with an error.
func Walk(r *zip.Reader, pattern string, walkFn WalkFunc) error {
	for _, f := range r.File {
		name := f.FileHeader.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if !f.FileInfo().IsDir() && strings.HasPrefix(name, pattern) {
			if err := walkFn(f); err != nil {
				return err
			}
		}
	}
	return nil
}

// Find returns file with exactly matching name or nil if archive does not
// have it. OOXML part names are case-insensitive, so is the comparison.
func Find(r *zip.Reader, name string) (*zip.File, error) {
	var found *zip.File
	err := Walk(r, "", func(f *zip.File) error {
		if found == nil && strings.EqualFold(f.FileHeader.Name, name) {
			found = f
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// ReadFile returns content of the named file. It is an error if file is absent.
func ReadFile(r *zip.Reader, name string) ([]byte, error) {
	f, err := Find(r, name)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, fmt.Errorf("zip entry %q: %w", name, fs.ErrNotExist)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("zip entry %q: %w", name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("zip entry %q: %w", name, err)
	}
	return data, nil
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return false
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
