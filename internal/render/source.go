package render

import (
	"archive/zip"
	"bytes"
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

//go:embed templates/*.md
var defaultFS embed.FS

// Required lists the template files every template source must provide.
var Required = []string{"class.md", "function.md", "event.md", "global.md", "const.md"}

// ErrTemplatesNotFound is returned when a template source lacks a required file.
var ErrTemplatesNotFound = errors.New("templates not found")

// Defaults returns the embedded default templates.
func Defaults() fs.FS {
	sub, err := fs.Sub(defaultFS, "templates")
	if err != nil {
		panic(err) // embedded layout is fixed at build time
	}
	return sub
}

// Source resolves a templates location. It accepts a directory holding the
// templates, a directory with a "templates" subfolder holding them, or a .zip
// archive with them at its root or under "templates/". An empty path selects
// the embedded defaults.
func Source(path string) (fs.FS, error) {
	if path == "" {
		return Defaults(), nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrap(err, "templates path")
	}

	var root fs.FS
	switch {
	case info.IsDir():
		root = os.DirFS(path)
	case strings.EqualFold(filepath.Ext(path), ".zip"):
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "reading templates archive")
		}
		zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, errors.Wrapf(err, "opening templates archive %s", path)
		}
		root = zr
	default:
		return nil, errors.Wrapf(ErrTemplatesNotFound, "unsupported templates path %s", path)
	}

	if hasAll(root) {
		return root, nil
	}
	if sub, err := fs.Sub(root, "templates"); err == nil && hasAll(sub) {
		return sub, nil
	}
	return nil, errors.Wrapf(ErrTemplatesNotFound, "%s must contain %s", path, strings.Join(Required, ", "))
}

func hasAll(fsys fs.FS) bool {
	for _, name := range Required {
		info, err := fs.Stat(fsys, name)
		if err != nil || info.IsDir() {
			return false
		}
	}
	return true
}
