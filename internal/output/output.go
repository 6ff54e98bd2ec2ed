// Package output manages the generated documentation tree on disk.
package output

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// Clean prepares root for a fresh run. A missing root is created; an existing
// one has all of its children removed while the directory itself is kept.
func Clean(root string) error {
	info, err := os.Stat(root)
	switch {
	case os.IsNotExist(err):
		return errors.Wrap(os.MkdirAll(root, 0o755), "creating output directory")
	case err != nil:
		return errors.Wrap(err, "output directory")
	case !info.IsDir():
		return errors.Errorf("%s: not a directory", root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return errors.Wrap(err, "reading output directory")
	}
	for _, e := range entries {
		if err := os.RemoveAll(filepath.Join(root, e.Name())); err != nil {
			return errors.Wrapf(err, "removing %s", e.Name())
		}
	}
	return nil
}

// WriteFile writes content to the slash-separated path rel under root,
// creating parent directories. Trailing whitespace is dropped and the file
// always ends in exactly one newline. Paths escaping root are rejected.
func WriteFile(root, rel, content string) error {
	if !filepath.IsLocal(filepath.FromSlash(rel)) {
		return errors.Errorf("refusing to write %q outside the output directory", rel)
	}
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "creating directory for %s", rel)
	}
	data := strings.TrimRightFunc(content, unicode.IsSpace) + "\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", rel)
	}
	return nil
}
