// Package discover finds source files that may carry documentation blocks.
package discover

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	ignore "github.com/sabhiram/go-gitignore"
)

// DefaultExtensions are scanned when no extension list is configured.
var DefaultExtensions = []string{".cpp", ".hpp", ".h"}

// FileEntry represents a discovered source file.
type FileEntry struct {
	Path string // Relative to the project root
	Size int64
}

// Options controls which files Files returns.
type Options struct {
	// Extensions is the allow-list of lower-case extensions with a leading
	// dot. Nil means every extension.
	Extensions []string
	// Gitignore skips files git would ignore: `git ls-files` in a checkout,
	// otherwise the root .gitignore.
	Gitignore bool
	// Log receives warnings for paths the walk could not read.
	Log zerolog.Logger
}

var skipDirs = map[string]struct{}{
	"__pycache__":  {},
	"node_modules": {},
	".git":         {},
	".hg":          {},
	".svn":         {},
	"venv":         {},
	".venv":        {},
	"vendor":       {},
	"build":        {},
	"dist":         {},
	".tox":         {},
}

var binaryExts = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".webp": {},
	".exe":  {},
	".dll":  {},
	".so":   {},
	".zip":  {},
	".7z":   {},
	".rar":  {},
	".pdf":  {},
}

// Files discovers candidate files under root, sorted by relative path so
// that every run sees them in the same order.
func Files(root string, opts Options) ([]FileEntry, error) {
	var extSet map[string]struct{}
	if opts.Extensions != nil {
		extSet = make(map[string]struct{}, len(opts.Extensions))
		for _, ext := range opts.Extensions {
			extSet[strings.ToLower(ext)] = struct{}{}
		}
	}

	var (
		gitFiles map[string]struct{}
		gi       *ignore.GitIgnore
	)
	if opts.Gitignore {
		gitFiles = gitLsFiles(root)
		if gitFiles == nil {
			gi = loadGitignore(root)
		}
	}

	var results []FileEntry

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			opts.Log.Warn().Err(err).Str("path", path).Msg("skipping unreadable path")
			return nil
		}

		name := d.Name()

		if d.IsDir() {
			if path == root {
				return nil
			}
			if _, skip := skipDirs[strings.ToLower(name)]; skip {
				return filepath.SkipDir
			}
			return nil
		}

		// Skip symlinks and other non-regular files
		if !d.Type().IsRegular() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(name))
		if _, bin := binaryExts[ext]; bin {
			return nil
		}
		if extSet != nil {
			if _, ok := extSet[ext]; !ok {
				return nil
			}
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		slashRel := filepath.ToSlash(rel)

		if gitFiles != nil {
			if _, ok := gitFiles[slashRel]; !ok {
				return nil
			}
		} else if gi != nil && gi.MatchesPath(slashRel) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}

		results = append(results, FileEntry{Path: rel, Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "walking %s", root)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Path < results[j].Path
	})

	return results, nil
}

func gitLsFiles(root string) map[string]struct{} {
	gitDir := filepath.Join(root, ".git")
	info, err := os.Stat(gitDir)
	if err != nil || !info.IsDir() {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "ls-files", "--cached", "--others", "--exclude-standard")
	cmd.Dir = root
	out, err := cmd.Output()
	if err != nil {
		return nil
	}

	files := make(map[string]struct{})
	for _, line := range strings.Split(strings.TrimRight(string(out), "\n"), "\n") {
		if line != "" {
			files[line] = struct{}{}
		}
	}
	return files
}

func loadGitignore(root string) *ignore.GitIgnore {
	path := filepath.Join(root, ".gitignore")
	gi, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return nil
	}
	return gi
}
