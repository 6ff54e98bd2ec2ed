// Package scan reads discovered files and parses their documentation blocks.
//
// Files are processed concurrently, but the returned items are always in
// file order and, within a file, in block order. Aggregation depends on it.
package scan

import (
	"context"
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/phobologic/luagmpdoc/internal/aggregate"
	"github.com/phobologic/luagmpdoc/internal/block"
	"github.com/phobologic/luagmpdoc/internal/discover"
	"github.com/phobologic/luagmpdoc/internal/lang"
	"github.com/phobologic/luagmpdoc/internal/parse"
)

// Options tunes a Scanner.
type Options struct {
	Workers     int   // <= 0 means GOMAXPROCS
	MaxFileSize int64 // <= 0 disables the limit
	// SyntaxAware restricts matching to comment nodes for languages with a
	// registered grammar. Other files fall back to the plain grammar.
	SyntaxAware bool
}

// Stats summarizes a scan.
type Stats struct {
	Files      int // files considered after the size filter
	Oversized  int // files skipped for exceeding MaxFileSize
	Candidates int // files that passed the marker pre-scan
	Blocks     int // blocks parsed
}

// Result is the ordered output of a scan.
type Result struct {
	Items []aggregate.Item
	Stats Stats
}

// Scanner turns files into parsed entities.
type Scanner struct {
	opts Options
	log  zerolog.Logger
}

// New creates a Scanner.
func New(opts Options, log zerolog.Logger) *Scanner {
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	return &Scanner{opts: opts, log: log}
}

type fileResult struct {
	candidate bool
	items     []aggregate.Item
}

// Scan processes files under root. The first read failure aborts the scan.
func (s *Scanner) Scan(ctx context.Context, root string, files []discover.FileEntry) (*Result, error) {
	res := &Result{}
	files = s.filterBySize(files, &res.Stats)
	res.Stats.Files = len(files)

	results := make([]fileResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := s.scanFile(ctx, root, f)
			if err != nil {
				return errors.Wrap(err, f.Path)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Collect results in original order
	for _, r := range results {
		if r.candidate {
			res.Stats.Candidates++
		}
		res.Stats.Blocks += len(r.items)
		res.Items = append(res.Items, r.items...)
	}

	s.log.Info().
		Int("files", res.Stats.Files).
		Int("candidates", res.Stats.Candidates).
		Int("blocks", res.Stats.Blocks).
		Msg("scan complete")

	return res, nil
}

func (s *Scanner) scanFile(ctx context.Context, root string, f discover.FileEntry) (fileResult, error) {
	absPath := filepath.Join(root, f.Path)

	ok, err := discover.MightContainDocs(absPath)
	if err != nil || !ok {
		return fileResult{}, err
	}

	text, err := discover.ReadText(absPath)
	if err != nil {
		return fileResult{}, err
	}

	blocks, err := s.extract(ctx, f.Path, text)
	if err != nil {
		return fileResult{}, err
	}

	items := make([]aggregate.Item, len(blocks))
	for i, b := range blocks {
		items[i] = aggregate.Item{File: f.Path, Entity: parse.Parse(b.Kind, b.Body)}
	}

	s.log.Debug().Str("file", f.Path).Int("blocks", len(blocks)).Msg("parsed")
	return fileResult{candidate: true, items: items}, nil
}

func (s *Scanner) extract(ctx context.Context, path, text string) ([]block.Block, error) {
	if s.opts.SyntaxAware {
		if l := lang.ForExtension(filepath.Ext(path)); l != nil {
			return block.ExtractComments(ctx, l, []byte(text))
		}
	}
	return block.Extract(text), nil
}

func (s *Scanner) filterBySize(files []discover.FileEntry, stats *Stats) []discover.FileEntry {
	if s.opts.MaxFileSize <= 0 {
		return files
	}
	var kept []discover.FileEntry
	for _, f := range files {
		if f.Size > s.opts.MaxFileSize {
			s.log.Warn().Str("file", f.Path).Int64("limit", s.opts.MaxFileSize).Msg("skipped, file too large")
			stats.Oversized++
			continue
		}
		kept = append(kept, f)
	}
	return kept
}
