// Package generate runs the documentation pipeline: discover, scan,
// aggregate, render and write.
package generate

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/phobologic/luagmpdoc/internal/aggregate"
	"github.com/phobologic/luagmpdoc/internal/discover"
	"github.com/phobologic/luagmpdoc/internal/output"
	"github.com/phobologic/luagmpdoc/internal/render"
	"github.com/phobologic/luagmpdoc/internal/scan"
)

// Options configures a run.
type Options struct {
	Project   string
	Out       string
	Templates fs.FS // nil selects the embedded defaults
	Discover  discover.Options
	Scan      scan.Options
}

// Collection is the aggregated model of a project with the counters
// gathered on the way.
type Collection struct {
	State *aggregate.State
	Scan  scan.Stats
}

// Report describes a finished run.
type Report struct {
	Collection
	Summary Summary
	Out     string
}

// Collect discovers, scans and aggregates the project without writing.
func Collect(ctx context.Context, opts Options, log zerolog.Logger) (*Collection, error) {
	root, err := projectRoot(opts.Project)
	if err != nil {
		return nil, err
	}

	dopts := opts.Discover
	dopts.Log = log
	files, err := discover.Files(root, dopts)
	if err != nil {
		return nil, errors.Wrap(err, "discovering files")
	}
	log.Debug().Int("files", len(files)).Str("root", root).Msg("discovered files")

	res, err := scan.New(opts.Scan, log).Scan(ctx, root, files)
	if err != nil {
		return nil, err
	}

	state := aggregate.Fold(res.Items)
	log.Debug().
		Int("candidates", res.Stats.Candidates).
		Int("blocks", res.Stats.Blocks).
		Int("unnamed_classes", state.Stats.UnnamedClasses).
		Int("unnamed_constants", state.Stats.UnnamedConstants).
		Int("demoted", state.Stats.Demoted).
		Int("replaced_classes", state.Stats.ReplacedClasses).
		Msg("aggregated")

	return &Collection{State: state, Scan: res.Stats}, nil
}

// Run executes the full pipeline. Every document is rendered before the
// output directory is touched, so a template error leaves the previous
// output in place.
func Run(ctx context.Context, opts Options, log zerolog.Logger) (*Report, error) {
	if err := CheckOutput(opts.Project, opts.Out); err != nil {
		return nil, err
	}

	tmpl := opts.Templates
	if tmpl == nil {
		tmpl = render.Defaults()
	}
	r, err := render.New(tmpl)
	if err != nil {
		return nil, err
	}

	c, err := Collect(ctx, opts, log)
	if err != nil {
		return nil, err
	}

	docs, sum := Plan(c.State.Docs)
	if sum.UnnamedFunctions > 0 || sum.UnnamedEvents > 0 {
		log.Info().
			Int("functions", sum.UnnamedFunctions).
			Int("events", sum.UnnamedEvents).
			Msg("skipped unnamed entities")
	}

	rendered := make([]string, len(docs))
	for i, d := range docs {
		text, err := r.Render(d.Template, d.Fields)
		if err != nil {
			return nil, errors.Wrapf(err, "rendering %s", d.Path)
		}
		rendered[i] = text
	}

	if err := output.Clean(opts.Out); err != nil {
		return nil, err
	}
	for i, d := range docs {
		if err := output.WriteFile(opts.Out, d.Path, rendered[i]); err != nil {
			return nil, err
		}
	}

	return &Report{Collection: *c, Summary: sum, Out: opts.Out}, nil
}

func projectRoot(project string) (string, error) {
	if project == "" {
		project = "."
	}
	root, err := filepath.Abs(project)
	if err != nil {
		return "", errors.Wrap(err, "resolving project")
	}
	info, err := os.Stat(root)
	if err != nil {
		return "", errors.Wrap(err, "project path")
	}
	if !info.IsDir() {
		return "", errors.Errorf("%s: not a directory", root)
	}
	return root, nil
}
