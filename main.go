// luagmpdoc generates Markdown API documentation from tagged comment blocks.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/phobologic/luagmpdoc/internal/config"
	"github.com/phobologic/luagmpdoc/internal/discover"
	"github.com/phobologic/luagmpdoc/internal/generate"
	"github.com/phobologic/luagmpdoc/internal/logging"
	"github.com/phobologic/luagmpdoc/internal/model"
	"github.com/phobologic/luagmpdoc/internal/query"
	"github.com/phobologic/luagmpdoc/internal/render"
	"github.com/phobologic/luagmpdoc/internal/scan"
	"github.com/phobologic/luagmpdoc/internal/toon"
)

var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.Execute()
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:   "luagmpdoc [project]",
		Short: "Generate Markdown docs from luagmp comment blocks",
		Long: `luagmpdoc scans source files for /* luagmp (kind) ... */ comment blocks
(the legacy /* luadoc (kind) ... */ prefix is also accepted) and renders one
Markdown file per class, function, event, global and constant group.

The output directory is cleared before every run.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, cfgPath, args)
			if err != nil {
				return err
			}
			return runGenerate(cmd.Context(), cfg, stdout, stderr)
		},
	}
	root.SetVersionTemplate("luagmpdoc {{.Version}}\n")

	pf := root.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "config file (default ./luagmpdoc.yaml when present)")
	pf.String("project", ".", "project directory to scan")
	pf.String("ext", "", "comma-separated extensions to scan (default .cpp,.hpp,.h; * for all)")
	pf.BoolP("verbose", "v", false, "log scan and aggregation details")
	pf.Int("workers", 0, "files scanned concurrently (default GOMAXPROCS)")
	pf.Bool("gitignore", false, "honour .gitignore and git ls-files")
	pf.Bool("syntax-aware", false, "only match blocks inside real comments (C, C++, Go, JavaScript)")
	pf.Int64("max-file-size", config.DefaultMaxFileSize, "skip files larger than this many bytes")

	f := root.Flags()
	f.StringP("out", "o", "docs", "output directory (cleared before writing)")
	f.StringP("templates", "t", "", "template directory or .zip (default built-in templates)")

	root.AddCommand(newIndexCmd(&cfgPath, stdout, stderr))
	root.AddCommand(newTemplatesCmd(stdout, stderr))
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(stdout, "luagmpdoc %s\n", version)
		},
	})

	return root
}

func loadConfig(cmd *cobra.Command, cfgPath string, args []string) (*config.Config, error) {
	cfg, err := config.Load(cmd.Flags(), cfgPath)
	if err != nil {
		return nil, err
	}
	if len(args) > 0 {
		cfg.Project = args[0]
	}
	return cfg, nil
}

func pipelineOptions(cfg *config.Config) generate.Options {
	return generate.Options{
		Project: cfg.Project,
		Out:     cfg.Out,
		Discover: discover.Options{
			Extensions: cfg.Extensions(),
			Gitignore:  cfg.Gitignore,
		},
		Scan: scan.Options{
			Workers:     cfg.Workers,
			MaxFileSize: cfg.MaxFileSize,
			SyntaxAware: cfg.SyntaxAware,
		},
	}
}

func runGenerate(ctx context.Context, cfg *config.Config, stdout, stderr io.Writer) error {
	log := logging.New(stderr, cfg.Verbose)

	opts := pipelineOptions(cfg)
	tmpl, err := render.Source(cfg.Templates)
	if err != nil {
		return err
	}
	opts.Templates = tmpl

	rep, err := generate.Run(ctx, opts, log)
	if err != nil {
		return err
	}

	out, err := filepath.Abs(rep.Out)
	if err != nil {
		out = rep.Out
	}
	s := rep.Summary
	_, _ = fmt.Fprintf(stdout, "Done. Parsed %d blocks.\n", rep.Scan.Blocks)
	_, _ = fmt.Fprintf(stdout, "  classes:   %d\n", s.Classes)
	_, _ = fmt.Fprintf(stdout, "  functions: %d\n", s.Functions)
	_, _ = fmt.Fprintf(stdout, "  events:    %d\n", s.Events)
	_, _ = fmt.Fprintf(stdout, "  globals:   %d\n", s.Globals)
	_, _ = fmt.Fprintf(stdout, "  constants: %d\n", s.ConstantGroups)
	_, _ = fmt.Fprintf(stdout, "Output: %s\n", out)
	return nil
}

func newIndexCmd(cfgPath *string, stdout, stderr io.Writer) *cobra.Command {
	var (
		format string
		symbol string
		side   string
	)

	cmd := &cobra.Command{
		Use:   "index [project]",
		Short: "Print every documented entity and its output path",
		Long: `index scans and aggregates like the default command but writes no files.
It prints a TOON table per collection, or a flat YAML list with --format yaml.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := query.Filter{Symbol: symbol}
			if side != "" {
				filter.Side = model.ParseSide(side)
				if filter.Side == model.Unknown && side != string(model.Unknown) {
					return errors.Errorf("unknown side %q", side)
				}
			}
			if format != "toon" && format != "yaml" {
				return errors.Errorf("unsupported format %q", format)
			}

			cfg, err := loadConfig(cmd, *cfgPath, args)
			if err != nil {
				return err
			}
			log := logging.New(stderr, cfg.Verbose)

			c, err := generate.Collect(cmd.Context(), pipelineOptions(cfg), log)
			if err != nil {
				return err
			}
			docs := query.Apply(c.State.Docs, filter)

			if format == "yaml" {
				enc := yaml.NewEncoder(stdout)
				enc.SetIndent(2)
				if err := enc.Encode(query.Entries(docs)); err != nil {
					return errors.Wrap(err, "encoding yaml")
				}
				return errors.Wrap(enc.Close(), "encoding yaml")
			}

			project, err := filepath.Abs(cfg.Project)
			if err != nil {
				return errors.Wrap(err, "resolving project")
			}
			_, _ = fmt.Fprintln(stdout, toon.Encode(filepath.Base(project), docs))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "toon", "output format: toon or yaml")
	cmd.Flags().StringVarP(&symbol, "symbol", "s", "", "keep entities whose name contains this (case-insensitive)")
	cmd.Flags().StringVar(&side, "side", "", "keep one side: client, server, shared, both or unknown")
	return cmd
}
