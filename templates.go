package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/phobologic/luagmpdoc/internal/render"
)

// newTemplatesCmd implements `luagmpdoc templates`, which writes the built-in
// templates to a directory so they can be customised and passed back with
// --templates.
func newTemplatesCmd(stdout, stderr io.Writer) *cobra.Command {
	var dryRun, force bool

	cmd := &cobra.Command{
		Use:   "templates [dir]",
		Short: "Write the built-in templates to a directory",
		Long: `Write class.md, function.md, event.md, global.md and const.md to dir
(default ./templates). Existing files are left alone unless --force is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "templates"
			if len(args) > 0 {
				dir = args[0]
			}
			return exportTemplates(render.Defaults(), dir, dryRun, force, stdout, stderr)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "list the files that would be written")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing files")
	return cmd
}

// exportTemplates copies every required template from src into dir.
func exportTemplates(src fs.FS, dir string, dryRun, force bool, stdout, stderr io.Writer) error {
	type pending struct {
		path string
		data []byte
	}

	var writes []pending
	for _, name := range render.Required {
		data, err := fs.ReadFile(src, name)
		if err != nil {
			return errors.Wrapf(err, "reading template %s", name)
		}
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil && !force {
			return errors.Errorf("%s already exists (use --force to overwrite)", path)
		}
		writes = append(writes, pending{path: path, data: data})
	}

	if dryRun {
		for _, w := range writes {
			_, _ = fmt.Fprintln(stdout, w.path)
		}
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "creating %s", dir)
	}
	for _, w := range writes {
		if err := os.WriteFile(w.path, w.data, 0o644); err != nil {
			return errors.Wrapf(err, "writing %s", w.path)
		}
	}

	_, _ = fmt.Fprintf(stderr, "wrote %d templates to %s\n", len(writes), dir)
	return nil
}
