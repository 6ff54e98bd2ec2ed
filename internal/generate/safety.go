package generate

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnsafeOutput is returned when clearing the output directory would
// delete the project being documented.
var ErrUnsafeOutput = errors.New("output directory would remove the project")

// CheckOutput rejects an output root that equals or contains project.
func CheckOutput(project, out string) error {
	p, err := filepath.Abs(project)
	if err != nil {
		return errors.Wrap(err, "resolving project")
	}
	o, err := filepath.Abs(out)
	if err != nil {
		return errors.Wrap(err, "resolving output")
	}

	rel, err := filepath.Rel(o, p)
	if err != nil {
		return nil // different volumes
	}
	if rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))) {
		return errors.Wrapf(ErrUnsafeOutput, "%s contains %s", o, p)
	}
	return nil
}
