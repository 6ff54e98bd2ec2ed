// Package render executes the Markdown templates for documentation entities.
package render

import (
	"bytes"
	"io/fs"
	"strings"
	"text/template"

	"github.com/pkg/errors"

	"github.com/phobologic/luagmpdoc/internal/model"
)

// Template identifiers. Each maps to "<id>.md" in the template source.
const (
	Class    = "class"
	Function = "function"
	Event    = "event"
	Global   = "global"
	Const    = "const"
)

var funcs = template.FuncMap{
	"join":  strings.Join,
	"lower": strings.ToLower,
	"upper": strings.ToUpper,
	"trim":  strings.TrimSpace,
}

// Renderer holds a parsed template set.
type Renderer struct {
	tmpl *template.Template
}

// New parses the required templates from fsys. Referencing a field that is
// not in the mapping is an execution error.
func New(fsys fs.FS) (*Renderer, error) {
	if !hasAll(fsys) {
		return nil, errors.Wrapf(ErrTemplatesNotFound, "need %s", strings.Join(Required, ", "))
	}
	tmpl, err := template.New("luagmpdoc").
		Option("missingkey=error").
		Funcs(funcs).
		ParseFS(fsys, Required...)
	if err != nil {
		return nil, errors.Wrap(err, "parsing templates")
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render executes template id with fields.
func (r *Renderer) Render(id string, fields model.Fields) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, id+".md", fields); err != nil {
		return "", errors.Wrapf(err, "rendering %s template", id)
	}
	return buf.String(), nil
}
