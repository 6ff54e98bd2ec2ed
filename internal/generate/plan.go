package generate

import (
	"github.com/phobologic/luagmpdoc/internal/layout"
	"github.com/phobologic/luagmpdoc/internal/model"
	"github.com/phobologic/luagmpdoc/internal/render"
)

// Document is one file to render: a template, its fields and the
// slash-separated output path relative to the output root.
type Document struct {
	Template string
	Path     string
	Fields   model.Fields
}

// Summary counts what a plan contains.
type Summary struct {
	Classes        int
	Functions      int
	Events         int
	Globals        int
	ConstantGroups int

	UnnamedFunctions int // skipped at render
	UnnamedEvents    int // skipped at render
}

// Documents returns the total number of planned documents.
func (s Summary) Documents() int {
	return s.Classes + s.Functions + s.Events + s.Globals + s.ConstantGroups
}

// Plan lays out every document for docs. Classes come sorted by side,
// category and name; the other collections keep scan order.
func Plan(docs *model.Docs) ([]Document, Summary) {
	var (
		out []Document
		sum Summary
	)

	for _, cls := range docs.SortedClasses() {
		out = append(out, Document{Template: render.Class, Path: layout.ClassPath(cls), Fields: cls.Fields()})
		sum.Classes++
	}

	for i := range docs.Functions {
		e := &docs.Functions[i]
		if e.Name == "" {
			sum.UnnamedFunctions++
			continue
		}
		out = append(out, Document{Template: render.Function, Path: layout.FunctionPath(e), Fields: e.Fields()})
		sum.Functions++
	}

	for i := range docs.Events {
		e := &docs.Events[i]
		if e.Name == "" {
			sum.UnnamedEvents++
			continue
		}
		out = append(out, Document{Template: render.Event, Path: layout.EventPath(e), Fields: e.Fields()})
		sum.Events++
	}

	for i := range docs.Globals {
		e := &docs.Globals[i]
		path := layout.GlobalPath(e)
		fields := e.Fields()
		if e.Name == "" {
			fields["name"] = "Global"
		}
		out = append(out, Document{Template: render.Global, Path: path, Fields: fields})
		sum.Globals++
	}

	for _, g := range docs.Constants {
		out = append(out, Document{Template: render.Const, Path: layout.ConstPath(g), Fields: g.Fields()})
		sum.ConstantGroups++
	}

	return out, sum
}
