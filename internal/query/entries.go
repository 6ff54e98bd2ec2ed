package query

import (
	"github.com/phobologic/luagmpdoc/internal/layout"
	"github.com/phobologic/luagmpdoc/internal/model"
)

// Entry is one documented entity in a flat index.
type Entry struct {
	Kind        string `yaml:"kind"`
	Side        string `yaml:"side"`
	Category    string `yaml:"category,omitempty"`
	Class       string `yaml:"class,omitempty"`
	Name        string `yaml:"name"`
	Declaration string `yaml:"declaration,omitempty"`
	Path        string `yaml:"path,omitempty"`
}

// Entries flattens docs in output order: classes with their members, then
// functions, events, globals and constants. Members have no path of their
// own; they are written into the class document.
func Entries(docs *model.Docs) []Entry {
	var out []Entry
	for _, cls := range docs.SortedClasses() {
		d := &cls.Definition
		out = append(out, entry(d, "", layout.ClassPath(cls)))
		for _, members := range [][]model.Entity{cls.Constructors, cls.Properties, cls.Methods, cls.Callbacks} {
			for i := range members {
				out = append(out, entry(&members[i], d.Name, ""))
			}
		}
	}
	for i := range docs.Functions {
		out = append(out, entry(&docs.Functions[i], "", layout.FunctionPath(&docs.Functions[i])))
	}
	for i := range docs.Events {
		out = append(out, entry(&docs.Events[i], "", layout.EventPath(&docs.Events[i])))
	}
	for i := range docs.Globals {
		e := entry(&docs.Globals[i], "", layout.GlobalPath(&docs.Globals[i]))
		e.Category = ""
		out = append(out, e)
	}
	for _, g := range docs.Constants {
		path := layout.ConstPath(g)
		for _, el := range g.Elements {
			out = append(out, Entry{
				Kind:     string(model.Constant),
				Side:     string(g.Side),
				Category: g.Category,
				Name:     el.Name,
				Path:     path,
			})
		}
	}
	return out
}

func entry(e *model.Entity, class, path string) Entry {
	return Entry{
		Kind:        string(e.Kind),
		Side:        string(e.Side),
		Category:    e.Category,
		Class:       class,
		Name:        e.Name,
		Declaration: e.Declaration,
		Path:        path,
	}
}
