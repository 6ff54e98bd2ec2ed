// Package layout derives output locations for rendered documentation.
// All paths are slash-separated and relative to the output root.
package layout

import (
	"path"
	"regexp"
	"strings"

	"github.com/phobologic/luagmpdoc/internal/model"
)

var nonAlnumRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lower-cases s and collapses every run of other characters into a
// single hyphen. An empty result becomes "uncategorized".
func Slugify(s string) string {
	s = nonAlnumRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "uncategorized"
	}
	return s
}

// ClassPath returns {side}-classes/{slug(category)}/{name}.md.
func ClassPath(c *model.ClassDoc) string {
	return nested("classes", &c.Definition, "UnnamedClass")
}

// FunctionPath returns {side}-functions/{slug(category)}/{name}.md.
func FunctionPath(e *model.Entity) string {
	return nested("functions", e, "UnnamedFunction")
}

// EventPath returns {side}-events/{slug(category)}/{name}.md.
func EventPath(e *model.Entity) string {
	return nested("events", e, "UnnamedEvent")
}

// GlobalPath returns {side}-globals/{name}.md. Globals are not nested by category.
func GlobalPath(e *model.Entity) string {
	return path.Join(sideDir(e.Side, "globals"), fileName(e.Name, "UnnamedGlobal")+".md")
}

// ConstPath returns {side}-constants/{category}.md. The category is used as
// written, not slugified; only path separators are replaced.
func ConstPath(g *model.ConstGroup) string {
	return path.Join(sideDir(g.Side, "constants"), fileName(strings.TrimSpace(g.Category), model.DefaultCategory)+".md")
}

func nested(collection string, e *model.Entity, placeholder string) string {
	category := orDefault(e.Category, model.DefaultCategory)
	return path.Join(sideDir(e.Side, collection), Slugify(category), fileName(e.Name, placeholder)+".md")
}

var separators = strings.NewReplacer("/", "-", `\`, "-")

// fileName turns a documented name into a single path element. Separators
// become hyphens; empty names and names made only of dots get placeholder.
func fileName(name, placeholder string) string {
	name = separators.Replace(name)
	if strings.Trim(name, ".") == "" {
		return placeholder
	}
	return name
}

func sideDir(side model.Side, collection string) string {
	return string(orDefault(side, model.Unknown)) + "-" + collection
}

func orDefault[T ~string](v, def T) T {
	if v == "" {
		return def
	}
	return v
}
