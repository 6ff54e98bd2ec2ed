// Package toon implements TOON (Token-Oriented Object Notation) encoding.
package toon

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/phobologic/luagmpdoc/internal/layout"
	"github.com/phobologic/luagmpdoc/internal/model"
)

var (
	needsQuoting = regexp.MustCompile(`[,:"\\{}\[\]]`)
	looksNumeric = regexp.MustCompile(`^-?(?:0|[1-9]\d*)(?:\.\d+)?$`)
	keywords     = map[string]struct{}{
		"true":  {},
		"false": {},
		"null":  {},
	}
)

// Encode converts a documentation model into TOON format. Each collection is
// one table; paths are the locations the generator writes to.
func Encode(project string, docs *model.Docs) string {
	var parts []string

	parts = append(parts, fmt.Sprintf("project: %s", encodeValue(project)))

	classes := docs.SortedClasses()
	var classRows, memberRows [][]string
	for _, cls := range classes {
		d := &cls.Definition
		classRows = append(classRows, []string{
			string(d.Side),
			d.Category,
			d.Name,
			d.Extends,
			layout.ClassPath(cls),
		})
		memberRows = appendMembers(memberRows, d.Name, cls.Constructors)
		memberRows = appendMembers(memberRows, d.Name, cls.Properties)
		memberRows = appendMembers(memberRows, d.Name, cls.Methods)
		memberRows = appendMembers(memberRows, d.Name, cls.Callbacks)
	}
	parts = append(parts, formatTabular("classes", []string{"side", "category", "name", "extends", "path"}, classRows))
	parts = append(parts, formatTabular("members", []string{"class", "kind", "name", "declaration"}, memberRows))

	parts = append(parts, formatTabular("functions", []string{"side", "category", "name", "declaration", "path"},
		entityRows(docs.Functions, layout.FunctionPath)))
	parts = append(parts, formatTabular("events", []string{"side", "category", "name", "declaration", "path"},
		entityRows(docs.Events, layout.EventPath)))

	var globalRows [][]string
	for i := range docs.Globals {
		g := &docs.Globals[i]
		globalRows = append(globalRows, []string{
			string(g.Side),
			g.Name,
			g.Declaration,
			layout.GlobalPath(g),
		})
	}
	parts = append(parts, formatTabular("globals", []string{"side", "name", "declaration", "path"}, globalRows))

	var constRows [][]string
	for _, g := range docs.Constants {
		path := layout.ConstPath(g)
		for _, el := range g.Elements {
			constRows = append(constRows, []string{
				string(g.Side),
				g.Category,
				el.Name,
				path,
			})
		}
	}
	parts = append(parts, formatTabular("constants", []string{"side", "category", "name", "path"}, constRows))

	return strings.Join(parts, "\n")
}

func appendMembers(rows [][]string, class string, members []model.Entity) [][]string {
	for i := range members {
		m := &members[i]
		rows = append(rows, []string{class, string(m.Kind), m.Name, m.Declaration})
	}
	return rows
}

func entityRows(entities []model.Entity, pathOf func(*model.Entity) string) [][]string {
	var rows [][]string
	for i := range entities {
		e := &entities[i]
		rows = append(rows, []string{
			string(e.Side),
			e.Category,
			e.Name,
			e.Declaration,
			pathOf(e),
		})
	}
	return rows
}

func formatTabular(name string, columns []string, rows [][]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s[%d]{%s}:", name, len(rows), strings.Join(columns, ","))
	for _, row := range rows {
		encoded := make([]string, len(row))
		for i, cell := range row {
			encoded[i] = encodeValue(cell)
		}
		fmt.Fprintf(&b, "\n  %s", strings.Join(encoded, ","))
	}
	return b.String()
}

func encodeValue(value string) string {
	if value == "" {
		return `""`
	}

	if value != strings.TrimSpace(value) {
		return quote(value)
	}

	if strings.ContainsAny(value, "\n\r\t") {
		return quote(value)
	}

	if _, ok := keywords[strings.ToLower(value)]; ok {
		return quote(value)
	}

	if looksNumeric.MatchString(value) {
		return value
	}

	if needsQuoting.MatchString(value) {
		return quote(value)
	}

	if strings.HasPrefix(value, "-") {
		return quote(value)
	}

	return value
}

func quote(value string) string {
	escaped := strings.ReplaceAll(value, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	escaped = strings.ReplaceAll(escaped, "\n", `\n`)
	escaped = strings.ReplaceAll(escaped, "\r", `\r`)
	escaped = strings.ReplaceAll(escaped, "\t", `\t`)
	return `"` + escaped + `"`
}
