// Package query narrows an aggregated documentation model.
package query

import (
	"strings"

	"github.com/phobologic/luagmpdoc/internal/model"
)

// Filter selects entities. Zero values match everything.
type Filter struct {
	Symbol string     // case-insensitive substring of the entity name
	Side   model.Side // exact side
}

// Apply returns a new Docs holding only the entities that match f. A class
// matches when its own name or any member name contains Symbol; a matching
// class keeps all of its members. Constant groups are reduced to their
// matching elements and dropped when none remain.
func Apply(docs *model.Docs, f Filter) *model.Docs {
	if f.Symbol == "" && f.Side == "" {
		return docs
	}
	lower := strings.ToLower(f.Symbol)
	nameOK := func(name string) bool {
		return lower == "" || strings.Contains(strings.ToLower(name), lower)
	}
	sideOK := func(side model.Side) bool {
		return f.Side == "" || side == f.Side
	}

	out := model.NewDocs()
	for key, cls := range docs.Classes {
		if sideOK(key.Side) && classMatches(cls, nameOK) {
			out.Classes[key] = cls
		}
	}
	out.Functions = filterEntities(docs.Functions, nameOK, sideOK)
	out.Events = filterEntities(docs.Events, nameOK, sideOK)
	out.Globals = filterEntities(docs.Globals, nameOK, sideOK)

	for _, g := range docs.Constants {
		if !sideOK(g.Side) {
			continue
		}
		var elems []model.ConstElement
		for _, el := range g.Elements {
			if nameOK(el.Name) {
				elems = append(elems, el)
			}
		}
		if len(elems) > 0 {
			out.Constants = append(out.Constants, &model.ConstGroup{Side: g.Side, Category: g.Category, Elements: elems})
		}
	}
	return out
}

func classMatches(cls *model.ClassDoc, nameOK func(string) bool) bool {
	if nameOK(cls.Definition.Name) {
		return true
	}
	for _, members := range [][]model.Entity{cls.Constructors, cls.Properties, cls.Methods, cls.Callbacks} {
		for i := range members {
			if members[i].Name != "" && nameOK(members[i].Name) {
				return true
			}
		}
	}
	return false
}

func filterEntities(in []model.Entity, nameOK func(string) bool, sideOK func(model.Side) bool) []model.Entity {
	var out []model.Entity
	for i := range in {
		if sideOK(in[i].Side) && nameOK(in[i].Name) {
			out = append(out, in[i])
		}
	}
	return out
}
