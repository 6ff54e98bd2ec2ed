// Package model defines core data structures for luagmpdoc.
package model

import (
	"sort"
	"strings"
)

// Kind is the entity kind named in a block header, e.g. "(class)".
type Kind string

const (
	Class       Kind = "class"
	Constructor Kind = "constructor"
	Method      Kind = "method"
	Property    Kind = "property"
	Callback    Kind = "callback"
	Function    Kind = "function"
	Event       Kind = "event"
	Global      Kind = "global"
	Constant    Kind = "constant"
)

var kindAliases = map[string]Kind{
	"class":       Class,
	"constructor": Constructor,
	"method":      Method,
	"property":    Property,
	"callback":    Callback,
	"function":    Function,
	"func":        Function,
	"event":       Event,
	"global":      Global,
	"constant":    Constant,
	"const":       Constant,
}

// ParseKind normalizes a raw kind label. Unrecognized labels become Global.
func ParseKind(raw string) Kind {
	if k, ok := kindAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return k
	}
	return Global
}

// Nested reports whether entities of this kind belong to a class.
func (k Kind) Nested() bool {
	switch k {
	case Constructor, Method, Property, Callback:
		return true
	}
	return false
}

// Side is the runtime audience of a documented item.
type Side string

const (
	Client  Side = "client"
	Server  Side = "server"
	Shared  Side = "shared"
	Both    Side = "both"
	Unknown Side = "unknown"
)

// ParseSide maps a raw @side value onto the closed set, falling back to Unknown.
func ParseSide(raw string) Side {
	switch s := Side(strings.ToLower(strings.TrimSpace(raw))); s {
	case Client, Server, Shared, Both:
		return s
	}
	return Unknown
}

// DefaultCategory is used when a block never names a category.
const DefaultCategory = "Uncategorized"

// Param is one @param directive.
type Param struct {
	Type        string
	Name        string
	Description string
}

// Returns is the @return directive.
type Returns struct {
	Type        string
	Description string
}

// Entity is the parsed representation of one tagged comment block.
// Empty strings mean the corresponding tag was never given.
type Entity struct {
	Kind        Kind
	Name        string
	Description string
	Version     string
	Deprecated  string
	Extends     string
	Side        Side
	Category    string
	Notes       []string
	Params      []Param
	Returns     *Returns
	Example     string
	Declaration string

	Cancellable bool
	Static      bool
	ReadOnly    bool
}

// ClassDoc is a class definition with the members attached to it.
type ClassDoc struct {
	Definition   Entity
	Constructors []Entity
	Properties   []Entity
	Methods      []Entity
	Callbacks    []Entity
}

// ClassKey identifies a class across the whole run.
type ClassKey struct {
	Side     Side
	Category string
	Name     string
}

func (k ClassKey) String() string {
	return string(k.Side) + "::" + k.Category + "::" + k.Name
}

// KeyOf returns the aggregation key of a class entity.
func KeyOf(e *Entity) ClassKey {
	return ClassKey{Side: e.Side, Category: e.Category, Name: e.Name}
}

// ConstElement is one named constant inside a ConstGroup.
type ConstElement struct {
	Name        string
	Description string
}

// ConstKey identifies a constant group.
type ConstKey struct {
	Side     Side
	Category string
}

// ConstGroup collects constants that share a side and category.
type ConstGroup struct {
	Side     Side
	Category string
	Elements []ConstElement
}

// Docs is the aggregated documentation model for one run.
type Docs struct {
	Classes   map[ClassKey]*ClassDoc
	Functions []Entity
	Events    []Entity
	Globals   []Entity
	Constants []*ConstGroup
}

// NewDocs returns an empty model ready for aggregation.
func NewDocs() *Docs {
	return &Docs{Classes: make(map[ClassKey]*ClassDoc)}
}

// SortedClasses returns classes ordered by side, category, then name.
func (d *Docs) SortedClasses() []*ClassDoc {
	keys := make([]ClassKey, 0, len(d.Classes))
	for k := range d.Classes {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Side != keys[j].Side {
			return keys[i].Side < keys[j].Side
		}
		if keys[i].Category != keys[j].Category {
			return keys[i].Category < keys[j].Category
		}
		return keys[i].Name < keys[j].Name
	})
	out := make([]*ClassDoc, len(keys))
	for i, k := range keys {
		out[i] = d.Classes[k]
	}
	return out
}
