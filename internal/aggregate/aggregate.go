// Package aggregate folds parsed entities into the documentation model.
//
// Class members carry no explicit link to their class. A member belongs to
// the class block that most recently preceded it in the same file, so the
// fold must see entities in scan order.
package aggregate

import (
	"github.com/phobologic/luagmpdoc/internal/model"
	"github.com/phobologic/luagmpdoc/internal/parse"
)

// Item is one parsed entity and the file it was found in.
type Item struct {
	File   string
	Entity model.Entity
}

// Stats counts entities that did not make it into the model as written.
type Stats struct {
	UnnamedClasses   int // class blocks without @name, dropped
	UnnamedConstants int // constant blocks without @name, dropped
	Demoted          int // members with no preceding class, filed as globals
	ReplacedClasses  int // class blocks that replaced an earlier definition
}

// State is the fold accumulator.
type State struct {
	Docs  *model.Docs
	Stats Stats

	currentClass map[string]model.ClassKey
	constGroups  map[model.ConstKey]*model.ConstGroup
}

// NewState returns an empty accumulator.
func NewState() *State {
	return &State{
		Docs:         model.NewDocs(),
		currentClass: make(map[string]model.ClassKey),
		constGroups:  make(map[model.ConstKey]*model.ConstGroup),
	}
}

// Fold runs Add over items in order and returns the final state.
func Fold(items []Item) *State {
	s := NewState()
	for _, it := range items {
		s.Add(it)
	}
	return s
}

// CurrentClass reports the class members of file currently attach to.
func (s *State) CurrentClass(file string) (model.ClassKey, bool) {
	k, ok := s.currentClass[file]
	return k, ok
}

// Add folds a single entity into the state.
func (s *State) Add(it Item) {
	e := it.Entity
	switch e.Kind {
	case model.Class:
		s.addClass(it.File, e)
	case model.Constructor, model.Method, model.Property, model.Callback:
		s.addMember(it.File, e)
	case model.Function:
		parse.EnsureDeclaration(&e, model.Function)
		s.Docs.Functions = append(s.Docs.Functions, e)
	case model.Event:
		parse.EnsureDeclaration(&e, model.Event)
		s.Docs.Events = append(s.Docs.Events, e)
	case model.Constant:
		s.addConstant(e)
	default:
		s.addGlobal(e)
	}
}

// addClass registers a class definition. A later class with the same key
// replaces the definition but keeps the members gathered so far.
func (s *State) addClass(file string, e model.Entity) {
	if e.Name == "" {
		s.Stats.UnnamedClasses++
		return
	}
	key := model.KeyOf(&e)
	if cls, ok := s.Docs.Classes[key]; ok {
		cls.Definition = e
		s.Stats.ReplacedClasses++
	} else {
		s.Docs.Classes[key] = &model.ClassDoc{Definition: e}
	}
	s.currentClass[file] = key
}

func (s *State) addMember(file string, e model.Entity) {
	key, ok := s.currentClass[file]
	if !ok {
		s.Stats.Demoted++
		s.addGlobal(e)
		return
	}
	cls := s.Docs.Classes[key]
	switch e.Kind {
	case model.Constructor:
		parse.EnsureDeclaration(&e, model.Constructor)
		cls.Constructors = append(cls.Constructors, e)
	case model.Method:
		parse.EnsureDeclaration(&e, model.Method)
		cls.Methods = append(cls.Methods, e)
	case model.Property:
		cls.Properties = append(cls.Properties, e)
	case model.Callback:
		parse.EnsureDeclaration(&e, model.Callback)
		cls.Callbacks = append(cls.Callbacks, e)
	}
}

func (s *State) addGlobal(e model.Entity) {
	e.Kind = model.Global
	if e.Returns == nil {
		e.Returns = &model.Returns{Type: "void"}
	}
	parse.EnsureDeclaration(&e, model.Global)
	s.Docs.Globals = append(s.Docs.Globals, e)
}

func (s *State) addConstant(e model.Entity) {
	if e.Name == "" {
		s.Stats.UnnamedConstants++
		return
	}
	key := model.ConstKey{Side: e.Side, Category: e.Category}
	g, ok := s.constGroups[key]
	if !ok {
		g = &model.ConstGroup{Side: e.Side, Category: e.Category}
		s.constGroups[key] = g
		s.Docs.Constants = append(s.Docs.Constants, g)
	}
	g.Elements = append(g.Elements, model.ConstElement{
		Name:        e.Name,
		Description: e.Description,
	})
}
