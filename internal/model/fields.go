package model

// Fields is the field mapping handed to a template. Keys match the attribute
// names templates reference; every key is always present.
type Fields map[string]any

// Fields returns the template mapping for a single entity.
func (e *Entity) Fields() Fields {
	params := make([]Fields, len(e.Params))
	for i, p := range e.Params {
		params[i] = Fields{
			"type":        p.Type,
			"name":        p.Name,
			"description": p.Description,
		}
	}

	var returns any
	if e.Returns != nil {
		returns = Fields{
			"type":        e.Returns.Type,
			"description": e.Returns.Description,
		}
	}

	notes := e.Notes
	if notes == nil {
		notes = []string{}
	}

	return Fields{
		"kind":         string(e.Kind),
		"name":         e.Name,
		"description":  e.Description,
		"version":      e.Version,
		"deprecated":   e.Deprecated,
		"extends":      e.Extends,
		"side":         string(e.Side),
		"category":     e.Category,
		"notes":        notes,
		"params":       params,
		"returns":      returns,
		"example_code": e.Example,
		"declaration":  e.Declaration,
		"cancellable":  e.Cancellable,
		"static":       e.Static,
		"read_only":    e.ReadOnly,
	}
}

// Fields returns the class template mapping.
func (c *ClassDoc) Fields() Fields {
	return Fields{
		"definition":   c.Definition.Fields(),
		"constructors": entityFields(c.Constructors),
		"properties":   entityFields(c.Properties),
		"methods":      entityFields(c.Methods),
		"callbacks":    entityFields(c.Callbacks),
	}
}

// Fields returns the constant group template mapping.
func (g *ConstGroup) Fields() Fields {
	elements := make([]Fields, len(g.Elements))
	for i, el := range g.Elements {
		elements[i] = Fields{
			"name":        el.Name,
			"description": el.Description,
		}
	}
	return Fields{
		"side":     string(g.Side),
		"category": g.Category,
		"elements": elements,
	}
}

func entityFields(entities []Entity) []Fields {
	out := make([]Fields, len(entities))
	for i := range entities {
		out[i] = entities[i].Fields()
	}
	return out
}
