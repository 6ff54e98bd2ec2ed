package parse

import "strings"

// tag is the closed set of directives the parser understands.
type tag int

const (
	tagIgnored tag = iota
	tagName
	tagVersion
	tagDeprecated
	tagSide
	tagCategory
	tagExtends
	tagNote
	tagParam
	tagReturn
	tagCancellable
	tagStatic
	tagReadOnly
	tagDeclaration
	tagExample
)

var tagNames = map[string]tag{
	"name":        tagName,
	"version":     tagVersion,
	"deprecated":  tagDeprecated,
	"side":        tagSide,
	"category":    tagCategory,
	"extends":     tagExtends,
	"note":        tagNote,
	"notes":       tagNote,
	"param":       tagParam,
	"return":      tagReturn,
	"returns":     tagReturn,
	"cancellable": tagCancellable,
	"static":      tagStatic,
	"readonly":    tagReadOnly,
	"read_only":   tagReadOnly,
	"read-only":   tagReadOnly,
	"declaration": tagDeclaration,
	"example":     tagExample,
}

func lookupTag(name string) tag {
	return tagNames[strings.ToLower(name)]
}

// capture names the multi-line field that is currently accumulating lines.
type capture int

const (
	captureNone capture = iota
	captureDeclaration
	captureExample
)

func (t tag) capture() capture {
	switch t {
	case tagDeclaration:
		return captureDeclaration
	case tagExample:
		return captureExample
	}
	return captureNone
}

var truthy = map[string]struct{}{
	"":     {},
	"1":    {},
	"true": {},
	"yes":  {},
	"y":    {},
	"on":   {},
}

func parseBool(value string) bool {
	_, ok := truthy[strings.ToLower(strings.TrimSpace(value))]
	return ok
}
