// Package parse turns the body of a documentation block into a model.Entity.
package parse

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/phobologic/luagmpdoc/internal/model"
)

var (
	directiveRe = regexp.MustCompile(`^\s*@((?i:read-only)\b|\w+)\s*(.*)$`)
	paramRe     = regexp.MustCompile(`^\(([^)]+)\)\s+(\S+)\s*(.*)$`)
	returnRe    = regexp.MustCompile(`^\(([^)]+)\)\s*(.*)$`)
)

// Parse interprets a raw block body for the given kind label.
func Parse(kind, body string) model.Entity {
	return ParseLines(model.ParseKind(kind), NormalizeLines(body))
}

// ParseLines interprets already normalized lines. Free text before the first
// directive becomes the description; later plain lines only matter while a
// @declaration or @example capture is open.
func ParseLines(kind model.Kind, lines []string) model.Entity {
	p := &parser{e: model.Entity{Kind: kind, Side: model.Unknown}}

	var desc []string
	seenDirective := false
	for _, line := range lines {
		m := directiveRe.FindStringSubmatch(line)
		if m == nil {
			if !seenDirective {
				desc = append(desc, line)
			} else if p.open != captureNone {
				p.buf = append(p.buf, line)
			}
			continue
		}
		seenDirective = true
		p.directive(lookupTag(m[1]), strings.TrimRightFunc(m[2], unicode.IsSpace))
	}
	p.commit()

	e := p.e
	e.Description = strings.TrimSpace(strings.Join(desc, "\n"))
	if e.Category == "" {
		e.Category = model.DefaultCategory
	}
	if e.Kind == model.Global && e.Returns == nil {
		e.Returns = &model.Returns{Type: "void"}
	}
	return e
}

type parser struct {
	e    model.Entity
	open capture
	buf  []string
}

// directive applies one directive line. Switching to a different recognized
// tag closes the open capture; ignored tags leave it open.
func (p *parser) directive(t tag, rest string) {
	if t == tagIgnored {
		return
	}
	if c := t.capture(); p.open != captureNone && p.open != c {
		p.commit()
	}

	value := strings.TrimSpace(rest)
	switch t {
	case tagDeclaration, tagExample:
		p.open = t.capture()
		if value != "" {
			p.buf = append(p.buf, rest)
		}
	case tagName:
		setIfNonEmpty(&p.e.Name, value)
	case tagVersion:
		setIfNonEmpty(&p.e.Version, value)
	case tagDeprecated:
		setIfNonEmpty(&p.e.Deprecated, value)
	case tagExtends:
		setIfNonEmpty(&p.e.Extends, value)
	case tagCategory:
		setIfNonEmpty(&p.e.Category, value)
	case tagSide:
		if value != "" {
			p.e.Side = model.ParseSide(value)
		}
	case tagNote:
		if value != "" {
			p.e.Notes = append(p.e.Notes, value)
		}
	case tagParam:
		if m := paramRe.FindStringSubmatch(value); m != nil {
			p.e.Params = append(p.e.Params, model.Param{
				Type:        strings.TrimSpace(m[1]),
				Name:        strings.TrimSpace(m[2]),
				Description: strings.TrimSpace(m[3]),
			})
		}
	case tagReturn:
		if m := returnRe.FindStringSubmatch(value); m != nil {
			p.e.Returns = &model.Returns{
				Type:        strings.TrimSpace(m[1]),
				Description: strings.TrimSpace(m[2]),
			}
		}
	case tagCancellable:
		p.e.Cancellable = parseBool(value)
	case tagStatic:
		p.e.Static = parseBool(value)
	case tagReadOnly:
		p.e.ReadOnly = parseBool(value)
	}
}

// commit closes the open capture into its field.
func (p *parser) commit() {
	text := strings.TrimRightFunc(strings.Join(p.buf, "\n"), unicode.IsSpace)
	switch p.open {
	case captureDeclaration:
		p.e.Declaration = text
	case captureExample:
		p.e.Example = text
	}
	p.open = captureNone
	p.buf = p.buf[:0]
}

func setIfNonEmpty(field *string, value string) {
	if value != "" {
		*field = value
	}
}
