package parse

import (
	"strings"

	"github.com/phobologic/luagmpdoc/internal/model"
)

// Declaration builds a documentation signature from the tagged parts of an
// entity. Constructors only get their argument list; the class template wraps
// it with the class name. Everything else reads "<ret> <name>(<args>)".
func Declaration(kind model.Kind, name string, params []model.Param, returns *model.Returns) string {
	args := make([]string, len(params))
	for i, p := range params {
		args[i] = strings.TrimSpace(p.Type + " " + p.Name)
	}
	argList := strings.Join(args, ", ")

	if kind == model.Constructor {
		return argList
	}

	ret := "void"
	if returns != nil {
		if rt := strings.TrimSpace(returns.Type); rt != "" {
			ret = rt
		}
	}
	return ret + " " + name + "(" + argList + ")"
}

// EnsureDeclaration synthesizes a declaration for e under the given kind's
// rules unless one was authored explicitly.
func EnsureDeclaration(e *model.Entity, kind model.Kind) {
	if e.Declaration != "" {
		return
	}
	e.Declaration = Declaration(kind, e.Name, e.Params, e.Returns)
}
