// Package lang provides a language registry mapping file extensions to
// tree-sitter grammars and their embedded comment queries.
package lang

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/pkg/errors"
	sitter "github.com/smacker/go-tree-sitter"
)

//go:embed queries/*.scm
var queryFS embed.FS

// Language holds tree-sitter configuration for a C-family language whose
// block comments may carry documentation blocks.
type Language struct {
	Name       string
	Extensions []string
	lang       *sitter.Language
	queryOnce  sync.Once
	query      *sitter.Query
	queryErr   error
}

// GetLanguage returns the tree-sitter Language pointer.
func (l *Language) GetLanguage() *sitter.Language {
	return l.lang
}

// NewParser creates a fresh tree-sitter parser for this language.
// Each goroutine must use its own parser (not thread-safe).
func (l *Language) NewParser() *sitter.Parser {
	p := sitter.NewParser()
	p.SetLanguage(l.lang)
	return p
}

// GetCommentQuery returns the compiled comment query (safe to share across goroutines).
func (l *Language) GetCommentQuery() (*sitter.Query, error) {
	l.queryOnce.Do(func() {
		data, err := queryFS.ReadFile(fmt.Sprintf("queries/%s.scm", l.Name))
		if err != nil {
			l.queryErr = errors.Wrap(err, "reading query file")
			return
		}
		q, err := sitter.NewQuery(data, l.lang)
		if err != nil {
			l.queryErr = errors.Wrap(err, "compiling query")
			return
		}
		l.query = q
	})
	return l.query, l.queryErr
}

// Languages maps language names to their configuration.
// Populated by init() functions in per-language files.
var Languages = map[string]*Language{}

// extensionMap is built lazily after all init() functions have run.
var extensionMap map[string]*Language
var extensionOnce sync.Once

func getExtensionMap() map[string]*Language {
	extensionOnce.Do(func() {
		extensionMap = make(map[string]*Language)
		for _, l := range Languages {
			for _, ext := range l.Extensions {
				extensionMap[ext] = l
			}
		}
	})
	return extensionMap
}

// ForExtension returns the language for a file extension, or nil if no
// grammar is registered. Matching is case-insensitive.
func ForExtension(ext string) *Language {
	return getExtensionMap()[strings.ToLower(ext)]
}

// NodeText returns the source text of a tree-sitter node.
func NodeText(node *sitter.Node, source []byte) string {
	return string(source[node.StartByte():node.EndByte()])
}
