package lang

import (
	"github.com/smacker/go-tree-sitter/c"
	"github.com/smacker/go-tree-sitter/cpp"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/javascript"
)

func init() {
	Languages["c"] = &Language{
		Name:       "c",
		Extensions: []string{".c"},
		lang:       c.GetLanguage(),
	}
	// Headers are parsed as C++ since most documented projects are C++.
	Languages["cpp"] = &Language{
		Name:       "cpp",
		Extensions: []string{".cpp", ".cc", ".cxx", ".hpp", ".hh", ".hxx", ".h"},
		lang:       cpp.GetLanguage(),
	}
	Languages["go"] = &Language{
		Name:       "go",
		Extensions: []string{".go"},
		lang:       golang.GetLanguage(),
	}
	Languages["javascript"] = &Language{
		Name:       "javascript",
		Extensions: []string{".js", ".mjs", ".cjs"},
		lang:       javascript.GetLanguage(),
	}
}
