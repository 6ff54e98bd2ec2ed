package block

import (
	"context"

	"github.com/pkg/errors"
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/phobologic/luagmpdoc/internal/lang"
)

// ExtractComments parses source with the language grammar and only looks for
// blocks inside real comment nodes, so marker text in string literals or
// disabled code paths outside comments is not picked up.
func ExtractComments(ctx context.Context, l *lang.Language, source []byte) ([]Block, error) {
	if len(source) == 0 {
		return nil, nil
	}

	query, err := l.GetCommentQuery()
	if err != nil {
		return nil, errors.Wrapf(err, "%s comment query", l.Name)
	}

	parser := l.NewParser()
	defer parser.Close()

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s source", l.Name)
	}
	defer tree.Close()

	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(query, tree.RootNode())

	var blocks []Block
	for {
		match, ok := qc.NextMatch()
		if !ok {
			break
		}
		for _, c := range match.Captures {
			blocks = append(blocks, Extract(lang.NodeText(c.Node, source))...)
		}
	}
	return blocks, nil
}
