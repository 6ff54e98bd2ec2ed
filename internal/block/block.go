// Package block finds tagged documentation blocks in source text.
//
// A block looks like
//
//	/* luagmp (kind)
//	 * body
//	 */
//
// The legacy marker "luadoc" is accepted as well. Matching is case-insensitive
// and non-greedy, so adjacent blocks are never merged. Text that does not fit
// the grammar is ignored without a diagnostic.
package block

import (
	"regexp"
	"strings"
)

var blockRe = regexp.MustCompile(`(?is)/\*\s*(?:luagmp|luadoc)\s*\(([^)]+)\)\s*(.*?)\*/`)

// Block is one tagged comment region.
type Block struct {
	Kind string // lower-cased, trimmed label from the header
	Body string // raw text between the header and the closing delimiter
}

// Extract returns every block in text, in order of appearance.
func Extract(text string) []Block {
	matches := blockRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	blocks := make([]Block, 0, len(matches))
	for _, m := range matches {
		blocks = append(blocks, Block{
			Kind: strings.ToLower(strings.TrimSpace(m[1])),
			Body: m[2],
		})
	}
	return blocks
}
