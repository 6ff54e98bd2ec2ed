package block

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phobologic/luagmpdoc/internal/lang"
)

func TestExtractSingle(t *testing.T) {
	t.Parallel()

	src := "int x;\n/* luagmp (function)\n * Adds two numbers.\n * @name Add\n */\nint add();\n"
	blocks := Extract(src)
	require.Len(t, blocks, 1)
	assert.Equal(t, "function", blocks[0].Kind)
	assert.Contains(t, blocks[0].Body, "@name Add")
	assert.NotContains(t, blocks[0].Body, "*/")
}

func TestExtractAdjacentBlocksNotMerged(t *testing.T) {
	t.Parallel()

	src := "/* luagmp (class)\n * @name A\n *//* luagmp (method)\n * @name B\n */"
	blocks := Extract(src)
	require.Len(t, blocks, 2)
	assert.Equal(t, "class", blocks[0].Kind)
	assert.Equal(t, "method", blocks[1].Kind)
	assert.NotContains(t, blocks[0].Body, "@name B")
}

func TestExtractLegacyAndCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		kind string
	}{
		{"legacy", "/* luadoc (event)\n * @name onJoin\n */", "event"},
		{"upper marker", "/* LUAGMP (Event) @name onJoin */", "event"},
		{"no spaces", "/*luagmp(func) @name f*/", "func"},
		{"padded kind", "/* luagmp ( const ) @name F */", "const"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			blocks := Extract(tt.src)
			require.Len(t, blocks, 1)
			assert.Equal(t, tt.kind, blocks[0].Kind)
		})
	}
}

func TestExtractLegacyMatchesCurrent(t *testing.T) {
	t.Parallel()

	body := " (event)\n * Fired on join.\n * @name onJoin\n */"
	current := Extract("/* luagmp" + body)
	legacy := Extract("/* luadoc" + body)
	assert.Equal(t, current, legacy)
}

func TestExtractIgnoresMalformed(t *testing.T) {
	t.Parallel()

	for _, src := range []string{
		"/* luagmp function @name X */",
		"/* luagmp () @name X */",
		"// luagmp (function) @name X",
		"/* luagmp (function) @name X",
		"/* something else (function) */",
	} {
		assert.Empty(t, Extract(src), src)
	}
}

func TestExtractEmbeddedStars(t *testing.T) {
	t.Parallel()

	src := "/* luagmp (global)\n * @example\n * local x = 2 * 3\n * **bold**\n */"
	blocks := Extract(src)
	require.Len(t, blocks, 1)
	assert.Contains(t, blocks[0].Body, "2 * 3")
	assert.Contains(t, blocks[0].Body, "**bold**")
}

func TestExtractCommentsSkipsStrings(t *testing.T) {
	t.Parallel()

	src := []byte(`const char* s = "/* luagmp (function) @name Fake */";
/* luagmp (function)
 * @name Real
 */
int real();
`)
	blocks, err := ExtractComments(context.Background(), lang.Languages["cpp"], src)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Contains(t, blocks[0].Body, "@name Real")

	// The plain grammar sees both.
	assert.Len(t, Extract(string(src)), 2)
}

func TestExtractCommentsEmpty(t *testing.T) {
	t.Parallel()

	blocks, err := ExtractComments(context.Background(), lang.Languages["go"], nil)
	require.NoError(t, err)
	assert.Empty(t, blocks)
}
