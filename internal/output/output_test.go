package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanCreatesMissingRoot(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "docs", "api")
	require.NoError(t, Clean(root))

	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestCleanRemovesChildrenKeepsRoot(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, WriteFile(root, "client-classes/math/Vec4.md", "old"))
	require.NoError(t, WriteFile(root, "stale.md", "old"))

	require.NoError(t, Clean(root))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCleanRejectsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	assert.Error(t, Clean(path))
}

func TestWriteFileNewlines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"none", "# Title", "# Title\n"},
		{"one", "# Title\n", "# Title\n"},
		{"many", "# Title\n\n\n", "# Title\n"},
		{"crlf", "# Title\r\n", "# Title\n"},
		{"trailing blank line", "x\n \n", "x\n"},
		{"trailing tabs", "x\t\t", "x\n"},
		{"empty", "", "\n"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			root := t.TempDir()
			require.NoError(t, WriteFile(root, "a/b/out.md", tt.content))

			data, err := os.ReadFile(filepath.Join(root, "a", "b", "out.md"))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestWriteFileRejectsEscapingPaths(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	root := filepath.Join(base, "out")
	require.NoError(t, Clean(root))

	for _, rel := range []string{"../evil.md", "a/../../evil.md", "/abs.md", ".."} {
		assert.Error(t, WriteFile(root, rel, "x"), rel)
	}
	_, err := os.Stat(filepath.Join(base, "evil.md"))
	assert.True(t, os.IsNotExist(err))
}
