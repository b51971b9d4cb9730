package merge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	sterrors "git.home.luguber.info/inful/sitetools/internal/errors"
)

func writeData(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFiles_LaterFilesWin(t *testing.T) {
	dir := t.TempDir()
	base := writeData(t, dir, "base.yaml", "title: Base\nparams:\n  color: blue\n  size: 10\n")
	site := writeData(t, dir, "site.yaml", "title: Site\nparams:\n  color: red\n")

	merged, err := Files([]string{base, site})
	require.NoError(t, err)

	require.Equal(t, "Site", merged["title"])
	params, ok := merged["params"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "red", params["color"])
	require.Equal(t, 10, params["size"]) // untouched keys survive the override
}

func TestFiles_EmptyFileIsNeutral(t *testing.T) {
	dir := t.TempDir()
	base := writeData(t, dir, "base.yaml", "a: 1\n")
	empty := writeData(t, dir, "empty.yaml", "")

	merged, err := Files([]string{base, empty})
	require.NoError(t, err)
	require.Equal(t, 1, merged["a"])
}

func TestFiles_NonMappingFails(t *testing.T) {
	dir := t.TempDir()
	bad := writeData(t, dir, "bad.yaml", "- just\n- a list\n")

	_, err := Files([]string{bad})
	require.Error(t, err)
	require.True(t, sterrors.HasCategory(err, sterrors.CategoryMerge))
}

func TestFiles_MissingFileFails(t *testing.T) {
	_, err := Files([]string{filepath.Join(t.TempDir(), "gone.yaml")})
	require.Error(t, err)
	require.True(t, sterrors.HasCategory(err, sterrors.CategoryFileSystem))
}

func TestEncode_RoundTrips(t *testing.T) {
	out, err := Encode(map[string]any{"a": 1, "b": map[string]any{"c": "x"}})
	require.NoError(t, err)
	require.Contains(t, string(out), "a: 1")
	require.Contains(t, string(out), "c: x")
}
