package commands

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/sitetools/internal/navigation"
)

// runNext executes the next command against a temp workspace and returns the
// decoded identifier -> URL mapping from stdout.
func runNext(t *testing.T, navDoc, page string) (map[string]string, error) {
	t.Helper()

	dir := t.TempDir()
	navPath := filepath.Join(dir, "navigation.yaml")
	require.NoError(t, os.WriteFile(navPath, []byte(navDoc), 0o600))

	cfgPath := filepath.Join(dir, "sitetools.yaml")
	cfg := "nav_map: " + navPath + "\nnext:\n  url_prefix: /docs\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))

	stdout, err := captureStdout(t, func() error {
		cmd := &NextCmd{Page: page, Format: "yaml"}
		return cmd.Run(&Global{}, &CLI{Config: cfgPath})
	})
	if err != nil {
		return nil, err
	}

	links := map[string]string{}
	require.NoError(t, yaml.Unmarshal(stdout, &links))
	return links, nil
}

func captureStdout(t *testing.T, fn func() error) ([]byte, error) {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	runErr := fn()
	require.NoError(t, w.Close())

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, r.Close())
	return out, runErr
}

const nextTestNav = `
- config.js
- src:
    - index.js
    - utils.js
- readme.md
`

func TestNextCmd_SinglePage(t *testing.T) {
	links, err := runNext(t, nextTestNav, "config.js")
	require.NoError(t, err)
	require.Equal(t, map[string]string{"next": "/docs/src/index.js"}, links)
}

func TestNextCmd_StartOfTree(t *testing.T) {
	links, err := runNext(t, nextTestNav, "")
	require.NoError(t, err)
	require.Equal(t, map[string]string{"next": "/docs/main/config.js"}, links)
}

func TestNextCmd_BranchPoint(t *testing.T) {
	doc := `
- intro.md
- lib:
    - api.md
  app:
    - setup.md
`
	links, err := runNext(t, doc, "intro.md")
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		"next_lib": "/docs/lib/api.md",
		"next_app": "/docs/app/setup.md",
	}, links)
}

func TestNextCmd_SharedTrackStripped(t *testing.T) {
	doc := `
- intro.md
- outro.md
`
	// The default shared track name is "shared"; a page addressed under it on
	// disk resolves as its bare path.
	links, err := runNext(t, doc, "shared/intro.md")
	require.NoError(t, err)
	require.Equal(t, map[string]string{"next": "/docs/main/outro.md"}, links)
}

func TestNextCmd_LastPage(t *testing.T) {
	_, err := runNext(t, nextTestNav, "readme.md")
	require.Error(t, err)
	require.ErrorIs(t, err, navigation.ErrNoNextPage)
}

func TestNextCmd_UnknownPage(t *testing.T) {
	_, err := runNext(t, nextTestNav, "missing.md")
	require.Error(t, err)
	require.ErrorIs(t, err, navigation.ErrPageNotFound)
}
