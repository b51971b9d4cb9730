package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sitetools/internal/navigation"
)

func TestSplitPagePath(t *testing.T) {
	tests := []struct {
		input string
		want  navigation.Path
	}{
		{"", nil},
		{"readme.md", navigation.Path{"readme.md"}},
		{"src/index.js", navigation.Path{"src", "index.js"}},
		{"/src/index.js/", navigation.Path{"src", "index.js"}},
		{"src\\index.js", navigation.Path{"src", "index.js"}},
	}

	for _, tt := range tests {
		got := splitPagePath(tt.input)
		require.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	_, err := loadConfig(missing, false)
	require.Error(t, err)

	cfg, err := loadConfig(missing, true)
	require.NoError(t, err)
	require.Equal(t, "next", cfg.Next.IDPrefix)
}

func TestLoadConfig_BrokenFileNeverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{nav_map: [broken\n"), 0o600))

	_, err := loadConfig(path, true)
	require.Error(t, err)
}
