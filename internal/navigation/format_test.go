package navigation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var formatOpts = FormatOptions{
	IDPrefix:     "next",
	URLPrefix:    "/docs",
	DefaultTrack: "main",
}

func found(ps ...[]string) Resolution {
	return Resolution{Outcome: Found, Candidates: paths(ps...)}
}

func TestFormatNext_SingleCandidateCollapses(t *testing.T) {
	links, err := FormatNext(found([]string{"src", "utils.js"}), formatOpts)
	require.NoError(t, err)
	require.Equal(t, map[string]string{"next": "/docs/src/utils.js"}, links)
}

func TestFormatNext_BranchCandidatesGetSuffixes(t *testing.T) {
	links, err := FormatNext(found(
		[]string{"lib", "api.md"},
		[]string{"app", "setup.md"},
	), formatOpts)
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		"next_lib": "/docs/lib/api.md",
		"next_app": "/docs/app/setup.md",
	}, links)
}

func TestFormatNext_RootPageUsesDefaultTrack(t *testing.T) {
	links, err := FormatNext(found([]string{"readme.md"}), formatOpts)
	require.NoError(t, err)
	require.Equal(t, map[string]string{"next": "/docs/main/readme.md"}, links)

	// Same substitution with multiple candidates: the root-level one gets the
	// default track suffix.
	links, err = FormatNext(found(
		[]string{"readme.md"},
		[]string{"lib", "api.md"},
	), formatOpts)
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		"next_main": "/docs/main/readme.md",
		"next_lib":  "/docs/lib/api.md",
	}, links)
}

func TestFormatNext_DeepBreadcrumb(t *testing.T) {
	links, err := FormatNext(found([]string{"outer", "inner", "deep.md"}), FormatOptions{
		IDPrefix:     "next",
		URLPrefix:    "/docs/",
		DefaultTrack: "main",
	})
	require.NoError(t, err)
	// Trailing slash on the prefix does not double up.
	require.Equal(t, map[string]string{"next": "/docs/outer/inner/deep.md"}, links)
}

func TestFormatNext_IdentifierNormalization(t *testing.T) {
	links, err := FormatNext(found(
		[]string{"Lib", "api.md"},
		[]string{"App", "setup.md"},
	), formatOpts)
	require.NoError(t, err)
	require.Contains(t, links, "next_lib")
	require.Contains(t, links, "next_app")
	// URLs keep the on-disk casing.
	require.Equal(t, "/docs/Lib/api.md", links["next_lib"])
}

func TestFormatNext_CollidingIdentifiersKeepAllCandidates(t *testing.T) {
	// "Lib" and "lib" case-fold to the same identifier; both URLs must survive.
	links, err := FormatNext(found(
		[]string{"Lib", "api.md"},
		[]string{"lib", "intro.md"},
	), formatOpts)
	require.NoError(t, err)
	require.Len(t, links, 2)
	require.Equal(t, "/docs/Lib/api.md", links["next_lib"])
	require.Equal(t, "/docs/lib/intro.md", links["next_lib_2"])
}

func TestFormatNext_NotFoundAndTerminal(t *testing.T) {
	_, err := FormatNext(Resolution{Outcome: NotFound}, formatOpts)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrPageNotFound))
	require.False(t, errors.Is(err, ErrNoNextPage))

	_, err = FormatNext(Resolution{Outcome: Terminal}, formatOpts)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNoNextPage))
	require.False(t, errors.Is(err, ErrPageNotFound))
}

func TestStripSharedTrack(t *testing.T) {
	tests := []struct {
		name   string
		path   Path
		shared string
		want   Path
	}{
		{"strips leading shared track", Path{"shared", "intro.md"}, "shared", Path{"intro.md"}},
		{"leaves other tracks alone", Path{"lib", "intro.md"}, "shared", Path{"lib", "intro.md"}},
		{"page named like the track survives", Path{"shared"}, "shared", Path{"shared"}},
		{"empty path", nil, "shared", nil},
		{"no shared track configured", Path{"shared", "intro.md"}, "", Path{"shared", "intro.md"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, StripSharedTrack(tt.path, tt.shared))
		})
	}
}
