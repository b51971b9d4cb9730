package navigation

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	sterrors "git.home.luguber.info/inful/sitetools/internal/errors"
)

// ErrPageNotFound reports that the current page path matched no leaf in the
// navigation map.
var ErrPageNotFound = errors.New("page not found in navigation map")

// ErrNoNextPage reports that the current page is the last reachable page.
var ErrNoNextPage = errors.New("no next page")

// FormatOptions controls how resolved paths become identifier/URL pairs.
type FormatOptions struct {
	// IDPrefix is the base of every emitted identifier, e.g. "next".
	IDPrefix string
	// URLPrefix is prepended to every emitted URL path.
	URLPrefix string
	// DefaultTrack addresses root-level pages whose breadcrumb is empty.
	DefaultTrack string
}

// StripSharedTrack removes the configured shared top-level track name from an
// incoming page path, if present. Paths that consist of only the shared name
// are left alone; the final component is always a page name.
func StripSharedTrack(path Path, shared string) Path {
	if shared != "" && len(path) > 1 && path[0] == shared {
		return path[1:]
	}
	return path
}

// FormatNext turns a resolution into a flat identifier -> URL mapping.
//
// Each candidate's breadcrumb (defaulted to DefaultTrack when empty) is
// joined under IDPrefix with "_" to form the identifier, and under URLPrefix
// with "/" plus the page name to form the URL. When exactly one candidate
// exists the identifier collapses to the bare prefix: the common linear case
// needs no distinguishing suffix, only branch points do.
//
// A NotFound resolution yields ErrPageNotFound and a Terminal resolution
// yields ErrNoNextPage, both wrapped with structured context, so the CLI
// boundary can report the two empty cases distinctly.
func FormatNext(res Resolution, opts FormatOptions) (map[string]string, error) {
	switch res.Outcome {
	case NotFound:
		return nil, sterrors.Wrap(ErrPageNotFound, sterrors.CategoryNavigation, sterrors.SeverityFatal,
			"cannot resolve next page")
	case Terminal:
		return nil, sterrors.Wrap(ErrNoNextPage, sterrors.CategoryNavigation, sterrors.SeverityFatal,
			"cannot resolve next page")
	}

	out := make(map[string]string, len(res.Candidates))
	single := len(res.Candidates) == 1
	for _, rp := range res.Candidates {
		crumb := rp.Breadcrumb()
		if len(crumb) == 0 {
			crumb = []string{opts.DefaultTrack}
		}

		id := opts.IDPrefix
		if !single {
			id = opts.IDPrefix + "_" + strings.Join(normalizeAll(crumb), "_")
		}
		// Case folding can map distinct breadcrumbs ("Lib", "lib") to the same
		// identifier; suffix later collisions so no candidate is dropped.
		if _, taken := out[id]; taken {
			base := id
			for n := 2; ; n++ {
				id = fmt.Sprintf("%s_%d", base, n)
				if _, taken := out[id]; !taken {
					break
				}
			}
		}
		out[id] = joinURL(opts.URLPrefix, append(crumb, rp.Leaf()))
	}
	return out, nil
}

// normalizeAll folds breadcrumb components into identifier-safe form: Unicode
// NFC followed by lower case, so composed and mixed-case track names produce
// stable identifiers. The Caser is per-call; cases.Caser is stateful and must
// not be shared between goroutines.
func normalizeAll(components []string) []string {
	caser := cases.Lower(language.Und)
	out := make([]string, len(components))
	for i, c := range components {
		out[i] = caser.String(norm.NFC.String(c))
	}
	return out
}

func joinURL(prefix string, components []string) string {
	base := strings.TrimRight(prefix, "/")
	return base + "/" + strings.Join(components, "/")
}
