// Package inject replaces marked regions in text files with the contents of
// referenced source files.
//
// A region looks like:
//
//	<!-- inject:snippets/usage.md -->
//	...anything here is replaced...
//	<!-- /inject -->
//
// The marker names a file path relative to the target file's directory.
// Re-running injection replaces the region again, so injected documents stay
// idempotent under repeated builds.
package inject

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"

	sterrors "git.home.luguber.info/inful/sitetools/internal/errors"
)

var (
	beginMarker = regexp.MustCompile(`(?m)^<!-- inject:(\S+) -->$`)
	endMarker   = []byte("<!-- /inject -->")
)

// Apply processes all inject regions in doc. Source paths are resolved
// relative to dir. It returns the rewritten document and whether any region
// content changed.
func Apply(doc []byte, dir string) ([]byte, bool, error) {
	var out bytes.Buffer
	changed := false
	rest := doc

	for {
		loc := beginMarker.FindSubmatchIndex(rest)
		if loc == nil {
			out.Write(rest)
			break
		}

		// Everything up to and including the begin marker line passes through.
		markerEnd := loc[1]
		out.Write(rest[:markerEnd])
		out.WriteByte('\n')
		source := string(rest[loc[2]:loc[3]])

		after := rest[markerEnd:]
		endIdx := bytes.Index(after, endMarker)
		if endIdx < 0 {
			return nil, false, sterrors.Newf(sterrors.CategoryInject, sterrors.SeverityFatal,
				"unterminated inject region for %q", source)
		}
		oldRegion := after[:endIdx]

		replacement, err := os.ReadFile(filepath.Join(dir, source))
		if err != nil {
			return nil, false, sterrors.Wrap(err, sterrors.CategoryInject, sterrors.SeverityFatal,
				"failed to read inject source").WithContext("source", source)
		}
		if !bytes.HasSuffix(replacement, []byte("\n")) {
			replacement = append(replacement, '\n')
		}

		if !bytes.Equal(bytes.TrimPrefix(oldRegion, []byte("\n")), replacement) {
			changed = true
		}
		out.Write(replacement)
		out.Write(endMarker)

		rest = after[endIdx+len(endMarker):]
	}

	return out.Bytes(), changed, nil
}

// File applies injection to a file on disk, rewriting it only when a region's
// content actually changed. It reports whether the file was rewritten.
func File(path string) (bool, error) {
	doc, err := os.ReadFile(path)
	if err != nil {
		return false, sterrors.Wrap(err, sterrors.CategoryFileSystem, sterrors.SeverityFatal,
			"failed to read inject target").WithContext("path", path)
	}

	updated, changed, err := Apply(doc, filepath.Dir(path))
	if err != nil {
		return false, err
	}
	if !changed {
		return false, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	if err := os.WriteFile(path, updated, info.Mode().Perm()); err != nil {
		return false, sterrors.Wrap(err, sterrors.CategoryFileSystem, sterrors.SeverityFatal,
			"failed to write inject target").WithContext("path", path)
	}
	return true, nil
}
