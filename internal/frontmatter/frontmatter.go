// Package frontmatter splits YAML frontmatter from Markdown documents.
package frontmatter

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter reports a frontmatter block whose closing ---
// line never appears.
var ErrMissingClosingDelimiter = errors.New("frontmatter: missing closing delimiter")

var delimiter = []byte("---\n")

// Split separates YAML frontmatter (`---` delimited) from the Markdown body.
//
// If the document does not start with a frontmatter delimiter, had is false
// and body is the full input.
func Split(content []byte) (frontmatter []byte, body []byte, had bool, err error) {
	normalized := bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(normalized, delimiter) {
		return nil, content, false, nil
	}

	rest := normalized[len(delimiter):]
	if bytes.HasPrefix(rest, delimiter) {
		// Empty frontmatter block.
		return []byte{}, rest[len(delimiter):], true, nil
	}

	closeSeq := []byte("\n---\n")
	idx := bytes.Index(rest, closeSeq)
	if idx < 0 {
		// Closing delimiter at end of input without trailing newline.
		if bytes.HasSuffix(rest, []byte("\n---")) {
			return rest[:len(rest)-len("\n---")+1], []byte{}, true, nil
		}
		return nil, nil, false, ErrMissingClosingDelimiter
	}
	return rest[:idx+1], rest[idx+len(closeSeq):], true, nil
}

// ParseYAML parses raw YAML frontmatter (without --- delimiters) into a map.
func ParseYAML(frontmatter []byte) (map[string]any, error) {
	if len(frontmatter) == 0 {
		return map[string]any{}, nil
	}

	var fields map[string]any
	if err := yaml.Unmarshal(frontmatter, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}
