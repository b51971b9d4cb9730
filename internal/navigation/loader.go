package navigation

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	sterrors "git.home.luguber.info/inful/sitetools/internal/errors"
)

// Load reads a navigation map from a YAML (or JSON) file. Environment
// variable references (${VAR}) in the document are expanded before decoding;
// a reference to an unset variable is fatal rather than silently becoming an
// empty string inside a page name.
func Load(path string) (Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, sterrors.Wrap(err, sterrors.CategoryFileSystem, sterrors.SeverityFatal,
			"failed to read navigation map").WithContext("path", path)
	}
	expanded, err := expandVariables(string(data))
	if err != nil {
		return nil, err
	}
	return Parse([]byte(expanded))
}

// expandVariables expands ${VAR}/$VAR references against the environment,
// collecting the names of unset variables so they can be reported instead of
// vanishing from the document.
func expandVariables(doc string) (string, error) {
	var missing []string
	expanded := os.Expand(doc, func(name string) string {
		if value, ok := os.LookupEnv(name); ok {
			return value
		}
		missing = append(missing, name)
		return ""
	})
	if len(missing) > 0 {
		return "", sterrors.Newf(sterrors.CategoryNavigation, sterrors.SeverityFatal,
			"unresolved variable reference(s) in navigation map: %s", strings.Join(missing, ", "))
	}
	return expanded, nil
}

// Parse decodes a navigation map document into a Tree.
//
// The document must be a sequence where every entry is either a scalar
// (a Leaf page name) or a mapping from track name(s) to sequences (a
// GroupSet). Any other shape is a structure error; the resolver itself never
// sees malformed input.
func Parse(data []byte) (Tree, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, sterrors.Wrap(err, sterrors.CategoryNavigation, sterrors.SeverityFatal,
			"navigation map is not valid YAML")
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		// Empty document: a tree with no pages.
		return Tree{}, nil
	}

	root := resolveAlias(doc.Content[0])
	if root.Kind != yaml.SequenceNode {
		return nil, structureErrorf(root, "navigation map must be a sequence, got %s", kindName(root.Kind))
	}
	nodes, err := decodeSequence(root)
	if err != nil {
		return nil, err
	}
	return Tree(nodes), nil
}

func decodeSequence(seq *yaml.Node) ([]Node, error) {
	nodes := make([]Node, 0, len(seq.Content))
	for _, item := range seq.Content {
		item = resolveAlias(item)
		switch item.Kind {
		case yaml.ScalarNode:
			if item.Value == "" {
				return nil, structureErrorf(item, "page name must not be empty")
			}
			nodes = append(nodes, Leaf{Name: item.Value})
		case yaml.MappingNode:
			group, err := decodeGroupSet(item)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, group)
		default:
			return nil, structureErrorf(item, "navigation entry must be a page name or a track mapping, got %s", kindName(item.Kind))
		}
	}
	return nodes, nil
}

func decodeGroupSet(mapping *yaml.Node) (GroupSet, error) {
	group := GroupSet{Tracks: make([]Track, 0, len(mapping.Content)/2)}
	seen := make(map[string]bool, len(mapping.Content)/2)

	// Mapping content alternates key, value; yaml.Node preserves the source
	// order, which defines track declaration order.
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := resolveAlias(mapping.Content[i])
		value := resolveAlias(mapping.Content[i+1])

		if key.Kind != yaml.ScalarNode || key.Value == "" {
			return GroupSet{}, structureErrorf(key, "track name must be a non-empty string")
		}
		if seen[key.Value] {
			return GroupSet{}, structureErrorf(key, "duplicate track name %q in group", key.Value)
		}
		seen[key.Value] = true

		if value.Kind != yaml.SequenceNode {
			return GroupSet{}, structureErrorf(value, "track %q must hold a sequence, got %s", key.Value, kindName(value.Kind))
		}
		children, err := decodeSequence(value)
		if err != nil {
			return GroupSet{}, err
		}
		group.Tracks = append(group.Tracks, Track{Name: key.Value, Children: children})
	}
	return group, nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// structureErrorf builds a navigation structure error carrying the offending
// node's source position.
func structureErrorf(n *yaml.Node, format string, args ...any) error {
	return sterrors.Newf(sterrors.CategoryNavigation, sterrors.SeverityFatal, format, args...).
		WithContext("line", n.Line).
		WithContext("column", n.Column)
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return fmt.Sprintf("kind(%d)", k)
}
