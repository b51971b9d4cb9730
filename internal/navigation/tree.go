// Package navigation implements the navigation map model and the next-page
// resolution algorithm used when wiring multi-page sites together.
//
// A navigation map is an ordered sequence of nodes. Sequence order defines
// linear document order. A node is either a Leaf (a single page) or a
// GroupSet (a named branch point bundling one or more independently ordered
// tracks). Track names are unique within one GroupSet but may repeat across
// the map, so repeated shared sections are representable.
package navigation

// Node is one element of a navigation sequence: either a Leaf or a GroupSet.
type Node interface {
	navNode()
}

// Leaf is a single page entry.
type Leaf struct {
	Name string
}

func (Leaf) navNode() {}

// Track is one named sub-sequence inside a GroupSet.
type Track struct {
	Name     string
	Children []Node
}

// GroupSet is a named branch point. Tracks keep declaration order; every
// track is an independently traversable continuation of the page before the
// GroupSet.
type GroupSet struct {
	Tracks []Track
}

func (GroupSet) navNode() {}

// track returns the track with the given name, if present.
func (g GroupSet) track(name string) (Track, bool) {
	for _, t := range g.Tracks {
		if t.Name == name {
			return t, true
		}
	}
	return Track{}, false
}

// Tree is the root sequence of a navigation map. The root has no name.
type Tree []Node

// Path identifies a position in the tree: empty (before the first page) or a
// sequence of track names ending in a leaf name, e.g. ["lib","utils","helper.js"].
type Path []string

// ResolvedPath identifies a destination leaf, in the same shape as Path.
type ResolvedPath []string

// Leaf returns the final component of the resolved path (the page name).
func (p ResolvedPath) Leaf() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Breadcrumb returns the track-name trail of the resolved path, without the
// final leaf component.
func (p ResolvedPath) Breadcrumb() []string {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1]
}
