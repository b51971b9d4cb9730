package navigation

// Outcome classifies the result of a next-page resolution.
type Outcome int

const (
	// Found means the current page has at least one next page.
	Found Outcome = iota
	// Terminal means the current page is the last reachable page (or the
	// tree has no pages at all when resolving from the start).
	Terminal
	// NotFound means no leaf in the tree matches the given path.
	NotFound
)

func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case Terminal:
		return "terminal"
	case NotFound:
		return "not-found"
	}
	return "unknown"
}

// Resolution is the tri-state result of ResolveNext. Candidates is non-empty
// exactly when Outcome is Found.
type Resolution struct {
	Outcome    Outcome
	Candidates []ResolvedPath
}

// ResolveNext computes the set of pages that follow the page identified by
// path, in document order. It is a pure function: the tree is never mutated
// and repeated calls with the same inputs return identical results.
//
// An empty path resolves to the leftmost reachable page(s) of the whole tree.
// Otherwise the tree is searched depth-first for the leaf named by path; the
// next pages are the first descendants of the element following it, with
// backtracking across enclosing sequences when the matched leaf closes its
// own sequence.
func ResolveNext(tree Tree, path Path) Resolution {
	if len(path) == 0 {
		if cands := firstDescendants(tree, nil); len(cands) > 0 {
			return Resolution{Outcome: Found, Candidates: cands}
		}
		return Resolution{Outcome: Terminal}
	}

	outcome, cands := searchSequence(tree, path, nil)
	switch outcome {
	case searchResolved:
		return Resolution{Outcome: Found, Candidates: cands}
	case searchExhausted:
		return Resolution{Outcome: Terminal}
	default:
		return Resolution{Outcome: NotFound}
	}
}

// searchOutcome is the tagged result threaded through the recursive search:
// the match was not in this subtree, the match was found but its sequence is
// exhausted (the enclosing scope must continue), or next pages were resolved.
type searchOutcome int

const (
	searchNotFound searchOutcome = iota
	searchExhausted
	searchResolved
)

// searchSequence scans nodes in order for the element matching the head of
// path. On a full match it resolves the first descendants of the following
// element; when the matched element closes the sequence it reports
// searchExhausted so the caller can backtrack to its own next sibling.
func searchSequence(nodes []Node, path Path, crumb []string) (searchOutcome, []ResolvedPath) {
	for i, n := range nodes {
		if len(path) == 1 {
			leaf, ok := n.(Leaf)
			if !ok || leaf.Name != path[0] {
				continue
			}
			return resolveAfter(nodes[i+1:], crumb)
		}

		group, ok := n.(GroupSet)
		if !ok {
			continue
		}
		track, ok := group.track(path[0])
		if !ok {
			continue
		}

		outcome, cands := searchSequence(track.Children, path[1:], extend(crumb, track.Name))
		switch outcome {
		case searchResolved:
			return searchResolved, cands
		case searchExhausted:
			return resolveAfter(nodes[i+1:], crumb)
		}
		// Not found under this track; the same track name may appear in a
		// later GroupSet of this sequence, so keep scanning.
	}
	return searchNotFound, nil
}

// resolveAfter computes the next pages from the elements following a match.
// An empty descendant set means every following element is an empty dead end
// (or there is none), which the caller must surface as exhaustion.
func resolveAfter(following []Node, crumb []string) (searchOutcome, []ResolvedPath) {
	if cands := firstDescendants(following, crumb); len(cands) > 0 {
		return searchResolved, cands
	}
	return searchExhausted, nil
}

// firstDescendants computes the leftmost reachable leaves of a sequence,
// tagging each with the accumulated breadcrumb of track names. Elements whose
// subtrees hold no leaves are transparently skipped. A nil result is the
// empty marker: no leaf is reachable anywhere in the sequence.
func firstDescendants(nodes []Node, crumb []string) []ResolvedPath {
	for _, n := range nodes {
		if cands := nodeDescendants(n, crumb); len(cands) > 0 {
			return cands
		}
	}
	return nil
}

// nodeDescendants computes the leftmost reachable leaves below one node. A
// Leaf yields itself; a GroupSet fans out over every track it contains, each
// breadcrumb extended with that track's name. Sequences are linear, branch
// points are parallel: this asymmetry is what produces multiple simultaneous
// next-page candidates.
func nodeDescendants(n Node, crumb []string) []ResolvedPath {
	switch n := n.(type) {
	case Leaf:
		return []ResolvedPath{extend(crumb, n.Name)}
	case GroupSet:
		var out []ResolvedPath
		for _, t := range n.Tracks {
			out = append(out, firstDescendants(t.Children, extend(crumb, t.Name))...)
		}
		return out
	}
	return nil
}

// extend copies crumb and appends name, so recursion frames never share a
// backing array.
func extend(crumb []string, name string) []string {
	out := make([]string, 0, len(crumb)+1)
	out = append(out, crumb...)
	return append(out, name)
}
