package mathcore

// AST is the output of a successful conversion: an arena owning every
// node reachable from Root, plus the root-level metadata a future
// MathML emitter would need (display mode, namespace flag, optional
// TeX-source annotation wrapper).
type AST struct {
	Arena        *Arena
	Root         NodeRef
	Display      Display
	XMLNamespace bool
	// Annotation, when true, means Root should be read as wrapped for
	// <semantics>/<annotation encoding="application/x-tex"> purposes;
	// Source carries the original TeX text to embed.
	Annotation bool
	Source     string
}

// Contains reports whether every node in the tree rooted at ref lies
// in a.Arena.
func (a *AST) Contains(ref NodeRef) bool {
	return containsRec(a.Arena, ref, make(map[NodeRef]bool))
}

func containsRec(arena *Arena, ref NodeRef, seen map[NodeRef]bool) bool {
	if ref == noRef {
		return true
	}
	if !arena.Contains(ref) {
		return false
	}
	if seen[ref] {
		return true
	}
	seen[ref] = true
	n := arena.Get(ref)
	for _, child := range []NodeRef{n.Child, n.Second, n.Third} {
		if child != noRef && !containsRec(arena, child, seen) {
			return false
		}
	}
	for _, c := range n.Children {
		if !containsRec(arena, c, seen) {
			return false
		}
	}
	return true
}
