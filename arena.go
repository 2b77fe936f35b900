package mathcore

// NodeRef is an index into an Arena's node slice. A slice index is
// Go's natural analogue of an arena handing out borrowed references:
// it stays valid as long as the Arena itself is reachable, permits
// cheap back-references between nodes, and needs no unsafe pointer
// arithmetic.
type NodeRef int

// noRef is the zero-value sentinel for "no child": Arena.Push hands out
// references starting at 1, so a child field left unset in a Node
// literal never refers to a real node.
const noRef NodeRef = 0

// Arena owns every AST node and every interned string produced while
// converting one input. Allocation is an O(1) append; release is bulk
// and implicit — the backing slices become unreachable once the caller
// drops the returned AST, so no per-node teardown exists anywhere.
type Arena struct {
	nodes   []Node
	strings []string
}

// NewArena creates an empty arena. One Arena is created per
// conversion and is never shared between conversions.
func NewArena() *Arena {
	return &Arena{}
}

// Push allocates a node and returns a stable reference to it.
func (a *Arena) Push(n Node) NodeRef {
	a.nodes = append(a.nodes, n)
	return NodeRef(len(a.nodes))
}

// Get dereferences a NodeRef produced by this arena.
func (a *Arena) Get(ref NodeRef) *Node {
	if ref <= 0 || int(ref) > len(a.nodes) {
		return nil
	}
	return &a.nodes[ref-1]
}

// AllocString interns a string in the arena, returning the stable
// string value (Go strings are already immutable reference-counted
// views, so "interning" here just means the arena keeps a reference
// alive for the conversion's lifetime instead of the caller needing
// to).
func (a *Arena) AllocString(s string) string {
	a.strings = append(a.strings, s)
	return a.strings[len(a.strings)-1]
}

// Contains reports whether ref was allocated by this arena.
func (a *Arena) Contains(ref NodeRef) bool {
	return ref > 0 && int(ref) <= len(a.nodes)
}

// Len reports how many nodes have been allocated so far.
func (a *Arena) Len() int {
	return len(a.nodes)
}
