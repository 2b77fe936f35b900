package mathcore

// applyVariant recursively rewrites every identifier/digit leaf
// reachable from ref to use the Mathematical Alphanumeric Symbols
// codepoint for the given variant, transforming single letters in
// place. Multi-letter identifiers keep their interned string but
// record the variant on the node itself, so a later consumer can still
// recover the upright/italic distinction.
func applyVariant(arena *Arena, ref NodeRef, v MathVariant) {
	if ref == noRef {
		return
	}
	n := arena.Get(ref)
	if n == nil {
		return
	}
	switch n.Kind {
	case NodeIdentifier:
		n.Char = v.Transform.transform(n.Char, v.Upright)
		n.Upright = v.Upright
		n.Variant = v
	case NodeMultiLetterIdentifier:
		n.Variant = v
	case NodeDigit:
		n.Char = v.Transform.transform(n.Char, v.Upright)
		n.Variant = v
	default:
		for _, c := range []NodeRef{n.Child, n.Second, n.Third} {
			applyVariant(arena, c, v)
		}
		for _, c := range n.Children {
			applyVariant(arena, c, v)
		}
	}
}
