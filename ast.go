package mathcore

// NodeKind tags the AST node sum type. As with Token, this is
// represented as one struct with a kind tag plus a handful of reused
// fields rather than one Go type per variant, so that traversal code
// (and a future emitter) can switch on a single field.
type NodeKind uint8

const (
	NodeIdentifier NodeKind = iota
	NodeMultiLetterIdentifier
	NodeDigit
	NodeNumber
	NodeOperator
	NodeFenced
	NodeFraction
	NodeSubscript
	NodeSuperscript
	NodeSubSup
	NodeOver
	NodeUnder
	NodeUnderOver
	NodeSqrt
	NodeRoot
	NodeTable
	NodeEquationArray
	NodeTextRun
	NodeRow
	NodeColorWrap
	NodeTransformWrap
	NodeCustomCmdArg
	NodeHardcodedMathML
	NodeSpace
	NodePlaceholder // visible placeholder for an ignored unknown command
	NodeRule
)

// RowAttr is the optional attribute a Row carries: a display style
// override or a color wrapper.
type RowAttr struct {
	HasStyle bool
	Style    Style
	HasColor bool
	R, G, B  uint8
}

// Style selects \displaystyle/\textstyle/\scriptstyle/\scriptscriptstyle.
type Style uint8

const (
	StyleDisplay Style = iota
	StyleText
	StyleScript
	StyleScriptScript
)

// FracAttr records the line-thickness/displaystyle behavior that
// distinguishes \frac/\dfrac/\tfrac/\cfrac/\binom.
type FracAttr uint8

const (
	FracAttrDisplayStyleAuto FracAttr = iota
	FracAttrDisplayStyleTrue
	FracAttrDisplayStyleFalse
	FracAttrCFracStyle
	FracAttrNoLine // \binom: thickness 0, no visible bar
)

// Node is a single AST element. Children are referenced by NodeRef
// into the Arena that produced this node.
type Node struct {
	Kind NodeKind

	// Scalar payloads.
	Char    rune
	Str     string
	Variant MathVariant
	Upright bool
	Class   Class

	// Operator attributes.
	Stretchy      Stretchy
	MovableLimits bool
	Size          int

	// Structural children, meaning depends on Kind:
	//   Fenced:       Open=Char, Child=content, Close=CloseChar
	//   Fraction:     Num, Den; Attr carries FracAttr
	//   Sub/Sup/SubSup: Base, Sub, Sup
	//   Over/Under/UnderOver: Base, Over, Under
	//   Sqrt:         Child
	//   Root:         Child=radicand, Index
	//   Row:          Children; RowAttribute carries style/color
	//   Table:        Rows (each a Child NodeRef to a Row-of-cells), ColumnSpec
	//   EquationArray: same as Table, plus EquationNumbers
	//   ColorWrap/TransformWrap: Child
	Child    NodeRef
	Second   NodeRef // Sub, Den, Under, Close-as-node (rare), Index
	Third    NodeRef // Sup, Over
	Children []NodeRef

	CloseChar rune

	FracAttribute FracAttr
	RowAttribute  RowAttr

	ColumnSpec ArraySpec
	// EquationNumbers[i] is the number assigned to Children[i] (a
	// table row), or 0 if that row is unnumbered.
	EquationNumbers []int

	Length  Length
	Length2 Length // Rule height; Length carries its width

	// CustomCmdArg payload: the 1-based argument index being
	// substituted, used only while a macro body is being expanded in
	// place (it never appears in a final returned AST for ordinary
	// conversions; it is resolved before the surrounding row is
	// appended to).
	ArgIndex int
}

// mergeAdjacentTextRuns collapses runs of TextRun children that share
// the same Variant into a single node, concatenating their Str
// fields, so consumers never see two adjacent runs with identical
// styling.
func mergeAdjacentTextRuns(arena *Arena, children []NodeRef) []NodeRef {
	if len(children) < 2 {
		return children
	}
	merged := make([]NodeRef, 0, len(children))
	for _, ref := range children {
		if len(merged) > 0 {
			prev := arena.Get(merged[len(merged)-1])
			cur := arena.Get(ref)
			if prev != nil && cur != nil &&
				prev.Kind == NodeTextRun && cur.Kind == NodeTextRun &&
				prev.Variant == cur.Variant {
				prev.Str = arena.AllocString(prev.Str + cur.Str)
				continue
			}
		}
		merged = append(merged, ref)
	}
	return merged
}
