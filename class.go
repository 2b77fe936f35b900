package mathcore

// Class is the MathML operator character class assigned to every
// predeclared symbol and to most tokens produced by the lexer. It
// governs left/right spacing and several parsing decisions (e.g. a
// BinaryOp immediately following a Relation is demoted to Default).
type Class uint8

const (
	ClassDefault Class = iota
	ClassOpen
	ClassClose
	ClassRelation
	ClassPunctuation
	ClassBinaryOp
	ClassOperator
	ClassInner
)

func (c Class) String() string {
	switch c {
	case ClassDefault:
		return "Default"
	case ClassOpen:
		return "Open"
	case ClassClose:
		return "Close"
	case ClassRelation:
		return "Relation"
	case ClassPunctuation:
		return "Punctuation"
	case ClassBinaryOp:
		return "BinaryOp"
	case ClassOperator:
		return "Operator"
	case ClassInner:
		return "Inner"
	default:
		return "Unknown"
	}
}

// Stretchy describes how a fence-like character resizes to match its
// surroundings. The four-way split comes straight from the symbol
// table design: most fences are Always stretchy, a handful (the
// vertical bar family) stretch only in Open/Close position, some
// never stretch, and a few arrows stretch asymmetrically.
type Stretchy uint8

const (
	StretchyNever Stretchy = iota
	StretchyAlways
	StretchyPrePostfix
	StretchyInconsistent
)

// symbolDescriptor is the static, read-only payload behind every
// predeclared command and ASCII punctuation character.
type symbolDescriptor struct {
	Char     rune
	Class    Class
	Stretchy Stretchy
	// MovableLimits marks big operators (\sum, \int, ...) whose
	// sub/superscripts render as under/over in display style absent
	// an explicit \nolimits.
	MovableLimits bool
}
