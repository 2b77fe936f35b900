package mathcore

// TextTransform selects a Unicode Mathematical Alphanumeric Symbols
// block used to render a letter or digit in a particular math style.
// Styled codepoints are computed by offset from the ASCII base rather
// than a per-letter lookup table, which keeps the tables small; the
// handful of letters Unicode placed outside their block (ℂ, ℜ, ℎ, ...)
// live in a small exceptions map consulted first.
type TextTransform uint8

const (
	TransformNone TextTransform = iota
	TransformBold
	TransformBoldFraktur
	TransformBoldItalic
	TransformBoldSansSerif
	TransformBoldScript
	TransformDoubleStruck
	TransformFraktur
	TransformItalic
	TransformMonospace
	TransformSansSerif
	TransformSansSerifBoldItalic
	TransformSansSerifItalic
	TransformScriptChancery
	TransformScriptRoundhand
)

// commandTransform maps the font-variant command name to the transform
// it selects.
var commandTransform = map[string]TextTransform{
	"mathbf":     TransformBold,
	"boldsymbol": TransformBold,
	"bm":         TransformBold,
	"mathbb":     TransformDoubleStruck,
	"mathfrak":   TransformFraktur,
	"mathsf":     TransformSansSerif,
	"mathit":     TransformItalic,
	"mathtt":     TransformMonospace,
	"mathcal":    TransformScriptChancery,
	"mathscr":    TransformScriptRoundhand,
	// \mathrm selects "no transform, upright", which is represented as
	// TransformNone paired with the upright flag rather than a
	// TextTransform, so it is intentionally absent here.
}

// transform maps a base rune to its styled codepoint for the given
// transform. Runes outside the transform's supported ranges (Latin
// letters and digits) are returned unchanged.
func (tf TextTransform) transform(c rune, isUpright bool) rune {
	if tf == TransformNone {
		return c
	}
	if exc, ok := transformException[tf]; ok {
		if r, ok := exc[c]; ok {
			return r
		}
	}
	switch {
	case c >= 'A' && c <= 'Z':
		if off, ok := upperOffset[tf]; ok {
			return c + off
		}
	case c >= 'a' && c <= 'z':
		if off, ok := lowerOffset[tf]; ok {
			return c + off
		}
	case c >= '0' && c <= '9':
		if off, ok := digitOffset[tf]; ok {
			return c + off
		}
	}
	return c
}

// The offsets below translate a plain ASCII letter/digit into the
// corresponding Mathematical Alphanumeric Symbols codepoint.
var upperOffset = map[TextTransform]rune{
	TransformBold:                0x1D400 - 'A',
	TransformItalic:              0x1D434 - 'A',
	TransformBoldItalic:          0x1D468 - 'A',
	TransformScriptChancery:      0x1D49C - 'A',
	TransformScriptRoundhand:     0x1D49C - 'A',
	TransformBoldScript:          0x1D4D0 - 'A',
	TransformFraktur:             0x1D504 - 'A',
	TransformDoubleStruck:        0x1D538 - 'A',
	TransformBoldFraktur:         0x1D56C - 'A',
	TransformSansSerif:           0x1D5A0 - 'A',
	TransformBoldSansSerif:       0x1D5D4 - 'A',
	TransformSansSerifItalic:     0x1D608 - 'A',
	TransformSansSerifBoldItalic: 0x1D63C - 'A',
	TransformMonospace:           0x1D670 - 'A',
}

var lowerOffset = map[TextTransform]rune{
	TransformBold:                0x1D41A - 'a',
	TransformItalic:              0x1D44E - 'a',
	TransformBoldItalic:          0x1D482 - 'a',
	TransformScriptChancery:      0x1D4B6 - 'a',
	TransformScriptRoundhand:     0x1D4B6 - 'a',
	TransformBoldScript:          0x1D4EA - 'a',
	TransformFraktur:             0x1D51E - 'a',
	TransformDoubleStruck:        0x1D552 - 'a',
	TransformBoldFraktur:         0x1D586 - 'a',
	TransformSansSerif:           0x1D5BA - 'a',
	TransformBoldSansSerif:       0x1D5EE - 'a',
	TransformSansSerifItalic:     0x1D622 - 'a',
	TransformSansSerifBoldItalic: 0x1D656 - 'a',
	TransformMonospace:           0x1D68A - 'a',
}

var digitOffset = map[TextTransform]rune{
	TransformBold:          0x1D7CE - '0',
	TransformDoubleStruck:  0x1D7D8 - '0',
	TransformSansSerif:     0x1D7E2 - '0',
	TransformBoldSansSerif: 0x1D7EC - '0',
	TransformMonospace:     0x1D7F6 - '0',
}

// transformException covers the letters whose styled forms predate the
// Mathematical Alphanumeric Symbols plane and were left as holes in
// its blocks.
var transformException = map[TextTransform]map[rune]rune{
	TransformItalic: {'h': 'ℎ'},
	TransformFraktur: {
		'C': 'ℭ', 'H': 'ℌ', 'I': 'ℑ', 'R': 'ℜ', 'Z': 'ℨ',
	},
	TransformDoubleStruck: {
		'C': 'ℂ', 'H': 'ℍ', 'N': 'ℕ', 'P': 'ℙ', 'Q': 'ℚ', 'R': 'ℝ', 'Z': 'ℤ',
	},
	TransformScriptChancery: {
		'B': 'ℬ', 'E': 'ℰ', 'F': 'ℱ', 'H': 'ℋ', 'I': 'ℐ', 'L': 'ℒ', 'M': 'ℳ', 'R': 'ℛ',
		'e': 'ℯ', 'g': 'ℊ', 'o': 'ℴ',
	},
	TransformScriptRoundhand: {
		'B': 'ℬ', 'E': 'ℰ', 'F': 'ℱ', 'H': 'ℋ', 'I': 'ℐ', 'L': 'ℒ', 'M': 'ℳ', 'R': 'ℛ',
		'e': 'ℯ', 'g': 'ℊ', 'o': 'ℴ',
	},
}

// MathVariant is the attribute attached to identifier nodes: either
// the default rendering or an explicit styled transform.
type MathVariant struct {
	Transform TextTransform
	// Upright overrides MathML's default italic rendering of
	// single-letter identifiers, used by \mathrm and upright Greek.
	Upright bool
}

// differsOnUprightLetters reports whether this variant needs to be
// recorded on a multi-letter identifier node even when Transform is
// TransformNone, because the upright flag alone changes rendering.
func (v MathVariant) differsOnUprightLetters() bool {
	return v.Transform != TransformNone || v.Upright
}
