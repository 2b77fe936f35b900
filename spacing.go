package mathcore

import "github.com/shopspring/decimal"

func em(v float64) Length {
	return NewLength(decimal.NewFromFloat(v), UnitEm)
}

// presetSpaces maps the fixed-width LaTeX spacing commands (\,, \;,
// \!, \quad, ...) to their Length payload.
var presetSpaces = map[string]Length{
	",":     em(0.1667), // thinspace
	":":     em(0.2222), // medspace
	";":     em(0.2778), // thickspace
	"!":     em(-0.1667), // negative thinspace
	" ":     em(0.25),    // \  (control space)
	"quad":  em(1.0),
	"qquad": em(2.0),
	"space": em(0.25),
}

// nonBreakingSpaceRune is the codepoint text mode re-emits for LaTeX
// space commands, so rendered text never line-breaks where the author
// forced a space.
const nonBreakingSpaceRune = ' '
