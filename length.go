package mathcore

import (
	"strings"

	"github.com/shopspring/decimal"
)

// LengthUnit is the normalized unit a Length is expressed in once
// parsed. Everything collapses to Rem (assuming 1rem = 10pt) or
// Em/Ex, since those are the only units MathML attributes actually
// need downstream.
type LengthUnit uint8

const (
	UnitRem LengthUnit = iota
	UnitEm
	UnitEx
)

// Length is a parsed, unit-tagged dimension, used for \hspace, \rule,
// \kern and friends.
type Length struct {
	Value decimal.Decimal
	Unit  LengthUnit
}

func NewLength(value decimal.Decimal, unit LengthUnit) Length {
	return Length{Value: value, Unit: unit}
}

// Equal reports whether two lengths have the same unit and the same
// value.
func (l Length) Equal(o Length) bool {
	return l.Unit == o.Unit && l.Value.Equal(o.Value)
}

// LatexUnit is one of the eight units accepted after a decimal number
// in a LaTeX length specification. Parsing is ASCII case-insensitive.
type LatexUnit uint8

const (
	UnitPt LatexUnit = iota
	UnitMm
	UnitCm
	UnitIn
	UnitExU
	UnitEmU
	UnitMu
	UnitSp
)

var unitNames = map[string]LatexUnit{
	"pt": UnitPt,
	"mm": UnitMm,
	"cm": UnitCm,
	"in": UnitIn,
	"ex": UnitExU,
	"em": UnitEmU,
	"mu": UnitMu,
	"sp": UnitSp,
}

func parseLatexUnit(s string) (LatexUnit, bool) {
	u, ok := unitNames[strings.ToLower(s)]
	return u, ok
}

// lengthWithUnit converts a bare decimal value in the given LaTeX unit
// to a Length, with 1rem assumed equal to 10pt of the source document.
func (u LatexUnit) lengthWithUnit(value decimal.Decimal) Length {
	switch u {
	case UnitPt:
		return NewLength(value.Mul(decimal.NewFromFloat(0.1)), UnitRem)
	case UnitMm:
		return NewLength(value.Mul(decimal.NewFromFloat(0.28453)), UnitRem)
	case UnitCm:
		return NewLength(value.Mul(decimal.NewFromFloat(2.8453)), UnitRem)
	case UnitIn:
		return NewLength(value.Mul(decimal.NewFromFloat(7.2)), UnitRem)
	case UnitExU:
		return NewLength(value, UnitEx)
	case UnitEmU:
		return NewLength(value, UnitEm)
	case UnitMu:
		return NewLength(value.Mul(decimal.NewFromFloat(0.055555556)), UnitEm)
	case UnitSp:
		return NewLength(value.Mul(decimal.NewFromFloat(1.525879e-6)), UnitRem)
	default:
		return Length{}
	}
}

// parseLengthSpecification parses a string like "2.5em" or "-3pt"
// into a Length: the trailing two ASCII characters are the unit, the
// rest is a decimal number, which keeps unit matching O(1) and
// case-insensitive. The lexer normalizes a leading hyphen to the
// minus-sign codepoint, so that is folded back before numeric parsing.
func parseLengthSpecification(s string) (Length, bool) {
	if len(s) < 2 {
		return Length{}, false
	}
	digits := strings.TrimSpace(strings.ReplaceAll(s[:len(s)-2], "−", "-"))
	unitStr := s[len(s)-2:]
	unit, ok := parseLatexUnit(unitStr)
	if !ok {
		return Length{}, false
	}
	value, err := decimal.NewFromString(digits)
	if err != nil {
		return Length{}, false
	}
	return unit.lengthWithUnit(value), true
}

// pushToString renders a Length back to its canonical LaTeX form. The
// em/ex branches are exact inverses of lengthWithUnit's Em/Ex cases;
// Rem is displayed back out in pt.
func (l Length) pushToString() string {
	switch l.Unit {
	case UnitEm:
		return l.Value.String() + "em"
	case UnitEx:
		return l.Value.String() + "ex"
	default:
		// Rem is displayed back out in pt, inverting the *0.1 factor
		// used when parsing a plain "pt" specification.
		pt := l.Value.Div(decimal.NewFromFloat(0.1))
		return pt.String() + "pt"
	}
}
