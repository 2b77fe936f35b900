package mathcore

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseLengthUnits(t *testing.T) {
	cases := []struct {
		input string
		unit  LengthUnit
		value string
	}{
		{"2.5em", UnitEm, "2.5"},
		{"1ex", UnitEx, "1"},
		{"10pt", UnitRem, "1"},
		{"-3pt", UnitRem, "-0.3"},
		{"2EM", UnitEm, "2"},
		{"18mu", UnitEm, "1.000000008"},
	}
	for _, c := range cases {
		got, ok := parseLengthSpecification(c.input)
		if !ok {
			t.Errorf("%q: parse failed", c.input)
			continue
		}
		if got.Unit != c.unit {
			t.Errorf("%q: unit = %d, want %d", c.input, got.Unit, c.unit)
		}
		want, _ := decimal.NewFromString(c.value)
		if !got.Value.Equal(want) {
			t.Errorf("%q: value = %s, want %s", c.input, got.Value, want)
		}
	}
}

func TestParseLengthRejects(t *testing.T) {
	for _, input := range []string{"", "em", "2", "2qq", "x2em", "2.5.5em"} {
		if _, ok := parseLengthSpecification(input); ok {
			t.Errorf("%q: expected failure", input)
		}
	}
}

func TestLengthRoundTrip(t *testing.T) {
	// Canonical forms re-parse to the same numeric value.
	for _, input := range []string{"2.5em", "1ex", "10pt", "0.125em"} {
		first, ok := parseLengthSpecification(input)
		if !ok {
			t.Fatalf("%q: parse failed", input)
		}
		serialized := first.pushToString()
		second, ok := parseLengthSpecification(serialized)
		if !ok {
			t.Fatalf("%q -> %q: reparse failed", input, serialized)
		}
		if !first.Equal(second) {
			t.Errorf("%q -> %q: %v != %v", input, serialized, first, second)
		}
	}
}

func TestLengthEqual(t *testing.T) {
	a, _ := parseLengthSpecification("1em")
	b, _ := parseLengthSpecification("1.0em")
	if !a.Equal(b) {
		t.Error("1em != 1.0em")
	}
	c, _ := parseLengthSpecification("1ex")
	if a.Equal(c) {
		t.Error("1em == 1ex")
	}
}
