package mathcore

import "testing"

func TestParseColumnSpecification(t *testing.T) {
	spec, ok := parseColumnSpecification("|l||cr:c|")
	if !ok {
		t.Fatal("parse failed")
	}
	if spec.BeginningLine != LineSolid {
		t.Errorf("beginning line = %d", spec.BeginningLine)
	}
	// l| + standalone | + c + r: + c|
	if len(spec.Columns) != 5 {
		t.Fatalf("columns = %+v", spec.Columns)
	}
	first := spec.Columns[0]
	if !first.HasContent || first.Alignment != AlignLeft || first.Line != LineSolid {
		t.Errorf("col 0 = %+v", first)
	}
	if spec.Columns[1].HasContent {
		t.Errorf("col 1 should be a standalone line: %+v", spec.Columns[1])
	}
	if r := spec.Columns[3]; r.Alignment != AlignRight || r.Line != LineDashed {
		t.Errorf("col 3 = %+v", r)
	}
}

func TestColumnSpecificationIgnoresWhitespace(t *testing.T) {
	a, ok1 := parseColumnSpecification(" l c r ")
	b, ok2 := parseColumnSpecification("lcr")
	if !ok1 || !ok2 {
		t.Fatal("parse failed")
	}
	if a.String() != b.String() {
		t.Errorf("%q != %q", a.String(), b.String())
	}
}

func TestColumnSpecificationRejects(t *testing.T) {
	for _, input := range []string{"", "|", "||::", "lxr", "l c r!"} {
		if _, ok := parseColumnSpecification(input); ok {
			t.Errorf("%q: expected failure", input)
		}
	}
}

func TestColumnSpecificationRoundTrip(t *testing.T) {
	for _, canonical := range []string{"lcr", "|l|", "|l||cr:c|", ":c:", "l|r"} {
		spec, ok := parseColumnSpecification(canonical)
		if !ok {
			t.Fatalf("%q: parse failed", canonical)
		}
		if got := spec.String(); got != canonical {
			t.Errorf("%q: round-tripped to %q", canonical, got)
		}
	}
}
