package mathcore

import "testing"

func textRuns(t *testing.T, ast *AST) []*Node {
	t.Helper()
	row := onlyChild(t, ast)
	if row.Kind != NodeRow {
		t.Fatalf("got %d, want row of text runs", row.Kind)
	}
	var runs []*Node
	for _, ref := range row.Children {
		runs = append(runs, ast.Arena.Get(ref))
	}
	return runs
}

func TestTextBasic(t *testing.T) {
	runs := textRuns(t, mustConvert(t, `\text{hello world}`))
	if len(runs) != 1 {
		t.Fatalf("runs = %d", len(runs))
	}
	if runs[0].Kind != NodeTextRun || runs[0].Str != "hello world" {
		t.Fatalf("got %+v", runs[0])
	}
	if !runs[0].Variant.Upright {
		t.Error("plain \\text should be upright")
	}
}

func TestTextBoldVariant(t *testing.T) {
	runs := textRuns(t, mustConvert(t, `\textbf{abc}`))
	if runs[0].Variant.Transform != TransformBold {
		t.Fatalf("got %+v", runs[0].Variant)
	}
}

func TestTextNestedStyles(t *testing.T) {
	runs := textRuns(t, mustConvert(t, `\textbf{a\textit{b}c}`))
	if len(runs) != 3 {
		t.Fatalf("runs = %d, want 3", len(runs))
	}
	if runs[0].Str != "a" || runs[0].Variant.Transform != TransformBold {
		t.Errorf("run 0 = %+v", runs[0])
	}
	if runs[1].Str != "b" || runs[1].Variant.Transform != TransformNone {
		t.Errorf("run 1 = %+v", runs[1])
	}
	if runs[2].Str != "c" || runs[2].Variant.Transform != TransformBold {
		t.Errorf("run 2 = %+v", runs[2])
	}
}

func TestTextAdjacentRunsMerged(t *testing.T) {
	// The nested group re-enters the same style, so all three pieces
	// collapse into one run.
	runs := textRuns(t, mustConvert(t, `\text{a{b}c}`))
	if len(runs) != 1 || runs[0].Str != "abc" {
		t.Fatalf("got %+v", runs)
	}
}

func TestTextAccent(t *testing.T) {
	runs := textRuns(t, mustConvert(t, `\text{caf\'e}`))
	if runs[0].Str != "café" {
		t.Fatalf("got %q", runs[0].Str)
	}
}

func TestTextAccentBraced(t *testing.T) {
	runs := textRuns(t, mustConvert(t, `\text{\~{n}}`))
	if runs[0].Str != "ñ" {
		t.Fatalf("got %q", runs[0].Str)
	}
}

func TestTextMathCommandRejected(t *testing.T) {
	err := convertErr(t, `\text{\alpha}`)
	if err.Kind != ErrNotValidInTextMode {
		t.Fatalf("got %v", err)
	}
}

func TestTextUnclosed(t *testing.T) {
	err := convertErr(t, `\text{abc`)
	if err.Kind != ErrUnclosedGroup {
		t.Fatalf("got %v", err)
	}
}

func TestTextMissingBrace(t *testing.T) {
	err := convertErr(t, `\text x`)
	if err.Kind != ErrExpectedText {
		t.Fatalf("got %v", err)
	}
}

func TestTextWhitespaceCollapses(t *testing.T) {
	runs := textRuns(t, mustConvert(t, `\text{a   b}`))
	if runs[0].Str != "a b" {
		t.Fatalf("got %q", runs[0].Str)
	}
}

func TestTextQuadBecomesNonBreakingSpace(t *testing.T) {
	runs := textRuns(t, mustConvert(t, `\text{a\quad b}`))
	want := "a  b"
	if runs[0].Str != want {
		t.Fatalf("got %q, want %q", runs[0].Str, want)
	}
}
