package mathcore

import "testing"

func TestCompileMacroBodyArity(t *testing.T) {
	cases := map[string]int{
		`x+y`:               0,
		`\frac{#1}{#2}`:     2,
		`#1#1`:              1,
		`#3`:                3,
		`\sqrt[#2]{#1} #9`:  9,
	}
	for body, wantArity := range cases {
		def, err := compileMacroBody("m", body)
		if err != nil {
			t.Errorf("%q: %v", body, err)
			continue
		}
		if def.arity != wantArity {
			t.Errorf("%q: arity = %d, want %d", body, def.arity, wantArity)
		}
	}
}

func TestCompileMacroBodyErrors(t *testing.T) {
	cases := map[string]ErrKind{
		`#`:  ErrExpectedParamNumberGotEOI,
		`#x`: ErrInvalidParameterNumber,
		`#0`: ErrInvalidParameterNumber,
	}
	for body, wantKind := range cases {
		_, err := compileMacroBody("m", body)
		lerr, ok := err.(*Error)
		if !ok || lerr.Kind != wantKind {
			t.Errorf("%q: got %v, want %s", body, err, wantKind)
		}
	}
}

func TestInvalidMacroName(t *testing.T) {
	for _, name := range []string{"", "2x", "foo_bar", "a*"} {
		_, err := New(WithMacros(MacroSpec{Name: name, Body: "x"}))
		mbe, ok := err.(*macroBodyError)
		if !ok || mbe.kind != ErrInvalidMacroName {
			t.Errorf("%q: got %v", name, err)
		}
	}
}

func TestMacroBodyErrorCarriesIndexAndBody(t *testing.T) {
	_, err := New(WithMacros(
		MacroSpec{Name: "ok", Body: "x"},
		MacroSpec{Name: "bad", Body: "#"},
	))
	mbe, ok := err.(*macroBodyError)
	if !ok {
		t.Fatalf("got %T: %v", err, err)
	}
	if mbe.index != 1 || mbe.body != "#" || mbe.kind != ErrExpectedParamNumberGotEOI {
		t.Fatalf("got %+v", mbe)
	}
}

func TestExpandArgs(t *testing.T) {
	body := []TokLoc{
		{Tok: Token{Kind: TokLetter, Char: 'a'}},
		{Tok: Token{Kind: TokCustomCmdArg, Int: 1}},
		{Tok: Token{Kind: TokLetter, Char: 'b'}},
		{Tok: Token{Kind: TokCustomCmdArg, Int: 2}},
	}
	args := [][]TokLoc{
		{{Tok: Token{Kind: TokDigit, Str: "1", Char: '1'}}},
		{{Tok: Token{Kind: TokDigit, Str: "2", Char: '2'}}, {Tok: Token{Kind: TokDigit, Str: "3", Char: '3'}}},
	}
	out := expandArgs(body, args)
	if len(out) != 5 {
		t.Fatalf("got %d tokens", len(out))
	}
	if out[1].Tok.Str != "1" || out[3].Tok.Str != "2" || out[4].Tok.Str != "3" {
		t.Fatalf("got %+v", out)
	}
}

func TestPredefinedCommandsCompile(t *testing.T) {
	// New compiles every predefined body; a bad one fails construction.
	if _, err := New(); err != nil {
		t.Fatalf("New: %v", err)
	}
}

func TestPredefinedPmod(t *testing.T) {
	ast := mustConvert(t, `a \pmod{n}`)
	root := ast.Arena.Get(ast.Root)
	if len(root.Children) < 3 {
		t.Fatalf("children = %d", len(root.Children))
	}
}

func TestMacroMissingArgument(t *testing.T) {
	err := convertErr(t, `\half`, WithMacros(MacroSpec{Name: "half", Body: `\frac{#1}{2}`}))
	if err.Kind != ErrExpectedArgumentGotEOI {
		t.Fatalf("got %v", err)
	}
}

func TestUserMacroOverridesNothingButResolves(t *testing.T) {
	deg := MacroSpec{Name: "degrees", Body: `#1^{\circ}`}
	ast := mustConvert(t, `\degrees{90}`, WithMacros(deg))
	n := onlyChild(t, ast)
	if n.Kind != NodeSuperscript {
		t.Fatalf("got %d", n.Kind)
	}
}
