package mathcore

import (
	"fmt"

	"github.com/juju/errors"
)

// MacroSpec is one user-supplied (name, body) pair. Body is plain
// LaTeX source; its arity is inferred from the highest #N parameter
// reference it contains, and it is pre-lexed into a token slice at
// construction time so call sites never re-lex the body string.
type MacroSpec struct {
	Name string
	Body string
}

// macroDef is the frozen, compiled form of a MacroSpec or a built-in
// predefined command: a name, an arity, and a slice of preresolved
// tokens that may contain TokCustomCmdArg placeholders.
type macroDef struct {
	name  string
	arity int
	body  []TokLoc
}

// macroRegistry is the converter's table of user and predefined
// macros, built once in New() and never mutated afterward. Because it
// is read-only after construction, macro expansion cannot mutate
// shared state and conversions on different goroutines can share one
// registry freely.
type macroRegistry struct {
	byName map[string]*macroDef
}

func newMacroRegistry() *macroRegistry {
	return &macroRegistry{byName: make(map[string]*macroDef)}
}

func (r *macroRegistry) lookup(name string) (*macroDef, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// buildMacroRegistry compiles every predefined command and every
// user-supplied MacroSpec. A user body error carries the (kind, index,
// offending body) tuple; a predefined body error would indicate a bug
// in this package and is annotated as such.
func buildMacroRegistry(userMacros []MacroSpec) (*macroRegistry, error) {
	reg := newMacroRegistry()

	for i, spec := range predefinedCommands {
		def, err := compileMacroBody(spec.Name, spec.Body)
		if err != nil {
			return nil, errors.Annotatef(err, "internal: predefined command %d (%q)", i, spec.Name)
		}
		reg.byName[spec.Name] = def
	}

	for i, spec := range userMacros {
		if !validMacroName(spec.Name) {
			return nil, &macroBodyError{kind: ErrInvalidMacroName, index: i, body: spec.Body}
		}
		def, err := compileMacroBody(spec.Name, spec.Body)
		if err != nil {
			return nil, &macroBodyError{kind: errKindOf(err), index: i, body: spec.Body}
		}
		reg.byName[spec.Name] = def
	}

	return reg, nil
}

// macroBodyError reports a construction-time macro body failure: which
// macro (by position in the Macros option), what went wrong, and the
// body that caused it.
type macroBodyError struct {
	kind  ErrKind
	index int
	body  string
}

func (e *macroBodyError) Error() string {
	return fmt.Sprintf("macro %d (%q) failed to compile: %s", e.index, e.body, e.kind)
}

func errKindOf(err error) ErrKind {
	if le, ok := err.(*Error); ok {
		return le.Kind
	}
	return ErrInternal
}

func validMacroName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !isASCIILetter(r) {
			return false
		}
	}
	return true
}

// compileMacroBody lexes body in macro-body mode (so #N is recognized)
// and records every token, inferring arity from the highest parameter
// index referenced.
func compileMacroBody(name, body string) (*macroDef, error) {
	lx := newLexer(body)
	lx.mode = lexMacroBody
	var toks []TokLoc
	arity := 0
	for {
		t := lx.NextToken()
		if t.Tok.Kind == TokEOF {
			break
		}
		if t.Tok.Kind == TokUnknownCommand && len(t.Tok.Str) > 0 && t.Tok.Str[0] == '#' {
			if len(t.Tok.Str) == 1 {
				return nil, newError(ErrExpectedParamNumberGotEOI, spanOf(t.Start, t.End))
			}
			return nil, newError(ErrInvalidParameterNumber, spanOf(t.Start, t.End))
		}
		if t.Tok.Kind == TokCustomCmdArg {
			if t.Tok.Int == 0 {
				return nil, newError(ErrInvalidParameterNumber, spanOf(t.Start, t.End))
			}
			if t.Tok.Int > arity {
				arity = t.Tok.Int
			}
		}
		toks = append(toks, t)
	}
	if arity > 9 {
		return nil, newError(ErrInvalidParameterNumber, spanOf(0, len(body)))
	}
	return &macroDef{name: name, arity: arity, body: toks}, nil
}

// expandArgs substitutes each TokCustomCmdArg(i) placeholder in a
// macro body with the actual argument tokens supplied at the call
// site, producing the flat token slice that gets pushed onto the token
// buffer in place of the macro invocation.
func expandArgs(body []TokLoc, args [][]TokLoc) []TokLoc {
	if len(args) == 0 {
		return body
	}
	out := make([]TokLoc, 0, len(body))
	for _, t := range body {
		if t.Tok.Kind == TokCustomCmdArg {
			idx := t.Tok.Int - 1
			if idx >= 0 && idx < len(args) {
				out = append(out, args[idx]...)
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// predefinedCommands are built-in commands expressed through the very
// same mechanism as user macros: each is a pre-tokenized body with
// CustomCmdArg placeholders for its arguments (none, one, or two for
// \odv and \pdv), stored in the
// same registry, resolved through the same code path.
var predefinedCommands = []MacroSpec{
	{Name: "iff", Body: `\;\Longleftrightarrow\;`},
	{Name: "implies", Body: `\;\Longrightarrow\;`},
	{Name: "impliedby", Body: `\;\Longleftarrow\;`},
	{Name: "bmod", Body: `\;\mathrm{mod}\;`},
	{Name: "mod", Body: `\quad\mathrm{mod}\quad`},
	{Name: "pmod", Body: `\quad(\mathrm{mod}\ #1)`},
	{Name: "bra", Body: `\langle #1 \vert`},
	{Name: "ket", Body: `\vert #1 \rangle`},
	{Name: "braket", Body: `\langle #1 \rangle`},
	{Name: "idotsint", Body: `\int\cdots\int`},
	{Name: "odv", Body: `\frac{d#1}{d#2}`},
	{Name: "pdv", Body: `\frac{\partial#1}{\partial#2}`},
}
