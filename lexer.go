package mathcore

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// eof is the sentinel rune next()/peek() return once the source is
// exhausted. -1 can never appear in valid UTF-8.
const eof rune = -1

// lexMode selects which of the lexer's three token grammars is
// active. Macro-body mode additionally recognizes #N parameter
// placeholders; text mode preserves whitespace as tokens and
// recognizes accent commands directly. The grammars diverge enough
// that one next() entry point per mode is simpler than a shared state
// function with a mode switch inside it.
type lexMode uint8

const (
	lexMath lexMode = iota
	lexMacroBody
	lexText
)

// lexer turns a UTF-8 source string into located tokens one at a
// time. Pull-based (NextToken) rather than tokenize-everything-up-
// front, so the token buffer above it can interleave macro push-fronts
// with ordinary lexing.
type lexer struct {
	input string
	start int // byte offset where the token under construction begins
	pos   int // current byte offset (cursor)
	width int // byte width of the last rune returned by next()
	mode  lexMode
}

func newLexer(input string) *lexer {
	return &lexer{input: input}
}

func (l *lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = w
	l.pos += w
	return r
}

func (l *lexer) backup() {
	l.pos -= l.width
}

func (l *lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *lexer) ignore() {
	l.start = l.pos
}

func (l *lexer) value() string {
	return l.input[l.start:l.pos]
}

func (l *lexer) accept(valid string) bool {
	if strings.ContainsRune(valid, l.next()) {
		return true
	}
	l.backup()
	return false
}

func (l *lexer) acceptRun(valid string) {
	for strings.ContainsRune(valid, l.next()) {
	}
	l.backup()
}

func (l *lexer) acceptRunFunc(pred func(rune) bool) {
	for {
		r := l.next()
		if r == eof || !pred(r) {
			l.backup()
			return
		}
	}
}

const asciiDigits = "0123456789"
const asciiLower = "abcdefghijklmnopqrstuvwxyz"
const asciiUpper = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
const asciiLetters = asciiLower + asciiUpper
const whitespaceChars = " \t\n\r"

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// singleGraphemeRune reports whether r, on its own, forms a complete
// grapheme, i.e. is not a combining mark that would need a base
// character before it. A bare combining mark in the source is a
// disallowed character, not an identifier.
func singleGraphemeRune(r rune) bool {
	if unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) {
		return false
	}
	return norm.NFC.String(string(r)) == string(r)
}

// NextToken produces the next located token from the source, advancing
// the lexer past it. Once end of input is reached, every subsequent
// call keeps returning the EOI token.
func (l *lexer) NextToken() TokLoc {
	switch l.mode {
	case lexMacroBody:
		return l.nextMacroBodyToken()
	case lexText:
		return l.nextTextToken()
	default:
		return l.nextMathToken()
	}
}

func (l *lexer) loc(tok Token) TokLoc {
	return TokLoc{Start: l.start, End: l.pos, Tok: tok}
}

// nextMathToken implements the math-mode grammar: skip whitespace,
// then dispatch on the first rune.
func (l *lexer) nextMathToken() TokLoc {
	l.acceptRun(whitespaceChars)
	l.ignore()

	r := l.next()
	switch {
	case r == eof:
		return l.loc(Token{Kind: TokEOF})
	case r == '\\':
		return l.lexCommand()
	case r == '{':
		return l.loc(Token{Kind: TokGroupBegin})
	case r == '}':
		return l.loc(Token{Kind: TokGroupEnd})
	case r == '[':
		return l.loc(Token{Kind: TokSquareBracketOpen})
	case r == ']':
		return l.loc(Token{Kind: TokSquareBracketClose})
	case r == '&':
		return l.loc(Token{Kind: TokNewColumn})
	case r == '_':
		return l.loc(Token{Kind: TokUnderscore})
	case r == '^':
		return l.loc(Token{Kind: TokCircumflex})
	case r == '#':
		// A parameter reference outside a macro body. The digit (if
		// any) is consumed with it so the parser can point its error
		// at the whole #N.
		l.accept(asciiDigits)
		return l.loc(Token{Kind: TokCustomCmdArg, Int: 0})
	case r == '\'':
		return l.lexPrimeRun()
	case r == '<':
		return l.loc(Token{Kind: TokLessThan, Char: '<'})
	case r == '>':
		return l.loc(Token{Kind: TokGreaterThan, Char: '>'})
	case isASCIIDigit(r):
		return l.lexDigitRun(r)
	case isASCIILetter(r):
		return l.loc(Token{Kind: TokLetter, Char: r, Class: ClassDefault})
	default:
		return l.lexOperatorRune(r)
	}
}

// lexPrimeRun collapses a run of ' characters into the matching prime
// codepoint token: one to four primes map to the dedicated PRIME
// through QUADRUPLE PRIME characters.
func (l *lexer) lexPrimeRun() TokLoc {
	count := 1
	for l.accept("'") {
		count++
	}
	var c rune
	switch {
	case count >= 4:
		c = '⁗'
	case count == 3:
		c = '‴'
	case count == 2:
		c = '″'
	default:
		c = '′'
	}
	return l.loc(Token{Kind: TokPrime, Char: c})
}

func (l *lexer) lexDigitRun(first rune) TokLoc {
	l.acceptRun(asciiDigits)
	return l.loc(Token{Kind: TokDigit, Char: first, Str: l.value()})
}

// lexOperatorRune classifies a bare (non-command) operator or
// punctuation rune via the ASCII symbol table. Anything outside that
// table that is still a printable, non-combining rune is treated as a
// bare Ord identifier (accented Unicode letters typed directly, for
// instance); a combining mark on its own is a disallowed character.
func (l *lexer) lexOperatorRune(r rune) TokLoc {
	if d, ok := asciiClass[r]; ok {
		kind := classTokenKind(d.Class)
		return l.loc(Token{Kind: kind, Char: d.Char, Class: d.Class, Stretchy: d.Stretchy})
	}
	if !singleGraphemeRune(r) {
		return l.loc(Token{Kind: TokUnknownCommand, Char: r, Str: quoteRune(r)})
	}
	return l.loc(Token{Kind: TokOrd, Char: r, Class: ClassDefault})
}

func classTokenKind(c Class) TokenKind {
	switch c {
	case ClassOpen:
		return TokOpen
	case ClassClose:
		return TokClose
	case ClassRelation:
		return TokRelation
	case ClassPunctuation:
		return TokPunctuation
	case ClassBinaryOp:
		return TokBinaryOp
	case ClassOperator:
		return TokOp
	case ClassInner:
		return TokInner
	default:
		return TokOrd
	}
}

// lexCommand reads a command after its leading backslash: either a run
// of ASCII letters, exactly one non-letter ASCII character, or exactly
// one non-ASCII codepoint. Unknown commands are not a lexer error;
// they become TokUnknownCommand for the parser to diagnose (or render
// as a placeholder when configured to ignore them).
func (l *lexer) lexCommand() TokLoc {
	r := l.next()
	switch {
	case r == eof:
		return l.loc(Token{Kind: TokUnknownCommand, Str: ""})
	case isASCIILetter(r):
		l.acceptRun(asciiLetters)
		name := l.value()[1:] // drop the leading backslash
		return l.resolveCommand(name)
	case r == '#':
		// \# is the escaped literal pound sign.
		return l.loc(Token{Kind: TokOrd, Char: '#', Class: ClassDefault})
	default:
		name := string(r)
		return l.resolveCommand(name)
	}
}

// resolveCommand looks up a command name against the preset spacing
// commands first, then the structural keyword table (things the parser
// must special-case, like \frac or \begin), then the symbol table, then
// the font-variant and text-style families, then the big operators and
// the pseudo-operator names. Anything left over is tagged TokCustomCmd by
// name; the parser resolves it against the macro registry, which the
// lexer has no access to.
func (l *lexer) resolveCommand(name string) TokLoc {
	if length, ok := presetSpaces[name]; ok {
		return l.loc(Token{Kind: TokNonBreakingSpace, Str: name, Length: length})
	}
	if kind, ok := structuralKeyword[name]; ok {
		return l.loc(Token{Kind: kind, Str: name})
	}
	if d, ok := lookupSymbol(name); ok {
		return l.loc(Token{
			Kind:          classTokenKind(d.Class),
			Char:          d.Char,
			Class:         d.Class,
			Stretchy:      d.Stretchy,
			MovableLimits: d.MovableLimits,
		})
	}
	if tf, ok := commandTransform[name]; ok {
		return l.loc(Token{Kind: TokTextStyle, Str: name, Int: int(tf)})
	}
	if name == "mathrm" || name == "operatorname" || name == "text" ||
		name == "textbf" || name == "textit" || name == "texttt" || name == "textrm" ||
		name == "textsf" || name == "textnormal" || name == "textsc" {
		return l.loc(Token{Kind: TokTextStyle, Str: name})
	}
	if d, ok := bigOperators[name]; ok {
		return l.loc(Token{Kind: TokIntegral, Char: d.Char, Class: d.Class, MovableLimits: d.MovableLimits})
	}
	if pseudoOperatorNames[name] {
		return l.loc(Token{Kind: TokPseudoOperator, Str: name})
	}
	return l.loc(Token{Kind: TokCustomCmd, Str: name})
}

// structuralKeyword maps a command name straight to a TokenKind the
// parser branches on, for commands whose grammar the lexer must tag
// distinctly rather than leaving to symbol-table/macro resolution.
var structuralKeyword = map[string]TokenKind{
	"begin":      TokBegin,
	"end":        TokEnd,
	"\\":         TokNewLine,
	"notag":      TokNoNumber,
	"nonumber":   TokNoNumber,
	"tag":        TokTag,
	"left":       TokLeft,
	"right":      TokRight,
	"middle":     TokMiddle,
	"frac":       TokFrac,
	"dfrac":      TokFrac,
	"tfrac":      TokFrac,
	"cfrac":      TokFrac,
	"genfrac":    TokGenfrac,
	"binom":      TokBinom,
	"dbinom":     TokBinom,
	"tbinom":     TokBinom,
	"overset":    TokOverset,
	"underset":   TokUnderset,
	"overbrace":  TokOverUnderBrace,
	"underbrace": TokOverUnderBrace,
	"overline":   TokEnclose,
	"underline":  TokEnclose,
	"widehat":    TokEnclose,
	"widetilde":  TokEnclose,
	"hat":        TokEnclose,
	"bar":        TokEnclose,
	"vec":        TokEnclose,
	"dot":        TokEnclose,
	"ddot":       TokEnclose,
	"tilde":      TokEnclose,
	"acute":      TokEnclose,
	"grave":      TokEnclose,
	"breve":      TokEnclose,
	"check":      TokEnclose,
	"mathring":   TokEnclose,
	"sqrt":       TokSqrt,
	"limits":     TokLimits,
	"nolimits":   TokNoLimits,
	"hspace":     TokSpace,
	"mspace":     TokCustomSpace,
	"kern":       TokCustomSpace,
	"rule":       TokRule,
	"not":        TokNot,
	"color":      TokColor,
	"textcolor":  TokColor,
	"big":        TokBig,
	"Big":        TokBig,
	"bigg":       TokBig,
	"Bigg":       TokBig,

	"displaystyle":      TokStyleChange,
	"textstyle":         TokStyleChange,
	"scriptstyle":       TokStyleChange,
	"scriptscriptstyle": TokStyleChange,

	"newcommand":   TokCustomCmd,
	"renewcommand": TokCustomCmd,
	"slashed":      TokSlashed,
	"And":          TokNewColumn,
	"xrightarrow":  TokEnclose,
	"xleftarrow":   TokEnclose,
}

// pseudoOperatorNames is the set of built-in function names that
// render as upright, non-italic operator identifiers, the same way
// \operatorname content does.
var pseudoOperatorNames = map[string]bool{
	"sin": true, "cos": true, "tan": true, "cot": true, "sec": true, "csc": true,
	"sinh": true, "cosh": true, "tanh": true, "coth": true,
	"arcsin": true, "arccos": true, "arctan": true,
	"log": true, "ln": true, "exp": true, "lg": true,
	"det": true, "dim": true, "gcd": true, "lcm": true, "hom": true, "ker": true,
	"deg": true, "arg": true,
	"min": true, "max": true, "sup": true, "inf": true,
	"lim": true, "limsup": true, "liminf": true,
	"Pr": true,
}

// bigOperators lists the integral/big-operator family. Sums, products
// and their set-theoretic relatives move their limits to under/over
// position in display style; integrals keep them beside the glyph.
var bigOperators = map[string]symbolDescriptor{
	"sum":       {Char: '∑', Class: ClassOperator, MovableLimits: true},
	"prod":      {Char: '∏', Class: ClassOperator, MovableLimits: true},
	"coprod":    {Char: '∐', Class: ClassOperator, MovableLimits: true},
	"int":       {Char: '∫', Class: ClassOperator, MovableLimits: false},
	"iint":      {Char: '∬', Class: ClassOperator, MovableLimits: false},
	"iiint":     {Char: '∭', Class: ClassOperator, MovableLimits: false},
	"iiiint":    {Char: '⨌', Class: ClassOperator, MovableLimits: false},
	"oint":      {Char: '∮', Class: ClassOperator, MovableLimits: false},
	"oiint":     {Char: '∯', Class: ClassOperator, MovableLimits: false},
	"oiiint":    {Char: '∰', Class: ClassOperator, MovableLimits: false},
	"bigcup":    {Char: '⋃', Class: ClassOperator, MovableLimits: true},
	"bigcap":    {Char: '⋂', Class: ClassOperator, MovableLimits: true},
	"biguplus":  {Char: '⨄', Class: ClassOperator, MovableLimits: true},
	"bigsqcup":  {Char: '⨆', Class: ClassOperator, MovableLimits: true},
	"bigvee":    {Char: '⋁', Class: ClassOperator, MovableLimits: true},
	"bigwedge":  {Char: '⋀', Class: ClassOperator, MovableLimits: true},
	"bigodot":   {Char: '⨀', Class: ClassOperator, MovableLimits: true},
	"bigoplus":  {Char: '⨁', Class: ClassOperator, MovableLimits: true},
	"bigotimes": {Char: '⨂', Class: ClassOperator, MovableLimits: true},
}

// nextMacroBodyToken implements the macro-body grammar: identical to
// math mode except that # introduces a parameter placeholder. A bare #
// not followed by a digit is the one error the lexer reports itself,
// via a marker token the macro compiler turns into the right error
// kind (invalid parameter number, or premature end of input).
func (l *lexer) nextMacroBodyToken() TokLoc {
	l.acceptRun(whitespaceChars)
	l.ignore()

	r := l.peek()
	if r == '#' {
		l.next()
		d := l.next()
		if d == eof {
			return l.loc(Token{Kind: TokUnknownCommand, Str: "#"})
		}
		if !isASCIIDigit(d) {
			return l.loc(Token{Kind: TokUnknownCommand, Str: "#" + string(d)})
		}
		n := int(d - '0')
		return l.loc(Token{Kind: TokCustomCmdArg, Int: n})
	}
	return l.nextMathToken()
}

// nextTextToken implements the text-mode grammar: whitespace is kept
// as its own token so the text sub-parser can re-emit it, and a
// handful of accent commands are recognized directly since they apply
// to exactly one following character.
func (l *lexer) nextTextToken() TokLoc {
	l.start = l.pos
	r := l.next()
	switch {
	case r == eof:
		return l.loc(Token{Kind: TokEOF})
	case r == '}':
		return l.loc(Token{Kind: TokGroupEnd})
	case r == '{':
		return l.loc(Token{Kind: TokGroupBegin})
	case r == '\\':
		return l.lexTextCommand()
	case r == ' ' || r == '\t':
		l.acceptRun(" \t")
		return l.loc(Token{Kind: TokWhitespace})
	case r == '\n':
		l.acceptRun(whitespaceChars)
		return l.loc(Token{Kind: TokWhitespace})
	default:
		return l.loc(Token{Kind: TokOrd, Char: r, Class: ClassDefault})
	}
}

// textAccentCommand maps a single-character accent command, applied to
// exactly one following character, to its combining-mark codepoint.
var textAccentCommand = map[rune]rune{
	'\'': 0x0301, // acute
	'`':  0x0300, // grave
	'~':  0x0303, // tilde
	'^':  0x0302, // circumflex
	'"':  0x0308, // diaeresis
	'=':  0x0304, // macron
	'.':  0x0307, // dot above
}

func (l *lexer) lexTextCommand() TokLoc {
	r := l.next()
	if r == eof {
		return l.loc(Token{Kind: TokUnknownCommand, Str: ""})
	}
	if mark, ok := textAccentCommand[r]; ok {
		target := l.next()
		if target == '{' {
			// \'{e} form: the braces enclose the single target rune.
			target = l.next()
			l.accept("}")
		}
		return l.loc(Token{Kind: TokTextModeAccent, Char: target, Int: int(mark)})
	}
	if isASCIILetter(r) {
		l.acceptRun(asciiLetters)
		name := l.value()[1:]
		switch name {
		case "textbf", "textit", "texttt", "textrm", "textsf", "textnormal", "text", "textsc":
			return l.loc(Token{Kind: TokTextStyle, Str: name})
		case "quad", "qquad":
			return l.loc(Token{Kind: TokNonBreakingSpace})
		}
		return l.loc(Token{Kind: TokCustomCmd, Str: name})
	}
	return l.loc(Token{Kind: TokUnknownCommand, Str: string(r)})
}
