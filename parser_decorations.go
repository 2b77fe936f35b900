package mathcore

// parseOversetUnderset handles \overset{annotation}{base} and
// \underset{annotation}{base}.
func (p *parser) parseOversetUnderset(t TokLoc) (NodeRef, *Error) {
	annotation, err := p.parseBraceGroup()
	if err != nil {
		return noRef, err
	}
	base, err := p.parseBraceGroup()
	if err != nil {
		return noRef, err
	}
	if t.Tok.Str == "underset" {
		return p.arena.Push(Node{Kind: NodeUnder, Child: base, Second: annotation}), nil
	}
	return p.arena.Push(Node{Kind: NodeOver, Child: base, Third: annotation}), nil
}

// overUnderBraceChar is the stretchy brace glyph each decoration
// command draws.
var overUnderBraceChar = map[string]rune{
	"overbrace":  '⏞',
	"underbrace": '⏟',
}

// parseOverUnderBrace handles \overbrace{x} and \underbrace{x}. A
// following ^/_ "explanation" is attached uniformly by attachScripts
// once this returns the decorated base, exactly like any other atom.
func (p *parser) parseOverUnderBrace(t TokLoc) (NodeRef, *Error) {
	base, err := p.parseBraceGroup()
	if err != nil {
		return noRef, err
	}
	decoChar := overUnderBraceChar[t.Tok.Str]
	decoration := p.arena.Push(Node{Kind: NodeOperator, Char: decoChar, Class: ClassDefault, Stretchy: StretchyAlways})
	if t.Tok.Str == "underbrace" {
		return p.arena.Push(Node{Kind: NodeUnder, Child: base, Second: decoration}), nil
	}
	return p.arena.Push(Node{Kind: NodeOver, Child: base, Third: decoration}), nil
}

// accentDecoration selects the glyph an accent or wide-decoration
// command places over (or under) its base, and whether that glyph
// stretches to the base's width. The narrow accents (\hat, \vec, ...)
// never stretch; the wide family (\widehat, \overline, ...) always
// does.
type accentDecoration struct {
	char     rune
	under    bool
	stretchy Stretchy
}

var accentDecorations = map[string]accentDecoration{
	"overline":  {char: '‾', stretchy: StretchyAlways},
	"underline": {char: '_', under: true, stretchy: StretchyAlways},
	"widehat":   {char: '^', stretchy: StretchyAlways},
	"widetilde": {char: '~', stretchy: StretchyAlways},
	"hat":       {char: 'ˆ', stretchy: StretchyNever},
	"tilde":     {char: '˜', stretchy: StretchyNever},
	"bar":       {char: 'ˉ', stretchy: StretchyNever},
	"vec":       {char: '→', stretchy: StretchyNever},
	"dot":       {char: '˙', stretchy: StretchyNever},
	"ddot":      {char: '¨', stretchy: StretchyNever},
	"acute":     {char: '´', stretchy: StretchyNever},
	"grave":     {char: '`', stretchy: StretchyNever},
	"breve":     {char: '˘', stretchy: StretchyNever},
	"check":     {char: 'ˇ', stretchy: StretchyNever},
	"mathring":  {char: '˚', stretchy: StretchyNever},
}

// parseEnclose handles the accent and wide-decoration commands
// (\overline, \underline, \widehat, \hat, \vec, ...), plus the
// labelled-arrow commands \xrightarrow[under]{over} and
// \xleftarrow[under]{over}, all of which wrap a single base with a
// decoration.
func (p *parser) parseEnclose(t TokLoc) (NodeRef, *Error) {
	if t.Tok.Str == "xrightarrow" || t.Tok.Str == "xleftarrow" {
		return p.parseXArrow(t)
	}
	deco, ok := accentDecorations[t.Tok.Str]
	if !ok {
		return noRef, newError(ErrInternal, spanOf(t.Start, t.End))
	}
	base, err := p.parseBraceGroup()
	if err != nil {
		return noRef, err
	}
	mark := p.arena.Push(Node{Kind: NodeOperator, Char: deco.char, Class: ClassDefault, Stretchy: deco.stretchy})
	if deco.under {
		return p.arena.Push(Node{Kind: NodeUnder, Child: base, Second: mark}), nil
	}
	return p.arena.Push(Node{Kind: NodeOver, Child: base, Third: mark}), nil
}

func (p *parser) parseXArrow(t TokLoc) (NodeRef, *Error) {
	arrowChar := '→'
	if t.Tok.Str == "xleftarrow" {
		arrowChar = '←'
	}
	arrow := p.arena.Push(Node{Kind: NodeOperator, Char: arrowChar, Class: ClassRelation, Stretchy: StretchyInconsistent})

	var under NodeRef = noRef
	if open := p.buf.Peek(0); open.Tok.Kind == TokSquareBracketOpen {
		p.buf.Next()
		children, _, err := p.parseRow(stopSet{squareClose: true})
		if err != nil {
			return noRef, err
		}
		if _, err := p.expect(TokSquareBracketClose, open); err != nil {
			return noRef, err
		}
		under = p.arena.Push(Node{Kind: NodeRow, Children: children})
	}

	var over NodeRef = noRef
	if p.buf.Peek(0).Tok.Kind == TokGroupBegin {
		ref, err := p.parseBraceGroup()
		if err != nil {
			return noRef, err
		}
		over = ref
	}

	switch {
	case over != noRef && under != noRef:
		return p.arena.Push(Node{Kind: NodeUnderOver, Child: arrow, Second: under, Third: over}), nil
	case over != noRef:
		return p.arena.Push(Node{Kind: NodeOver, Child: arrow, Third: over}), nil
	case under != noRef:
		return p.arena.Push(Node{Kind: NodeUnder, Child: arrow, Second: under}), nil
	default:
		return arrow, nil
	}
}

// parseSlashed handles \slashed{x}: a slash accent over a single atom,
// approximated (absent a renderer) as an Over construct with a bare
// solidus decoration.
func (p *parser) parseSlashed(t TokLoc) (NodeRef, *Error) {
	base, err := p.parseBraceGroup()
	if err != nil {
		return noRef, err
	}
	slash := p.arena.Push(Node{Kind: NodeOperator, Char: '/', Class: ClassDefault})
	return p.arena.Push(Node{Kind: NodeOver, Child: base, Third: slash}), nil
}

// bigSizeArg maps \big/\Big/\bigg/\Bigg to the explicit size attribute
// a following delimiter should carry.
var bigSizeArg = map[string]int{"big": 1, "Big": 2, "bigg": 3, "Bigg": 4}

// parseBigDelimiter handles \big(, \Big[, \bigg\{, etc.: the next
// token must itself be an Open/Close-class delimiter, which gets the
// explicit size attribute instead of auto-stretching.
func (p *parser) parseBigDelimiter(t TokLoc) (NodeRef, *Error) {
	next := p.buf.Next()
	class := next.Tok.class()
	if class != ClassOpen && class != ClassClose {
		return noRef, newError(ErrExpectedDelimiter, spanOf(next.Start, next.End)).withWhere(t.Tok.Str)
	}
	char := next.Tok.Char
	switch next.Tok.Kind {
	case TokSquareBracketOpen:
		char = '['
	case TokSquareBracketClose:
		char = ']'
	}
	return p.arena.Push(Node{
		Kind: NodeOperator, Char: char, Class: class,
		Stretchy: StretchyNever, Size: bigSizeArg[t.Tok.Str],
	}), nil
}

// parseNot handles \not: combine with the following relation to select
// a negated codepoint where Unicode defines one, else place a slash
// accent over the relation glyph.
func (p *parser) parseNot(t TokLoc) (NodeRef, *Error) {
	next := p.buf.Peek(0)
	if next.Tok.class() != ClassRelation {
		return noRef, newError(ErrExpectedRelation, spanOf(next.Start, next.End))
	}
	p.buf.Next()
	if negated, ok := negatedRelation[next.Tok.Char]; ok {
		return p.arena.Push(Node{Kind: NodeOperator, Char: negated, Class: ClassRelation}), nil
	}
	base := p.arena.Push(Node{Kind: NodeOperator, Char: next.Tok.Char, Class: ClassRelation})
	slash := p.arena.Push(Node{Kind: NodeOver, Child: base, Third: p.arena.Push(Node{Kind: NodeOperator, Char: '/', Class: ClassDefault})})
	return slash, nil
}

// parseLeftRight handles \left<open> ... \right<close>: read the open
// delimiter, parse until the matching \right, read the close
// delimiter, and wrap the content in a Fenced node. A delimiter of "."
// means "no visible delimiter on this side".
func (p *parser) parseLeftRight(t TokLoc) (NodeRef, *Error) {
	open := p.buf.Next()
	openChar, openStretchy, err := p.readDelimiterToken(open)
	if err != nil {
		return noRef, err
	}

	children, term, perr := p.parseRow(stopSet{right: true})
	if perr != nil {
		return noRef, perr
	}
	if term.Tok.Kind != TokRight {
		return noRef, newError(ErrUnclosedGroup, spanOf(t.Start, term.End))
	}
	p.buf.Next() // consume \right
	close := p.buf.Next()
	closeChar, closeStretchy, err2 := p.readDelimiterToken(close)
	if err2 != nil {
		return noRef, err2
	}
	stretchy := openStretchy
	if closeStretchy > stretchy {
		stretchy = closeStretchy
	}
	content := p.arena.Push(Node{Kind: NodeRow, Children: children})
	return p.arena.Push(Node{
		Kind: NodeFenced, Char: openChar, CloseChar: closeChar,
		Child: content, Stretchy: stretchy,
	}), nil
}

// parseMiddle handles \middle<delim> between a \left/\right pair: the
// delimiter is emitted as a stretchy standalone operator so it resizes
// with the surrounding fence.
func (p *parser) parseMiddle(t TokLoc) (NodeRef, *Error) {
	next := p.buf.Next()
	char, _, err := p.readDelimiterToken(next)
	if err != nil {
		return noRef, err
	}
	return p.arena.Push(Node{
		Kind: NodeOperator, Char: char, Class: ClassRelation, Stretchy: StretchyAlways,
	}), nil
}

// readDelimiterToken classifies a \left/\right/\middle delimiter
// token: any Open/Close-class symbol, "." for "invisible", or a bare
// </> read as an angle bracket.
func (p *parser) readDelimiterToken(t TokLoc) (rune, Stretchy, *Error) {
	switch t.Tok.Kind {
	case TokPunctuation:
		if t.Tok.Char == '.' {
			return 0, StretchyAlways, nil
		}
	case TokOpen, TokClose, TokSquareBracketOpen, TokSquareBracketClose:
		if t.Tok.Char == 0 {
			switch t.Tok.Kind {
			case TokSquareBracketOpen:
				return '[', StretchyAlways, nil
			case TokSquareBracketClose:
				return ']', StretchyAlways, nil
			}
		}
		return t.Tok.Char, StretchyAlways, nil
	case TokLessThan:
		return '⟨', StretchyAlways, nil
	case TokGreaterThan:
		return '⟩', StretchyAlways, nil
	}
	return 0, StretchyNever, newError(ErrExpectedDelimiter, spanOf(t.Start, t.End)).withWhere(`\left/\right`)
}
