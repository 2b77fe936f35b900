package mathcore

// parseTextStyleCommand handles the font-variant commands (\mathbf,
// \mathbb, ...), \mathrm/\operatorname (upright, no transform), and
// \text and its \textXX siblings, which switch to the text-mode
// sub-parser entirely.
func (p *parser) parseTextStyleCommand(t TokLoc) (NodeRef, *Error) {
	switch t.Tok.Str {
	case "text", "textbf", "textit", "texttt", "textrm", "textsf", "textnormal", "textsc":
		return p.parseTextMode(t, t.Tok.Str)
	case "operatorname":
		return p.parseOperatorName(t)
	case "mathrm":
		content, err := p.parseBraceGroup()
		if err != nil {
			return noRef, err
		}
		applyVariant(p.arena, content, MathVariant{Transform: TransformNone, Upright: true})
		return p.arena.Push(Node{Kind: NodeTransformWrap, Child: content, Variant: MathVariant{Upright: true}}), nil
	default:
		content, err := p.parseBraceGroup()
		if err != nil {
			return noRef, err
		}
		variant := MathVariant{Transform: TextTransform(t.Tok.Int)}
		applyVariant(p.arena, content, variant)
		return p.arena.Push(Node{Kind: NodeTransformWrap, Child: content, Variant: variant}), nil
	}
}

// parseOperatorName handles \operatorname{foo}: its argument is read
// in text-like fashion (letters only, no math parsing) and rendered as
// a single upright multi-letter identifier with operator spacing,
// exactly like a predeclared function name.
func (p *parser) parseOperatorName(t TokLoc) (NodeRef, *Error) {
	open := p.buf.Peek(0)
	if open.Tok.Kind != TokGroupBegin {
		return noRef, newError(ErrExpectedArgumentGotClose, spanOf(open.Start, open.End))
	}
	p.buf.Next()
	toks, err := p.readGroupTokens(spanOf(open.Start, open.End))
	if err != nil {
		return noRef, err
	}
	var name []rune
	for _, tl := range toks {
		if tl.Tok.Kind == TokLetter || tl.Tok.Kind == TokOrd {
			name = append(name, tl.Tok.Char)
		}
	}
	return p.arena.Push(Node{
		Kind: NodeMultiLetterIdentifier, Str: p.arena.AllocString(string(name)), Upright: true, Class: ClassOperator,
	}), nil
}

// parseColorCommand handles \color{name}{...} and \textcolor{name}{...},
// wrapping the content in a color attribute.
func (p *parser) parseColorCommand(t TokLoc) (NodeRef, *Error) {
	open := p.buf.Peek(0)
	if open.Tok.Kind != TokGroupBegin {
		return noRef, newError(ErrExpectedArgumentGotClose, spanOf(open.Start, open.End))
	}
	p.buf.Next()
	toks, err := p.readGroupTokens(spanOf(open.Start, open.End))
	if err != nil {
		return noRef, err
	}
	name := colorNameFromTokens(toks)
	r, g, b, ok := lookupColor(name)
	if !ok {
		return noRef, newError(ErrUnknownColor, spanOf(open.Start, open.End)).withWhat(name)
	}

	content, cerr := p.parseBraceGroup()
	if cerr != nil {
		return noRef, cerr
	}
	return p.arena.Push(Node{
		Kind: NodeColorWrap, Child: content,
		RowAttribute: RowAttr{HasColor: true, R: r, G: g, B: b},
	}), nil
}

func colorNameFromTokens(toks []TokLoc) string {
	var sb []rune
	for _, t := range toks {
		if t.Tok.Str != "" {
			sb = append(sb, []rune(t.Tok.Str)...)
		} else if t.Tok.Char != 0 {
			sb = append(sb, t.Tok.Char)
		}
	}
	return string(sb)
}

// parseExplicitSpace handles \hspace{len} and \mspace/\kern{len},
// reading a length specification and emitting a Space node.
func (p *parser) parseExplicitSpace(t TokLoc) (NodeRef, *Error) {
	open := p.buf.Peek(0)
	if open.Tok.Kind != TokGroupBegin {
		return noRef, newError(ErrExpectedArgumentGotClose, spanOf(open.Start, open.End))
	}
	p.buf.Next()
	toks, err := p.readGroupTokens(spanOf(open.Start, open.End))
	if err != nil {
		return noRef, err
	}
	raw := rawTokenText(toks)
	length, ok := parseLengthSpecification(raw)
	if !ok {
		return noRef, newError(ErrExpectedLength, spanOf(open.Start, open.End))
	}
	return p.arena.Push(Node{Kind: NodeSpace, Length: length}), nil
}

// parseRule handles \rule{width}{height}: two length arguments, kept
// on a dedicated node so a renderer can draw the filled box.
func (p *parser) parseRule(t TokLoc) (NodeRef, *Error) {
	width, err := p.readLengthArgument()
	if err != nil {
		return noRef, err
	}
	height, err := p.readLengthArgument()
	if err != nil {
		return noRef, err
	}
	return p.arena.Push(Node{Kind: NodeRule, Length: width, Length2: height}), nil
}

func (p *parser) readLengthArgument() (Length, *Error) {
	open := p.buf.Peek(0)
	if open.Tok.Kind != TokGroupBegin {
		return Length{}, newError(ErrExpectedArgumentGotClose, spanOf(open.Start, open.End))
	}
	p.buf.Next()
	toks, err := p.readGroupTokens(spanOf(open.Start, open.End))
	if err != nil {
		return Length{}, err
	}
	length, ok := parseLengthSpecification(rawTokenText(toks))
	if !ok {
		return Length{}, newError(ErrExpectedLength, spanOf(open.Start, open.End))
	}
	return length, nil
}

// rawTokenText reassembles a token slice's literal source text, used
// where a command argument is parsed independently of the math
// grammar (length and column-spec arguments): the tight parsers
// need the original characters, not an AST.
func rawTokenText(toks []TokLoc) string {
	var sb []byte
	for _, t := range toks {
		switch {
		case t.Tok.Str != "":
			sb = append(sb, t.Tok.Str...)
		case t.Tok.Char != 0:
			sb = append(sb, []byte(string(t.Tok.Char))...)
		}
	}
	return string(sb)
}
