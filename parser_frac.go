package mathcore

// fracCommandAttr maps \frac/\dfrac/\tfrac/\cfrac/\binom/\dbinom/\tbinom
// to the line-thickness and display-style attribute each carries.
var fracCommandAttr = map[string]FracAttr{
	"frac":   FracAttrDisplayStyleAuto,
	"dfrac":  FracAttrDisplayStyleTrue,
	"tfrac":  FracAttrDisplayStyleFalse,
	"cfrac":  FracAttrCFracStyle,
	"binom":  FracAttrNoLine,
	"dbinom": FracAttrNoLine,
	"tbinom": FracAttrNoLine,
}

var binomCommands = map[string]bool{"binom": true, "dbinom": true, "tbinom": true}

// parseFrac handles \frac{num}{den} and its display-style siblings,
// plus the \binom family which additionally wraps the result in a
// parenthesis fence around a line-less fraction.
func (p *parser) parseFrac(t TokLoc) (NodeRef, *Error) {
	num, err := p.parseBraceGroup()
	if err != nil {
		return noRef, err
	}
	den, err := p.parseBraceGroup()
	if err != nil {
		return noRef, err
	}
	attr := fracCommandAttr[t.Tok.Str]
	fracRef := p.arena.Push(Node{Kind: NodeFraction, Child: num, Second: den, FracAttribute: attr})
	if binomCommands[t.Tok.Str] {
		return p.arena.Push(Node{
			Kind:      NodeFenced,
			Char:      '(',
			CloseChar: ')',
			Child:     fracRef,
			Stretchy:  StretchyAlways,
		}), nil
	}
	return fracRef, nil
}

// parseGenfrac handles \genfrac{left}{right}{thickness}{style}{num}{den},
// the fully general form the frac family is sugar for.
func (p *parser) parseGenfrac(t TokLoc) (NodeRef, *Error) {
	left, err := p.parseDelimiterArgument()
	if err != nil {
		return noRef, err
	}
	right, err := p.parseDelimiterArgument()
	if err != nil {
		return noRef, err
	}
	// Thickness argument: accepted but only used to distinguish
	// "no line" (binom-style, an empty group) from an explicit line.
	thickOpen := p.buf.Peek(0)
	noLine := false
	if thickOpen.Tok.Kind == TokGroupBegin {
		p.buf.Next()
		toks, err := p.readGroupTokens(spanOf(thickOpen.Start, thickOpen.End))
		if err != nil {
			return noRef, err
		}
		noLine = len(toks) == 0
	}
	styleOpen := p.buf.Peek(0)
	if styleOpen.Tok.Kind == TokGroupBegin {
		p.buf.Next()
		if _, err := p.readGroupTokens(spanOf(styleOpen.Start, styleOpen.End)); err != nil {
			return noRef, err
		}
	}
	num, err := p.parseBraceGroup()
	if err != nil {
		return noRef, err
	}
	den, err := p.parseBraceGroup()
	if err != nil {
		return noRef, err
	}
	attr := FracAttrDisplayStyleAuto
	if noLine {
		attr = FracAttrNoLine
	}
	fracRef := p.arena.Push(Node{Kind: NodeFraction, Child: num, Second: den, FracAttribute: attr})
	if left == 0 && right == 0 {
		return fracRef, nil
	}
	return p.arena.Push(Node{
		Kind: NodeFenced, Char: left, CloseChar: right, Child: fracRef, Stretchy: StretchyAlways,
	}), nil
}

// parseDelimiterArgument reads a single-token {delim} or bare-token
// delimiter argument (e.g. \genfrac's left/right arguments), returning
// the delimiter rune, or 0 for an empty "no delimiter" group.
func (p *parser) parseDelimiterArgument() (rune, *Error) {
	t := p.buf.Peek(0)
	if t.Tok.Kind == TokGroupBegin {
		p.buf.Next()
		toks, err := p.readGroupTokens(spanOf(t.Start, t.End))
		if err != nil {
			return 0, err
		}
		if len(toks) == 0 {
			return 0, nil
		}
		return toks[0].Tok.Char, nil
	}
	p.buf.Next()
	return t.Tok.Char, nil
}

// parseSqrt handles \sqrt{x} and \sqrt[index]{x}: with the optional
// bracket group present the result is a Root carrying the index,
// without it a plain Sqrt.
func (p *parser) parseSqrt(t TokLoc) (NodeRef, *Error) {
	var index NodeRef = noRef
	if open := p.buf.Peek(0); open.Tok.Kind == TokSquareBracketOpen {
		p.buf.Next()
		children, _, err := p.parseRow(stopSet{squareClose: true})
		if err != nil {
			return noRef, err
		}
		if _, err := p.expect(TokSquareBracketClose, open); err != nil {
			return noRef, err
		}
		index = p.arena.Push(Node{Kind: NodeRow, Children: children})
	}
	radicand, err := p.parseBraceGroup()
	if err != nil {
		return noRef, err
	}
	if index != noRef {
		return p.arena.Push(Node{Kind: NodeRoot, Child: radicand, Second: index}), nil
	}
	return p.arena.Push(Node{Kind: NodeSqrt, Child: radicand}), nil
}
