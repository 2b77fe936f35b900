package mathcore

// parseAtom parses exactly one primary expression atom (without
// attaching any trailing sub/sup), dispatching on the next token's
// kind. prevClass is the class of the previous sibling in the
// enclosing row, needed for the binary/unary demotion rule.
//
// Macro invocations are expanded here iteratively: the body is pushed
// onto the token buffer and the loop re-reads, so expansion depth
// costs work-counter budget rather than stack frames.
func (p *parser) parseAtom(prevClass Class) (NodeRef, *Error) {
	for {
		t := p.buf.Next()

		if t.Tok.Kind == TokCustomCmd {
			expanded, err := p.expandCustomCommand(t)
			if err != nil {
				return noRef, err
			}
			if expanded {
				continue
			}
			return p.handleUnknownCommand(TokLoc{Start: t.Start, End: t.End, Tok: Token{Kind: TokUnknownCommand, Str: t.Tok.Str}})
		}

		return p.parseResolvedAtom(t, prevClass)
	}
}

// parseResolvedAtom dispatches one non-macro token to its atom rule.
func (p *parser) parseResolvedAtom(t TokLoc, prevClass Class) (NodeRef, *Error) {
	switch t.Tok.Kind {
	case TokEOF:
		return noRef, newError(ErrExpectedArgumentGotEOI, spanOf(t.Start, t.End))

	case TokLetter:
		return p.arena.Push(Node{Kind: NodeIdentifier, Char: t.Tok.Char, Class: ClassDefault}), nil

	case TokOrd:
		return p.arena.Push(Node{Kind: NodeIdentifier, Char: t.Tok.Char, Upright: true, Class: ClassDefault}), nil

	case TokUprightLetter:
		return p.arena.Push(Node{Kind: NodeIdentifier, Char: t.Tok.Char, Upright: true, Class: ClassDefault}), nil

	case TokDigit:
		return p.parseNumber(t)

	case TokOp, TokBinaryOp, TokRelation, TokOpen, TokClose, TokPunctuation, TokInner, TokGreaterThan, TokLessThan:
		return p.parseOperatorToken(t, prevClass)

	case TokIntegral:
		return p.parseBigOperator(t)

	case TokPseudoOperator:
		return p.parsePseudoOperator(t)

	case TokGroupBegin:
		children, _, err := p.parseRow(stopSet{groupEnd: true})
		if err != nil {
			return noRef, err
		}
		if _, err := p.expect(TokGroupEnd, t); err != nil {
			return noRef, err
		}
		return p.arena.Push(Node{Kind: NodeRow, Children: children}), nil

	case TokGroupEnd:
		return noRef, newError(ErrUnmatchedClose, spanOf(t.Start, t.End))

	case TokSquareBracketOpen:
		return p.arena.Push(Node{Kind: NodeOperator, Char: '[', Class: ClassOpen, Stretchy: StretchyAlways}), nil
	case TokSquareBracketClose:
		return p.arena.Push(Node{Kind: NodeOperator, Char: ']', Class: ClassClose, Stretchy: StretchyAlways}), nil

	case TokLeft:
		return p.parseLeftRight(t)

	case TokRight:
		return noRef, newError(ErrUnmatchedClose, spanOf(t.Start, t.End))

	case TokMiddle:
		return p.parseMiddle(t)

	case TokFrac, TokBinom:
		return p.parseFrac(t)
	case TokGenfrac:
		return p.parseGenfrac(t)

	case TokSqrt:
		return p.parseSqrt(t)

	case TokOverset, TokUnderset:
		return p.parseOversetUnderset(t)

	case TokOverUnderBrace:
		return p.parseOverUnderBrace(t)

	case TokEnclose:
		return p.parseEnclose(t)

	case TokSlashed:
		return p.parseSlashed(t)

	case TokBig:
		return p.parseBigDelimiter(t)

	case TokNot:
		return p.parseNot(t)

	case TokBegin:
		return p.parseEnvironment(t)

	case TokEnd:
		return noRef, newError(ErrUnmatchedClose, spanOf(t.Start, t.End))

	case TokTextStyle:
		return p.parseTextStyleCommand(t)

	case TokColor:
		return p.parseColorCommand(t)

	case TokSpace, TokCustomSpace:
		return p.parseExplicitSpace(t)

	case TokRule:
		return p.parseRule(t)

	case TokNonBreakingSpace:
		return p.arena.Push(Node{Kind: NodeSpace, Length: t.Tok.Length}), nil

	case TokUnderscore, TokCircumflex:
		return noRef, newError(ErrBoundFollowedByBound, spanOf(t.Start, t.End))

	case TokPrime:
		return noRef, newError(ErrBoundFollowedByBound, spanOf(t.Start, t.End))

	case TokNewColumn:
		return noRef, newError(ErrCannotBeUsedHere, spanOf(t.Start, t.End)).withWhat("&").withWhere("outside a table")

	case TokNewLine:
		return noRef, newError(ErrCannotBeUsedHere, spanOf(t.Start, t.End)).withWhat(`\\`).withWhere("outside a table")

	case TokNoNumber:
		return p.parseNoTag(t)
	case TokTag:
		return p.parseTag(t)

	case TokLimits, TokNoLimits:
		return noRef, newError(ErrCannotBeUsedHere, spanOf(t.Start, t.End)).withWhat(t.Tok.Str).withWhere("outside a big operator")

	case TokStyleChange:
		return noRef, newError(ErrCannotBeUsedHere, spanOf(t.Start, t.End)).withWhat(t.Tok.Str).withWhere("as a bare argument")

	case TokCustomCmdArg:
		return noRef, newError(ErrMacroParameterOutsideCustomCommand, spanOf(t.Start, t.End))

	case TokUnknownCommand:
		return p.handleUnknownCommand(t)

	case TokHardcodedMathML:
		return p.arena.Push(Node{Kind: NodeHardcodedMathML, Str: t.Tok.Str}), nil

	default:
		return noRef, newError(ErrInternal, spanOf(t.Start, t.End))
	}
}

// parseNumber implements the fast-path numeric parser: the lexer
// already yields a digit run as one token, which becomes one Digit
// node; a run followed by a single '.' and another run is collapsed
// into one Number node.
func (p *parser) parseNumber(first TokLoc) (NodeRef, *Error) {
	str := first.Tok.Str
	if peek := p.buf.Peek(0); peek.Tok.Kind == TokPunctuation && peek.Tok.Char == '.' {
		if next := p.buf.Peek(1); next.Tok.Kind == TokDigit {
			p.buf.Next() // '.'
			digits := p.buf.Next()
			str = str + "." + digits.Tok.Str
		}
	}
	if len(str) == len(first.Tok.Str) {
		return p.arena.Push(Node{Kind: NodeDigit, Str: str, Char: first.Tok.Char}), nil
	}
	return p.arena.Push(Node{Kind: NodeNumber, Str: p.arena.AllocString(str)}), nil
}

// parseOperatorToken builds an Operator node for a class-bearing
// symbol, applying the prefix-demotion rule: a BinaryOp standing where
// no left operand exists (start of row, or immediately after an
// Open/Relation/BinaryOp/Punctuation sibling) is recognized as prefix,
// demoted to Default, and its spacing suppressed.
func (p *parser) parseOperatorToken(t TokLoc, prevClass Class) (NodeRef, *Error) {
	class := t.Tok.class()
	if class == ClassBinaryOp && demotesToPrefix(prevClass) {
		class = ClassDefault
	}
	return p.arena.Push(Node{
		Kind:     NodeOperator,
		Char:     t.Tok.Char,
		Class:    class,
		Stretchy: t.Tok.Stretchy,
	}), nil
}

func demotesToPrefix(prevClass Class) bool {
	switch prevClass {
	case ClassOpen, ClassRelation, ClassBinaryOp, ClassPunctuation:
		return true
	default:
		return false
	}
}

// limitOperators is the subset of named functions whose sub/
// superscripts render as under/over (movable limits) by default in
// display style.
var limitOperators = map[string]bool{
	"lim": true, "limsup": true, "liminf": true,
	"max": true, "min": true, "sup": true, "inf": true,
	"gcd": true, "Pr": true,
}

func (p *parser) parsePseudoOperator(t TokLoc) (NodeRef, *Error) {
	movable := limitOperators[t.Tok.Str]
	if peek := p.buf.Peek(0); peek.Tok.Kind == TokLimits || peek.Tok.Kind == TokNoLimits {
		p.buf.Next()
		movable = peek.Tok.Kind == TokLimits
	}
	return p.arena.Push(Node{
		Kind:          NodeMultiLetterIdentifier,
		Str:           t.Tok.Str,
		Upright:       true,
		Class:         ClassOperator,
		MovableLimits: movable,
	}), nil
}

func (p *parser) parseBigOperator(t TokLoc) (NodeRef, *Error) {
	movable := t.Tok.MovableLimits
	// \limits / \nolimits immediately following the operator overrides
	// the symbol table's default.
	if peek := p.buf.Peek(0); peek.Tok.Kind == TokLimits || peek.Tok.Kind == TokNoLimits {
		p.buf.Next()
		movable = peek.Tok.Kind == TokLimits
	}
	return p.arena.Push(Node{
		Kind:          NodeOperator,
		Char:          t.Tok.Char,
		Class:         ClassOperator,
		Stretchy:      StretchyNever,
		MovableLimits: movable,
	}), nil
}

// handleUnknownCommand distinguishes a disallowed bare character
// (tagged by the lexer with the offending rune) from a genuinely
// unknown command name; the latter becomes a visible placeholder when
// the converter was configured to ignore unknown commands.
func (p *parser) handleUnknownCommand(t TokLoc) (NodeRef, *Error) {
	if t.Tok.Char != 0 {
		return noRef, newError(ErrDisallowedChar, spanOf(t.Start, t.End)).withWhat(t.Tok.Str)
	}
	if p.cfg.IgnoreUnknownCommands {
		return p.arena.Push(Node{Kind: NodePlaceholder, Str: t.Tok.Str}), nil
	}
	return noRef, newError(ErrUnknownCommand, spanOf(t.Start, t.End)).withWhat(t.Tok.Str)
}

func (p *parser) parseNoTag(t TokLoc) (NodeRef, *Error) {
	if len(p.envStack) == 0 {
		return noRef, newError(ErrCannotBeUsedHere, spanOf(t.Start, t.End)).withWhat(`\notag`).withWhere("outside a numbered environment")
	}
	p.envStack[len(p.envStack)-1].rowSuppressed = true
	// \notag/\nonumber produce no visible content of their own.
	return p.arena.Push(Node{Kind: NodeRow}), nil
}

func (p *parser) parseTag(t TokLoc) (NodeRef, *Error) {
	if len(p.envStack) == 0 {
		return noRef, newError(ErrCannotBeUsedHere, spanOf(t.Start, t.End)).withWhat(`\tag`).withWhere("outside a numbered environment")
	}
	open := p.buf.Peek(0)
	if open.Tok.Kind != TokGroupBegin {
		return noRef, newError(ErrExpectedArgumentGotClose, spanOf(open.Start, open.End))
	}
	p.buf.Next()
	toks, err := p.readGroupTokens(spanOf(open.Start, open.End))
	if err != nil {
		return noRef, err
	}
	n, ok := parseUnsignedInt(toks)
	if !ok || n <= 0 {
		return noRef, newError(ErrExpectedNumber, spanOf(open.Start, open.End))
	}
	p.envStack[len(p.envStack)-1].rowTag = n
	return p.arena.Push(Node{Kind: NodeRow}), nil
}

// parseUnsignedInt reads a positive decimal integer from a fully
// consumed token slice (the \tag{N} argument), rejecting anything but
// a single run of digit tokens.
func parseUnsignedInt(toks []TokLoc) (int, bool) {
	if len(toks) != 1 || toks[0].Tok.Kind != TokDigit {
		return 0, false
	}
	n := 0
	for _, c := range toks[0].Tok.Str {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
