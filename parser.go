package mathcore

// parser is the recursive-descent engine: a token buffer wrapped with
// mode state, a stack of active environments, the two equation
// counters, and the frozen macro table. One parser instance drives
// exactly one conversion.
type parser struct {
	buf      *tokenBuffer
	arena    *Arena
	registry *macroRegistry
	cfg      Config

	envStack []*envState

	globalCounter *int
	localCounter  int

	workCounter int
	hardLimit   int

	source string
}

func newParser(source string, arena *Arena, registry *macroRegistry, cfg Config, globalCounter *int) *parser {
	limit := cfg.HardLimit
	if limit <= 0 {
		limit = defaultHardLimit
	}
	return &parser{
		buf:           newTokenBuffer(source),
		arena:         arena,
		registry:      registry,
		cfg:           cfg,
		globalCounter: globalCounter,
		hardLimit:     limit,
		source:        source,
	}
}

// step charges one unit of parser work against the hard limit. Every
// loop iteration that could recur through macro expansion calls this,
// which bounds total work even for self-referential macro chains.
func (p *parser) step(span Span) *Error {
	p.workCounter++
	if p.workCounter > p.hardLimit {
		return newError(ErrHardLimitExceeded, span)
	}
	return nil
}

// stopSet is a small predicate bundle describing where the current row
// terminates: end of input, a group close, \right, \end, or a
// row/column separator inside a table.
type stopSet struct {
	groupEnd    bool
	right       bool
	end         bool
	newColumn   bool
	newLine     bool
	squareClose bool
}

func (s stopSet) matches(k TokenKind) bool {
	switch k {
	case TokEOF:
		return true
	case TokGroupEnd:
		return s.groupEnd
	case TokRight:
		return s.right
	case TokEnd:
		return s.end
	case TokNewColumn:
		return s.newColumn
	case TokNewLine:
		return s.newLine
	case TokSquareBracketClose:
		return s.squareClose
	default:
		return false
	}
}

// parseRow parses atoms until a token matching stop is reached
// (without consuming it, so the caller can inspect which terminator
// fired), producing the Row's children with adjacent text runs already
// merged.
func (p *parser) parseRow(stop stopSet) ([]NodeRef, TokLoc, *Error) {
	var children []NodeRef
	for {
		next := p.buf.Peek(0)
		if stop.matches(next.Tok.Kind) {
			return mergeAdjacentTextRuns(p.arena, children), next, nil
		}
		if err := p.step(spanOf(next.Start, next.End)); err != nil {
			return nil, next, err
		}
		if next.Tok.Kind == TokStyleChange {
			// A style switch applies to the remainder of the current
			// group: wrap everything up to the terminator in a styled
			// row.
			p.buf.Next()
			rest, term, err := p.parseRow(stop)
			if err != nil {
				return nil, term, err
			}
			styled := p.arena.Push(Node{
				Kind:         NodeRow,
				Children:     rest,
				RowAttribute: RowAttr{HasStyle: true, Style: styleChangeOf(next.Tok.Str)},
			})
			children = append(children, styled)
			return mergeAdjacentTextRuns(p.arena, children), term, nil
		}
		ref, err := p.parseAtomWithScripts(classOfLast(p.arena, children))
		if err != nil {
			return nil, next, err
		}
		children = append(children, ref)
	}
}

func styleChangeOf(name string) Style {
	switch name {
	case "displaystyle":
		return StyleDisplay
	case "scriptstyle":
		return StyleScript
	case "scriptscriptstyle":
		return StyleScriptScript
	default:
		return StyleText
	}
}

// classOfLast reports the class of the last parsed sibling in a row.
// Start of row is reported as ClassOpen, which behaves identically for
// the binary/unary demotion rule (a binary operator with nothing to
// its left is prefix, exactly as after an opening paren).
func classOfLast(arena *Arena, children []NodeRef) Class {
	if len(children) == 0 {
		return ClassOpen
	}
	n := arena.Get(children[len(children)-1])
	if n == nil {
		return ClassOpen
	}
	return n.Class
}

// parseAtomWithScripts parses one primary atom and then attaches any
// trailing _, ^, or prime tokens to it. Two consecutive script markers
// are rejected.
func (p *parser) parseAtomWithScripts(prevClass Class) (NodeRef, *Error) {
	base, err := p.parseAtom(prevClass)
	if err != nil {
		return noRef, err
	}
	return p.attachScripts(base)
}

func (p *parser) attachScripts(base NodeRef) (NodeRef, *Error) {
	var sub, sup NodeRef = noRef, noRef
	primeAttached := false

	for {
		t := p.buf.Peek(0)
		switch t.Tok.Kind {
		case TokPrime:
			if sup != noRef {
				return noRef, newError(ErrDuplicateSubOrSup, spanOf(t.Start, t.End))
			}
			p.buf.Next()
			sup = p.arena.Push(Node{Kind: NodeOperator, Char: t.Tok.Char, Class: ClassDefault})
			primeAttached = true
		case TokCircumflex:
			if sup != noRef {
				kind := ErrDuplicateSubOrSup
				if primeAttached {
					kind = ErrBoundFollowedByBound
				}
				return noRef, newError(kind, spanOf(t.Start, t.End))
			}
			p.buf.Next()
			arg, err := p.parseSingleArgument()
			if err != nil {
				return noRef, err
			}
			sup = arg
		case TokUnderscore:
			if sub != noRef {
				return noRef, newError(ErrDuplicateSubOrSup, spanOf(t.Start, t.End))
			}
			p.buf.Next()
			arg, err := p.parseSingleArgument()
			if err != nil {
				return noRef, err
			}
			sub = arg
		default:
			return p.finishScripts(base, sub, sup)
		}
	}
}

// finishScripts wraps base with whatever combination of sub/sup was
// collected, rewriting to Under/Over/UnderOver when base is a
// movable-limits big operator.
func (p *parser) finishScripts(base, sub, sup NodeRef) (NodeRef, *Error) {
	if sub == noRef && sup == noRef {
		return base, nil
	}
	baseNode := p.arena.Get(base)
	useLimits := baseNode != nil && baseNode.MovableLimits &&
		(baseNode.Kind == NodeOperator || baseNode.Kind == NodeMultiLetterIdentifier)

	switch {
	case sub != noRef && sup != noRef:
		kind := NodeSubSup
		if useLimits {
			kind = NodeUnderOver
		}
		return p.arena.Push(Node{Kind: kind, Child: base, Second: sub, Third: sup}), nil
	case sub != noRef:
		kind := NodeSubscript
		if useLimits {
			kind = NodeUnder
		}
		return p.arena.Push(Node{Kind: kind, Child: base, Second: sub}), nil
	default:
		kind := NodeSuperscript
		if useLimits {
			kind = NodeOver
		}
		return p.arena.Push(Node{Kind: kind, Child: base, Third: sup}), nil
	}
}

// parseSingleArgument reads the operand of _, ^, or any other
// single-argument construct: either a balanced {...} group (parsed as
// a full row) or exactly one bare atom, so "x^23" superscripts only
// the 2.
func (p *parser) parseSingleArgument() (NodeRef, *Error) {
	t := p.buf.Peek(0)
	switch t.Tok.Kind {
	case TokEOF:
		return noRef, newError(ErrExpectedArgumentGotEOI, spanOf(t.Start, t.End))
	case TokGroupBegin:
		p.buf.Next()
		children, _, err := p.parseRow(stopSet{groupEnd: true})
		if err != nil {
			return noRef, err
		}
		if _, err := p.expect(TokGroupEnd, t); err != nil {
			return noRef, err
		}
		return p.arena.Push(Node{Kind: NodeRow, Children: children}), nil
	case TokGroupEnd, TokRight, TokEnd:
		return noRef, newError(ErrExpectedArgumentGotClose, spanOf(t.Start, t.End))
	case TokUnderscore, TokCircumflex:
		return noRef, newError(ErrBoundFollowedByBound, spanOf(t.Start, t.End))
	case TokDigit:
		// The lexer yields a whole digit run as one token; only its first
		// digit is the argument, and the rest goes back to the buffer.
		p.buf.Next()
		if len(t.Tok.Str) > 1 {
			rest := t
			rest.Start = t.Start + 1
			rest.Tok.Str = t.Tok.Str[1:]
			rest.Tok.Char = rune(t.Tok.Str[1])
			p.buf.PushFront([]TokLoc{rest})
		}
		return p.arena.Push(Node{Kind: NodeDigit, Str: t.Tok.Str[:1], Char: t.Tok.Char}), nil
	default:
		return p.parseAtom(ClassDefault)
	}
}

// expect consumes the next token if it has kind k, else reports an
// unclosed group anchored at open's span. Used for the many "read one
// specific closing token or fail" spots.
func (p *parser) expect(k TokenKind, open TokLoc) (TokLoc, *Error) {
	t := p.buf.Next()
	if t.Tok.Kind != k {
		return t, newError(ErrUnclosedGroup, spanOf(open.Start, t.End))
	}
	return t, nil
}

// readGroupTokens consumes a { ... } group after its opening brace has
// already been read, returning the raw tokens. Used by commands whose
// argument is parsed independently of the math grammar, like color
// names and lengths.
func (p *parser) readGroupTokens(openSpan Span) ([]TokLoc, *Error) {
	return p.buf.ReadGroup(openSpan)
}

// parseBraceGroup reads a full {...} argument (opening brace not yet
// consumed) and returns it as a Row node. Commands that accept the
// one-bare-atom shorthand fall through to parseSingleArgument.
func (p *parser) parseBraceGroup() (NodeRef, *Error) {
	open := p.buf.Peek(0)
	if open.Tok.Kind != TokGroupBegin {
		return p.parseSingleArgument()
	}
	p.buf.Next()
	children, _, err := p.parseRow(stopSet{groupEnd: true})
	if err != nil {
		return noRef, err
	}
	if _, err := p.expect(TokGroupEnd, open); err != nil {
		return noRef, err
	}
	return p.arena.Push(Node{Kind: NodeRow, Children: children}), nil
}
