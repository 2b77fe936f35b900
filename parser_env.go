package mathcore

// rowMeta records the per-row numbering inputs collected while parsing
// an environment's rows: an explicit \tag{N} literal, or a
// \notag/\nonumber suppression.
type rowMeta struct {
	tag        int
	suppressed bool
}

// parseEnvironment handles \begin{name}...\end{name}: read the
// environment name (and, for array, its column specification), parse
// rows separated by \\ and cells separated by & according to the
// kind's column policy, match the closing \end{name}, then assign
// equation numbers in a single post-pass over the closed rows.
func (p *parser) parseEnvironment(beginTok TokLoc) (NodeRef, *Error) {
	name, err := p.readBracedName(beginTok)
	if err != nil {
		return noRef, err
	}
	kind, ok := lookupEnv(name)
	if !ok {
		return noRef, newError(ErrUnknownEnvironment, spanOf(beginTok.Start, beginTok.End)).withWhat(name)
	}

	var colSpec ArraySpec
	if kind == EnvArray || kind == EnvSubarray {
		spec, err := p.readColumnSpecArgument()
		if err != nil {
			return noRef, err
		}
		colSpec = spec
	}

	st := &envState{kind: kind, name: name, state: StateExpectFirstCell}
	p.envStack = append(p.envStack, st)

	var rows [][]NodeRef
	var metas []rowMeta
	var curRow []NodeRef

	for {
		stop := stopSet{end: true, newColumn: kind.AllowsColumns(), newLine: true}
		cellChildren, term, perr := p.parseRow(stop)
		if perr != nil {
			p.popEnv()
			return noRef, perr
		}
		st.state = StateInCell
		curRow = append(curRow, p.arena.Push(Node{Kind: NodeRow, Children: cellChildren}))

		switch term.Tok.Kind {
		case TokNewColumn:
			p.buf.Next()
			st.state = StateAfterColumnSep
			st.column++
			continue
		case TokNewLine:
			p.buf.Next()
			st.state = StateAfterRowSep
			rows = append(rows, curRow)
			metas = append(metas, rowMeta{tag: st.rowTag, suppressed: st.rowSuppressed})
			curRow = nil
			st.rowTag = 0
			st.rowSuppressed = false
			st.row++
			st.column = 0
			continue
		case TokEnd:
			st.state = StateAwaitingEnd
			rows = append(rows, curRow)
			metas = append(metas, rowMeta{tag: st.rowTag, suppressed: st.rowSuppressed})
		case TokEOF:
			p.popEnv()
			return noRef, newError(ErrUnclosedGroup, spanOf(beginTok.Start, term.End))
		}
		break
	}

	endTok := p.buf.Next() // consumes \end
	endName, err := p.readBracedName(endTok)
	if err != nil {
		p.popEnv()
		return noRef, err
	}
	if endName != name {
		p.popEnv()
		return noRef, newError(ErrMismatchedEnvironment, spanOf(endTok.Start, endTok.End)).
			withExpected(name).withGot(endName)
	}
	p.popEnv()

	rowRefs := make([]NodeRef, len(rows))
	for i, cells := range rows {
		rowRefs[i] = p.arena.Push(Node{Kind: NodeRow, Children: cells})
	}

	policy := kind.NumberingPolicy()
	var node NodeRef
	if policy == NumberNone {
		node = p.arena.Push(Node{Kind: NodeTable, Children: rowRefs, ColumnSpec: colSpec})
	} else {
		numbers := p.assignEquationNumbers(policy, metas)
		node = p.arena.Push(Node{Kind: NodeEquationArray, Children: rowRefs, ColumnSpec: colSpec, EquationNumbers: numbers})
	}

	if open, close, ok := kind.Delimiters(); ok {
		return p.arena.Push(Node{Kind: NodeFenced, Char: open, CloseChar: close, Child: node, Stretchy: StretchyAlways}), nil
	}
	return node, nil
}

func (p *parser) popEnv() {
	p.envStack = p.envStack[:len(p.envStack)-1]
}

// assignEquationNumbers runs the single numbering post-pass over a
// closed environment's rows: NumberEveryRow numbers every row unless
// \notag/\nonumber suppressed it or \tag{N} set an explicit literal;
// NumberLastRowOnly (multline) only numbers the final row.
//
// A \tag recorded inside an environment whose policy is NumberNone
// (e.g. aligned) is accepted and simply has no effect, since such
// environments are meant to be embedded inside an already-numbered
// outer environment whose numbers are the ones that matter.
func (p *parser) assignEquationNumbers(policy NumberingPolicy, metas []rowMeta) []int {
	numbers := make([]int, len(metas))
	switch policy {
	case NumberEveryRow:
		for i, m := range metas {
			numbers[i] = p.numberForRow(m)
		}
	case NumberLastRowOnly:
		if len(metas) > 0 {
			last := len(metas) - 1
			numbers[last] = p.numberForRow(metas[last])
		}
	}
	return numbers
}

func (p *parser) numberForRow(m rowMeta) int {
	if m.tag > 0 {
		return m.tag
	}
	if m.suppressed {
		return 0
	}
	return p.nextEquationNumber()
}

// nextEquationNumber advances whichever counter (global or local) this
// conversion call is using. Both only ever increment.
func (p *parser) nextEquationNumber() int {
	if p.globalCounter != nil {
		*p.globalCounter++
		return *p.globalCounter
	}
	p.localCounter++
	return p.localCounter
}

// readBracedName reads a {name} argument verbatim (environment names,
// including the trailing '*' of align*/gather*/equation*).
func (p *parser) readBracedName(around TokLoc) (string, *Error) {
	open := p.buf.Peek(0)
	if open.Tok.Kind != TokGroupBegin {
		return "", newError(ErrExpectedArgumentGotClose, spanOf(open.Start, open.End))
	}
	p.buf.Next()
	toks, err := p.readGroupTokens(spanOf(open.Start, open.End))
	if err != nil {
		return "", err
	}
	if len(toks) == 0 {
		return "", nil
	}
	// Slice the name straight out of the source so characters the
	// lexer normalizes (e.g. the trailing '*' of align*) come through
	// verbatim.
	return p.source[toks[0].Start:toks[len(toks)-1].End], nil
}

// readColumnSpecArgument reads \begin{array}'s {|l||cr:c|}-style
// column specification argument.
func (p *parser) readColumnSpecArgument() (ArraySpec, *Error) {
	open := p.buf.Peek(0)
	if open.Tok.Kind != TokGroupBegin {
		return ArraySpec{}, newError(ErrExpectedColSpec, spanOf(open.Start, open.End))
	}
	p.buf.Next()
	toks, err := p.readGroupTokens(spanOf(open.Start, open.End))
	if err != nil {
		return ArraySpec{}, err
	}
	spec, ok := parseColumnSpecification(rawTokenText(toks))
	if !ok {
		return ArraySpec{}, newError(ErrExpectedColSpec, spanOf(open.Start, open.End))
	}
	return spec, nil
}
