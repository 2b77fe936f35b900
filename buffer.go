package mathcore

// tokenBuffer is the small FIFO sitting above the lexer: a slice-
// backed deque of pre-fetched tokens supporting category-aware
// look-ahead and the front-insertion macro expansion needs.
type tokenBuffer struct {
	lex *lexer
	// queue holds tokens that have been pulled from the lexer (or
	// pushed to the front by macro expansion) but not yet consumed.
	queue []TokLoc
	// nextNonWS is reset to -1 whenever Next or PushFront changes the
	// head of the queue. No method computes or reads it: the look-ahead
	// methods scan the queue from its head on every call.
	nextNonWS int
}

func newTokenBuffer(source string) *tokenBuffer {
	return &tokenBuffer{lex: newLexer(source), nextNonWS: -1}
}

// setMode switches the underlying lexer's grammar. Only meaningful
// when the queue is empty (mode switches happen at well-defined
// grammar boundaries: entering a macro body, entering text mode).
func (b *tokenBuffer) setMode(m lexMode) {
	b.lex.mode = m
}

func (b *tokenBuffer) mode() lexMode {
	return b.lex.mode
}

// fill ensures at least n tokens are queued, pulling from the lexer as
// needed.
func (b *tokenBuffer) fill(n int) {
	for len(b.queue) < n {
		b.queue = append(b.queue, b.lex.NextToken())
	}
}

// Next consumes and returns the next token.
func (b *tokenBuffer) Next() TokLoc {
	b.fill(1)
	t := b.queue[0]
	b.queue = b.queue[1:]
	b.nextNonWS = -1
	return t
}

// Peek returns (without consuming) the token i positions ahead (0 =
// the very next token).
func (b *tokenBuffer) Peek(i int) TokLoc {
	b.fill(i + 1)
	return b.queue[i]
}

// PeekNextNonWhitespace returns the next token whose kind is not pure
// whitespace, without consuming anything up to it.
func (b *tokenBuffer) PeekNextNonWhitespace() TokLoc {
	idx := 0
	for {
		t := b.Peek(idx)
		if !t.Tok.isWhitespace() || t.Tok.Kind == TokEOF {
			return t
		}
		idx++
	}
}

// PeekNextClassBearing returns the next token that is neither pure
// whitespace nor a spacing token nor the \not modifier: the look-ahead
// the parser needs to see past attribute tokens to the real following
// atom.
func (b *tokenBuffer) PeekNextClassBearing() TokLoc {
	idx := 0
	for {
		t := b.Peek(idx)
		if !t.Tok.isClassNeutral() || t.Tok.Kind == TokEOF {
			return t
		}
		idx++
	}
}

// SkipWhitespace consumes (discards) tokens up to, but not including,
// the next non-whitespace token.
func (b *tokenBuffer) SkipWhitespace() {
	for {
		b.fill(1)
		if !b.queue[0].Tok.isWhitespace() {
			return
		}
		b.queue = b.queue[1:]
	}
}

// PushFront inserts a slice of tokens at the head of the queue, used
// to expand a macro body in place of the macro invocation. nextNonWS
// is reset since the head of the queue has changed.
func (b *tokenBuffer) PushFront(toks []TokLoc) {
	if len(toks) == 0 {
		return
	}
	merged := make([]TokLoc, 0, len(toks)+len(b.queue))
	merged = append(merged, toks...)
	merged = append(merged, b.queue...)
	b.queue = merged
	b.nextNonWS = -1
}

// ReadGroup consumes a balanced {...} group, the opening brace already
// having been taken by the caller, and returns the enclosed tokens
// (not including the braces). Reaching end of input before the
// matching close is an UnclosedGroup error.
func (b *tokenBuffer) ReadGroup(openSpan Span) ([]TokLoc, *Error) {
	var out []TokLoc
	depth := 1
	for {
		t := b.Next()
		switch t.Tok.Kind {
		case TokEOF:
			return nil, newError(ErrUnclosedGroup, spanOf(openSpan.Start, t.Start))
		case TokGroupBegin:
			depth++
			out = append(out, t)
		case TokGroupEnd:
			depth--
			if depth == 0 {
				return out, nil
			}
			out = append(out, t)
		default:
			out = append(out, t)
		}
	}
}
