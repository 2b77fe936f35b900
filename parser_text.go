package mathcore

import "golang.org/x/text/unicode/norm"

// textStyleFrame records one entry on the text-mode sub-parser's
// explicit style stack: the brace-nesting depth at which it was
// pushed, and the style in effect until a closing brace returns the
// depth back to that level.
type textStyleFrame struct {
	braceDepth int
	style      MathVariant
}

// textModeVariant maps a \text-family command name to the MathVariant
// its content should render in. \textit renders in the default
// (italic) style MathML already gives unstyled letters, so it carries
// no Transform; every other named style is upright.
func textModeVariant(name string) MathVariant {
	switch name {
	case "textbf":
		return MathVariant{Transform: TransformBold, Upright: true}
	case "texttt":
		return MathVariant{Transform: TransformMonospace, Upright: true}
	case "textsf":
		return MathVariant{Transform: TransformSansSerif, Upright: true}
	case "textit":
		return MathVariant{}
	default: // text, textrm, textnormal, textsc
		return MathVariant{Upright: true}
	}
}

// parseTextMode is the text-mode sub-parser: entered by \text{...}
// and its \textXX siblings, it switches the lexer to the text-mode
// grammar (whitespace preserved as tokens, accent commands recognized
// directly) and consumes tokens until the brace that opened the
// excursion is closed, building a Row of TextRun nodes. styleName is
// the command that opened the excursion.
func (p *parser) parseTextMode(t TokLoc, styleName string) (NodeRef, *Error) {
	open := p.buf.Peek(0)
	if open.Tok.Kind != TokGroupBegin {
		return noRef, newError(ErrExpectedText, spanOf(open.Start, open.End)).withWhere(`\` + styleName)
	}
	prevMode := p.buf.mode()
	p.buf.setMode(lexText)
	p.buf.Next() // consume the opening brace

	depth := 1
	stack := []textStyleFrame{{braceDepth: 1, style: textModeVariant(styleName)}}
	curStyle := stack[0].style

	var children []NodeRef
	var buf []rune

	flush := func() {
		if len(buf) == 0 {
			return
		}
		children = append(children, p.arena.Push(Node{Kind: NodeTextRun, Str: p.arena.AllocString(string(buf)), Variant: curStyle}))
		buf = buf[:0]
	}

	for {
		tl := p.buf.Next()
		switch tl.Tok.Kind {
		case TokEOF:
			return noRef, newError(ErrUnclosedGroup, spanOf(t.Start, tl.End))

		case TokGroupBegin:
			depth++

		case TokGroupEnd:
			depth--
			if stack[len(stack)-1].braceDepth == depth+1 {
				flush()
				stack = stack[:len(stack)-1]
				if len(stack) == 0 {
					p.buf.setMode(prevMode)
					return p.arena.Push(Node{Kind: NodeRow, Children: mergeAdjacentTextRuns(p.arena, children)}), nil
				}
				curStyle = stack[len(stack)-1].style
			}

		case TokTextStyle:
			nextOpen := p.buf.Peek(0)
			if nextOpen.Tok.Kind != TokGroupBegin {
				return noRef, newError(ErrExpectedArgumentGotClose, spanOf(nextOpen.Start, nextOpen.End))
			}
			p.buf.Next()
			depth++
			flush()
			curStyle = textModeVariant(tl.Tok.Str)
			stack = append(stack, textStyleFrame{braceDepth: depth, style: curStyle})

		case TokWhitespace:
			buf = append(buf, ' ')

		case TokNonBreakingSpace:
			buf = append(buf, nonBreakingSpaceRune)

		case TokTextModeAccent:
			composed := norm.NFC.String(string(tl.Tok.Char) + string(rune(tl.Tok.Int)))
			buf = append(buf, []rune(composed)...)

		case TokOrd:
			buf = append(buf, tl.Tok.Char)

		default:
			return noRef, newError(ErrNotValidInTextMode, spanOf(tl.Start, tl.End))
		}
	}
}
