package mathcore

import "testing"

func TestBufferNextAndPeek(t *testing.T) {
	b := newTokenBuffer("x+y")
	if got := b.Peek(0); got.Tok.Char != 'x' {
		t.Fatalf("peek 0: got %+v", got.Tok)
	}
	if got := b.Peek(1); got.Tok.Char != '+' {
		t.Fatalf("peek 1: got %+v", got.Tok)
	}
	// Peeking must not consume.
	if got := b.Next(); got.Tok.Char != 'x' {
		t.Fatalf("next: got %+v", got.Tok)
	}
	if got := b.Next(); got.Tok.Char != '+' {
		t.Fatalf("next: got %+v", got.Tok)
	}
}

func TestBufferPeekNextNonWhitespace(t *testing.T) {
	b := newTokenBuffer("y")
	ws := TokLoc{Tok: Token{Kind: TokWhitespace}}
	b.PushFront([]TokLoc{ws, ws, {Tok: Token{Kind: TokLetter, Char: 'x'}}})
	if got := b.PeekNextNonWhitespace(); got.Tok.Char != 'x' {
		t.Fatalf("got %+v", got.Tok)
	}
	// The whitespace tokens are still there for a plain Next.
	if got := b.Next(); got.Tok.Kind != TokWhitespace {
		t.Fatalf("got %+v", got.Tok)
	}
}

func TestBufferPeekNextClassBearing(t *testing.T) {
	b := newTokenBuffer("")
	b.PushFront([]TokLoc{
		{Tok: Token{Kind: TokNot}},
		{Tok: Token{Kind: TokSpace}},
		{Tok: Token{Kind: TokRelation, Char: '='}},
	})
	if got := b.PeekNextClassBearing(); got.Tok.Char != '=' {
		t.Fatalf("got %+v", got.Tok)
	}
}

func TestBufferPushFrontExpandsInPlace(t *testing.T) {
	b := newTokenBuffer("z")
	b.PushFront([]TokLoc{
		{Tok: Token{Kind: TokLetter, Char: 'a'}},
		{Tok: Token{Kind: TokLetter, Char: 'b'}},
	})
	var got []rune
	for {
		tok := b.Next()
		if tok.Tok.Kind == TokEOF {
			break
		}
		got = append(got, tok.Tok.Char)
	}
	if string(got) != "abz" {
		t.Fatalf("got %q", string(got))
	}
}

func TestBufferReadGroup(t *testing.T) {
	b := newTokenBuffer("a{b{c}d}e")
	b.Next() // a
	b.Next() // {
	toks, err := b.ReadGroup(Span{1, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Nested braces belong to the inner group and are preserved.
	if len(toks) != 5 {
		t.Fatalf("got %d tokens: %v", len(toks), toks)
	}
	if got := b.Next(); got.Tok.Char != 'e' {
		t.Fatalf("after group: got %+v", got.Tok)
	}
}

func TestBufferReadGroupUnclosed(t *testing.T) {
	b := newTokenBuffer("{ab")
	b.Next() // {
	_, err := b.ReadGroup(Span{0, 1})
	if err == nil || err.Kind != ErrUnclosedGroup {
		t.Fatalf("expected UnclosedGroup, got %v", err)
	}
}

func TestBufferSkipWhitespace(t *testing.T) {
	b := newTokenBuffer("x")
	b.PushFront([]TokLoc{
		{Tok: Token{Kind: TokWhitespace}},
		{Tok: Token{Kind: TokWhitespace}},
	})
	b.SkipWhitespace()
	if got := b.Next(); got.Tok.Char != 'x' {
		t.Fatalf("got %+v", got.Tok)
	}
}
