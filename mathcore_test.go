package mathcore

import (
	"strings"
	"sync"
	"testing"
)

func TestEmptySource(t *testing.T) {
	for _, src := range []string{"", "   ", "\n\t "} {
		ast := mustConvert(t, src)
		root := ast.Arena.Get(ast.Root)
		if root.Kind != NodeRow || len(root.Children) != 0 {
			t.Errorf("%q: got %+v", src, root)
		}
	}
}

func TestUnmatchedCloseAtOffsetZero(t *testing.T) {
	err := convertErr(t, `}`)
	if err.Kind != ErrUnmatchedClose {
		t.Fatalf("got %v", err)
	}
	if err.Span.Start != 0 {
		t.Errorf("span start = %d, want 0", err.Span.Start)
	}
}

func TestUnclosedGroupAtEndOfSource(t *testing.T) {
	err := convertErr(t, `{`)
	if err.Kind != ErrUnclosedGroup {
		t.Fatalf("got %v", err)
	}
}

func TestEndWithoutBegin(t *testing.T) {
	err := convertErr(t, `\end{matrix}`)
	if err.Kind != ErrUnmatchedClose {
		t.Fatalf("got %v", err)
	}
}

func TestDisplayAndFlagsOnResult(t *testing.T) {
	conv := mustNew(t, WithXMLNamespace(true), WithAnnotation(true))
	ast, err := conv.ConvertWithLocalCounter(`x`, DisplayBlock)
	if err != nil {
		t.Fatal(err)
	}
	if ast.Display != DisplayBlock || !ast.XMLNamespace || !ast.Annotation {
		t.Fatalf("got %+v", ast)
	}
	if ast.Source != `x` {
		t.Errorf("source = %q", ast.Source)
	}
}

func TestErrorMessageMentionsOffset(t *testing.T) {
	err := convertErr(t, `ab}`)
	if !strings.Contains(err.Error(), "2") {
		t.Errorf("message %q does not mention byte offset", err.Error())
	}
}

func TestErrorToHTMLInline(t *testing.T) {
	err := convertErr(t, `}`)
	html := err.ToHTML(`}`, DisplayInline, "")
	if !strings.HasPrefix(html, `<span class="math-core-error">`) {
		t.Errorf("got %q", html)
	}
	if !strings.Contains(html, "<code") {
		t.Errorf("got %q", html)
	}
}

func TestErrorToHTMLBlockAndClass(t *testing.T) {
	err := convertErr(t, `}`)
	html := err.ToHTML(`}`, DisplayBlock, "oops")
	if !strings.HasPrefix(html, `<p class="oops">`) {
		t.Errorf("got %q", html)
	}
}

func TestErrorToHTMLEscapesSource(t *testing.T) {
	src := `<script>}`
	err := convertErr(t, src)
	html := err.ToHTML(src, DisplayInline, "")
	if strings.Contains(html, "<script>") {
		t.Errorf("unescaped source in %q", html)
	}
}

func TestConvertOrHTMLError(t *testing.T) {
	conv := mustNew(t)

	snippet, ast := ConvertOrHTMLError(func() (*AST, error) {
		return conv.ConvertWithLocalCounter(`x`, DisplayInline)
	}, `x`, DisplayInline, "")
	if snippet != "" || ast == nil {
		t.Fatalf("success case: snippet=%q ast=%v", snippet, ast)
	}

	snippet, ast = ConvertOrHTMLError(func() (*AST, error) {
		return conv.ConvertWithLocalCounter(`}`, DisplayInline)
	}, `}`, DisplayInline, "")
	if ast != nil || !strings.Contains(snippet, "math-core-error") {
		t.Fatalf("error case: snippet=%q", snippet)
	}
}

func TestConcurrentLocalConversions(t *testing.T) {
	conv := mustNew(t)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if _, err := conv.ConvertWithLocalCounter(`\frac{a}{b} + \sqrt{c}`, DisplayInline); err != nil {
					t.Errorf("convert: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestConcurrentGlobalCounterIsSerialized(t *testing.T) {
	conv := mustNew(t)
	const workers = 4
	const perWorker = 10
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				if _, err := conv.ConvertWithGlobalCounter(`\begin{equation} x \end{equation}`, DisplayBlock); err != nil {
					t.Errorf("convert: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	ast, err := conv.ConvertWithGlobalCounter(`\begin{equation} x \end{equation}`, DisplayBlock)
	if err != nil {
		t.Fatal(err)
	}
	eq := findEquationArray(ast, ast.Root)
	if eq.EquationNumbers[0] != workers*perWorker+1 {
		t.Fatalf("final number = %d, want %d", eq.EquationNumbers[0], workers*perWorker+1)
	}
}

func TestHardLimitOption(t *testing.T) {
	conv := mustNew(t, WithHardLimit(3))
	_, err := conv.ConvertWithLocalCounter(`a+b+c+d+e+f`, DisplayInline)
	lerr, ok := err.(*Error)
	if !ok || lerr.Kind != ErrHardLimitExceeded {
		t.Fatalf("got %v", err)
	}
}

func TestLongInputTerminates(t *testing.T) {
	src := strings.Repeat(`x^2 + `, 2000) + "y"
	if _, err := mustNew(t).ConvertWithLocalCounter(src, DisplayInline); err != nil {
		t.Fatalf("long input: %v", err)
	}
}
