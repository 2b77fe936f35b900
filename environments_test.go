package mathcore

import (
	"testing"
)

func convertBlock(t *testing.T, conv *Converter, src string) *AST {
	t.Helper()
	ast, err := conv.ConvertWithGlobalCounter(src, DisplayBlock)
	if err != nil {
		t.Fatalf("convert %q: %v", src, err)
	}
	return ast
}

// findEquationArray walks the tree for the first EquationArray node.
func findEquationArray(ast *AST, ref NodeRef) *Node {
	return findEquationArrayVisited(ast, ref, map[NodeRef]bool{})
}

func findEquationArrayVisited(ast *AST, ref NodeRef, visited map[NodeRef]bool) *Node {
	if ref == noRef || visited[ref] {
		return nil
	}
	visited[ref] = true
	n := ast.Arena.Get(ref)
	if n == nil {
		return nil
	}
	if n.Kind == NodeEquationArray {
		return n
	}
	for _, c := range []NodeRef{n.Child, n.Second, n.Third} {
		if found := findEquationArrayVisited(ast, c, visited); found != nil {
			return found
		}
	}
	for _, c := range n.Children {
		if found := findEquationArrayVisited(ast, c, visited); found != nil {
			return found
		}
	}
	return nil
}

func TestAlignNumbersRows(t *testing.T) {
	conv := mustNew(t)
	ast := convertBlock(t, conv, `\begin{align} x &= 1 \\ y &= 2 \end{align}`)
	eq := findEquationArray(ast, ast.Root)
	if eq == nil {
		t.Fatal("no equation array in result")
	}
	if len(eq.Children) != 2 {
		t.Fatalf("rows = %d, want 2", len(eq.Children))
	}
	if len(eq.EquationNumbers) != 2 || eq.EquationNumbers[0] != 1 || eq.EquationNumbers[1] != 2 {
		t.Fatalf("numbers = %v, want [1 2]", eq.EquationNumbers)
	}

	// Each row of an align has one cell per & plus one.
	row := ast.Arena.Get(eq.Children[0])
	if len(row.Children) != 2 {
		t.Fatalf("cells = %d, want 2", len(row.Children))
	}
}

func TestGlobalCounterPersistsAcrossCalls(t *testing.T) {
	conv := mustNew(t)
	convertBlock(t, conv, `\begin{align} x &= 1 \\ y &= 2 \end{align}`)
	ast := convertBlock(t, conv, `\begin{gather} z = 3 \end{gather}`)
	eq := findEquationArray(ast, ast.Root)
	if eq.EquationNumbers[0] != 3 {
		t.Fatalf("numbers = %v, want [3]", eq.EquationNumbers)
	}
}

func TestResetGlobalCounter(t *testing.T) {
	conv := mustNew(t)
	convertBlock(t, conv, `\begin{equation} x \end{equation}`)
	conv.ResetGlobalCounter()
	ast := convertBlock(t, conv, `\begin{equation} y \end{equation}`)
	eq := findEquationArray(ast, ast.Root)
	if eq.EquationNumbers[0] != 1 {
		t.Fatalf("numbers = %v, want [1]", eq.EquationNumbers)
	}
}

func TestLocalCounterIsStateless(t *testing.T) {
	conv := mustNew(t)
	for i := 0; i < 3; i++ {
		ast, err := conv.ConvertWithLocalCounter(`\begin{align} x &= 1 \end{align}`, DisplayBlock)
		if err != nil {
			t.Fatal(err)
		}
		eq := findEquationArray(ast, ast.Root)
		if eq.EquationNumbers[0] != 1 {
			t.Fatalf("call %d: numbers = %v, want [1]", i, eq.EquationNumbers)
		}
	}
}

func TestStarredVariantsDoNotNumber(t *testing.T) {
	for _, src := range []string{
		`\begin{align*} x &= 1 \end{align*}`,
		`\begin{gather*} x = 1 \end{gather*}`,
		`\begin{aligned} x &= 1 \end{aligned}`,
	} {
		ast := mustConvert(t, src)
		if eq := findEquationArray(ast, ast.Root); eq != nil {
			t.Errorf("%s: got numbered equation array", src)
		}
	}
}

func TestMultlineNumbersLastRowOnly(t *testing.T) {
	conv := mustNew(t)
	ast := convertBlock(t, conv, `\begin{multline} a \\ b \\ c \end{multline}`)
	eq := findEquationArray(ast, ast.Root)
	want := []int{0, 0, 1}
	if len(eq.EquationNumbers) != 3 {
		t.Fatalf("numbers = %v", eq.EquationNumbers)
	}
	for i := range want {
		if eq.EquationNumbers[i] != want[i] {
			t.Fatalf("numbers = %v, want %v", eq.EquationNumbers, want)
		}
	}
}

func TestNotagSuppressesRow(t *testing.T) {
	conv := mustNew(t)
	ast := convertBlock(t, conv, `\begin{align} x \notag \\ y \end{align}`)
	eq := findEquationArray(ast, ast.Root)
	if eq.EquationNumbers[0] != 0 || eq.EquationNumbers[1] != 1 {
		t.Fatalf("numbers = %v, want [0 1]", eq.EquationNumbers)
	}
}

func TestTagSetsLiteralNumber(t *testing.T) {
	conv := mustNew(t)
	ast := convertBlock(t, conv, `\begin{align} x \tag{5} \\ y \end{align}`)
	eq := findEquationArray(ast, ast.Root)
	if eq.EquationNumbers[0] != 5 {
		t.Fatalf("numbers = %v, want [5 ...]", eq.EquationNumbers)
	}
}

func TestTagZeroAndEmptyRejected(t *testing.T) {
	for _, src := range []string{
		`\begin{align} x \tag{0} \end{align}`,
		`\begin{align} x \tag{} \end{align}`,
	} {
		err := convertErr(t, src)
		if err.Kind != ErrExpectedNumber {
			t.Errorf("%s: got %v", src, err)
		}
	}
}

func TestTagOutsideEnvironment(t *testing.T) {
	err := convertErr(t, `x \tag{1}`)
	if err.Kind != ErrCannotBeUsedHere {
		t.Fatalf("got %v", err)
	}
}

func TestMismatchedEnvironment(t *testing.T) {
	err := convertErr(t, `\begin{matrix} 1 \end{bmatrix}`)
	if err.Kind != ErrMismatchedEnvironment {
		t.Fatalf("got %v", err)
	}
	if err.Expected != "matrix" || err.Got != "bmatrix" {
		t.Fatalf("expected/got = %q/%q", err.Expected, err.Got)
	}
}

func TestUnknownEnvironment(t *testing.T) {
	err := convertErr(t, `\begin{frobnitz} x \end{frobnitz}`)
	if err.Kind != ErrUnknownEnvironment || err.What != "frobnitz" {
		t.Fatalf("got %v", err)
	}
}

func TestGatherRejectsColumnSeparator(t *testing.T) {
	err := convertErr(t, `\begin{gather} a & b \end{gather}`)
	if err.Kind != ErrCannotBeUsedHere {
		t.Fatalf("got %v", err)
	}
}

func TestAmpersandOutsideTable(t *testing.T) {
	err := convertErr(t, `a & b`)
	if err.Kind != ErrCannotBeUsedHere {
		t.Fatalf("got %v", err)
	}
}

func TestMatrixDelimiters(t *testing.T) {
	cases := map[string][2]rune{
		"pmatrix": {'(', ')'},
		"bmatrix": {'[', ']'},
		"Bmatrix": {'{', '}'},
		"vmatrix": {'|', '|'},
		"Vmatrix": {'‖', '‖'},
	}
	for env, want := range cases {
		ast := mustConvert(t, `\begin{`+env+`} 1 \end{`+env+`}`)
		n := onlyChild(t, ast)
		if n.Kind != NodeFenced || n.Char != want[0] || n.CloseChar != want[1] {
			t.Errorf("%s: got %+v", env, n)
		}
	}
}

func TestPlainMatrixHasNoDelimiters(t *testing.T) {
	ast := mustConvert(t, `\begin{matrix} 1 & 2 \\ 3 & 4 \end{matrix}`)
	n := onlyChild(t, ast)
	if n.Kind != NodeTable {
		t.Fatalf("got %d, want table", n.Kind)
	}
	if len(n.Children) != 2 {
		t.Fatalf("rows = %d", len(n.Children))
	}
}

func TestArrayColumnSpec(t *testing.T) {
	ast := mustConvert(t, `\begin{array}{|lc|} a & b \end{array}`)
	n := onlyChild(t, ast)
	if n.Kind != NodeTable {
		t.Fatalf("got %d", n.Kind)
	}
	spec := n.ColumnSpec
	if spec.BeginningLine != LineSolid || len(spec.Columns) != 2 {
		t.Fatalf("spec = %+v", spec)
	}
}

func TestArrayBadColumnSpec(t *testing.T) {
	err := convertErr(t, `\begin{array}{xyz} a \end{array}`)
	if err.Kind != ErrExpectedColSpec {
		t.Fatalf("got %v", err)
	}
}

func TestUnclosedEnvironment(t *testing.T) {
	err := convertErr(t, `\begin{matrix} 1`)
	if err.Kind != ErrUnclosedGroup {
		t.Fatalf("got %v", err)
	}
}

func TestCasesEnvironment(t *testing.T) {
	ast := mustConvert(t, `\begin{cases} x & x > 0 \\ -x & x \leq 0 \end{cases}`)
	n := onlyChild(t, ast)
	if n.Kind != NodeFenced || n.Char != '{' || n.CloseChar != 0 {
		t.Fatalf("got %+v", n)
	}
}
