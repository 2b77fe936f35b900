package mathcore

import (
	"testing"

	. "gopkg.in/check.v1"
)

// Hook up gocheck into the "go test" runner.

func TestIssues(t *testing.T) { TestingT(t) }

type IssueTestSuite struct {
	conv *Converter
}

var _ = Suite(&IssueTestSuite{})

func (s *IssueTestSuite) SetUpSuite(c *C) {
	conv, err := New()
	c.Assert(err, IsNil)
	s.conv = conv
}

func (s *IssueTestSuite) errFor(c *C, src string) *Error {
	_, err := s.conv.ConvertWithLocalCounter(src, DisplayInline)
	c.Assert(err, NotNil)
	lerr, ok := err.(*Error)
	c.Assert(ok, Equals, true)
	return lerr
}

func (s *IssueTestSuite) TestEnvironmentNameWithStarRoundTrips(c *C) {
	_, err := s.conv.ConvertWithLocalCounter(`\begin{align*} x &= 1 \end{align*}`, DisplayBlock)
	c.Check(err, IsNil)
}

func (s *IssueTestSuite) TestMismatchedEnvironmentSpanPointsAtEnd(c *C) {
	src := `\begin{matrix} 1 \end{bmatrix}`
	lerr := s.errFor(c, src)
	c.Check(lerr.Kind, Equals, ErrMismatchedEnvironment)
	// The span anchors at the offending \end, not at \begin.
	c.Check(lerr.Span.Start >= 17, Equals, true)
}

func (s *IssueTestSuite) TestNestedEnvironments(c *C) {
	src := `\begin{pmatrix} \begin{matrix} 1 \end{matrix} & 2 \\ 3 & 4 \end{pmatrix}`
	_, err := s.conv.ConvertWithLocalCounter(src, DisplayBlock)
	c.Check(err, IsNil)
}

func (s *IssueTestSuite) TestAlignedInsideEquation(c *C) {
	src := `\begin{equation} \begin{aligned} x &= 1 \\ y &= 2 \end{aligned} \end{equation}`
	ast, err := s.conv.ConvertWithLocalCounter(src, DisplayBlock)
	c.Assert(err, IsNil)
	eq := findEquationArray(ast, ast.Root)
	c.Assert(eq, NotNil)
	// The outer equation contributes the single number; the inner
	// aligned rows stay unnumbered.
	c.Check(len(eq.EquationNumbers), Equals, 1)
	c.Check(eq.EquationNumbers[0], Equals, 1)
}

func (s *IssueTestSuite) TestWhitespaceBetweenScriptMarkerAndArgument(c *C) {
	a, err := s.conv.ConvertWithLocalCounter(`x^ 2`, DisplayInline)
	c.Assert(err, IsNil)
	b, err := s.conv.ConvertWithLocalCounter(`x^2`, DisplayInline)
	c.Assert(err, IsNil)
	c.Check(len(a.Arena.nodes), Equals, len(b.Arena.nodes))
}

func (s *IssueTestSuite) TestDeeplyNestedGroupsTerminate(c *C) {
	src := ""
	for i := 0; i < 200; i++ {
		src += "{"
	}
	src += "x"
	for i := 0; i < 200; i++ {
		src += "}"
	}
	_, err := s.conv.ConvertWithLocalCounter(src, DisplayInline)
	c.Check(err, IsNil)
}

func (s *IssueTestSuite) TestLoneBackslashAtEnd(c *C) {
	lerr := s.errFor(c, `x\`)
	c.Check(lerr.Kind, Equals, ErrUnknownCommand)
}

func (s *IssueTestSuite) TestSqrtWithUnclosedIndex(c *C) {
	lerr := s.errFor(c, `\sqrt[3{x}`)
	c.Check(lerr.Kind, Equals, ErrUnclosedGroup)
}

func (s *IssueTestSuite) TestLeftWithoutRight(c *C) {
	lerr := s.errFor(c, `\left( x`)
	c.Check(lerr.Kind, Equals, ErrUnclosedGroup)
}

func (s *IssueTestSuite) TestRightWithoutLeft(c *C) {
	lerr := s.errFor(c, `x \right)`)
	c.Check(lerr.Kind, Equals, ErrUnmatchedClose)
}

func (s *IssueTestSuite) TestUnicodeSourceErrorSpans(c *C) {
	// The offending token sits after multi-byte codepoints; its span
	// must land on the right bytes.
	src := `αβγ}`
	lerr := s.errFor(c, src)
	c.Check(lerr.Kind, Equals, ErrUnmatchedClose)
	c.Check(lerr.Span.Start, Equals, 6)
	c.Check(lerr.Span.End, Equals, 7)
}

func (s *IssueTestSuite) TestBigDelimiterNeedsDelimiter(c *C) {
	lerr := s.errFor(c, `\big x`)
	c.Check(lerr.Kind, Equals, ErrExpectedDelimiter)
}
