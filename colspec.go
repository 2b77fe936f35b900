package mathcore

// ColumnAlignment is the horizontal alignment of an array/table
// column.
type ColumnAlignment uint8

const (
	AlignLeft ColumnAlignment = iota
	AlignCenter
	AlignRight
)

// LineType is the vertical rule drawn next to a column.
type LineType uint8

const (
	LineNone LineType = iota
	LineSolid
	LineDashed
)

// ColumnSpec is one entry of a parsed array column specification:
// either a content-bearing column (with alignment and an optional
// trailing line) or a standalone line with no content.
type ColumnSpec struct {
	HasContent bool
	Alignment  ColumnAlignment
	Line       LineType // valid when HasContent, or always the line itself when !HasContent
}

// ArraySpec is the fully parsed column specification for \begin{array}.
type ArraySpec struct {
	BeginningLine LineType // LineNone if the spec doesn't start with | or :
	Columns       []ColumnSpec
}

// parseColumnSpecification parses a string like "|l||cr:c|" into an
// ArraySpec: a byte-by-byte scan (the grammar is ASCII-only, so
// working on bytes is safe), where 'l'/'c'/'r' start a new content
// column and '|'/':' attach a line to the preceding content column, or
// become the leading line, or stack as a standalone line. Whitespace
// is skipped. Any other byte, or a spec with no content column, fails.
func parseColumnSpecification(s string) (ArraySpec, bool) {
	var spec ArraySpec
	hasContentColumn := false
	haveBeginningLine := false

	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch ch {
		case 'l', 'c', 'r':
			var align ColumnAlignment
			switch ch {
			case 'l':
				align = AlignLeft
			case 'c':
				align = AlignCenter
			case 'r':
				align = AlignRight
			}
			spec.Columns = append(spec.Columns, ColumnSpec{HasContent: true, Alignment: align, Line: LineNone})
			hasContentColumn = true
		case '|', ':':
			lineType := LineSolid
			if ch == ':' {
				lineType = LineDashed
			}
			if n := len(spec.Columns); n > 0 {
				last := &spec.Columns[n-1]
				if last.HasContent && last.Line == LineNone {
					last.Line = lineType
				} else {
					spec.Columns = append(spec.Columns, ColumnSpec{HasContent: false, Line: lineType})
				}
			} else if !haveBeginningLine {
				spec.BeginningLine = lineType
				haveBeginningLine = true
			} else {
				spec.Columns = append(spec.Columns, ColumnSpec{HasContent: false, Line: lineType})
			}
		case ' ', '\t', '\n', '\r':
			// skip whitespace
		default:
			return ArraySpec{}, false
		}
	}

	if len(spec.Columns) == 0 || !hasContentColumn {
		return ArraySpec{}, false
	}
	return spec, true
}

// String re-serializes the spec to its canonical form: no whitespace,
// one character per column or line. Parsing a canonical form and
// re-serializing it yields the identical string.
func (s ArraySpec) String() string {
	var b []byte
	b = appendLine(b, s.BeginningLine)
	for _, col := range s.Columns {
		if col.HasContent {
			switch col.Alignment {
			case AlignLeft:
				b = append(b, 'l')
			case AlignRight:
				b = append(b, 'r')
			default:
				b = append(b, 'c')
			}
			b = appendLine(b, col.Line)
		} else {
			b = appendLine(b, col.Line)
		}
	}
	return string(b)
}

func appendLine(b []byte, line LineType) []byte {
	switch line {
	case LineSolid:
		return append(b, '|')
	case LineDashed:
		return append(b, ':')
	default:
		return b
	}
}
