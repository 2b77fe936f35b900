package mathcore

// EnvKind enumerates every `\begin{...}` environment this parser
// understands: the matrix family, array/subarray, cases, and the
// display-equation family with its numbering variants.
type EnvKind uint8

const (
	EnvArray EnvKind = iota
	EnvSubarray
	EnvMatrix
	EnvPMatrix
	EnvBMatrix
	EnvBraceMatrix
	EnvVMatrix
	EnvDoubleVMatrix
	EnvCases
	EnvAlign
	EnvAlignStar
	EnvAligned
	EnvGather
	EnvGatherStar
	EnvGathered
	EnvEquation
	EnvEquationStar
	EnvMultline
)

// envByName drives the name -> kind lookup; all per-kind behavior
// hangs off EnvKind methods, so this one table is the only place a new
// environment needs registering.
var envByName = map[string]EnvKind{
	"array":       EnvArray,
	"subarray":    EnvSubarray,
	"matrix":      EnvMatrix,
	"pmatrix":     EnvPMatrix,
	"bmatrix":     EnvBMatrix,
	"Bmatrix":     EnvBraceMatrix,
	"vmatrix":     EnvVMatrix,
	"Vmatrix":     EnvDoubleVMatrix,
	"cases":       EnvCases,
	"align":       EnvAlign,
	"align*":      EnvAlignStar,
	"aligned":     EnvAligned,
	"gather":      EnvGather,
	"gather*":     EnvGatherStar,
	"gathered":    EnvGathered,
	"equation":    EnvEquation,
	"equation*":   EnvEquationStar,
	"multline":    EnvMultline,
}

func lookupEnv(name string) (EnvKind, bool) {
	k, ok := envByName[name]
	return k, ok
}

// NumberingPolicy decides how numbers get assigned to the rows of a
// closed environment in the post-pass.
type NumberingPolicy uint8

const (
	NumberNone    NumberingPolicy = iota
	NumberEveryRow
	NumberLastRowOnly
)

func (k EnvKind) NumberingPolicy() NumberingPolicy {
	switch k {
	case EnvAlign, EnvGather, EnvEquation:
		return NumberEveryRow
	case EnvMultline:
		return NumberLastRowOnly
	default:
		return NumberNone
	}
}

// AllowsColumns reports whether `&` is a valid column separator inside
// this environment kind. The gather and equation families and multline
// are single-column and reject it.
func (k EnvKind) AllowsColumns() bool {
	switch k {
	case EnvGather, EnvGatherStar, EnvGathered, EnvMultline, EnvEquation, EnvEquationStar:
		return false
	default:
		return true
	}
}

// Delimiters returns the fence characters this matrix-like environment
// wraps its content in, if any.
func (k EnvKind) Delimiters() (open, close rune, ok bool) {
	switch k {
	case EnvPMatrix:
		return '(', ')', true
	case EnvBMatrix:
		return '[', ']', true
	case EnvBraceMatrix:
		return '{', '}', true
	case EnvVMatrix:
		return '|', '|', true
	case EnvDoubleVMatrix:
		return '‖', '‖', true
	case EnvCases:
		return '{', 0, true
	default:
		return 0, 0, false
	}
}

// envState tracks one active `\begin{...}...\end{...}` instance on the
// parser's environment stack.
type envState struct {
	kind   EnvKind
	name   string // as written by the user, for the MismatchedEnvironment error
	state  envCellState
	column int
	row    int
	// rowSuppressed records \notag/\nonumber applied to the row
	// currently being parsed.
	rowSuppressed bool
	// rowTag records an explicit \tag{N} for the row currently being
	// parsed; 0 means "no explicit tag".
	rowTag int
}

// envCellState is the per-instance cell/row state machine.
type envCellState uint8

const (
	StateExpectFirstCell envCellState = iota
	StateInCell
	StateAfterColumnSep
	StateAfterRowSep
	StateAwaitingEnd
)
