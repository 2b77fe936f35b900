package mathcore

import (
	"sync"

	"github.com/juju/errors"
	"github.com/juju/loggo"
)

// logger is the package-level named logger. Leveled and named so a
// host application can turn up mathcore's diagnostics without touching
// its own logging configuration.
var logger = loggo.GetLogger("mathcore")

// Converter is the frozen entry point of the package: a macro registry
// built once from Config.Macros plus the predefined command table, and
// a global equation counter shared by every ConvertWithGlobalCounter
// call made on this instance. Configuration cannot be mutated after
// construction; only the global counter changes on later calls.
type Converter struct {
	cfg      Config
	registry *macroRegistry

	// counterMu guards globalCounter. ConvertWithGlobalCounter and
	// ResetGlobalCounter take the writer lock; ConvertWithLocalCounter
	// never touches globalCounter (it uses its own stack-local counter)
	// and takes the reader lock.
	counterMu     sync.RWMutex
	globalCounter int
}

// New constructs a Converter from the supplied Options, compiling
// every user macro (and the built-in predefined commands) into the
// frozen macro registry. A malformed user macro body surfaces as a
// *macroBodyError carrying (kind, index, offending body); a defect in
// one of this package's own predefined bodies would indicate an
// internal bug and is annotated as such before being returned, keeping
// the two failure classes visibly distinct to a caller reading logs.
func New(opts ...Option) (*Converter, error) {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}

	registry, err := buildMacroRegistry(cfg.Macros)
	if err != nil {
		if _, ok := err.(*macroBodyError); ok {
			return nil, err
		}
		return nil, errors.Annotate(err, "mathcore: constructing macro registry")
	}

	logger.Debugf("converter constructed: %d user macro(s), hard limit %d", len(cfg.Macros), effectiveHardLimit(cfg))
	return &Converter{cfg: cfg, registry: registry}, nil
}

func effectiveHardLimit(cfg Config) int {
	if cfg.HardLimit > 0 {
		return cfg.HardLimit
	}
	return defaultHardLimit
}

// ConvertWithLocalCounter converts source under display, numbering any
// equation environments from a counter that starts at zero and is
// discarded when the call returns. It never touches the instance's
// global counter and holds only the reader lock, so it runs
// concurrently with other local-counter calls and waits only while a
// global-counter call or a reset holds the writer lock. For a fixed
// configuration the result is a pure function of (source, display).
func (c *Converter) ConvertWithLocalCounter(source string, display Display) (*AST, error) {
	c.counterMu.RLock()
	defer c.counterMu.RUnlock()
	return c.convert(source, display, nil)
}

// ConvertWithGlobalCounter converts source under display, numbering
// equation environments starting from the instance's persistent global
// counter and leaving it advanced by however many rows this call
// numbered. Callers sharing one Converter across goroutines can rely
// on this method serializing with other global-counter methods on the
// same instance.
func (c *Converter) ConvertWithGlobalCounter(source string, display Display) (*AST, error) {
	c.counterMu.Lock()
	defer c.counterMu.Unlock()
	return c.convert(source, display, &c.globalCounter)
}

// ResetGlobalCounter sets the instance's global counter back to zero,
// so the next ConvertWithGlobalCounter call numbers its first row 1
// again.
func (c *Converter) ResetGlobalCounter() {
	c.counterMu.Lock()
	defer c.counterMu.Unlock()
	c.globalCounter = 0
}

// convert drives one parse: a fresh Arena owning everything this
// conversion allocates, a fresh parser bound to this Converter's
// frozen macro registry and config, and a top-level row parse that
// only stops at end of input.
func (c *Converter) convert(source string, display Display, globalCounter *int) (*AST, error) {
	arena := NewArena()
	p := newParser(source, arena, c.registry, c.cfg, globalCounter)

	children, _, perr := p.parseRow(stopSet{})
	if perr != nil {
		logger.Debugf("conversion failed at byte %d: %s", perr.Span.Start, perr.Kind)
		return nil, perr
	}

	root := arena.Push(Node{Kind: NodeRow, Children: children})

	return &AST{
		Arena:        arena,
		Root:         root,
		Display:      display,
		XMLNamespace: c.cfg.XMLNamespace,
		Annotation:   c.cfg.Annotation,
		Source:       source,
	}, nil
}

// ConvertOrHTMLError runs conv and, on failure, returns the HTML error
// snippet in place of the error, so a document-level caller that wants
// to keep rendering the rest of a page doesn't have to special-case a
// failed fragment. The conversion itself still produces a typed
// *Error internally; this wrapper is purely a boundary policy.
func ConvertOrHTMLError(conv func() (*AST, error), source string, display Display, cssClass string) (string, *AST) {
	ast, err := conv()
	if err == nil {
		return "", ast
	}
	lerr, ok := err.(*Error)
	if !ok {
		lerr = newError(ErrInternal, Span{})
	}
	return lerr.ToHTML(source, display, cssClass), nil
}
