package mathcore

// PrettyPrint controls whether a future emitter would insert newlines
// and indentation when walking the returned AST. The package ships no
// emitter, but parser decisions are allowed to read this frozen flag,
// so it lives on Config.
type PrettyPrint uint8

const (
	PrettyPrintNever PrettyPrint = iota
	PrettyPrintAlways
	PrettyPrintAuto
)

// Display selects the MathML root attribute (inline vs block) and
// certain default styles.
type Display uint8

const (
	DisplayInline Display = iota
	DisplayBlock
)

// Config is the frozen construction-time configuration of a
// Converter, built through functional Options: a mutable builder
// struct that New() fills and then freezes into the runtime object.
type Config struct {
	PrettyPrint           PrettyPrint
	Macros                []MacroSpec
	XMLNamespace          bool
	IgnoreUnknownCommands bool
	Annotation            bool
	// HardLimit caps the parser's monotonically increasing work
	// counter; zero selects defaultHardLimit.
	HardLimit int
}

// Option mutates a Config under construction. New() applies every
// Option to a zero-value Config before freezing it into a Converter.
type Option func(*Config)

func WithPrettyPrint(p PrettyPrint) Option {
	return func(c *Config) { c.PrettyPrint = p }
}

func WithMacros(macros ...MacroSpec) Option {
	return func(c *Config) { c.Macros = append(c.Macros, macros...) }
}

func WithXMLNamespace(v bool) Option {
	return func(c *Config) { c.XMLNamespace = v }
}

func WithIgnoreUnknownCommands(v bool) Option {
	return func(c *Config) { c.IgnoreUnknownCommands = v }
}

func WithAnnotation(v bool) Option {
	return func(c *Config) { c.Annotation = v }
}

func WithHardLimit(n int) Option {
	return func(c *Config) { c.HardLimit = n }
}

const defaultHardLimit = 1_000_000
