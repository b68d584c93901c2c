package nprintf

import "errors"

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidFeatures = errors.New("invalid features")
)

// Printer formats with a fixed set of [Features]. The zero value has every
// feature disabled; use [New] or [Default]. A Printer holds no mutable
// state and is safe for concurrent use.
type Printer struct {
	features Features
}

// Default is the Printer with every feature enabled. It backs the
// package-level functions.
var Default = New(AllFeatures)

// New returns a Printer that accepts the syntax enabled in f.
func New(f Features) Printer {
	return Printer{features: f}
}

// Features returns the feature set the Printer was built with.
func (p Printer) Features() Features { return p.features }

// Snprintf formats args according to format into dst. At most len(dst)-1
// bytes of output are stored, always followed by a NUL byte when dst is
// not empty. It returns the length of the complete output, which exceeds
// len(dst)-1 when the output was truncated.
func (p Printer) Snprintf(dst []byte, format string, args ...Arg) int {
	c := NewCursor(args...)
	return p.Vsnprintf(dst, format, &c)
}

// Vsnprintf is like Snprintf but takes its arguments from c. Arguments the
// format consumes are gone from c afterwards.
func (p Printer) Vsnprintf(dst []byte, format string, c *Cursor) int {
	s := sink{dst: dst}
	p.run(&s, format, c)
	s.finish()
	return s.total
}

// run walks format once, copying literal text and rendering each
// conversion as it is reached.
func (p Printer) run(s *sink, format string, c *Cursor) {
	for i := 0; i < len(format); {
		tok, next := p.scan(format, i)
		i = next
		if !tok.Conv {
			s.puts(tok.Text)
			continue
		}
		p.convert(s, tok.Spec, c)
	}
}

// Snprintf formats with [Default]. See [Printer.Snprintf].
func Snprintf(dst []byte, format string, args ...Arg) int {
	return Default.Snprintf(dst, format, args...)
}

// Vsnprintf formats with [Default]. See [Printer.Vsnprintf].
func Vsnprintf(dst []byte, format string, c *Cursor) int {
	return Default.Vsnprintf(dst, format, c)
}
