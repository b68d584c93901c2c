package nprintf

// field is a rendered conversion waiting for its padding: an optional sign,
// a radix prefix, leading zeros, the body and trailing zeros, in output
// order.
type field struct {
	sign   byte
	prefix string
	lead   int
	body   []byte
	trail  int
	zero   bool // width may be filled with zeros
}

func (f *field) len() int {
	n := len(f.prefix) + f.lead + len(f.body) + f.trail
	if f.sign != 0 {
		n++
	}
	return n
}

// emit writes f padded to width. Left justification wins over zero
// filling; zero filling goes between the sign/prefix and the digits.
func (f *field) emit(s *sink, width int, left bool) {
	pad := width - f.len()
	if pad < 0 {
		pad = 0
	}
	lead := f.lead
	switch {
	case left:
	case f.zero:
		lead += pad
		pad = 0
	default:
		s.fill(' ', pad)
		pad = 0
	}
	if f.sign != 0 {
		s.putc(f.sign)
	}
	s.puts(f.prefix)
	s.fill('0', lead)
	s.put(f.body)
	s.fill('0', f.trail)
	s.fill(' ', pad)
}

// emitText writes text space padded to width.
func emitText(s *sink, text string, width int, left bool) {
	pad := width - len(text)
	if !left {
		s.fill(' ', pad)
	}
	s.puts(text)
	if left {
		s.fill(' ', pad)
	}
}
