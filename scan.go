package nprintf

import "iter"

// Flags is the set of flag characters of a conversion.
type Flags uint8

const (
	FlagLeft  Flags = 1 << iota // '-'
	FlagPlus                    // '+'
	FlagSpace                   // ' '
	FlagAlt                     // '#'
	FlagZero                    // '0'
)

// Has reports whether every flag in f2 is set in f.
func (f Flags) Has(f2 Flags) bool { return f&f2 == f2 }

// String returns the flag characters of f in the order "-+ #0".
func (f Flags) String() string {
	var b []byte
	for i, c := range []byte("-+ #0") {
		if f.Has(1 << i) {
			b = append(b, c)
		}
	}
	return string(b)
}

// Bound says where a width or precision comes from.
type Bound uint8

const (
	BoundNone    Bound = iota // not given
	BoundLiteral              // digits in the format string
	BoundArg                  // '*', taken from the next argument
)

// Length is a length modifier. It selects the integer width an argument is
// read at.
type Length uint8

const (
	LengthNone     Length = iota // 32-bit int
	LengthChar                   // hh, 8-bit
	LengthShort                  // h, 16-bit
	LengthLong                   // l, 64-bit
	LengthLongLong               // ll, 64-bit
	LengthMax                    // j, 64-bit
	LengthSize                   // z, 64-bit
	LengthPtrdiff                // t, 64-bit
)

var lengthNames = [...]string{"", "hh", "h", "l", "ll", "j", "z", "t"}

// String returns the modifier as written in a format string.
func (l Length) String() string {
	if int(l) < len(lengthNames) {
		return lengthNames[l]
	}
	return "?"
}

// Kind is the conversion a specification performs.
type Kind uint8

const (
	KindUnknown    Kind = iota
	KindSigned          // d, i
	KindUnsigned        // u
	KindOctal           // o
	KindHexLower        // x
	KindHexUpper        // X
	KindBinary          // b
	KindFloat           // f
	KindFloatUpper      // F
	KindChar            // c
	KindString          // s
	KindPointer         // p
	KindPercent         // %
	KindWriteback       // n
)

var kindNames = [...]string{
	"unknown", "signed", "unsigned", "octal", "hex", "HEX", "binary",
	"float", "FLOAT", "char", "string", "pointer", "percent", "writeback",
}

// String returns a short name for the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "?"
}

func (k Kind) integer() bool { return k >= KindSigned && k <= KindBinary }

// Spec is one parsed conversion specification.
type Spec struct {
	Flags     Flags
	WidthFrom Bound
	Width     int
	PrecFrom  Bound
	Prec      int
	Length    Length
	Kind      Kind
	Verb      byte
}

// Token is one element of a scanned format string: a run of literal text
// or a conversion. Text is always a substring of the format.
type Token struct {
	Text string
	Conv bool
	Spec Spec
}

// maxBound caps literal widths and precisions so digit runs cannot
// overflow.
const maxBound = 1<<31 - 1

// Tokens returns the tokens of format in order. Concatenating the Text of
// every token reproduces format.
func (p Printer) Tokens(format string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for i := 0; i < len(format); {
			tok, next := p.scan(format, i)
			i = next
			if !yield(tok) {
				return
			}
		}
	}
}

// scan reads the token starting at format[i] and returns it with the index
// just past it.
func (p Printer) scan(format string, i int) (Token, int) {
	if format[i] != '%' {
		j := i + 1
		for j < len(format) && format[j] != '%' {
			j++
		}
		return Token{Text: format[i:j]}, j
	}
	spec, j, ok := p.scanSpec(format, i+1)
	if !ok {
		// Unrecognised: the '%' is literal and scanning resumes right after
		// it, so the rest of the attempted match is copied too.
		return Token{Text: format[i : i+1]}, i + 1
	}
	return Token{Text: format[i:j], Conv: true, Spec: spec}, j
}

// scanSpec parses the specification following a '%' at format[j-1].
func (p Printer) scanSpec(format string, j int) (Spec, int, bool) {
	var spec Spec
	feat := p.features
	n := len(format)

	// Flags.
flags:
	for ; j < n; j++ {
		switch format[j] {
		case '-':
			if !feat.FieldWidth {
				break flags
			}
			spec.Flags |= FlagLeft
		case '0':
			if !feat.FieldWidth {
				break flags
			}
			spec.Flags |= FlagZero
		case '+':
			spec.Flags |= FlagPlus
		case ' ':
			spec.Flags |= FlagSpace
		case '#':
			spec.Flags |= FlagAlt
		default:
			break flags
		}
	}

	// Width.
	if feat.FieldWidth && j < n {
		if format[j] == '*' {
			spec.WidthFrom = BoundArg
			j++
		} else if isDigit(format[j]) {
			spec.WidthFrom = BoundLiteral
			spec.Width, j = scanDigits(format, j)
		}
	}

	// Precision. A bare '.' means zero.
	if feat.Precision && j < n && format[j] == '.' {
		j++
		spec.PrecFrom = BoundLiteral
		if j < n && format[j] == '*' {
			spec.PrecFrom = BoundArg
			j++
		} else {
			spec.Prec, j = scanDigits(format, j)
		}
	}

	// Length modifier.
	if j < n {
		switch format[j] {
		case 'h':
			spec.Length = LengthShort
			j++
			if j < n && format[j] == 'h' {
				spec.Length = LengthChar
				j++
			}
		case 'l':
			spec.Length = LengthLong
			j++
			if feat.Large && j < n && format[j] == 'l' {
				spec.Length = LengthLongLong
				j++
			}
		case 'j':
			if feat.Large {
				spec.Length = LengthMax
				j++
			}
		case 'z':
			if feat.Large {
				spec.Length = LengthSize
				j++
			}
		case 't':
			if feat.Large {
				spec.Length = LengthPtrdiff
				j++
			}
		}
	}

	if j >= n {
		return spec, j, false
	}
	spec.Verb = format[j]
	spec.Kind = p.kindOf(spec.Verb)
	if spec.Kind == KindUnknown {
		return spec, j, false
	}
	return spec, j + 1, true
}

func (p Printer) kindOf(verb byte) Kind {
	switch verb {
	case 'd', 'i':
		return KindSigned
	case 'u':
		return KindUnsigned
	case 'o':
		return KindOctal
	case 'x':
		return KindHexLower
	case 'X':
		return KindHexUpper
	case 'c':
		return KindChar
	case 's':
		return KindString
	case 'p':
		return KindPointer
	case '%':
		return KindPercent
	case 'b':
		if p.features.Binary {
			return KindBinary
		}
	case 'f':
		if p.features.Float {
			return KindFloat
		}
	case 'F':
		if p.features.Float {
			return KindFloatUpper
		}
	case 'n':
		if p.features.Writeback {
			return KindWriteback
		}
	}
	return KindUnknown
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// scanDigits reads a run of decimal digits, saturating at maxBound.
func scanDigits(format string, j int) (int, int) {
	v := 0
	for ; j < len(format) && isDigit(format[j]); j++ {
		if v > (maxBound-9)/10 {
			v = maxBound
			continue
		}
		v = v*10 + int(format[j]-'0')
	}
	return v, j
}
