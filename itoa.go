package nprintf

const (
	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"
)

// scratch holds the digits of one rendered number. 64 bytes fit a 64-bit
// value in base 2 and a float's integer part, point and fraction.
type scratch [64]byte

// formatUint writes the digits of v in base to the tail of buf, most
// significant first, and returns them.
func formatUint(buf *scratch, v uint64, base uint64, upper bool) []byte {
	alphabet := lowerDigits
	if upper {
		alphabet = upperDigits
	}
	i := len(buf)
	for {
		i--
		buf[i] = alphabet[v%base]
		v /= base
		if v == 0 {
			break
		}
	}
	return buf[i:]
}

// signOf returns the sign character for a signed conversion, or 0.
func signOf(neg bool, flags Flags) byte {
	switch {
	case neg:
		return '-'
	case flags.Has(FlagPlus):
		return '+'
	case flags.Has(FlagSpace):
		return ' '
	}
	return 0
}

// intField renders an integer conversion. spec must have its width and
// precision resolved.
func intField(buf *scratch, spec Spec, neg bool, mag uint64) field {
	var f field

	base, upper := uint64(10), false
	switch spec.Kind {
	case KindOctal:
		base = 8
	case KindHexLower:
		base = 16
	case KindHexUpper:
		base, upper = 16, true
	case KindBinary:
		base = 2
	}

	prec := 1
	if spec.PrecFrom != BoundNone {
		prec = spec.Prec
	}
	// Zero with precision zero has no digits at all.
	if mag != 0 || prec != 0 {
		f.body = formatUint(buf, mag, base, upper)
	}
	if prec > len(f.body) {
		f.lead = prec - len(f.body)
	}

	if spec.Kind == KindSigned {
		f.sign = signOf(neg, spec.Flags)
	}
	if spec.Flags.Has(FlagAlt) {
		switch spec.Kind {
		case KindOctal:
			if f.lead == 0 && (len(f.body) == 0 || f.body[0] != '0') {
				f.prefix = "0"
			}
		case KindHexLower:
			if mag != 0 {
				f.prefix = "0x"
			}
		case KindHexUpper:
			if mag != 0 {
				f.prefix = "0X"
			}
		case KindBinary:
			if mag != 0 {
				f.prefix = "0b"
			}
		}
	}

	// An explicit precision turns off zero filling of the width.
	f.zero = spec.Flags.Has(FlagZero) && spec.PrecFrom == BoundNone
	return f
}

// pointerField renders %p: 0x and lower-case hex digits, space padded.
func pointerField(buf *scratch, addr uint64) field {
	return field{prefix: "0x", body: formatUint(buf, addr, 16, false)}
}
