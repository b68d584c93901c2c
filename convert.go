package nprintf

// convert renders one conversion, taking its width, precision and value
// from c in that order.
func (p Printer) convert(s *sink, spec Spec, c *Cursor) {
	if spec.WidthFrom == BoundArg {
		spec.WidthFrom = BoundLiteral
		w := bindInt(c.Next())
		if w < 0 {
			spec.Flags |= FlagLeft
			w = -w
		}
		spec.Width = w
	}
	if spec.PrecFrom == BoundArg {
		spec.PrecFrom = BoundLiteral
		spec.Prec = bindInt(c.Next())
		if spec.Prec < 0 {
			spec.PrecFrom = BoundNone
			spec.Prec = 0
		}
	}
	if spec.Flags.Has(FlagLeft) {
		spec.Flags &^= FlagZero
	}
	left := spec.Flags.Has(FlagLeft)

	var buf scratch
	switch spec.Kind {
	case KindPercent:
		s.putc('%')

	case KindWriteback:
		storeCount(c.Next(), spec.Length, s.total)

	case KindChar:
		buf[0] = byte(c.Next().word())
		f := field{body: buf[:1]}
		f.emit(s, spec.Width, left)

	case KindString:
		str := bindString(c.Next())
		if spec.PrecFrom != BoundNone && spec.Prec < len(str) {
			str = str[:spec.Prec]
		}
		emitText(s, str, spec.Width, left)

	case KindPointer:
		f := pointerField(&buf, c.Next().word())
		f.emit(s, spec.Width, left)

	case KindFloat, KindFloatUpper:
		f := floatField(&buf, spec, bindFloat(c.Next()))
		f.emit(s, spec.Width, left)

	default:
		if !spec.Kind.integer() {
			return
		}
		var neg bool
		var mag uint64
		if spec.Kind == KindSigned {
			neg, mag = bindSigned(c.Next(), spec.Length)
		} else {
			mag = bindUnsigned(c.Next(), spec.Length)
		}
		f := intField(&buf, spec, neg, mag)
		f.emit(s, spec.Width, left)
	}
}
