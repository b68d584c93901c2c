package nprintf

// Layout of an IEEE-754 binary32 value, and the fixed-point format the
// fraction is expanded in. Four bits of headroom above the 60 fraction bits
// let each step multiply by ten without overflow.
const (
	f32MantBits  = 23
	f32ExpMask   = 0xff
	f32ExpBias   = 127
	fracBits     = 60
	fracMask     = 1<<fracBits - 1
	maxFracDigit = 8
	defaultPrec  = 6
	maxIntShift  = 64 - f32MantBits - 1
)

// floatField renders %f and %F for the binary32 value with the given bits
// using integer arithmetic only. At most maxFracDigit fractional digits are
// computed; the rest of the precision is zero filled. Digits past the
// precision are dropped without rounding. spec must have its width and
// precision resolved.
func floatField(buf *scratch, spec Spec, bits uint32) field {
	var f field
	upper := spec.Kind == KindFloatUpper
	neg := bits>>31 != 0
	exp := int(bits>>f32MantBits) & f32ExpMask
	mant := uint64(bits & (1<<f32MantBits - 1))

	if exp == f32ExpMask {
		if mant != 0 {
			f.body = special(buf, "nan", "NAN", upper)
			return f
		}
		f.sign = signOf(neg, spec.Flags)
		f.body = special(buf, "inf", "INF", upper)
		return f
	}

	// value = mant * 2^e
	e := exp - f32ExpBias - f32MantBits
	if exp == 0 {
		e = 1 - f32ExpBias - f32MantBits
	} else {
		mant |= 1 << f32MantBits
	}
	f.sign = signOf(neg, spec.Flags)
	if e > maxIntShift {
		// The integer part needs more than 64 bits.
		f.body = special(buf, "oor", "OOR", upper)
		return f
	}

	var ipart, frac uint64
	switch {
	case e >= 0:
		ipart = mant << e
	case e > -64:
		ipart = mant >> -e
	}
	if e < 0 {
		shift := fracBits + e
		switch {
		case shift >= 0:
			frac = (mant << shift) & fracMask
		case shift > -64:
			frac = mant >> -shift
		}
	}

	n := copy(buf[:], formatUint(buf, ipart, 10, false))

	prec := defaultPrec
	if spec.PrecFrom != BoundNone {
		prec = spec.Prec
	}
	if prec == 0 && !spec.Flags.Has(FlagAlt) {
		f.body = buf[:n]
		f.zero = spec.Flags.Has(FlagZero)
		return f
	}

	buf[n] = '.'
	n++
	k := 0
	for limit := min(prec, maxFracDigit); k < limit && frac != 0; k++ {
		frac *= 10
		buf[n+k] = '0' + byte(frac>>fracBits)
		frac &= fracMask
	}
	f.body = buf[:n+k]
	f.trail = prec - k
	f.zero = spec.Flags.Has(FlagZero)
	return f
}

func special(buf *scratch, lower, upperWord string, upper bool) []byte {
	w := lower
	if upper {
		w = upperWord
	}
	return buf[:copy(buf[:], w)]
}
