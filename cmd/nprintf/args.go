package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/bjaus/nprintf"
)

// Sentinel errors for programmatic error handling.
var (
	ErrMissingFormat = errors.New("missing format")
	ErrBadArgument   = errors.New("bad argument")
	ErrBadOutput     = errors.New("unsupported output format")
)

// bindArgs converts command-line words to typed arguments, following the
// conversions of format in order. Words missing at the end are left out so
// the engine binds them as zero. The returned counters receive the %n
// results.
func bindArgs(p nprintf.Printer, format string, words []string) ([]nprintf.Arg, []*int, error) {
	var (
		args     []nprintf.Arg
		counters []*int
	)
	next := func() (string, bool) {
		if len(words) == 0 {
			return "", false
		}
		w := words[0]
		words = words[1:]
		return w, true
	}

	for tok := range p.Tokens(format) {
		if !tok.Conv {
			continue
		}
		spec := tok.Spec
		for _, from := range []nprintf.Bound{spec.WidthFrom, spec.PrecFrom} {
			if from != nprintf.BoundArg {
				continue
			}
			w, ok := next()
			if !ok {
				return args, counters, nil
			}
			n, err := strconv.ParseInt(w, 0, 32)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: %q for '*' in %q: %w", ErrBadArgument, w, tok.Text, err)
			}
			args = append(args, nprintf.Int(n))
		}

		if spec.Kind == nprintf.KindPercent {
			continue
		}
		if spec.Kind == nprintf.KindWriteback {
			c := new(int)
			counters = append(counters, c)
			args = append(args, nprintf.Count(c))
			continue
		}

		w, ok := next()
		if !ok {
			return args, counters, nil
		}
		arg, err := parseArg(spec.Kind, w)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %q for %q: %w", ErrBadArgument, w, tok.Text, err)
		}
		args = append(args, arg)
	}
	return args, counters, nil
}

func parseArg(kind nprintf.Kind, w string) (nprintf.Arg, error) {
	switch kind {
	case nprintf.KindString:
		return nprintf.Str(w), nil
	case nprintf.KindChar:
		if len(w) == 1 {
			return nprintf.Char(w[0]), nil
		}
		n, err := strconv.ParseInt(w, 0, 64)
		return nprintf.Int(n), err
	case nprintf.KindSigned:
		n, err := strconv.ParseInt(w, 0, 64)
		return nprintf.Int(n), err
	case nprintf.KindFloat, nprintf.KindFloatUpper:
		x, err := strconv.ParseFloat(w, 64)
		return nprintf.Float(x), err
	case nprintf.KindPointer:
		n, err := strconv.ParseUint(w, 0, 64)
		return nprintf.Pointer(uintptr(n)), err
	default:
		// Unsigned conversions accept negative words and wrap them.
		if n, err := strconv.ParseUint(w, 0, 64); err == nil {
			return nprintf.Uint(n), nil
		}
		n, err := strconv.ParseInt(w, 0, 64)
		return nprintf.Int(n), err
	}
}
