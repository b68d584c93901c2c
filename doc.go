// Package nprintf renders printf-style format strings without allocating.
//
// The engine reproduces the numeric and string conversions of the C
// formatting mini-language for targets where a full platform printf is
// unavailable or too costly: it uses no heap, no locale and no floating-point
// formatting routine. The central entry points are [Snprintf] and [Fprintf],
// which accept a format string and a list of typed [Arg] values.
//
// # Format Syntax
//
//	%[flags][width][.precision][length]conversion
//
//   - flags: any combination of '-', '+', ' ', '#', '0'
//   - width: decimal digits or '*' (taken from the next argument)
//   - precision: '.' followed by digits, '*', or nothing (zero)
//   - length: hh, h, l, ll, j, z, t
//   - conversion: d i u o x X b f F c s p n %
//
// A conversion the engine does not recognise is copied to the output
// verbatim, starting with its '%':
//
//	nprintf.Snprintf(buf, "%kmarco") // writes "%kmarco"
//
// # Arguments
//
// Arguments are tagged values built with [Int], [Uint], [Float], [Str],
// [Char], [Pointer], [Ptr] and [Count]. The length modifier of each
// conversion, not the Go type of the argument, selects the width the value
// is read at, following the LP64 C data model:
//
//	nprintf.Snprintf(buf, "%hhu", nprintf.Int(-1)) // writes "255"
//
// A [Cursor] walks the arguments in order and can be shared by successive
// calls to [Vsnprintf], the way a va_list is.
//
// # Output
//
// [Snprintf] writes at most len(dst)-1 bytes followed by a NUL byte and
// returns the length the output would have had without the capacity limit.
// Passing a nil buffer measures the output:
//
//	n := nprintf.Snprintf(nil, "%d items", nprintf.Int(42)) // n == 8
//
// [Fprintf] writes the output to an [io.Writer]. It measures the output
// first and renders into a pooled buffer, so unlike [Snprintf] it may
// allocate.
//
// # Floating Point
//
// %f narrows its argument to 32-bit binary floating point and computes at
// most eight fractional digits using integer arithmetic only. Digits beyond
// the requested precision are truncated, not rounded. Values whose integer
// part does not fit in 64 bits render as "oor".
//
// # Features
//
// A [Printer] is built from [Features], which switch off groups of syntax
// (field width, precision, floats, large integers, %n, %b). Syntax of a
// disabled group falls back to literal output. [LoadFeatures] reads a
// feature set from YAML.
package nprintf
