package nprintf

import (
	"math"
	"unsafe"
)

type argClass uint8

const (
	argNone argClass = iota
	argInt
	argUint
	argFloat
	argString
	argPointer
	argCount
)

// Arg is one typed formatting argument. Build it with [Int], [Uint],
// [Float], [Str], [Char], [Pointer], [Ptr] or [Count]. The zero Arg binds as
// integer 0, float 0 and the empty string.
type Arg struct {
	class argClass
	bits  uint64 // integer value, float64 bits or address
	str   string
	ref   any // %n target
}

// Signed is the set of signed integer types accepted by [Int].
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer types accepted by [Uint].
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Counter is the set of types a %n conversion can store into.
type Counter interface {
	int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64
}

// Int returns a signed integer argument.
func Int[T Signed](v T) Arg {
	return Arg{class: argInt, bits: uint64(int64(v))}
}

// Uint returns an unsigned integer argument.
func Uint[T Unsigned](v T) Arg {
	return Arg{class: argUint, bits: uint64(v)}
}

// Float returns a floating-point argument.
func Float[T ~float32 | ~float64](v T) Arg {
	return Arg{class: argFloat, bits: math.Float64bits(float64(v))}
}

// Str returns a string argument.
func Str(s string) Arg {
	return Arg{class: argString, str: s}
}

// Char returns a character argument for %c.
func Char(c byte) Arg {
	return Arg{class: argInt, bits: uint64(c)}
}

// Pointer returns a pointer argument for %p from a raw address.
func Pointer(addr uintptr) Arg {
	return Arg{class: argPointer, bits: uint64(addr)}
}

// Ptr returns a pointer argument for %p holding the address of p.
func Ptr[T any](p *T) Arg {
	return Pointer(uintptr(unsafe.Pointer(p)))
}

// Count returns the target of a %n conversion. The number of bytes
// produced so far is stored into *p, narrowed to the conversion's length
// modifier.
func Count[T Counter](p *T) Arg {
	return Arg{class: argCount, ref: p}
}

// word returns the raw 64-bit integer payload of a.
func (a Arg) word() uint64 {
	if a.class == argFloat {
		return uint64(int64(math.Float64frombits(a.bits)))
	}
	return a.bits
}

// Cursor hands out arguments in order. Once exhausted it returns the zero
// Arg. Copying a Cursor copies its position.
type Cursor struct {
	args []Arg
	pos  int
}

// NewCursor returns a Cursor over args.
func NewCursor(args ...Arg) Cursor {
	return Cursor{args: args}
}

// Next returns the next argument.
func (c *Cursor) Next() Arg {
	if c.pos >= len(c.args) {
		return Arg{}
	}
	a := c.args[c.pos]
	c.pos++
	return a
}

// Remaining returns the number of arguments not yet taken.
func (c *Cursor) Remaining() int {
	return len(c.args) - c.pos
}

// bindInt reads a C int, as used by '*' widths and precisions.
func bindInt(a Arg) int {
	return int(int32(a.word()))
}

// bindSigned reads a at the width selected by l and returns its sign and
// magnitude. The magnitude of the most negative value of every width is
// exact.
func bindSigned(a Arg, l Length) (neg bool, mag uint64) {
	raw := a.word()
	var v int64
	switch l {
	case LengthChar:
		v = int64(int8(raw))
	case LengthShort:
		v = int64(int16(raw))
	case LengthNone:
		v = int64(int32(raw))
	default:
		v = int64(raw)
	}
	mag = uint64(v)
	if v < 0 {
		neg = true
		mag = -mag
	}
	return neg, mag
}

// bindUnsigned reads a at the width selected by l.
func bindUnsigned(a Arg, l Length) uint64 {
	raw := a.word()
	switch l {
	case LengthChar:
		return uint64(uint8(raw))
	case LengthShort:
		return uint64(uint16(raw))
	case LengthNone:
		return uint64(uint32(raw))
	default:
		return raw
	}
}

// bindFloat narrows a to the 32-bit value the float renderer works on.
func bindFloat(a Arg) uint32 {
	switch a.class {
	case argFloat:
		return math.Float32bits(float32(math.Float64frombits(a.bits)))
	case argUint, argPointer:
		return math.Float32bits(float32(a.bits))
	default:
		return math.Float32bits(float32(int64(a.bits)))
	}
}

func bindString(a Arg) string {
	if a.class != argString {
		return ""
	}
	return a.str
}

// storeCount writes n into the %n target of a, narrowed to l. A missing
// or foreign target is ignored.
func storeCount(a Arg, l Length, n int) {
	if a.class != argCount {
		return
	}
	var v int64
	switch l {
	case LengthChar:
		v = int64(int8(n))
	case LengthShort:
		v = int64(int16(n))
	case LengthNone:
		v = int64(int32(n))
	default:
		v = int64(n)
	}
	switch p := a.ref.(type) {
	case *int:
		*p = int(v)
	case *int8:
		*p = int8(v)
	case *int16:
		*p = int16(v)
	case *int32:
		*p = int32(v)
	case *int64:
		*p = v
	case *uint:
		*p = uint(v)
	case *uint8:
		*p = uint8(v)
	case *uint16:
		*p = uint16(v)
	case *uint32:
		*p = uint32(v)
	case *uint64:
		*p = uint64(v)
	}
}
