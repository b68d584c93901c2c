package nprintf

import (
	"io"
	"sync"
)

// bufPool holds render buffers for Fprintf, the one path that allocates.
var bufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 256)
		return &b
	},
}

// maxPooled bounds the buffers returned to the pool.
const maxPooled = 16 << 10

// Fprintf formats args according to format and writes the output to w.
// It returns the number of bytes written and any error from w.
func (p Printer) Fprintf(w io.Writer, format string, args ...Arg) (int, error) {
	c := NewCursor(args...)
	return p.Vfprintf(w, format, &c)
}

// Vfprintf is like Fprintf but takes its arguments from c.
func (p Printer) Vfprintf(w io.Writer, format string, c *Cursor) (int, error) {
	probe := *c
	n := p.Vsnprintf(nil, format, &probe)

	bp := bufPool.Get().(*[]byte)
	defer func() {
		if cap(*bp) <= maxPooled {
			*bp = (*bp)[:0]
			bufPool.Put(bp)
		}
	}()
	if cap(*bp) < n+1 {
		*bp = make([]byte, n+1)
	}
	buf := (*bp)[:n+1]
	p.Vsnprintf(buf, format, c)
	return w.Write(buf[:n])
}

// Fprintf formats with [Default]. See [Printer.Fprintf].
func Fprintf(w io.Writer, format string, args ...Arg) (int, error) {
	return Default.Fprintf(w, format, args...)
}

// Vfprintf formats with [Default]. See [Printer.Vfprintf].
func Vfprintf(w io.Writer, format string, c *Cursor) (int, error) {
	return Default.Vfprintf(w, format, c)
}
