package nprintf

// sink stores output into dst as far as it fits, keeping the last byte for
// a terminating NUL, and counts every byte produced whether stored or not.
type sink struct {
	dst   []byte
	pos   int
	total int
}

func (s *sink) putc(c byte) {
	s.total++
	if s.pos+1 < len(s.dst) {
		s.dst[s.pos] = c
		s.pos++
	}
}

func (s *sink) puts(str string) {
	for i := 0; i < len(str); i++ {
		s.putc(str[i])
	}
}

func (s *sink) put(b []byte) {
	for _, c := range b {
		s.putc(c)
	}
}

// fill writes c n times. n <= 0 writes nothing.
func (s *sink) fill(c byte, n int) {
	for ; n > 0; n-- {
		s.putc(c)
	}
}

// finish NUL-terminates the destination.
func (s *sink) finish() {
	if len(s.dst) > 0 {
		s.dst[s.pos] = 0
	}
}
