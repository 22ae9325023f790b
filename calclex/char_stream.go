package calclex

type CharStream interface {
	Current() byte
	Peek() byte
	Advance()
	ConsumeWhile(pred func(byte) bool) []byte
	SkipWhitespace() bool
	AtEnd() bool
	Pos() Pos
	Err() error
}

type SliceCharStream struct {
	source *Source
	buf    []byte
	cur    int
	nxt    int
	line   int
	column int
}

var _ CharStream = new(SliceCharStream)

func NewSliceCharStream(source *Source) *SliceCharStream {
	return &SliceCharStream{
		source: source,
		buf:    []byte(source.Content),
		cur:    0,
		nxt:    1,
		line:   1,
		column: 1,
	}
}

func (s *SliceCharStream) Current() byte {
	if s.cur >= len(s.buf) {
		return 0
	}
	return s.buf[s.cur]
}

func (s *SliceCharStream) Peek() byte {
	if s.nxt >= len(s.buf) {
		return 0
	}
	return s.buf[s.nxt]
}

func (s *SliceCharStream) Advance() {
	if s.cur >= len(s.buf) {
		return
	}
	if s.buf[s.cur] == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	s.cur++
	s.nxt++
}

func (s *SliceCharStream) ConsumeWhile(pred func(byte) bool) []byte {
	start := s.cur
	for s.cur < len(s.buf) && pred(s.buf[s.cur]) {
		s.Advance()
	}
	return s.buf[start:s.cur]
}

func (s *SliceCharStream) SkipWhitespace() bool {
	skipped := false
	for s.cur < len(s.buf) && isSpace(s.buf[s.cur]) {
		skipped = true
		s.Advance()
	}
	return skipped
}

func (s *SliceCharStream) AtEnd() bool {
	return s.cur >= len(s.buf)
}

func (s *SliceCharStream) Pos() Pos {
	return Pos{
		Source: s.source,
		Offset: s.cur,
		Line:   s.line,
		Column: s.column,
	}
}

func (s *SliceCharStream) Err() error {
	return nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isOperator(c byte) bool {
	return c == '+' || c == '-' || c == '*' || c == '/'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\f' || c == '\r'
}
