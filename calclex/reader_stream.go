package calclex

import (
	"bufio"
	"io"
)

type ReaderCharStream struct {
	source *Source
	reader *bufio.Reader
	offset int
	line   int
	column int
	err    error
}

var _ CharStream = new(ReaderCharStream)

func NewReaderCharStream(name string, r io.Reader) *ReaderCharStream {
	return &ReaderCharStream{
		source: &Source{Name: name},
		reader: bufio.NewReader(r),
		line:   1,
		column: 1,
	}
}

func (s *ReaderCharStream) setErr(err error) {
	if err == io.EOF {
		return
	}
	if s.err == nil {
		s.err = wrap(err)
	}
}

func (s *ReaderCharStream) Current() byte {
	bs, err := s.reader.Peek(1)
	if err != nil {
		s.setErr(err)
		return 0
	}
	return bs[0]
}

func (s *ReaderCharStream) Peek() byte {
	bs, err := s.reader.Peek(2)
	if len(bs) < 2 {
		if err != nil {
			s.setErr(err)
		}
		return 0
	}
	return bs[1]
}

func (s *ReaderCharStream) Advance() {
	b, err := s.reader.ReadByte()
	if err != nil {
		s.setErr(err)
		return
	}
	s.offset++
	if b == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
}

func (s *ReaderCharStream) ConsumeWhile(pred func(byte) bool) []byte {
	var run []byte
	for {
		bs, err := s.reader.Peek(1)
		if err != nil {
			s.setErr(err)
			break
		}
		if !pred(bs[0]) {
			break
		}
		run = append(run, bs[0])
		s.Advance()
	}
	return run
}

func (s *ReaderCharStream) SkipWhitespace() bool {
	skipped := false
	for {
		bs, err := s.reader.Peek(1)
		if err != nil {
			s.setErr(err)
			break
		}
		if !isSpace(bs[0]) {
			break
		}
		skipped = true
		s.Advance()
	}
	return skipped
}

func (s *ReaderCharStream) AtEnd() bool {
	_, err := s.reader.Peek(1)
	if err != nil {
		s.setErr(err)
		return true
	}
	return false
}

func (s *ReaderCharStream) Pos() Pos {
	return Pos{
		Source: s.source,
		Offset: s.offset,
		Line:   s.line,
		Column: s.column,
	}
}

func (s *ReaderCharStream) Err() error {
	return s.err
}
