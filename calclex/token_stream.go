package calclex

type TokenStream interface {
	Current() (*Token, error)
	Consume()
}

var _ TokenStream = new(Tokenizer)

type SliceTokenStream struct {
	tokens []*Token
	idx    int
}

var _ TokenStream = new(SliceTokenStream)

func NewSliceTokenStream(tokens []*Token) *SliceTokenStream {
	return &SliceTokenStream{
		tokens: tokens,
	}
}

func (s *SliceTokenStream) Current() (*Token, error) {
	for s.idx < len(s.tokens) && s.tokens[s.idx].Kind == TokenWord {
		s.idx++
	}
	if s.idx >= len(s.tokens) {
		return &Token{Kind: TokenEOF}, nil
	}
	return s.tokens[s.idx], nil
}

func (s *SliceTokenStream) Consume() {
	if s.idx < len(s.tokens) {
		s.idx++
	}
}
