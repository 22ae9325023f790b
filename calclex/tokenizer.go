package calclex

import "io"

type Tokenizer struct {
	chars   CharStream
	current *Token

	Parens    ParenMode
	MaxTokens int
}

// MaxTokens bounds the number of tokens a single source may produce.
// The zero value means no limit.
type MaxTokens int

func NewTokenizer(source *Source) *Tokenizer {
	return &Tokenizer{
		chars: NewSliceCharStream(source),
	}
}

func NewReaderTokenizer(name string, r io.Reader) *Tokenizer {
	return &Tokenizer{
		chars: NewReaderCharStream(name, r),
	}
}

func NewStreamTokenizer(chars CharStream) *Tokenizer {
	return &Tokenizer{
		chars: chars,
	}
}

func (t *Tokenizer) Next() (*Token, error) {
	t.chars.SkipWhitespace()
	startPos := t.chars.Pos()

	if t.chars.AtEnd() {
		if err := t.chars.Err(); err != nil {
			return nil, WithPos(err, startPos)
		}
		return &Token{Kind: TokenEOF, Pos: startPos}, nil
	}

	c := t.chars.Current()
	switch {

	// Number
	case isDigit(c):
		return &Token{
			Kind: TokenNumber,
			Text: string(t.chars.ConsumeWhile(isDigit)),
			Pos:  startPos,
		}, nil

	// Word
	case isAlpha(c):
		return &Token{
			Kind: TokenWord,
			Text: string(t.chars.ConsumeWhile(isAlpha)),
			Pos:  startPos,
		}, nil

	// Operator
	case isOperator(c):
		t.chars.Advance()
		return &Token{
			Kind: TokenOperator,
			Text: string(rune(c)),
			Pos:  startPos,
		}, nil

	// Paren
	case c == '(' && t.Parens == ParensEmit:
		t.chars.Advance()
		return &Token{
			Kind: TokenOpenParen,
			Text: "(",
			Pos:  startPos,
		}, nil
	case c == ')' && t.Parens == ParensEmit:
		t.chars.Advance()
		return &Token{
			Kind: TokenCloseParen,
			Text: ")",
			Pos:  startPos,
		}, nil

	}

	return nil, WithPos(UnrecognizedByteError{Byte: c}, startPos)
}

func (t *Tokenizer) AtEOF() bool {
	return t.chars.AtEnd()
}

func (t *Tokenizer) Tokens() ([]*Token, error) {
	var tokens []*Token
	for {
		token, err := t.Next()
		if err != nil {
			return nil, err
		}
		if token.Kind == TokenEOF {
			return tokens, nil
		}
		if token.Kind == TokenWord {
			continue
		}
		if t.MaxTokens > 0 && len(tokens) >= t.MaxTokens {
			return nil, WithPos(TokenLimitError{Limit: t.MaxTokens}, token.Pos)
		}
		tokens = append(tokens, token)
	}
}

func (t *Tokenizer) All(yield func(*Token, error) bool) {
	n := 0
	for {
		token, err := t.Next()
		if err != nil {
			yield(nil, err)
			return
		}
		if token.Kind == TokenEOF {
			return
		}
		if token.Kind == TokenWord {
			continue
		}
		if t.MaxTokens > 0 && n >= t.MaxTokens {
			yield(nil, WithPos(TokenLimitError{Limit: t.MaxTokens}, token.Pos))
			return
		}
		n++
		if !yield(token, nil) {
			return
		}
	}
}

func (t *Tokenizer) Current() (*Token, error) {
	if t.current == nil {
		for {
			token, err := t.Next()
			if err != nil {
				return nil, err
			}
			if token.Kind == TokenWord {
				continue
			}
			t.current = token
			break
		}
	}
	return t.current, nil
}

func (t *Tokenizer) Consume() {
	t.current = nil
}
