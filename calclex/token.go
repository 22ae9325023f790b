package calclex

type Token struct {
	Kind TokenKind
	Text string
	Pos  Pos
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenNumber
	TokenOperator
	TokenOpenParen
	TokenCloseParen
	TokenWord
	TokenEOF
)

var tokenKindNames = [...]string{
	TokenInvalid:    "invalid",
	TokenNumber:     "number",
	TokenOperator:   "operator",
	TokenOpenParen:  "open-paren",
	TokenCloseParen: "close-paren",
	TokenWord:       "word",
	TokenEOF:        "eof",
}

func (k TokenKind) String() string {
	if int(k) >= len(tokenKindNames) {
		return tokenKindNames[TokenInvalid]
	}
	return tokenKindNames[k]
}

type Pos struct {
	Source *Source
	Offset int
	Line   int
	Column int
}
