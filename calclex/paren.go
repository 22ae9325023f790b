package calclex

import "fmt"

type ParenMode uint8

const (
	ParensEmit ParenMode = iota
	ParensReject
)

func (m ParenMode) String() string {
	switch m {
	case ParensEmit:
		return "emit"
	case ParensReject:
		return "reject"
	}
	return fmt.Sprintf("ParenMode(%d)", uint8(m))
}

func ParseParenMode(str string) (ParenMode, error) {
	switch str {
	case "", "emit":
		return ParensEmit, nil
	case "reject":
		return ParensReject, nil
	}
	return ParensEmit, fmt.Errorf("unknown paren mode: %q", str)
}
