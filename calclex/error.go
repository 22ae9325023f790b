package calclex

import (
	"fmt"
	"strings"
)

type UnrecognizedByteError struct {
	Byte byte
}

func (u UnrecognizedByteError) Error() string {
	return fmt.Sprintf("unrecognized byte %q", u.Byte)
}

type TokenLimitError struct {
	Limit int
}

func (t TokenLimitError) Error() string {
	return fmt.Sprintf("token limit exceeded: %d", t.Limit)
}

type PosError struct {
	Err error
	Pos Pos
}

func (p PosError) Error() string {
	if p.Pos.Source == nil {
		return p.Err.Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s at %s:%d:%d\n", p.Err.Error(), p.Pos.Source.Name, p.Pos.Line, p.Pos.Column))

	// Line content
	line, ok := p.Pos.Source.Line(p.Pos.Line)
	if ok {
		sb.WriteString(line)
		sb.WriteString("\n")

		// Caret
		col := p.Pos.Column - 1
		for i := 0; i < len(line) && i < col; i++ {
			if line[i] == '\t' {
				sb.WriteString("\t")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("^\n")
	}

	return sb.String()
}

func (p PosError) Unwrap() error {
	return p.Err
}

func WithPos(err error, pos Pos) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(PosError); ok {
		return err
	}
	return PosError{
		Err: err,
		Pos: pos,
	}
}
