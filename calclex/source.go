package calclex

import "strings"

type Source struct {
	Name    string
	Content string
	Lines   []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

func (s *Source) Line(n int) (string, bool) {
	idx := n - 1
	if idx < 0 || idx >= len(s.Lines) {
		return "", false
	}
	return s.Lines[idx], true
}
