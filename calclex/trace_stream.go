package calclex

import "log/slog"

type TraceTokens bool

type TraceTokenStream struct {
	TokenStream
	Logger *slog.Logger
}

var _ TokenStream = new(TraceTokenStream)

func (t *TraceTokenStream) Consume() {
	if token, err := t.TokenStream.Current(); err == nil {
		t.Logger.Debug("consume token",
			"kind", token.Kind,
			"text", token.Text,
			"line", token.Pos.Line,
			"column", token.Pos.Column,
		)
	}
	t.TokenStream.Consume()
}
