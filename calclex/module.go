package calclex

import (
	"log/slog"

	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

type BuildTokenizer func(source *Source) *Tokenizer

func (Module) BuildTokenizer(
	parens ParenMode,
	maxTokens MaxTokens,
) BuildTokenizer {
	return func(source *Source) *Tokenizer {
		return &Tokenizer{
			chars:     NewSliceCharStream(source),
			Parens:    parens,
			MaxTokens: int(maxTokens),
		}
	}
}

type BuildTokenStream func(source *Source) TokenStream

func (Module) BuildTokenStream(
	build BuildTokenizer,
	trace TraceTokens,
	logger *slog.Logger,
) BuildTokenStream {
	return func(source *Source) TokenStream {
		var stream TokenStream = build(source)
		if trace {
			stream = &TraceTokenStream{
				TokenStream: stream,
				Logger:      logger,
			}
		}
		return stream
	}
}
