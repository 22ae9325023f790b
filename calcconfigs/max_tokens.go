package calcconfigs

import (
	"math"

	"github.com/reusee/calc/calclex"
	"github.com/reusee/calc/configs"
)

func (Module) MaxTokens(
	loader configs.Loader,
) calclex.MaxTokens {
	maxTokens := math.MaxInt

	// config
	if n := configs.First[int](loader, "max_tokens"); n != 0 {
		maxTokens = min(maxTokens, n)
	}

	return calclex.MaxTokens(maxTokens)
}
