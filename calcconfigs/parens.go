package calcconfigs

import (
	"os"

	"github.com/reusee/calc/calclex"
	"github.com/reusee/calc/configs"
	"github.com/reusee/calc/logs"
	"github.com/reusee/calc/vars"
)

func (Module) ParenMode(
	loader configs.Loader,
	logger logs.Logger,
) calclex.ParenMode {
	str := vars.FirstNonZero(
		os.Getenv("CALC_PARENS"),
		configs.First[string](loader, "parens"),
	)
	mode, err := calclex.ParseParenMode(str)
	if err != nil {
		logger.Warn("bad parens config",
			"value", str,
		)
		return calclex.ParensEmit
	}
	return mode
}
