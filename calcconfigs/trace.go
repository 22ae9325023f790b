package calcconfigs

import (
	"os"

	"github.com/reusee/calc/calclex"
	"github.com/reusee/calc/configs"
	"github.com/reusee/calc/vars"
)

func (Module) TraceTokens(
	loader configs.Loader,
) calclex.TraceTokens {
	if vars.StrToBool(os.Getenv("CALC_TRACE")) {
		return true
	}
	return calclex.TraceTokens(configs.First[bool](loader, "trace"))
}
