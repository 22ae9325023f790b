package calcconfigs

import (
	"github.com/reusee/calc/calclex"
	"github.com/reusee/calc/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Lex  calclex.Module
	Logs logs.Module
}
