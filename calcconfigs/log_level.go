package calcconfigs

import (
	"log/slog"

	"github.com/reusee/calc/configs"
	"github.com/reusee/calc/logs"
)

type LogLevel slog.Level

func (Module) LogLevel(
	loader configs.Loader,
	logger logs.Logger,
) LogLevel {
	str := configs.First[string](loader, "log_level")
	if str == "" {
		return LogLevel(slog.LevelInfo)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(str)); err != nil {
		logger.Warn("bad log_level config",
			"value", str,
		)
		return LogLevel(slog.LevelInfo)
	}

	logs.SetLevel(level)
	return LogLevel(level)
}
