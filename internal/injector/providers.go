package injector

import (
	"github.com/zeusync/vectorlib/internal/config"
	"github.com/zeusync/vectorlib/internal/core/observability/log"
)

// ProvideLogger builds the process logger from the log section of cfg.
func ProvideLogger(cfg *config.Config) (*log.Logger, error) {
	return log.New(cfg.LogLevel(), log.WithEncoding(cfg.Log.Encoding))
}
