//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/vectorlib/internal/config"
	"github.com/zeusync/vectorlib/internal/core/observability/log"
	"github.com/zeusync/vectorlib/internal/demo"
)

func InitializeApp(cfg *config.Config) (*demo.App, error) {
	wire.Build(
		ProvideLogger,
		wire.Bind(new(log.Log), new(*log.Logger)),
		demo.New,
	)
	return nil, nil
}
