//go:build wireinject

package main

import (
	"github.com/google/wire"
)

func InitApp() (*App, error) {
	wire.Build(
		ProvideArgs,
		ProvideConfig,
		ProvideLogger,
		ProvideRoot,
		ProvideWalker,
		wire.Struct(new(App), "*"),
	)
	return nil, nil
}
