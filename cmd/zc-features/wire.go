//go:build wireinject
// +build wireinject

package main

import (
	"zc-features/internal/app"

	"github.com/google/wire"
)

// InitializePipeline builds the batch pipeline (Config + BarSource + Saver + Params) via Wire.
func InitializePipeline() (*app.Pipeline, error) {
	wire.Build(
		app.ProvideConfig,
		app.ProvideBarSource,
		app.ProvideSaver,
		app.ProvideParams,
		wire.Struct(new(app.Pipeline), "*"),
	)
	return nil, nil
}
