//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package main

import (
	"github.com/google/wire"

	"github.com/elle-trudgett/luna/physics"
)

func initializeSandbox(opts options) (*sandbox, func(), error) {
	wire.Build(
		provideConfig,
		provideLogger,
		provideResolver,
		physics.NewMover,
		provideScene,
		provideScreen,
		provideChime,
		newSandbox,
	)
	return nil, nil, nil
}
