package impl

import (
	"go.uber.org/fx"
)

// Module provides the use cases
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewTokenStore,
		NewConnectionService,
		NewAggregator,
		NewSportsService,
		NewServiceSelectionService,
		NewLibraryService,
	),
)
