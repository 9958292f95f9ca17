package content

import (
	"go.uber.org/fx"
)

// Module provides the schedule, content providers and library clients
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewScheduleFromConfig,
		fx.Annotate(NewPrimeVideoProvider, fx.ResultTags(`group:"content_providers"`)),
		fx.Annotate(NewESPNPlusProvider, fx.ResultTags(`group:"content_providers"`)),
		fx.Annotate(NewYouTubeTVProvider, fx.ResultTags(`group:"content_providers"`)),
		fx.Annotate(NewPeacockProvider, fx.ResultTags(`group:"content_providers"`)),
		fx.Annotate(NewParamountPlusProvider, fx.ResultTags(`group:"content_providers"`)),
		fx.Annotate(NewPrimeVideoLibrary, fx.ResultTags(`group:"library_clients"`)),
	),
)
