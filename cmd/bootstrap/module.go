package bootstrap

import (
	"hotelfront/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StoreModule,
	components.InfraModule,
	components.UseCaseModule,
	components.HandlerModule,
)

// CoreModule is everything except the HTTP layer, for one-shot CLI commands.
var CoreModule = fx.Options(
	ConfigModule,
	LoggerModule,
	StoreModule,
	components.InfraModule,
	components.UseCaseModule,
)
