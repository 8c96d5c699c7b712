package bootstrap

import (
	"cleanpro-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	JWTModule,
	components.RepositoryModule,
	components.NotifierModule,
	components.UseCaseModule,
	components.HandlerModule,
	components.JobsModule,
)
