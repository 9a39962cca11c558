//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/loyalty/internal/loyalty"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ)

var loyaltySet = wire.NewSet(InitLoyaltyConfig,
	InitMailer,
	InitObjectStore,
	InitLoyaltyModule,
	wire.FieldsOf(new(*loyalty.Module), "Hdl", "WebhookHdl", "RetryDeliveryJob"))

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		loyaltySet,
		InitSession,
		initGinxServer,
		initCronJobs)
	return new(App), nil
}
