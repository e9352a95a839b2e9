//go:build wireinject
// +build wireinject

package di

import (
	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/infras/redis"
	"frontdesk/internal/domains/timeframe"
	bookingHandler "frontdesk/internal/handlers/booking"
	connectionHandler "frontdesk/internal/handlers/connection"
	deskHandler "frontdesk/internal/handlers/desk"
	healthHandler "frontdesk/internal/handlers/health"
	inquiryHandler "frontdesk/internal/handlers/inquiry"
	roomHandler "frontdesk/internal/handlers/room"
	"frontdesk/shared/cache"
	"frontdesk/transport/http"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/router"

	bookingRepository "frontdesk/internal/domains/booking/repository"
	bookingService "frontdesk/internal/domains/booking/service"
	connectionService "frontdesk/internal/domains/connection/service"
	"frontdesk/internal/domains/desk/events"
	deskService "frontdesk/internal/domains/desk/service"
	inquiryRepository "frontdesk/internal/domains/inquiry/repository"
	inquiryService "frontdesk/internal/domains/inquiry/service"
	roomRepository "frontdesk/internal/domains/room/repository"
	roomService "frontdesk/internal/domains/room/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	provideOverlap,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var connectionDomain = wire.NewSet(
	connectionService.New,
	provideStore,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var inquiryDomain = wire.NewSet(
	inquiryRepository.New,
	inquiryService.New,
)

var deskDomain = wire.NewSet(
	timeframe.NewSet,
	deskService.New,
	events.New,
)

var domains = wire.NewSet(
	connectionDomain,
	roomDomain,
	bookingDomain,
	inquiryDomain,
	deskDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	connectionHandler.New,
	deskHandler.New,
	bookingHandler.New,
	roomHandler.New,
	inquiryHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.NewLifecycle,
		http.New,
	)

	return &http.HTTP{}
}
