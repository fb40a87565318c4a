//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"resthouse/config"
	"resthouse/infras/jwt"
	"resthouse/infras/otel"
	"resthouse/infras/postgres"
	"resthouse/infras/redis"
	"resthouse/infras/s3"
	"resthouse/permissions"
	"resthouse/shared/cache"
	"resthouse/shared/metrics"
	"resthouse/transport/http"
	"resthouse/transport/http/middleware"
	"resthouse/transport/http/router"

	adminRepository "resthouse/internal/domains/admin/repository"
	adminService "resthouse/internal/domains/admin/service"
	authService "resthouse/internal/domains/auth/service"
	bookingRepository "resthouse/internal/domains/booking/repository"
	bookingService "resthouse/internal/domains/booking/service"
	pricingRepository "resthouse/internal/domains/pricing/repository"
	pricingService "resthouse/internal/domains/pricing/service"
	propertyRepository "resthouse/internal/domains/property/repository"
	propertyService "resthouse/internal/domains/property/service"
	rosterRepository "resthouse/internal/domains/roster/repository"
	rosterService "resthouse/internal/domains/roster/service"
	userRepository "resthouse/internal/domains/user/repository"
	userService "resthouse/internal/domains/user/service"
	zoneRepository "resthouse/internal/domains/zone/repository"
	zoneService "resthouse/internal/domains/zone/service"

	adminAuthHandler "resthouse/internal/handlers/adminauth"
	authHandler "resthouse/internal/handlers/auth"
	bookingHandler "resthouse/internal/handlers/booking"
	pricingHandler "resthouse/internal/handlers/pricing"
	propertyHandler "resthouse/internal/handlers/property"
	rosterHandler "resthouse/internal/handlers/roster"
	userHandler "resthouse/internal/handlers/user"
	zoneHandler "resthouse/internal/handlers/zone"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	metrics.New,
)

var rosterDomain = wire.NewSet(
	rosterRepository.New,
	rosterService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var adminDomain = wire.NewSet(
	adminRepository.New,
	adminService.New,
)

var userDomain = wire.NewSet(
	userService.New,
)

var zoneDomain = wire.NewSet(
	zoneRepository.New,
	zoneService.New,
)

var propertyDomain = wire.NewSet(
	propertyRepository.New,
	propertyService.New,
)

var pricingDomain = wire.NewSet(
	pricingRepository.New,
	pricingService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	rosterDomain,
	authDomain,
	adminDomain,
	userDomain,
	zoneDomain,
	propertyDomain,
	pricingDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	adminAuthHandler.New,
	userHandler.New,
	rosterHandler.New,
	zoneHandler.New,
	propertyHandler.New,
	pricingHandler.New,
	bookingHandler.New,
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
		http.New,
	)

	return &http.HTTP{}
}
