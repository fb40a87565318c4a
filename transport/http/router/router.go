package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"resthouse/config"
	"resthouse/internal/handlers/adminauth"
	"resthouse/internal/handlers/auth"
	"resthouse/internal/handlers/booking"
	"resthouse/internal/handlers/pricing"
	"resthouse/internal/handlers/property"
	"resthouse/internal/handlers/roster"
	"resthouse/internal/handlers/user"
	"resthouse/internal/handlers/zone"
	"resthouse/transport/http/middleware"
)

type DomainHandlers struct {
	Auth      auth.Handler
	AdminAuth adminauth.Handler
	User      user.Handler
	Roster    roster.Handler
	Zone      zone.Handler
	Property  property.Handler
	Pricing   pricing.Handler
	Booking   booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	authMiddleware middleware.AuthRole
	appMiddleware  middleware.AppMiddleware
	cfg            *config.Config
}

func New(domainHandlers DomainHandlers, authMiddleware middleware.AuthRole, appMiddleware middleware.AppMiddleware, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		authMiddleware: authMiddleware,
		appMiddleware:  appMiddleware,
		cfg:            cfg,
	}
}

func (r *Router) SetupRoutes(router chi.Router) {
	if r.cfg.App.CORS.Enable {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   r.cfg.App.CORS.AllowedOrigins,
			AllowedMethods:   r.cfg.App.CORS.AllowedMethods,
			AllowedHeaders:   r.cfg.App.CORS.AllowedHeaders,
			AllowCredentials: r.cfg.App.CORS.AllowCredentials,
			MaxAge:           r.cfg.App.CORS.MaxAgeSeconds,
		}))
	}

	router.Use(r.appMiddleware.Tracing)
	router.Use(r.appMiddleware.RateLimit)

	router.Handle("/metrics", promhttp.Handler())

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.authMiddleware.Auth)
		routerGroup.Use(r.authMiddleware.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.AdminAuth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Roster.Router(routerGroup)
		r.DomainHandlers.Zone.Router(routerGroup)
		r.DomainHandlers.Property.Router(routerGroup)
		r.DomainHandlers.Pricing.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
	})
}
