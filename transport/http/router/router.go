package router

import (
	"frontdesk/internal/handlers/booking"
	"frontdesk/internal/handlers/connection"
	"frontdesk/internal/handlers/desk"
	"frontdesk/internal/handlers/health"
	"frontdesk/internal/handlers/inquiry"
	"frontdesk/internal/handlers/room"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Connection connection.Handler
	Desk       desk.Handler
	Booking    booking.Handler
	Room       room.Handler
	Inquiry    inquiry.Handler
	Health     health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts the probes on router and the API under /v1. Middleware in guard applies to
// the API only.
func (r *Router) SetupRoutes(router chi.Router, guard ...func(chi.Router)) {
	r.DomainHandlers.Health.Router(router)

	router.Route("/v1", func(routerGroup chi.Router) {
		for _, g := range guard {
			g(routerGroup)
		}

		r.DomainHandlers.Connection.Router(routerGroup)
		r.DomainHandlers.Desk.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Inquiry.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
