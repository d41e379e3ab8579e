// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"personbench/config"
	"personbench/internal/delivery/api/router/handler"
	"personbench/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and settings the router needs, injected by Fx.
type RouterParams struct {
	fx.In

	PersonHandler *handler.PersonHandler
	Metrics       *metrics.Metrics `optional:"true"`
	Config        *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	personHandler *handler.PersonHandler
	metrics       *metrics.Metrics
	config        *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		personHandler: params.PersonHandler,
		metrics:       params.Metrics,
		config:        params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Hello)
	e.GET("/health", handler.HealthCheck)

	// Both spellings are served directly; a redirect would turn POST into GET in many clients.
	for _, path := range []string{"/person/", "/person"} {
		e.POST(path, r.personHandler.CreatePerson)
		e.GET(path, r.personHandler.ListPersons)
	}

	r.registerMetricsRoute(e)
}

func (r *router) registerMetricsRoute(e *echo.Echo) {
	if r.metrics == nil || r.config.Metrics == nil || !r.config.Metrics.Enabled {
		return
	}

	e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
}
