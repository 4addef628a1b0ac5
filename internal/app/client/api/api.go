// Package api serves the daemon's local view API. Views read the state tree
// and dispatch registered actions through it; they never write state.
//
//	GET    /api/v1/health
//	GET    /api/v1/state
//	GET    /api/v1/state/{slice}
//	GET    /api/v1/slices
//	GET    /api/v1/actions
//	POST   /api/v1/actions
//	GET    /api/v1/errors
//	DELETE /api/v1/errors/{key}
//	GET    /api/v1/reports
//	GET    /metrics
package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/exp/slog"

	actionsAPI "github.com/OfficialArms/virtool/internal/app/client/api/http/actions"
	errorsAPI "github.com/OfficialArms/virtool/internal/app/client/api/http/errors"
	healthAPI "github.com/OfficialArms/virtool/internal/app/client/api/http/health"
	"github.com/OfficialArms/virtool/internal/app/client/api/http/middleware"
	"github.com/OfficialArms/virtool/internal/app/client/api/http/middleware/logger"
	reportsAPI "github.com/OfficialArms/virtool/internal/app/client/api/http/reports"
	stateAPI "github.com/OfficialArms/virtool/internal/app/client/api/http/state"
	"github.com/OfficialArms/virtool/internal/domain/action"
	"github.com/OfficialArms/virtool/internal/state"
)

// Store is the part of the state container the view API uses.
type Store interface {
	State() state.Root
	Dispatch(a action.Action)
}

type Deps struct {
	Store    Store
	Registry *action.Registry
	Reports  reportsAPI.Servicer
	Gatherer prometheus.Gatherer
}

type Handlers struct {
	Health  *healthAPI.Handler
	State   *stateAPI.Handler
	Actions *actionsAPI.Handler
	Errors  *errorsAPI.Handler
	Reports *reportsAPI.Handler
}

func New(deps Deps, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("Virtool mirror API", "1.0.0")
	API := humachi.New(mux, config)

	h := handlers(deps, log)
	h.Health.SetupRoutes(API)
	h.State.SetupRoutes(API)
	h.Actions.SetupRoutes(API)
	h.Errors.SetupRoutes(API)
	h.Reports.SetupRoutes(API)

	if deps.Gatherer != nil {
		mux.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	return mux
}

func handlers(deps Deps, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(pendingOf{deps.Store}, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	stateHandler := stateAPI.NewHandler(deps.Store, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	actionsHandler := actionsAPI.NewHandler(deps.Registry, deps.Store, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	errorsHandler := errorsAPI.NewHandler(deps.Store, deps.Store, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	reportsHandler := reportsAPI.NewHandler(deps.Reports, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:  healthHandler,
		State:   stateHandler,
		Actions: actionsHandler,
		Errors:  errorsHandler,
		Reports: reportsHandler,
	}
}

type pendingOf struct {
	store Store
}

func (p pendingOf) Pending() bool {
	return p.store.State().App.Pending
}
