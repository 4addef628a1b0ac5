package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"

	"github.com/OfficialArms/virtool/internal/app/client/api"
	"github.com/OfficialArms/virtool/internal/app/client/config"
	"github.com/OfficialArms/virtool/internal/domain/action"
	"github.com/OfficialArms/virtool/internal/domain/apierror"
	"github.com/OfficialArms/virtool/internal/domain/effect"
	"github.com/OfficialArms/virtool/internal/domain/report"
	"github.com/OfficialArms/virtool/internal/domain/store"
	"github.com/OfficialArms/virtool/internal/infrastructure/metrics"
	"github.com/OfficialArms/virtool/internal/infrastructure/storage/postgres"
	"github.com/OfficialArms/virtool/internal/infrastructure/storage/sqlite"
	"github.com/OfficialArms/virtool/internal/infrastructure/virtool"
	"github.com/OfficialArms/virtool/internal/infrastructure/ws"
	"github.com/OfficialArms/virtool/internal/state"
)

const (
	reportRingSize  = 500
	shutdownTimeout = 5 * time.Second
)

// App is the mirror daemon: one store, its effect runner, the push listener
// and the local view API.
type App struct {
	config    *config.Config
	log       *slog.Logger
	store     *store.Store[state.Root]
	runner    *effect.Runner
	caller    effect.Caller
	listener  *ws.Listener
	reports   *report.Service
	snapshots *Snapshotter
	server    *http.Server
	registry  *prometheus.Registry
	metrics   *metrics.Metrics
	closers   []func() error
}

type options struct {
	caller   effect.Caller
	noPush   bool
	noServer bool
}

type Option func(*options)

// WithCaller replaces the Virtool HTTP client.
func WithCaller(c effect.Caller) Option {
	return func(o *options) { o.caller = c }
}

// WithoutPush disables the WebSocket listener.
func WithoutPush() Option {
	return func(o *options) { o.noPush = true }
}

// WithoutServer disables the view API listener.
func WithoutServer() Option {
	return func(o *options) { o.noServer = true }
}

func New(ctx context.Context, cfg *config.Config, log *slog.Logger, opts ...Option) (*App, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	app := &App{
		config:   cfg,
		log:      log,
		registry: prometheus.NewRegistry(),
	}

	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	app.metrics = metrics.New(app.registry)

	repo, err := app.reportRepository(ctx)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.reports = report.NewService(repo, log, app.metrics)

	initial := state.Initial()
	if cfg.SnapshotInterval > 0 {
		snap, err := sqlite.NewSnapshotStorage(cfg.SnapshotPath)
		if err != nil {
			log.Warn("snapshot cache unavailable, starting cold", "error", err)
		} else {
			app.closers = append(app.closers, snap.Close)
			app.snapshots = NewSnapshotter(snap, cfg.SnapshotEvery(), log)
			initial = app.snapshots.Restore(ctx, initial)
		}
	}

	app.store = store.New(log, state.Reduce, initial)

	app.caller = o.caller
	if app.caller == nil {
		app.caller = virtool.NewClient(cfg, log)
	}

	app.runner = effect.NewRunner(app.store, log, effect.WithMetrics(app.metrics))
	if err := app.runner.Bind(state.Bindings(app.caller)...); err != nil {
		app.Close()
		return nil, fmt.Errorf("bind effects: %w", err)
	}

	app.store.Use(app.metrics)
	app.store.Use(app.runner)
	app.store.Use(apierror.NewForwarder(func(f action.Failed) {
		app.reports.Report(report.FromFailed(f))
	}))

	if !o.noPush {
		router := ws.NewRouter(state.PushDecoders(), app.store, log, app.metrics)
		app.listener = ws.NewListener(cfg.PushURL(), ws.BasicAuth(cfg.User, cfg.APIKey), router, cfg.ReconnectAfter(), log, app.metrics)
	}

	if !o.noServer {
		mux := api.New(api.Deps{
			Store:    app.store,
			Registry: state.NewRegistry(),
			Reports:  app.reports,
			Gatherer: app.registry,
		}, log)

		app.server = &http.Server{
			Addr:              cfg.ListenAddress,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		}
	}

	return app, nil
}

func (a *App) reportRepository(ctx context.Context) (report.Repository, error) {
	if a.config.DatabaseURI == "" {
		return report.NewMemoryRepository(reportRingSize), nil
	}

	db, err := postgres.New(ctx, a.config)
	if err != nil {
		return nil, fmt.Errorf("report storage: %w", err)
	}
	a.closers = append(a.closers, db.Close)

	return postgres.NewReportRepository(db, a.log), nil
}

// Run starts every component and blocks until ctx is done or one of them
// fails.
func (a *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return a.store.Run(ctx) })
	g.Go(func() error { return a.reports.Run(ctx) })

	g.Go(func() error {
		<-ctx.Done()
		a.runner.Close()
		return nil
	})

	if a.listener != nil {
		g.Go(func() error { return a.listener.Run(ctx) })
	}

	if a.snapshots != nil {
		g.Go(func() error { return a.snapshots.Run(ctx, a.store) })
	}

	if a.server != nil {
		g.Go(func() error {
			a.log.Info("view API listening", "addr", a.server.Addr)
			if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("view API: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return a.server.Shutdown(shutdownCtx)
		})
	}

	a.log.Info("daemon started",
		"server", a.config.ServerAddress,
		"env", a.config.Env,
	)

	err := g.Wait()
	a.log.Info("daemon stopped")
	return err
}

// RunWithSignals is Run canceled by SIGINT or SIGTERM.
func (a *App) RunWithSignals(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.Run(ctx)
}

func (a *App) Store() *store.Store[state.Root] {
	return a.store
}

func (a *App) Dispatch(act action.Action) {
	a.store.Dispatch(act)
}

func (a *App) Reports() *report.Service {
	return a.reports
}

// Close releases storage handles. Run must have returned.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.log.Warn("close failed", "error", err)
		}
	}
	a.closers = nil
}
