package app

import (
	"context"
	"fmt"
	"os"

	"github.com/hibiken/asynq"
	log "github.com/sirupsen/logrus"

	"palette/internal/config"
	"palette/internal/search"
	"palette/internal/services"
	"palette/internal/store"
	"palette/internal/store/memory"
	"palette/internal/store/primary"
)

type App struct {
	Config *config.Config

	CollectionStore    store.CollectionStore
	SearchHistoryStore store.SearchHistoryStore
	JobClient          store.JobClient // nil when redis is not configured

	Ranker        *search.Ranker
	SearchService *services.SearchService

	closers []func()
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	if err := app.initStores(ctx); err != nil {
		return nil, err
	}
	if err := app.initJobClient(); err != nil {
		app.Close()
		return nil, err
	}
	app.initCoreServices()

	log.Debug("Application initialization complete.")
	return app, nil
}

// ConfigureLogging applies log.level and log.format.
func ConfigureLogging(cfg *config.Config) error {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)
	if cfg.Log.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return nil
}

// --- Private Helper Methods ---

func (a *App) initStores(ctx context.Context) error {
	dsn := a.Config.Database.Primary.DSN
	if dsn == "" {
		log.Info("No database configured, serving built-in fixture collections")
		ms := memory.NewSeededStore()
		a.CollectionStore = ms
		a.SearchHistoryStore = ms
		return nil
	}

	ps, err := primary.NewPrimaryStore(ctx, dsn)
	if err != nil {
		return fmt.Errorf("init primary store: %w", err)
	}
	a.closers = append(a.closers, ps.Close)
	if err := ps.Migrate(ctx); err != nil {
		a.Close()
		return fmt.Errorf("migrate primary store: %w", err)
	}
	a.CollectionStore = ps
	a.SearchHistoryStore = ps
	return nil
}

func (a *App) initJobClient() error {
	if !a.Config.QueuedHistory() {
		if a.Config.Redis.Address != "" {
			// the worker cannot see this process's in-memory store
			log.Warn("Redis is configured without database.primary.dsn; search history is recorded in this process instead of queued")
		} else {
			log.Debug("Redis not configured, search history is recorded synchronously")
		}
		return nil
	}
	jc, err := store.NewAsynqJobClient(a.RedisOpt())
	if err != nil {
		return fmt.Errorf("init job client: %w", err)
	}
	a.JobClient = jc
	a.closers = append(a.closers, func() {
		if err := jc.Close(); err != nil {
			log.WithError(err).Warn("Failed to close job client")
		}
	})
	return nil
}

func (a *App) initCoreServices() {
	cfg := a.Config
	a.Ranker = search.NewRanker(cfg.RankerOptions()...)

	var recorder services.HistoryRecorder
	if a.JobClient != nil {
		recorder = services.NewQueuedHistoryRecorder(a.JobClient)
	} else {
		recorder = services.NewDirectHistoryRecorder(a.SearchHistoryStore)
	}

	a.SearchService = services.NewSearchService(
		a.CollectionStore,
		a.Ranker,
		a.SearchHistoryStore,
		recorder,
		services.SearchPolicy{
			DefaultLimit: cfg.Search.DefaultLimit,
			MinRelevance: cfg.Search.MinRelevance,
			EmptyQuery:   services.EmptyQueryPolicy(cfg.Search.EmptyQuery),
		},
	)
}

// RedisOpt is the connection shared by the job client and the worker.
func (a *App) RedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     a.Config.Redis.Address,
		Password: a.Config.Redis.Password,
		DB:       a.Config.Redis.DB,
	}
}

// Close releases connections in reverse order of acquisition.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
