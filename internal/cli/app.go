// Package cli wires the typeahead command-line application.
package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/typeahead/internal/application/usecase"
	"github.com/bnema/typeahead/internal/cli/styles"
	"github.com/bnema/typeahead/internal/domain/build"
	"github.com/bnema/typeahead/internal/domain/repository"
	"github.com/bnema/typeahead/internal/infrastructure/config"
	"github.com/bnema/typeahead/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/typeahead/internal/logging"
)

// Options selects where the application reads its configuration.
type Options struct {
	// ConfigFile overrides the XDG config location.
	ConfigFile string
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info
	db        *sqlite.LazyDB
	History   repository.HistoryRepository

	// Use cases
	ManageHistoryUC *usecase.ManageHistoryUseCase

	// Context with logger
	ctx        context.Context
	logCleanup func() error
}

// NewApp creates a new CLI application with all dependencies.
// The history database is opened lazily on first use.
func NewApp(opts Options) (*App, error) {
	bootCtx := logging.WithContext(context.Background(), logging.NewFromEnv())

	mgr, err := config.NewManager(bootCtx, opts.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logFile := cfg.Logging.File
	if logFile == "" {
		if logFile, err = config.GetLogFile(); err != nil {
			return nil, fmt.Errorf("resolve log file: %w", err)
		}
	}
	logCfg := logging.Config{
		Level:      logging.ParseLevel(cfg.Logging.Level, zerolog.InfoLevel),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	}
	logger, logCleanup, err := logging.NewWithFile(logCfg, logging.FileConfig{
		Path:       logFile,
		PerSession: cfg.Logging.PerSession,
	})
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	ctx := logging.WithContext(context.Background(), logger)

	db := sqlite.NewLazyDB(cfg.History.Path)
	historyRepo := sqlite.NewHistoryRepository(db)

	logger.Debug().
		Str("config", mgr.GetConfigFile()).
		Str("history", cfg.History.Path).
		Msg("app initialized")

	return &App{
		Config:          cfg,
		Manager:         mgr,
		Theme:           styles.NewTheme(cfg),
		db:              db,
		History:         historyRepo,
		ManageHistoryUC: usecase.NewManageHistoryUseCase(historyRepo),
		ctx:             ctx,
		logCleanup:      logCleanup,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	var err error
	if a.db != nil {
		err = a.db.Close()
	}
	if a.logCleanup != nil {
		if cerr := a.logCleanup(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// HistoryInfo describes the history database.
type HistoryInfo struct {
	Path          string
	Entries       int64
	SchemaVersion int64
}

// HistoryInfo opens the history database if needed and reports its state.
func (a *App) HistoryInfo(ctx context.Context) (HistoryInfo, error) {
	info := HistoryInfo{Path: a.db.Path()}

	db, err := a.db.DB(ctx)
	if err != nil {
		return info, err
	}
	if info.SchemaVersion, err = sqlite.GetMigrationStatus(ctx, db); err != nil {
		return info, err
	}
	if info.Entries, err = a.History.Count(ctx); err != nil {
		return info, fmt.Errorf("count history: %w", err)
	}
	return info, nil
}
