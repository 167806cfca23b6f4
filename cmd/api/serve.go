package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/Tomlord1122/activity-todo-backend/internal/config"
	"github.com/Tomlord1122/activity-todo-backend/internal/database"
	"github.com/Tomlord1122/activity-todo-backend/internal/logger"
	"github.com/Tomlord1122/activity-todo-backend/internal/observability"
	"github.com/Tomlord1122/activity-todo-backend/internal/repository"
	"github.com/Tomlord1122/activity-todo-backend/internal/server"
	"github.com/Tomlord1122/activity-todo-backend/internal/service"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.Configure(logger.Options{
		Level:   cfg.LogLevel,
		JSON:    cfg.LogJSON,
		DevMode: cfg.DevMode,
	})
	return cfg, nil
}

// buildRepositories picks the store named by cfg.DB.Driver. dbService is nil
// for the memory driver.
func buildRepositories(ctx context.Context, cfg *config.Config) (repository.ActivityRepository, repository.TodoRepository, database.Service, error) {
	if cfg.DB.Driver == config.DriverMemory {
		log.Warn().Msg("using in-memory store; data is lost on restart")
		store := repository.NewMemoryStore()
		return store.Activities(), store.Todos(), nil, nil
	}

	dbService, err := database.New(cfg.DB, cfg.DevMode)
	if err != nil {
		return nil, nil, nil, err
	}

	if cfg.DB.AutoMigrate {
		log.Info().Str("driver", cfg.DB.Driver).Msg("running database auto-migration")
		if err := dbService.Migrate(ctx); err != nil {
			_ = dbService.Close()
			return nil, nil, nil, err
		}
	}

	gormDB := dbService.GetDB()
	return repository.NewGormActivityRepository(gormDB), repository.NewGormTodoRepository(gormDB), dbService, nil
}

func gracefulShutdown(apiServer *http.Server, dbService database.Service, done chan bool) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Info().Msg("shutting down gracefully, press Ctrl+C again to force")
	stop()

	// in-flight requests get 5 seconds to finish
	ctxTimeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(ctxTimeout); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	if dbService != nil {
		if err := dbService.Close(); err != nil {
			log.Error().Err(err).Msg("error closing database connection pool")
		}
	}

	log.Info().Msg("server exiting")
	done <- true
}

func serve(c *cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	activityRepo, todoRepo, dbService, err := buildRepositories(c.Context, cfg)
	if err != nil {
		return err
	}

	apiServer := server.NewServer(cfg, server.Dependencies{
		Activities: service.NewActivityService(activityRepo),
		Todos:      service.NewTodoService(todoRepo),
		DB:         dbService,
		Metrics:    observability.NewMetrics(),
	})

	done := make(chan bool, 1)
	go gracefulShutdown(apiServer, dbService, done)

	log.Info().Str("addr", apiServer.Addr).Str("driver", cfg.DB.Driver).Msg("starting server")
	if err := apiServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "http server")
	}

	<-done
	log.Info().Msg("graceful shutdown complete")
	return nil
}

func migrate(c *cli.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.DB.Driver == config.DriverMemory {
		log.Info().Msg("memory driver has no schema to migrate")
		return nil
	}

	dbService, err := database.New(cfg.DB, cfg.DevMode)
	if err != nil {
		return err
	}
	defer dbService.Close()

	if err := dbService.Migrate(c.Context); err != nil {
		return err
	}
	log.Info().Str("driver", cfg.DB.Driver).Str("database", cfg.DB.Database).Msg("migration complete")
	return nil
}
