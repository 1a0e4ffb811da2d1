// Command server runs the parkstats HTTP API.
//
// @title       parkstats API
// @version     1.0
// @description Theme-park destinations, ride wait statistics, schedules and live status, plus on-device pins and preferences.
// @BasePath    /api/v1
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/tbourn/parkstats-backend/internal/cache"
	"github.com/tbourn/parkstats-backend/internal/config"
	"github.com/tbourn/parkstats-backend/internal/geocode"
	httpapi "github.com/tbourn/parkstats-backend/internal/http"
	"github.com/tbourn/parkstats-backend/internal/observability"
	"github.com/tbourn/parkstats-backend/internal/repo"
	"github.com/tbourn/parkstats-backend/internal/services"
	"github.com/tbourn/parkstats-backend/internal/store"
	"github.com/tbourn/parkstats-backend/internal/sysutil"
	"github.com/tbourn/parkstats-backend/internal/themeparks"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

const shutdownTimeout = 10 * time.Second

func main() {
	// A missing .env is fine; the environment wins either way.
	_ = godotenv.Load()

	cfg := config.MustLoad()
	sysutil.SetupLogger(os.Stdout, cfg.LogPretty)
	sysutil.SetLogLevel(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run(ctx context.Context, cfg config.Config) error {
	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		return err
	}
	defer func() {
		if err := observability.WithTimeout(shutdownOTel, shutdownTimeout)(); err != nil {
			log.Warn().Err(err).Msg("otel shutdown")
		}
	}()

	// Local key-value store (pins, preferences)
	localDB, err := repo.OpenSQLite(cfg.LocalDBPath)
	if err != nil {
		return err
	}
	defer closeDB(localDB, "local")
	if err := repo.AutoMigrate(localDB); err != nil {
		return err
	}

	// Remote relational store
	remoteDB, err := store.Open(cfg.RemoteDB.Driver, cfg.RemoteDB.DSN)
	if err != nil {
		return err
	}
	defer closeDB(remoteDB, "remote")

	parks, err := themeparks.New(themeparks.Options{
		BaseURL: cfg.Upstream.ThemeParksBaseURL,
		Timeout: cfg.Upstream.Timeout,
		RPS:     cfg.Upstream.ThemeParksRPS,
	})
	if err != nil {
		return err
	}
	geo := geocode.New(geocode.Options{
		BaseURL:   cfg.Upstream.GeocodeBaseURL,
		UserAgent: cfg.Upstream.GeocodeUserAgent,
		Timeout:   cfg.Upstream.Timeout,
		RPS:       cfg.Upstream.GeocodeRPS,
	})

	qc := cache.New(cache.Config{
		MaxEntries:  cfg.Cache.MaxEntries,
		IdleTimeout: cfg.Cache.IdleTimeout,
		Tick:        cfg.Cache.Tick,
	})
	defer qc.Close()
	go qc.Run(ctx)

	prefs := repo.LoadPreferences(ctx, localDB)
	defer prefs.Close()

	queries := services.NewQueryService(store.NewClient(remoteDB), parks, geo, qc)
	pins := services.NewPinService(repo.NewPinStores(localDB), queries)

	r := gin.New()
	httpapi.RegisterRoutes(r, cfg, httpapi.Deps{
		Queries: queries,
		Pins:    pins,
		Prefs:   prefs,
		LocalStats: func(ctx context.Context) (int64, *time.Time, error) {
			return repo.KVStats(ctx, localDB, "")
		},
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("version", version).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return err
	}

	// Push the latest preferences before the local DB closes.
	if err := prefs.Flush(sctx); err != nil {
		log.Warn().Err(err).Msg("preferences flush")
	}
	return nil
}

func closeDB(db *gorm.DB, name string) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Warn().Err(err).Str("db", name).Msg("close")
	}
}
