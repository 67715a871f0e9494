// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/chartkitchen/docs" // Import generated swagger docs
	"github.com/tomtom215/chartkitchen/internal/api"
	"github.com/tomtom215/chartkitchen/internal/config"
	"github.com/tomtom215/chartkitchen/internal/dataset"
	"github.com/tomtom215/chartkitchen/internal/logging"
	"github.com/tomtom215/chartkitchen/internal/recipe"
	"github.com/tomtom215/chartkitchen/internal/supervisor"
	"github.com/tomtom215/chartkitchen/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(cfg.LogConfig())
	logging.Info().Msg("Starting Chartkitchen with supervisor tree")

	engine, err := recipe.NewEngine(cfg.EngineConfig(), logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recipe engine")
	}
	logging.Info().
		Int("recipes", len(engine.Catalog())).
		Float64("min_confidence", cfg.Recipe.MinConfidence).
		Int("top_n", cfg.Recipe.TopN).
		Msg("Recipe engine initialized")

	seed := cfg.Recipe.LabelSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	labeler := recipe.NewLabeler(rand.NewSource(seed))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	var handlerOpts []api.HandlerOption
	if cfg.Dataset.Enabled {
		source, closeSource, err := buildDatasetSource(cfg)
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to initialize dataset source")
		}
		defer closeSource()

		handlerOpts = append(handlerOpts, api.WithDatasetSource(source))
		tree.AddDataService(services.NewPruneService("dataset-cache-pruner", source, cfg.Dataset.CachePruneInterval, logging.Logger()))
		logging.Info().
			Str("root", cfg.Dataset.RootDir).
			Int("sample_rows", cfg.Dataset.SampleRows).
			Dur("cache_ttl", cfg.Dataset.CacheTTL).
			Msg("Dataset loading enabled")
	} else {
		logging.Info().Msg("Dataset loading disabled (DATASET_ENABLED=false)")
	}

	handler := api.NewHandler(engine, labeler, logging.Logger(), handlerOpts...)
	router := api.NewRouter(handler, routerConfig(cfg), logging.Logger())

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout,
		services.WithHTTPLogger(logging.Logger())))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	var treeErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish...")
		treeErr = <-errCh
	case treeErr = <-errCh:
	}
	stop()

	if treeErr != nil && !errors.Is(treeErr, context.Canceled) {
		logging.Error().Err(treeErr).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}

// buildDatasetSource stacks the DuckDB loader behind a circuit breaker and a
// TTL cache. The returned func closes the DuckDB connection.
func buildDatasetSource(cfg *config.Config) (*dataset.CachedSource, func(), error) {
	srcCfg := cfg.DatasetSourceConfig()

	if info, err := os.Stat(srcCfg.RootDir); err != nil || !info.IsDir() {
		return nil, nil, fmt.Errorf("dataset root %q is not a readable directory", srcCfg.RootDir)
	}

	duck, err := dataset.NewDuckDBSource(srcCfg, logging.Logger())
	if err != nil {
		return nil, nil, err
	}

	closeFn := func() {
		if err := duck.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing dataset source")
		}
	}

	cached := dataset.NewCachedSource(dataset.NewBreakerSource(duck, srcCfg), srcCfg)
	return cached, closeFn, nil
}

func routerConfig(cfg *config.Config) api.RouterConfig {
	mw := api.DefaultChiMiddlewareConfig()
	mw.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mw.RateLimitRequests = cfg.Security.RateLimitReqs
	mw.RateLimitWindow = cfg.Security.RateLimitWindow
	mw.RateLimitDisabled = cfg.Security.RateLimitDisabled

	return api.RouterConfig{
		Middleware:   mw,
		MaxBodyBytes: cfg.Security.MaxBodyBytes,
	}
}
