// Chartkitchen - Chart Recommendation Engine for Tabular Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/chartkitchen

/*
Package supervisor runs Chartkitchen's long-lived services under suture v4.

# Overview

Services are grouped into two layers so a failing maintenance task cannot take
the API down with it:

	RootSupervisor ("chartkitchen")
	├── DataSupervisor ("data-layer")
	│   └── PruneService (dataset cache, when datasets are enabled)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff. Supervisor events are
logged through sutureslog, which writes to the zerolog handler from
internal/logging.

# Usage

	logger := slog.New(logging.NewSlogHandler(logging.Logger()))
	tree, err := supervisor.NewSupervisorTree(logger, supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}

# Configuration

TreeConfig zero values fall back to suture's defaults: failure threshold 5,
decay 30s, backoff 15s and a 10s shutdown timeout.
*/
package supervisor
