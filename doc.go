// Copyright (c) 2025 Sushmitha.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the community water allocation
server.

The service registers communities, records their daily water usage, and
recomputes a surplus-redistribution allocation table on every page load.
Surplus redistribution is a one-shot linear program: each community may
contribute at most its own surplus (current supply minus predicted demand)
to a shared pool, and the solver maximizes the total contribution.

# Starting the Server

	go run main.go

Or with flags:

	go run main.go -p 5000 -d /var/lib/water/database.db

# Configuration

Optional settings (flags override environment):

  - PORT (-p): server port (default: 5000)
  - DATABASE_PATH (-d): SQLite file path (default: database.db, created
    on first start)

A .env file in the working directory is loaded if present.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - allocation: the demand/allocation calculation (pure functions)
  - handlers: HTTP request handlers (dashboard, community mutations)
  - router: route definitions using Go 1.22+ routing
  - middleware: logging, JSON helpers, form parsing
  - models: domain and response types
  - db: schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
