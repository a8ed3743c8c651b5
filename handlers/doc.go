// Copyright (c) 2025 Sushmitha.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers.

# Handler Types

  - DashboardHandler: GET / (HTML table) and GET /update_data (JSON
    snapshot). Both recompute the allocation from current persisted state
    on every call; nothing is cached.
  - CommunityHandler: POST /add_community (insert-if-absent) and
    POST /add_usage (append record for an existing community).

# Conventions

Handlers validate input first, log failures with slog, and respond through
middleware.ErrorResponse. The aggregate query lives in aggregates.go; the
actual allocation math lives in the allocation package.
*/
package handlers
