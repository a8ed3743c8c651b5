// Copyright (c) 2025 Sushmitha.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"math/rand/v2"
	"net/http"

	"github.com/sushmitha-129/ai-powered-water-resourse-management/cliparse"
	"github.com/sushmitha-129/ai-powered-water-resourse-management/middleware"
)

type DashboardHandler struct {
	db  *sql.DB
	cfg cliparse.Config
	rng *rand.Rand
}

// NewDashboardHandler creates the read-side handler. The rng feeds the
// display-only environmental fields; inject a seeded source in tests.
func NewDashboardHandler(db *sql.DB, cfg cliparse.Config, rng *rand.Rand) *DashboardHandler {
	return &DashboardHandler{db: db, cfg: cfg, rng: rng}
}

// Index handles GET /
// Renders the allocation table and the two entry forms as HTML.
func (h *DashboardHandler) Index(w http.ResponseWriter, r *http.Request) {
	rows, err := ComputeAllocation(h.db, h.rng)
	if err != nil {
		slog.Error("failed to compute allocation", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTmpl.Execute(w, rows); err != nil {
		slog.Error("failed to render dashboard", "error", err)
	}
}

// UpdateData handles GET /update_data
// Returns the freshly recomputed allocation table as a JSON array.
func (h *DashboardHandler) UpdateData(w http.ResponseWriter, r *http.Request) {
	rows, err := ComputeAllocation(h.db, h.rng)
	if err != nil {
		slog.Error("failed to compute allocation", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, rows)
}
