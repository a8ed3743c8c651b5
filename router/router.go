// Copyright (c) 2025 Sushmitha.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"math/rand/v2"
	"net/http"

	"github.com/sushmitha-129/ai-powered-water-resourse-management/cliparse"
	"github.com/sushmitha-129/ai-powered-water-resourse-management/handlers"
	"github.com/sushmitha-129/ai-powered-water-resourse-management/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	return newRouter(db, cfg, rng)
}

// newRouter takes the random source explicitly so tests can seed it.
func newRouter(db *sql.DB, cfg cliparse.Config, rng *rand.Rand) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	dashboardHandler := handlers.NewDashboardHandler(db, cfg, rng)
	communityHandler := handlers.NewCommunityHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Dashboard (reads always recompute from persisted state)
	mux.HandleFunc("GET /{$}", middleware.WithLogging(dashboardHandler.Index))
	mux.HandleFunc("GET /update_data", middleware.WithLogging(dashboardHandler.UpdateData))

	// Mutations (form POSTs, redirect back to the dashboard)
	mux.HandleFunc("POST /add_community", middleware.WithLogging(communityHandler.AddCommunity))
	mux.HandleFunc("POST /add_usage", middleware.WithLogging(communityHandler.AddUsage))

	return mux
}
