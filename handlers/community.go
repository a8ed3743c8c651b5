// Copyright (c) 2025 Sushmitha.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/sushmitha-129/ai-powered-water-resourse-management/cliparse"
	"github.com/sushmitha-129/ai-powered-water-resourse-management/middleware"
)

type CommunityHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewCommunityHandler(db *sql.DB, cfg cliparse.Config) *CommunityHandler {
	return &CommunityHandler{db: db, cfg: cfg}
}

// AddCommunity handles POST /add_community
// Registers a community unless the name is already taken; a duplicate name is
// a silent no-op, not an error.
func (h *CommunityHandler) AddCommunity(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	name := r.PostFormValue("name")
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	population, err := middleware.FormInt(r, "population")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if population < 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "population must be non-negative")
		return
	}

	_, err = h.db.Exec(`
		INSERT OR IGNORE INTO communities (name, population)
		VALUES (?, ?)
	`, name, population)

	if err != nil {
		slog.Error("failed to insert community", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add community")
		return
	}

	slog.Info("community added", "name", name, "population", population)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// AddUsage handles POST /add_usage
// Appends a daily usage record for an existing community.
func (h *CommunityHandler) AddUsage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid form data")
		return
	}

	communityID, err := middleware.FormInt(r, "community_id")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	date := r.PostFormValue("date")
	if date == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "date is required")
		return
	}

	usage, err := middleware.FormInt(r, "usage")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	exists, err := communityExists(h.db, communityID)
	if err != nil {
		slog.Error("failed to query community", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusNotFound, "Community not found")
		return
	}

	_, err = h.db.Exec(`
		INSERT INTO water_usage (community_id, date, usage)
		VALUES (?, ?, ?)
	`, communityID, date, usage)

	if err != nil {
		slog.Error("failed to insert usage record", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to add usage record")
		return
	}

	slog.Info("usage recorded", "community_id", communityID, "date", date, "usage", usage)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
