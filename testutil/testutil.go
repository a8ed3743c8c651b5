// Copyright (c) 2025 Sushmitha.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/sushmitha-129/ai-powered-water-resourse-management/cliparse"
	"github.com/sushmitha-129/ai-powered-water-resourse-management/db"
)

// SetupTestDB creates a fresh in-memory database with the full schema.
// MaxOpenConns is pinned to 1 so every query sees the same :memory: database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         5000,
		DatabasePath: ":memory:",
	}
}

// FixedRand returns a deterministically seeded random source so tests get
// reproducible rainfall/temperature values.
func FixedRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 13))
}

// AddTestCommunity inserts a community and returns its id
func AddTestCommunity(t *testing.T, conn *sql.DB, name string, population int64) int64 {
	t.Helper()

	res, err := conn.Exec(`
		INSERT INTO communities (name, population)
		VALUES (?, ?)
	`, name, population)
	if err != nil {
		t.Fatalf("Failed to create test community: %v", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read community id: %v", err)
	}
	return id
}

// AddTestUsage inserts a usage record for a community
func AddTestUsage(t *testing.T, conn *sql.DB, communityID int64, date string, usage int64) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO water_usage (community_id, date, usage)
		VALUES (?, ?, ?)
	`, communityID, date, usage)
	if err != nil {
		t.Fatalf("Failed to create test usage record: %v", err)
	}
}

// CountCommunities returns the number of registered communities
func CountCommunities(t *testing.T, conn *sql.DB) int {
	t.Helper()

	var count int
	if err := conn.QueryRow("SELECT COUNT(*) FROM communities").Scan(&count); err != nil {
		t.Fatalf("Failed to count communities: %v", err)
	}
	return count
}

// MakeFormRequest creates an HTTP test request with url-encoded form data
func MakeFormRequest(method, path string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
