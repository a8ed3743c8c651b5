// Copyright (c) 2025 Sushmitha.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/sushmitha-129/ai-powered-water-resourse-management/models"
)

func TestJSONResponse(t *testing.T) {
	w := httptest.NewRecorder()

	JSONResponse(w, http.StatusCreated, map[string]string{"hello": "world"})

	if w.Code != http.StatusCreated {
		t.Errorf("expected status 201, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %s", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["hello"] != "world" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()

	ErrorResponse(w, http.StatusBadRequest, "population must be an integer")

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}

	var body models.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Error != http.StatusText(http.StatusBadRequest) {
		t.Errorf("expected error %q, got %q", http.StatusText(http.StatusBadRequest), body.Error)
	}
	if body.Message != "population must be an integer" {
		t.Errorf("unexpected message: %q", body.Message)
	}
}

func TestFormInt(t *testing.T) {
	tests := []struct {
		name    string
		form    url.Values
		field   string
		want    int64
		wantErr bool
	}{
		{name: "valid", form: url.Values{"population": {"1200"}}, field: "population", want: 1200},
		{name: "negative", form: url.Values{"usage": {"-3"}}, field: "usage", want: -3},
		{name: "missing", form: url.Values{}, field: "population", wantErr: true},
		{name: "not a number", form: url.Values{"population": {"many"}}, field: "population", wantErr: true},
		{name: "float rejected", form: url.Values{"usage": {"3.5"}}, field: "usage", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/", strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			got, err := FormInt(req, tt.field)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got value %d", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestWithLoggingPassesThrough(t *testing.T) {
	called := false
	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest("GET", "/update_data", nil))

	if !called {
		t.Error("wrapped handler was not invoked")
	}
	if w.Code != http.StatusTeapot {
		t.Errorf("expected status 418, got %d", w.Code)
	}
}
