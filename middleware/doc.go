// Copyright (c) 2025 Sushmitha.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package middleware provides request logging and small HTTP helpers:
// JSON responses, error envelopes, and form-field parsing.
package middleware
