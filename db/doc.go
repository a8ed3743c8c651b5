// Copyright (c) 2025 Sushmitha.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

The store is a local SQLite file (modernc.org/sqlite driver). Two relations:

  - communities: id, name (unique), population
  - water_usage: id, community_id -> communities(id), date, usage

CreateSchema is idempotent and runs on every startup.
*/
package db
