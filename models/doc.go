// Copyright (c) 2025 Sushmitha.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain and response types for the service.

# Domain Types

  - Community: registered consumer entity with a population size
  - UsageRecord: one observed daily water-consumption reading
  - CommunityAggregate: community joined with its mean historical usage
  - AllocationRow: full derived record combining aggregates with
    optimization outputs, produced fresh on every read

# Response Types

  - ErrorResponse: error, message

AllocationRow's JSON tags (Community, Population, Avg_Usage, ...) are the
wire contract of GET /update_data and deliberately keep their original
mixed-case names.
*/
package models
