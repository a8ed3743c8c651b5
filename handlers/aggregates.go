// Copyright (c) 2025 Sushmitha.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"math/rand/v2"

	"github.com/sushmitha-129/ai-powered-water-resourse-management/allocation"
	"github.com/sushmitha-129/ai-powered-water-resourse-management/models"
)

// ComputeAllocation recomputes the full allocation table from current
// persisted state: aggregates, enrichment, then the surplus optimization.
// No result is cached between calls; every read reflects the latest writes.
func ComputeAllocation(db *sql.DB, rng *rand.Rand) ([]models.AllocationRow, error) {
	aggs, err := fetchAggregates(db)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch aggregates: %w", err)
	}
	return allocation.Allocate(allocation.Enrich(aggs, rng)), nil
}

// fetchAggregates returns every community with the mean of its usage records.
// The LEFT JOIN keeps communities that have no usage rows yet; their average
// reads as 0.
func fetchAggregates(db *sql.DB) ([]models.CommunityAggregate, error) {
	rows, err := db.Query(`
		SELECT com.id, com.name, com.population, IFNULL(AVG(w.usage), 0)
		FROM communities com
		LEFT JOIN water_usage w ON com.id = w.community_id
		GROUP BY com.id
		ORDER BY com.id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	aggs := []models.CommunityAggregate{}
	for rows.Next() {
		var agg models.CommunityAggregate
		if err := rows.Scan(&agg.ID, &agg.Name, &agg.Population, &agg.AvgUsage); err != nil {
			return nil, err
		}
		aggs = append(aggs, agg)
	}

	return aggs, rows.Err()
}

// communityExists reports whether a community id is registered.
func communityExists(db *sql.DB, communityID int64) (bool, error) {
	var one int
	err := db.QueryRow("SELECT 1 FROM communities WHERE id = ?", communityID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
