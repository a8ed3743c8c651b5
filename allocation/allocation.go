// Copyright (c) 2025 Sushmitha.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package allocation

import (
	"log/slog"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/sushmitha-129/ai-powered-water-resourse-management/models"
)

const (
	// surplusFactor pads average usage into a nominal current supply,
	// assuming 10% extra headroom over the historical mean.
	surplusFactor = 1.1

	// tariffRate is the fixed price per unit of final supply; payment is
	// scaled down by paymentScale for display.
	tariffRate   = 0.5
	paymentScale = 1000
)

// Display-noise ranges for the environmental placeholder fields.
const (
	rainfallMax    = 20
	temperatureMin = 25
	temperatureMax = 35
)

// Enrich expands aggregate rows into partial allocation rows: current supply
// from the placeholder formula, plus rainfall and temperature drawn from rng.
//
// The two environmental fields are display-only noise. They influence no
// downstream computation; rng is injected so callers (and tests) control
// reproducibility.
func Enrich(aggs []models.CommunityAggregate, rng *rand.Rand) []models.AllocationRow {
	rows := make([]models.AllocationRow, 0, len(aggs))
	for _, agg := range aggs {
		rows = append(rows, models.AllocationRow{
			CommunityID:   agg.ID,
			Community:     agg.Name,
			Population:    agg.Population,
			AvgUsage:      agg.AvgUsage,
			CurrentSupply: agg.AvgUsage * float64(agg.Population) * surplusFactor,
			Rainfall:      rng.Int64N(rainfallMax),
			Temperature:   temperatureMin + rng.Int64N(temperatureMax-temperatureMin),
		})
	}
	return rows
}

// Allocate fills in the optimization outputs for the enriched rows and
// returns them.
//
// With no communities, or zero total usage, optimization is skipped entirely
// and every row degrades to zero demand, zero share, and zero payment. This
// avoids solving a degenerate all-zero program.
//
// Otherwise each community's demand is predicted as population * avg usage,
// and a linear program maximizes the total surplus contributed to the shared
// pool, each community bounded by its own surplus. The objective is a pure
// sum: it is indifferent to which community surplus comes from, so ties among
// degenerate optima are resolved arbitrarily by the solver.
func Allocate(rows []models.AllocationRow) []models.AllocationRow {
	totalUsage := 0.0
	for i := range rows {
		totalUsage += rows[i].AvgUsage
	}

	if len(rows) == 0 || totalUsage == 0 {
		// No historical data yet
		for i := range rows {
			rows[i].PredictedDemand = 0
			rows[i].Shortage = false
			rows[i].OptimizedShare = 0
			rows[i].FinalSupply = rows[i].CurrentSupply
			rows[i].Payment = 0
		}
		return rows
	}

	surplus := make([]float64, len(rows))
	for i := range rows {
		rows[i].PredictedDemand = float64(rows[i].Population) * rows[i].AvgUsage
		rows[i].Shortage = rows[i].CurrentSupply < rows[i].PredictedDemand
		surplus[i] = math.Max(0, rows[i].CurrentSupply-rows[i].PredictedDemand)
	}

	shares, err := solveShares(surplus)
	if err != nil {
		// The program is always feasible (all-zero shares satisfy every
		// constraint), but a solver failure must never take down the view.
		slog.Error("surplus redistribution solve failed, using zero shares", "error", err)
		shares = make([]float64, len(rows))
	}

	for i := range rows {
		rows[i].OptimizedShare = shares[i]
		rows[i].FinalSupply = rows[i].CurrentSupply - rows[i].OptimizedShare
		rows[i].Payment = rows[i].FinalSupply * tariffRate / paymentScale
	}
	return rows
}

// solveShares maximizes the total contributed surplus subject to
// 0 <= give_i <= surplus[i] for every community.
//
// lp.Simplex solves min c'x subject to Ax = b, x >= 0, so the problem is
// encoded in standard form: negate the objective and add one slack variable
// per community (give_i + slack_i = surplus_i).
func solveShares(surplus []float64) ([]float64, error) {
	n := len(surplus)

	c := make([]float64, 2*n)
	b := make([]float64, n)
	a := mat.NewDense(n, 2*n, nil)
	for i, s := range surplus {
		c[i] = -1
		a.Set(i, i, 1)
		a.Set(i, n+i, 1)
		b[i] = s
	}

	_, x, err := lp.Simplex(c, a, b, 0, nil)
	if err != nil {
		return nil, err
	}
	return x[:n], nil
}
