// Copyright (c) 2025 Sushmitha.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package allocation implements the resource-sharing calculation.

The calculation is a pure pipeline over aggregate rows; it touches neither
the database nor HTTP:

 1. Enrich: current supply = avg usage * population * 1.1, plus two
    display-only environmental placeholders drawn from an injected RNG.
 2. Allocate: predicted demand = population * avg usage, shortage flag,
    and a one-shot linear program that maximizes the total surplus
    contributed to a shared pool (gonum's simplex solver), followed by
    the derived final supply and a fixed linear tariff.

The model computes the maximum extractable surplus, not an actual
community-to-community transfer: nothing ties contributions to recipients'
shortages. Solver failures degrade to zero shares for every row so the
dashboard always renders.
*/
package allocation
