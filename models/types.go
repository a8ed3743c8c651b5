package models

// Domain types

type Community struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Population int64  `json:"population"`
}

type UsageRecord struct {
	ID          int64  `json:"id"`
	CommunityID int64  `json:"community_id"`
	Date        string `json:"date"`
	Usage       int64  `json:"usage"`
}

// CommunityAggregate is one row of the aggregate query: a community joined
// against the mean of its usage records (0 when none exist).
type CommunityAggregate struct {
	ID         int64
	Name       string
	Population int64
	AvgUsage   float64
}

// AllocationRow is the full derived record for one community, recomputed from
// persisted state on every read. JSON field names match the /update_data
// contract and are intentionally mixed-case.
//
// Rainfall and Temperature are display-only noise: they are drawn fresh on
// each enrichment and feed nothing downstream.
//
// Shortage compares CurrentSupply against PredictedDemand. Since both derive
// from the same Population*AvgUsage product (supply carries an extra 1.1
// factor), the flag cannot trigger for positive usage. That is a modeling
// artifact of the placeholder formulas, kept as-is.
type AllocationRow struct {
	CommunityID     int64   `json:"community_id"`
	Community       string  `json:"Community"`
	Population      int64   `json:"Population"`
	AvgUsage        float64 `json:"Avg_Usage"`
	CurrentSupply   float64 `json:"Current_Supply"`
	Rainfall        int64   `json:"Rainfall"`
	Temperature     int64   `json:"Temperature"`
	PredictedDemand float64 `json:"Predicted_Demand"`
	Shortage        bool    `json:"Shortage"`
	OptimizedShare  float64 `json:"Optimized_Share"`
	FinalSupply     float64 `json:"Final_Supply"`
	Payment         float64 `json:"Payment"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
