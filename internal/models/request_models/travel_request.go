package request_models

import "time"

// TravelPlanRequest is the raw body of POST /api/travel/plan. Clients send
// the numeric fields as either JSON numbers or strings, so they are bound
// loosely and coerced by the normalizer.
type TravelPlanRequest struct {
	Destination string `json:"destination"`
	Days        any    `json:"days"`
	Budget      any    `json:"budget"`
	Travelers   any    `json:"travelers"`
	Preferences string `json:"preferences"`
	VoiceInput  string `json:"voice_input"`
	StartDate   string `json:"start_date"`
}

// BudgetEstimateRequest is the raw body of POST /api/travel/estimate-budget.
type BudgetEstimateRequest struct {
	Destination string `json:"destination"`
	Days        any    `json:"days"`
	Travelers   any    `json:"travelers"`
	Preferences string `json:"preferences"`
}

// TripRequest is the canonical, validated form of a generation request.
// Built once per call and never mutated afterwards.
type TripRequest struct {
	Destination  string
	DurationDays int
	BudgetAmount float64
	PartySize    int
	Preferences  string
	StartDate    *time.Time
}
