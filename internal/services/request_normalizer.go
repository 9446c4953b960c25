package services

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"itinero/internal/models/request_models"
	"itinero/pkg/utils"
)

// NormalizeTripRequest coerces the raw, possibly stringly-typed request into
// its canonical form. Required fields are checked in a fixed order so the
// error always names the first offender. A start date that fails to parse is
// dropped with a warning rather than rejected.
func NormalizeTripRequest(ctx context.Context, raw request_models.TravelPlanRequest) (request_models.TripRequest, error) {
	var req request_models.TripRequest

	destination := strings.TrimSpace(raw.Destination)
	if destination == "" {
		return req, utils.NewInvalidRequestError("destination", "is required")
	}

	days, ok := coerceFloat(raw.Days)
	if !ok || math.IsNaN(days) || days < 1 {
		return req, utils.NewInvalidRequestError("days", "must be a number of at least 1")
	}

	budget, ok := coerceFloat(raw.Budget)
	if !ok || math.IsNaN(budget) || budget <= 0 {
		return req, utils.NewInvalidRequestError("budget", "must be a positive number")
	}

	travelers, ok := coerceFloat(raw.Travelers)
	if !ok || math.IsNaN(travelers) || travelers < 1 {
		return req, utils.NewInvalidRequestError("travelers", "must be a number of at least 1")
	}

	preferences := strings.TrimSpace(raw.Preferences)
	if preferences == "" {
		preferences = strings.TrimSpace(raw.VoiceInput)
	}

	req = request_models.TripRequest{
		Destination:  destination,
		DurationDays: int(days),
		BudgetAmount: budget,
		PartySize:    int(travelers),
		Preferences:  preferences,
	}

	if s := strings.TrimSpace(raw.StartDate); s != "" {
		if t, err := utils.ParsePlanDate(s); err == nil {
			req.StartDate = &t
		} else {
			utils.LoggerFromContext(ctx).Warn("discarding unparsable start date",
				"start_date", s)
		}
	}

	return req, nil
}

// NormalizeBudgetRequest validates the estimate-budget body. Same field
// order and coercion rules as the plan path, minus the budget itself; the
// returned request carries a zero BudgetAmount, which this path never reads.
func NormalizeBudgetRequest(raw request_models.BudgetEstimateRequest) (request_models.TripRequest, error) {
	var req request_models.TripRequest

	destination := strings.TrimSpace(raw.Destination)
	if destination == "" {
		return req, utils.NewInvalidRequestError("destination", "is required")
	}

	days, ok := coerceFloat(raw.Days)
	if !ok || math.IsNaN(days) || days < 1 {
		return req, utils.NewInvalidRequestError("days", "must be a number of at least 1")
	}

	travelers, ok := coerceFloat(raw.Travelers)
	if !ok || math.IsNaN(travelers) || travelers < 1 {
		return req, utils.NewInvalidRequestError("travelers", "must be a number of at least 1")
	}

	req = request_models.TripRequest{
		Destination:  destination,
		DurationDays: int(days),
		PartySize:    int(travelers),
		Preferences:  strings.TrimSpace(raw.Preferences),
	}
	return req, nil
}

// coerceFloat accepts the numeric shapes a JSON body can deliver: numbers,
// json.Number, and numeric strings.
func coerceFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
