package services

import (
	"time"

	"itinero/internal/models/request_models"
	"itinero/internal/models/response_models"
	"itinero/pkg/utils"
)

// buildPlanFromJSON normalizes a decoded completion object into a TravelPlan.
// Missing day numbers, dates, activity lists and the summary are filled with
// defaults; the itinerary is padded or truncated to exactly the requested
// duration. A nil return means the shape is unusable (no itinerary at all)
// and the caller should synthesize a fallback instead. Never returns an
// error: a malformed-but-parseable response is a quality problem, not a
// failure.
func buildPlanFromJSON(doc map[string]any, req request_models.TripRequest, now time.Time) *response_models.TravelPlan {
	rawItinerary, ok := doc["itinerary"].([]any)
	if !ok {
		return nil
	}

	start := now
	if req.StartDate != nil {
		start = *req.StartDate
	}

	itinerary := make([]response_models.DayPlan, 0, req.DurationDays)
	for i := 0; i < req.DurationDays; i++ {
		day := response_models.DayPlan{
			Day:        i + 1,
			Date:       utils.FormatPlanDate(start.AddDate(0, 0, i)),
			Activities: []response_models.Activity{},
		}

		if i < len(rawItinerary) {
			if entry, ok := rawItinerary[i].(map[string]any); ok {
				if n, ok := asFloat(entry["day"]); ok {
					day.Day = int(n)
				}
				if s, ok := entry["date"].(string); ok && s != "" {
					day.Date = s
				}
				if rawActivities, ok := entry["activities"].([]any); ok {
					day.Activities = buildActivities(rawActivities)
				}
			}
		}

		itinerary = append(itinerary, day)
	}

	return &response_models.TravelPlan{
		Itinerary: itinerary,
		Summary:   buildSummary(doc["summary"], req.BudgetAmount),
	}
}

func buildActivities(raw []any) []response_models.Activity {
	activities := make([]response_models.Activity, 0, len(raw))
	for _, item := range raw {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}

		activity := response_models.Activity{
			Time:        asString(entry["time"]),
			Type:        asString(entry["type"]),
			Name:        asString(entry["name"]),
			Location:    asString(entry["location"]),
			Description: asString(entry["description"]),
		}
		if cost, ok := asFloat(entry["cost"]); ok && cost >= 0 {
			activity.Cost = &cost
		}
		if coords, ok := entry["coordinates"].(map[string]any); ok {
			lat, latOK := asFloat(coords["lat"])
			lng, lngOK := asFloat(coords["lng"])
			if latOK && lngOK {
				activity.Coordinates = &response_models.Coordinates{Lat: lat, Lng: lng}
			}
		}
		activities = append(activities, activity)
	}
	return activities
}

func buildSummary(raw any, requestedBudget float64) response_models.PlanSummary {
	summary := response_models.PlanSummary{
		TotalEstimatedCost: requestedBudget,
		Highlights:         []string{},
		Tips:               []string{},
	}

	entry, ok := raw.(map[string]any)
	if !ok {
		return summary
	}

	if total, ok := asFloat(entry["totalEstimatedCost"]); ok && total >= 0 {
		summary.TotalEstimatedCost = total
	}
	summary.Highlights = asStringList(entry["highlights"])
	summary.Tips = asStringList(entry["tips"])
	return summary
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

func asStringList(v any) []string {
	raw, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
