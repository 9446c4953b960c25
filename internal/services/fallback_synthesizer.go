package services

import (
	"fmt"
	"math"
	"time"

	"itinero/internal/models/request_models"
	"itinero/internal/models/response_models"
	"itinero/pkg/utils"
)

// synthesizeFallbackPlan fabricates a structurally valid plan without any
// external call. Deterministic given the request and now, so the pipeline's
// never-fail contract holds even when the model is down. Per-activity costs
// are fixed fractions of the daily budget (thirds, fifths, quarters); they
// intentionally do not sum to the full day so the plan keeps headroom, and
// the summary promises only 80% of the requested budget.
func synthesizeFallbackPlan(req request_models.TripRequest, now time.Time) response_models.TravelPlan {
	start := now
	if req.StartDate != nil {
		start = *req.StartDate
	}

	dailyBudget := req.BudgetAmount / float64(req.DurationDays)

	itinerary := make([]response_models.DayPlan, 0, req.DurationDays)
	for i := 0; i < req.DurationDays; i++ {
		itinerary = append(itinerary, response_models.DayPlan{
			Day:  i + 1,
			Date: utils.FormatPlanDate(start.AddDate(0, 0, i)),
			Activities: []response_models.Activity{
				{
					Time:        "09:00",
					Type:        "attraction",
					Name:        fmt.Sprintf("Top sights of %s", req.Destination),
					Location:    req.Destination,
					Description: "Explore the main local attractions",
					Cost:        flooredShare(dailyBudget, 3),
				},
				{
					Time:        "12:00",
					Type:        "restaurant",
					Name:        "Local specialty restaurant",
					Location:    req.Destination,
					Description: "Taste the local cuisine",
					Cost:        flooredShare(dailyBudget, 5),
				},
				{
					Time:        "14:00",
					Type:        "attraction",
					Name:        "Cultural experience",
					Location:    req.Destination,
					Description: "Experience the local culture",
					Cost:        flooredShare(dailyBudget, 4),
				},
			},
		})
	}

	return response_models.TravelPlan{
		Itinerary: itinerary,
		Summary: response_models.PlanSummary{
			TotalEstimatedCost: req.BudgetAmount * 0.8,
			Highlights: []string{
				fmt.Sprintf("Discover the scenery of %s", req.Destination),
				"Taste the local food",
			},
			Tips: []string{
				"Book accommodation in advance",
				"Check the weather before heading out",
			},
		},
	}
}

func flooredShare(amount float64, fraction float64) *float64 {
	v := math.Floor(amount / fraction)
	return &v
}
