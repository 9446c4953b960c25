package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeFallbackPlanShape(t *testing.T) {
	now := time.Date(2026, 5, 1, 15, 30, 0, 0, time.UTC)
	req := tripRequest(3)

	plan := synthesizeFallbackPlan(req, now)
	require.Len(t, plan.Itinerary, 3)

	for i, day := range plan.Itinerary {
		assert.Equal(t, i+1, day.Day)
		assert.Equal(t, now.AddDate(0, 0, i).Format("2006-01-02"), day.Date)
		require.Len(t, day.Activities, 3)
		assert.Equal(t, "09:00", day.Activities[0].Time)
		assert.Equal(t, "attraction", day.Activities[0].Type)
		assert.Equal(t, "12:00", day.Activities[1].Time)
		assert.Equal(t, "restaurant", day.Activities[1].Type)
		assert.Equal(t, "14:00", day.Activities[2].Time)
		assert.Equal(t, "Kyoto", day.Activities[0].Location)
	}

	assert.Contains(t, plan.Itinerary[0].Activities[0].Name, "Kyoto")
}

func TestSynthesizeFallbackPlanCosts(t *testing.T) {
	req := tripRequest(3) // 9000 over 3 days, 3000 per day
	plan := synthesizeFallbackPlan(req, time.Now())

	day := plan.Itinerary[0]
	require.NotNil(t, day.Activities[0].Cost)
	assert.Equal(t, float64(1000), *day.Activities[0].Cost)
	assert.Equal(t, float64(600), *day.Activities[1].Cost)
	assert.Equal(t, float64(750), *day.Activities[2].Cost)

	assert.Equal(t, 9000*0.8, plan.Summary.TotalEstimatedCost)
	assert.NotEmpty(t, plan.Summary.Highlights)
	assert.NotEmpty(t, plan.Summary.Tips)
}

func TestSynthesizeFallbackPlanUsesStartDate(t *testing.T) {
	start := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)
	req := tripRequest(2)
	req.StartDate = &start

	plan := synthesizeFallbackPlan(req, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2026-09-20", plan.Itinerary[0].Date)
	assert.Equal(t, "2026-09-21", plan.Itinerary[1].Date)
}

func TestSynthesizeFallbackPlanDeterministic(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	req := tripRequest(4)

	first := synthesizeFallbackPlan(req, now)
	second := synthesizeFallbackPlan(req, now)
	assert.Equal(t, first, second)
}
