package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itinero/internal/models/request_models"
	"itinero/internal/models/response_models"
	"itinero/pkg/utils"
)

type stubPlanner struct {
	plan *response_models.TravelPlan
	err  error
}

func (s *stubPlanner) GenerateTravelPlan(context.Context, request_models.TripRequest) (*response_models.TravelPlan, error) {
	return s.plan, s.err
}

type stubBudget struct {
	estimate int
}

func (s *stubBudget) EstimateBudget(context.Context, string, int, int, string) int {
	return s.estimate
}

func newTestRouter(planner *stubPlanner, budget *stubBudget) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	controller := NewTravelController(planner, budget)
	engine.POST("/api/travel/plan", controller.GeneratePlanHandler)
	engine.POST("/api/travel/estimate-budget", controller.EstimateBudgetHandler)
	return engine
}

func doRequest(t *testing.T, engine *gin.Engine, path, body string) (*httptest.ResponseRecorder, utils.APIResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)

	var parsed utils.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &parsed))
	return recorder, parsed
}

func samplePlan() *response_models.TravelPlan {
	return &response_models.TravelPlan{
		Itinerary: []response_models.DayPlan{
			{Day: 1, Date: time.Now().Format("2006-01-02"), Activities: []response_models.Activity{}},
		},
		Summary: response_models.PlanSummary{
			TotalEstimatedCost: 9000,
			Highlights:         []string{},
			Tips:               []string{},
		},
	}
}

func TestGeneratePlanHandlerSuccess(t *testing.T) {
	engine := newTestRouter(&stubPlanner{plan: samplePlan()}, &stubBudget{})

	recorder, parsed := doRequest(t, engine, "/api/travel/plan",
		`{"destination": "Kyoto", "days": 3, "budget": 9000, "travelers": 2}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "success", parsed.Status)
	require.NotNil(t, parsed.Data)
}

func TestGeneratePlanHandlerMalformedBody(t *testing.T) {
	engine := newTestRouter(&stubPlanner{plan: samplePlan()}, &stubBudget{})

	recorder, parsed := doRequest(t, engine, "/api/travel/plan", `{"destination": `)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "error", parsed.Status)
}

func TestGeneratePlanHandlerValidationError(t *testing.T) {
	engine := newTestRouter(&stubPlanner{plan: samplePlan()}, &stubBudget{})

	recorder, parsed := doRequest(t, engine, "/api/travel/plan",
		`{"days": 3, "budget": 9000, "travelers": 2}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, parsed.Message, "destination")
}

func TestGeneratePlanHandlerUpstreamMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"bad credential", &utils.UpstreamError{Kind: utils.UpstreamCredential, Status: 401}, http.StatusBadGateway},
		{"access denied", &utils.UpstreamError{Kind: utils.UpstreamAccessDenied, Status: 403}, http.StatusBadGateway},
		{"rate limited", &utils.UpstreamError{Kind: utils.UpstreamRateLimited, Status: 429}, http.StatusServiceUnavailable},
		{"bad request", &utils.UpstreamError{Kind: utils.UpstreamBadRequest, Status: 400}, http.StatusBadGateway},
		{"model not found", &utils.UpstreamError{Kind: utils.UpstreamNotFound, Status: 404}, http.StatusBadGateway},
		{"contract violation", &utils.UpstreamError{Kind: utils.UpstreamContract}, http.StatusBadGateway},
		{"missing config", utils.ErrMissingConfig, http.StatusServiceUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			engine := newTestRouter(&stubPlanner{err: tc.err}, &stubBudget{})

			recorder, parsed := doRequest(t, engine, "/api/travel/plan",
				`{"destination": "Kyoto", "days": 3, "budget": 9000, "travelers": 2}`)
			assert.Equal(t, tc.code, recorder.Code)
			assert.Equal(t, "error", parsed.Status)
			assert.NotEmpty(t, parsed.Message)
		})
	}
}

func TestEstimateBudgetHandler(t *testing.T) {
	engine := newTestRouter(&stubPlanner{}, &stubBudget{estimate: 5000})

	recorder, parsed := doRequest(t, engine, "/api/travel/estimate-budget",
		`{"destination": "Lisbon", "days": 4, "travelers": 2}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "success", parsed.Status)

	data, ok := parsed.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(5000), data["estimatedBudget"])
}

func TestEstimateBudgetHandlerValidationError(t *testing.T) {
	engine := newTestRouter(&stubPlanner{}, &stubBudget{estimate: 5000})

	recorder, _ := doRequest(t, engine, "/api/travel/estimate-budget",
		`{"destination": "Lisbon", "days": 0, "travelers": 2}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
