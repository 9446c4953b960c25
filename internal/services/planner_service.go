package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"itinero/internal/models/request_models"
	"itinero/internal/models/response_models"
	"itinero/pkg/utils"
)

// planTimeout is the per-attempt budget for full plan generation. The model
// needs a while to produce a multi-day itinerary.
const planTimeout = 120 * time.Second

type PlannerServiceInterface interface {
	// GenerateTravelPlan turns a canonical request into a usable plan. The
	// error is non-nil only for fatal upstream classifications or missing
	// configuration; every other failure degrades to a synthesized plan.
	GenerateTravelPlan(ctx context.Context, req request_models.TripRequest) (*response_models.TravelPlan, error)
}

type PlannerService struct {
	client utils.CompletionClientInterface
	now    func() time.Time
}

func NewPlannerService(client utils.CompletionClientInterface) PlannerServiceInterface {
	return &PlannerService{
		client: client,
		now:    time.Now,
	}
}

func (s *PlannerService) GenerateTravelPlan(ctx context.Context, req request_models.TripRequest) (*response_models.TravelPlan, error) {
	logger := utils.LoggerFromContext(ctx)

	content, err := s.client.Complete(ctx, planSystemInstruction, buildPlanPrompt(req), utils.CompletionOptions{
		Temperature: 0.7,
		MaxTokens:   2000,
		Timeout:     planTimeout,
	})
	if err != nil {
		var upstream *utils.UpstreamError
		if errors.As(err, &upstream) && upstream.Kind == utils.UpstreamTimeout {
			// Transient retries ran out. A flaky provider must not cost the
			// user their plan, so degrade instead of surfacing the outage.
			logger.Warn("completion retries exhausted, synthesizing fallback plan",
				"destination", req.Destination, "days", req.DurationDays)
			plan := synthesizeFallbackPlan(req, s.now())
			return &plan, nil
		}
		return nil, err
	}

	jsonText, err := utils.ExtractJSONObject(content)
	if err != nil {
		logger.Warn("completion carried no JSON object, synthesizing fallback plan",
			"content_length", len(content))
		plan := synthesizeFallbackPlan(req, s.now())
		return &plan, nil
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(jsonText), &doc); err != nil {
		logger.Warn("recovered JSON failed to parse, synthesizing fallback plan",
			"parse_error", err.Error())
		plan := synthesizeFallbackPlan(req, s.now())
		return &plan, nil
	}

	plan := buildPlanFromJSON(doc, req, s.now())
	if plan == nil {
		logger.Warn("completion JSON has no usable itinerary, synthesizing fallback plan")
		fallback := synthesizeFallbackPlan(req, s.now())
		return &fallback, nil
	}

	logger.Info("travel plan generated",
		"destination", req.Destination,
		"days", req.DurationDays,
		"estimated_cost", plan.Summary.TotalEstimatedCost)
	return plan, nil
}
