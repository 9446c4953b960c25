package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"itinero/internal/models/request_models"
	"itinero/internal/models/response_models"
	"itinero/internal/services"
	"itinero/pkg/utils"
)

type TravelController struct {
	plannerService services.PlannerServiceInterface
	budgetService  services.BudgetServiceInterface
}

func NewTravelController(
	plannerService services.PlannerServiceInterface,
	budgetService services.BudgetServiceInterface,
) *TravelController {
	return &TravelController{
		plannerService: plannerService,
		budgetService:  budgetService,
	}
}

func (t *TravelController) GeneratePlanHandler(c *gin.Context) {
	var raw request_models.TravelPlanRequest
	if err := c.ShouldBindJSON(&raw); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	ctx := c.Request.Context()

	req, err := services.NormalizeTripRequest(ctx, raw)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	plan, err := t.plannerService.GenerateTravelPlan(ctx, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Travel plan generated successfully")
}

func (t *TravelController) EstimateBudgetHandler(c *gin.Context) {
	var raw request_models.BudgetEstimateRequest
	if err := c.ShouldBindJSON(&raw); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	req, err := services.NormalizeBudgetRequest(raw)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	estimate := t.budgetService.EstimateBudget(
		c.Request.Context(), req.Destination, req.DurationDays, req.PartySize, req.Preferences)

	utils.RespondSuccess(c,
		response_models.BudgetEstimateResponse{EstimatedBudget: estimate},
		"Budget estimated")
}
