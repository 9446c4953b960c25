package planner_fx

import (
	"log/slog"
	"os"

	"go.uber.org/fx"

	"itinero/internal/api/controllers"
	"itinero/internal/services"
	"itinero/pkg/utils"
)

var Module = fx.Provide(
	ProvideCompletionClient,
	ProvidePlannerService,
	ProvideBudgetService,
	ProvideTravelController,
)

// ProvideCompletionClient reads the completion endpoint configuration once at
// startup. A missing API key is logged, not fatal: plan generation will
// surface a configuration error while the budget path still serves its
// deterministic formula.
func ProvideCompletionClient() utils.CompletionClientInterface {
	cfg := utils.CompletionConfig{
		APIKey:  os.Getenv("DASHSCOPE_API_KEY"),
		BaseURL: getEnvWithDefault("DASHSCOPE_BASE_URL", utils.DefaultBaseURL),
		Model:   getEnvWithDefault("DASHSCOPE_MODEL", utils.DefaultModel),
	}

	slog.Info("initializing completion client",
		"base_url", cfg.BaseURL,
		"model", cfg.Model,
		"api_key_set", cfg.APIKey != "")
	if cfg.APIKey == "" {
		slog.Warn("DASHSCOPE_API_KEY is not set; plan generation is disabled until it is configured")
	}

	return utils.NewCompletionClient(cfg)
}

func ProvidePlannerService(client utils.CompletionClientInterface) services.PlannerServiceInterface {
	return services.NewPlannerService(client)
}

func ProvideBudgetService(client utils.CompletionClientInterface) services.BudgetServiceInterface {
	return services.NewBudgetService(client)
}

func ProvideTravelController(
	plannerService services.PlannerServiceInterface,
	budgetService services.BudgetServiceInterface,
) *controllers.TravelController {
	return controllers.NewTravelController(plannerService, budgetService)
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
