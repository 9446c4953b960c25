package services

import (
	"context"
	"regexp"
	"strconv"
	"time"

	"itinero/pkg/utils"
)

// budgetTimeout is deliberately short: the model only has to emit one number.
const budgetTimeout = 15 * time.Second

// fallbackUnitRate is the per-person-per-day amount used when the model gives
// nothing usable.
const fallbackUnitRate = 500

var nonDigitPattern = regexp.MustCompile(`[^\d]`)

type BudgetServiceInterface interface {
	// EstimateBudget never fails: any upstream or parse problem degrades to
	// the deterministic days * travelers * 500 formula. Estimation is
	// advisory, so even fatal upstream classifications are absorbed here.
	EstimateBudget(ctx context.Context, destination string, days, partySize int, preferences string) int
}

type BudgetService struct {
	client utils.CompletionClientInterface
}

func NewBudgetService(client utils.CompletionClientInterface) BudgetServiceInterface {
	return &BudgetService{client: client}
}

func (s *BudgetService) EstimateBudget(ctx context.Context, destination string, days, partySize int, preferences string) int {
	logger := utils.LoggerFromContext(ctx)
	fallback := days * partySize * fallbackUnitRate

	content, err := s.client.Complete(ctx, "", buildBudgetPrompt(destination, days, partySize, preferences), utils.CompletionOptions{
		Temperature: 0.3,
		MaxTokens:   100,
		Timeout:     budgetTimeout,
	})
	if err != nil {
		logger.Warn("budget estimate degraded to formula", "error", err.Error())
		return fallback
	}

	digits := nonDigitPattern.ReplaceAllString(content, "")
	estimate, err := strconv.Atoi(digits)
	if err != nil {
		logger.Warn("budget completion had no parseable number",
			"content_length", len(content))
		return fallback
	}

	return estimate
}
