package services

import (
	"fmt"
	"strings"

	"itinero/internal/models/request_models"
	"itinero/pkg/utils"
)

const planSystemInstruction = "You are a professional travel planning assistant. " +
	"Generate detailed travel plans matching the user's request and always respond " +
	"with a single valid JSON object, nothing else."

// planSchemaExample steers the model toward the exact output shape the
// validator expects. Kept as one literal so the prompt stays deterministic.
const planSchemaExample = `{
  "itinerary": [
    {
      "day": 1,
      "date": "2024-01-01",
      "activities": [
        {
          "time": "09:00",
          "type": "attraction",
          "name": "Main attraction",
          "location": "Address",
          "description": "What to see there",
          "cost": 100
        }
      ]
    }
  ],
  "summary": {
    "totalEstimatedCost": 5000,
    "highlights": ["Highlight"],
    "tips": ["Tip"]
  }
}`

// buildPlanPrompt renders the canonical request into the generation
// instruction. Pure: identical requests yield identical prompts.
func buildPlanPrompt(req request_models.TripRequest) string {
	var prompt strings.Builder

	prompt.WriteString("Create a travel plan for the following trip and return it as JSON:\n\n")
	prompt.WriteString(fmt.Sprintf("Destination: %s\n", req.Destination))
	prompt.WriteString(fmt.Sprintf("Duration: %d days\n", req.DurationDays))
	prompt.WriteString(fmt.Sprintf("Budget: %.0f\n", req.BudgetAmount))
	prompt.WriteString(fmt.Sprintf("Travelers: %d\n", req.PartySize))
	if req.StartDate != nil {
		prompt.WriteString(fmt.Sprintf("Start date: %s\n", utils.FormatPlanDate(*req.StartDate)))
	}
	preferences := req.Preferences
	if preferences == "" {
		preferences = "none"
	}
	prompt.WriteString(fmt.Sprintf("Preferences: %s\n", preferences))

	prompt.WriteString("\nReturn JSON in this exact format:\n")
	prompt.WriteString(planSchemaExample)

	prompt.WriteString("\n\nRequirements:\n")
	prompt.WriteString(fmt.Sprintf("1. Exactly %d entries in \"itinerary\", day numbers 1..%d\n",
		req.DurationDays, req.DurationDays))
	prompt.WriteString("2. 3-4 activities per day with realistic costs within budget\n")
	prompt.WriteString("3. Activity type is one of: transport, attraction, restaurant, lodging\n")
	prompt.WriteString("4. Valid JSON only, no markdown, no extra text\n")

	return prompt.String()
}

// buildBudgetPrompt is the short single-number variant for the estimate path.
func buildBudgetPrompt(destination string, days, partySize int, preferences string) string {
	if strings.TrimSpace(preferences) == "" {
		preferences = "no particular preferences"
	}
	return fmt.Sprintf(
		"Estimate a rough total budget for this trip:\n"+
			"Destination: %s\n"+
			"Duration: %d days\n"+
			"Travelers: %d\n"+
			"Preferences: %s\n\n"+
			"Reply with a single number only, no currency symbol, no other text.",
		destination, days, partySize, preferences)
}
