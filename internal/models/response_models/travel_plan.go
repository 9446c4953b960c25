package response_models

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Activity is one itinerary entry. Type is one of transport, attraction,
// restaurant, lodging. Cost and Coordinates stay optional because the model
// frequently omits them.
type Activity struct {
	Time        string       `json:"time"`
	Type        string       `json:"type"`
	Name        string       `json:"name"`
	Location    string       `json:"location"`
	Description string       `json:"description"`
	Cost        *float64     `json:"cost,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

type DayPlan struct {
	Day        int        `json:"day"`
	Date       string     `json:"date"`
	Activities []Activity `json:"activities"`
}

type PlanSummary struct {
	TotalEstimatedCost float64  `json:"totalEstimatedCost"`
	Highlights         []string `json:"highlights"`
	Tips               []string `json:"tips"`
}

// TravelPlan is the pipeline's sole output. Itinerary always has exactly the
// requested number of days.
type TravelPlan struct {
	Itinerary []DayPlan   `json:"itinerary"`
	Summary   PlanSummary `json:"summary"`
}

type BudgetEstimateResponse struct {
	EstimatedBudget int `json:"estimatedBudget"`
}
