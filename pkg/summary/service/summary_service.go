package service

import "coachboard/entities"

// Averages holds the per-metric weekly means. A nil metric means no check-in
// that week carried it — never zero, since 0 is a valid logged value.
type Averages struct {
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Fiber    *float64 `json:"fiber"`
	Steps    *float64 `json:"steps"`
	Waist    *float64 `json:"waist"`
	Weight   *float64 `json:"weight"`
	// WeightPrecise is the weight mean at two decimals for display.
	WeightPrecise *float64 `json:"weightPrecise"`
}

// Form is the trainer-entered part of a weekly summary save.
type Form struct {
	// SummaryID, when the caller already holds one, routes the save through
	// the update-by-id fast path first.
	SummaryID      uint   `json:"summaryId"`
	TrainerSummary string `json:"trainerSummary"`
	ActionPlan     string `json:"actionPlan"`
}

type SummaryService interface {
	// Save computes the week's averages, resolves the client's program
	// targets and persists exactly one row per (clientID, week), surviving
	// concurrent writers and repeated saves.
	Save(clientID, weekStart string, form Form) (*entities.WeeklySummary, error)
	Get(clientID, weekStart string) (*entities.WeeklySummary, error)
	Delete(clientID, weekStart string) error
	// Reset drops the last-saved short-circuit cache; call it when the caller
	// switches client or week context.
	Reset()
}
