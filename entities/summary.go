package entities

import "time"

// WeeklySummary is the single per-client, per-week aggregate row. The unique
// index on (client_id, week_start_date) is the concurrency primitive the save
// path leans on: concurrent inserts for the same week collide here instead of
// producing duplicates.
type WeeklySummary struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	ClientID      string `gorm:"uniqueIndex:idx_client_week" json:"clientId"`
	WeekStartDate string `gorm:"uniqueIndex:idx_client_week" json:"weekStartDate"` // 2006-01-02, always a Sunday
	WeekEndDate   string `json:"weekEndDate"`

	TargetCalories *float64 `json:"targetCalories"`
	TargetProtein  *float64 `json:"targetProtein"`
	TargetCarbs    *float64 `json:"targetCarbs"`
	TargetFat      *float64 `json:"targetFat"`
	TargetFiberMin *float64 `json:"targetFiberMin"`
	TargetSteps    *int     `json:"targetSteps"`

	ActualCaloriesAvg *float64 `json:"actualCaloriesAvg"`
	ActualProteinAvg  *float64 `json:"actualProteinAvg"`
	ActualFiberAvg    *float64 `json:"actualFiberAvg"`
	ActualStepsAvg    *float64 `json:"actualStepsAvg"`
	ActualWaistAvg    *float64 `json:"actualWaistAvg"`
	ActualWeightAvg   *float64 `json:"actualWeightAvg"`
	WeeklyAvgWeight   *float64 `json:"weeklyAvgWeight"` // two decimals, display precision

	TrainerSummary string `json:"trainerSummary"`
	ActionPlan     string `json:"actionPlan"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
