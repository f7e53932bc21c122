package entities

import "time"

// ProgramAssignment is the program currently governing a client:
// macro/step targets plus the weekly training schedule. WeeklySchedule is kept
// as raw JSON (7 day keys -> {isActive, exercises[...]} plus generalGoals) so
// the diff engine can walk it day by day.
type ProgramAssignment struct {
	ID                   uint             `gorm:"primaryKey" json:"id"`
	ClientID             string           `gorm:"index" json:"clientId"`
	Status               string           `json:"status"` // active|archived
	WorkoutTemplateID    string           `json:"workoutTemplateId"`
	NutritionTemplateID  string           `json:"nutritionTemplateId"`
	SupplementTemplateID string           `json:"supplementTemplateId"`
	Calories             *float64         `json:"calories"`
	Protein              *float64         `json:"protein"`
	Carbs                *float64         `json:"carbs"`
	Fat                  *float64         `json:"fat"`
	FiberMin             *float64         `json:"fiberMin"`
	StepsGoal            *int             `json:"stepsGoal"`
	WeeklySchedule       map[string]any   `gorm:"serializer:json" json:"weeklySchedule,omitempty"`
	Supplements          []map[string]any `gorm:"serializer:json" json:"supplements,omitempty"`
	Notes                string           `json:"notes"`
	CreatedAt            time.Time        `json:"createdAt"`
	UpdatedAt            time.Time        `json:"updatedAt"`
}
