package entities

import "time"

// DailyCheckIn is one self-reported row per customer per calendar day.
// Metrics are pointers so "not logged" stays distinct from a logged zero.
type DailyCheckIn struct {
	ID                 uint     `gorm:"primaryKey" json:"id"`
	CustomerID         string   `gorm:"index;uniqueIndex:idx_customer_day" json:"customerId"`
	Date               string   `gorm:"uniqueIndex:idx_customer_day" json:"date"` // 2006-01-02
	Weight             *float64 `json:"weight"`
	CaloriesDaily      *float64 `json:"caloriesDaily"`
	ProteinDaily       *float64 `json:"proteinDaily"`
	FiberDaily         *float64 `json:"fiberDaily"`
	StepsActual        *int     `json:"stepsActual"`
	WaistCircumference *float64 `json:"waistCircumference"`
	Mood               string   `json:"mood"`
	Notes              string   `json:"notes"`
	CreatedAt          time.Time
}
