package repository

import "coachboard/entities"

// SummaryRepository is the write interface the idempotent save path needs:
// point lookup by id and by natural key, update by either, and insert with
// uniqueness-conflict detection (gorm.ErrDuplicatedKey).
type SummaryRepository interface {
	// FindByWeek returns the row for (clientID, weekStart), or nil when absent.
	FindByWeek(clientID, weekStart string) (*entities.WeeklySummary, error)
	// UpdateByID overwrites the summary fields of the row with the given id
	// and reports how many rows matched.
	UpdateByID(id uint, s *entities.WeeklySummary) (int64, error)
	// UpdateByWeek does the same keyed on (clientID, weekStart).
	UpdateByWeek(clientID, weekStart string, s *entities.WeeklySummary) (int64, error)
	// Insert creates the row; a (client_id, week_start_date) collision comes
	// back as gorm.ErrDuplicatedKey.
	Insert(s *entities.WeeklySummary) error
	// DeleteByWeek removes the row if present; deleting an absent row is a
	// no-op.
	DeleteByWeek(clientID, weekStart string) error
}
