package repositoryImp

import (
	"coachboard/entities"
	"coachboard/pkg/checkin/repository"

	"gorm.io/gorm"
)

type checkinRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CheckInRepository { return &checkinRepo{db} }

func (r *checkinRepo) Create(ci *entities.DailyCheckIn) error { return r.db.Create(ci).Error }

func (r *checkinRepo) ListRange(customerID, from, to string) ([]entities.DailyCheckIn, error) {
	var out []entities.DailyCheckIn
	q := r.db.Where("customer_id = ?", customerID)
	if from != "" {
		q = q.Where("date >= ?", from)
	}
	if to != "" {
		q = q.Where("date <= ?", to)
	}
	if err := q.Order("date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
