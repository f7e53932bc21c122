package repositoryImp

import (
	"errors"

	"coachboard/entities"
	"coachboard/pkg/program/repository"

	"gorm.io/gorm"
)

type programRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ProgramRepository { return &programRepo{db} }

func (r *programRepo) ActiveForClient(clientID string) (*entities.ProgramAssignment, error) {
	var out entities.ProgramAssignment
	err := r.db.Where("client_id = ? AND status = ?", clientID, "active").
		Order("updated_at DESC").First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *programRepo) Save(p *entities.ProgramAssignment) error { return r.db.Save(p).Error }
