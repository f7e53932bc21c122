package repositoryImp

import (
	"errors"
	"time"

	"coachboard/entities"
	"coachboard/pkg/summary/repository"

	"gorm.io/gorm"
)

type summaryRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SummaryRepository { return &summaryRepo{db} }

func (r *summaryRepo) FindByWeek(clientID, weekStart string) (*entities.WeeklySummary, error) {
	var out entities.WeeklySummary
	err := r.db.Where("client_id = ? AND week_start_date = ?", clientID, weekStart).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *summaryRepo) UpdateByID(id uint, s *entities.WeeklySummary) (int64, error) {
	res := r.db.Model(&entities.WeeklySummary{}).Where("id = ?", id).Updates(updateColumns(s))
	return res.RowsAffected, res.Error
}

func (r *summaryRepo) UpdateByWeek(clientID, weekStart string, s *entities.WeeklySummary) (int64, error) {
	res := r.db.Model(&entities.WeeklySummary{}).
		Where("client_id = ? AND week_start_date = ?", clientID, weekStart).
		Updates(updateColumns(s))
	return res.RowsAffected, res.Error
}

func (r *summaryRepo) Insert(s *entities.WeeklySummary) error { return r.db.Create(s).Error }

func (r *summaryRepo) DeleteByWeek(clientID, weekStart string) error {
	return r.db.Where("client_id = ? AND week_start_date = ?", clientID, weekStart).
		Delete(&entities.WeeklySummary{}).Error
}

// updateColumns builds an explicit column map so nil averages overwrite stale
// values with NULL (a struct update would skip them as zero values).
func updateColumns(s *entities.WeeklySummary) map[string]any {
	return map[string]any{
		"week_end_date":       s.WeekEndDate,
		"target_calories":     s.TargetCalories,
		"target_protein":      s.TargetProtein,
		"target_carbs":        s.TargetCarbs,
		"target_fat":          s.TargetFat,
		"target_fiber_min":    s.TargetFiberMin,
		"target_steps":        s.TargetSteps,
		"actual_calories_avg": s.ActualCaloriesAvg,
		"actual_protein_avg":  s.ActualProteinAvg,
		"actual_fiber_avg":    s.ActualFiberAvg,
		"actual_steps_avg":    s.ActualStepsAvg,
		"actual_waist_avg":    s.ActualWaistAvg,
		"actual_weight_avg":   s.ActualWeightAvg,
		"weekly_avg_weight":   s.WeeklyAvgWeight,
		"trainer_summary":     s.TrainerSummary,
		"action_plan":         s.ActionPlan,
		"updated_at":          time.Now(),
	}
}
