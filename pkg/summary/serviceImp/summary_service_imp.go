package serviceImp

import (
	"errors"
	"fmt"
	"sync"

	"coachboard/entities"
	checkinRepo "coachboard/pkg/checkin/repository"
	programRepo "coachboard/pkg/program/repository"
	"coachboard/pkg/summary/repository"
	"coachboard/pkg/summary/service"

	"gorm.io/gorm"
)

// saveStep enumerates the idempotent-write fallback chain. The ordering
// (id update → key probe/update → insert → conflict recovery) is what keeps
// one logical row per (client, week) under concurrent or repeated saves.
type saveStep int

const (
	stepUpdateByID saveStep = iota
	stepProbe
	stepUpdateByKey
	stepInsert
	stepRecoverConflict
)

type summarySvc struct {
	summaries repository.SummaryRepository
	checkins  checkinRepo.CheckInRepository
	programs  programRepo.ProgramRepository

	mu   sync.Mutex
	last *savedKey // last successfully saved (client, week), nil when unset
}

type savedKey struct{ clientID, weekStart string }

func New(
	summaries repository.SummaryRepository,
	checkins checkinRepo.CheckInRepository,
	programs programRepo.ProgramRepository,
) service.SummaryService {
	return &summarySvc{summaries: summaries, checkins: checkins, programs: programs}
}

func (s *summarySvc) Save(clientID, weekStart string, form service.Form) (*entities.WeeklySummary, error) {
	start, end, err := weekRange(weekStart)
	if err != nil {
		return nil, err
	}

	checkIns, err := s.checkins.ListRange(clientID, start, end)
	if err != nil {
		return nil, &service.StorageError{Op: "list check-ins", Err: err}
	}
	av := ComputeWeeklyAverages(checkIns)

	prog, err := s.programs.ActiveForClient(clientID)
	if err != nil {
		return nil, &service.StorageError{Op: "load active program", Err: err}
	}

	row := buildRow(clientID, start, end, av, prog, form)
	saved, err := s.persist(row, form.SummaryID, clientID, start)
	if err != nil {
		return nil, err
	}
	s.remember(clientID, start)
	return saved, nil
}

// persist runs the fallback chain until one step lands the row. Each step's
// not-found/conflict outcome picks the next step; anything else is final.
func (s *summarySvc) persist(row *entities.WeeklySummary, knownID uint, clientID, weekStart string) (*entities.WeeklySummary, error) {
	step := stepProbe
	if knownID != 0 {
		step = stepUpdateByID
	} else if s.recalls(clientID, weekStart) {
		// Saved this exact week moments ago — skip the existence probe.
		step = stepUpdateByKey
	}

	for {
		switch step {
		case stepUpdateByID:
			n, err := s.summaries.UpdateByID(knownID, row)
			if err != nil {
				return nil, &service.StorageError{Op: "update by id", Err: err}
			}
			if n > 0 {
				return s.refetch(clientID, weekStart)
			}
			// Stale or concurrently deleted id; fall back to the natural key.
			step = stepProbe

		case stepProbe:
			existing, err := s.summaries.FindByWeek(clientID, weekStart)
			if err != nil {
				return nil, &service.StorageError{Op: "find by week", Err: err}
			}
			if existing != nil {
				step = stepUpdateByKey
			} else {
				step = stepInsert
			}

		case stepUpdateByKey:
			n, err := s.summaries.UpdateByWeek(clientID, weekStart, row)
			if err != nil {
				return nil, &service.StorageError{Op: "update by week", Err: err}
			}
			if n > 0 {
				return s.refetch(clientID, weekStart)
			}
			// Row vanished between probe and update.
			step = stepInsert

		case stepInsert:
			err := s.summaries.Insert(row)
			if err == nil {
				return s.refetch(clientID, weekStart)
			}
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// A concurrent writer won the insert race; update their row.
				step = stepRecoverConflict
				continue
			}
			return nil, &service.StorageError{Op: "insert", Err: err}

		case stepRecoverConflict:
			n, err := s.summaries.UpdateByWeek(clientID, weekStart, row)
			if err != nil {
				return nil, &service.StorageError{Op: "update after conflict", Err: err}
			}
			if n == 0 {
				return nil, &service.StorageError{
					Op:  "update after conflict",
					Err: fmt.Errorf("row for %s/%s disappeared", clientID, weekStart),
				}
			}
			return s.refetch(clientID, weekStart)
		}
	}
}

func (s *summarySvc) refetch(clientID, weekStart string) (*entities.WeeklySummary, error) {
	row, err := s.summaries.FindByWeek(clientID, weekStart)
	if err != nil {
		return nil, &service.StorageError{Op: "refetch", Err: err}
	}
	if row == nil {
		return nil, &service.StorageError{
			Op:  "refetch",
			Err: fmt.Errorf("saved row for %s/%s not found", clientID, weekStart),
		}
	}
	return row, nil
}

func (s *summarySvc) Get(clientID, weekStart string) (*entities.WeeklySummary, error) {
	start, _, err := weekRange(weekStart)
	if err != nil {
		return nil, err
	}
	row, err := s.summaries.FindByWeek(clientID, start)
	if err != nil {
		return nil, &service.StorageError{Op: "find by week", Err: err}
	}
	return row, nil
}

func (s *summarySvc) Delete(clientID, weekStart string) error {
	start, _, err := weekRange(weekStart)
	if err != nil {
		return err
	}
	if err := s.summaries.DeleteByWeek(clientID, start); err != nil {
		return &service.StorageError{Op: "delete", Err: err}
	}
	s.Reset()
	return nil
}

func (s *summarySvc) Reset() {
	s.mu.Lock()
	s.last = nil
	s.mu.Unlock()
}

func (s *summarySvc) remember(clientID, weekStart string) {
	s.mu.Lock()
	s.last = &savedKey{clientID: clientID, weekStart: weekStart}
	s.mu.Unlock()
}

func (s *summarySvc) recalls(clientID, weekStart string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last != nil && s.last.clientID == clientID && s.last.weekStart == weekStart
}

func buildRow(clientID, start, end string, av service.Averages, prog *entities.ProgramAssignment, form service.Form) *entities.WeeklySummary {
	row := &entities.WeeklySummary{
		ClientID:          clientID,
		WeekStartDate:     start,
		WeekEndDate:       end,
		ActualCaloriesAvg: av.Calories,
		ActualProteinAvg:  av.Protein,
		ActualFiberAvg:    av.Fiber,
		ActualStepsAvg:    av.Steps,
		ActualWaistAvg:    av.Waist,
		ActualWeightAvg:   av.Weight,
		WeeklyAvgWeight:   av.WeightPrecise,
		TrainerSummary:    form.TrainerSummary,
		ActionPlan:        form.ActionPlan,
	}
	if prog != nil {
		row.TargetCalories = prog.Calories
		row.TargetProtein = prog.Protein
		row.TargetCarbs = prog.Carbs
		row.TargetFat = prog.Fat
		row.TargetFiberMin = prog.FiberMin
		row.TargetSteps = prog.StepsGoal
	}
	return row
}
