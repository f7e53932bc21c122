package serviceImp

import (
	"errors"
	"sync"
	"testing"
	"time"

	"coachboard/entities"
	"coachboard/pkg/summary/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeSummaryRepo is an in-memory stand-in for the weekly-summary store with
// the same uniqueness semantics, plus hooks to simulate a lost insert race.
type fakeSummaryRepo struct {
	mu     sync.Mutex
	rows   map[string]*entities.WeeklySummary // key: clientID|weekStart
	nextID uint

	// raceOnInsert plants a competing writer's row right before our insert,
	// making the insert collide exactly once.
	raceOnInsert bool

	findCalls        int
	updateByIDCalls  int
	updateByKeyCalls int
	insertCalls      int

	listErr error // when set, FindByWeek fails with it
}

func newFakeSummaryRepo() *fakeSummaryRepo {
	return &fakeSummaryRepo{rows: map[string]*entities.WeeklySummary{}}
}

func key(clientID, weekStart string) string { return clientID + "|" + weekStart }

func (f *fakeSummaryRepo) FindByWeek(clientID, weekStart string) (*entities.WeeklySummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.findCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	row, ok := f.rows[key(clientID, weekStart)]
	if !ok {
		return nil, nil
	}
	cp := *row
	return &cp, nil
}

func (f *fakeSummaryRepo) UpdateByID(id uint, s *entities.WeeklySummary) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateByIDCalls++
	for _, row := range f.rows {
		if row.ID == id {
			f.apply(row, s)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeSummaryRepo) UpdateByWeek(clientID, weekStart string, s *entities.WeeklySummary) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateByKeyCalls++
	row, ok := f.rows[key(clientID, weekStart)]
	if !ok {
		return 0, nil
	}
	f.apply(row, s)
	return 1, nil
}

func (f *fakeSummaryRepo) Insert(s *entities.WeeklySummary) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.insertCalls++
	k := key(s.ClientID, s.WeekStartDate)
	if f.raceOnInsert {
		f.raceOnInsert = false
		f.nextID++
		f.rows[k] = &entities.WeeklySummary{
			ID:             f.nextID,
			ClientID:       s.ClientID,
			WeekStartDate:  s.WeekStartDate,
			WeekEndDate:    s.WeekEndDate,
			TrainerSummary: "competing writer",
			CreatedAt:      time.Now(),
			UpdatedAt:      time.Now(),
		}
		return gorm.ErrDuplicatedKey
	}
	if _, exists := f.rows[k]; exists {
		return gorm.ErrDuplicatedKey
	}
	f.nextID++
	cp := *s
	cp.ID = f.nextID
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = time.Now()
	f.rows[k] = &cp
	return nil
}

func (f *fakeSummaryRepo) DeleteByWeek(clientID, weekStart string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, key(clientID, weekStart))
	return nil
}

func (f *fakeSummaryRepo) apply(dst, src *entities.WeeklySummary) {
	id, created := dst.ID, dst.CreatedAt
	clientID, weekStart := dst.ClientID, dst.WeekStartDate
	*dst = *src
	dst.ID, dst.CreatedAt = id, created
	dst.ClientID, dst.WeekStartDate = clientID, weekStart
	dst.UpdatedAt = time.Now()
}

type fakeCheckinRepo struct {
	ins []entities.DailyCheckIn
	err error
}

func (f *fakeCheckinRepo) Create(ci *entities.DailyCheckIn) error { return nil }

func (f *fakeCheckinRepo) ListRange(customerID, from, to string) ([]entities.DailyCheckIn, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entities.DailyCheckIn
	for _, ci := range f.ins {
		if ci.CustomerID == customerID && ci.Date >= from && ci.Date <= to {
			out = append(out, ci)
		}
	}
	return out, nil
}

type fakeProgramRepo struct{ active *entities.ProgramAssignment }

func (f *fakeProgramRepo) ActiveForClient(clientID string) (*entities.ProgramAssignment, error) {
	return f.active, nil
}

func (f *fakeProgramRepo) Save(p *entities.ProgramAssignment) error { return nil }

func newSvc(sr *fakeSummaryRepo, cr *fakeCheckinRepo, pr *fakeProgramRepo) service.SummaryService {
	if cr == nil {
		cr = &fakeCheckinRepo{}
	}
	if pr == nil {
		pr = &fakeProgramRepo{}
	}
	return New(sr, cr, pr)
}

const (
	client    = "c-100"
	weekStart = "2024-01-07" // Sunday
)

func TestSaveEndToEnd(t *testing.T) {
	// Mon/Wed/Fri check-ins with calories only, no weight.
	cr := &fakeCheckinRepo{ins: []entities.DailyCheckIn{
		{CustomerID: client, Date: "2024-01-08", CaloriesDaily: fp(1800)},
		{CustomerID: client, Date: "2024-01-10", CaloriesDaily: fp(2000)},
		{CustomerID: client, Date: "2024-01-12", CaloriesDaily: fp(2200)},
	}}
	pr := &fakeProgramRepo{active: &entities.ProgramAssignment{
		ClientID: client, Status: "active",
		Calories: fp(1900), Protein: fp(150), StepsGoal: ip(9000),
	}}
	sr := newFakeSummaryRepo()

	svc := newSvc(sr, cr, pr)
	row, err := svc.Save(client, weekStart, service.Form{TrainerSummary: "On track"})
	require.NoError(t, err)

	require.NotNil(t, row.ActualCaloriesAvg)
	assert.Equal(t, 2000.0, *row.ActualCaloriesAvg)
	assert.Nil(t, row.ActualWeightAvg)
	assert.Nil(t, row.WeeklyAvgWeight)
	assert.Equal(t, "On track", row.TrainerSummary)
	assert.Equal(t, "2024-01-07", row.WeekStartDate)
	assert.Equal(t, "2024-01-13", row.WeekEndDate)
	assert.Equal(t, 1900.0, *row.TargetCalories)
	assert.Equal(t, 9000, *row.TargetSteps)
	assert.False(t, row.UpdatedAt.IsZero())
	assert.Len(t, sr.rows, 1)
}

func TestSaveIgnoresOutOfWeekCheckIns(t *testing.T) {
	cr := &fakeCheckinRepo{ins: []entities.DailyCheckIn{
		{CustomerID: client, Date: "2024-01-06", CaloriesDaily: fp(5000)}, // Saturday before
		{CustomerID: client, Date: "2024-01-08", CaloriesDaily: fp(2000)},
		{CustomerID: client, Date: "2024-01-14", CaloriesDaily: fp(5000)}, // Sunday after
	}}
	sr := newFakeSummaryRepo()

	row, err := newSvc(sr, cr, nil).Save(client, weekStart, service.Form{})
	require.NoError(t, err)
	assert.Equal(t, 2000.0, *row.ActualCaloriesAvg)
}

func TestSaveWithoutProgramLeavesTargetsNull(t *testing.T) {
	sr := newFakeSummaryRepo()
	row, err := newSvc(sr, nil, &fakeProgramRepo{active: nil}).Save(client, weekStart, service.Form{})
	require.NoError(t, err)
	assert.Nil(t, row.TargetCalories)
	assert.Nil(t, row.TargetSteps)
}

func TestSaveTwiceKeepsOneRowLastWriteWins(t *testing.T) {
	sr := newFakeSummaryRepo()
	svc := newSvc(sr, nil, nil)

	first, err := svc.Save(client, weekStart, service.Form{TrainerSummary: "draft"})
	require.NoError(t, err)

	second, err := svc.Save(client, weekStart, service.Form{TrainerSummary: "final"})
	require.NoError(t, err)

	assert.Len(t, sr.rows, 1)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "final", second.TrainerSummary)
	assert.Equal(t, 1, sr.insertCalls)
}

func TestSecondSaveShortCircuitsProbe(t *testing.T) {
	sr := newFakeSummaryRepo()
	svc := newSvc(sr, nil, nil)

	_, err := svc.Save(client, weekStart, service.Form{})
	require.NoError(t, err)
	probes := sr.findCalls // probe + refetch

	_, err = svc.Save(client, weekStart, service.Form{})
	require.NoError(t, err)
	// Cache hit goes straight to update-by-key: only the refetch touches Find.
	assert.Equal(t, probes+1, sr.findCalls)
	assert.Equal(t, 1, sr.updateByKeyCalls)
}

func TestResetInvalidatesShortCircuit(t *testing.T) {
	sr := newFakeSummaryRepo()
	svc := newSvc(sr, nil, nil)

	_, err := svc.Save(client, weekStart, service.Form{})
	require.NoError(t, err)
	svc.Reset()

	before := sr.findCalls
	_, err = svc.Save(client, weekStart, service.Form{})
	require.NoError(t, err)
	// Probe + refetch again after the cache was dropped.
	assert.Equal(t, before+2, sr.findCalls)
}

func TestSaveDifferentWeekMissesCache(t *testing.T) {
	sr := newFakeSummaryRepo()
	svc := newSvc(sr, nil, nil)

	_, err := svc.Save(client, weekStart, service.Form{})
	require.NoError(t, err)
	_, err = svc.Save(client, "2024-01-14", service.Form{})
	require.NoError(t, err)

	assert.Len(t, sr.rows, 2)
	assert.Equal(t, 2, sr.insertCalls)
}

func TestSaveWithKnownIDUpdatesDirectly(t *testing.T) {
	sr := newFakeSummaryRepo()
	svc := newSvc(sr, nil, nil)

	first, err := svc.Save(client, weekStart, service.Form{TrainerSummary: "draft"})
	require.NoError(t, err)

	fresh := newSvc(sr, nil, nil) // separate instance, cold cache
	second, err := fresh.Save(client, weekStart, service.Form{
		SummaryID: first.ID, TrainerSummary: "by id",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "by id", second.TrainerSummary)
	assert.Equal(t, 1, sr.updateByIDCalls)
	assert.Equal(t, 1, sr.insertCalls)
}

func TestSaveWithStaleIDFallsBackToKey(t *testing.T) {
	sr := newFakeSummaryRepo()
	svc := newSvc(sr, nil, nil)

	_, err := svc.Save(client, weekStart, service.Form{TrainerSummary: "draft"})
	require.NoError(t, err)

	fresh := newSvc(sr, nil, nil)
	row, err := fresh.Save(client, weekStart, service.Form{
		SummaryID: 999, TrainerSummary: "stale id",
	})
	require.NoError(t, err)

	assert.Len(t, sr.rows, 1)
	assert.Equal(t, "stale id", row.TrainerSummary)
	assert.Equal(t, 1, sr.insertCalls) // no second insert happened
}

func TestSaveRecoversLostInsertRace(t *testing.T) {
	sr := newFakeSummaryRepo()
	sr.raceOnInsert = true
	svc := newSvc(sr, nil, nil)

	row, err := svc.Save(client, weekStart, service.Form{TrainerSummary: "ours"})
	require.NoError(t, err)

	// One row total: the competitor's insert won, ours became an update.
	assert.Len(t, sr.rows, 1)
	assert.Equal(t, "ours", row.TrainerSummary)
	assert.Equal(t, 1, sr.insertCalls)
	assert.Equal(t, 1, sr.updateByKeyCalls)
}

func TestSaveSurfacesStorageError(t *testing.T) {
	cr := &fakeCheckinRepo{err: errors.New("connection refused")}
	svc := newSvc(newFakeSummaryRepo(), cr, nil)

	_, err := svc.Save(client, weekStart, service.Form{})
	var se *service.StorageError
	require.ErrorAs(t, err, &se)
	assert.Contains(t, se.Error(), "connection refused")
}

func TestSaveRejectsBadWeekStart(t *testing.T) {
	svc := newSvc(newFakeSummaryRepo(), nil, nil)
	_, err := svc.Save(client, "garbage", service.Form{})
	require.Error(t, err)
	var se *service.StorageError
	assert.False(t, errors.As(err, &se))
}

func TestDeleteIsIdempotent(t *testing.T) {
	sr := newFakeSummaryRepo()
	svc := newSvc(sr, nil, nil)

	_, err := svc.Save(client, weekStart, service.Form{})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(client, weekStart))
	require.NoError(t, svc.Delete(client, weekStart))
	assert.Empty(t, sr.rows)
}

func TestGetMissingWeekReturnsNil(t *testing.T) {
	svc := newSvc(newFakeSummaryRepo(), nil, nil)
	row, err := svc.Get(client, weekStart)
	require.NoError(t, err)
	assert.Nil(t, row)
}
