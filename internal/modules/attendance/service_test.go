package attendance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"swingbay/internal/domain"
	"swingbay/internal/repository"
)

type MockLeagueRepository struct {
	mock.Mock
}

func (m *MockLeagueRepository) GetByID(ctx context.Context, id int64) (*domain.League, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.League), args.Error(1)
}

func (m *MockLeagueRepository) GetWeek(ctx context.Context, weekID int64) (*domain.LeagueWeek, error) {
	args := m.Called(ctx, weekID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeagueWeek), args.Error(1)
}

func (m *MockLeagueRepository) AttendanceSummary(ctx context.Context, weekID int64) (int, int, int, error) {
	args := m.Called(ctx, weekID)
	return args.Int(0), args.Int(1), args.Int(2), args.Error(3)
}

type MockHoldRepository struct {
	mock.Mock
}

func (m *MockHoldRepository) GetByLeagueWeek(ctx context.Context, leagueID, weekID int64) (*domain.CapacityHold, error) {
	args := m.Called(ctx, leagueID, weekID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CapacityHold), args.Error(1)
}

func (m *MockHoldRepository) UpdateTypeValue(ctx context.Context, holdID int64, holdType domain.HoldType, value int) error {
	args := m.Called(ctx, holdID, holdType, value)
	return args.Error(0)
}

func (m *MockHoldRepository) UpdateStatus(ctx context.Context, holdID int64, status domain.HoldStatus) error {
	args := m.Called(ctx, holdID, status)
	return args.Error(0)
}

func (m *MockHoldRepository) ReleaseForLeague(ctx context.Context, leagueID int64) error {
	args := m.Called(ctx, leagueID)
	return args.Error(0)
}

type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Location), args.Error(1)
}

// Fixture: 10-bay location, league holds 5 bays, 4 players per bay.
func newTestService() (*Service, *MockLeagueRepository, *MockHoldRepository) {
	leagues := new(MockLeagueRepository)
	holds := new(MockHoldRepository)
	locations := new(MockLocationRepository)

	leagues.On("GetByID", mock.Anything, int64(1)).Return(&domain.League{
		ID:            1,
		LocationID:    1,
		PlayersPerBay: 4,
		HoldType:      domain.HoldNumBays,
		HoldValue:     5,
		Status:        domain.LeagueActive,
	}, nil)
	leagues.On("GetWeek", mock.Anything, int64(10)).Return(&domain.LeagueWeek{ID: 10, LeagueID: 1, WeekDate: "2026-09-03"}, nil)
	locations.On("GetByID", mock.Anything, int64(1)).Return(&domain.Location{ID: 1, Timezone: "UTC", TotalBays: 10}, nil)
	holds.On("GetByLeagueWeek", mock.Anything, int64(1), int64(10)).Return(&domain.CapacityHold{
		ID:        77,
		LeagueID:  1,
		HoldType:  domain.HoldNumBays,
		HoldValue: 5,
		Status:    domain.HoldActive,
	}, nil)

	return NewService(leagues, holds, locations), leagues, holds
}

func TestAdjustHold_ShrinksToConfirmedNeed(t *testing.T) {
	svc, leagues, holds := newTestService()

	// 14 confirmed at 4 per bay needs 4 bays, down from the held 5.
	leagues.On("AttendanceSummary", mock.Anything, int64(10)).Return(14, 3, 3, nil)
	holds.On("UpdateTypeValue", mock.Anything, int64(77), domain.HoldNumBays, 4).Return(nil)

	result, err := svc.AdjustHold(context.Background(), 1, 10)

	assert.NoError(t, err)
	assert.True(t, result.Adjusted)
	assert.False(t, result.Suspended)
	assert.Equal(t, 4, result.BaysNeeded)
	assert.Equal(t, 5, result.OriginalBays)
	assert.Equal(t, Summary{Confirmed: 14, Declined: 3, NoResponse: 3}, result.Attendance)
	holds.AssertExpectations(t)
}

func TestAdjustHold_NeverGrowsTheHold(t *testing.T) {
	svc, leagues, holds := newTestService()

	// 28 confirmed needs 7 bays but the season hold is 5; leave it alone.
	leagues.On("AttendanceSummary", mock.Anything, int64(10)).Return(28, 0, 0, nil)

	result, err := svc.AdjustHold(context.Background(), 1, 10)

	assert.NoError(t, err)
	assert.False(t, result.Adjusted)
	assert.Equal(t, 7, result.BaysNeeded)
	assert.Equal(t, 5, result.OriginalBays)
	holds.AssertNotCalled(t, "UpdateTypeValue", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	holds.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdjustHold_ZeroConfirmedSuspends(t *testing.T) {
	svc, leagues, holds := newTestService()

	leagues.On("AttendanceSummary", mock.Anything, int64(10)).Return(0, 12, 8, nil)
	holds.On("UpdateStatus", mock.Anything, int64(77), domain.HoldSuspended).Return(nil)

	result, err := svc.AdjustHold(context.Background(), 1, 10)

	assert.NoError(t, err)
	assert.True(t, result.Adjusted)
	assert.True(t, result.Suspended)
	assert.Equal(t, 0, result.BaysNeeded)
	holds.AssertExpectations(t)
	holds.AssertNotCalled(t, "UpdateTypeValue", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAdjustHold_ExactMultipleNeedsNoExtraBay(t *testing.T) {
	svc, leagues, holds := newTestService()

	// 16 confirmed at 4 per bay is exactly 4 bays, no rounding up.
	leagues.On("AttendanceSummary", mock.Anything, int64(10)).Return(16, 0, 0, nil)
	holds.On("UpdateTypeValue", mock.Anything, int64(77), domain.HoldNumBays, 4).Return(nil)

	result, err := svc.AdjustHold(context.Background(), 1, 10)

	assert.NoError(t, err)
	assert.True(t, result.Adjusted)
	assert.Equal(t, 4, result.BaysNeeded)
}

func TestAdjustHold_RerunWithSameAttendanceIsIdempotent(t *testing.T) {
	svc, leagues, holds := newTestService()

	leagues.On("AttendanceSummary", mock.Anything, int64(10)).Return(14, 3, 3, nil)
	holds.On("UpdateTypeValue", mock.Anything, int64(77), domain.HoldNumBays, 4).Return(nil).Twice()

	first, err := svc.AdjustHold(context.Background(), 1, 10)
	assert.NoError(t, err)
	second, err := svc.AdjustHold(context.Background(), 1, 10)
	assert.NoError(t, err)

	// Both runs settle on the same value; rewriting it is harmless.
	assert.Equal(t, first.BaysNeeded, second.BaysNeeded)
	assert.Equal(t, first.OriginalBays, second.OriginalBays)
}

func TestAdjustHold_RejectsInvalidPlayersPerBay(t *testing.T) {
	leagues := new(MockLeagueRepository)
	holds := new(MockHoldRepository)
	locations := new(MockLocationRepository)
	leagues.On("GetByID", mock.Anything, int64(1)).Return(&domain.League{
		ID:            1,
		LocationID:    1,
		PlayersPerBay: 0,
		HoldType:      domain.HoldNumBays,
		HoldValue:     5,
		Status:        domain.LeagueActive,
	}, nil)

	svc := NewService(leagues, holds, locations)
	_, err := svc.AdjustHold(context.Background(), 1, 10)

	// The hold must stay untouched; a zero divisor would have written a
	// garbage bay count into it.
	assert.ErrorIs(t, err, ErrValidation)
	holds.AssertNotCalled(t, "UpdateTypeValue", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	holds.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestReleaseLeagueHolds(t *testing.T) {
	svc, _, holds := newTestService()
	holds.On("ReleaseForLeague", mock.Anything, int64(1)).Return(nil)

	assert.NoError(t, svc.ReleaseLeagueHolds(context.Background(), 1))
	holds.AssertExpectations(t)
}

func TestReleaseLeagueHolds_UnknownLeague(t *testing.T) {
	leagues := new(MockLeagueRepository)
	holds := new(MockHoldRepository)
	locations := new(MockLocationRepository)
	leagues.On("GetByID", mock.Anything, int64(404)).Return(nil, repository.ErrNotFound)

	svc := NewService(leagues, holds, locations)
	err := svc.ReleaseLeagueHolds(context.Background(), 404)

	assert.ErrorIs(t, err, ErrNotFound)
	holds.AssertNotCalled(t, "ReleaseForLeague", mock.Anything, mock.Anything)
}

func TestAdjustHold_UnknownLeague(t *testing.T) {
	leagues := new(MockLeagueRepository)
	holds := new(MockHoldRepository)
	locations := new(MockLocationRepository)
	leagues.On("GetByID", mock.Anything, int64(404)).Return(nil, repository.ErrNotFound)

	svc := NewService(leagues, holds, locations)
	_, err := svc.AdjustHold(context.Background(), 404, 10)

	assert.ErrorIs(t, err, ErrNotFound)
}
