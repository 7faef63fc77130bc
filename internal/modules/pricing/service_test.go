package pricing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"swingbay/internal/domain"
	"swingbay/internal/repository"
)

type MockRateRepository struct {
	mock.Mock
}

func (m *MockRateRepository) GetRatesForLocation(ctx context.Context, locationID int64) ([]domain.PricingRule, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PricingRule), args.Error(1)
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

func fullRateTable() []domain.PricingRule {
	return []domain.PricingRule{
		{ID: 1, LocationID: 1, Name: domain.RateStandard, HourlyRate: 6000, StartTime: "09:00", EndTime: "02:00"},
		{ID: 2, LocationID: 1, Name: domain.RateOffPeak, HourlyRate: 4000, StartTime: "02:00", EndTime: "09:00"},
	}
}

func newTestService(tz string, rules []domain.PricingRule) (*Service, *MockRateRepository, *MockLocationRepository) {
	rates := new(MockRateRepository)
	locations := new(MockLocationRepository)
	locations.On("GetByID", mock.Anything, int64(1)).Return(&domain.Location{ID: 1, Timezone: tz, TotalBays: 10}, nil)
	if rules != nil {
		rates.On("GetRatesForLocation", mock.Anything, int64(1)).Return(rules, nil)
	}
	return NewService(rates, locations), rates, locations
}

func TestCalculatePrice_SingleRateHour(t *testing.T) {
	svc, _, _ := newTestService("UTC", fullRateTable())

	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	quote, err := svc.CalculatePrice(context.Background(), 1, start, start.Add(time.Hour))

	assert.NoError(t, err)
	assert.Equal(t, int64(6000), quote.Total)
	assert.Equal(t, "USD", quote.Currency)
	assert.Len(t, quote.Segments, 1)
	assert.Equal(t, domain.RateStandard, quote.Segments[0].RateName)
	assert.Equal(t, start, quote.Segments[0].Start)
	assert.Equal(t, start.Add(time.Hour), quote.Segments[0].End)
}

func TestCalculatePrice_BlendsAcrossRateBoundary(t *testing.T) {
	svc, _, _ := newTestService("UTC", fullRateTable())

	// 01:30-02:30 straddles the 2am switch from Standard to Off-Peak:
	// two Standard increments at 1500, then two Off-Peak at 1000.
	start := time.Date(2026, 9, 1, 1, 30, 0, 0, time.UTC)
	quote, err := svc.CalculatePrice(context.Background(), 1, start, start.Add(time.Hour))

	assert.NoError(t, err)
	assert.Equal(t, int64(5000), quote.Total)
	assert.Len(t, quote.Segments, 2)
	assert.Equal(t, domain.RateStandard, quote.Segments[0].RateName)
	assert.Equal(t, int64(3000), quote.Segments[0].Amount)
	assert.Equal(t, domain.RateOffPeak, quote.Segments[1].RateName)
	assert.Equal(t, int64(2000), quote.Segments[1].Amount)

	var sum int64
	for _, seg := range quote.Segments {
		sum += seg.Amount
	}
	assert.Equal(t, quote.Total, sum)
}

func TestCalculatePrice_UsesVenueLocalTime(t *testing.T) {
	svc, _, _ := newTestService("America/Chicago", fullRateTable())

	// 14:30 UTC on a January date is 08:30 CST: the first half hour is
	// Off-Peak and the rate flips at 09:00 local, not 09:00 UTC.
	start := time.Date(2026, 1, 15, 14, 30, 0, 0, time.UTC)
	quote, err := svc.CalculatePrice(context.Background(), 1, start, start.Add(time.Hour))

	assert.NoError(t, err)
	assert.Equal(t, int64(5000), quote.Total)
	assert.Len(t, quote.Segments, 2)
	assert.Equal(t, domain.RateOffPeak, quote.Segments[0].RateName)
	assert.Equal(t, int64(2000), quote.Segments[0].Amount)
	assert.Equal(t, domain.RateStandard, quote.Segments[1].RateName)
	assert.Equal(t, int64(3000), quote.Segments[1].Amount)
}

func TestCalculatePrice_QuarterHourGranularity(t *testing.T) {
	svc, _, _ := newTestService("UTC", fullRateTable())

	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	quote, err := svc.CalculatePrice(context.Background(), 1, start, start.Add(15*time.Minute))

	assert.NoError(t, err)
	assert.Equal(t, int64(1500), quote.Total)
}

func TestCalculatePrice_MissingRateBand(t *testing.T) {
	rules := []domain.PricingRule{
		{ID: 1, LocationID: 1, Name: domain.RateStandard, HourlyRate: 6000},
	}
	svc, _, _ := newTestService("UTC", rules)

	// 03:00 falls in the Off-Peak band, which this location never defined.
	start := time.Date(2026, 9, 1, 3, 0, 0, 0, time.UTC)
	_, err := svc.CalculatePrice(context.Background(), 1, start, start.Add(time.Hour))

	assert.ErrorIs(t, err, ErrNoPricingRule)
}

func TestCalculatePrice_RejectsEmptyWindow(t *testing.T) {
	svc, _, _ := newTestService("UTC", nil)

	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	_, err := svc.CalculatePrice(context.Background(), 1, start, start)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CalculatePrice(context.Background(), 1, start, start.Add(-time.Hour))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCalculatePrice_UnknownLocation(t *testing.T) {
	rates := new(MockRateRepository)
	locations := new(MockLocationRepository)
	locations.On("GetByID", mock.Anything, int64(42)).Return(nil, repository.ErrNotFound)
	svc := NewService(rates, locations)

	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	_, err := svc.CalculatePrice(context.Background(), 42, start, start.Add(time.Hour))

	assert.ErrorIs(t, err, ErrInvalidLocation)
}
