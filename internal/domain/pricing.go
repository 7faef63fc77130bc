package domain

import "time"

// Named rate bands used by the price calculator. Rates are selected by
// local hour of day; the names must exist in the location's rate table.
const (
	RateStandard = "Standard Rate"
	RateOffPeak  = "Off-Peak Rate"
)

// PricingRule is a named rate band belonging to one location. HourlyRate is
// in minor currency units (cents) per hour. StartTime/EndTime are local
// wall-clock and may wrap past midnight.
type PricingRule struct {
	ID         int64     `json:"id"`
	LocationID int64     `json:"location_id"`
	Name       string    `json:"name"`
	HourlyRate int64     `json:"hourly_rate"` // cents per hour
	StartTime  string    `json:"start_time"`  // local "15:04"
	EndTime    string    `json:"end_time"`    // local "15:04", may wrap
	DaysOfWeek string    `json:"days_of_week"`
	CreatedAt  time.Time `json:"created_at"`
}
