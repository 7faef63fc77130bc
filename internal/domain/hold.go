package domain

import "time"

type HoldType string

const (
	HoldAllBays     HoldType = "all_bays"
	HoldNumBays     HoldType = "num_bays"
	HoldPctCapacity HoldType = "pct_capacity"
)

type HoldStatus string

const (
	HoldActive    HoldStatus = "active"
	HoldSuspended HoldStatus = "suspended"
	HoldReleased  HoldStatus = "released"
)

// CapacityHold is a league's claim on some or all of a location's bay
// capacity for one date. Times are local wall-clock HH:MM, not UTC, because
// buffers and overlap comparisons are done in local terms.
type CapacityHold struct {
	ID           int64      `json:"id"`
	LeagueID     int64      `json:"league_id"`
	LeagueWeekID *int64     `json:"league_week_id,omitempty"` // nil for season-level holds
	LocationID   int64      `json:"location_id"`
	HoldDate     string     `json:"hold_date"`  // local calendar date, "2006-01-02"
	StartTime    string     `json:"start_time"` // local "15:04"
	EndTime      string     `json:"end_time"`   // local "15:04"
	HoldType     HoldType   `json:"hold_type"`
	HoldValue    int        `json:"hold_value"` // ignored for all_bays; bay count for num_bays; 0-100 for pct_capacity

	BufferBeforeMins int `json:"buffer_before_mins"`
	BufferAfterMins  int `json:"buffer_after_mins"`

	Status    HoldStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
