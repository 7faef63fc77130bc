package domain

import "time"

type LeagueStatus string

const (
	LeagueActive    LeagueStatus = "active"
	LeagueCancelled LeagueStatus = "cancelled"
)

// League is a recurring weekly program that claims capacity via holds.
// HoldType/HoldValue describe the season-level hold configuration used as
// the ceiling for attendance-driven shrinking.
type League struct {
	ID            int64        `json:"id"`
	LocationID    int64        `json:"location_id"`
	Name          string       `json:"name"`
	PlayersPerBay int          `json:"players_per_bay"`
	HoldType      HoldType     `json:"hold_type"`
	HoldValue     int          `json:"hold_value"`
	Status        LeagueStatus `json:"status"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// LeagueWeek is one occurrence of a league on a concrete date.
type LeagueWeek struct {
	ID       int64  `json:"id"`
	LeagueID int64  `json:"league_id"`
	WeekDate string `json:"week_date"` // local calendar date, "2006-01-02"
	Locked   bool   `json:"locked"`
}

type AttendanceStatus string

const (
	AttendanceConfirmed  AttendanceStatus = "confirmed"
	AttendanceDeclined   AttendanceStatus = "declined"
	AttendanceNoResponse AttendanceStatus = "no_response"
)

// LeagueAttendance is one player's response for one league week.
type LeagueAttendance struct {
	ID           int64            `json:"id"`
	LeagueWeekID int64            `json:"league_week_id"`
	UserID       int64            `json:"user_id"`
	Status       AttendanceStatus `json:"status"`
	UpdatedAt    time.Time        `json:"updated_at"`
}
