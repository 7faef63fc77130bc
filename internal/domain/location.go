package domain

import "time"

// Location is one physical venue. Timezone is an IANA name such as
// "America/Chicago" and drives all local wall-clock conversions.
type Location struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Timezone  string    `json:"timezone"`
	TotalBays int       `json:"total_bays"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Bay struct {
	ID         int64     `json:"id"`
	LocationID int64     `json:"location_id"`
	Number     int       `json:"number"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
}
