// Package capacity decides whether a public booking request collides with a
// league's capacity hold. The decision function is pure: it sees only the
// hold records, the requested local window, the bay inventory and the count
// of bookings already in the window.
//
// When several leagues hold the same location and date, holds are evaluated
// in id order and the first blocking one wins. There is no priority scheme
// beyond that; overlapping holds from different leagues are a scheduling
// problem upstream, not something this package resolves.
package capacity

import (
	"fmt"
	"math"
	"time"

	"swingbay/internal/domain"
)

const minutesPerDay = 24 * 60

// Evaluate runs the conflict decision over an in-memory hold set. It
// returns the first blocking hold in encounter order, or nil when the
// request can proceed.
func Evaluate(holds []domain.CapacityHold, startLocal, endLocal string, totalBays, existingBookings int) (*domain.CapacityHold, error) {
	reqStart, err := minutesOfDay(startLocal)
	if err != nil {
		return nil, err
	}
	reqEnd, err := minutesOfDay(endLocal)
	if err != nil {
		return nil, err
	}
	if reqEnd <= reqStart {
		return nil, ErrValidation
	}

	for i := range holds {
		h := &holds[i]
		if h.Status != domain.HoldActive {
			continue
		}

		holdStart, err := minutesOfDay(h.StartTime)
		if err != nil {
			return nil, fmt.Errorf("hold %d: %w", h.ID, err)
		}
		holdEnd, err := minutesOfDay(h.EndTime)
		if err != nil {
			return nil, fmt.Errorf("hold %d: %w", h.ID, err)
		}

		// Effective window pads the nominal one by the setup/teardown
		// buffers, clamped to the local day; buffers never wrap midnight.
		effStart := clampMinutes(holdStart - h.BufferBeforeMins)
		effEnd := clampMinutes(holdEnd + h.BufferAfterMins)

		if reqStart >= effEnd || reqEnd <= effStart {
			continue
		}

		switch h.HoldType {
		case domain.HoldAllBays:
			return h, nil
		case domain.HoldNumBays, domain.HoldPctCapacity:
			publicAvail := totalBays - ReservedBays(h.HoldType, h.HoldValue, totalBays)
			if publicAvail < 0 {
				publicAvail = 0
			}
			if existingBookings >= publicAvail {
				return h, nil
			}
		}
	}

	return nil, nil
}

// ReservedBays converts a hold policy into a concrete bay count against the
// location's inventory. pct_capacity rounds up.
func ReservedBays(holdType domain.HoldType, holdValue, totalBays int) int {
	switch holdType {
	case domain.HoldAllBays:
		return totalBays
	case domain.HoldNumBays:
		return holdValue
	case domain.HoldPctCapacity:
		return int(math.Ceil(float64(totalBays) * float64(holdValue) / 100))
	default:
		return 0
	}
}

func minutesOfDay(hhmm string) (int, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, ErrValidation
	}
	return t.Hour()*60 + t.Minute(), nil
}

func clampMinutes(m int) int {
	if m < 0 {
		return 0
	}
	if m > minutesPerDay-1 {
		return minutesPerDay - 1
	}
	return m
}
