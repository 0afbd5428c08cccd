package lib

import (
	"sort"
	"time"

	"tourdesk/src/models"
)

// Calendar derivations over the flat booking collection. The API has no
// aggregation endpoint, so the month view is computed here from whatever
// GET /api/bookings/all returned. Bookings whose date cannot be parsed are
// left out of every grouping.

type LoadLevel string

const (
	LOAD_LOW    LoadLevel = "low"
	LOAD_MEDIUM LoadLevel = "medium"
	LOAD_HIGH   LoadLevel = "high"
)

// LoadLevelFor classifies a day/tour guest total for the calendar coloring.
func LoadLevelFor(guests int) LoadLevel {
	switch {
	case guests <= 20:
		return LOAD_LOW
	case guests <= 50:
		return LOAD_MEDIUM
	default:
		return LOAD_HIGH
	}
}

type TourLoad struct {
	TourID   string `json:"tour_id"`
	TourName string `json:"tour_name,omitempty"`
	Bookings int    `json:"bookings"`
	Guests   int    `json:"guests"`
}

type DaySummary struct {
	Date     string     `json:"date"`
	Tours    []TourLoad `json:"tours"`
	Bookings int        `json:"bookings"`
	Guests   int        `json:"guests"`
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// BookingsOn filters to bookings on the given calendar day, ignoring the
// time-of-day part of the booking timestamp.
func BookingsOn(bookings []models.Booking, day time.Time) []models.Booking {
	out := []models.Booking{}
	for _, b := range bookings {
		if t, ok := b.Date(); ok && sameDay(t, day) {
			out = append(out, b)
		}
	}
	return out
}

// MonthSummary groups the month's bookings by ISO date and, within a date, by
// tour, accumulating booking and guest counts. Output is ordered by date and
// tour id so two runs over the same data render identically.
func MonthSummary(bookings []models.Booking, year int, month time.Month) []DaySummary {
	type key struct {
		date   string
		tourID string
	}
	loads := map[key]*TourLoad{}
	for _, b := range bookings {
		t, ok := b.Date()
		if !ok || t.Year() != year || t.Month() != month {
			continue
		}
		k := key{date: t.Format("2006-01-02"), tourID: b.TourID.ID}
		load := loads[k]
		if load == nil {
			load = &TourLoad{TourID: b.TourID.ID}
			loads[k] = load
		}
		if load.TourName == "" && b.TourID.Populated() {
			load.TourName = b.TourID.Tour.Name
		}
		load.Bookings++
		load.Guests += b.Guests()
	}

	byDate := map[string][]TourLoad{}
	for k, load := range loads {
		byDate[k.date] = append(byDate[k.date], *load)
	}

	summaries := make([]DaySummary, 0, len(byDate))
	for date, tours := range byDate {
		sort.Slice(tours, func(i, j int) bool { return tours[i].TourID < tours[j].TourID })
		day := DaySummary{Date: date, Tours: tours}
		for _, load := range tours {
			day.Bookings += load.Bookings
			day.Guests += load.Guests
		}
		summaries = append(summaries, day)
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Date < summaries[j].Date })
	return summaries
}
