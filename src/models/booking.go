package models

import (
	"time"

	"tourdesk/src/types"
)

type SelectedOption struct {
	Name     string  `json:"name,omitempty"`
	Quantity int     `json:"quantity,omitempty"`
	Price    float64 `json:"price,omitempty"`
}

type Booking struct {
	ID              string              `json:"_id,omitempty"`
	UserID          UserRef             `json:"user_id,omitempty"`
	TourID          TourRef             `json:"tour_id,omitempty"`
	BookingDate     string              `json:"booking_date,omitempty"`
	AdultQuantity   int                 `json:"adult_quantity,omitempty"`
	ChildQuantity   int                 `json:"child_quantity,omitempty"`
	TotalPrice      float64             `json:"total_price,omitempty"`
	Status          types.BookingStatus `json:"status,omitempty"`
	SelectedOptions []SelectedOption    `json:"selected_options"`
}

// Guests is adults plus children; negative quantities from bad data count as
// zero.
func (b Booking) Guests() int {
	total := 0
	if b.AdultQuantity > 0 {
		total += b.AdultQuantity
	}
	if b.ChildQuantity > 0 {
		total += b.ChildQuantity
	}
	return total
}

var bookingDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02",
}

// Date parses the booking date against the layouts the backend has been seen
// emitting. ok is false when none match.
func (b Booking) Date() (time.Time, bool) {
	for _, layout := range bookingDateLayouts {
		if t, err := time.Parse(layout, b.BookingDate); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
