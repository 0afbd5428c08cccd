package models

import "tourdesk/src/types"

type TourService struct {
	UIID string `json:"uiid,omitempty"`
	Name string `json:"name,omitempty"`
}

type Tour struct {
	ID               string           `json:"_id,omitempty"`
	Name             string           `json:"name,omitempty"`
	Description      string           `json:"description,omitempty"`
	Price            float64          `json:"price,omitempty"`
	PriceChild       float64          `json:"price_child,omitempty"`
	MaxTicketsPerDay int              `json:"max_tickets_per_day,omitempty"`
	Location         string           `json:"location,omitempty"`
	CateID           CategoryRef      `json:"cateID,omitempty"`
	SupplierID       SupplierRef      `json:"supplier_id,omitempty"`
	OpeningTime      string           `json:"opening_time,omitempty"`
	ClosingTime      string           `json:"closing_time,omitempty"`
	Status           types.TourStatus `json:"status,omitempty"`
	Image            []string         `json:"image,omitempty"`
	Rating           float64          `json:"rating,omitempty"`
	Lat              float64          `json:"lat,omitempty"`
	Lng              float64          `json:"lng,omitempty"`
	Services         []TourService    `json:"services,omitempty"`
}

type Category struct {
	ID          string `json:"_id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}
