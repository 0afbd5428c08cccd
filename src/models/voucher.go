package models

import "tourdesk/src/types"

type Voucher struct {
	ID        string              `json:"_id,omitempty"`
	TourID    TourRef             `json:"tour_id,omitempty"`
	Code      string              `json:"code,omitempty"`
	Discount  float64             `json:"discount,omitempty"`
	Condition string              `json:"condition,omitempty"`
	StartDate string              `json:"start_date,omitempty"`
	EndDate   string              `json:"end_date,omitempty"`
	Status    types.VoucherStatus `json:"status,omitempty"`
}
