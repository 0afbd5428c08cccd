package models

type Review struct {
	ID        string  `json:"_id,omitempty"`
	TourID    TourRef `json:"tour_id,omitempty"`
	UserID    UserRef `json:"user_id,omitempty"`
	Rating    float64 `json:"rating,omitempty"`
	Comment   string  `json:"comment,omitempty"`
	CreatedAt string  `json:"createdAt,omitempty"`
}

type Favorite struct {
	ID     string  `json:"_id,omitempty"`
	UserID UserRef `json:"user_id,omitempty"`
	TourID TourRef `json:"tour_id,omitempty"`
}
