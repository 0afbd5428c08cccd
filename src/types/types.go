package types

type Role string

const (
	ROLE_ADMIN    Role = "admin"
	ROLE_SUPPLIER Role = "supplier"
	ROLE_USER     Role = "user"
	ROLE_NONE     Role = ""
)

type TourStatus string

const (
	TOUR_PENDING  TourStatus = "pending"
	TOUR_ACTIVE   TourStatus = "active"
	TOUR_DEACTIVE TourStatus = "deactive"
	TOUR_REJECTED TourStatus = "rejected"
)

type BookingStatus string

const (
	BOOKING_PENDING          BookingStatus = "pending"
	BOOKING_CONFIRMED        BookingStatus = "confirmed"
	BOOKING_PAID             BookingStatus = "paid"
	BOOKING_ONGOING          BookingStatus = "ongoing"
	BOOKING_COMPLETED        BookingStatus = "completed"
	BOOKING_CANCELED         BookingStatus = "canceled"
	BOOKING_CANCELLED        BookingStatus = "cancelled"
	BOOKING_REFUND_REQUESTED BookingStatus = "refund_requested"
	BOOKING_REFUNDED         BookingStatus = "refunded"
	BOOKING_EXPIRED          BookingStatus = "expired"
)

type VoucherStatus string

const (
	VOUCHER_ACTIVE   VoucherStatus = "active"
	VOUCHER_DEACTIVE VoucherStatus = "deactive"
)

// TIME_PARSE_FORMAT is the wire format for voucher validity windows and
// booking dates coming from the dashboard forms.
const TIME_PARSE_FORMAT = "2006-01-02"

type CreateVoucherRequestBody struct {
	TourID    string  `json:"tour_id" validate:"required"`
	Code      string  `json:"code" validate:"required"`
	Discount  float64 `json:"discount" validate:"required,gt=0,lte=100"`
	Condition string  `json:"condition,omitempty"`
	StartDate string  `json:"start_date" validate:"required,datelayout"`
	EndDate   string  `json:"end_date" validate:"required,datelayout,futuredate,gtdate=StartDate"`
}

type CreateSupplierRequestBody struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginEmailRequestBody struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateBookingStatusRequestBody struct {
	Status string `json:"status"`
}

type ApproveTourRequestBody struct {
	Approved bool   `json:"approved"`
	Status   string `json:"status"`
}

type AddFavoriteRequestBody struct {
	TourID string `json:"tour_id" validate:"required"`
}
