package api

import (
	"context"
	"net/http"
	"net/url"

	"tourdesk/src/models"
	"tourdesk/src/normalize"
	"tourdesk/src/types"
)

// GetAllBookings returns the flat booking collection the calendar views are
// derived from; there is no aggregation endpoint server-side.
func (c *Client) GetAllBookings(ctx context.Context) ([]models.Booking, error) {
	_, raw, err := c.doJSON(ctx, http.MethodGet, "/api/bookings/all", nil)
	if err != nil {
		return nil, c.reportError(err, "Failed to load bookings", nil)
	}
	return normalize.Bookings(raw), nil
}

func (c *Client) GetUserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	_, raw, err := c.doJSON(ctx, http.MethodGet, "/api/bookings/user/"+url.PathEscape(userID), nil)
	if err != nil {
		return nil, c.reportError(err, "Failed to load bookings", nil)
	}
	return normalize.Bookings(raw), nil
}

// UpdateBookingStatus passes the target status straight through; the server
// owns the status state machine.
func (c *Client) UpdateBookingStatus(ctx context.Context, id string, status types.BookingStatus) error {
	if _, err := c.requireRole(ctx, types.ROLE_ADMIN, types.ROLE_SUPPLIER); err != nil {
		return c.reportError(err, err.Error(), nil)
	}
	body := types.UpdateBookingStatusRequestBody{Status: string(status)}
	_, _, err := c.doJSON(ctx, http.MethodPut, "/api/bookings/"+url.PathEscape(id), body)
	if err != nil {
		return c.reportError(err, "Failed to update booking", map[int]string{
			http.StatusNotFound: "Booking not found",
		})
	}
	c.reportSuccess("Booking updated")
	return nil
}
