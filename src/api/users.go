package api

import (
	"context"
	"net/http"
	"net/url"

	"tourdesk/src/models"
	"tourdesk/src/normalize"
	"tourdesk/src/types"
)

func (c *Client) GetUsers(ctx context.Context) ([]models.User, error) {
	_, raw, err := c.doJSON(ctx, http.MethodGet, "/api/all", nil)
	if err != nil {
		return nil, c.reportError(err, "Failed to load users", nil)
	}
	return normalize.Users(raw), nil
}

// DeleteUser historically shipped without a client-side role check, unlike
// the tour and voucher deletes; the server enforces it regardless. The check
// is behind a flag until product settles whether the asymmetry was intended.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	if c.UserDeleteRoleCheck {
		if _, err := c.requireRole(ctx, types.ROLE_ADMIN); err != nil {
			return c.reportError(err, err.Error(), nil)
		}
	}
	_, _, err := c.doJSON(ctx, http.MethodDelete, "/api/"+url.PathEscape(id), nil)
	if err != nil {
		return c.reportError(err, "Failed to delete user", map[int]string{
			http.StatusNotFound: "User not found",
		})
	}
	c.reportSuccess("User deleted")
	return nil
}
