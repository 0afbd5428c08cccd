package api

import (
	"context"
	"net/http"
	"net/url"

	"tourdesk/src/models"
	"tourdesk/src/normalize"
	"tourdesk/src/types"
)

func (c *Client) GetReviews(ctx context.Context) ([]models.Review, error) {
	_, raw, err := c.doJSON(ctx, http.MethodGet, "/api/reviews", nil)
	if err != nil {
		return nil, c.reportError(err, "Failed to load reviews", nil)
	}
	return normalize.Reviews(raw), nil
}

func (c *Client) GetFavorites(ctx context.Context) ([]models.Favorite, error) {
	_, raw, err := c.doJSON(ctx, http.MethodGet, "/api/favorites", nil)
	if err != nil {
		return nil, c.reportError(err, "Failed to load favorites", nil)
	}
	return normalize.Favorites(raw), nil
}

// Favorites belong to the signed-in account; any role may mutate its own, so
// there is no role gate here, only the bearer requirement.
func (c *Client) AddFavorite(ctx context.Context, tourID string) error {
	in := types.AddFavoriteRequestBody{TourID: tourID}
	if err := c.validateInput(in); err != nil {
		return c.reportError(err, err.Error(), nil)
	}
	_, _, err := c.doJSON(ctx, http.MethodPost, "/api/favorites", in)
	if err != nil {
		return c.reportError(err, "Failed to add favorite", nil)
	}
	c.reportSuccess("Added to favorites")
	return nil
}

func (c *Client) RemoveFavorite(ctx context.Context, id string) error {
	_, _, err := c.doJSON(ctx, http.MethodDelete, "/api/favorites/"+url.PathEscape(id), nil)
	if err != nil {
		return c.reportError(err, "Failed to remove favorite", map[int]string{
			http.StatusNotFound: "Favorite not found",
		})
	}
	c.reportSuccess("Removed from favorites")
	return nil
}
