package api

import (
	"context"
	"net/http"

	"tourdesk/src/models"
	"tourdesk/src/normalize"
	"tourdesk/src/types"
)

func (c *Client) fetchSuppliers(ctx context.Context) ([]models.Supplier, error) {
	_, raw, err := c.doJSON(ctx, http.MethodGet, "/api/suppliers", nil)
	if err != nil {
		return nil, err
	}
	return normalize.Suppliers(raw), nil
}

// GetSuppliers lists all suppliers; every returned item carries its id under
// both "_id" and "id" when re-serialized, so either key matches downstream.
func (c *Client) GetSuppliers(ctx context.Context) ([]models.Supplier, error) {
	suppliers, err := c.fetchSuppliers(ctx)
	if err != nil {
		return nil, c.reportError(err, "Failed to load suppliers", nil)
	}
	return suppliers, nil
}

func (c *Client) CreateSupplier(ctx context.Context, in types.CreateSupplierRequestBody) ([]models.Supplier, error) {
	if err := c.validateInput(in); err != nil {
		return nil, c.reportError(err, err.Error(), nil)
	}
	if _, err := c.requireRole(ctx, types.ROLE_ADMIN); err != nil {
		return nil, c.reportError(err, err.Error(), nil)
	}
	_, raw, err := c.doJSON(ctx, http.MethodPost, "/api/admin/create-supplier", in)
	if err != nil {
		return nil, c.reportError(err, "Failed to create supplier", map[int]string{
			http.StatusConflict: "A supplier with that email already exists",
		})
	}
	c.reportSuccess("Supplier created")
	return normalize.Suppliers(raw), nil
}
