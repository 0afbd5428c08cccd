package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"tourdesk/src/models"
	"tourdesk/src/normalize"
	"tourdesk/src/types"
)

func (c *Client) GetVouchers(ctx context.Context) ([]models.Voucher, error) {
	_, raw, err := c.doJSON(ctx, http.MethodGet, "/api/vouchers", nil)
	if err != nil {
		return nil, c.reportError(err, "Failed to load vouchers", nil)
	}
	return normalize.Vouchers(raw), nil
}

// CreateVoucher validates before the role check so malformed input is
// rejected the same way no matter who submits it. The code is canonicalized
// to uppercase/trimmed on send; uniqueness is the server's to enforce and
// comes back as a 409.
func (c *Client) CreateVoucher(ctx context.Context, in types.CreateVoucherRequestBody) (*models.Voucher, error) {
	in.Code = strings.ToUpper(strings.TrimSpace(in.Code))
	if err := c.validateInput(in); err != nil {
		return nil, c.reportError(err, err.Error(), nil)
	}
	if _, err := c.requireRole(ctx, types.ROLE_ADMIN); err != nil {
		return nil, c.reportError(err, err.Error(), nil)
	}
	_, raw, err := c.doJSON(ctx, http.MethodPost, "/api/vouchers", in)
	if err != nil {
		return nil, c.reportError(err, "Failed to create voucher", map[int]string{
			http.StatusConflict: "Voucher code already exists",
		})
	}
	c.reportSuccess("Voucher created")
	obj := normalize.ExtractObject(raw, "voucher")
	if obj == nil {
		return nil, nil
	}
	var v models.Voucher
	if jsonErr := json.Unmarshal(obj, &v); jsonErr != nil {
		return nil, nil
	}
	return &v, nil
}

func (c *Client) DeleteVoucher(ctx context.Context, id string) error {
	if _, err := c.requireRole(ctx, types.ROLE_ADMIN); err != nil {
		return c.reportError(err, err.Error(), nil)
	}
	_, _, err := c.doJSON(ctx, http.MethodDelete, "/api/vouchers/"+url.PathEscape(id), nil)
	if err != nil {
		return c.reportError(err, "Failed to delete voucher", map[int]string{
			http.StatusNotFound: "Voucher not found",
		})
	}
	c.reportSuccess("Voucher deleted")
	return nil
}

func (c *Client) SetVoucherStatus(ctx context.Context, id string, status types.VoucherStatus) error {
	if _, err := c.requireRole(ctx, types.ROLE_ADMIN); err != nil {
		return c.reportError(err, err.Error(), nil)
	}
	body := map[string]any{"status": string(status)}
	_, _, err := c.doJSON(ctx, http.MethodPut, "/api/vouchers/voucher/status/"+url.PathEscape(id), body)
	if err != nil {
		return c.reportError(err, "Failed to change voucher status", map[int]string{
			http.StatusNotFound: "Voucher not found",
		})
	}
	c.reportSuccess("Voucher status updated")
	return nil
}
