package api

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"tourdesk/src/models"
	"tourdesk/src/normalize"
	"tourdesk/src/types"
)

// TourInput is the create form. Price and capacity arrive as strings because
// that is what the forms produce; they must parse to positive numbers.
// Category and supplier references may be populated objects — only the bare
// id goes on the wire.
type TourInput struct {
	Name             string `validate:"required"`
	Description      string `validate:"required"`
	Price            string `validate:"required,positivenumber"`
	PriceChild       string `validate:"omitempty,positivenumber"`
	MaxTicketsPerDay string `validate:"required,positivenumber"`
	Location         string `validate:"required"`
	CateID           models.CategoryRef
	SupplierID       models.SupplierRef
	Image            []string `validate:"required,min=1,dive,required"`
	OpeningTime      string   `validate:"required"`
	ClosingTime      string   `validate:"required"`
	Status           string   `validate:"required"`
	Lat              float64
	Lng              float64
	Services         []models.TourService
}

// TourUpdateInput carries only the fields the caller actually set; nil means
// "leave alone", so a partial edit never overwrites server state with zero
// values.
type TourUpdateInput struct {
	Name             *string
	Description      *string
	Price            *string
	PriceChild       *string
	MaxTicketsPerDay *string
	Location         *string
	CateID           *models.CategoryRef
	SupplierID       *models.SupplierRef
	Image            []string
	OpeningTime      *string
	ClosingTime      *string
	Status           *string
	Lat              *float64
	Lng              *float64
	Services         []models.TourService
}

// NewTourService tags a service entry with a client-generated id so form
// lists can track rows. The id is stripped again before transmission.
func NewTourService(name string) models.TourService {
	return models.TourService{UIID: uuid.NewString(), Name: name}
}

func stripServices(services []models.TourService) []models.TourService {
	out := make([]models.TourService, 0, len(services))
	for _, s := range services {
		out = append(out, models.TourService{Name: s.Name})
	}
	return out
}

func parsePositive(field, value string) (float64, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || n <= 0 {
		return 0, &ValidationError{Field: field, Message: "must be a positive number"}
	}
	return n, nil
}

func (c *Client) validateTourInput(in TourInput) error {
	if err := c.validateInput(in); err != nil {
		return err
	}
	for _, img := range in.Image {
		if strings.TrimSpace(img) == "" {
			return &ValidationError{Field: "image", Message: "must not contain blank entries"}
		}
	}
	if in.CateID.Empty() {
		return &ValidationError{Field: "cateID", Message: "is required"}
	}
	if in.SupplierID.Empty() {
		return &ValidationError{Field: "supplier_id", Message: "is required"}
	}
	return nil
}

func (in TourInput) payload(role types.Role) map[string]any {
	price, _ := strconv.ParseFloat(strings.TrimSpace(in.Price), 64)
	capacity, _ := strconv.ParseFloat(strings.TrimSpace(in.MaxTicketsPerDay), 64)
	p := map[string]any{
		"name":                in.Name,
		"description":         in.Description,
		"price":               price,
		"max_tickets_per_day": int(capacity),
		"location":            in.Location,
		"cateID":              in.CateID.ID,
		"image":               in.Image,
		"opening_time":        in.OpeningTime,
		"closing_time":        in.ClosingTime,
		"status":              in.Status,
	}
	if in.PriceChild != "" {
		childPrice, _ := strconv.ParseFloat(strings.TrimSpace(in.PriceChild), 64)
		p["price_child"] = childPrice
	}
	// The supplier endpoint derives the supplier from the caller's own
	// account, so the field is dropped entirely for that role.
	if role != types.ROLE_SUPPLIER {
		p["supplier_id"] = in.SupplierID.ID
	}
	if in.Lat != 0 || in.Lng != 0 {
		p["lat"] = in.Lat
		p["lng"] = in.Lng
	}
	if in.Services != nil {
		p["services"] = stripServices(in.Services)
	}
	return p
}

func (in TourUpdateInput) payload() (map[string]any, error) {
	p := map[string]any{}
	if in.Name != nil {
		p["name"] = *in.Name
	}
	if in.Description != nil {
		p["description"] = *in.Description
	}
	if in.Price != nil {
		n, err := parsePositive("price", *in.Price)
		if err != nil {
			return nil, err
		}
		p["price"] = n
	}
	if in.PriceChild != nil {
		n, err := parsePositive("price_child", *in.PriceChild)
		if err != nil {
			return nil, err
		}
		p["price_child"] = n
	}
	if in.MaxTicketsPerDay != nil {
		n, err := parsePositive("max_tickets_per_day", *in.MaxTicketsPerDay)
		if err != nil {
			return nil, err
		}
		p["max_tickets_per_day"] = int(n)
	}
	if in.Location != nil {
		p["location"] = *in.Location
	}
	if in.CateID != nil {
		p["cateID"] = in.CateID.ID
	}
	if in.SupplierID != nil {
		p["supplier_id"] = in.SupplierID.ID
	}
	if in.Image != nil {
		p["image"] = in.Image
	}
	if in.OpeningTime != nil {
		p["opening_time"] = *in.OpeningTime
	}
	if in.ClosingTime != nil {
		p["closing_time"] = *in.ClosingTime
	}
	if in.Status != nil {
		p["status"] = *in.Status
	}
	if in.Lat != nil {
		p["lat"] = *in.Lat
	}
	if in.Lng != nil {
		p["lng"] = *in.Lng
	}
	if in.Services != nil {
		p["services"] = stripServices(in.Services)
	}
	return p, nil
}

func (c *Client) GetTours(ctx context.Context) ([]models.Tour, error) {
	_, raw, err := c.doJSON(ctx, http.MethodGet, "/api/tours", nil)
	if err != nil {
		return nil, c.reportError(err, "Failed to load tours", nil)
	}
	return normalize.Tours(raw), nil
}

func (c *Client) GetTour(ctx context.Context, id string) (*models.Tour, error) {
	_, raw, err := c.doJSON(ctx, http.MethodGet, "/api/tours/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, c.reportError(err, "Failed to load tour", map[int]string{
			http.StatusNotFound: "Tour not found",
		})
	}
	t, ok := normalize.Tour(raw)
	if !ok {
		return nil, nil
	}
	return &t, nil
}

// ToursBySupplier lists the caller's own tours; populate asks the server to
// embed the named relations when it supports that.
func (c *Client) ToursBySupplier(ctx context.Context, populate string) ([]models.Tour, error) {
	q := ""
	if populate != "" {
		q = "?populate=" + url.QueryEscape(populate)
	}
	_, raw, err := c.doJSON(ctx, http.MethodGet, "/api/tours-by-supplier"+q, nil)
	if err != nil {
		return nil, c.reportError(err, "Failed to load tours", nil)
	}
	return normalize.Tours(raw), nil
}

func (c *Client) GetCategories(ctx context.Context) ([]models.Category, error) {
	_, raw, err := c.doJSON(ctx, http.MethodGet, "/api/categories", nil)
	if err != nil {
		return nil, c.reportError(err, "Failed to load categories", nil)
	}
	return normalize.Categories(raw), nil
}

func (c *Client) ToursByLocation(ctx context.Context, cateID string) ([]models.Tour, error) {
	_, raw, err := c.doJSON(ctx, http.MethodGet, "/api/categories/tours-by-location?cateID="+url.QueryEscape(cateID), nil)
	if err != nil {
		return nil, c.reportError(err, "Failed to load tours", nil)
	}
	return normalize.Tours(raw), nil
}

// CreateTour validates, gates on role and posts the tour. Suppliers go
// through their own endpoint and never transmit a supplier reference.
func (c *Client) CreateTour(ctx context.Context, in TourInput) (*models.Tour, error) {
	if err := c.validateTourInput(in); err != nil {
		return nil, c.reportError(err, err.Error(), nil)
	}
	role, err := c.requireRole(ctx, types.ROLE_ADMIN, types.ROLE_SUPPLIER)
	if err != nil {
		return nil, c.reportError(err, err.Error(), nil)
	}

	path := "/api/tours"
	if role == types.ROLE_SUPPLIER {
		path = "/api/create-by-supplier"
	}
	_, raw, err := c.doJSON(ctx, http.MethodPost, path, in.payload(role))
	if err != nil {
		return nil, c.reportError(err, "Failed to create tour", nil)
	}
	t, _ := normalize.Tour(raw)
	c.reportSuccess("Tour created")
	return &t, nil
}

// UpdateTour sends a partial payload of only the fields present in the
// input. When the server answers with a bare supplier id, the supplier is
// re-populated locally on a best-effort basis.
func (c *Client) UpdateTour(ctx context.Context, id string, in TourUpdateInput) (*models.Tour, error) {
	payload, err := in.payload()
	if err != nil {
		return nil, c.reportError(err, err.Error(), nil)
	}
	if _, err := c.requireRole(ctx, types.ROLE_ADMIN, types.ROLE_SUPPLIER); err != nil {
		return nil, c.reportError(err, err.Error(), nil)
	}

	_, raw, err := c.doJSON(ctx, http.MethodPut, "/api/update-tours/"+url.PathEscape(id), payload)
	if err != nil {
		return nil, c.reportError(err, "Failed to update tour", map[int]string{
			http.StatusNotFound: "Tour not found",
		})
	}
	t, ok := normalize.Tour(raw)
	if ok && !t.SupplierID.Populated() && t.SupplierID.ID != "" {
		c.populateTourSupplier(ctx, &t)
	}
	c.reportSuccess("Tour updated")
	if !ok {
		return nil, nil
	}
	return &t, nil
}

// populateTourSupplier joins the supplier client-side when the server did not
// populate it. Failures are logged and swallowed; the update already
// succeeded.
func (c *Client) populateTourSupplier(ctx context.Context, t *models.Tour) {
	suppliers, err := c.fetchSuppliers(ctx)
	if err != nil {
		log.Printf("tour %s: supplier re-population skipped: %s\n", t.ID, err.Error())
		return
	}
	for i := range suppliers {
		if suppliers[i].ID == t.SupplierID.ID {
			t.SupplierID.Supplier = &suppliers[i]
			return
		}
	}
	log.Printf("tour %s: supplier %s not in supplier collection\n", t.ID, t.SupplierID.ID)
}

func (c *Client) DeleteTour(ctx context.Context, id string) error {
	if _, err := c.requireRole(ctx, types.ROLE_ADMIN, types.ROLE_SUPPLIER); err != nil {
		return c.reportError(err, err.Error(), nil)
	}
	_, _, err := c.doJSON(ctx, http.MethodDelete, "/api/tours/"+url.PathEscape(id), nil)
	if err != nil {
		return c.reportError(err, "Failed to delete tour", map[int]string{
			http.StatusNotFound: "Tour not found",
		})
	}
	c.reportSuccess("Tour deleted")
	return nil
}

// There is no dedicated approval endpoint; approving, rejecting and toggling
// all go through the same set-status call with different values.
func (c *Client) setTourStatus(ctx context.Context, id string, approved bool, status types.TourStatus, done string) error {
	if _, err := c.requireRole(ctx, types.ROLE_ADMIN); err != nil {
		return c.reportError(err, err.Error(), nil)
	}
	body := types.ApproveTourRequestBody{Approved: approved, Status: string(status)}
	_, _, err := c.doJSON(ctx, http.MethodPut, "/api/approve/"+url.PathEscape(id), body)
	if err != nil {
		return c.reportError(err, "Failed to change tour status", map[int]string{
			http.StatusNotFound: "Tour not found",
		})
	}
	c.reportSuccess(done)
	return nil
}

func (c *Client) ApproveTour(ctx context.Context, id string) error {
	return c.setTourStatus(ctx, id, true, types.TOUR_ACTIVE, "Tour approved")
}

func (c *Client) RejectTour(ctx context.Context, id string) error {
	return c.setTourStatus(ctx, id, false, types.TOUR_REJECTED, "Tour rejected")
}

// ToggleTourStatus flips a tour between active and deactive.
func (c *Client) ToggleTourStatus(ctx context.Context, id string, active bool) error {
	if active {
		return c.setTourStatus(ctx, id, true, types.TOUR_ACTIVE, "Tour activated")
	}
	return c.setTourStatus(ctx, id, false, types.TOUR_DEACTIVE, "Tour deactivated")
}
