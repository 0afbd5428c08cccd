package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"

	"tourdesk/src/models"
)

func validTourInput() TourInput {
	return TourInput{
		Name:             "Island Hopping",
		Description:      "Full day island tour",
		Price:            "49.50",
		MaxTicketsPerDay: "30",
		Location:         "El Nido",
		CateID:           models.CategoryRef{ID: "cat1"},
		SupplierID: models.SupplierRef{
			ID:       "sup1",
			Supplier: &models.Supplier{ID: "sup1", Name: "Island Tours Inc"},
		},
		Image:       []string{"https://img.example.com/1.jpg"},
		OpeningTime: "08:00",
		ClosingTime: "17:00",
		Status:      "pending",
		Services:    []models.TourService{NewTourService("lunch")},
	}
}

func TestCreateTourAsSupplierOmitsSupplierReference(t *testing.T) {
	b := newBackend().withProfile("supplier")
	b.engine.POST("/api/create-by-supplier", func(ctx *gin.Context) {
		ctx.JSON(http.StatusCreated, gin.H{"data": gin.H{"_id": "t1", "name": "Island Hopping"}})
	})
	c, notifier := newTestClient(t, b)

	tour, err := c.CreateTour(context.Background(), validTourInput())
	assert.NoError(t, err)
	assert.Equal(t, "t1", tour.ID)

	req := b.find(http.MethodPost, "/api/create-by-supplier")
	if assert.NotNil(t, req) {
		body := gjson.ParseBytes(req.Body)
		assert.False(t, body.Get("supplier_id").Exists(),
			"supplier role must never transmit supplier_id")
		assert.Equal(t, "cat1", body.Get("cateID").String())
		assert.Equal(t, 49.5, body.Get("price").Float())
	}
	assert.Nil(t, b.find(http.MethodPost, "/api/tours"))
	assert.Equal(t, []string{"Tour created"}, notifier.successes)
}

func TestCreateTourAsAdminSendsBareSupplierID(t *testing.T) {
	b := newBackend().withProfile("admin")
	b.engine.POST("/api/tours", func(ctx *gin.Context) {
		ctx.JSON(http.StatusCreated, gin.H{"data": gin.H{"_id": "t2"}})
	})
	c, _ := newTestClient(t, b)

	_, err := c.CreateTour(context.Background(), validTourInput())
	assert.NoError(t, err)

	req := b.find(http.MethodPost, "/api/tours")
	if assert.NotNil(t, req) {
		body := gjson.ParseBytes(req.Body)
		// The populated object is flattened to its id.
		assert.Equal(t, gjson.String, body.Get("supplier_id").Type)
		assert.Equal(t, "sup1", body.Get("supplier_id").String())
	}
}

func TestCreateTourStripsServiceUIIDs(t *testing.T) {
	b := newBackend().withProfile("admin")
	b.engine.POST("/api/tours", func(ctx *gin.Context) {
		ctx.JSON(http.StatusCreated, gin.H{"data": gin.H{"_id": "t3"}})
	})
	c, _ := newTestClient(t, b)

	_, err := c.CreateTour(context.Background(), validTourInput())
	assert.NoError(t, err)

	req := b.find(http.MethodPost, "/api/tours")
	if assert.NotNil(t, req) {
		services := gjson.ParseBytes(req.Body).Get("services")
		assert.Equal(t, int64(1), int64(len(services.Array())))
		assert.Equal(t, "lunch", services.Get("0.name").String())
		assert.False(t, services.Get("0.uiid").Exists())
	}
}

func TestCreateTourValidationRejectsWithoutNetwork(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*TourInput)
		field  string
	}{
		{"missing name", func(in *TourInput) { in.Name = "" }, "Name"},
		{"missing description", func(in *TourInput) { in.Description = "" }, "Description"},
		{"empty image list", func(in *TourInput) { in.Image = nil }, "Image"},
		{"blank image entry", func(in *TourInput) { in.Image = []string{"  "} }, "image"},
		{"price not a number", func(in *TourInput) { in.Price = "abc" }, "Price"},
		{"zero price", func(in *TourInput) { in.Price = "0" }, "Price"},
		{"negative capacity", func(in *TourInput) { in.MaxTicketsPerDay = "-5" }, "MaxTicketsPerDay"},
		{"missing category", func(in *TourInput) { in.CateID = models.CategoryRef{} }, "cateID"},
		{"missing supplier", func(in *TourInput) { in.SupplierID = models.SupplierRef{} }, "supplier_id"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := newBackend().withProfile("admin")
			c, _ := newTestClient(t, b)
			in := validTourInput()
			tc.mutate(&in)

			_, err := c.CreateTour(context.Background(), in)
			var valErr *ValidationError
			assert.ErrorAs(t, err, &valErr)
			assert.Equal(t, tc.field, valErr.Field)
			assert.Equal(t, 0, b.countAll(), "validation must fail before any request")
		})
	}
}

func TestCreateTourRejectsPlainUserRole(t *testing.T) {
	b := newBackend().withProfile("user")
	c, _ := newTestClient(t, b)

	_, err := c.CreateTour(context.Background(), validTourInput())
	var roleErr *RoleError
	assert.ErrorAs(t, err, &roleErr)
	assert.Equal(t, 0, b.countMutations(), "role rejection must precede the mutating call")
}

func TestUpdateTourSendsOnlyProvidedFields(t *testing.T) {
	b := newBackend().withProfile("admin")
	b.engine.PUT("/api/update-tours/:id", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"data": gin.H{"_id": "t1", "name": "X"}})
	})
	c, _ := newTestClient(t, b)

	name := "X"
	_, err := c.UpdateTour(context.Background(), "t1", TourUpdateInput{Name: &name})
	assert.NoError(t, err)

	req := b.find(http.MethodPut, "/api/update-tours/t1")
	if assert.NotNil(t, req) {
		body := gjson.ParseBytes(req.Body)
		assert.Equal(t, "X", body.Get("name").String())
		keys := 0
		body.ForEach(func(_, _ gjson.Result) bool { keys++; return true })
		assert.Equal(t, 1, keys, "partial update must transmit exactly the provided fields")
	}
}

func TestUpdateTourRepopulatesSupplierBestEffort(t *testing.T) {
	b := newBackend().withProfile("admin")
	b.engine.PUT("/api/update-tours/:id", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"data": gin.H{"_id": "t1", "supplier_id": "sup2"}})
	})
	b.engine.GET("/api/suppliers", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"data": []gin.H{
			{"_id": "sup1", "name": "Other"},
			{"_id": "sup2", "name": "Island Tours Inc"},
		}})
	})
	c, _ := newTestClient(t, b)

	status := "active"
	tour, err := c.UpdateTour(context.Background(), "t1", TourUpdateInput{Status: &status})
	assert.NoError(t, err)
	if assert.NotNil(t, tour) && assert.True(t, tour.SupplierID.Populated()) {
		assert.Equal(t, "Island Tours Inc", tour.SupplierID.Supplier.Name)
	}
}

func TestUpdateTourSucceedsWhenEnrichmentFails(t *testing.T) {
	b := newBackend().withProfile("admin")
	b.engine.PUT("/api/update-tours/:id", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"data": gin.H{"_id": "t1", "supplier_id": "sup2"}})
	})
	b.engine.GET("/api/suppliers", func(ctx *gin.Context) {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "boom"})
	})
	c, notifier := newTestClient(t, b)

	status := "active"
	tour, err := c.UpdateTour(context.Background(), "t1", TourUpdateInput{Status: &status})
	assert.NoError(t, err, "enrichment failure must not fail the update")
	if assert.NotNil(t, tour) {
		assert.False(t, tour.SupplierID.Populated())
		assert.Equal(t, "sup2", tour.SupplierID.ID)
	}
	assert.Equal(t, []string{"Tour updated"}, notifier.successes)
}

func TestUpdateTourRejectsBadNumericWithoutNetwork(t *testing.T) {
	b := newBackend().withProfile("admin")
	c, _ := newTestClient(t, b)

	price := "-10"
	_, err := c.UpdateTour(context.Background(), "t1", TourUpdateInput{Price: &price})
	var valErr *ValidationError
	assert.ErrorAs(t, err, &valErr)
	assert.Equal(t, "price", valErr.Field)
	assert.Equal(t, 0, b.countAll())
}

func TestApproveAndToggleShareStatusEndpoint(t *testing.T) {
	b := newBackend().withProfile("admin")
	b.engine.PUT("/api/approve/:id", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	c, _ := newTestClient(t, b)
	ctx := context.Background()

	assert.NoError(t, c.ApproveTour(ctx, "t1"))
	req := b.find(http.MethodPut, "/api/approve/t1")
	if assert.NotNil(t, req) {
		body := gjson.ParseBytes(req.Body)
		assert.True(t, body.Get("approved").Bool())
		assert.Equal(t, "active", body.Get("status").String())
	}

	b2 := newBackend().withProfile("admin")
	b2.engine.PUT("/api/approve/:id", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	c2, _ := newTestClient(t, b2)

	assert.NoError(t, c2.RejectTour(ctx, "t2"))
	if req := b2.findLast(http.MethodPut, "/api/approve/t2"); assert.NotNil(t, req) {
		assert.Equal(t, "rejected", gjson.GetBytes(req.Body, "status").String())
		assert.False(t, gjson.GetBytes(req.Body, "approved").Bool())
	}

	assert.NoError(t, c2.ToggleTourStatus(ctx, "t2", false))
	if req := b2.findLast(http.MethodPut, "/api/approve/t2"); assert.NotNil(t, req) {
		assert.Equal(t, "deactive", gjson.GetBytes(req.Body, "status").String())
	}
}

func TestApproveTourRequiresAdmin(t *testing.T) {
	for _, role := range []string{"supplier", "user"} {
		t.Run(role, func(t *testing.T) {
			b := newBackend().withProfile(role)
			c, _ := newTestClient(t, b)

			err := c.ApproveTour(context.Background(), "t1")
			var roleErr *RoleError
			assert.ErrorAs(t, err, &roleErr)
			assert.Equal(t, 0, b.countMutations())
		})
	}
}

func TestApproveTourRejectsUnresolvableRole(t *testing.T) {
	b := newBackend()
	b.engine.GET("/api/profile", func(ctx *gin.Context) {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "down"})
	})
	c, _ := newTestClient(t, b)

	err := c.ApproveTour(context.Background(), "t1")
	var roleErr *RoleError
	assert.ErrorAs(t, err, &roleErr)
	assert.Equal(t, 0, b.countMutations())
}
