package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"

	"tourdesk/src/types"
)

func validVoucherInput() types.CreateVoucherRequestBody {
	return types.CreateVoucherRequestBody{
		TourID:    "t1",
		Code:      "  summer20  ",
		Discount:  20,
		Condition: "min 2 guests",
		StartDate: time.Now().AddDate(0, 0, 1).Format(types.TIME_PARSE_FORMAT),
		EndDate:   time.Now().AddDate(0, 1, 0).Format(types.TIME_PARSE_FORMAT),
	}
}

func TestCreateVoucherCanonicalizesCode(t *testing.T) {
	b := newBackend().withProfile("admin")
	b.engine.POST("/api/vouchers", func(ctx *gin.Context) {
		ctx.JSON(http.StatusCreated, gin.H{"data": gin.H{"_id": "v1", "code": "SUMMER20"}})
	})
	c, _ := newTestClient(t, b)

	v, err := c.CreateVoucher(context.Background(), validVoucherInput())
	assert.NoError(t, err)
	assert.Equal(t, "v1", v.ID)

	req := b.find(http.MethodPost, "/api/vouchers")
	if assert.NotNil(t, req) {
		assert.Equal(t, "SUMMER20", gjson.GetBytes(req.Body, "code").String())
	}
}

func TestCreateVoucherValidationRejectsWithoutNetwork(t *testing.T) {
	yesterday := time.Now().AddDate(0, 0, -1).Format(types.TIME_PARSE_FORMAT)
	tomorrow := time.Now().AddDate(0, 0, 1).Format(types.TIME_PARSE_FORMAT)
	nextWeek := time.Now().AddDate(0, 0, 7).Format(types.TIME_PARSE_FORMAT)

	cases := []struct {
		name   string
		mutate func(*types.CreateVoucherRequestBody)
	}{
		{"zero discount", func(in *types.CreateVoucherRequestBody) { in.Discount = 0 }},
		{"negative discount", func(in *types.CreateVoucherRequestBody) { in.Discount = -5 }},
		{"discount above 100", func(in *types.CreateVoucherRequestBody) { in.Discount = 101 }},
		{"start after end", func(in *types.CreateVoucherRequestBody) {
			in.StartDate = nextWeek
			in.EndDate = tomorrow
		}},
		{"start equals end", func(in *types.CreateVoucherRequestBody) {
			in.StartDate = tomorrow
			in.EndDate = tomorrow
		}},
		{"end in the past", func(in *types.CreateVoucherRequestBody) {
			in.StartDate = time.Now().AddDate(0, 0, -10).Format(types.TIME_PARSE_FORMAT)
			in.EndDate = yesterday
		}},
		{"missing code", func(in *types.CreateVoucherRequestBody) { in.Code = "" }},
		{"missing tour", func(in *types.CreateVoucherRequestBody) { in.TourID = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Validation runs before the role check, so even an anonymous
			// caller gets the same rejection and zero requests go out.
			b := newBackend()
			c, _ := newTestClient(t, b)
			in := validVoucherInput()
			tc.mutate(&in)

			_, err := c.CreateVoucher(context.Background(), in)
			var valErr *ValidationError
			assert.ErrorAs(t, err, &valErr)
			assert.Equal(t, 0, b.countAll())
		})
	}
}

func TestCreateVoucherRequiresAdmin(t *testing.T) {
	b := newBackend().withProfile("supplier")
	c, notifier := newTestClient(t, b)

	_, err := c.CreateVoucher(context.Background(), validVoucherInput())
	var roleErr *RoleError
	assert.ErrorAs(t, err, &roleErr)
	assert.Equal(t, 0, b.countMutations())
	if assert.Len(t, notifier.failures, 1) {
		assert.Contains(t, notifier.failures[0], "admin")
	}
}

func TestCreateVoucherConflictMessage(t *testing.T) {
	b := newBackend().withProfile("admin")
	b.engine.POST("/api/vouchers", func(ctx *gin.Context) {
		ctx.JSON(http.StatusConflict, gin.H{"error": "duplicate key"})
	})
	c, notifier := newTestClient(t, b)

	_, err := c.CreateVoucher(context.Background(), validVoucherInput())
	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.Conflict())
	assert.Equal(t, []string{"Voucher code already exists"}, notifier.failures)
}

func TestSetVoucherStatus(t *testing.T) {
	b := newBackend().withProfile("admin")
	b.engine.PUT("/api/vouchers/voucher/status/:id", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	c, _ := newTestClient(t, b)

	err := c.SetVoucherStatus(context.Background(), "v1", types.VOUCHER_DEACTIVE)
	assert.NoError(t, err)
	req := b.find(http.MethodPut, "/api/vouchers/voucher/status/v1")
	if assert.NotNil(t, req) {
		assert.Equal(t, "deactive", gjson.GetBytes(req.Body, "status").String())
	}
}
