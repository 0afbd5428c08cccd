package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"tourdesk/src/session"
	"tourdesk/src/types"
)

func TestLoginEmailStoresTokenAndProfile(t *testing.T) {
	b := newBackend()
	b.engine.POST("/api/login-email", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"token": "fresh-token",
			"user":  gin.H{"_id": "u1", "email": "op@example.com", "role": "admin"},
		})
	})
	store := session.NewStore("")
	c := NewClient(b.start(t), store, &recordingNotifier{}, nil)

	profile, err := c.LoginEmail(context.Background(), "op@example.com", "secret", false)
	assert.NoError(t, err)
	if assert.NotNil(t, profile) {
		assert.Equal(t, types.ROLE_ADMIN, profile.ResolvedRole())
	}
	tok, ok := store.Token()
	assert.True(t, ok)
	assert.Equal(t, "fresh-token", tok)
}

func TestLoginEmailFallsBackToTokenClaims(t *testing.T) {
	claims := types.Claims{
		Email: "op@example.com",
		Role:  "supplier",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: "u7",
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	b := newBackend()
	b.engine.POST("/api/login-email", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"token": signed})
	})
	store := session.NewStore("")
	c := NewClient(b.start(t), store, &recordingNotifier{}, nil)

	profile, loginErr := c.LoginEmail(context.Background(), "op@example.com", "secret", false)
	assert.NoError(t, loginErr)
	if assert.NotNil(t, profile) {
		assert.Equal(t, "u7", profile.ID)
		assert.Equal(t, types.ROLE_SUPPLIER, profile.ResolvedRole())
	}
}

func TestLoginEmailRejectsMissingFieldsWithoutNetwork(t *testing.T) {
	b := newBackend()
	c, _ := newTestClient(t, b)

	_, err := c.LoginEmail(context.Background(), "", "secret", false)
	var valErr *ValidationError
	assert.ErrorAs(t, err, &valErr)
	assert.Equal(t, 0, b.countAll())
}

func TestLoginEmailTokenlessResponseIsAnError(t *testing.T) {
	b := newBackend()
	b.engine.POST("/api/login-email", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "welcome"})
	})
	store := session.NewStore("")
	c := NewClient(b.start(t), store, &recordingNotifier{}, nil)

	_, err := c.LoginEmail(context.Background(), "op@example.com", "secret", false)
	assert.Error(t, err)
	_, ok := store.Token()
	assert.False(t, ok)
}

func TestLogoutClearsSession(t *testing.T) {
	store := session.NewStore("")
	store.Set("tok", nil, false)
	c := NewClient("http://unused", store, &recordingNotifier{}, nil)

	c.Logout()
	_, ok := store.Token()
	assert.False(t, ok)
}
