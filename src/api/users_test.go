package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestDeleteUserSkipsRoleCheckByDefault(t *testing.T) {
	// No profile route registered: a role resolution would 404 and resolve
	// to no role, so success here proves the gate was skipped.
	b := newBackend()
	b.engine.DELETE("/api/:id", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "deleted"})
	})
	c, _ := newTestClient(t, b)

	err := c.DeleteUser(context.Background(), "u1")
	assert.NoError(t, err)
	assert.NotNil(t, b.find(http.MethodDelete, "/api/u1"))
}

func TestDeleteUserHonorsPolicyFlag(t *testing.T) {
	b := newBackend().withProfile("user")
	c, _ := newTestClient(t, b)
	c.UserDeleteRoleCheck = true

	err := c.DeleteUser(context.Background(), "u1")
	var roleErr *RoleError
	assert.ErrorAs(t, err, &roleErr)
	assert.Equal(t, 0, b.countMutations())
}

func TestGetUsersUnwrapsCollection(t *testing.T) {
	b := newBackend()
	b.engine.GET("/api/all", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"users": []gin.H{
			{"_id": "u1", "name": "Ana", "role": "admin"},
			{"_id": "u2", "name": "Ben"},
		}})
	})
	c, _ := newTestClient(t, b)

	users, err := c.GetUsers(context.Background())
	assert.NoError(t, err)
	if assert.Len(t, users, 2) {
		assert.Equal(t, "admin", string(users[0].ResolvedRole()))
		// Missing role defaults to the plain user role.
		assert.Equal(t, "user", string(users[1].ResolvedRole()))
	}
}
