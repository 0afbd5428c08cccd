package api

import (
	"context"
	"log"

	"tourdesk/src/types"
)

// resolveRole fetches the current profile and reads its role. Any failure
// resolves to ROLE_NONE, which no operation accepts. The result is only ever
// used within the one top-level operation that asked; nothing caches it
// across user actions, so a role change on the server takes effect on the
// next action.
func (c *Client) resolveRole(ctx context.Context) types.Role {
	profile, err := c.FetchProfile(ctx)
	if err != nil {
		log.Printf("role gate: profile fetch failed: %s\n", err.Error())
		return types.ROLE_NONE
	}
	if profile == nil {
		return types.ROLE_NONE
	}
	return profile.ResolvedRole()
}

// requireRole gates a mutating operation before its request is built. It
// returns the resolved role so operations that branch on it (tour creation)
// do not have to resolve twice.
func (c *Client) requireRole(ctx context.Context, required ...types.Role) (types.Role, error) {
	role := c.resolveRole(ctx)
	for _, r := range required {
		if role == r {
			return role, nil
		}
	}
	return role, &RoleError{Required: required, Resolved: role}
}
