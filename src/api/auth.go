package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tidwall/gjson"

	"tourdesk/src/models"
	"tourdesk/src/normalize"
	"tourdesk/src/types"
)

// LoginEmail signs in, stores the token and profile in the session store and
// returns the profile. remember selects the persistent scope.
func (c *Client) LoginEmail(ctx context.Context, email, password string, remember bool) (*models.User, error) {
	in := types.LoginEmailRequestBody{Email: email, Password: password}
	if err := c.validateInput(in); err != nil {
		return nil, c.reportError(err, err.Error(), nil)
	}

	_, raw, err := c.doJSON(ctx, http.MethodPost, "/api/login-email", in)
	if err != nil {
		return nil, c.reportError(err, "Login failed", map[int]string{
			http.StatusNotFound: "No account with that email",
		})
	}

	token := ""
	for _, key := range []string{"token", "access_token", "data.token"} {
		if v := gjson.GetBytes(raw, key); v.Type == gjson.String && v.Str != "" {
			token = v.Str
			break
		}
	}
	if token == "" {
		err := &APIError{Status: http.StatusOK, Message: "login response carried no token"}
		return nil, c.reportError(err, "Login failed", nil)
	}

	profile := profileFromResponse(raw)
	if profile == nil {
		profile = profileFromToken(token)
	}
	if c.Session != nil {
		c.Session.Set(token, profile, remember)
	}
	c.reportSuccess("Signed in")
	return profile, nil
}

func profileFromResponse(raw []byte) *models.User {
	for _, key := range []string{"user", "data.user", "profile"} {
		if v := gjson.GetBytes(raw, key); v.IsObject() {
			var u models.User
			if err := json.Unmarshal([]byte(v.Raw), &u); err == nil {
				return &u
			}
		}
	}
	return nil
}

// profileFromToken decodes the token claims without verifying the signature;
// verification is the server's job, this is only a display/cache fallback for
// responses that do not echo the profile back.
func profileFromToken(token string) *models.User {
	claims := &types.Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		log.Printf("login: could not decode token claims: %s\n", err.Error())
		return nil
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		log.Printf("login: session token expires at %s\n", exp.Time.String())
	}
	return &models.User{
		ID:    claims.Subject,
		Email: claims.Email,
		Name:  claims.Name,
		Role:  claims.Role,
	}
}

// Logout clears both session scopes. Purely local; the token stays valid
// server-side until it expires.
func (c *Client) Logout() {
	if c.Session != nil {
		c.Session.Clear()
	}
}

// FetchProfile reads the signed-in account from the API.
func (c *Client) FetchProfile(ctx context.Context) (*models.User, error) {
	_, raw, err := c.doJSON(ctx, http.MethodGet, "/api/profile", nil)
	if err != nil {
		return nil, err
	}
	obj := normalize.ExtractObject(raw, "user", "profile")
	if obj == nil {
		return nil, nil
	}
	var u models.User
	if err := json.Unmarshal(obj, &u); err != nil {
		return nil, nil
	}
	return &u, nil
}
