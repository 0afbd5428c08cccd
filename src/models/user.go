package models

import (
	"encoding/json"

	"tourdesk/src/types"
)

type User struct {
	ID        string `json:"-"`
	Name      string `json:"name,omitempty"`
	FullName  string `json:"fullName,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
}

func (u *User) UnmarshalJSON(b []byte) error {
	type alias User
	aux := struct {
		*alias
		MongoID string `json:"_id"`
		PlainID string `json:"id"`
	}{alias: (*alias)(u)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	u.ID = aux.MongoID
	if u.ID == "" {
		u.ID = aux.PlainID
	}
	return nil
}

func (u User) MarshalJSON() ([]byte, error) {
	type alias User
	aux := struct {
		MongoID string `json:"_id,omitempty"`
		PlainID string `json:"id,omitempty"`
		alias
	}{MongoID: u.ID, PlainID: u.ID, alias: alias(u)}
	return json.Marshal(aux)
}

// ResolvedRole maps a missing role to the plain user role, matching what the
// backend assumes for accounts created before roles existed.
func (u User) ResolvedRole() types.Role {
	switch types.Role(u.Role) {
	case types.ROLE_ADMIN, types.ROLE_SUPPLIER, types.ROLE_USER:
		return types.Role(u.Role)
	default:
		return types.ROLE_USER
	}
}
