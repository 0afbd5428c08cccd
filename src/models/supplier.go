package models

import "encoding/json"

type Supplier struct {
	ID        string `json:"-"`
	Name      string `json:"name,omitempty"`
	FullName  string `json:"fullName,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
}

// Some endpoints key suppliers by "_id", others by "id". Both are accepted on
// the way in and both are written on the way out so equality checks against
// either key succeed downstream.
func (s *Supplier) UnmarshalJSON(b []byte) error {
	type alias Supplier
	aux := struct {
		*alias
		MongoID string `json:"_id"`
		PlainID string `json:"id"`
	}{alias: (*alias)(s)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	s.ID = aux.MongoID
	if s.ID == "" {
		s.ID = aux.PlainID
	}
	return nil
}

func (s Supplier) MarshalJSON() ([]byte, error) {
	type alias Supplier
	aux := struct {
		MongoID string `json:"_id,omitempty"`
		PlainID string `json:"id,omitempty"`
		alias
	}{MongoID: s.ID, PlainID: s.ID, alias: alias(s)}
	return json.Marshal(aux)
}

func (s Supplier) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	if s.FullName != "" {
		return s.FullName
	}
	if s.FirstName != "" || s.LastName != "" {
		if s.FirstName == "" {
			return s.LastName
		}
		if s.LastName == "" {
			return s.FirstName
		}
		return s.FirstName + " " + s.LastName
	}
	return s.Email
}
