package models

import "encoding/json"

// The API is inconsistent about relations: depending on the endpoint (and on
// whether ?populate= was honored) a reference arrives either as a bare id
// string or as the populated object. Refs keep whichever form the server sent
// and never fabricate the other.

type SupplierRef struct {
	ID       string
	Supplier *Supplier
}

func (r *SupplierRef) UnmarshalJSON(b []byte) error {
	var id string
	if err := json.Unmarshal(b, &id); err == nil {
		r.ID = id
		r.Supplier = nil
		return nil
	}
	var s Supplier
	if err := json.Unmarshal(b, &s); err != nil {
		// Unknown shape, leave the ref empty rather than failing the
		// whole payload.
		return nil
	}
	r.Supplier = &s
	r.ID = s.ID
	return nil
}

func (r SupplierRef) MarshalJSON() ([]byte, error) {
	if r.Supplier != nil {
		return json.Marshal(r.Supplier)
	}
	return json.Marshal(r.ID)
}

func (r SupplierRef) Populated() bool { return r.Supplier != nil }
func (r SupplierRef) Empty() bool     { return r.ID == "" && r.Supplier == nil }

type CategoryRef struct {
	ID       string
	Category *Category
}

func (r *CategoryRef) UnmarshalJSON(b []byte) error {
	var id string
	if err := json.Unmarshal(b, &id); err == nil {
		r.ID = id
		r.Category = nil
		return nil
	}
	var c Category
	if err := json.Unmarshal(b, &c); err != nil {
		return nil
	}
	r.Category = &c
	r.ID = c.ID
	return nil
}

func (r CategoryRef) MarshalJSON() ([]byte, error) {
	if r.Category != nil {
		return json.Marshal(r.Category)
	}
	return json.Marshal(r.ID)
}

func (r CategoryRef) Populated() bool { return r.Category != nil }
func (r CategoryRef) Empty() bool     { return r.ID == "" && r.Category == nil }

type TourRef struct {
	ID   string
	Tour *Tour
}

func (r *TourRef) UnmarshalJSON(b []byte) error {
	var id string
	if err := json.Unmarshal(b, &id); err == nil {
		r.ID = id
		r.Tour = nil
		return nil
	}
	var t Tour
	if err := json.Unmarshal(b, &t); err != nil {
		return nil
	}
	r.Tour = &t
	r.ID = t.ID
	return nil
}

func (r TourRef) MarshalJSON() ([]byte, error) {
	if r.Tour != nil {
		return json.Marshal(r.Tour)
	}
	return json.Marshal(r.ID)
}

func (r TourRef) Populated() bool { return r.Tour != nil }

type UserRef struct {
	ID   string
	User *User
}

func (r *UserRef) UnmarshalJSON(b []byte) error {
	var id string
	if err := json.Unmarshal(b, &id); err == nil {
		r.ID = id
		r.User = nil
		return nil
	}
	var u User
	if err := json.Unmarshal(b, &u); err != nil {
		return nil
	}
	r.User = &u
	r.ID = u.ID
	return nil
}

func (r UserRef) MarshalJSON() ([]byte, error) {
	if r.User != nil {
		return json.Marshal(r.User)
	}
	return json.Marshal(r.ID)
}

func (r UserRef) Populated() bool { return r.User != nil }
