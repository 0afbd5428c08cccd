package normalize

import (
	"encoding/json"

	"github.com/tidwall/gjson"

	"tourdesk/src/models"
)

// The backend answers the same logical query with different envelopes
// depending on the endpoint and version: a bare array, {"data": [...]},
// {"bookings": [...]}, or some other object whose first array-valued property
// is the actual collection. Everything in this package is total: unknown
// shapes converge to empty results, never errors.

var wrapperKeys = []string{"data", "bookings", "reviews"}

// ExtractArray returns the raw JSON of the collection inside raw. Per-call
// keys are checked before the shared wrapper keys; after that the first
// array-valued property wins, in document order.
func ExtractArray(raw []byte, keys ...string) []byte {
	v := gjson.ParseBytes(raw)
	if v.IsArray() {
		return []byte(v.Raw)
	}
	if v.IsObject() {
		for _, k := range append(keys, wrapperKeys...) {
			if c := v.Get(k); c.IsArray() {
				return []byte(c.Raw)
			}
		}
		var found []byte
		v.ForEach(func(_, val gjson.Result) bool {
			if val.IsArray() {
				found = []byte(val.Raw)
				return false
			}
			return true
		})
		if found != nil {
			return found
		}
	}
	return []byte("[]")
}

// ExtractObject unwraps a single entity that may or may not be nested under a
// wrapper key.
func ExtractObject(raw []byte, keys ...string) []byte {
	v := gjson.ParseBytes(raw)
	if !v.IsObject() {
		return nil
	}
	for _, k := range append(keys, "data") {
		if c := v.Get(k); c.IsObject() {
			return []byte(c.Raw)
		}
	}
	return []byte(v.Raw)
}

func decodeEach[T any](arr []byte) []T {
	out := []T{}
	gjson.ParseBytes(arr).ForEach(func(_, el gjson.Result) bool {
		var v T
		if err := json.Unmarshal([]byte(el.Raw), &v); err == nil {
			out = append(out, v)
		}
		return true
	})
	return out
}

func Tours(raw []byte, keys ...string) []models.Tour {
	return decodeEach[models.Tour](ExtractArray(raw, append(keys, "tours")...))
}

func Tour(raw []byte) (models.Tour, bool) {
	obj := ExtractObject(raw, "tour")
	if obj == nil {
		return models.Tour{}, false
	}
	var t models.Tour
	if err := json.Unmarshal(obj, &t); err != nil {
		return models.Tour{}, false
	}
	return t, true
}

func Suppliers(raw []byte, keys ...string) []models.Supplier {
	return decodeEach[models.Supplier](ExtractArray(raw, append(keys, "suppliers")...))
}

func Users(raw []byte, keys ...string) []models.User {
	return decodeEach[models.User](ExtractArray(raw, append(keys, "users")...))
}

func Categories(raw []byte, keys ...string) []models.Category {
	return decodeEach[models.Category](ExtractArray(raw, append(keys, "categories")...))
}

func Vouchers(raw []byte, keys ...string) []models.Voucher {
	return decodeEach[models.Voucher](ExtractArray(raw, append(keys, "vouchers")...))
}

func Reviews(raw []byte, keys ...string) []models.Review {
	return decodeEach[models.Review](ExtractArray(raw, keys...))
}

func Favorites(raw []byte, keys ...string) []models.Favorite {
	return decodeEach[models.Favorite](ExtractArray(raw, append(keys, "favorites")...))
}

// Bookings also flattens the {booking, selected_options} entries some booking
// endpoints return, merging selected_options into the booking itself and
// defaulting it to an empty list.
func Bookings(raw []byte, keys ...string) []models.Booking {
	out := []models.Booking{}
	gjson.ParseBytes(ExtractArray(raw, keys...)).ForEach(func(_, el gjson.Result) bool {
		if b, ok := flattenBooking(el); ok {
			out = append(out, b)
		}
		return true
	})
	return out
}

func flattenBooking(el gjson.Result) (models.Booking, bool) {
	src := el
	if inner := el.Get("booking"); inner.IsObject() {
		src = inner
	}
	var b models.Booking
	if err := json.Unmarshal([]byte(src.Raw), &b); err != nil {
		return models.Booking{}, false
	}
	if opts := el.Get("selected_options"); opts.IsArray() && src.Raw != el.Raw {
		var merged []models.SelectedOption
		if err := json.Unmarshal([]byte(opts.Raw), &merged); err == nil {
			b.SelectedOptions = merged
		}
	}
	if b.SelectedOptions == nil {
		b.SelectedOptions = []models.SelectedOption{}
	}
	return b, true
}
