// Package user defines the User entity, its nested records, and the shape
// validators that narrow untrusted input into it.
package user

import "time"

// Address is a nested record inside ContactInfo. When present, every field
// is required.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// ContactInfo carries a required email and optional phone and address.
type ContactInfo struct {
	Email   string   `json:"email"`
	Phone   string   `json:"phone,omitempty"`
	Address *Address `json:"address,omitempty"`
}

// User is the validated domain entity. An instance either passes every field
// check or does not exist in the store; no partially-valid User is ever
// persisted.
//
// ID and CreatedAt are system-generated and immutable after creation.
// UpdatedAt is refreshed on every successful mutation and never precedes
// CreatedAt. Tags preserve insertion order and need not be unique.
type User struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Contact   ContactInfo    `json:"contact"`
	Age       int            `json:"age"`
	Active    bool           `json:"isActive"`
	Tags      []string       `json:"tags"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// Clone returns a deep copy. The store hands out clones so caller-side
// mutation cannot reach its live state.
func (u User) Clone() User {
	c := u
	if u.Tags != nil {
		c.Tags = make([]string, len(u.Tags))
		copy(c.Tags, u.Tags)
	}
	if u.Metadata != nil {
		c.Metadata = deepCopyMap(u.Metadata)
	}
	if u.Contact.Address != nil {
		addr := *u.Contact.Address
		c.Contact.Address = &addr
	}
	return c
}

// deepCopyMap copies a decoded JSON object recursively. Metadata is free-form,
// so nested maps and slices must be copied too; sharing any level would let a
// caller reach stored state.
func deepCopyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return deepCopyMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = deepCopyValue(e)
		}
		return out
	case []string:
		out := make([]string, len(t))
		copy(out, t)
		return out
	default:
		return v
	}
}

// ToMap converts the entity back to the untyped record form understood by
// Decode. Timestamps stay time.Time values; Decode accepts both instants
// and RFC 3339 strings, so a round trip is lossless.
func (u User) ToMap() map[string]any {
	contact := map[string]any{"email": u.Contact.Email}
	if u.Contact.Phone != "" {
		contact["phone"] = u.Contact.Phone
	}
	if u.Contact.Address != nil {
		contact["address"] = map[string]any{
			"street":     u.Contact.Address.Street,
			"city":       u.Contact.Address.City,
			"postalCode": u.Contact.Address.PostalCode,
			"country":    u.Contact.Address.Country,
		}
	}

	tags := make([]string, len(u.Tags))
	copy(tags, u.Tags)

	m := map[string]any{
		"id":        u.ID,
		"name":      u.Name,
		"contact":   contact,
		"age":       u.Age,
		"isActive":  u.Active,
		"tags":      tags,
		"createdAt": u.CreatedAt,
		"updatedAt": u.UpdatedAt,
	}
	if u.Metadata != nil {
		m["metadata"] = deepCopyMap(u.Metadata)
	}
	return m
}

// Validate re-checks an already-typed entity against the full shape. The
// store uses it to re-verify its own copies on read and after a merge.
// Returns a *domain.FieldErrors, or nil when every field check passes.
func (u User) Validate() error {
	if _, ferr := Decode(u.ToMap()); ferr != nil {
		return ferr
	}
	return nil
}
