package user

import (
	"github.com/mwhidden/vetted/internal/domain"
	"github.com/mwhidden/vetted/internal/validate"
)

// Decode narrows an untyped record into a User in detailed mode: every
// failing field produces its own entry, presence is checked before type,
// and nested records are decoded by their own decoders. A nested failure is
// reported as a single entry on the parent field with the nested detail
// attached as the offending value, never flattened into the parent list.
//
// Decode is idempotent over valid data: decoding the ToMap form of a valid
// User yields an equal User with no coercion drift.
func Decode(raw any) (User, *domain.FieldErrors) {
	m, ok := raw.(map[string]any)
	if !ok {
		return User{}, domain.NewFieldErrors(domain.FieldError{
			Field: "user", Message: "must be a plain object", Value: raw,
		})
	}

	var (
		u    User
		errs []domain.FieldError
	)
	fail := func(field, msg string, value any) {
		errs = append(errs, domain.FieldError{Field: field, Message: msg, Value: value})
	}

	if v, present := m["id"]; !present {
		fail("id", domain.MsgMissing, nil)
	} else if !validate.IsNonEmptyString(v) {
		fail("id", "must be a non-empty string", v)
	} else {
		u.ID = v.(string)
	}

	if v, present := m["name"]; !present {
		fail("name", domain.MsgMissing, nil)
	} else if !validate.IsNonEmptyString(v) {
		fail("name", "must be a non-empty string", v)
	} else {
		u.Name = v.(string)
	}

	if v, present := m["contact"]; !present {
		fail("contact", domain.MsgMissing, nil)
	} else if contact, ferr := decodeContact(v); ferr != nil {
		fail("contact", "invalid contact information", ferr.Errors)
	} else {
		u.Contact = contact
	}

	if v, present := m["age"]; !present {
		fail("age", domain.MsgMissing, nil)
	} else if !validate.IsPositiveInt(v) {
		fail("age", "must be a positive integer", v)
	} else {
		f, _ := validate.AsFloat(v)
		u.Age = int(f)
	}

	if v, present := m["isActive"]; !present {
		fail("isActive", domain.MsgMissing, nil)
	} else if !validate.IsBool(v) {
		fail("isActive", "must be a boolean", v)
	} else {
		u.Active = v.(bool)
	}

	if v, present := m["tags"]; !present {
		fail("tags", domain.MsgMissing, nil)
	} else if !validate.IsStringSlice(v) {
		fail("tags", "must be an array of non-empty strings", v)
	} else {
		u.Tags, _ = validate.AsStrings(v)
	}

	// Optional free-form metadata.
	if v, present := m["metadata"]; present {
		if !validate.IsPlainMap(v) {
			fail("metadata", "must be a plain object", v)
		} else {
			u.Metadata = v.(map[string]any)
		}
	}

	if v, present := m["createdAt"]; !present {
		fail("createdAt", domain.MsgMissing, nil)
	} else if t, ok := validate.AsTime(v); !ok {
		fail("createdAt", "must be a valid timestamp", v)
	} else {
		u.CreatedAt = t
	}

	if v, present := m["updatedAt"]; !present {
		fail("updatedAt", domain.MsgMissing, nil)
	} else if t, ok := validate.AsTime(v); !ok {
		fail("updatedAt", "must be a valid timestamp", v)
	} else {
		u.UpdatedAt = t
	}

	if !u.CreatedAt.IsZero() && !u.UpdatedAt.IsZero() && u.UpdatedAt.Before(u.CreatedAt) {
		fail("updatedAt", "must not precede createdAt", u.UpdatedAt)
	}

	if len(errs) > 0 {
		return User{}, domain.NewFieldErrors(errs...)
	}
	return u, nil
}

// decodeContact validates the nested contact record: required email,
// optional phone (digit-count policy), optional address.
func decodeContact(raw any) (ContactInfo, *domain.FieldErrors) {
	m, ok := raw.(map[string]any)
	if !ok {
		return ContactInfo{}, domain.NewFieldErrors(domain.FieldError{
			Field: "contact", Message: "must be a plain object", Value: raw,
		})
	}

	var (
		c    ContactInfo
		errs []domain.FieldError
	)

	if v, present := m["email"]; !present {
		errs = append(errs, domain.FieldError{Field: "email", Message: domain.MsgMissing})
	} else if !validate.IsEmail(v) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "must be a valid email address", Value: v})
	} else {
		c.Email = v.(string)
	}

	if v, present := m["phone"]; present {
		if !validate.IsPhone(v) {
			errs = append(errs, domain.FieldError{Field: "phone", Message: "must contain 10 to 15 digits", Value: v})
		} else {
			c.Phone = v.(string)
		}
	}

	if v, present := m["address"]; present {
		if addr, ferr := decodeAddress(v); ferr != nil {
			errs = append(errs, domain.FieldError{Field: "address", Message: "invalid address", Value: ferr.Errors})
		} else {
			c.Address = &addr
		}
	}

	if len(errs) > 0 {
		return ContactInfo{}, domain.NewFieldErrors(errs...)
	}
	return c, nil
}

// addressFields are all required once an address record is present.
var addressFields = []string{"street", "city", "postalCode", "country"}

func decodeAddress(raw any) (Address, *domain.FieldErrors) {
	m, ok := raw.(map[string]any)
	if !ok {
		return Address{}, domain.NewFieldErrors(domain.FieldError{
			Field: "address", Message: "must be a plain object", Value: raw,
		})
	}

	var errs []domain.FieldError
	values := make(map[string]string, len(addressFields))
	for _, field := range addressFields {
		v, present := m[field]
		if !present {
			errs = append(errs, domain.FieldError{Field: field, Message: domain.MsgMissing})
			continue
		}
		if !validate.IsNonEmptyString(v) {
			errs = append(errs, domain.FieldError{Field: field, Message: "must be a non-empty string", Value: v})
			continue
		}
		values[field] = v.(string)
	}

	if len(errs) > 0 {
		return Address{}, domain.NewFieldErrors(errs...)
	}
	return Address{
		Street:     values["street"],
		City:       values["city"],
		PostalCode: values["postalCode"],
		Country:    values["country"],
	}, nil
}

// Is is the fast narrowing mode: a single boolean over the same declared
// shape, for callers that only need a yes/no gate.
func Is(raw any) bool {
	_, ferr := Decode(raw)
	return ferr == nil
}
