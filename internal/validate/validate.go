// Package validate provides pure predicates over untrusted, untyped values
// and fail-fast assertion helpers built on top of them.
//
// Every predicate takes an arbitrary value (typically a member of a
// map[string]any decoded from JSON) and returns a boolean narrowing
// decision. Predicates never panic and never mutate their input.
//
// Numeric predicates deliberately reject NaN and non-finite values even
// though float64 can represent them. Empty and whitespace-only strings are
// excluded from "non-empty string".
package validate

import (
	"math"
	"regexp"
	"strings"
	"time"
)

// IsString reports whether v is a string.
func IsString(v any) bool {
	_, ok := v.(string)
	return ok
}

// IsNonEmptyString reports whether v is a string with at least one
// non-whitespace character.
func IsNonEmptyString(v any) bool {
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) != ""
}

// IsBool reports whether v is a bool.
func IsBool(v any) bool {
	_, ok := v.(bool)
	return ok
}

// IsNumber reports whether v is a finite number. NaN and ±Inf are rejected:
// they satisfy the host float type but never a declared numeric shape.
func IsNumber(v any) bool {
	switch n := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case float32:
		return !math.IsNaN(float64(n)) && !math.IsInf(float64(n), 0)
	case float64:
		return !math.IsNaN(n) && !math.IsInf(n, 0)
	default:
		return false
	}
}

// IsInteger reports whether v is a finite number with no fractional part.
// JSON decoding yields float64 for every number, so 30.0 counts as integral.
func IsInteger(v any) bool {
	if !IsNumber(v) {
		return false
	}
	f, _ := AsFloat(v)
	return f == math.Trunc(f)
}

// IsPositiveInt reports whether v is an integral number greater than zero.
func IsPositiveInt(v any) bool {
	if !IsInteger(v) {
		return false
	}
	f, _ := AsFloat(v)
	return f > 0
}

// IsPlainMap reports whether v is a string-keyed map (the decoded form of a
// JSON object).
func IsPlainMap(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}

// IsSlice reports whether v is a []any or a []string.
func IsSlice(v any) bool {
	switch v.(type) {
	case []any, []string:
		return true
	default:
		return false
	}
}

// IsStringSlice reports whether v is a sequence whose members all satisfy
// the non-empty-string predicate. The element check is applied to every
// member rather than stopping at the first failure; a consumer that needs
// the failing index uses the shape validator's detailed mode instead.
func IsStringSlice(v any) bool {
	ok := true
	switch s := v.(type) {
	case []string:
		for _, e := range s {
			ok = IsNonEmptyString(e) && ok
		}
	case []any:
		for _, e := range s {
			ok = IsNonEmptyString(e) && ok
		}
	default:
		return false
	}
	return ok
}

// IsTimestamp reports whether v is a valid instant: a non-zero time.Time or
// an RFC 3339 string. The zero instant is rejected in both forms so a string
// round trip can never smuggle one past the time.Time check.
func IsTimestamp(v any) bool {
	switch t := v.(type) {
	case time.Time:
		return !t.IsZero()
	case string:
		parsed, err := time.Parse(time.RFC3339, t)
		return err == nil && !parsed.IsZero()
	default:
		return false
	}
}

// emailPattern accepts one non-whitespace local part, an @, and a dotted
// domain. Intentionally permissive; the store is not an MTA.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsEmail reports whether v is a string shaped like an email address.
func IsEmail(v any) bool {
	s, ok := v.(string)
	return ok && emailPattern.MatchString(s)
}

// phoneSeparators are stripped before the digit-count check.
var phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")

// IsPhone reports whether v is a string containing 10 to 15 digits once
// separators and an optional leading + are removed.
func IsPhone(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	s = phoneSeparators.Replace(strings.TrimPrefix(strings.TrimSpace(s), "+"))
	if len(s) < 10 || len(s) > 15 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// AsFloat converts any numeric value to float64. The second return is false
// for non-numeric input.
func AsFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// AsStrings narrows v to a []string. The second return is false unless every
// member is a string ([]any with mixed members is rejected).
func AsStrings(v any) ([]string, bool) {
	switch s := v.(type) {
	case []string:
		out := make([]string, len(s))
		copy(out, s)
		return out, true
	case []any:
		out := make([]string, 0, len(s))
		for _, e := range s {
			str, ok := e.(string)
			if !ok {
				return nil, false
			}
			out = append(out, str)
		}
		return out, true
	default:
		return nil, false
	}
}

// AsTime narrows v to a time.Time, parsing RFC 3339 strings. The second
// return is false for anything IsTimestamp rejects.
func AsTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return time.Time{}, false
		}
		return t, true
	case string:
		parsed, err := time.Parse(time.RFC3339, t)
		if err != nil || parsed.IsZero() {
			return time.Time{}, false
		}
		return parsed, true
	default:
		return time.Time{}, false
	}
}
