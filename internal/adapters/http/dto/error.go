package dto

import (
	"net/http"

	"github.com/mwhidden/vetted/internal/domain"
)

// ErrorBody is the envelope's error part. Type discriminates the failure
// kind; only the fields of that kind are populated.
type ErrorBody struct {
	Type    string `json:"type"`
	Message string `json:"message"`

	// Validation failures: one entry per independently failing field.
	Errors []FieldErrorDetail `json:"errors,omitempty"`

	// Network failures.
	Status   int    `json:"status,omitempty"`
	Endpoint string `json:"endpoint,omitempty"`

	// Business failures.
	Code    string         `json:"code,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// FieldErrorDetail is a single field-level validation failure. Value echoes
// the offending input; for nested records it carries the nested failures.
type FieldErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// NewErrorBody classifies err and builds the corresponding error part.
func NewErrorBody(err error) ErrorBody {
	switch e := domain.Classify(err).(type) {
	case *domain.FieldErrors:
		details := make([]FieldErrorDetail, len(e.Errors))
		for i, fe := range e.Errors {
			details[i] = FieldErrorDetail{Field: fe.Field, Message: fe.Message, Value: fe.Value}
		}
		return ErrorBody{
			Type:    string(domain.KindValidation),
			Message: "validation failed",
			Errors:  details,
		}
	case *domain.NetworkError:
		return ErrorBody{
			Type:     string(domain.KindNetwork),
			Message:  e.Message,
			Status:   e.Status,
			Endpoint: e.Endpoint,
		}
	case *domain.BusinessError:
		return ErrorBody{
			Type:    string(domain.KindBusiness),
			Message: e.Message,
			Code:    e.Code,
			Details: e.Details,
		}
	default:
		// Unreachable: Classify always returns one of the three kinds.
		return ErrorBody{Type: string(domain.KindBusiness), Message: err.Error(), Code: domain.CodeInternalError}
	}
}

// WriteError writes a failure envelope for the given error with the mapped
// HTTP status.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	body := NewErrorBody(err)
	writeEnvelope(w, r, errorToStatus(err), Envelope{Success: false, Error: &body})
}

// errorToStatus maps classified errors to HTTP status codes. Corruption and
// recovered internal defects are server faults, not client ones.
func errorToStatus(err error) int {
	switch e := domain.Classify(err).(type) {
	case *domain.FieldErrors:
		return http.StatusBadRequest
	case *domain.NetworkError:
		return http.StatusBadGateway
	case *domain.BusinessError:
		if e.Code == domain.CodeNotFound {
			return http.StatusNotFound
		}
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
