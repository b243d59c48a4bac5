package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mwhidden/vetted/internal/audit"
	"github.com/mwhidden/vetted/internal/domain/user"
)

var testTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validUser() user.User {
	return user.User{
		ID:        "u-1",
		Name:      "Ann",
		Contact:   user.ContactInfo{Email: "ann@example.com"},
		Age:       30,
		Active:    true,
		Tags:      []string{"admin"},
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func loginEvent() audit.Event {
	return audit.Event{
		ID:        "evt-1",
		Kind:      audit.KindLoginAttempt,
		Timestamp: testTime,
		Payload:   audit.LoginAttempt{UserID: "u-1", Success: true, Remote: "10.0.0.1"},
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
