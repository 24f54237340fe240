package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp builds an application without a database; only routes whose
// request fails validation before any storage call can be exercised here.
func newTestApp(t *testing.T) *application {
	t.Helper()

	return &application{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func do(t *testing.T, app *application, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	r := httptest.NewRequest(method, target, reader)
	if body != "" {
		r.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	app.routes().ServeHTTP(w, r)
	return w
}

func TestHandleStatus(t *testing.T) {
	app := newTestApp(t)

	w := do(t, app, "GET", "/api/v1/status", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status": "OK"`)
}

func TestHandleCreateUserRejectsBlankName(t *testing.T) {
	app := newTestApp(t)

	w := do(t, app, "POST", "/api/v1/users", `{"fullName":"   "}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Full Name is required")
}

func TestHandleCreateUserRejectsMalformedJSON(t *testing.T) {
	app := newTestApp(t)

	w := do(t, app, "POST", "/api/v1/users", `{"fullName":`)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleCreateUserRejectsUnknownFields(t *testing.T) {
	app := newTestApp(t)

	w := do(t, app, "POST", "/api/v1/users", `{"fullName":"Jane Doe","badge":"x"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown key")
}

func TestHandleGetUserRejectsBadID(t *testing.T) {
	app := newTestApp(t)

	w := do(t, app, "GET", "/api/v1/users/not-a-badge", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleCreateHistoryValidation(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "blank name", body: `{"fullName":"","date":"2025-01-10","period":"lunch"}`, want: "Full Name is required"},
		{name: "missing date", body: `{"fullName":"Jane Doe","period":"lunch"}`, want: "Invalid or missing date"},
		{name: "bad date", body: `{"fullName":"Jane Doe","date":"soon","period":"lunch"}`, want: "Invalid or missing date"},
		{name: "missing period", body: `{"fullName":"Jane Doe","date":"2025-01-10"}`, want: "Period is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, app, "POST", "/api/v1/history", tt.body)
			require.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
		})
	}
}

func TestHandleQueryHistoryRequiresDates(t *testing.T) {
	app := newTestApp(t)

	w := do(t, app, "GET", "/api/v1/history", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "startDate")

	w = do(t, app, "GET", "/api/v1/history?startDate=2025-01-10&endDate=yesterday", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "endDate")
}

func TestHandleRegisterRequiresBadgeID(t *testing.T) {
	app := newTestApp(t)

	w := do(t, app, "POST", "/api/v1/registrations", `{"badgeId":""}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Badge ID is required")
}

func TestHandleRegisterScanRequiresImage(t *testing.T) {
	app := newTestApp(t)

	r := httptest.NewRequest("POST", "/api/v1/registrations/scan", strings.NewReader(""))
	r.Header.Set("Content-Type", "multipart/form-data; boundary=xxx")

	w := httptest.NewRecorder()
	app.routes().ServeHTTP(w, r)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnknownRouteIs404(t *testing.T) {
	app := newTestApp(t)

	w := do(t, app, "GET", "/api/v1/nope", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}
