package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "calendar date",
			input: "2025-01-10",
			want:  time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "quoted calendar date",
			input: `"2025-01-10"`,
			want:  time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "rfc3339",
			input: "2025-01-10T12:00:00Z",
			want:  time.Date(2025, time.January, 10, 12, 0, 0, 0, time.UTC),
		},
		{name: "garbage", input: "next tuesday", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
		})
	}
}

func TestDateQueryParams(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/v1/history?startDate=2025-01-10", nil)

	got, ok, err := dateQueryParams(r, "startDate")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2025, got.Year())

	_, ok, err = dateQueryParams(r, "endDate")
	require.NoError(t, err)
	assert.False(t, ok)
}

func requestWithUserID(t *testing.T, raw string) *http.Request {
	t.Helper()

	r := httptest.NewRequest("GET", "/api/v1/users/"+raw, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("userId", raw)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestUserIDFromRequest(t *testing.T) {
	id, err := userIDFromRequest(requestWithUserID(t, "100000000001"))
	require.NoError(t, err)
	assert.Equal(t, "100000000001", id.String())

	_, err = userIDFromRequest(requestWithUserID(t, "not-a-badge"))
	require.Error(t, err)
}
