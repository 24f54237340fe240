package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/clinic-mouzaia-it/mouzaia-clinic-kitchenApp/internal/model"
	"github.com/go-chi/chi/v5"
)

const _dateLayout = "2006-01-02"

func userIDFromRequest(r *http.Request) (model.BadgeID, error) {
	return model.ParseBadgeID(chi.URLParam(r, "userId"))
}

// parseDate accepts a bare calendar date or a full RFC 3339 timestamp, the
// two forms the web forms submit.
func parseDate(val string) (time.Time, error) {
	val = strings.Trim(val, `'"`)

	t, err := time.Parse(_dateLayout, val)
	if err == nil {
		return t, nil
	}

	return time.Parse(time.RFC3339, val)
}

func dateQueryParams(r *http.Request, key string) (time.Time, bool, error) {
	val, ok := r.URL.Query().Get(key), r.URL.Query().Has(key)
	if !ok {
		return time.Time{}, false, nil
	}

	t, err := parseDate(val)
	return t, true, err
}

func stringQueryParams(r *http.Request, key string, def string) string {
	val, ok := r.URL.Query().Get(key), r.URL.Query().Has(key)
	if !ok {
		return def
	}
	return val
}
