package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/clinic-mouzaia-it/mouzaia-clinic-kitchenApp/internal/ctxstore"
	"github.com/clinic-mouzaia-it/mouzaia-clinic-kitchenApp/internal/database"
	"github.com/clinic-mouzaia-it/mouzaia-clinic-kitchenApp/internal/model"
	"github.com/clinic-mouzaia-it/mouzaia-clinic-kitchenApp/internal/period"
	"github.com/clinic-mouzaia-it/mouzaia-clinic-kitchenApp/internal/request"
	"github.com/clinic-mouzaia-it/mouzaia-clinic-kitchenApp/internal/response"
	"github.com/clinic-mouzaia-it/mouzaia-clinic-kitchenApp/internal/validator"
)

type requestCreateEntry struct {
	FullName string       `json:"fullName"`
	Level    *model.Level `json:"level"`
	Date     string       `json:"date"`
	Period   string       `json:"period"`
}

type responseEntry struct {
	Entry model.AttendanceEntry `json:"entry"`
}

type responseHistory struct {
	History []model.AttendanceEntry `json:"history"`
}

// handleCreateHistory records a manual attendance entry, bypassing the badge
// scan. The per-day-per-period uniqueness still applies.
func (app *application) handleCreateHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	var input requestCreateEntry
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	date, dateErr := parseDate(input.Date)

	var v validator.Validator
	v.CheckField(validator.NotBlank(input.FullName), "fullName", "Full Name is required")
	v.CheckField(input.Date != "" && dateErr == nil, "date", "Invalid or missing date")
	v.CheckField(validator.NotBlank(input.Period), "period", "Period is required")

	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	dao := database.NewHistoryDAO(logger, app.db)

	entry, err := dao.Append(ctx, model.AttendanceEntry{
		FullName: strings.TrimSpace(input.FullName),
		Level:    input.Level,
		Date:     date,
		Period:   period.Normalize(input.Period),
	})
	if err != nil {
		if errors.Is(err, model.ErrExists) {
			app.errorMessage(w, r, http.StatusConflict, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusCreated, responseEntry{Entry: entry}); err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleQueryHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	startDate, hasStart, err := dateQueryParams(r, "startDate")
	if err != nil || !hasStart {
		app.badRequest(w, r, errors.New("invalid or missing startDate"))
		return
	}

	endDate, hasEnd, err := dateQueryParams(r, "endDate")
	if err != nil || !hasEnd {
		app.badRequest(w, r, errors.New("invalid or missing endDate"))
		return
	}

	dao := database.NewHistoryDAO(logger, app.db)

	entries, err := dao.Find(ctx, database.FindHistoryFilter{
		From:   startDate,
		To:     endDate,
		Period: stringQueryParams(r, "period", ""),
	})
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, responseHistory{History: entries}); err != nil {
		app.serverError(w, r, err)
	}
}
