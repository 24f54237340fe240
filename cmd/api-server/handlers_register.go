package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/clinic-mouzaia-it/mouzaia-clinic-kitchenApp/internal/badge"
	"github.com/clinic-mouzaia-it/mouzaia-clinic-kitchenApp/internal/ctxstore"
	"github.com/clinic-mouzaia-it/mouzaia-clinic-kitchenApp/internal/database"
	"github.com/clinic-mouzaia-it/mouzaia-clinic-kitchenApp/internal/model"
	"github.com/clinic-mouzaia-it/mouzaia-clinic-kitchenApp/internal/registrar"
	"github.com/clinic-mouzaia-it/mouzaia-clinic-kitchenApp/internal/request"
	"github.com/clinic-mouzaia-it/mouzaia-clinic-kitchenApp/internal/response"
	"github.com/clinic-mouzaia-it/mouzaia-clinic-kitchenApp/internal/validator"
)

const _maxScanImageSize = 8 << 20

type requestRegister struct {
	BadgeID string `json:"badgeId"`
	// Recent is the attendance list the operator screen currently shows.
	// It is only the first, advisory duplicate check; the ledger is
	// consulted again before anything is written.
	Recent []model.AttendanceEntry `json:"recent"`
}

type responseRegister struct {
	Outcome string                 `json:"outcome"`
	Message string                 `json:"message,omitempty"`
	User    *model.User            `json:"user,omitempty"`
	Period  string                 `json:"period,omitempty"`
	Entry   *model.AttendanceEntry `json:"entry,omitempty"`
}

func (app *application) handleRegister(w http.ResponseWriter, r *http.Request) {
	var input requestRegister
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	v.CheckField(validator.NotBlank(input.BadgeID), "badgeId", "Badge ID is required")

	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	app.register(w, r, input.BadgeID, input.Recent)
}

// handleRegisterScan accepts a multipart "image" part holding a photo of the
// badge, decodes the QR symbol server-side and registers the result.
func (app *application) handleRegisterScan(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(_maxScanImageSize); err != nil {
		app.badRequest(w, r, err)
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		app.badRequest(w, r, errors.New("image file is required"))
		return
	}
	defer file.Close()

	payload, err := badge.Decode(file)
	if err != nil {
		if errors.Is(err, badge.ErrNoSymbol) {
			app.errorMessage(w, r, http.StatusUnprocessableEntity, "no qr code detected in the image", nil)
			return
		}

		app.badRequest(w, r, err)
		return
	}

	app.register(w, r, payload, nil)
}

// register runs one scan attempt at server time and writes the outcome
// envelope. Each attempt is terminal; the operator retries by rescanning.
func (app *application) register(w http.ResponseWriter, r *http.Request, payload string, recent []model.AttendanceEntry) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	reg := registrar.New(
		logger,
		database.NewUserDAO(logger, app.db),
		database.NewHistoryDAO(logger, app.db),
	)

	outcome, err := reg.Register(ctx, payload, time.Now(), recent)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	body := responseRegister{
		Outcome: string(outcome.Status),
		Message: outcome.Message,
		Period:  outcome.Period.String(),
	}

	status := http.StatusCreated

	switch outcome.Status {
	case registrar.StatusRegistered:
		body.User = &outcome.User
		body.Entry = &outcome.Entry
	case registrar.StatusUserNotFound:
		status = http.StatusNotFound
	case registrar.StatusOutsideWindow:
		status = http.StatusConflict
		body.User = &outcome.User
	case registrar.StatusDuplicateForPeriod:
		status = http.StatusConflict
		body.User = &outcome.User
	}

	if err := response.JSON(w, status, body); err != nil {
		app.serverError(w, r, err)
	}
}
