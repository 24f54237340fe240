package main

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/clinic-mouzaia-it/mouzaia-clinic-kitchenApp/internal/badge"
	"github.com/clinic-mouzaia-it/mouzaia-clinic-kitchenApp/internal/ctxstore"
	"github.com/clinic-mouzaia-it/mouzaia-clinic-kitchenApp/internal/database"
	"github.com/clinic-mouzaia-it/mouzaia-clinic-kitchenApp/internal/model"
	"github.com/clinic-mouzaia-it/mouzaia-clinic-kitchenApp/internal/request"
	"github.com/clinic-mouzaia-it/mouzaia-clinic-kitchenApp/internal/response"
	"github.com/clinic-mouzaia-it/mouzaia-clinic-kitchenApp/internal/validator"
)

type requestSaveUser struct {
	FullName   string       `json:"fullName"`
	Position   *string      `json:"position"`
	Department *string      `json:"department"`
	Level      *model.Level `json:"level"`
}

type responseUser struct {
	User model.User `json:"user"`
}

func (app *application) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	var input requestSaveUser
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	validateSaveUser(&v, input)

	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	dao := database.NewUserDAO(logger, app.db)

	userID, err := dao.Insert(ctx, database.InsertUserDTO{
		FullName:   strings.TrimSpace(input.FullName),
		Position:   input.Position,
		Department: input.Department,
		Level:      input.Level,
	})
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	user, err := dao.Get(ctx, userID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusCreated, responseUser{User: user}); err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleGetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	userID, err := userIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	dao := database.NewUserDAO(logger, app.db)

	user, err := dao.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, responseUser{User: user}); err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	dao := database.NewUserDAO(logger, app.db)

	users, err := dao.FindAll(ctx)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	// An empty roster is reported as 404, not an empty list. Odd, but the
	// admin page depends on it.
	if len(users) == 0 {
		app.errorMessage(w, r, http.StatusNotFound, "no users found", nil)
		return
	}

	if err := response.JSON(w, http.StatusOK, users); err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	userID, err := userIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	var input requestSaveUser
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	validateSaveUser(&v, input)

	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	dao := database.NewUserDAO(logger, app.db)

	err = dao.Update(ctx, userID, database.UpdateUserDTO{
		FullName:   strings.TrimSpace(input.FullName),
		Position:   input.Position,
		Department: input.Department,
		Level:      input.Level,
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	user, err := dao.Get(ctx, userID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, responseUser{User: user}); err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	userID, err := userIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	dao := database.NewUserDAO(logger, app.db)

	if _, err := dao.Get(ctx, userID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	if err := dao.Delete(ctx, userID); err != nil {
		app.serverError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleUserBadge renders the user's printable QR badge as a PNG.
func (app *application) handleUserBadge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := app.logger.With(
		_traceIDKey.String(), ctxstore.MustFrom[string](ctx, _traceIDKey),
	)

	userID, err := userIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	dao := database.NewUserDAO(logger, app.db)

	user, err := dao.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			app.errorMessage(w, r, http.StatusNotFound, err.Error(), nil)
			return
		}

		app.serverError(w, r, err)
		return
	}

	png, err := badge.EncodePNG(user.ID, app.config.badge.size)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	if _, err := w.Write(png); err != nil {
		app.reportServerError(r, err)
	}
}
