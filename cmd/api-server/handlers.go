package main

import (
	"net/http"

	"github.com/clinic-mouzaia-it/mouzaia-clinic-kitchenApp/internal/response"
)

func (app *application) handleStatus(w http.ResponseWriter, r *http.Request) {
	if err := response.JSON(w, http.StatusOK, response.JSONObject{"status": "OK"}); err != nil {
		app.serverError(w, r, err)
	}
}
