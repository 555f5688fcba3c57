package main

import (
	"encoding/json"
	"net/http"

	"github.com/ARROM2405/hero-search-bot/internal/telegram"
)

// handleWebhook receives one Telegram update per request. Processing
// failures are logged inside the dispatcher and never surface here: a
// non-200 response would make Telegram redeliver the update in a retry
// storm, so the only client error is a body that is not an update at all.
func (app *application) handleWebhook(w http.ResponseWriter, r *http.Request) {
	var update telegram.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	app.dispatcher.Handle(r.Context(), update)

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
