package main

import (
	"net/http"

	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/healthy", app.healthy)
	mux.HandleFunc("POST "+app.webhookPath, app.handleWebhook)

	base := alice.New(app.recoverPanic, app.logRequest, secureHeaders)

	return base.Then(mux)
}
