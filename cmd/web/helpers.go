package main

import (
	"log/slog"
	"net/http"

	"github.com/ARROM2405/hero-search-bot/internal/errors"
)

// serverError logs the error and responds with a plain 500. The request URI
// is deliberately not logged because the webhook path embeds the bot token.
func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error",
		slog.String("method", r.Method), errors.SlogError(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (app *application) clientError(w http.ResponseWriter, r *http.Request, status int) {
	app.logger.Debug(http.StatusText(status), "method", r.Method)
	http.Error(w, http.StatusText(status), status)
}
