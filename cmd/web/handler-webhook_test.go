package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ARROM2405/hero-search-bot/internal/questionnaire"
	"github.com/ARROM2405/hero-search-bot/internal/sqlite"
	"github.com/ARROM2405/hero-search-bot/internal/telegram"
	"github.com/ARROM2405/hero-search-bot/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMessage struct {
	ChatID int64
	Text   string
}

// delivererSpy stands in for the Telegram client in handler tests.
type delivererSpy struct {
	messages  []sentMessage
	documents []string
}

func (d *delivererSpy) SendMessage(_ context.Context, chatID int64, text string, _ *telegram.InlineKeyboardMarkup) error {
	d.messages = append(d.messages, sentMessage{ChatID: chatID, Text: text})
	return nil
}

func (d *delivererSpy) SendDocument(_ context.Context, _ int64, path string) error {
	d.documents = append(d.documents, path)
	return nil
}

func (d *delivererSpy) EditMessageReplyMarkup(context.Context, int64, int64) error {
	return nil
}

func newTestApplication(t *testing.T) (*application, *delivererSpy) {
	t.Helper()
	logger := testhelpers.NewLogger(io.Discard)
	db, err := sqlite.NewDatabase(context.Background(), ":memory:", logger)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})
	deliverer := &delivererSpy{}
	app := newApplication(appDependencies{
		logger:          logger,
		db:              db,
		botToken:        "test-token",
		telegramBaseURL: telegram.DefaultBaseURL,
		inputTTL:        time.Minute,
		deliverer:       deliverer,
	})
	return app, deliverer
}

func postWebhook(t *testing.T, app *application, body string) *httptest.ResponseRecorder {
	t.Helper()
	request := httptest.NewRequest(http.MethodPost, app.webhookPath, strings.NewReader(body))
	recorder := httptest.NewRecorder()
	app.routes().ServeHTTP(recorder, request)
	return recorder
}

func TestHandleWebhook_StartCommand(t *testing.T) {
	t.Parallel()
	app, deliverer := newTestApplication(t)

	recorder := postWebhook(t, app, `{
		"update_id": 1,
		"message": {
			"message_id": 10,
			"from": {"id": 100, "username": "taras"},
			"chat": {"id": 100, "type": "private"},
			"text": "/start",
			"entities": [{"type": "bot_command", "offset": 0, "length": 6}]
		}
	}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"status":"ok"}`, recorder.Body.String())
	require.Len(t, deliverer.messages, 1)
	assert.Equal(t, questionnaire.FirstInstructions, deliverer.messages[0].Text)
}

func TestHandleWebhook_MalformedBody(t *testing.T) {
	t.Parallel()
	app, deliverer := newTestApplication(t)

	recorder := postWebhook(t, app, `{"update_id": `)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Empty(t, deliverer.messages)
}

// Updates the bot cannot process still get a 200 so that Telegram does not
// redeliver them.
func TestHandleWebhook_UnhandledUpdate(t *testing.T) {
	t.Parallel()
	app, deliverer := newTestApplication(t)

	recorder := postWebhook(t, app, `{"update_id": 2}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, deliverer.messages)
}

func TestHandleWebhook_WrongToken(t *testing.T) {
	t.Parallel()
	app, _ := newTestApplication(t)

	request := httptest.NewRequest(http.MethodPost, "/api/telegram/webhook/other-token", strings.NewReader(`{"update_id": 3}`))
	recorder := httptest.NewRecorder()
	app.routes().ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHealthy(t *testing.T) {
	t.Parallel()
	app, _ := newTestApplication(t)

	request := httptest.NewRequest(http.MethodGet, "/api/healthy", nil)
	recorder := httptest.NewRecorder()
	app.routes().ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"status":"ok"}`, recorder.Body.String())
}

func TestParseAdminIDs(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		raw     string
		want    []int64
		wantErr bool
	}{
		{name: "empty means unrestricted", raw: "", want: nil},
		{name: "single id", raw: "123", want: []int64{123}},
		{name: "multiple ids with spaces", raw: "123, 456 ,789", want: []int64{123, 456, 789}},
		{name: "garbage", raw: "123,abc", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := parseAdminIDs(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
