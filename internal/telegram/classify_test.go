package telegram_test

import (
	"encoding/json"
	"testing"

	"github.com/ARROM2405/hero-search-bot/internal/models"
	"github.com/ARROM2405/hero-search-bot/internal/telegram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Payloads mirror real webhook bodies as Telegram delivers them.
func decodeUpdate(t *testing.T, payload string) telegram.Update {
	t.Helper()
	var update telegram.Update
	require.NoError(t, json.Unmarshal([]byte(payload), &update))
	return update
}

func TestClassifyUpdate_PlainMessage(t *testing.T) {
	t.Parallel()
	update := decodeUpdate(t, `{
		"update_id": 1,
		"message": {
			"message_id": 10,
			"from": {"id": 100, "is_bot": false, "username": "taras", "first_name": "Тарас"},
			"chat": {"id": 100, "type": "private"},
			"date": 1693000000,
			"text": "Шевченко"
		}
	}`)

	event, err := telegram.ClassifyUpdate(update)

	require.NoError(t, err)
	require.NotNil(t, event.UserMessage)
	assert.Nil(t, event.Command)
	assert.Nil(t, event.MembershipChange)
	assert.Equal(t, models.UserMessage{
		ChatID:   100,
		ChatKind: models.ChatPrivate,
		Sender:   models.Sender{ID: 100, Username: "taras", FirstName: "Тарас"},
		Text:     "Шевченко",
	}, *event.UserMessage)
}

func TestClassifyUpdate_CommandMessage(t *testing.T) {
	t.Parallel()
	update := decodeUpdate(t, `{
		"update_id": 2,
		"message": {
			"message_id": 11,
			"from": {"id": 100, "username": "taras"},
			"chat": {"id": 100, "type": "private"},
			"text": "/start",
			"entities": [{"type": "bot_command", "offset": 0, "length": 6}]
		}
	}`)

	event, err := telegram.ClassifyUpdate(update)

	require.NoError(t, err)
	require.NotNil(t, event.Command)
	assert.Equal(t, "/start", event.Command.Token)
	assert.False(t, event.Command.SentByInlineKeyboard)
}

func TestClassifyUpdate_CallbackQuery(t *testing.T) {
	t.Parallel()
	update := decodeUpdate(t, `{
		"update_id": 3,
		"callback_query": {
			"id": "441644",
			"from": {"id": 100, "username": "taras"},
			"message": {
				"message_id": 12,
				"chat": {"id": 100, "type": "private"},
				"text": "Привіт",
				"reply_markup": {"inline_keyboard": [[{"text": "Зрозуміло, починаємо", "callback_data": "/instructions_confirmed"}]]}
			},
			"data": "/instructions_confirmed"
		}
	}`)

	event, err := telegram.ClassifyUpdate(update)

	require.NoError(t, err)
	require.NotNil(t, event.Command)
	assert.Equal(t, "/instructions_confirmed", event.Command.Token)
	assert.Equal(t, int64(12), event.Command.RepliedMessageID)
	assert.True(t, event.Command.SentByInlineKeyboard)
}

// The callback query wins even when a message is present on the same update.
func TestClassifyUpdate_CallbackQueryPrecedence(t *testing.T) {
	t.Parallel()
	update := decodeUpdate(t, `{
		"update_id": 4,
		"message": {
			"message_id": 13,
			"from": {"id": 100},
			"chat": {"id": 100, "type": "private"},
			"text": "42"
		},
		"callback_query": {
			"id": "441645",
			"from": {"id": 100},
			"message": {"message_id": 13, "chat": {"id": 100, "type": "private"}},
			"data": "/input_confirmed"
		}
	}`)

	event, err := telegram.ClassifyUpdate(update)

	require.NoError(t, err)
	require.NotNil(t, event.Command)
	assert.Equal(t, "/input_confirmed", event.Command.Token)
	assert.False(t, event.Command.SentByInlineKeyboard)
}

func TestClassifyUpdate_EditedMessage(t *testing.T) {
	t.Parallel()
	update := decodeUpdate(t, `{
		"update_id": 5,
		"edited_message": {
			"message_id": 14,
			"from": {"id": 100},
			"chat": {"id": 100, "type": "private"},
			"text": "Шевченко виправлено"
		}
	}`)

	event, err := telegram.ClassifyUpdate(update)

	require.NoError(t, err)
	require.NotNil(t, event.UserMessage)
	assert.True(t, event.UserMessage.Edited)
	assert.Equal(t, "Шевченко виправлено", event.UserMessage.Text)
}

func TestClassifyUpdate_LeftChatMember(t *testing.T) {
	t.Parallel()
	update := decodeUpdate(t, `{
		"update_id": 6,
		"message": {
			"message_id": 15,
			"from": {"id": 100},
			"chat": {"id": -200, "type": "group"},
			"left_chat_member": {"id": 999, "is_bot": true, "username": "hero_search_bot"}
		}
	}`)

	event, err := telegram.ClassifyUpdate(update)

	require.NoError(t, err)
	require.NotNil(t, event.MembershipChange)
	assert.Equal(t, models.BotRemoved, event.MembershipChange.Action)
	assert.Equal(t, models.ChatGroup, event.MembershipChange.ChatKind)
}

func TestClassifyUpdate_MyChatMember(t *testing.T) {
	t.Parallel()
	tests := []struct {
		status string
		want   models.MembershipAction
	}{
		{status: "member", want: models.BotAdded},
		{status: "administrator", want: models.BotAdded},
		{status: "left", want: models.BotRemoved},
		{status: "kicked", want: models.BotRemoved},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			t.Parallel()
			update := decodeUpdate(t, `{
				"update_id": 7,
				"my_chat_member": {
					"chat": {"id": -200, "type": "supergroup"},
					"from": {"id": 100},
					"date": 1693000000,
					"old_chat_member": {"status": "left", "user": {"id": 999, "is_bot": true}},
					"new_chat_member": {"status": "`+tt.status+`", "user": {"id": 999, "is_bot": true}}
				}
			}`)

			event, err := telegram.ClassifyUpdate(update)

			require.NoError(t, err)
			require.NotNil(t, event.MembershipChange)
			assert.Equal(t, tt.want, event.MembershipChange.Action)
		})
	}
}

func TestClassifyUpdate_UnrecognizedShapes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		payload string
	}{
		{
			name:    "no recognized field",
			payload: `{"update_id": 8}`,
		},
		{
			name: "message without sender",
			payload: `{
				"update_id": 9,
				"message": {"message_id": 16, "chat": {"id": 100, "type": "private"}, "text": "42"}
			}`,
		},
		{
			name: "channel chat type",
			payload: `{
				"update_id": 10,
				"message": {"message_id": 17, "from": {"id": 100}, "chat": {"id": -300, "type": "channel"}, "text": "42"}
			}`,
		},
		{
			name: "unknown membership status",
			payload: `{
				"update_id": 11,
				"my_chat_member": {
					"chat": {"id": 100, "type": "private"},
					"from": {"id": 100},
					"new_chat_member": {"status": "restricted"}
				}
			}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := telegram.ClassifyUpdate(decodeUpdate(t, tt.payload))
			assert.ErrorIs(t, err, telegram.ErrUnhandledUpdate)
		})
	}
}
