// Package telegram contains the typed Telegram Bot API surface the bot
// consumes and produces: inbound update parsing, event classification, and
// the outbound API client.
package telegram

import (
	"github.com/ARROM2405/hero-search-bot/internal/errors"
	"github.com/ARROM2405/hero-search-bot/internal/models"
)

// Update mirrors the subset of the Bot API update object the bot handles.
// See https://core.telegram.org/bots/api#update
type Update struct {
	UpdateID      int64              `json:"update_id"`
	Message       *Message           `json:"message,omitempty"`
	EditedMessage *Message           `json:"edited_message,omitempty"`
	CallbackQuery *CallbackQuery     `json:"callback_query,omitempty"`
	MyChatMember  *ChatMemberUpdated `json:"my_chat_member,omitempty"`
}

type Message struct {
	MessageID      int64                 `json:"message_id"`
	Date           int64                 `json:"date,omitempty"`
	Chat           *Chat                 `json:"chat,omitempty"`
	From           *User                 `json:"from,omitempty"`
	Text           string                `json:"text,omitempty"`
	Entities       []MessageEntity       `json:"entities,omitempty"`
	LeftChatMember *User                 `json:"left_chat_member,omitempty"`
	ReplyMarkup    *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
}

type Chat struct {
	ID   int64  `json:"id"`
	Type string `json:"type,omitempty"` // private|group|supergroup|channel
}

type User struct {
	ID        int64  `json:"id"`
	IsBot     bool   `json:"is_bot,omitempty"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

type MessageEntity struct {
	Type   string `json:"type"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
}

type CallbackQuery struct {
	ID      string   `json:"id"`
	From    *User    `json:"from,omitempty"`
	Message *Message `json:"message,omitempty"`
	Data    string   `json:"data,omitempty"`
}

type ChatMemberUpdated struct {
	Chat          *Chat       `json:"chat,omitempty"`
	From          *User       `json:"from,omitempty"`
	Date          int64       `json:"date,omitempty"`
	NewChatMember *ChatMember `json:"new_chat_member,omitempty"`
	OldChatMember *ChatMember `json:"old_chat_member,omitempty"`
}

type ChatMember struct {
	Status string `json:"status"`
	User   *User  `json:"user,omitempty"`
}

// ErrUnhandledUpdate marks an update whose shape the bot does not recognize.
// Classification treats it as a hard failure rather than a silent fallthrough.
var ErrUnhandledUpdate = errors.NewSentinel("unhandled telegram update shape")

func chatKind(chatType string) (models.ChatKind, error) {
	switch chatType {
	case "private":
		return models.ChatPrivate, nil
	case "group", "supergroup":
		return models.ChatGroup, nil
	}
	return "", errors.Wrap(ErrUnhandledUpdate, "unknown chat type")
}

func sender(u *User) models.Sender {
	if u == nil {
		return models.Sender{}
	}
	return models.Sender{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
