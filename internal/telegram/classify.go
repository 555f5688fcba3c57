package telegram

import (
	"log/slog"

	"github.com/ARROM2405/hero-search-bot/internal/errors"
	"github.com/ARROM2405/hero-search-bot/internal/models"
)

// ClassifyUpdate inspects which shape the update has and converts it into
// the closed event union. Precedence, first match wins: callback query,
// message with a bot-command entity, message with a left chat member, plain
// message, edited message, chat membership change. Anything else fails with
// ErrUnhandledUpdate.
func ClassifyUpdate(update Update) (models.Event, error) {
	switch {
	case update.CallbackQuery != nil:
		return classifyCallbackQuery(update.CallbackQuery)
	case update.Message != nil:
		return classifyMessage(update.Message, false)
	case update.EditedMessage != nil:
		return classifyMessage(update.EditedMessage, true)
	case update.MyChatMember != nil:
		return classifyMembershipChange(update.MyChatMember)
	}
	return models.Event{}, errors.Wrap(ErrUnhandledUpdate, "no recognized update field",
		slog.Int64("update_id", update.UpdateID))
}

func classifyCallbackQuery(query *CallbackQuery) (models.Event, error) {
	if query.Message == nil || query.Message.Chat == nil || query.From == nil {
		return models.Event{}, errors.Wrap(ErrUnhandledUpdate, "callback query missing message context")
	}
	kind, err := chatKind(query.Message.Chat.Type)
	if err != nil {
		return models.Event{}, err
	}
	sentByInlineKeyboard := query.Message.ReplyMarkup != nil && len(query.Message.ReplyMarkup.InlineKeyboard) > 0
	return models.Event{Command: &models.Command{
		ChatID:               query.Message.Chat.ID,
		ChatKind:             kind,
		Sender:               sender(query.From),
		Token:                query.Data,
		RepliedMessageID:     query.Message.MessageID,
		SentByInlineKeyboard: sentByInlineKeyboard,
	}}, nil
}

func classifyMessage(message *Message, edited bool) (models.Event, error) {
	if message.Chat == nil || message.From == nil {
		return models.Event{}, errors.Wrap(ErrUnhandledUpdate, "message missing chat or sender")
	}
	kind, err := chatKind(message.Chat.Type)
	if err != nil {
		return models.Event{}, err
	}
	if !edited && len(message.Entities) > 0 && message.Entities[0].Type == "bot_command" {
		return models.Event{Command: &models.Command{
			ChatID:   message.Chat.ID,
			ChatKind: kind,
			Sender:   sender(message.From),
			Token:    message.Text,
		}}, nil
	}
	if !edited && message.LeftChatMember != nil {
		return models.Event{MembershipChange: &models.MembershipChange{
			ChatID:   message.Chat.ID,
			ChatKind: kind,
			Sender:   sender(message.From),
			Action:   models.BotRemoved,
		}}, nil
	}
	return models.Event{UserMessage: &models.UserMessage{
		ChatID:   message.Chat.ID,
		ChatKind: kind,
		Sender:   sender(message.From),
		Text:     message.Text,
		Edited:   edited,
	}}, nil
}

func classifyMembershipChange(change *ChatMemberUpdated) (models.Event, error) {
	if change.Chat == nil || change.From == nil || change.NewChatMember == nil {
		return models.Event{}, errors.Wrap(ErrUnhandledUpdate, "membership change missing fields")
	}
	kind, err := chatKind(change.Chat.Type)
	if err != nil {
		return models.Event{}, err
	}
	var action models.MembershipAction
	switch change.NewChatMember.Status {
	case "member", "administrator":
		action = models.BotAdded
	case "left", "kicked":
		action = models.BotRemoved
	default:
		return models.Event{}, errors.Wrap(ErrUnhandledUpdate, "unknown membership status",
			slog.String("status", change.NewChatMember.Status))
	}
	return models.Event{MembershipChange: &models.MembershipChange{
		ChatID:   change.Chat.ID,
		ChatKind: kind,
		Sender:   sender(change.From),
		Action:   action,
	}}, nil
}
