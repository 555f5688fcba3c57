// Package bot implements the conversation state machine: one processor per
// inbound event kind and the dispatcher that drives them.
package bot

import (
	"context"

	"github.com/ARROM2405/hero-search-bot/internal/errors"
	"github.com/ARROM2405/hero-search-bot/internal/models"
	"github.com/ARROM2405/hero-search-bot/internal/telegram"
)

var (
	// ErrUnknownCommand marks a command token the bot does not recognize.
	ErrUnknownCommand = errors.NewSentinel("unknown command")
	// ErrUnauthorizedReport marks a report request from a user outside the
	// admin allow-list.
	ErrUnauthorizedReport = errors.NewSentinel("unauthorized report request")
)

// Response is the abstract outbound instruction a processor produces. A nil
// Response means send nothing. A non-empty FilePath switches delivery from
// "send text" to "send document".
type Response struct {
	ChatID      int64
	Text        string
	ReplyMarkup *telegram.InlineKeyboardMarkup
	FilePath    string
}

// Processor handles one classified inbound event.
//
// Process consumes the event and mutates state. PrepareResponse is a pure
// function of the post-Process state. Finalize performs cleanup and always
// runs, success or failure.
type Processor interface {
	Process(ctx context.Context) error
	PrepareResponse() *Response
	Finalize(ctx context.Context)
}

// Deliverer is the external collaborator that sends responses to the user.
// Implemented by telegram.Client.
type Deliverer interface {
	SendMessage(ctx context.Context, chatID int64, text string, replyMarkup *telegram.InlineKeyboardMarkup) error
	SendDocument(ctx context.Context, chatID int64, path string) error
	EditMessageReplyMarkup(ctx context.Context, chatID, messageID int64) error
}

// AuthorGetOrCreator resolves the durable author record for a sender.
// Implemented by repositories.AuthorRepository.
type AuthorGetOrCreator interface {
	GetOrCreate(ctx context.Context, author models.Author) (models.Author, error)
}

// MembershipRecorder persists membership-change audit entries. Implemented
// by repositories.AuditRepository.
type MembershipRecorder interface {
	RecordMembershipChange(ctx context.Context, change models.MembershipChange) error
}
