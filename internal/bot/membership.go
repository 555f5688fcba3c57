package bot

import (
	"context"

	"github.com/ARROM2405/hero-search-bot/internal/errors"
	"github.com/ARROM2405/hero-search-bot/internal/models"
	"github.com/ARROM2405/hero-search-bot/internal/questionnaire"
	"github.com/ARROM2405/hero-search-bot/internal/telegram"
)

// membershipProcessor handles the bot being added to or removed from chats.
// These are system events and stay silent, with one exception: when the bot
// lands in a private chat it greets the user with the first instructions.
type membershipProcessor struct {
	change *models.MembershipChange
	audit  MembershipRecorder
}

func newMembershipProcessor(change *models.MembershipChange, audit MembershipRecorder) *membershipProcessor {
	return &membershipProcessor{
		change: change,
		audit:  audit,
	}
}

func (p *membershipProcessor) Process(ctx context.Context) error {
	if err := p.audit.RecordMembershipChange(ctx, *p.change); err != nil {
		return errors.Wrap(err, "record membership change")
	}
	return nil
}

func (p *membershipProcessor) PrepareResponse() *Response {
	if p.change.ChatKind != models.ChatPrivate || p.change.Action != models.BotAdded {
		return nil
	}
	return &Response{
		ChatID: p.change.ChatID,
		Text:   questionnaire.FirstInstructions,
		ReplyMarkup: telegram.SingleButtonKeyboard(
			questionnaire.ConfirmInstructionsButton, CommandInstructionsConfirmed),
	}
}

func (p *membershipProcessor) Finalize(context.Context) {}
