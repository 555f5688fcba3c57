package bot

import (
	"context"
	"log/slog"

	"github.com/ARROM2405/hero-search-bot/internal/errors"
	"github.com/ARROM2405/hero-search-bot/internal/questionnaire"
	"github.com/ARROM2405/hero-search-bot/internal/telegram"
)

// Dispatcher routes a classified update to its processor and delivers the
// produced response.
//
// Every failure inside Process or PrepareResponse is logged and swallowed:
// the webhook endpoint must always report success, otherwise Telegram
// retry-storms the same update.
type Dispatcher struct {
	tracker  *questionnaire.Tracker
	authors  AuthorGetOrCreator
	audit    MembershipRecorder
	reports  ReportGenerator
	client   Deliverer
	adminIDs []int64
	logger   *slog.Logger
}

func NewDispatcher(
	tracker *questionnaire.Tracker,
	authors AuthorGetOrCreator,
	audit MembershipRecorder,
	reports ReportGenerator,
	client Deliverer,
	adminIDs []int64,
	logger *slog.Logger,
) *Dispatcher {
	return &Dispatcher{
		tracker:  tracker,
		authors:  authors,
		audit:    audit,
		reports:  reports,
		client:   client,
		adminIDs: adminIDs,
		logger:   logger.With("source", "Dispatcher"),
	}
}

// Handle processes one inbound update end to end. It never returns an
// error; see the type comment for why.
func (d *Dispatcher) Handle(ctx context.Context, update telegram.Update) {
	event, err := telegram.ClassifyUpdate(update)
	if err != nil {
		d.logger.LogAttrs(ctx, slog.LevelError, "failed to classify update",
			slog.Int64("update_id", update.UpdateID), errors.SlogError(err))
		return
	}

	var processor Processor
	switch {
	case event.Command != nil:
		processor = newCommandProcessor(
			event.Command, d.tracker, d.authors, d.reports, d.client, d.adminIDs, d.logger)
	case event.MembershipChange != nil:
		processor = newMembershipProcessor(event.MembershipChange, d.audit)
	case event.UserMessage != nil:
		processor = newUserMessageProcessor(event.UserMessage, d.tracker)
	default:
		d.logger.LogAttrs(ctx, slog.LevelError, "classified event has no variant",
			slog.Int64("update_id", update.UpdateID))
		return
	}
	defer processor.Finalize(ctx)

	if err = processor.Process(ctx); err != nil {
		d.logger.LogAttrs(ctx, slog.LevelError, "failed to process event",
			slog.Int64("update_id", update.UpdateID), errors.SlogError(err))
		return
	}

	response := processor.PrepareResponse()
	if response == nil {
		return
	}
	if err = d.deliver(ctx, response); err != nil {
		d.logger.LogAttrs(ctx, slog.LevelError, "failed to deliver response",
			slog.Int64("chat_id", response.ChatID), errors.SlogError(err))
	}
}

func (d *Dispatcher) deliver(ctx context.Context, response *Response) error {
	if response.FilePath != "" {
		if err := d.client.SendDocument(ctx, response.ChatID, response.FilePath); err != nil {
			return errors.Wrap(err, "send document")
		}
		return nil
	}
	if err := d.client.SendMessage(ctx, response.ChatID, response.Text, response.ReplyMarkup); err != nil {
		return errors.Wrap(err, "send message")
	}
	return nil
}
